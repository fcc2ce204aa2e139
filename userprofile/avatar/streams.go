package avatar

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"reflect"

	"github.com/kbukum/baasic/hal"
	"github.com/kbukum/baasic/httpclient"
	"github.com/kbukum/baasic/httpclient/rest"
	"github.com/kbukum/baasic/logger"
	"github.com/kbukum/baasic/route"
	"github.com/kbukum/baasic/validation"
)

// FileField is the multipart field stream uploads are sent in.
const FileField = "file"

// StreamRoutes are the avatar stream route templates.
type StreamRoutes struct {
	Get    *route.Template
	Create *route.Template
	Update *route.Template
}

var defaultStreamRoutes = StreamRoutes{
	Get:    route.MustParse("profiles/{id}/avatar-streams/{?width,height}"),
	Create: route.MustParse("profiles/{id}/avatar-streams/{filename}"),
	Update: route.MustParse("profiles/{id}/avatar-streams/{?width,height}"),
}

// Streams reads and writes avatar content.
type Streams struct {
	transport rest.Transport
	log       *logger.Logger
}

// Routes returns the stream route templates.
func (s *Streams) Routes() StreamRoutes {
	return defaultStreamRoutes
}

// Get opens the avatar stream selected by req. The caller must Close the
// result.
func (s *Streams) Get(ctx context.Context, req StreamRequest) (*httpclient.StreamResponse, error) {
	if err := validation.Required("id", req.ID); err != nil {
		return nil, err
	}
	u := expand(ctx, s.log, "streams.get", defaultStreamRoutes.Get, req.params())
	return rest.Stream(ctx, s.transport, http.MethodGet, u)
}

// GetBlob returns the full content of the avatar stream selected by req.
func (s *Streams) GetBlob(ctx context.Context, req StreamRequest) ([]byte, error) {
	stream, err := s.Get(ctx, req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = stream.Close() }()

	data, err := io.ReadAll(stream.Body)
	if err != nil {
		return nil, httpclient.NewConnectionError(fmt.Errorf("read avatar stream: %w", err))
	}
	return data, nil
}

// Create uploads content as the avatar of profile id.
func (s *Streams) Create(ctx context.Context, id, filename string, content io.Reader) (*hal.Resource[File], error) {
	if err := validation.New().
		Required("id", id).
		Required("filename", filename).
		NotNil("content", hasContent(content)).
		Err(); err != nil {
		return nil, err
	}
	u := expand(ctx, s.log, "streams.create", defaultStreamRoutes.Create, route.Params{"id": id, "filename": filename})
	return upload(ctx, s.transport, http.MethodPost, u, filename, content)
}

// Update replaces the avatar stream selected by req. With a size set it
// creates or replaces that derived image only.
func (s *Streams) Update(ctx context.Context, req StreamRequest, content io.Reader) (*hal.Resource[File], error) {
	if err := validation.New().
		Required("id", req.ID).
		NotNil("content", hasContent(content)).
		Err(); err != nil {
		return nil, err
	}
	u := expand(ctx, s.log, "streams.update", defaultStreamRoutes.Update, req.params())
	return upload(ctx, s.transport, http.MethodPut, u, req.ID, content)
}

func upload(ctx context.Context, t rest.Transport, method, u, filename string, content io.Reader) (*hal.Resource[File], error) {
	resp, err := rest.Send[hal.Resource[File]](ctx, t, method, u, httpclient.File(FileField, filename, content))
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// hasContent reports whether r is a usable reader, treating a typed nil such
// as (*os.File)(nil) as absent.
func hasContent(r io.Reader) bool {
	if r == nil {
		return false
	}
	v := reflect.ValueOf(r)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return !v.IsNil()
	}
	return true
}

package avatar

import (
	"context"
	"net/http"

	"github.com/kbukum/baasic/hal"
	"github.com/kbukum/baasic/httpclient/rest"
	"github.com/kbukum/baasic/logger"
	"github.com/kbukum/baasic/params"
	"github.com/kbukum/baasic/route"
	"github.com/kbukum/baasic/validation"
)

// Routes are the avatar file entry route templates.
type Routes struct {
	Get  *route.Template
	Link *route.Template
}

var defaultRoutes = Routes{
	Get:  route.MustParse("profiles/{id}/avatars/{?embed,fields}"),
	Link: route.MustParse("profiles/{id}/avatars/link"),
}

// Service is the user-profile avatar API.
type Service struct {
	transport rest.Transport
	log       *logger.Logger
	streams   *Streams
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(log *logger.Logger) Option {
	return func(s *Service) { s.log = log }
}

// NewService creates an avatar service.
func NewService(transport rest.Transport, opts ...Option) *Service {
	s := &Service{transport: transport, log: logger.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.WithComponent("avatar")
	s.streams = &Streams{transport: transport, log: s.log}
	return s
}

// Routes returns the route templates the service expands.
func (s *Service) Routes() Routes {
	return defaultRoutes
}

// Streams returns the avatar stream API.
func (s *Service) Streams() *Streams {
	return s.streams
}

// Get returns the avatar file entry of profile id.
func (s *Service) Get(ctx context.Context, id string, opts params.GetOptions) (*hal.Resource[File], error) {
	if err := validation.Required("id", id); err != nil {
		return nil, err
	}
	p := params.Resolve(params.Defaults{}, route.PathParams{"id": id}, opts.Query())
	u := expand(ctx, s.log, "get", defaultRoutes.Get, p)

	resp, err := rest.Get[hal.Resource[File]](ctx, s.transport, u)
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Update sends file to its put link.
func (s *Service) Update(ctx context.Context, file *hal.Resource[File]) (*hal.Resource[File], error) {
	payload := params.UpdateParams(file)
	href, err := s.link(ctx, "update", payload.Model, hal.RelPut)
	if err != nil {
		return nil, err
	}

	resp, err := rest.Put[hal.Resource[File]](ctx, s.transport, href, payload.Model)
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Unlink detaches file from the profile through its unlink link. The file
// itself and its derived streams are removed.
func (s *Service) Unlink(ctx context.Context, file *hal.Resource[File]) error {
	payload := params.RemoveParams(file)
	href, err := s.link(ctx, "unlink", payload.Model, hal.RelUnlink)
	if err != nil {
		return err
	}

	_, err = rest.Send[struct{}](ctx, s.transport, http.MethodDelete, href, nil)
	return err
}

// Link attaches an existing file, such as a media vault entry, as the avatar
// of profile id.
func (s *Service) Link(ctx context.Context, id string, file File) (*hal.Resource[File], error) {
	if err := validation.Required("id", id); err != nil {
		return nil, err
	}
	payload := params.CreateParams(file)
	u := expand(ctx, s.log, "link", defaultRoutes.Link, route.Params{"id": id})

	resp, err := rest.Post[hal.Resource[File]](ctx, s.transport, u, payload.Model)
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (s *Service) link(ctx context.Context, op string, file *hal.Resource[File], rel string) (string, error) {
	href, err := hal.ResolveLink(file, rel)
	if err != nil {
		return "", err
	}
	s.log.WithContext(ctx).Debug("resolved link", logger.Fields(logger.FieldOperation, op, logger.FieldRel, rel, logger.FieldURL, href))
	return href, nil
}

func expand(ctx context.Context, log *logger.Logger, op string, t *route.Template, p route.Params) string {
	l := log.WithContext(ctx)
	if missing := t.Missing(p); len(missing) > 0 {
		l.Warn("missing route parameters", logger.Fields(logger.FieldOperation, op, "missing", missing))
	}
	u := t.Expand(p)
	l.Debug("resolved route", logger.Fields(logger.FieldOperation, op, logger.FieldURL, u))
	return u
}

package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/kbukum/baasic/component"
	"github.com/kbukum/baasic/config"
	"github.com/kbukum/baasic/errors"
	"github.com/kbukum/baasic/logger"
	"github.com/kbukum/baasic/observability"
	"github.com/kbukum/baasic/params"
)

type seen struct {
	mu      sync.Mutex
	headers []http.Header
	uris    []string
}

func (s *seen) add(r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.headers = append(s.headers, r.Header.Clone())
	s.uris = append(s.uris, r.URL.RequestURI())
}

func (s *seen) last() (http.Header, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.headers[len(s.headers)-1], s.uris[len(s.uris)-1]
}

func newTestApp(t *testing.T) (*App, *seen) {
	t.Helper()
	rec := &seen{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.add(r)
		switch {
		case strings.HasPrefix(r.URL.Path, "/v1/my-app/login"):
			_, _ = w.Write([]byte(`{"access_token":"tok","token_type":"bearer","expires_in":3600}`))
		default:
			_, _ = w.Write([]byte(`{"item":[],"page":1,"recordsPerPage":5,"totalRecords":0}`))
		}
	}))
	t.Cleanup(srv.Close)

	u, _ := url.Parse(srv.URL)
	cfg := config.Config{
		APIKey:     "my-app",
		APIRootURL: u.Host,
		Insecure:   true,
		Headers:    map[string]string{"X-Custom": "1"},
		Paging:     config.Paging{PageSize: 5},
	}
	a, err := New(cfg, WithLogger(logger.Nop()), WithInstrumentation(observability.Noop()))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return a, rec
}

func TestNew_InvalidConfig(t *testing.T) {
	_, err := New(config.Config{}, WithLogger(logger.Nop()))
	if !errors.HasCode(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("expected INVALID_CONFIG, got %v", err)
	}
}

func TestNew_Defaults(t *testing.T) {
	a, _ := newTestApp(t)

	if !strings.HasSuffix(a.Transport().Config().BaseURL, "/v1/my-app/") {
		t.Errorf("unexpected base URL %q", a.Transport().Config().BaseURL)
	}
	if a.Config().Timeout != config.DefaultTimeout {
		t.Errorf("expected default timeout, got %v", a.Config().Timeout)
	}
	if a.Login() == nil || a.ValueSetItems() == nil || a.Avatars() == nil {
		t.Fatal("expected all services wired")
	}
	if a.Login().Store() != a.TokenStore() {
		t.Error("login and transport must share the token store")
	}
}

func TestApp_LoginThenAuthenticatedCall(t *testing.T) {
	a, rec := newTestApp(t)
	ctx := context.Background()

	if h := a.Health(ctx); h.Status != component.StatusDegraded {
		t.Errorf("expected degraded before login, got %+v", h)
	}

	if _, err := a.Login().Login(ctx, "alice", "secret"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if h := a.Health(ctx); !h.Healthy() {
		t.Errorf("expected healthy after login, got %+v", h)
	}

	if _, err := a.ValueSetItems().Find(ctx, "colors", params.FindOptions{}); err != nil {
		t.Fatalf("find failed: %v", err)
	}
	hdr, uri := rec.last()
	if uri != "/v1/my-app/value-sets/colors/items/?rpp=5" {
		t.Errorf("unexpected uri %q", uri)
	}
	if got := hdr.Get("Authorization"); got != "bearer tok" {
		t.Errorf("expected stored token, got %q", got)
	}
	if !strings.HasPrefix(hdr.Get("User-Agent"), "baasic-go/") {
		t.Errorf("unexpected user agent %q", hdr.Get("User-Agent"))
	}
	if hdr.Get("Accept") != DefaultAccept || hdr.Get("X-Custom") != "1" {
		t.Errorf("unexpected headers %v", hdr)
	}
	if hdr.Get("X-Request-ID") == "" {
		t.Error("expected a request id")
	}
}

func TestApp_Lifecycle(t *testing.T) {
	a, _ := newTestApp(t)
	ctx := context.Background()

	if a.Name() != Name {
		t.Errorf("unexpected name %q", a.Name())
	}
	if err := a.Start(ctx); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if err := a.Stop(ctx); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}

	d := a.Describe()
	if d.Type != "http-client" || !strings.Contains(d.Details, "timeout=30s") {
		t.Errorf("unexpected description %+v", d)
	}
}

func TestSetDefaultHeader_RespectsOverride(t *testing.T) {
	h := map[string]string{"accept": "application/hal+json"}
	setDefaultHeader(h, "Accept", DefaultAccept)
	if len(h) != 1 || h["accept"] != "application/hal+json" {
		t.Errorf("configured header overwritten: %v", h)
	}
}

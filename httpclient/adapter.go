package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/kbukum/baasic/logger"
	"github.com/kbukum/baasic/observability"
)

// RequestIDHeader carries a per-request correlation ID.
const RequestIDHeader = "X-Request-ID"

// Adapter is the configured HTTP transport shared by all services.
type Adapter struct {
	httpClient *http.Client
	config     Config
	inst       *observability.Instrumentation
	log        *logger.Logger
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithInstrumentation sets the tracing and metrics instrumentation.
func WithInstrumentation(inst *observability.Instrumentation) Option {
	return func(a *Adapter) {
		if inst != nil {
			a.inst = inst
		}
	}
}

// WithLogger sets the adapter logger.
func WithLogger(log *logger.Logger) Option {
	return func(a *Adapter) {
		if log != nil {
			a.log = log
		}
	}
}

// WithRoundTripper replaces the underlying transport, e.g. for tests.
func WithRoundTripper(rt http.RoundTripper) Option {
	return func(a *Adapter) {
		a.httpClient.Transport = rt
	}
}

// New creates a new HTTP adapter with the given configuration.
func New(cfg Config, opts ...Option) (*Adapter, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	tlsCfg, err := cfg.TLS.Build()
	if err != nil {
		return nil, err
	}
	if tlsCfg != nil {
		transport.TLSClientConfig = tlsCfg
	}

	a := &Adapter{
		httpClient: &http.Client{Transport: transport, Timeout: cfg.Timeout},
		config:     cfg,
		inst:       observability.Noop(),
		log:        logger.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.log = a.log.WithComponent("httpclient")
	return a, nil
}

// Name returns the adapter name.
func (a *Adapter) Name() string {
	return a.config.Name
}

// Config returns the adapter's configuration.
func (a *Adapter) Config() Config {
	return a.config
}

// Unwrap returns the underlying *http.Client.
func (a *Adapter) Unwrap() *http.Client {
	return a.httpClient
}

// Close releases idle connections.
func (a *Adapter) Close(_ context.Context) error {
	a.httpClient.CloseIdleConnections()
	return nil
}

// Do executes an HTTP request and returns the complete response. For non-2xx
// statuses both the response and a classified *Error are returned.
func (a *Adapter) Do(ctx context.Context, req Request) (resp *Response, err error) {
	httpReq, call, err := a.start(ctx, req)
	if err != nil {
		return nil, err
	}
	defer func() { a.finish(call, httpReq, statusOf(resp), err) }()

	raw, err := a.httpClient.Do(httpReq)
	if err != nil {
		return nil, transportError(httpReq.Context(), err)
	}
	defer func() { _ = raw.Body.Close() }()

	body, err := io.ReadAll(raw.Body)
	if err != nil {
		return nil, NewConnectionError(fmt.Errorf("read response body: %w", err))
	}

	resp = &Response{
		StatusCode: raw.StatusCode,
		Headers:    flattenHeaders(raw.Header),
		Body:       body,
	}
	if classErr := ClassifyStatusCode(raw.StatusCode, body); classErr != nil {
		return resp, classErr
	}
	return resp, nil
}

// DoStream executes an HTTP request and returns the body unread. The adapter
// timeout does not apply; cancel ctx to abort. The caller must Close the
// returned stream.
func (a *Adapter) DoStream(ctx context.Context, req Request) (stream *StreamResponse, err error) {
	httpReq, call, err := a.start(ctx, req)
	if err != nil {
		return nil, err
	}
	status := 0
	defer func() { a.finish(call, httpReq, status, err) }()

	streamClient := &http.Client{Transport: a.httpClient.Transport}
	raw, err := streamClient.Do(httpReq)
	if err != nil {
		return nil, transportError(httpReq.Context(), err)
	}
	status = raw.StatusCode

	if raw.StatusCode >= 300 {
		body, _ := io.ReadAll(raw.Body)
		_ = raw.Body.Close()
		if classErr := ClassifyStatusCode(raw.StatusCode, body); classErr != nil {
			return nil, classErr
		}
	}

	return &StreamResponse{
		StatusCode:    raw.StatusCode,
		Headers:       flattenHeaders(raw.Header),
		ContentType:   raw.Header.Get("Content-Type"),
		ContentLength: raw.ContentLength,
		Body:          raw.Body,
	}, nil
}

// start builds the request and opens its span.
func (a *Adapter) start(ctx context.Context, req Request) (*http.Request, *observability.Call, error) {
	target, err := a.resolveURL(req)
	if err != nil {
		return nil, nil, err
	}

	requestID := req.Headers[RequestIDHeader]
	if requestID == "" {
		if id, ok := logger.RequestIDFromContext(ctx); ok {
			requestID = id
		} else {
			requestID = uuid.NewString()
		}
	}
	ctx = logger.ContextWithRequestID(ctx, requestID)

	ctx, call := a.inst.Start(ctx, req.Method, target)
	call.SetRequestID(requestID)

	httpReq, err := a.buildRequest(ctx, req, target)
	if err != nil {
		call.End(0, ErrCodeValidation.String(), err)
		return nil, nil, err
	}
	httpReq.Header.Set(RequestIDHeader, requestID)
	return httpReq, call, nil
}

func (a *Adapter) finish(call *observability.Call, req *http.Request, status int, err error) {
	call.End(status, Outcome(err), err)

	log := a.log.WithContext(req.Context())
	fields := logger.Fields(
		logger.FieldMethod, req.Method,
		logger.FieldURL, req.URL.String(),
		logger.FieldStatus, status,
	)
	if err != nil {
		log.WithError(err).Debug("request failed", fields)
		return
	}
	log.Debug("request completed", fields)
}

// resolveURL joins relative paths onto BaseURL; absolute URLs pass through.
func (a *Adapter) resolveURL(req Request) (string, error) {
	target := req.Path
	if !isAbsolute(target) {
		if a.config.BaseURL == "" {
			return "", NewValidationError(fmt.Sprintf("relative path %q without base URL", req.Path))
		}
		target = strings.TrimRight(a.config.BaseURL, "/") + "/" + strings.TrimLeft(target, "/")
	}
	if len(req.Query) == 0 {
		return target, nil
	}

	u, err := url.Parse(target)
	if err != nil {
		return "", NewValidationError(fmt.Sprintf("parse url: %v", err))
	}
	q := u.Query()
	for k, v := range req.Query {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func isAbsolute(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// buildRequest constructs an *http.Request from the adapter config and request.
func (a *Adapter) buildRequest(ctx context.Context, req Request, target string) (*http.Request, error) {
	body, contentType, err := encodeBody(req.Body)
	if err != nil {
		return nil, NewValidationError(fmt.Sprintf("encode body: %v", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return nil, NewValidationError(fmt.Sprintf("create request: %v", err))
	}

	for k, v := range a.config.Headers {
		httpReq.Header.Set(k, v)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}
	if body != nil && httpReq.Header.Get("Content-Type") == "" && contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	auth := a.config.Auth
	if req.Auth != nil {
		auth = req.Auth
	}
	auth.apply(httpReq)

	return httpReq, nil
}

// encodeBody converts a body value into an io.Reader and content type.
func encodeBody(body any) (io.Reader, string, error) {
	if body == nil {
		return nil, "", nil
	}
	switch v := body.(type) {
	case *MultipartBody:
		return v.encode()
	case url.Values:
		return strings.NewReader(v.Encode()), "application/x-www-form-urlencoded", nil
	case io.Reader:
		return v, "", nil
	case []byte:
		return bytes.NewReader(v), "", nil
	case string:
		return strings.NewReader(v), "text/plain", nil
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, "", err
		}
		return bytes.NewReader(data), "application/json", nil
	}
}

func transportError(ctx context.Context, err error) *Error {
	var netErr net.Error
	if ctx.Err() != nil || (errors.As(err, &netErr) && netErr.Timeout()) {
		return NewTimeoutError(err)
	}
	return NewConnectionError(err)
}

func statusOf(resp *Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode
}

// flattenHeaders converts multi-value headers to single-value.
func flattenHeaders(h http.Header) map[string]string {
	result := make(map[string]string, len(h))
	for k, v := range h {
		if len(v) > 0 {
			result[k] = v[0]
		}
	}
	return result
}

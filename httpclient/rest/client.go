package rest

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/kbukum/baasic/errors"
	"github.com/kbukum/baasic/httpclient"
)

// Transport sends requests. *httpclient.Adapter implements it.
type Transport interface {
	Do(ctx context.Context, req httpclient.Request) (*httpclient.Response, error)
	DoStream(ctx context.Context, req httpclient.Request) (*httpclient.StreamResponse, error)
}

var _ Transport = (*httpclient.Adapter)(nil)

// RequestOption configures a single REST request.
type RequestOption func(*httpclient.Request)

// WithHeader sets one request header.
func WithHeader(key, value string) RequestOption {
	return func(r *httpclient.Request) {
		if r.Headers == nil {
			r.Headers = make(map[string]string)
		}
		r.Headers[key] = value
	}
}

// WithHeaders merges headers into the request.
func WithHeaders(headers map[string]string) RequestOption {
	return func(r *httpclient.Request) {
		for k, v := range headers {
			WithHeader(k, v)(r)
		}
	}
}

// WithBody sets the request body, e.g. for a DELETE that carries one.
func WithBody(body any) RequestOption {
	return func(r *httpclient.Request) {
		r.Body = body
	}
}

// WithAuth overrides authentication for the request.
func WithAuth(auth *httpclient.AuthConfig) RequestOption {
	return func(r *httpclient.Request) {
		r.Auth = auth
	}
}

// Response wraps a typed REST response.
type Response[T any] struct {
	StatusCode int
	Headers    map[string]string
	Data       T
}

// Get performs a GET request and decodes the JSON response into type T.
func Get[T any](ctx context.Context, t Transport, path string, opts ...RequestOption) (*Response[T], error) {
	return do[T](ctx, t, http.MethodGet, path, nil, opts...)
}

// Post performs a POST request with a body and decodes the response into type T.
func Post[T any](ctx context.Context, t Transport, path string, body any, opts ...RequestOption) (*Response[T], error) {
	return do[T](ctx, t, http.MethodPost, path, body, opts...)
}

// Put performs a PUT request with a body and decodes the response into type T.
func Put[T any](ctx context.Context, t Transport, path string, body any, opts ...RequestOption) (*Response[T], error) {
	return do[T](ctx, t, http.MethodPut, path, body, opts...)
}

// Delete performs a DELETE request and decodes the response into type T.
func Delete[T any](ctx context.Context, t Transport, path string, opts ...RequestOption) (*Response[T], error) {
	return do[T](ctx, t, http.MethodDelete, path, nil, opts...)
}

// Send performs a request with an explicit method, decoding into T.
func Send[T any](ctx context.Context, t Transport, method, path string, body any, opts ...RequestOption) (*Response[T], error) {
	return do[T](ctx, t, method, path, body, opts...)
}

// Stream performs a request and returns the body unread. The caller must
// Close the result.
func Stream(ctx context.Context, t Transport, method, path string, opts ...RequestOption) (*httpclient.StreamResponse, error) {
	return t.DoStream(ctx, newRequest(method, path, nil, opts))
}

func newRequest(method, path string, body any, opts []RequestOption) httpclient.Request {
	req := httpclient.Request{Method: method, Path: path, Body: body}
	for _, opt := range opts {
		opt(&req)
	}
	return req
}

// do executes a REST request and decodes the JSON response. Empty bodies
// leave T at its zero value.
func do[T any](ctx context.Context, t Transport, method, path string, body any, opts ...RequestOption) (*Response[T], error) {
	resp, err := t.Do(ctx, newRequest(method, path, body, opts))
	if err != nil {
		return nil, err
	}

	out := &Response[T]{StatusCode: resp.StatusCode, Headers: resp.Headers}
	if len(resp.Body) > 0 {
		if err := json.Unmarshal(resp.Body, &out.Data); err != nil {
			return nil, errors.Decode(err).WithDetail("status", resp.StatusCode)
		}
	}
	return out, nil
}

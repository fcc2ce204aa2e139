package httpclient

import (
	"io"
)

// Request describes an outbound HTTP request.
type Request struct {
	// Method is the HTTP method (GET, POST, PUT, DELETE, ...).
	Method string
	// Path is a route relative to the adapter's BaseURL, or an absolute URL
	// such as a hypermedia link href.
	Path string
	// Headers are request-specific headers (merged over adapter defaults).
	Headers map[string]string
	// Query is merged into the URL's query string. Expanded routes already
	// carry their query, so services leave this empty.
	Query map[string]string
	// Body accepts io.Reader, []byte, string, url.Values, *MultipartBody, or
	// any value that will be JSON-encoded.
	Body any
	// Auth overrides the adapter-level auth for this request.
	Auth *AuthConfig
}

// Response is the result of an HTTP request.
type Response struct {
	StatusCode int
	Headers    map[string]string
	Body       []byte
}

// IsSuccess returns true if the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// IsError returns true if the status code is 4xx or 5xx.
func (r *Response) IsError() bool {
	return r.StatusCode >= 400
}

// StreamResponse wraps a streaming HTTP response. The caller must Close it.
type StreamResponse struct {
	StatusCode    int
	Headers       map[string]string
	ContentType   string
	ContentLength int64
	Body          io.ReadCloser
}

// Close releases the underlying connection.
func (r *StreamResponse) Close() error {
	if r.Body != nil {
		return r.Body.Close()
	}
	return nil
}

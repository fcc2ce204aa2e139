// Package httpclient is the transport every Baasic service sends its
// requests through.
//
// An Adapter owns one *http.Client and applies, per request:
//
//   - base URL resolution for relative routes (absolute hrefs from
//     hypermedia links are used as-is)
//   - default headers, then request headers
//   - authentication, usually a token source backed by the login store
//   - an X-Request-ID header when the caller did not set one
//   - one OpenTelemetry client span plus request metrics
//
// Non-2xx responses are classified into *Error values (auth, not_found,
// validation, server ...). The adapter never retries.
//
//	adapter, err := httpclient.New(httpclient.Config{
//		BaseURL: "https://api.baasic.com/v1/my-app/",
//		Timeout: 30 * time.Second,
//	})
//	resp, err := adapter.Do(ctx, httpclient.Request{
//		Method: http.MethodGet,
//		Path:   "value-sets/colors/items/",
//	})
//
// Typed JSON helpers live in the rest subpackage.
package httpclient

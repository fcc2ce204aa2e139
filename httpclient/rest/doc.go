// Package rest provides typed JSON helpers over the HTTP transport.
//
// Helpers take a Transport, which *httpclient.Adapter implements, so services
// can be tested against any fake that speaks httpclient.Request:
//
//	resp, err := rest.Get[hal.Collection[Item]](ctx, transport, url)
//	created, err := rest.Post[hal.Resource[Item]](ctx, transport, url, item)
//	_, err = rest.Delete[struct{}](ctx, transport, href)
//
// Response bodies that fail to decode are reported as DECODE_ERROR; transport
// errors are returned unchanged.
package rest

// Package route expands Baasic route templates into request URLs.
//
// Templates use RFC 6570 syntax. Path placeholders such as {id} are always
// expanded; a missing value yields an empty segment rather than an error.
// Query placeholders such as {?embed,fields} are dropped entirely when the
// parameter bag has no value for them, and list values are comma-joined.
//
//	t := route.MustParse("value-sets/{setName}/items/{id}/{?embed,fields}")
//	u := t.Expand(route.Params{"setName": "colors", "id": "42"})
//	// value-sets/colors/items/42/
//
// Per-operation defaults are merged underneath the caller's parameters, so an
// explicit caller value always wins:
//
//	u := route.Expand(t, route.Params{"rpp": 10}, route.Params{"rpp": 50})
package route

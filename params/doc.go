// Package params normalizes caller options into the parameter bags and
// request payloads the Baasic API expects.
//
// Find and get options become route.QueryParams using the API's query names
// (searchQuery, page, rpp, sort, embed, fields). Payload-bearing calls nest
// the caller's data under the "model" key before links are resolved or the
// request is sent.
package params

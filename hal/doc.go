// Package hal resolves request targets from the hypermedia links embedded in
// resources previously fetched from the Baasic API.
//
// A fetched resource is represented by Resource[T]: the decoded payload plus
// its link collection. Operations that mutate or delete a specific resource
// take a *Resource[T] and resolve their URL by relation name:
//
//	href, err := hal.ResolveLink(item, hal.RelPut)
//
// Resolution is an exact match on the relation name. A missing relation fails
// with LINK_NOT_FOUND and a resource that carries no link collection fails with
// INVALID_RESOURCE; neither case ever yields a default URL.
//
// Relation names follow a fixed convention shared with the API:
//
//	put     update
//	delete  remove
//	unlink  detach a linked sub-resource without deleting it
//	link    attach an existing sub-resource
//
// The resolver never derives the HTTP method from the relation; callers pass
// the method to the transport explicitly.
package hal

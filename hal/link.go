package hal

import (
	"github.com/kbukum/baasic/errors"
)

// Relation names used by the Baasic API.
const (
	RelSelf   = "self"
	RelPut    = "put"
	RelDelete = "delete"
	RelUnlink = "unlink"
	RelLink   = "link"
)

// Convention pairs a relation name with the operation it conventionally
// drives.
type Convention struct {
	Rel       string
	Operation string
}

// Conventions is the relation table of the API contract.
var Conventions = []Convention{
	{Rel: RelPut, Operation: "update"},
	{Rel: RelDelete, Operation: "remove"},
	{Rel: RelUnlink, Operation: "detach a linked sub-resource without deleting it"},
	{Rel: RelLink, Operation: "attach an existing sub-resource"},
}

// Link is a single named hypermedia link.
type Link struct {
	Rel    string `json:"rel"`
	Href   string `json:"href"`
	Method string `json:"method,omitempty"`
}

// Links is a resource's link collection. A nil Links means the resource
// carries no collection at all; an empty non-nil Links means it was fetched
// but exposes no links.
type Links []Link

// Find returns the link with the given relation name.
func (l Links) Find(rel string) (Link, bool) {
	for _, link := range l {
		if link.Rel == rel {
			return link, true
		}
	}
	return Link{}, false
}

// Has reports whether a link with the given relation exists.
func (l Links) Has(rel string) bool {
	_, ok := l.Find(rel)
	return ok
}

// Rels returns the relation names in collection order.
func (l Links) Rels() []string {
	rels := make([]string, len(l))
	for i, link := range l {
		rels[i] = link.Rel
	}
	return rels
}

// Linked is implemented by values that carry a link collection.
type Linked interface {
	ResourceLinks() Links
}

// Resolve returns the link with the given relation name.
func Resolve(resource Linked, rel string) (Link, error) {
	if resource == nil {
		return Link{}, errors.InvalidResource("")
	}
	links := resource.ResourceLinks()
	if links == nil {
		return Link{}, errors.InvalidResource("")
	}
	link, ok := links.Find(rel)
	if !ok {
		return Link{}, errors.LinkNotFound(rel, links.Rels())
	}
	return link, nil
}

// ResolveLink returns the href of the link with the given relation name.
func ResolveLink(resource Linked, rel string) (string, error) {
	link, err := Resolve(resource, rel)
	if err != nil {
		return "", err
	}
	return link.Href, nil
}

// IsLinkNotFound reports whether err is a LINK_NOT_FOUND error.
func IsLinkNotFound(err error) bool {
	return errors.HasCode(err, errors.ErrCodeLinkNotFound)
}

// IsInvalidResource reports whether err is an INVALID_RESOURCE error.
func IsInvalidResource(err error) bool {
	return errors.HasCode(err, errors.ErrCodeInvalidResource)
}

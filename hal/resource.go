package hal

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/kbukum/baasic/errors"
)

// Resource is a payload fetched from the API together with its links.
type Resource[T any] struct {
	Payload T
	Links   Links
}

// NewResource pairs a payload with a link collection.
func NewResource[T any](payload T, links Links) *Resource[T] {
	return &Resource[T]{Payload: payload, Links: links}
}

// ResourceLinks implements Linked. A nil resource has no links.
func (r *Resource[T]) ResourceLinks() Links {
	if r == nil {
		return nil
	}
	return r.Links
}

// Link resolves the href for rel on this resource.
func (r *Resource[T]) Link(rel string) (string, error) {
	return ResolveLink(r, rel)
}

// UnmarshalJSON decodes the payload fields and the link collection from the
// same JSON object.
func (r *Resource[T]) UnmarshalJSON(data []byte) error {
	var payload T
	if err := json.Unmarshal(data, &payload); err != nil {
		return err
	}
	links, err := decodeLinks(data)
	if err != nil {
		return err
	}
	r.Payload = payload
	r.Links = links
	return nil
}

// MarshalJSON encodes the payload fields and, when present, a "links" array.
// The payload must encode as a JSON object.
func (r Resource[T]) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(r.Payload)
	if err != nil {
		return nil, err
	}
	if r.Links == nil {
		return data, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("hal: payload must encode as a JSON object: %w", err)
	}
	if fields == nil {
		fields = make(map[string]json.RawMessage, 1)
	}
	links, err := json.Marshal([]Link(r.Links))
	if err != nil {
		return nil, err
	}
	fields["links"] = links
	return json.Marshal(fields)
}

// Decode decodes a resource received at the system boundary. A document
// without any link collection was not produced by a fetch and is rejected
// with INVALID_RESOURCE.
func Decode[T any](data []byte) (*Resource[T], error) {
	var r Resource[T]
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, errors.Decode(err)
	}
	if r.Links == nil {
		return nil, errors.InvalidResource("decoded document carries no link collection")
	}
	return &r, nil
}

// linkEnvelope captures both link encodings the API emits: a "links" array
// of {rel, href, method} and a HAL "_links" object keyed by relation.
type linkEnvelope struct {
	Links    *[]Link                    `json:"links"`
	HALLinks map[string]json.RawMessage `json:"_links"`
}

type halLink struct {
	Href   string `json:"href"`
	Method string `json:"method,omitempty"`
}

// decodeLinks extracts the link collection from a JSON object. It returns nil
// when neither encoding is present. The first occurrence of a relation wins.
func decodeLinks(data []byte) (Links, error) {
	var env linkEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}

	var links Links
	if env.Links != nil {
		links = make(Links, 0, len(*env.Links))
		for _, link := range *env.Links {
			if !links.Has(link.Rel) {
				links = append(links, link)
			}
		}
	}

	if env.HALLinks != nil {
		if links == nil {
			links = make(Links, 0, len(env.HALLinks))
		}
		rels := make([]string, 0, len(env.HALLinks))
		for rel := range env.HALLinks {
			rels = append(rels, rel)
		}
		sort.Strings(rels)
		for _, rel := range rels {
			hl, ok := parseHALLink(env.HALLinks[rel])
			if !ok || links.Has(rel) {
				continue
			}
			links = append(links, Link{Rel: rel, Href: hl.Href, Method: hl.Method})
		}
	}
	return links, nil
}

// parseHALLink accepts a single link object or an array of them, in which
// case the first entry is used.
func parseHALLink(raw json.RawMessage) (halLink, bool) {
	var single halLink
	if err := json.Unmarshal(raw, &single); err == nil {
		return single, true
	}
	var many []halLink
	if err := json.Unmarshal(raw, &many); err == nil && len(many) > 0 {
		return many[0], true
	}
	return halLink{}, false
}

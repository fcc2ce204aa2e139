package hal

import "encoding/json"

// Collection is a page of resources returned by a find operation.
type Collection[T any] struct {
	Items          []*Resource[T]
	Page           int
	RecordsPerPage int
	TotalRecords   int
	SearchQuery    string
	Sort           string
	Embed          string
	Links          Links
}

// collectionPage mirrors the paging fields of a Collection on the wire.
type collectionPage[T any] struct {
	Items          []*Resource[T] `json:"item"`
	Page           int            `json:"page"`
	RecordsPerPage int            `json:"recordsPerPage"`
	TotalRecords   int            `json:"totalRecords"`
	SearchQuery    string         `json:"searchQuery,omitempty"`
	Sort           string         `json:"sort,omitempty"`
	Embed          string         `json:"embed,omitempty"`
}

// ResourceLinks implements Linked.
func (c *Collection[T]) ResourceLinks() Links {
	if c == nil {
		return nil
	}
	return c.Links
}

// UnmarshalJSON decodes the page and its links.
func (c *Collection[T]) UnmarshalJSON(data []byte) error {
	var page collectionPage[T]
	if err := json.Unmarshal(data, &page); err != nil {
		return err
	}
	links, err := decodeLinks(data)
	if err != nil {
		return err
	}
	*c = Collection[T]{
		Items:          page.Items,
		Page:           page.Page,
		RecordsPerPage: page.RecordsPerPage,
		TotalRecords:   page.TotalRecords,
		SearchQuery:    page.SearchQuery,
		Sort:           page.Sort,
		Embed:          page.Embed,
		Links:          links,
	}
	return nil
}

// Payloads returns the item payloads without their links.
func (c *Collection[T]) Payloads() []T {
	out := make([]T, len(c.Items))
	for i, item := range c.Items {
		if item != nil {
			out[i] = item.Payload
		}
	}
	return out
}

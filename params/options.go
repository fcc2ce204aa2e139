package params

import (
	"strings"

	"github.com/kbukum/baasic/route"
)

// Query parameter names understood by the API.
const (
	KeySearchQuery = "searchQuery"
	KeyPage        = "page"
	KeyPageSize    = "rpp"
	KeySort        = "sort"
	KeyEmbed       = "embed"
	KeyFields      = "fields"
)

// FindOptions refines a collection query.
type FindOptions struct {
	// SearchQuery is a free-text filter.
	SearchQuery string
	// Page is the 1-based page number.
	Page int
	// PageSize is the number of records per page.
	PageSize int
	// OrderBy is the field to sort by.
	OrderBy string
	// OrderDirection is "asc" or "desc". Ignored without OrderBy.
	OrderDirection string
	// Embed lists related resources to embed in the response.
	Embed []string
	// Fields restricts the returned fields.
	Fields []string
}

// Query converts the options into query parameters. Zero values are omitted.
func (o FindOptions) Query() route.QueryParams {
	q := route.QueryParams{}
	if o.SearchQuery != "" {
		q[KeySearchQuery] = o.SearchQuery
	}
	if o.Page > 0 {
		q[KeyPage] = o.Page
	}
	if o.PageSize > 0 {
		q[KeyPageSize] = o.PageSize
	}
	if sort := SortExpression(o.OrderBy, o.OrderDirection); sort != "" {
		q[KeySort] = sort
	}
	if len(o.Embed) > 0 {
		q[KeyEmbed] = o.Embed
	}
	if len(o.Fields) > 0 {
		q[KeyFields] = o.Fields
	}
	return q
}

// GetOptions refines a single-resource read.
type GetOptions struct {
	Embed  []string
	Fields []string
}

// Query converts the options into query parameters.
func (o GetOptions) Query() route.QueryParams {
	q := route.QueryParams{}
	if len(o.Embed) > 0 {
		q[KeyEmbed] = o.Embed
	}
	if len(o.Fields) > 0 {
		q[KeyFields] = o.Fields
	}
	return q
}

// Defaults are per-operation values injected underneath caller options.
type Defaults struct {
	PageSize int
	Sort     string
}

// Params returns the defaults as a parameter bag. Zero values are not
// injected.
func (d Defaults) Params() route.Params {
	p := route.Params{}
	if d.PageSize > 0 {
		p[KeyPageSize] = d.PageSize
	}
	if d.Sort != "" {
		p[KeySort] = d.Sort
	}
	return p
}

// SortExpression builds the API's "field|direction" sort value.
func SortExpression(orderBy, direction string) string {
	orderBy = strings.TrimSpace(orderBy)
	if orderBy == "" {
		return ""
	}
	direction = strings.ToLower(strings.TrimSpace(direction))
	if direction == "" {
		return orderBy
	}
	return orderBy + "|" + direction
}

// Resolve joins path and query halves and merges defaults underneath, so
// caller values always win.
func Resolve(defaults Defaults, path route.PathParams, query route.QueryParams) route.Params {
	return route.Merge(defaults.Params(), route.Join(path, query))
}

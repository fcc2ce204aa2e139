package route

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yosida95/uritemplate/v3"
)

// Params is the parameter bag consumed by template expansion. Values may be
// strings, integers, floats, bools, fmt.Stringers, or slices of those. A nil
// value or an empty slice counts as unset.
type Params map[string]any

// PathParams holds values addressing a resource (identifiers, set names).
type PathParams map[string]string

// QueryParams holds values refining a request (paging, sorting, embeds).
type QueryParams map[string]any

// Merge returns a new bag with defaults overlaid by params. A key present in
// params with a set value always wins over the same default; nil and empty
// slices leave the default in place.
func Merge(defaults, params Params) Params {
	merged := make(Params, len(defaults)+len(params))
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range params {
		if _, ok := toValue(v, true); !ok {
			continue
		}
		merged[k] = v
	}
	return merged
}

// Join combines path and query halves into a single bag. Path values win on
// a name clash.
func Join(path PathParams, query QueryParams) Params {
	joined := make(Params, len(path)+len(query))
	for k, v := range query {
		joined[k] = v
	}
	for k, v := range path {
		joined[k] = v
	}
	return joined
}

// With returns a copy of p with key set to value.
func (p Params) With(key string, value any) Params {
	out := make(Params, len(p)+1)
	for k, v := range p {
		out[k] = v
	}
	out[key] = value
	return out
}

// values converts the bag into template values, dropping unset entries.
func (p Params) values(flatten bool) uritemplate.Values {
	vals := make(uritemplate.Values, len(p))
	for name, raw := range p {
		if v, ok := toValue(raw, flatten); ok {
			vals.Set(name, v)
		}
	}
	return vals
}

func toValue(raw any, flatten bool) (v uritemplate.Value, ok bool) {
	var items []string
	switch x := raw.(type) {
	case nil:
		return v, false
	case []string:
		items = x
	case []int:
		for _, n := range x {
			items = append(items, strconv.Itoa(n))
		}
	case []any:
		for _, e := range x {
			if e == nil {
				continue
			}
			items = append(items, formatScalar(e))
		}
	default:
		return uritemplate.String(formatScalar(x)), true
	}

	if len(items) == 0 {
		return v, false
	}
	if flatten {
		return uritemplate.String(strings.Join(items, ",")), true
	}
	return uritemplate.List(items...), true
}

func formatScalar(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}

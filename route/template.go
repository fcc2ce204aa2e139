package route

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/yosida95/uritemplate/v3"
)

// expressionPattern matches one template expression and captures its operator
// and variable list.
var expressionPattern = regexp.MustCompile(`\{([+#./;?&]?)([^}]*)\}`)

// Template is a parsed route template. It is immutable and safe for
// concurrent use.
type Template struct {
	raw      string
	tmpl     *uritemplate.Template
	names    []string
	required []string
}

// Parse parses a route template.
func Parse(raw string) (*Template, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("route: template must not be empty")
	}
	tmpl, err := uritemplate.New(raw)
	if err != nil {
		return nil, fmt.Errorf("route: parse %q: %w", raw, err)
	}

	t := &Template{raw: raw, tmpl: tmpl}
	for _, m := range expressionPattern.FindAllStringSubmatch(raw, -1) {
		operator := m[1]
		for _, varspec := range strings.Split(m[2], ",") {
			name := varName(varspec)
			if name == "" {
				continue
			}
			t.names = append(t.names, name)
			// Form-style query expressions are the only optional ones.
			if operator != "?" && operator != "&" {
				t.required = append(t.required, name)
			}
		}
	}
	return t, nil
}

// MustParse is like Parse but panics on error. Intended for package-level
// route tables.
func MustParse(raw string) *Template {
	t, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return t
}

// Raw returns the template string.
func (t *Template) Raw() string { return t.raw }

// String implements fmt.Stringer.
func (t *Template) String() string { return t.raw }

// Names returns every variable name in template order.
func (t *Template) Names() []string {
	return append([]string(nil), t.names...)
}

// Required returns the names of path placeholders, which always expand.
func (t *Template) Required() []string {
	return append([]string(nil), t.required...)
}

// Missing returns the required placeholders that params leaves unset. Such
// placeholders still expand, to an empty segment.
func (t *Template) Missing(params Params) []string {
	var missing []string
	for _, name := range t.required {
		if _, ok := toValue(params[name], false); !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

// Expand resolves the template against params. Unknown names are ignored and
// expansion never fails.
func (t *Template) Expand(params Params) string {
	out, err := t.tmpl.Expand(params.values(false))
	if err != nil {
		// Prefix modifiers reject list values; retry with every value
		// flattened to a single comma-joined string.
		out, _ = t.tmpl.Expand(params.values(true))
	}
	return out
}

// Expand merges defaults under params and expands t.
func Expand(t *Template, defaults, params Params) string {
	return t.Expand(Merge(defaults, params))
}

// varName strips the explode and prefix modifiers from an RFC 6570 varspec.
func varName(varspec string) string {
	name := strings.TrimSpace(varspec)
	name = strings.TrimSuffix(name, "*")
	if i := strings.IndexByte(name, ':'); i >= 0 {
		name = name[:i]
	}
	return name
}

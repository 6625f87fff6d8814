package option

import (
	"strings"

	"github.com/sahilm/fuzzy"
	"golang.org/x/text/cases"
)

// Filter prefixes.
const (
	prefixType    = "t:"
	prefixChanged = "d:"
	prefixFuzzy   = "~"
)

// nameSource adapts an option slice to fuzzy.Source.
type nameSource []*Option

func (n nameSource) String(i int) string { return n[i].Name }
func (n nameSource) Len() int            { return len(n) }

// applyFilter returns the options of all matching the filter expression, in display order.
//
// Supported expressions:
//   - "" matches everything
//   - "t:<type>" matches options of the given type
//   - "d:" matches options changed from their default, "d:<text>" also matches text in the name
//   - "~<text>" fuzzy matches the name, best match first
//   - anything else matches a case-folded substring of the name
func applyFilter(all []*Option, expr string) []*Option {
	switch {
	case expr == "":
		return append([]*Option(nil), all...)

	case strings.HasPrefix(expr, prefixType):
		typ := strings.ToLower(strings.TrimPrefix(expr, prefixType))
		return keep(all, func(o *Option) bool { return o.Type == typ })

	case strings.HasPrefix(expr, prefixChanged):
		fold := cases.Fold()
		text := fold.String(strings.TrimPrefix(expr, prefixChanged))
		return keep(all, func(o *Option) bool {
			return o.Changed() && strings.Contains(fold.String(o.Name), text)
		})

	case strings.HasPrefix(expr, prefixFuzzy):
		pattern := strings.TrimPrefix(expr, prefixFuzzy)
		if pattern == "" {
			return append([]*Option(nil), all...)
		}
		matches := fuzzy.FindFrom(pattern, nameSource(all))
		out := make([]*Option, 0, len(matches))
		for _, m := range matches {
			out = append(out, all[m.Index])
		}
		return out

	default:
		fold := cases.Fold()
		text := fold.String(expr)
		return keep(all, func(o *Option) bool {
			return strings.Contains(fold.String(o.Name), text)
		})
	}
}

func keep(all []*Option, match func(*Option) bool) []*Option {
	out := make([]*Option, 0, len(all))
	for _, o := range all {
		if match(o) {
			out = append(out, o)
		}
	}
	return out
}

package apischema

import (
	"github.com/apischema/apischema/i18n"
	"github.com/apischema/apischema/instance"
	"github.com/apischema/apischema/schema"
)

// evalEnum checks enum membership and const equality. Equality is
// structural: mappings need the same key set with equal values, sequences
// the same elements in order.
func evalEnum(r *run, n *schema.Node, v any, ipath, spath Path) (Violations, error) {
	var out Violations
	if n.Enum != nil {
		found := false
		for _, member := range n.Enum {
			if instance.Equal(v, member) {
				found = true
				break
			}
		}
		if !found {
			out = append(out, ipath.Violation(spath.Field("enum"), CodeInvalidEnum,
				i18n.T(CodeInvalidEnum, nil),
				map[string]any{"allowed": n.Enum}))
		}
	}
	if n.HasConst && !instance.Equal(v, n.Const) {
		out = append(out, ipath.Violation(spath.Field("const"), CodeInvalidConst,
			i18n.T(CodeInvalidConst, nil),
			map[string]any{"allowed": n.Const}))
	}
	return out, nil
}

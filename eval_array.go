package apischema

import (
	"strconv"

	"github.com/apischema/apischema/i18n"
	"github.com/apischema/apischema/instance"
	"github.com/apischema/apischema/schema"
)

// evalArray checks element sub-schemas (single form applied to every
// element, positional form index-by-index with an overflow policy) and
// uniqueItems via structural equality.
func evalArray(r *run, n *schema.Node, v any, ipath, spath Path) (Violations, error) {
	arr, ok := v.([]any)
	if !ok {
		return nil, nil
	}
	var out Violations

	switch {
	case n.Items != nil:
		for i, el := range arr {
			vs, err := r.eval(n.Items, el, ipath.Index(i), spath.Field("items"))
			if err != nil {
				return nil, err
			}
			out = append(out, vs...)
		}
	case n.TupleItems != nil:
		for i, el := range arr {
			if i < len(n.TupleItems) {
				vs, err := r.eval(n.TupleItems[i], el, ipath.Index(i), spath.Field("items").Index(i))
				if err != nil {
					return nil, err
				}
				out = append(out, vs...)
				continue
			}
			// Overflow beyond the positional list.
			if n.DenyExtraItems {
				out = append(out, ipath.Index(i).Violation(spath.Field("additionalItems"), CodeTooManyItems,
					i18n.T(CodeTooManyItems, map[string]string{"limit": strconv.Itoa(len(n.TupleItems))}),
					map[string]any{"limit": len(n.TupleItems), "got": len(arr)}))
				continue
			}
			if n.AdditionalItems != nil {
				vs, err := r.eval(n.AdditionalItems, el, ipath.Index(i), spath.Field("additionalItems"))
				if err != nil {
					return nil, err
				}
				out = append(out, vs...)
			}
		}
	}

	if n.UniqueItems {
		out = append(out, uniqueViolations(arr, ipath, spath)...)
	}
	return out, nil
}

// uniqueViolations flags each element that structurally duplicates an
// earlier one; every later occurrence is reported once.
func uniqueViolations(arr []any, ipath, spath Path) Violations {
	var out Violations
	for j := 1; j < len(arr); j++ {
		for i := 0; i < j; i++ {
			if instance.Equal(arr[i], arr[j]) {
				out = append(out, ipath.Index(j).Violation(spath.Field("uniqueItems"), CodeDuplicateItems,
					i18n.T(CodeDuplicateItems, map[string]string{"duplicateOf": strconv.Itoa(i)}),
					map[string]any{"duplicateOf": i}))
				break
			}
		}
	}
	return out
}

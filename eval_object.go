package apischema

import (
	"sort"

	"github.com/apischema/apischema/i18n"
	"github.com/apischema/apischema/schema"
)

// evalObject checks required keys, declared property sub-schemas, and the
// additionalProperties policy for undeclared keys. Undeclared keys are
// visited in sorted order so output is deterministic.
func evalObject(r *run, n *schema.Node, v any, ipath, spath Path) (Violations, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, nil
	}
	var out Violations

	for _, key := range n.Required {
		if _, present := obj[key]; !present {
			out = append(out, ipath.Violation(spath.Field("required"), CodeRequired,
				i18n.T(CodeRequired, map[string]string{"key": quoted(key)}),
				map[string]any{"key": key}))
		}
	}

	for _, key := range n.PropertyNames {
		val, present := obj[key]
		if !present {
			continue
		}
		vs, err := r.eval(n.Properties[key], val, ipath.Field(key), spath.Field("properties").Field(key))
		if err != nil {
			return nil, err
		}
		out = append(out, vs...)
	}

	if n.DenyExtraKeys || n.AdditionalProperties != nil {
		for _, key := range undeclaredKeys(obj, n.Properties) {
			if n.DenyExtraKeys {
				out = append(out, ipath.Field(key).Violation(spath.Field("additionalProperties"), CodeUnknownKey,
					i18n.T(CodeUnknownKey, map[string]string{"key": quoted(key)}),
					map[string]any{"key": key}))
				continue
			}
			vs, err := r.eval(n.AdditionalProperties, obj[key], ipath.Field(key), spath.Field("additionalProperties"))
			if err != nil {
				return nil, err
			}
			out = append(out, vs...)
		}
	}
	return out, nil
}

func undeclaredKeys(obj map[string]any, declared map[string]*schema.Node) []string {
	var keys []string
	for k := range obj {
		if _, ok := declared[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

func quoted(s string) string { return `"` + s + `"` }

package apischema

import (
	"strings"

	"github.com/apischema/apischema/i18n"
	"github.com/apischema/apischema/instance"
	"github.com/apischema/apischema/schema"
)

// evalBoolean handles the literal schemas true and false. True admits
// everything, false admits nothing.
func evalBoolean(r *run, n *schema.Node, v any, ipath, spath Path) (Violations, error) {
	if n.Bool {
		return nil, nil
	}
	return Violations{ipath.Violation(spath, CodeNotAllowed,
		i18n.T(CodeNotAllowed, nil), nil)}, nil
}

// evalType checks the instance's runtime category against the declared
// type(s). Union types pass when at least one member matches. "integer" is a
// number with no fractional component, independent of representation.
func evalType(r *run, n *schema.Node, v any, ipath, spath Path) (Violations, error) {
	actual := instance.KindOf(v)
	if n.Nullable && actual == instance.KindNull {
		return nil, nil
	}
	for _, t := range n.Types {
		if typeMatches(t, actual, v) {
			return nil, nil
		}
	}
	expected := strings.Join(n.Types, " or ")
	return Violations{ipath.Violation(spath.Field("type"), CodeInvalidType,
		i18n.T(CodeInvalidType, map[string]string{"expected": expected, "actual": actual.String()}),
		map[string]any{"expected": n.Types, "actual": actual.String()})}, nil
}

func typeMatches(declared string, actual instance.Kind, v any) bool {
	switch declared {
	case "null":
		return actual == instance.KindNull
	case "boolean":
		return actual == instance.KindBool
	case "string":
		return actual == instance.KindString
	case "number":
		return actual == instance.KindNumber
	case "integer":
		return actual == instance.KindNumber && instance.IsIntegral(v)
	case "array":
		return actual == instance.KindArray
	case "object":
		return actual == instance.KindObject
	}
	return false
}

package apischema

import (
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/apischema/apischema/i18n"
	"github.com/apischema/apischema/instance"
	"github.com/apischema/apischema/schema"
)

// evalBounds checks numeric ranges, string length (in characters), array
// length and property counts. Bounds only apply to instances of the
// matching category; the type evaluator reports category mismatches.
func evalBounds(r *run, n *schema.Node, v any, ipath, spath Path) (Violations, error) {
	switch instance.KindOf(v) {
	case instance.KindNumber:
		f, _ := instance.Float(v)
		return numberBounds(n, f, ipath, spath), nil
	case instance.KindString:
		return lengthBounds(utf8.RuneCountInString(v.(string)), n.MinLength, n.MaxLength,
			CodeTooShort, CodeTooLong, "minLength", "maxLength", ipath, spath), nil
	case instance.KindArray:
		return lengthBounds(len(v.([]any)), n.MinItems, n.MaxItems,
			CodeTooFewItems, CodeTooManyItems, "minItems", "maxItems", ipath, spath), nil
	case instance.KindObject:
		return lengthBounds(len(v.(map[string]any)), n.MinProperties, n.MaxProperties,
			CodeTooFewProperties, CodeTooManyProperties, "minProperties", "maxProperties", ipath, spath), nil
	}
	return nil, nil
}

func numberBounds(n *schema.Node, f float64, ipath, spath Path) Violations {
	var out Violations
	if n.Minimum != nil && f < *n.Minimum {
		out = append(out, boundViolation(CodeTooSmall, "minimum", *n.Minimum, f, ipath, spath))
	}
	if n.ExclusiveMinimum != nil && f <= *n.ExclusiveMinimum {
		out = append(out, boundViolation(CodeTooSmall, "exclusiveMinimum", *n.ExclusiveMinimum, f, ipath, spath))
	}
	if n.Maximum != nil && f > *n.Maximum {
		out = append(out, boundViolation(CodeTooBig, "maximum", *n.Maximum, f, ipath, spath))
	}
	if n.ExclusiveMaximum != nil && f >= *n.ExclusiveMaximum {
		out = append(out, boundViolation(CodeTooBig, "exclusiveMaximum", *n.ExclusiveMaximum, f, ipath, spath))
	}
	if n.MultipleOf != nil && !isMultiple(f, *n.MultipleOf) {
		div := formatNum(*n.MultipleOf)
		out = append(out, ipath.Violation(spath.Field("multipleOf"), CodeNotMultipleOf,
			i18n.T(CodeNotMultipleOf, map[string]string{"divisor": div}),
			map[string]any{"divisor": *n.MultipleOf, "got": f}))
	}
	return out
}

func boundViolation(code, keyword string, limit, got float64, ipath, spath Path) Violation {
	return ipath.Violation(spath.Field(keyword), code,
		i18n.T(code, map[string]string{"kind": keyword, "limit": formatNum(limit)}),
		map[string]any{"limit": limit, "got": got})
}

func lengthBounds(got int, min, max *int, codeLow, codeHigh, kwLow, kwHigh string, ipath, spath Path) Violations {
	var out Violations
	if min != nil && got < *min {
		out = append(out, ipath.Violation(spath.Field(kwLow), codeLow,
			i18n.T(codeLow, map[string]string{"limit": strconv.Itoa(*min)}),
			map[string]any{"limit": *min, "got": got}))
	}
	if max != nil && got > *max {
		out = append(out, ipath.Violation(spath.Field(kwHigh), codeHigh,
			i18n.T(codeHigh, map[string]string{"limit": strconv.Itoa(*max)}),
			map[string]any{"limit": *max, "got": got}))
	}
	return out
}

func isMultiple(f, divisor float64) bool {
	if divisor == 0 {
		return true
	}
	d := f / divisor
	return math.Abs(d-math.Round(d)) < 1e-9
}

func formatNum(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

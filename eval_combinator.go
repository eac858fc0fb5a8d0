package apischema

import (
	"fmt"
	"strconv"

	"github.com/apischema/apischema/i18n"
	"github.com/apischema/apischema/schema"
)

// evalCombinator checks allOf/anyOf/oneOf/not. Every alternative is always
// fully evaluated; nothing short-circuits, so a single pass carries maximal
// diagnostic detail.
func evalCombinator(r *run, n *schema.Node, v any, ipath, spath Path) (Violations, error) {
	var out Violations

	// allOf: failures from all sub-schemas are concatenated.
	for i, sub := range n.AllOf {
		vs, err := r.eval(sub, v, ipath, spath.Field("allOf").Index(i))
		if err != nil {
			return nil, err
		}
		out = append(out, vs...)
	}

	if n.AnyOf != nil {
		vs, err := evalAnyOf(r, n.AnyOf, v, ipath, spath)
		if err != nil {
			return nil, err
		}
		out = append(out, vs...)
	}

	if n.OneOf != nil {
		vs, err := evalOneOf(r, n.OneOf, v, ipath, spath)
		if err != nil {
			return nil, err
		}
		out = append(out, vs...)
	}

	if n.Not != nil {
		vs, err := r.eval(n.Not, v, ipath, spath.Field("not"))
		if err != nil {
			return nil, err
		}
		if len(vs) == 0 {
			out = append(out, ipath.Violation(spath.Field("not"), CodeNotMatched,
				i18n.T(CodeNotMatched, nil), nil))
		}
	}
	return out, nil
}

// evalAnyOf passes when at least one alternative matches. When none does,
// the single reported violation nests the alternative with the fewest
// failures (tie-break: first declared) as its causes and counts every
// alternative tried.
func evalAnyOf(r *run, subs []*schema.Node, v any, ipath, spath Path) (Violations, error) {
	branches, matched, err := evalBranches(r, subs, v, ipath, spath.Field("anyOf"))
	if err != nil {
		return nil, err
	}
	if len(matched) > 0 {
		return nil, nil
	}
	best, counts := bestBranch(branches)
	vio := ipath.Violation(spath.Field("anyOf"), CodeAnyOfNoMatch,
		i18n.T(CodeAnyOfNoMatch, map[string]string{"alternatives": strconv.Itoa(len(subs))}),
		map[string]any{"alternatives": len(subs), "best": best, "failures": counts})
	vio.Causes = branches[best]
	return Violations{vio}, nil
}

// evalOneOf requires exactly one match: zero is no-matching-alternative,
// more than one is an ambiguous match reporting which indices matched.
func evalOneOf(r *run, subs []*schema.Node, v any, ipath, spath Path) (Violations, error) {
	branches, matched, err := evalBranches(r, subs, v, ipath, spath.Field("oneOf"))
	if err != nil {
		return nil, err
	}
	switch len(matched) {
	case 1:
		return nil, nil
	case 0:
		best, counts := bestBranch(branches)
		vio := ipath.Violation(spath.Field("oneOf"), CodeOneOfNoMatch,
			i18n.T(CodeOneOfNoMatch, map[string]string{"alternatives": strconv.Itoa(len(subs))}),
			map[string]any{"alternatives": len(subs), "best": best, "failures": counts})
		vio.Causes = branches[best]
		return Violations{vio}, nil
	default:
		return Violations{ipath.Violation(spath.Field("oneOf"), CodeOneOfAmbiguous,
			i18n.T(CodeOneOfAmbiguous, map[string]string{"matched": fmt.Sprint(matched)}),
			map[string]any{"matched": matched})}, nil
	}
}

func evalBranches(r *run, subs []*schema.Node, v any, ipath, spath Path) ([]Violations, []int, error) {
	branches := make([]Violations, len(subs))
	var matched []int
	for i, sub := range subs {
		vs, err := r.eval(sub, v, ipath, spath.Index(i))
		if err != nil {
			return nil, nil, err
		}
		branches[i] = vs
		if len(vs) == 0 {
			matched = append(matched, i)
		}
	}
	return branches, matched, nil
}

func bestBranch(branches []Violations) (int, []int) {
	best := 0
	counts := make([]int, len(branches))
	for i, vs := range branches {
		counts[i] = len(vs)
		if len(vs) < len(branches[best]) {
			best = i
		}
	}
	return best, counts
}

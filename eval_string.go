package apischema

import (
	"github.com/apischema/apischema/i18n"
	"github.com/apischema/apischema/schema"
)

// evalStringRules checks pattern and format on string instances. Formats are
// looked up in the configured registry; an unregistered format name passes
// (graceful degradation), never a hard error.
func evalStringRules(r *run, n *schema.Node, v any, ipath, spath Path) (Violations, error) {
	s, ok := v.(string)
	if !ok {
		return nil, nil
	}
	var out Violations
	if n.Pattern != nil && !n.Pattern.MatchString(s) {
		out = append(out, ipath.Violation(spath.Field("pattern"), CodePattern,
			i18n.T(CodePattern, map[string]string{"pattern": n.Pattern.String()}),
			map[string]any{"pattern": n.Pattern.String()}))
	}
	if n.Format != "" {
		if pred, registered := r.opts.Formats.Lookup(n.Format); registered && !pred(s) {
			out = append(out, ipath.Violation(spath.Field("format"), CodeInvalidFormat,
				i18n.T(CodeInvalidFormat, map[string]string{"format": n.Format}),
				map[string]any{"format": n.Format}))
		}
	}
	return out, nil
}

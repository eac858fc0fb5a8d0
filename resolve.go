package apischema

import (
	"errors"
	"strconv"

	"github.com/apischema/apischema/i18n"
	"github.com/apischema/apischema/schema"
)

// resolve dereferences a pointer into a parsed node, memoized per run.
// An unresolvable or malformed target is reported as a violation at the
// point of use, not a hard abort, so sibling constraints still get checked.
func (r *run) resolve(pointer string, ipath, spath Path) (*schema.Node, *Violation) {
	if n, ok := r.cache[pointer]; ok {
		return n, nil
	}
	r.chain = append(r.chain, pointer)
	defer func() { r.chain = r.chain[:len(r.chain)-1] }()

	frag, err := r.doc.Fragment(pointer)
	if err != nil {
		vio := unresolved(pointer, err, ipath, spath)
		return nil, &vio
	}
	n, err := schema.Parse(frag, r.doc.Profile())
	if err != nil {
		vio := unresolved(pointer, err, ipath, spath)
		return nil, &vio
	}
	r.cache[pointer] = n
	return n, nil
}

func unresolved(pointer string, err error, ipath, spath Path) Violation {
	params := map[string]any{"pointer": pointer}
	var ue *schema.UnresolvedError
	if errors.As(err, &ue) {
		params["reason"] = ue.Reason
	} else {
		params["reason"] = err.Error()
	}
	return ipath.Violation(spath.Field("$ref"), CodeUnresolvedReference,
		i18n.T(CodeUnresolvedReference, map[string]string{"pointer": pointer}), params)
}

// evalReference dereferences the node's target and re-enters evaluation
// against it, extending the schema path with the traversed pointer so error
// paths show the reference chain. Self-referential and mutually recursive
// schemas terminate through the depth bound: each traversal of a reference
// already on the in-progress chain re-enters the cached target without
// re-resolving it.
func evalReference(r *run, n *schema.Node, v any, ipath, spath Path) (Violations, error) {
	target, vio := r.resolve(n.Ref, ipath, spath)
	if vio != nil {
		return Violations{*vio}, nil
	}

	r.depth++
	defer func() { r.depth-- }()
	if r.depth > r.opts.MaxDepth {
		return Violations{ipath.Violation(spath.Field("$ref"), CodeDepthExceeded,
			i18n.T(CodeDepthExceeded, map[string]string{"limit": strconv.Itoa(r.opts.MaxDepth)}),
			map[string]any{"pointer": n.Ref, "limit": r.opts.MaxDepth})}, nil
	}

	r.chain = append(r.chain, n.Ref)
	defer func() { r.chain = r.chain[:len(r.chain)-1] }()

	segs, err := schema.ParsePointer(n.Ref)
	if err != nil {
		// Unreachable after a successful resolve; keep the violation anyway.
		vio := unresolved(n.Ref, err, ipath, spath)
		return Violations{vio}, nil
	}
	return r.eval(target, v, ipath, spath.Field("$ref").Append(segs...))
}

package apischema

import (
	"context"

	"github.com/apischema/apischema/schema"
)

// run carries the per-call evaluation state: the memoized resolution cache,
// the in-progress reference chain, and the depth/step counters. It is never
// shared across Validate calls.
type run struct {
	ctx   context.Context
	doc   *schema.Document
	opts  Options
	cache map[string]*schema.Node
	chain []string
	depth int
	steps int
}

type evalFunc func(r *run, n *schema.Node, v any, ipath, spath Path) (Violations, error)

// evaluators dispatches by constraint category. New kinds extend the table
// without touching the engine loop.
var evaluators map[schema.Kind]evalFunc

func init() {
	evaluators = map[schema.Kind]evalFunc{
		schema.KindBoolean:     evalBoolean,
		schema.KindType:        evalType,
		schema.KindEnum:        evalEnum,
		schema.KindBounds:      evalBounds,
		schema.KindStringRules: evalStringRules,
		schema.KindObject:      evalObject,
		schema.KindArray:       evalArray,
		schema.KindCombinator:  evalCombinator,
		schema.KindReference:   evalReference,
	}
}

// eval runs every constraint category present on the node and concatenates
// the violations. It never short-circuits on a violation; only the step
// budget and cancellation abort.
func (r *run) eval(n *schema.Node, v any, ipath, spath Path) (Violations, error) {
	r.steps++
	if r.steps > r.opts.MaxSteps {
		return nil, ErrLimitExceeded
	}
	if r.steps%256 == 0 {
		if err := r.ctx.Err(); err != nil {
			return nil, err
		}
	}
	var out Violations
	for _, k := range n.Kinds {
		fn, ok := evaluators[k]
		if !ok {
			continue
		}
		vs, err := fn(r, n, v, ipath, spath)
		if err != nil {
			return nil, err
		}
		out = append(out, vs...)
	}
	return out, nil
}

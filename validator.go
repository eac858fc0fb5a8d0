package apischema

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/apischema/apischema/schema"
)

// Validator validates instances against one compiled schema document. It is
// immutable after Compile and safe for concurrent use: every Validate call
// owns its own resolution state.
type Validator struct {
	doc  *schema.Document
	opts Options
}

// Compile parses a decoded schema document into a Validator. Malformed
// schemas fail with *ParseError.
func Compile(raw any, opt Options) (*Validator, error) {
	opt = opt.withDefaults()
	doc, err := schema.NewDocument(raw, opt.Profile)
	if err != nil {
		return nil, &ParseError{Source: "schema", Err: err}
	}
	return &Validator{doc: doc, opts: opt}, nil
}

// Document exposes the compiled schema document.
func (v *Validator) Document() *schema.Document { return v.doc }

// Validate checks one decoded instance against the schema and reports every
// violation found in a single pass, in deterministic depth-first order.
// The only hard failures are ErrLimitExceeded (step budget) and context
// cancellation; constraint violations are returned inside the Result.
func (v *Validator) Validate(ctx context.Context, inst any) (*Result, error) {
	r := &run{
		ctx:   ctx,
		doc:   v.doc,
		opts:  v.opts,
		cache: map[string]*schema.Node{},
	}
	vs, err := r.eval(v.doc.Root(), inst, Path{}, Path{})
	if err != nil {
		return nil, err
	}
	if vs == nil {
		vs = Violations{}
	}
	return &Result{Valid: len(vs) == 0, Violations: vs}, nil
}

// ValidateBatch validates independent instances across a bounded worker
// pool and returns verdicts ordered by input index. A failing instance
// never aborts its siblings.
func (v *Validator) ValidateBatch(ctx context.Context, instances []any, workers int) []BatchResult {
	if workers <= 0 {
		workers = 1
	}
	out := make([]BatchResult, len(instances))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, inst := range instances {
		i, inst := i, inst
		g.Go(func() error {
			res, err := v.Validate(ctx, inst)
			out[i] = BatchResult{Index: i, Result: res, Err: err}
			return nil
		})
	}
	_ = g.Wait()
	return out
}

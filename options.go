package apischema

import (
	"github.com/apischema/apischema/format"
	"github.com/apischema/apischema/schema"
)

// Defaults for Options fields left at their zero value.
const (
	DefaultMaxDepth = 100
	DefaultMaxSteps = 100000
)

// Options bundles engine configuration.
type Options struct {
	// MaxDepth bounds reference recursion. Exceeding it yields a
	// depth_exceeded violation instead of looping forever.
	MaxDepth int
	// MaxSteps bounds the total number of evaluation steps per Validate
	// call, guarding against pathological documents (e.g. exponential
	// blow-up from nested anyOf). Exceeding it fails the whole call with
	// ErrLimitExceeded.
	MaxSteps int
	// Profile selects the keyword-interpretation profile (JSON Schema or
	// OpenAPI-flavored, which honors nullable).
	Profile schema.Profile
	// Formats overrides the format predicate registry. Nil uses the
	// built-in defaults.
	Formats *format.Registry
}

func (o Options) withDefaults() Options {
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	if o.MaxSteps <= 0 {
		o.MaxSteps = DefaultMaxSteps
	}
	if o.Formats == nil {
		o.Formats = format.Default()
	}
	return o
}

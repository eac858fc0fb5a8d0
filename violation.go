package apischema

import (
	"errors"
	"fmt"
	"strings"
)

// Violation codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType   = "invalid_type"
	CodeInvalidEnum   = "invalid_enum"
	CodeInvalidConst  = "invalid_const"
	CodeNotAllowed    = "not_allowed"
	CodeTooSmall      = "too_small"
	CodeTooBig        = "too_big"
	CodeNotMultipleOf = "not_multiple_of"
	CodeTooShort      = "too_short"
	CodeTooLong       = "too_long"
	CodePattern       = "pattern"
	CodeInvalidFormat = "invalid_format"
	CodeRequired      = "required"
	CodeUnknownKey    = "unknown_key"
	// Object / array shape
	CodeTooFewProperties  = "too_few_properties"
	CodeTooManyProperties = "too_many_properties"
	CodeTooFewItems       = "too_few_items"
	CodeTooManyItems      = "too_many_items"
	CodeDuplicateItems    = "duplicate_items"
	// Combinators
	CodeAnyOfNoMatch   = "any_of_no_match"
	CodeOneOfNoMatch   = "one_of_no_match"
	CodeOneOfAmbiguous = "one_of_ambiguous"
	CodeNotMatched     = "not_matched"
	// Structural problems with the schema document itself
	CodeUnresolvedReference = "unresolved_reference"
	CodeDepthExceeded       = "depth_exceeded"
)

// Violation represents a single detected constraint violation.
type Violation struct {
	// InstancePath is a JSON Pointer into the instance (for example: /items/2/price).
	InstancePath string `json:"instancePath"`
	// SchemaPath is a JSON Pointer into the schema document, including
	// traversed $ref targets, so error paths show the reference chain.
	SchemaPath string `json:"schemaPath"`
	Code       string `json:"code"`
	Message    string `json:"message"`
	// Params carries structured parameters (e.g., {"expected":"integer",
	// "actual":"number"}) for i18n and observability.
	Params map[string]any `json:"params,omitempty"`
	// Causes optionally nests the violations of the best-effort alternative
	// when a combinator fails (anyOf/oneOf).
	Causes Violations `json:"causes,omitempty"`
}

// Violations is a collection of constraint violations that implements error.
type Violations []Violation

// Error summarizes the first few violations.
func (vs Violations) Error() string {
	if len(vs) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(vs)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		v := vs[i]
		// e.g. invalid_type at /path
		fmt.Fprintf(b, "%s at %s", v.Code, v.InstancePath)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendViolations appends violations to the destination, initializing the
// slice when needed.
func AppendViolations(dst Violations, more ...Violation) Violations {
	if dst == nil {
		dst = Violations{}
	}
	dst = append(dst, more...)
	return dst
}

// AsViolations extracts Violations from an error using errors.As internally.
func AsViolations(err error) (Violations, bool) {
	if err == nil {
		return nil, false
	}
	var vs Violations
	if errors.As(err, &vs) {
		return vs, true
	}
	return nil, false
}

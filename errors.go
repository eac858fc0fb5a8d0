package apischema

import "errors"

// ErrLimitExceeded aborts a Validate call whose evaluation step budget ran
// out. It is a resource-exhaustion guard, not a validation verdict.
var ErrLimitExceeded = errors.New("apischema: evaluation step limit exceeded")

// ParseError reports malformed schema or instance input. It is a
// precondition failure surfaced before any validation attempt and is never
// mixed into Violations.
type ParseError struct {
	Source string // "schema" or "instance"
	Err    error
}

func (e *ParseError) Error() string {
	return "apischema: parse " + e.Source + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }

package apischema

// Result is the outcome of validating one instance against a schema.
// Valid is true iff Violations is empty.
type Result struct {
	Valid      bool       `json:"valid"`
	Violations Violations `json:"violations"`
}

// BatchResult pairs one instance's verdict with its original index. Err is
// set only for hard failures (step budget, cancellation); a structural
// problem in one instance never aborts the batch.
type BatchResult struct {
	Index  int     `json:"index"`
	Result *Result `json:"result,omitempty"`
	Err    error   `json:"-"`
}

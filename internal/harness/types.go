package harness

import "github.com/roach88/demokit/internal/trace"

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass indicates overall scenario success.
	// True if every assertion held.
	Pass bool `json:"pass"`

	// RunToken identifies this run in transcripts and snapshots.
	RunToken string `json:"run_token"`

	// Transcript contains every captured line in seq order.
	Transcript trace.Transcript `json:"transcript"`

	// Errors contains assertion failure messages.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
// Used as the starting point for scenario execution.
func NewResult(runToken string) *Result {
	return &Result{
		Pass:       true,
		RunToken:   runToken,
		Transcript: trace.Transcript{},
		Errors:     []string{},
	}
}

// AddError adds an assertion failure and marks the result as failed.
func (r *Result) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
	r.Pass = false
}

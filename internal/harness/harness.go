package harness

import (
	"context"
	"fmt"

	"github.com/roach88/demokit/internal/demo"
	"github.com/roach88/demokit/internal/trace"
)

// Run executes a scenario and returns the result.
//
// Each scenario runs with a fresh recorder and clock for isolation.
//
// Execution flow:
//  1. Resolve the demo from the registry
//  2. Run it with captured, seq-stamped streams
//  3. Evaluate each assertion against the transcript
//  4. Return result with pass/fail, transcript, and errors
//
// A non-nil error means the scenario could not be executed at all
// (unknown demo, aborted run); assertion failures are reported via the
// result instead.
func Run(scenario *Scenario) (*Result, error) {
	d, err := demo.Get(scenario.Demo)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", scenario.Name, err)
	}

	token := scenario.RunToken
	if token == "" {
		token = DefaultRunToken
	}

	rec := trace.NewRecorder(trace.NewClock())
	streams := demo.Streams{
		Out: rec.Writer(trace.StreamStdout),
		Err: rec.Writer(trace.StreamStderr),
	}

	if err := d.Run(context.Background(), streams); err != nil {
		return nil, fmt.Errorf("scenario %q: demo %q aborted: %w", scenario.Name, scenario.Demo, err)
	}
	rec.Flush()

	result := NewResult(token)
	result.Transcript = rec.Transcript()

	for _, assertion := range scenario.Assertions {
		if err := evaluate(result.Transcript, assertion); err != nil {
			result.AddError(err.Error())
		}
	}

	return result, nil
}

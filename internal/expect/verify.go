package expect

import (
	"context"
	"fmt"
	"io"

	"github.com/roach88/demokit/internal/demo"
	"github.com/roach88/demokit/internal/faults"
	"github.com/roach88/demokit/internal/trace"
)

// Report is the outcome of verifying one demo against its spec.
type Report struct {
	// Demo is the verified demo's name.
	Demo string `json:"demo"`

	// Problems lists every contract violation found.
	// Empty means the demo satisfies its spec.
	Problems []string `json:"problems,omitempty"`
}

// Pass reports whether the demo satisfied its spec.
func (r *Report) Pass() bool {
	return len(r.Problems) == 0
}

func (r *Report) addProblem(format string, args ...any) {
	r.Problems = append(r.Problems, fmt.Sprintf(format, args...))
}

// VerifyDemo runs the named demo and checks its live output against
// the compiled spec. A non-nil error means verification could not run
// at all (unknown demo, aborted run); contract violations are reported
// via the Report.
func VerifyDemo(ctx context.Context, spec *DemoSpec) (*Report, error) {
	d, err := demo.Get(spec.Name)
	if err != nil {
		return nil, err
	}

	rec := trace.NewRecorder(trace.NewClock())
	streams := demo.Streams{
		Out: rec.Writer(trace.StreamStdout),
		Err: rec.Writer(trace.StreamStderr),
	}
	if err := d.Run(ctx, streams); err != nil {
		return nil, fmt.Errorf("demo %q aborted: %w", spec.Name, err)
	}
	rec.Flush()

	report := &Report{Demo: spec.Name}
	transcript := rec.Transcript()

	checkStream(report, "stdout", transcript.Lines(trace.StreamStdout), spec.Stdout)
	checkStream(report, "stderr", transcript.Lines(trace.StreamStderr), spec.Stderr)
	checkClassification(report, spec)

	return report, nil
}

// checkStream compares actual lines against the expected sequence.
// The comparison is exact and positional: same count, each line
// matching its expectation in order.
func checkStream(report *Report, stream string, actual []string, expected []Line) {
	if len(actual) != len(expected) {
		report.addProblem("%s: expected %d lines, got %d", stream, len(expected), len(actual))
	}

	n := len(actual)
	if len(expected) < n {
		n = len(expected)
	}
	for i := 0; i < n; i++ {
		if !expected[i].Matches(actual[i]) {
			report.addProblem("%s[%d]: expected %q, got %q", stream, i, expected[i].String(), actual[i])
		}
	}
}

// checkClassification walks every value in each band and checks the
// classifier agrees. Bands are a faults-demo contract; specs for other
// demos must not declare them.
func checkClassification(report *Report, spec *DemoSpec) {
	if len(spec.Classification) == 0 {
		return
	}
	if spec.Name != "faults" {
		report.addProblem("classification bands are only supported for the faults demo")
		return
	}

	for i, band := range spec.Classification {
		for value := band.Min; value <= band.Max; value++ {
			got := ""
			if err := faults.Classify(io.Discard, value); err != nil {
				got = string(faults.KindOf(err))
			}
			if got != band.Kind {
				report.addProblem("classification[%d]: value %d classified as %q, expected %q",
					i, value, got, band.Kind)
				// One problem per band keeps reports readable.
				break
			}
		}
	}
}

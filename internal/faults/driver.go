package faults

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/roach88/demokit/internal/demo"
)

// Diagnostic prefixes, one per handled fault kind. The wording follows
// the original exercise's catch blocks.
const (
	diagInvalidArgument = "Caught a logic error (invalid_argument): "
	diagCustomDomain    = "Caught a custom exception: "
	diagOverflow        = "Caught a runtime error (overflow_error): "
	diagAllocation      = "Caught a memory allocation error (bad_alloc): "
	diagUnexpected      = "Caught an unexpected exception."
	diagGeneral         = "Caught a general exception: "
)

// RunDriver executes the fixed demonstration sequence: seven
// classification calls with per-call fault handling, then the no-fail
// operation. Normal output goes to out, fault diagnostics to errw.
//
// Each call site handles only the kind it expects, mirroring the
// original's catch scoping. A fault of any other kind propagates out of
// RunDriver as a non-nil error, the analog of an uncaught exception
// terminating the process; the fixed inputs never trigger that path.
func RunDriver(out, errw io.Writer) error {
	// InvalidArgument: negative input.
	if err := Classify(out, -1); err != nil {
		if !IsKind(err, KindInvalidArgument) {
			return err
		}
		fmt.Fprintln(errw, diagInvalidArgument+reason(err))
	}

	// CustomDomain: zero input.
	if err := Classify(out, 0); err != nil {
		if !IsKind(err, KindCustomDomain) {
			return err
		}
		fmt.Fprintln(errw, diagCustomDomain+reason(err))
	}

	// Overflow: input above the allowable range.
	if err := Classify(out, 101); err != nil {
		if !IsKind(err, KindOverflow) {
			return err
		}
		fmt.Fprintln(errw, diagOverflow+reason(err))
	}

	// Allocation: the simulated allocation failure at 99.
	if err := Classify(out, 99); err != nil {
		if !IsKind(err, KindAllocation) {
			return err
		}
		fmt.Fprintln(errw, diagAllocation+reason(err))
	}

	// Valid input under a general fault handler. Nothing fires.
	if err := Classify(out, 10); err != nil {
		fmt.Fprintln(errw, diagGeneral+reason(err))
	}

	// Compound call under a single catch-all: the first succeeds, the
	// second overflows, and the blanket handler absorbs it without
	// discriminating. A failure in the first call skips the second,
	// matching the original scope.
	if err := classifyPair(out, 50, 999); err != nil {
		fmt.Fprintln(errw, diagUnexpected)
	}

	// The no-fail operation needs no guarding at all.
	SafeOperation(out)

	return nil
}

// classifyPair runs two classifications in one guarded scope, stopping
// at the first fault.
func classifyPair(out io.Writer, first, second int) error {
	if err := Classify(out, first); err != nil {
		return err
	}
	return Classify(out, second)
}

// reason extracts the diagnostic payload from a fault.
func reason(err error) string {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Reason()
	}
	return err.Error()
}

// Demo adapts the driver sequence to the demo registry.
type Demo struct{}

// Name implements demo.Demo.
func (Demo) Name() string { return "faults" }

// Description implements demo.Demo.
func (Demo) Description() string {
	return "Fault classification with scoped cleanup and a no-fail operation"
}

// Run implements demo.Demo.
func (Demo) Run(ctx context.Context, streams demo.Streams) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return RunDriver(streams.Out, streams.Err)
}

func init() {
	demo.Register(Demo{})
}

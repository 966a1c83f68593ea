package harness

import (
	"fmt"
	"strings"

	"github.com/roach88/demokit/internal/trace"
)

// AssertionError is returned when an assertion fails.
// It includes the transcript so failures are debuggable from the
// message alone.
type AssertionError struct {
	Type       string           // Assertion type for categorization
	Expected   string           // Human-readable expected outcome
	Actual     string           // Human-readable actual outcome
	Transcript trace.Transcript // Full transcript for context
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	fmt.Fprintf(&buf, "\nFull transcript:\n")
	for _, ev := range e.Transcript {
		fmt.Fprintf(&buf, "  [%d] %s %q\n", ev.Seq, ev.Stream, ev.Text)
	}

	return buf.String()
}

// evaluate dispatches an assertion to its checker.
func evaluate(transcript trace.Transcript, assertion Assertion) error {
	switch assertion.Type {
	case AssertOutputContains:
		return assertOutputContains(transcript, assertion)
	case AssertOutputAbsent:
		return assertOutputAbsent(transcript, assertion)
	case AssertOutputPrefix:
		return assertOutputPrefix(transcript, assertion)
	case AssertOutputOrder:
		return assertOutputOrder(transcript, assertion)
	case AssertOutputCount:
		return assertOutputCount(transcript, assertion)
	case AssertStreamClean:
		return assertStreamClean(transcript, assertion)
	default:
		// Unknown types are rejected at load time; reaching this is a
		// programming error in the caller.
		return fmt.Errorf("unknown assertion type %q", assertion.Type)
	}
}

// scopedLines returns the transcript lines the assertion applies to.
func scopedLines(transcript trace.Transcript, assertion Assertion) []string {
	if assertion.Stream == "" {
		return transcript.AllLines()
	}
	return transcript.Lines(trace.Stream(assertion.Stream))
}

// scopeName names the assertion's matching scope for messages.
func scopeName(assertion Assertion) string {
	if assertion.Stream == "" {
		return "transcript"
	}
	return assertion.Stream
}

func assertOutputContains(transcript trace.Transcript, assertion Assertion) error {
	for _, line := range scopedLines(transcript, assertion) {
		if line == assertion.Line {
			return nil
		}
	}

	return &AssertionError{
		Type:       AssertOutputContains,
		Expected:   fmt.Sprintf("line %q on %s", assertion.Line, scopeName(assertion)),
		Actual:     "not found",
		Transcript: transcript,
	}
}

func assertOutputAbsent(transcript trace.Transcript, assertion Assertion) error {
	for _, line := range scopedLines(transcript, assertion) {
		if line == assertion.Line {
			return &AssertionError{
				Type:       AssertOutputAbsent,
				Expected:   fmt.Sprintf("line %q absent from %s", assertion.Line, scopeName(assertion)),
				Actual:     "found",
				Transcript: transcript,
			}
		}
	}
	return nil
}

func assertOutputPrefix(transcript trace.Transcript, assertion Assertion) error {
	for _, line := range scopedLines(transcript, assertion) {
		if strings.HasPrefix(line, assertion.Line) {
			return nil
		}
	}

	return &AssertionError{
		Type:       AssertOutputPrefix,
		Expected:   fmt.Sprintf("line starting with %q on %s", assertion.Line, scopeName(assertion)),
		Actual:     "not found",
		Transcript: transcript,
	}
}

// assertOutputOrder checks that the expected lines appear in order.
// Lines don't need to be consecutive; intervening lines are allowed.
// Repeated expected lines match successive occurrences.
func assertOutputOrder(transcript trace.Transcript, assertion Assertion) error {
	lines := scopedLines(transcript, assertion)

	pos := 0
	for _, expected := range assertion.Lines {
		found := false
		for pos < len(lines) {
			match := lines[pos] == expected
			pos++
			if match {
				found = true
				break
			}
		}
		if !found {
			return &AssertionError{
				Type:       AssertOutputOrder,
				Expected:   fmt.Sprintf("lines in order: %q on %s", assertion.Lines, scopeName(assertion)),
				Actual:     fmt.Sprintf("%q not found after preceding lines", expected),
				Transcript: transcript,
			}
		}
	}

	return nil
}

func assertOutputCount(transcript trace.Transcript, assertion Assertion) error {
	count := 0
	for _, line := range scopedLines(transcript, assertion) {
		if line == assertion.Line {
			count++
		}
	}

	if count != assertion.Count {
		return &AssertionError{
			Type:       AssertOutputCount,
			Expected:   fmt.Sprintf("line %q exactly %d times on %s", assertion.Line, assertion.Count, scopeName(assertion)),
			Actual:     fmt.Sprintf("found %d times", count),
			Transcript: transcript,
		}
	}

	return nil
}

func assertStreamClean(transcript trace.Transcript, assertion Assertion) error {
	lines := transcript.Lines(trace.Stream(assertion.Stream))
	if len(lines) == 0 {
		return nil
	}

	return &AssertionError{
		Type:       AssertStreamClean,
		Expected:   fmt.Sprintf("no lines on %s", assertion.Stream),
		Actual:     fmt.Sprintf("found %d lines", len(lines)),
		Transcript: transcript,
	}
}

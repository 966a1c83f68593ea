package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/roach88/demokit/internal/faults"
	_ "github.com/roach88/demokit/internal/macros"
)

func TestRunUnknownDemo(t *testing.T) {
	_, err := Run(&Scenario{
		Name:        "unknown",
		Description: "references an unregistered demo",
		Demo:        "nonexistent",
		Assertions:  []Assertion{{Type: AssertOutputContains, Line: "x"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown demo "nonexistent"`)
}

func TestRunDefaultsRunToken(t *testing.T) {
	result, err := Run(&Scenario{
		Name:        "default_token",
		Description: "no run_token pinned",
		Demo:        "faults",
		Assertions:  []Assertion{{Type: AssertOutputContains, Line: "Resource acquired."}},
	})
	require.NoError(t, err)
	assert.Equal(t, DefaultRunToken, result.RunToken)
	assert.True(t, result.Pass)
}

func TestRunFailedAssertionMarksResult(t *testing.T) {
	result, err := Run(&Scenario{
		Name:        "failing",
		Description: "asserts a line the demo never emits",
		Demo:        "faults",
		Assertions: []Assertion{
			{Type: AssertOutputContains, Line: "Resource acquired."},
			{Type: AssertOutputContains, Line: "this line does not exist"},
		},
	})
	require.NoError(t, err)
	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "this line does not exist")
}

func TestRunTranscriptInterleaving(t *testing.T) {
	result, err := Run(&Scenario{
		Name:        "interleave",
		Description: "stderr diagnostics land between the stdout pairs they follow",
		Demo:        "faults",
		Assertions:  []Assertion{{Type: AssertOutputContains, Line: "Resource acquired."}},
	})
	require.NoError(t, err)

	// The first diagnostic (seq 3) follows the first acquire/release
	// pair (seq 1, 2): release happens while the fault is in flight,
	// before the call site reports it.
	require.GreaterOrEqual(t, len(result.Transcript), 3)
	assert.Equal(t, "Resource acquired.", result.Transcript[0].Text)
	assert.Equal(t, "Resource released (simulating finally block).", result.Transcript[1].Text)
	assert.Equal(t,
		"Caught a logic error (invalid_argument): Negative value is not allowed.",
		result.Transcript[2].Text)

	// Seq numbers are dense and strictly increasing.
	for i, ev := range result.Transcript {
		assert.Equal(t, int64(i+1), ev.Seq)
	}
}

func TestRunIsDeterministic(t *testing.T) {
	scenario := &Scenario{
		Name:        "repeat",
		Description: "same transcript on every run",
		Demo:        "macros",
		Assertions:  []Assertion{{Type: AssertStreamClean, Stream: "stderr"}},
	}

	first, err := Run(scenario)
	require.NoError(t, err)
	second, err := Run(scenario)
	require.NoError(t, err)

	assert.Equal(t, first.Transcript, second.Transcript)
}

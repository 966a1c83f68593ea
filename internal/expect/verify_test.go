package expect

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/roach88/demokit/internal/macros"
)

// faultsContract mirrors the full driver output of the faults demo.
func faultsContract() *DemoSpec {
	acq := Line{Equals: "Resource acquired."}
	rel := Line{Equals: "Resource released (simulating finally block)."}
	return &DemoSpec{
		Name:    "faults",
		Summary: "Fault classification contract",
		Stdout: []Line{
			acq, rel,
			acq, rel,
			acq, rel,
			acq, rel,
			acq, {Equals: "Value is valid: 10"}, rel,
			acq, {Equals: "Value is valid: 50"}, rel,
			acq, rel,
			{Equals: "This operation is guaranteed not to throw an exception."},
		},
		Stderr: []Line{
			{Equals: "Caught a logic error (invalid_argument): Negative value is not allowed."},
			{Equals: "Caught a custom exception: Zero is not permitted."},
			{Equals: "Caught a runtime error (overflow_error): Value exceeds the allowable range."},
			{Equals: "Caught a memory allocation error (bad_alloc): allocation failure"},
			{Equals: "Caught an unexpected exception."},
		},
		Classification: []Band{
			{Min: -100, Max: -1, Kind: "INVALID_ARGUMENT"},
			{Min: 0, Max: 0, Kind: "CUSTOM_DOMAIN"},
			{Min: 1, Max: 98, Kind: ""},
			{Min: 99, Max: 99, Kind: "ALLOCATION_FAILURE"},
			{Min: 100, Max: 100, Kind: ""},
			{Min: 101, Max: 500, Kind: "OVERFLOW"},
		},
	}
}

func TestVerifyDemoFaultsContract(t *testing.T) {
	report, err := VerifyDemo(context.Background(), faultsContract())
	require.NoError(t, err)
	assert.True(t, report.Pass(), "problems: %v", report.Problems)
	assert.Empty(t, report.Problems)
}

func TestVerifyDemoLineMismatch(t *testing.T) {
	spec := faultsContract()
	spec.Stdout[0] = Line{Equals: "Resource obtained."}

	report, err := VerifyDemo(context.Background(), spec)
	require.NoError(t, err)
	assert.False(t, report.Pass())
	require.NotEmpty(t, report.Problems)
	assert.Contains(t, report.Problems[0], `stdout[0]`)
	assert.Contains(t, report.Problems[0], "Resource obtained.")
}

func TestVerifyDemoLineCountMismatch(t *testing.T) {
	spec := faultsContract()
	spec.Stderr = spec.Stderr[:3]

	report, err := VerifyDemo(context.Background(), spec)
	require.NoError(t, err)
	assert.False(t, report.Pass())
	assert.Contains(t, report.Problems[0], "expected 3 lines, got 5")
}

func TestVerifyDemoClassificationMismatch(t *testing.T) {
	spec := faultsContract()
	spec.Classification[3].Kind = "OVERFLOW" // 99 is an allocation fault

	report, err := VerifyDemo(context.Background(), spec)
	require.NoError(t, err)
	assert.False(t, report.Pass())
	require.NotEmpty(t, report.Problems)
	assert.Contains(t, report.Problems[0], "value 99")
	assert.Contains(t, report.Problems[0], `"ALLOCATION_FAILURE"`)
}

func TestVerifyDemoBandsRejectedForOtherDemos(t *testing.T) {
	spec := &DemoSpec{
		Name:           "macros",
		Summary:        "bands don't belong here",
		Stdout:         []Line{{Prefix: "Hello"}},
		Classification: []Band{{Min: 0, Max: 1, Kind: ""}},
	}

	report, err := VerifyDemo(context.Background(), spec)
	require.NoError(t, err)
	assert.False(t, report.Pass())
	found := false
	for _, p := range report.Problems {
		if p == "classification bands are only supported for the faults demo" {
			found = true
		}
	}
	assert.True(t, found, "problems: %v", report.Problems)
}

func TestVerifyDemoUnknownDemo(t *testing.T) {
	_, err := VerifyDemo(context.Background(), &DemoSpec{Name: "ghost", Stdout: []Line{{Equals: "x"}}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown demo "ghost"`)
}

package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validScenarioYAML() string {
	return `
name: sample
description: "A sample scenario"
demo: faults
assertions:
  - type: output_contains
    line: "Resource acquired."
`
}

func TestLoadScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validScenarioYAML()), 0o644))

	scenario, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, "sample", scenario.Name)
	assert.Equal(t, "faults", scenario.Demo)
	require.Len(t, scenario.Assertions, 1)
	assert.Equal(t, AssertOutputContains, scenario.Assertions[0].Type)
}

func TestLoadScenarioMissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}

func TestParseScenarioRejectsUnknownFields(t *testing.T) {
	// "assertion" (singular) is a typo for "assertions".
	_, err := ParseScenario([]byte(`
name: typo
description: "typo scenario"
demo: faults
assertion:
  - type: output_contains
    line: "x"
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestParseScenarioValidation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "missing name",
			yaml:    "description: d\ndemo: faults\nassertions:\n  - type: output_contains\n    line: x\n",
			wantErr: "name is required",
		},
		{
			name:    "missing description",
			yaml:    "name: n\ndemo: faults\nassertions:\n  - type: output_contains\n    line: x\n",
			wantErr: "description is required",
		},
		{
			name:    "missing demo",
			yaml:    "name: n\ndescription: d\nassertions:\n  - type: output_contains\n    line: x\n",
			wantErr: "demo is required",
		},
		{
			name:    "no assertions",
			yaml:    "name: n\ndescription: d\ndemo: faults\n",
			wantErr: "assertions list is required",
		},
		{
			name:    "unknown assertion type",
			yaml:    "name: n\ndescription: d\ndemo: faults\nassertions:\n  - type: bogus\n",
			wantErr: `unknown assertion type "bogus"`,
		},
		{
			name:    "contains without line",
			yaml:    "name: n\ndescription: d\ndemo: faults\nassertions:\n  - type: output_contains\n",
			wantErr: "line is required for output_contains",
		},
		{
			name:    "absent without line",
			yaml:    "name: n\ndescription: d\ndemo: faults\nassertions:\n  - type: output_absent\n",
			wantErr: "line is required for output_absent",
		},
		{
			name:    "order without lines",
			yaml:    "name: n\ndescription: d\ndemo: faults\nassertions:\n  - type: output_order\n",
			wantErr: "lines list is required for output_order",
		},
		{
			name:    "count without line",
			yaml:    "name: n\ndescription: d\ndemo: faults\nassertions:\n  - type: output_count\n    count: 2\n",
			wantErr: "line is required for output_count",
		},
		{
			name:    "negative count",
			yaml:    "name: n\ndescription: d\ndemo: faults\nassertions:\n  - type: output_count\n    line: x\n    count: -1\n",
			wantErr: "count must be non-negative",
		},
		{
			name:    "stream_clean without stream",
			yaml:    "name: n\ndescription: d\ndemo: faults\nassertions:\n  - type: stream_clean\n",
			wantErr: "stream is required for stream_clean",
		},
		{
			name:    "bad stream name",
			yaml:    "name: n\ndescription: d\ndemo: faults\nassertions:\n  - type: output_contains\n    line: x\n    stream: stdlog\n",
			wantErr: `unknown stream "stdlog"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScenario([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

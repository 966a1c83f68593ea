package harness

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/roach88/demokit/internal/faults"

	"github.com/roach88/demokit/internal/trace"
)

// TestFaultsGoldenTranscript pins the complete faults transcript,
// including the stdout/stderr interleaving, against a golden file.
//
// Regenerate with: go test ./internal/harness -update
func TestFaultsGoldenTranscript(t *testing.T) {
	absPath, err := filepath.Abs("../../testdata/scenarios/faults_walkthrough.yaml")
	require.NoError(t, err)

	scenario, err := LoadScenario(absPath)
	require.NoError(t, err)

	require.NoError(t, RunWithGolden(t, scenario))
}

func TestTranscriptSnapshotCanonical(t *testing.T) {
	snapshot := TranscriptSnapshot{
		Demo:     "sample",
		RunToken: "run-1",
		Events: trace.Transcript{
			{Stream: trace.StreamStdout, Text: "hello", Seq: 1},
			{Stream: trace.StreamStderr, Text: "oops", Seq: 2},
		},
	}

	data, err := snapshot.MarshalCanonical()
	require.NoError(t, err)
	assert.Equal(t,
		`{"demo":"sample","events":[{"seq":1,"stream":"stdout","text":"hello"},{"seq":2,"stream":"stderr","text":"oops"}],"run_token":"run-1"}`,
		string(data))
}

func TestTranscriptSnapshotStable(t *testing.T) {
	snapshot := TranscriptSnapshot{Demo: "sample", RunToken: "run-1"}

	first, err := snapshot.MarshalCanonical()
	require.NoError(t, err)
	second, err := snapshot.MarshalCanonical()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/demokit/internal/trace"
)

// TranscriptSnapshot captures the complete transcript of a scenario
// execution. Snapshots are serialized with canonical JSON so golden
// comparison is byte-stable.
type TranscriptSnapshot struct {
	Demo     string           `json:"demo"`
	RunToken string           `json:"run_token"`
	Events   trace.Transcript `json:"events"`
}

// MarshalCanonical serializes the snapshot deterministically.
func (s *TranscriptSnapshot) MarshalCanonical() ([]byte, error) {
	events := make([]any, len(s.Events))
	for i, ev := range s.Events {
		events[i] = map[string]any{
			"stream": string(ev.Stream),
			"text":   ev.Text,
			"seq":    ev.Seq,
		}
	}

	return trace.MarshalCanonical(map[string]any{
		"demo":      s.Demo,
		"run_token": s.RunToken,
		"events":    events,
	})
}

// RunWithGolden executes a scenario and compares its transcript against
// a golden file stored in testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Golden files are the source of truth for expected transcripts; this
// catches any drift in demo output that the scenario's own assertions
// don't pin down.
//
// Returns error if scenario execution fails. Snapshot mismatch fails
// the test via goldie.
func RunWithGolden(t *testing.T, scenario *Scenario) error {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return err
	}

	return AssertGolden(t, scenario, result)
}

// AssertGolden compares an already-obtained result's transcript against
// the scenario's golden file.
func AssertGolden(t *testing.T, scenario *Scenario, result *Result) error {
	t.Helper()

	snapshot := TranscriptSnapshot{
		Demo:     scenario.Demo,
		RunToken: result.RunToken,
		Events:   result.Transcript,
	}

	data, err := snapshot.MarshalCanonical()
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, data)

	return nil
}

package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/demokit/internal/trace"
)

// DefaultRunToken is used when a scenario doesn't pin its own token.
// A fixed default keeps golden transcripts deterministic.
const DefaultRunToken = "test-run-default"

// Scenario defines a conformance test scenario.
// A scenario names a registered demo, runs it with captured streams,
// and asserts on the resulting transcript.
type Scenario struct {
	// Name uniquely identifies this scenario.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Demo is the registry name of the demo to run (e.g. "faults").
	Demo string `yaml:"demo"`

	// RunToken is an optional fixed run token for deterministic tests.
	// If empty, DefaultRunToken is used.
	RunToken string `yaml:"run_token,omitempty"`

	// Assertions validate the transcript. At least one is required.
	Assertions []Assertion `yaml:"assertions"`
}

// Assertion validates one property of a transcript.
type Assertion struct {
	// Type specifies the assertion type:
	// - "output_contains": line appears in the transcript
	// - "output_absent": line appears nowhere in the transcript
	// - "output_prefix": some line starts with the given prefix
	// - "output_order": lines appear in the given order
	// - "output_count": line appears exactly Count times
	// - "stream_clean": stream emitted no lines
	Type string `yaml:"type"`

	// Line is the expected text (exact for output_contains and
	// output_count, prefix for output_prefix).
	Line string `yaml:"line,omitempty"`

	// Lines is the expected order (used by output_order).
	Lines []string `yaml:"lines,omitempty"`

	// Stream restricts matching to one stream ("stdout" or "stderr").
	// Empty matches both. Required for stream_clean.
	Stream string `yaml:"stream,omitempty"`

	// Count is the expected number of occurrences (used by output_count).
	Count int `yaml:"count,omitempty"`
}

// Assertion type constants.
const (
	AssertOutputContains = "output_contains"
	AssertOutputAbsent   = "output_absent"
	AssertOutputPrefix   = "output_prefix"
	AssertOutputOrder    = "output_order"
	AssertOutputCount    = "output_count"
	AssertStreamClean    = "stream_clean"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed, contains
// unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses scenario YAML bytes with strict field validation
// (catches typos like "assertion:" vs "assertions:").
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if s.Demo == "" {
		return fmt.Errorf("demo is required")
	}

	if len(s.Assertions) == 0 {
		return fmt.Errorf("assertions list is required and must be non-empty")
	}

	for i, assertion := range s.Assertions {
		if err := validateAssertion(i, &assertion); err != nil {
			return err
		}
	}

	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}

	if a.Stream != "" {
		switch trace.Stream(a.Stream) {
		case trace.StreamStdout, trace.StreamStderr:
		default:
			return fmt.Errorf("assertions[%d]: unknown stream %q (must be stdout or stderr)", index, a.Stream)
		}
	}

	switch a.Type {
	case AssertOutputContains:
		if a.Line == "" {
			return fmt.Errorf("assertions[%d]: line is required for output_contains", index)
		}
	case AssertOutputAbsent:
		if a.Line == "" {
			return fmt.Errorf("assertions[%d]: line is required for output_absent", index)
		}
	case AssertOutputPrefix:
		if a.Line == "" {
			return fmt.Errorf("assertions[%d]: line is required for output_prefix", index)
		}
	case AssertOutputOrder:
		if len(a.Lines) == 0 {
			return fmt.Errorf("assertions[%d]: lines list is required for output_order", index)
		}
	case AssertOutputCount:
		if a.Line == "" {
			return fmt.Errorf("assertions[%d]: line is required for output_count", index)
		}
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative for output_count", index)
		}
	case AssertStreamClean:
		if a.Stream == "" {
			return fmt.Errorf("assertions[%d]: stream is required for stream_clean", index)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}

	return nil
}

// Package harness provides conformance testing for demokit demos.
//
// The harness runs a registered demo with captured output streams,
// records every emitted line as a transcript event, and validates the
// transcript against declarative assertions.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	demo: faults
//	run_token: test-run-default
//	assertions:
//	  - type: output_contains
//	    line: "Resource acquired."
//	    stream: stdout
//	  - type: output_order
//	    lines:
//	      - "Resource acquired."
//	      - "Resource released (simulating finally block)."
//	  - type: output_count
//	    line: "Resource acquired."
//	    count: 7
//	  - type: output_prefix
//	    line: "Current line number: "
//	  - type: stream_clean
//	    stream: stderr
//
// # Assertion Types
//
// The following assertion types are supported:
//
//   - output_contains: Verifies a line appears in the transcript
//   - output_absent: Verifies a line appears nowhere in the transcript
//   - output_prefix: Verifies some line starts with the given prefix
//   - output_order: Verifies lines appear in the specified order
//   - output_count: Verifies a line appears exactly N times
//   - stream_clean: Verifies a stream emitted nothing
//
// An assertion with a stream field matches only lines on that stream;
// without one it matches lines on either stream.
//
// # Deterministic Testing
//
// Demos are input-free and single-threaded, so a scenario produces the
// same transcript on every run of the same build. Each captured line is
// stamped with a seq number from a monotonic clock, which preserves the
// stdout/stderr interleaving, and the run token is fixed per scenario.
// This makes transcripts suitable for golden snapshot comparison.
//
// # Usage
//
// Load and run a scenario:
//
//	scenario, err := harness.LoadScenario("testdata/scenarios/faults_walkthrough.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := harness.Run(scenario)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !result.Pass {
//	    for _, msg := range result.Errors {
//	        log.Println(msg)
//	    }
//	}
package harness

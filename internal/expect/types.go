// Package expect defines machine-readable expectations for demos.
//
// An expectation spec declares, per demo, the exact output contract:
// the ordered stdout and stderr lines (exact or prefix-matched, for
// lines that vary by build environment) and, for the faults demo, the
// classification table mapping value ranges to fault kinds. Specs are
// authored in CUE and compiled into these types; `demokit verify`
// checks a live run against them.
package expect

// DemoSpec is the compiled expectation contract for one demo.
type DemoSpec struct {
	// Name is the demo's registry name, taken from the CUE struct label.
	Name string

	// Summary is a one-line description of the contract.
	Summary string

	// Stdout is the exact ordered expectation for the stdout stream.
	Stdout []Line

	// Stderr is the exact ordered expectation for the stderr stream.
	// Empty means the stream must stay clean.
	Stderr []Line

	// Classification maps value ranges to fault kinds.
	// Only the faults demo supports it.
	Classification []Band
}

// Line is one expected output line. Exactly one matcher is set.
type Line struct {
	// Equals matches the whole line.
	Equals string

	// Prefix matches the start of the line. Used for lines whose tail
	// varies by build environment (dates, line numbers).
	Prefix string
}

// Matches reports whether text satisfies the line expectation.
func (l Line) Matches(text string) bool {
	if l.Prefix != "" {
		return len(text) >= len(l.Prefix) && text[:len(l.Prefix)] == l.Prefix
	}
	return text == l.Equals
}

// String renders the expectation for diagnostics.
func (l Line) String() string {
	if l.Prefix != "" {
		return "prefix " + l.Prefix
	}
	return l.Equals
}

// Band declares the expected classification for every value in
// [Min, Max]. Kind is a fault kind name, or "" for values that
// classify as valid.
type Band struct {
	Min  int
	Max  int
	Kind string
}

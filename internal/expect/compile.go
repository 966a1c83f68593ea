package expect

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
)

// maxBandWidth bounds how many values one classification band may
// cover. Verification walks every value in a band, so an unbounded
// range would make `demokit verify` arbitrarily slow.
const maxBandWidth = 10000

// CompileDemoSpec parses a CUE value into a DemoSpec.
// Uses the CUE SDK's Go API directly (not CLI subprocess).
//
// The CUE value should be the demo struct itself, e.g.:
//
//	ctx := cuecontext.New()
//	v := ctx.CompileString(`demo: faults: { ... }`)
//	spec, err := expect.CompileDemoSpec(v.LookupPath(cue.ParsePath("demo.faults")))
func CompileDemoSpec(v cue.Value) (*DemoSpec, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	spec := &DemoSpec{}

	// Demo name comes from the struct label (the path selector).
	labels := v.Path().Selectors()
	if len(labels) > 0 {
		spec.Name = labels[len(labels)-1].String()
	}

	// Parse summary (required).
	summaryVal := v.LookupPath(cue.ParsePath("summary"))
	if !summaryVal.Exists() {
		return nil, &CompileError{
			Field:   "summary",
			Message: "summary is required",
			Pos:     v.Pos(),
		}
	}
	summary, err := summaryVal.String()
	if err != nil {
		return nil, formatCUEError(err)
	}
	spec.Summary = summary

	// Parse stdout (required, at least one line).
	spec.Stdout, err = parseLines(v, "stdout")
	if err != nil {
		return nil, err
	}
	if len(spec.Stdout) == 0 {
		return nil, &CompileError{
			Field:   "stdout",
			Message: "at least one stdout line is required",
			Pos:     v.Pos(),
		}
	}

	// Parse stderr (optional; empty list means the stream stays clean).
	spec.Stderr, err = parseLines(v, "stderr")
	if err != nil {
		return nil, err
	}

	// Parse classification (optional).
	spec.Classification, err = parseBands(v)
	if err != nil {
		return nil, err
	}

	return spec, nil
}

// parseLines extracts a list of line expectations. Each element is
// either a plain string (exact match) or a struct {prefix: string}.
func parseLines(v cue.Value, field string) ([]Line, error) {
	listVal := v.LookupPath(cue.ParsePath(field))
	if !listVal.Exists() {
		return nil, nil
	}

	iter, err := listVal.List()
	if err != nil {
		return nil, &CompileError{
			Field:   field,
			Message: fmt.Sprintf("must be a list: %v", err),
			Pos:     listVal.Pos(),
		}
	}

	var lines []Line
	for i := 0; iter.Next(); i++ {
		elem := iter.Value()

		if elem.Kind() == cue.StringKind {
			s, err := elem.String()
			if err != nil {
				return nil, formatCUEError(err)
			}
			lines = append(lines, Line{Equals: s})
			continue
		}

		prefixVal := elem.LookupPath(cue.ParsePath("prefix"))
		if !prefixVal.Exists() {
			return nil, &CompileError{
				Field:   field,
				Message: fmt.Sprintf("entry %d must be a string or {prefix: string}", i),
				Pos:     elem.Pos(),
			}
		}
		prefix, err := prefixVal.String()
		if err != nil {
			return nil, formatCUEError(err)
		}
		if prefix == "" {
			return nil, &CompileError{
				Field:   field,
				Message: fmt.Sprintf("entry %d has an empty prefix", i),
				Pos:     elem.Pos(),
			}
		}
		lines = append(lines, Line{Prefix: prefix})
	}

	return lines, nil
}

// parseBands extracts the optional classification table.
func parseBands(v cue.Value) ([]Band, error) {
	listVal := v.LookupPath(cue.ParsePath("classification"))
	if !listVal.Exists() {
		return nil, nil
	}

	iter, err := listVal.List()
	if err != nil {
		return nil, &CompileError{
			Field:   "classification",
			Message: fmt.Sprintf("must be a list: %v", err),
			Pos:     listVal.Pos(),
		}
	}

	var bands []Band
	for i := 0; iter.Next(); i++ {
		elem := iter.Value()

		band := Band{}
		band.Min, err = bandInt(elem, "min", i)
		if err != nil {
			return nil, err
		}
		band.Max, err = bandInt(elem, "max", i)
		if err != nil {
			return nil, err
		}

		kindVal := elem.LookupPath(cue.ParsePath("kind"))
		if kindVal.Exists() {
			band.Kind, err = kindVal.String()
			if err != nil {
				return nil, formatCUEError(err)
			}
		}

		if band.Max < band.Min {
			return nil, &CompileError{
				Field:   "classification",
				Message: fmt.Sprintf("band %d has max < min", i),
				Pos:     elem.Pos(),
			}
		}
		if band.Max-band.Min > maxBandWidth {
			return nil, &CompileError{
				Field:   "classification",
				Message: fmt.Sprintf("band %d is wider than %d values", i, maxBandWidth),
				Pos:     elem.Pos(),
			}
		}

		bands = append(bands, band)
	}

	return bands, nil
}

// bandInt reads a required integer field from a band struct.
func bandInt(elem cue.Value, field string, index int) (int, error) {
	val := elem.LookupPath(cue.ParsePath(field))
	if !val.Exists() {
		return 0, &CompileError{
			Field:   "classification",
			Message: fmt.Sprintf("band %d is missing %s", index, field),
			Pos:     elem.Pos(),
		}
	}
	n, err := val.Int64()
	if err != nil {
		return 0, formatCUEError(err)
	}
	return int(n), nil
}

// CompileError is a field-level expectation-spec error.
type CompileError struct {
	Field   string
	Message string
	Pos     token.Pos
}

func (e *CompileError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s",
			e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(),
			e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// formatCUEError extracts position info from CUE errors.
func formatCUEError(err error) error {
	if err == nil {
		return nil
	}

	errs := errors.Errors(err)
	if len(errs) == 0 {
		return err
	}

	firstErr := errs[0]
	positions := errors.Positions(firstErr)
	if len(positions) > 0 {
		return &CompileError{
			Field:   "cue",
			Message: firstErr.Error(),
			Pos:     positions[0],
		}
	}
	return firstErr
}

package faults

import (
	"fmt"
	"io"
)

// Guard is a scoped resource token.
//
// Acquire emits the acquisition line immediately; Release emits the
// release line exactly once. Release is intended for defer so that it
// runs on every exit path from the acquiring scope, including fault
// propagation. This is the structured-cleanup analog of the original
// RAII destructor.
type Guard struct {
	w        io.Writer
	released bool
}

// Acquire obtains the resource and announces it on w.
func Acquire(w io.Writer) *Guard {
	fmt.Fprintln(w, "Resource acquired.")
	return &Guard{w: w}
}

// Release frees the resource and announces it on the acquiring writer.
// Safe to call more than once; only the first call emits.
func (g *Guard) Release() {
	if g.released {
		return
	}
	g.released = true
	fmt.Fprintln(g.w, "Resource released (simulating finally block).")
}

// Package demo defines the demo registry.
//
// A demo is a deterministic, input-free program: given the same build it
// emits the same ordered sequence of lines to its output streams every
// time. Demos register themselves at init time and the CLI and harness
// look them up by name.
package demo

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
)

// Streams carries the output writers a demo emits to.
//
// Out receives normal output, Err receives diagnostic lines. Demos never
// write anywhere else: no files, no network, no environment.
type Streams struct {
	Out io.Writer
	Err io.Writer
}

// Demo is a runnable teaching demo.
type Demo interface {
	// Name is the unique registry key (e.g. "faults").
	Name() string

	// Description is a one-line summary shown by `demokit list`.
	Description() string

	// Run executes the demo to completion, writing to streams.
	// A non-nil error means the run aborted; the fixed demo sequences
	// never do in practice.
	Run(ctx context.Context, streams Streams) error
}

var (
	mu       sync.RWMutex
	registry = make(map[string]Demo)
)

// Register adds a demo to the registry.
// Panics on duplicate names; registration happens at init time and a
// duplicate is a programming error.
func Register(d Demo) {
	mu.Lock()
	defer mu.Unlock()
	if _, exists := registry[d.Name()]; exists {
		panic(fmt.Sprintf("demo: duplicate registration of %q", d.Name()))
	}
	registry[d.Name()] = d
}

// Get returns the demo registered under name.
func Get(name string) (Demo, error) {
	mu.RLock()
	defer mu.RUnlock()
	d, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown demo %q (available: %v)", name, names())
	}
	return d, nil
}

// All returns every registered demo sorted by name.
func All() []Demo {
	mu.RLock()
	defer mu.RUnlock()
	demos := make([]Demo, 0, len(registry))
	for _, name := range names() {
		demos = append(demos, registry[name])
	}
	return demos
}

// names returns sorted registry keys. Caller must hold mu (read or write).
func names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

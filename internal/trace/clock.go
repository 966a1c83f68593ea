package trace

import "sync/atomic"

// Clock is a monotonic logical clock for transcript ordering.
//
// Every captured line is stamped with a strictly increasing seq number.
// This keeps transcripts deterministic and makes the stdout/stderr
// interleaving explicit without relying on wall-clock time.
//
// Thread-safety: Clock is safe for concurrent use (atomic operations),
// though demo execution is single-threaded by design.
type Clock struct {
	seq atomic.Int64
}

// NewClock creates a new clock starting at 0.
func NewClock() *Clock {
	return &Clock{}
}

// Next returns the next sequence number and increments the clock.
func (c *Clock) Next() int64 {
	return c.seq.Add(1)
}

// Current returns the current sequence number without incrementing.
func (c *Clock) Current() int64 {
	return c.seq.Load()
}

package trace

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderSplitsLines(t *testing.T) {
	rec := NewRecorder(NewClock())
	out := rec.Writer(StreamStdout)

	fmt.Fprintln(out, "first")
	fmt.Fprintln(out, "second")

	events := rec.Transcript()
	require.Len(t, events, 2)
	assert.Equal(t, Event{Stream: StreamStdout, Text: "first", Seq: 1}, events[0])
	assert.Equal(t, Event{Stream: StreamStdout, Text: "second", Seq: 2}, events[1])
}

func TestRecorderInterleavesStreams(t *testing.T) {
	rec := NewRecorder(NewClock())
	out := rec.Writer(StreamStdout)
	errw := rec.Writer(StreamStderr)

	fmt.Fprintln(out, "normal")
	fmt.Fprintln(errw, "diagnostic")
	fmt.Fprintln(out, "more normal")

	events := rec.Transcript()
	require.Len(t, events, 3)
	assert.Equal(t, []int64{1, 2, 3}, []int64{events[0].Seq, events[1].Seq, events[2].Seq})
	assert.Equal(t, StreamStderr, events[1].Stream)
	assert.Equal(t, []string{"normal", "more normal"}, Transcript(events).Lines(StreamStdout))
	assert.Equal(t, []string{"diagnostic"}, Transcript(events).Lines(StreamStderr))
}

func TestRecorderBuffersPartialWrites(t *testing.T) {
	rec := NewRecorder(NewClock())
	out := rec.Writer(StreamStdout)

	fmt.Fprint(out, "split ")
	fmt.Fprint(out, "across writes")
	assert.Empty(t, rec.Transcript())

	fmt.Fprint(out, "\n")
	events := rec.Transcript()
	require.Len(t, events, 1)
	assert.Equal(t, "split across writes", events[0].Text)
}

func TestRecorderFlushEmitsPartialLine(t *testing.T) {
	rec := NewRecorder(NewClock())
	out := rec.Writer(StreamStdout)

	fmt.Fprint(out, "truncated")
	rec.Flush()

	events := rec.Transcript()
	require.Len(t, events, 1)
	assert.Equal(t, "truncated", events[0].Text)

	// Flush again is a no-op.
	rec.Flush()
	assert.Len(t, rec.Transcript(), 1)
}

func TestTranscriptCount(t *testing.T) {
	rec := NewRecorder(NewClock())
	out := rec.Writer(StreamStdout)
	fmt.Fprintln(out, "repeat")
	fmt.Fprintln(out, "other")
	fmt.Fprintln(out, "repeat")

	tr := rec.Transcript()
	assert.Equal(t, 2, tr.Count("repeat"))
	assert.Equal(t, 1, tr.Count("other"))
	assert.Equal(t, 0, tr.Count("absent"))
	assert.Equal(t, []string{"repeat", "other", "repeat"}, tr.AllLines())
}

func TestClockMonotonic(t *testing.T) {
	c := NewClock()
	assert.Equal(t, int64(0), c.Current())
	assert.Equal(t, int64(1), c.Next())
	assert.Equal(t, int64(2), c.Next())
	assert.Equal(t, int64(2), c.Current())
}

package trace

import (
	"bytes"
	"sync"
)

// Recorder captures demo output as transcript events.
//
// A single Recorder owns the transcript; each stream gets its own
// io.Writer via Writer(stream). Writes are split on newlines and each
// complete line becomes one Event stamped from the shared Clock.
//
// Partial lines (a Write without a trailing newline) are buffered per
// stream until the newline arrives or Flush is called.
type Recorder struct {
	mu     sync.Mutex
	clock  *Clock
	events Transcript
	partial map[Stream]*bytes.Buffer
}

// NewRecorder creates a Recorder stamping events from clock.
func NewRecorder(clock *Clock) *Recorder {
	return &Recorder{
		clock:   clock,
		partial: make(map[Stream]*bytes.Buffer),
	}
}

// Writer returns an io.Writer that records lines onto the given stream.
func (r *Recorder) Writer(stream Stream) *StreamWriter {
	return &StreamWriter{rec: r, stream: stream}
}

// Transcript returns the events recorded so far, in seq order.
// The returned slice is a copy; callers may retain it.
func (r *Recorder) Transcript() Transcript {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(Transcript, len(r.events))
	copy(out, r.events)
	return out
}

// Flush converts any buffered partial lines into events.
// Demos terminate every line with a newline, so Flush is normally a no-op;
// it exists so a truncated final write is never silently dropped.
func (r *Recorder) Flush() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for stream, buf := range r.partial {
		if buf.Len() > 0 {
			r.append(stream, buf.String())
			buf.Reset()
		}
	}
}

// append records one line. Caller must hold r.mu.
func (r *Recorder) append(stream Stream, text string) {
	r.events = append(r.events, Event{
		Stream: stream,
		Text:   text,
		Seq:    r.clock.Next(),
	})
}

func (r *Recorder) write(stream Stream, p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	buf, ok := r.partial[stream]
	if !ok {
		buf = &bytes.Buffer{}
		r.partial[stream] = buf
	}

	buf.Write(p)
	for {
		line, err := buf.ReadString('\n')
		if err != nil {
			// No newline yet; keep the remainder buffered.
			buf.WriteString(line)
			break
		}
		r.append(stream, line[:len(line)-1])
	}
	return len(p), nil
}

// StreamWriter is an io.Writer bound to one stream of a Recorder.
type StreamWriter struct {
	rec    *Recorder
	stream Stream
}

// Write implements io.Writer.
func (w *StreamWriter) Write(p []byte) (int, error) {
	return w.rec.write(w.stream, p)
}

package trace

// Stream identifies which output stream a transcript line was written to.
type Stream string

const (
	// StreamStdout is the normal output stream.
	StreamStdout Stream = "stdout"

	// StreamStderr is the diagnostic output stream.
	StreamStderr Stream = "stderr"
)

// Event is one line of captured demo output.
//
// Events are stamped with a strictly increasing seq number from a shared
// Clock so that interleaving across stdout and stderr is preserved in the
// transcript even though the two streams are captured separately.
type Event struct {
	Stream Stream `json:"stream"`
	Text   string `json:"text"`
	Seq    int64  `json:"seq"`
}

// Transcript is the ordered sequence of lines a demo emitted.
type Transcript []Event

// Lines returns the text of all events on the given stream, in seq order.
func (t Transcript) Lines(stream Stream) []string {
	var lines []string
	for _, ev := range t {
		if ev.Stream == stream {
			lines = append(lines, ev.Text)
		}
	}
	return lines
}

// AllLines returns the text of every event regardless of stream, in seq order.
func (t Transcript) AllLines() []string {
	lines := make([]string, len(t))
	for i, ev := range t {
		lines[i] = ev.Text
	}
	return lines
}

// Count returns how many events carry exactly the given text.
func (t Transcript) Count(text string) int {
	n := 0
	for _, ev := range t {
		if ev.Text == text {
			n++
		}
	}
	return n
}

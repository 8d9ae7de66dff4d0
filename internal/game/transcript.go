package game

import (
	"fmt"
	"io"
)

// Transcript keeps a readable log of a session by subscribing to the event bus.
type Transcript struct {
	formatter *EventFormatter
	w         io.Writer
	entries   []string
}

// NewTranscript creates a transcript. w may be nil to only keep entries in memory.
func NewTranscript(w io.Writer, opts FormattingOptions) *Transcript {
	return &Transcript{
		formatter: NewEventFormatter(opts),
		w:         w,
	}
}

// OnEvent implements EventSubscriber interface
func (t *Transcript) OnEvent(event GameEvent) {
	entry := t.formatter.Format(event)
	if entry == "" {
		return
	}
	t.entries = append(t.entries, entry)
	if t.w != nil {
		_, _ = fmt.Fprintln(t.w, entry)
	}
}

// Entries returns a copy of the formatted entries, oldest first.
func (t *Transcript) Entries() []string {
	out := make([]string, len(t.entries))
	copy(out, t.entries)
	return out
}

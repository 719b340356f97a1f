package timeline

import (
	"github.com/bethropolis/timeline/internal/event"
	"github.com/bethropolis/timeline/internal/text"
)

// Option configures a Timeline.
type Option func(*Timeline)

// WithUnit selects what a caret index counts. The default is text.UnitRune.
func WithUnit(u text.Unit) Option {
	return func(t *Timeline) {
		t.unit = u
	}
}

// WithStrict makes record application validate carets and report
// ErrInvalidCaretRange / ErrRecordOutOfBounds instead of clamping.
func WithStrict(strict bool) Option {
	return func(t *Timeline) {
		t.strict = strict
	}
}

// WithMaxRecords caps the number of records kept. When a push exceeds the
// cap, the oldest records are folded into the initial value. Zero or less
// means unlimited.
func WithMaxRecords(n int) Option {
	return func(t *Timeline) {
		if n < 0 {
			n = 0
		}
		t.maxRecords = n
	}
}

// WithEvents dispatches timeline events on m.
func WithEvents(m *event.Manager) Option {
	return func(t *Timeline) {
		t.events = m
	}
}

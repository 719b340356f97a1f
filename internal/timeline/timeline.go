// Package timeline provides undo/redo over a linear timeline of text edits.
//
// A Timeline owns an initial value, the current value and an ordered list of
// records. The records with Active set form a prefix of the list; replaying
// that prefix over the initial value yields the current value. Undo walks the
// prefix boundary backward, redo walks it forward, and pushing a new record
// discards everything past the boundary.
package timeline

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bethropolis/timeline/internal/event"
	"github.com/bethropolis/timeline/internal/logger"
	"github.com/bethropolis/timeline/internal/text"
)

const logTag = "timeline"

// Timeline records edits on a single string buffer.
// It is not safe for concurrent use.
type Timeline struct {
	initialValue string
	value        string
	records      []Record

	unit       text.Unit
	strict     bool
	maxRecords int
	events     *event.Manager
}

// New creates a timeline over content. Prior records, typically the result of
// Records from an earlier session, are copied in as given and every record up
// to and including the last active one is replayed to rebuild the buffer.
func New(content string, records []Record, opts ...Option) (*Timeline, error) {
	t := &Timeline{
		initialValue: content,
		value:        content,
	}
	for _, opt := range opts {
		opt(t)
	}

	if len(records) == 0 {
		return t, nil
	}

	t.records = make([]Record, len(records))
	copy(t.records, records)

	last := t.LastActiveIndex()
	for i := 0; i <= last; i++ {
		if err := t.applyRecord(i); err != nil {
			return nil, fmt.Errorf("restore timeline: %w", err)
		}
	}

	logger.DebugTagf(logTag, "Timeline: Restored %d record(s), replayed %d", len(t.records), last+1)
	t.dispatch(event.TypeTimelineRestored, event.RestoredData{Records: len(t.records), Replayed: last + 1})
	return t, nil
}

// applyRecord captures From at the record's caret and substitutes To.
func (t *Timeline) applyRecord(i int) error {
	rec := &t.records[i]
	if t.strict {
		if err := t.checkCaret(rec.Caret); err != nil {
			return fmt.Errorf("apply record %d: %w", i, err)
		}
	}

	rec.From = text.Slice(t.value, rec.Caret.Start, rec.Caret.End, t.unit)
	rec.Active = true
	t.value = text.Splice(t.value, rec.Caret.Start, rec.Caret.End, rec.To, t.unit)

	logger.DebugTagf(logTag, "Timeline: Applied record %d %s %q -> %q", i, rec.Caret, rec.From, rec.To)
	t.dispatch(event.TypeRecordApplied, event.RecordData{Index: i, Record: *rec, Value: t.value})
	return nil
}

// revertRecord re-reads To from the buffer at the record's caret, for the
// length To had when applied, and puts From back in its place.
func (t *Timeline) revertRecord(i int) error {
	rec := &t.records[i]
	from, to, inBounds := t.revertSpan(rec)
	if t.strict && !inBounds {
		return fmt.Errorf("revert record %d: %w: %q at %d over %d characters",
			i, ErrRecordOutOfBounds, rec.To, rec.Caret.Start, text.Len(t.value, t.unit))
	}

	rec.To = t.value[from:to]
	rec.Active = false
	t.value = t.value[:from] + rec.From + t.value[to:]

	logger.DebugTagf(logTag, "Timeline: Reverted record %d %s %q -> %q", i, rec.Caret, rec.To, rec.From)
	t.dispatch(event.TypeRecordReverted, event.RecordData{Index: i, Record: *rec, Value: t.value})
	return nil
}

// revertSpan returns the byte range To occupies in the current value.
//
// Grapheme carets count the clusters of the text before the edit. A To that
// joins the cluster on its left (a combining mark after a letter, "\n" after
// "\r") shifts the caret past it, so when the caret does not land on To the
// boundaries around it are searched for one whose prefix still measures
// Caret.Start and that is followed by To.
func (t *Timeline) revertSpan(rec *Record) (from, to int, inBounds bool) {
	start := rec.Caret.Start
	end := start + text.Len(rec.To, t.unit)
	from = text.Offset(t.value, start, t.unit)
	to = text.Offset(t.value, end, t.unit)
	inBounds = start >= 0 && end <= text.Len(t.value, t.unit)

	if t.unit != text.UnitGrapheme || t.value[from:to] == rec.To {
		return from, to, inBounds
	}

	lo := text.Offset(t.value, start-1, t.unit)
	hi := text.Offset(t.value, start+1, t.unit)
	for b := lo; b <= hi && b < len(t.value); {
		if strings.HasPrefix(t.value[b:], rec.To) && text.Len(t.value[:b], t.unit) == start {
			return b, b + len(rec.To), true
		}
		_, size := utf8.DecodeRuneInString(t.value[b:])
		b += size
	}
	return from, to, inBounds
}

func (t *Timeline) checkCaret(c Caret) error {
	n := text.Len(t.value, t.unit)
	if c.Start < 0 || c.End < c.Start || c.End > n {
		return fmt.Errorf("%w: %s over %d characters", ErrInvalidCaretRange, c, n)
	}
	return nil
}

// Push adds a new record, discarding every inactive record first, and
// returns it as applied. In strict mode an invalid caret leaves the
// timeline untouched.
func (t *Timeline) Push(rec Record) (Record, error) {
	if t.strict {
		if err := t.checkCaret(rec.Caret); err != nil {
			return Record{}, fmt.Errorf("push record: %w", err)
		}
	}

	kept := t.records[:0]
	for _, r := range t.records {
		if r.Active {
			kept = append(kept, r)
		}
	}
	if discarded := len(t.records) - len(kept); discarded > 0 {
		// Zero the tail so dropped strings can be collected.
		for i := len(kept); i < len(t.records); i++ {
			t.records[i] = Record{}
		}
		logger.DebugTagf(logTag, "Timeline: Discarded %d inactive record(s)", discarded)
		t.dispatch(event.TypeRecordsDiscarded, event.DiscardedData{Count: discarded})
	}
	t.records = kept

	t.records = append(t.records, rec)
	idx := len(t.records) - 1
	if err := t.applyRecord(idx); err != nil {
		t.records = t.records[:idx]
		return Record{}, err
	}
	applied := t.records[idx]

	t.fold()
	return applied, nil
}

// fold moves the oldest records into the initial value once the timeline
// holds more than maxRecords. Only called after a push, when every record
// is active.
func (t *Timeline) fold() {
	if t.maxRecords <= 0 || len(t.records) <= t.maxRecords {
		return
	}

	excess := len(t.records) - t.maxRecords
	for _, rec := range t.records[:excess] {
		t.initialValue = text.Splice(t.initialValue, rec.Caret.Start, rec.Caret.End, rec.To, t.unit)
	}
	remaining := make([]Record, t.maxRecords, t.maxRecords+1)
	copy(remaining, t.records[excess:])
	t.records = remaining

	logger.DebugTagf(logTag, "Timeline: Folded %d record(s) into the initial value", excess)
	t.dispatch(event.TypeRecordsFolded, event.FoldedData{Count: excess, InitialValue: t.initialValue})
}

// Apply redoes up to count records following the last active one and returns
// how many were applied. It stops quietly at the end of the timeline.
func (t *Timeline) Apply(count int) (int, error) {
	applied := 0
	for i := t.LastActiveIndex() + 1; i < len(t.records) && applied < count; i++ {
		if err := t.applyRecord(i); err != nil {
			return applied, err
		}
		applied++
	}
	return applied, nil
}

// Revert undoes up to count records, starting from the last active one and
// walking backward. It stops quietly at the start of the timeline.
func (t *Timeline) Revert(count int) (int, error) {
	reverted := 0
	for i := t.LastActiveIndex(); i >= 0 && reverted < count; i-- {
		if err := t.revertRecord(i); err != nil {
			return reverted, err
		}
		reverted++
	}
	return reverted, nil
}

// ApplyChain redoes the first inactive record, then keeps redoing while
// p(next, lastApplied) holds. A nil predicate redoes a single record.
func (t *Timeline) ApplyChain(p Predicate) (int, error) {
	last := t.LastActiveIndex() + 1
	if last >= len(t.records) {
		return 0, nil
	}

	if err := t.applyRecord(last); err != nil {
		return 0, err
	}
	applied := 1

	for p != nil && last < len(t.records)-1 && p(t.records[last+1], t.records[last]) {
		last++
		if err := t.applyRecord(last); err != nil {
			return applied, err
		}
		applied++
	}
	return applied, nil
}

// RevertChain undoes the last active record, then keeps undoing while
// p(previous, lastReverted) holds. A nil predicate undoes a single record.
func (t *Timeline) RevertChain(p Predicate) (int, error) {
	last := t.LastActiveIndex()
	if last < 0 {
		return 0, nil
	}

	if err := t.revertRecord(last); err != nil {
		return 0, err
	}
	reverted := 1

	for p != nil && last > 0 && p(t.records[last-1], t.records[last]) {
		last--
		if err := t.revertRecord(last); err != nil {
			return reverted, err
		}
		reverted++
	}
	return reverted, nil
}

// LastActiveIndex returns the highest index holding an active record, or -1.
// Every mutation keeps the active records a contiguous prefix, so this is
// also the boundary between undo and redo history.
func (t *Timeline) LastActiveIndex() int {
	for i := len(t.records) - 1; i >= 0; i-- {
		if t.records[i].Active {
			return i
		}
	}
	return -1
}

// CheckIntegrity replays the active records over the initial value on a
// separate timeline. It returns "" when the result matches the current value,
// otherwise the replayed value, which is what the buffer should hold. In
// strict mode a record that cannot be replayed ends the check and the value
// replayed up to it is returned.
func (t *Timeline) CheckIntegrity() string {
	mirror := &Timeline{
		initialValue: t.initialValue,
		value:        t.initialValue,
		unit:         t.unit,
		strict:       t.strict,
	}
	for i, rec := range t.records {
		if !rec.Active {
			continue
		}
		if _, err := mirror.Push(Record{To: rec.To, Caret: rec.Caret}); err != nil {
			logger.Warnf("Timeline: Integrity check cannot replay record %d: %v", i, err)
			return mirror.value
		}
	}

	if mirror.value == t.value {
		return ""
	}
	logger.Warnf("Timeline: Integrity check failed, have %q, replay gives %q", t.value, mirror.value)
	return mirror.value
}

// Reset drops every record and restarts the timeline from content.
func (t *Timeline) Reset(content string) {
	t.initialValue = content
	t.value = content
	t.records = nil
	logger.DebugTagf(logTag, "Timeline: Reset")
	t.dispatch(event.TypeTimelineReset, event.ResetData{Content: content})
}

// Value returns the current buffer content.
func (t *Timeline) Value() string {
	return t.value
}

// InitialValue returns the content the active records are replayed over.
func (t *Timeline) InitialValue() string {
	return t.initialValue
}

// Records returns a copy of the record list, the form to persist and hand
// back to New in a later session.
func (t *Timeline) Records() []Record {
	out := make([]Record, len(t.records))
	copy(out, t.records)
	return out
}

// Len returns the number of records, active or not.
func (t *Timeline) Len() int {
	return len(t.records)
}

// Unit returns the character unit carets are measured in.
func (t *Timeline) Unit() text.Unit {
	return t.unit
}

// CanUndo returns true if there is an active record to revert.
func (t *Timeline) CanUndo() bool {
	return t.LastActiveIndex() >= 0
}

// CanRedo returns true if there is an inactive record to apply.
func (t *Timeline) CanRedo() bool {
	return t.LastActiveIndex()+1 < len(t.records)
}

func (t *Timeline) dispatch(eventType event.Type, data interface{}) {
	if t.events != nil {
		t.events.Dispatch(eventType, data)
	}
}

package timeline

import "fmt"

// Caret is a character range [Start, End) over the buffer as it was
// immediately before the owning record was applied.
type Caret struct {
	Start int `json:"start" yaml:"start" toml:"start"`
	End   int `json:"end" yaml:"end" toml:"end"`
}

// IsEmpty returns true if the caret selects no characters (an insertion point).
func (c Caret) IsEmpty() bool {
	return c.End <= c.Start
}

// Len returns the number of characters the caret selects.
func (c Caret) Len() int {
	if c.End <= c.Start {
		return 0
	}
	return c.End - c.Start
}

func (c Caret) String() string {
	return fmt.Sprintf("[%d,%d)", c.Start, c.End)
}

// Record is one atomic substitution on the buffer.
//
// To is supplied by the caller when the record is pushed. From is captured
// when the record is applied. Reverting a record re-reads To from the buffer,
// so after a revert To holds the text that was in effect at Caret.Start.
type Record struct {
	From   string `json:"from" yaml:"from" toml:"from"`
	To     string `json:"to" yaml:"to" toml:"to"`
	Caret  Caret  `json:"caret" yaml:"caret" toml:"caret"`
	Active bool   `json:"active" yaml:"active" toml:"active"`
}

// NewInsert creates a record inserting s at pos.
func NewInsert(pos int, s string) Record {
	return Record{To: s, Caret: Caret{Start: pos, End: pos}}
}

// NewReplace creates a record replacing [start, end) with s.
func NewReplace(start, end int, s string) Record {
	return Record{To: s, Caret: Caret{Start: start, End: end}}
}

// NewDelete creates a record removing [start, end).
func NewDelete(start, end int) Record {
	return Record{Caret: Caret{Start: start, End: end}}
}

func (r Record) String() string {
	state := "inactive"
	if r.Active {
		state = "active"
	}
	return fmt.Sprintf("%s %q -> %q (%s)", r.Caret, r.From, r.To, state)
}

package timeline

import (
	"fmt"
	"strings"
)

// Predicate decides whether a chain continues from current to next.
// For ApplyChain, current is the record just applied and next the one after
// it; for RevertChain, current was just reverted and next precedes it.
type Predicate func(next, current Record) bool

// IsBlank returns true if s is non-empty and made only of white space.
func IsBlank(s string) bool {
	return len(s) > 0 && strings.TrimSpace(s) == ""
}

// HasBlank returns true if s contains a space, tab or newline.
func HasBlank(s string) bool {
	return strings.ContainsAny(s, " \t\n")
}

// SplitOnBlankSpace chains records while both insert white space only, or
// while neither contains any. A word run and a blank run never chain.
func SplitOnBlankSpace(a, b Record) bool {
	return (IsBlank(a.To) && IsBlank(b.To)) ||
		(!HasBlank(a.To) && !HasBlank(b.To))
}

// KeepContinuity chains records whose carets sit within one character of
// each other, in either direction.
func KeepContinuity(a, b Record) bool {
	return a.Caret.Start == b.Caret.End+1 ||
		b.Caret.Start == a.Caret.End+1 ||
		a.Caret.End == b.Caret.Start+1 ||
		b.Caret.End == a.Caret.Start+1
}

// PredicateByName resolves a chain predicate from its configuration name.
func PredicateByName(name string) (Predicate, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "blank", "blank-space", "split-on-blank-space":
		return SplitOnBlankSpace, nil
	case "continuity", "keep-continuity":
		return KeepContinuity, nil
	}
	return nil, fmt.Errorf("unknown chain predicate %q", name)
}

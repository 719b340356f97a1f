// Package text provides character-indexed string operations.
//
// Offsets handed to the timeline are character indices, never byte offsets.
// What counts as a character depends on the Unit: a rune (the default) or a
// grapheme cluster as segmented by uniseg.
package text

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Unit selects what a single character index counts.
type Unit int

const (
	UnitRune     Unit = iota // One rune per index
	UnitGrapheme             // One user-perceived character per index
)

// String returns the configuration name of the unit.
func (u Unit) String() string {
	switch u {
	case UnitRune:
		return "rune"
	case UnitGrapheme:
		return "grapheme"
	default:
		return fmt.Sprintf("Unit(%d)", int(u))
	}
}

// ParseUnit converts a configuration name into a Unit.
// An empty name selects UnitRune.
func ParseUnit(name string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "rune", "runes":
		return UnitRune, nil
	case "grapheme", "graphemes":
		return UnitGrapheme, nil
	}
	return UnitRune, fmt.Errorf("unknown character unit %q", name)
}

// Len returns the number of characters in s.
func Len(s string, u Unit) int {
	if u == UnitGrapheme {
		return uniseg.GraphemeClusterCount(s)
	}
	return utf8.RuneCountInString(s)
}

// Offset converts a character index into a byte offset in s.
// Indices below zero map to 0 and indices past the end map to len(s).
func Offset(s string, index int, u Unit) int {
	if index <= 0 {
		return 0
	}
	if u == UnitGrapheme {
		return graphemeOffset(s, index)
	}
	return runeOffset(s, index)
}

func runeOffset(s string, index int) int {
	current := 0
	for byteOffset := range s {
		if current == index {
			return byteOffset
		}
		current++
	}
	return len(s) // Allow index at the very end, clamp past it
}

func graphemeOffset(s string, index int) int {
	current := 0
	byteOffset := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		if current == index {
			return byteOffset
		}
		_, to := gr.Positions()
		byteOffset = to
		current++
	}
	return len(s)
}

// Slice returns the characters of s in [start, end).
// The range is clamped to s; an end before start yields "".
func Slice(s string, start, end int, u Unit) string {
	from := Offset(s, start, u)
	to := Offset(s, end, u)
	if to <= from {
		return ""
	}
	return s[from:to]
}

// Splice replaces the characters of s in [start, end) with repl.
// Both bounds are clamped independently, so an end before start keeps the
// overlapping characters on both sides of repl.
func Splice(s string, start, end int, repl string, u Unit) string {
	from := Offset(s, start, u)
	to := Offset(s, end, u)

	var b strings.Builder
	b.Grow(from + len(repl) + len(s) - to)
	b.WriteString(s[:from])
	b.WriteString(repl)
	b.WriteString(s[to:])
	return b.String()
}

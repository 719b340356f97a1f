package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUnit(t *testing.T) {
	tests := []struct {
		name    string
		want    Unit
		wantErr bool
	}{
		{"", UnitRune, false},
		{"rune", UnitRune, false},
		{" Grapheme ", UnitGrapheme, false},
		{"graphemes", UnitGrapheme, false},
		{"byte", UnitRune, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseUnit(tt.name)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUnitString(t *testing.T) {
	assert.Equal(t, "rune", UnitRune.String())
	assert.Equal(t, "grapheme", UnitGrapheme.String())
	assert.Equal(t, "Unit(7)", Unit(7).String())
}

func TestLen(t *testing.T) {
	// "e" followed by a combining acute accent is two runes, one grapheme.
	s := "cafe\u0301!"
	assert.Equal(t, 6, Len(s, UnitRune))
	assert.Equal(t, 5, Len(s, UnitGrapheme))
	assert.Equal(t, 0, Len("", UnitGrapheme))
	assert.Equal(t, 3, Len("h\u00e9\u00e9", UnitRune))
}

func TestOffset(t *testing.T) {
	s := "h\u00e9llo"
	tests := []struct {
		name  string
		index int
		want  int
	}{
		{"negative", -3, 0},
		{"start", 0, 0},
		{"after ascii", 1, 1},
		{"after two byte rune", 2, 3},
		{"end", 5, 6},
		{"past end", 42, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Offset(s, tt.index, UnitRune))
		})
	}
}

func TestOffsetGrapheme(t *testing.T) {
	s := "e\u0301x"
	assert.Equal(t, 0, Offset(s, 0, UnitGrapheme))
	assert.Equal(t, 3, Offset(s, 1, UnitGrapheme))
	assert.Equal(t, 4, Offset(s, 2, UnitGrapheme))
	assert.Equal(t, 4, Offset(s, 9, UnitGrapheme))
}

func TestSlice(t *testing.T) {
	tests := []struct {
		name       string
		s          string
		start, end int
		want       string
	}{
		{"inner", "hello world", 6, 11, "world"},
		{"empty range", "hello", 2, 2, ""},
		{"reversed range", "hello", 4, 1, ""},
		{"end clamped", "hello", 3, 99, "lo"},
		{"unicode", "na\u00efve", 1, 4, "a\u00efv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slice(tt.s, tt.start, tt.end, UnitRune))
		})
	}
}

func TestSplice(t *testing.T) {
	tests := []struct {
		name       string
		s          string
		start, end int
		repl       string
		want       string
	}{
		{"insert", "helo", 2, 2, "l", "hello"},
		{"replace", "hello mama", 6, 10, "world", "hello world"},
		{"delete", "hello world", 5, 11, "", "hello"},
		{"append past end", "ab", 5, 5, "c", "abc"},
		{"into empty", "", 0, 0, "h", "h"},
		{"reversed keeps overlap", "abcd", 3, 1, "X", "abcXbcd"},
		{"unicode", "na\u00efve", 2, 3, "i", "naive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Splice(tt.s, tt.start, tt.end, tt.repl, UnitRune))
		})
	}
}

func TestSpliceGrapheme(t *testing.T) {
	s := "cafe\u0301s"
	assert.Equal(t, "cafEs", Splice(s, 3, 4, "E", UnitGrapheme))
	assert.Equal(t, "cafe\u0301", Splice(s, 4, 5, "", UnitGrapheme))
	assert.Equal(t, "cafes", Splice(s, 3, 4, "e", UnitGrapheme))
}

package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsBlank(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", false},
		{" ", true},
		{"\t\n ", true},
		{"a", false},
		{" a ", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsBlank(tt.in), "IsBlank(%q)", tt.in)
	}
}

func TestHasBlank(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"word", false},
		{"two words", true},
		{"tab\there", true},
		{"line\n", true},
		{"\r", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, HasBlank(tt.in), "HasBlank(%q)", tt.in)
	}
}

func TestSplitOnBlankSpace(t *testing.T) {
	rec := func(s string) Record { return Record{To: s} }

	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"word word", "a", "b", true},
		{"blank blank", " ", "\t", true},
		{"word blank", "a", " ", false},
		{"blank word", "\n", "a", false},
		{"mixed word", "a b", "c", false},
		{"mixed mixed", "a b", "c d", false},
		{"empty word", "", "a", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitOnBlankSpace(rec(tt.a), rec(tt.b)))
		})
	}
}

func TestKeepContinuity(t *testing.T) {
	at := func(start, end int) Record { return Record{Caret: Caret{Start: start, End: end}} }

	tests := []struct {
		name string
		a, b Record
		want bool
	}{
		{"next insertion", at(1, 1), at(0, 0), true},
		{"previous insertion", at(0, 0), at(1, 1), true},
		{"replacement after insertion", at(2, 2), at(2, 3), true},
		{"same point", at(4, 4), at(4, 4), false},
		{"far apart", at(11, 11), at(5, 5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KeepContinuity(tt.a, tt.b))
			assert.Equal(t, tt.want, KeepContinuity(tt.b, tt.a))
		})
	}
}

func TestPredicateByName(t *testing.T) {
	blank := Record{To: " "}
	word := Record{To: "w"}

	p, err := PredicateByName("blank")
	require.NoError(t, err)
	assert.False(t, p(blank, word))

	p, err = PredicateByName(" Continuity ")
	require.NoError(t, err)
	assert.True(t, p(Record{Caret: Caret{Start: 1, End: 1}}, Record{}))

	_, err = PredicateByName("nope")
	assert.Error(t, err)
}

func TestRecordHelpers(t *testing.T) {
	assert.Equal(t, Caret{Start: 3, End: 3}, NewInsert(3, "x").Caret)
	assert.Equal(t, "", NewDelete(1, 4).To)
	assert.True(t, NewInsert(2, "x").Caret.IsEmpty())
	assert.Equal(t, 3, NewDelete(1, 4).Caret.Len())
	assert.Equal(t, 0, Caret{Start: 4, End: 1}.Len())
	assert.Equal(t, "[1,4)", NewDelete(1, 4).Caret.String())
	assert.Equal(t, `[0,1) "a" -> "b" (active)`, Record{From: "a", To: "b", Caret: Caret{0, 1}, Active: true}.String())
}

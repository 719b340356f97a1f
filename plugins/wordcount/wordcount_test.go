package wordcount

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/timeline/internal/event"
	"github.com/bethropolis/timeline/internal/plugin"
	"github.com/bethropolis/timeline/internal/text"
	"github.com/bethropolis/timeline/internal/timeline"
)

type fakeAPI struct {
	value    string
	unit     text.Unit
	commands map[string]plugin.CommandFunc
	out      string
}

func (f *fakeAPI) Value() string { return f.value }
func (f *fakeAPI) Unit() text.Unit { return f.unit }
func (f *fakeAPI) Records() []timeline.Record { return nil }
func (f *fakeAPI) SubscribeEvent(event.Type, event.Handler) {}
func (f *fakeAPI) SaveSession(string) error { return nil }
func (f *fakeAPI) PluginConfigValue(string, string) (interface{}, bool) { return nil, false }

func (f *fakeAPI) RegisterCommand(name string, fn plugin.CommandFunc) error {
	if f.commands == nil {
		f.commands = make(map[string]plugin.CommandFunc)
	}
	f.commands[name] = fn
	return nil
}

func (f *fakeAPI) Printf(format string, args ...interface{}) {
	f.out += fmt.Sprintf(format, args...)
}

func TestCount(t *testing.T) {
	tests := []struct {
		name  string
		value string
		unit  text.Unit
		want  Stats
	}{
		{"empty", "", text.UnitRune, Stats{}},
		{"one line", "hello world", text.UnitRune, Stats{Lines: 1, Words: 2, Chars: 11, Bytes: 11}},
		{"trailing newline", "a b\nc\n", text.UnitRune, Stats{Lines: 2, Words: 3, Chars: 6, Bytes: 6}},
		{"blank lines", "\n\n", text.UnitRune, Stats{Lines: 2, Words: 0, Chars: 2, Bytes: 2}},
		{"graphemes", "cafe\u0301", text.UnitGrapheme, Stats{Lines: 1, Words: 1, Chars: 4, Bytes: 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Count(tt.value, tt.unit))
		})
	}
}

func TestWcCommand(t *testing.T) {
	api := &fakeAPI{value: "hello  \tmama", unit: text.UnitRune}
	p := New()
	assert.Equal(t, "wordcount", p.Name())
	require.NoError(t, p.Initialize(api))

	wc, ok := api.commands["wc"]
	require.True(t, ok)
	require.NoError(t, wc(""))
	assert.Equal(t, "Lines: 1, Words: 2, Chars: 12, Bytes: 12\n", api.out)

	assert.Error(t, wc("extra"))
	assert.NoError(t, p.Shutdown())
}

func TestUninitialized(t *testing.T) {
	p := &WordCount{}
	assert.Error(t, p.executeWordCount(""))
}

package session

import (
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/timeline/internal/timeline"
)

func editedTimeline(t *testing.T) *timeline.Timeline {
	t.Helper()
	tl, err := timeline.New("hello mama", nil)
	require.NoError(t, err)

	for _, rec := range []timeline.Record{
		timeline.NewReplace(6, 10, "world"),
		timeline.NewInsert(11, "!"),
		timeline.NewInsert(12, "\n\tbye"),
	} {
		_, err := tl.Push(rec)
		require.NoError(t, err)
	}
	_, err = tl.Revert(1)
	require.NoError(t, err)
	return tl
}

func TestSaveAndRestore(t *testing.T) {
	for _, name := range []string{"session.json", "session.yaml", "session.yml", "session.toml"} {
		t.Run(name, func(t *testing.T) {
			original := editedTimeline(t)
			path := filepath.Join(t.TempDir(), name)

			require.NoError(t, Save(path, Capture(original)))
			assert.NoFileExists(t, path+".tmp")

			s, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, "hello mama", s.Content)
			assert.Equal(t, original.Records(), s.Records)

			restored, err := s.Timeline()
			require.NoError(t, err)
			assert.Equal(t, "hello world!", restored.Value())
			assert.Equal(t, original.LastActiveIndex(), restored.LastActiveIndex())

			_, err = restored.Apply(math.MaxInt)
			require.NoError(t, err)
			assert.Equal(t, "hello world!\n\tbye", restored.Value())
			assert.Equal(t, "", restored.CheckIntegrity())
		})
	}
}

func TestDecodeRecordListShape(t *testing.T) {
	input := `{
		"content": "",
		"records": [
			{"from": "", "to": "hello", "caret": {"start": 0, "end": 0}, "active": true},
			{"from": "", "to": " world", "caret": {"start": 5, "end": 5}, "active": false}
		]
	}`

	s, err := Decode(strings.NewReader(input), FormatJSON)
	require.NoError(t, err)
	require.Len(t, s.Records, 2)
	assert.Equal(t, timeline.Caret{Start: 5, End: 5}, s.Records[1].Caret)

	tl, err := s.Timeline()
	require.NoError(t, err)
	assert.Equal(t, "hello", tl.Value())
	assert.Equal(t, 0, tl.LastActiveIndex())
}

func TestDecodeYAMLMissingFields(t *testing.T) {
	input := `
content: abc
records:
  - to: X
    caret: {start: 1, end: 2}
    active: true
`
	s, err := Decode(strings.NewReader(input), FormatYAML)
	require.NoError(t, err)

	tl, err := s.Timeline()
	require.NoError(t, err)
	assert.Equal(t, "aXc", tl.Value())
	assert.Equal(t, "b", tl.Records()[0].From)
}

func TestDecodeEmptyYAML(t *testing.T) {
	s, err := Decode(strings.NewReader(""), FormatYAML)
	require.NoError(t, err)
	assert.Empty(t, s.Records)
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode(strings.NewReader("{"), FormatJSON)
	assert.Error(t, err)

	_, err = Decode(strings.NewReader("records = ["), FormatTOML)
	assert.Error(t, err)

	_, err = Decode(strings.NewReader("{}"), Format(9))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"a.json", FormatJSON, false},
		{"a.YAML", FormatYAML, false},
		{"dir/a.yml", FormatYAML, false},
		{"a.toml", FormatTOML, false},
		{"a.txt", FormatJSON, true},
		{"noext", FormatJSON, true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestSaveUnknownFormat(t *testing.T) {
	err := Save(filepath.Join(t.TempDir(), "session.txt"), &Session{})
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "yaml", FormatYAML.String())
	assert.Equal(t, "Format(9)", Format(9).String())
}

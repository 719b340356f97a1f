package logger

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initForTest(t *testing.T, cfg Config) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	Init(cfg, &buf)
	t.Cleanup(func() { Init(NewConfig(), nil) })
	return &buf
}

func TestLevels(t *testing.T) {
	buf := initForTest(t, Config{LogLevel: "warn"})

	Infof("quiet %d", 1)
	Warnf("loud %d", 2)

	assert.NotContains(t, buf.String(), "quiet 1")
	assert.Contains(t, buf.String(), "loud 2")
	assert.Contains(t, buf.String(), "logger_test.go")
}

func TestTagFiltering(t *testing.T) {
	buf := initForTest(t, Config{LogLevel: "debug", DisabledTags: []string{"Timeline"}})

	DebugTagf("timeline", "dropped")
	DebugTagf("session", "kept")
	Debugf("untagged")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "kept")
	assert.Contains(t, out, "tag=session")
	assert.Contains(t, out, "untagged")
}

func TestEnabledTagsDropUntagged(t *testing.T) {
	buf := initForTest(t, Config{LogLevel: "debug", EnabledTags: []string{"session"}})

	Debugf("untagged")
	DebugTagf("session", "tagged")

	assert.NotContains(t, buf.String(), "untagged")
	assert.Contains(t, buf.String(), "tagged")
}

func TestPackageFiltering(t *testing.T) {
	buf := initForTest(t, Config{LogLevel: "debug", DisabledPackages: []string{"logger"}})

	Errorf("from the logger package")
	assert.Empty(t, buf.String())
}

func TestFileFiltering(t *testing.T) {
	buf := initForTest(t, Config{LogLevel: "debug", EnabledFiles: []string{"other.go"}})

	Infof("not from other.go")
	assert.Empty(t, buf.String())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("err"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}

func TestOpen(t *testing.T) {
	w, closeFn, err := Open(Config{LogFilePath: "-"})
	require.NoError(t, err)
	assert.NotNil(t, w)
	assert.NoError(t, closeFn())

	path := filepath.Join(t.TempDir(), "timeline.log")
	w, closeFn, err = Open(Config{LogFilePath: path})
	require.NoError(t, err)
	assert.NotNil(t, w)
	assert.NoError(t, closeFn())
	assert.FileExists(t, path)

	_, _, err = Open(Config{LogFilePath: filepath.Join(t.TempDir(), "missing", "x.log")})
	assert.Error(t, err)
}

func TestGetWithoutInit(t *testing.T) {
	assert.NotNil(t, Get())
}

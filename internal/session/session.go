// Package session reads and writes the serialized form of a timeline: the
// initial content plus the record list returned by Timeline.Records.
package session

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/bethropolis/timeline/internal/logger"
	"github.com/bethropolis/timeline/internal/timeline"
)

// Format identifies a session encoding.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
	FormatTOML
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ErrUnknownFormat is returned for file extensions with no matching codec.
var ErrUnknownFormat = errors.New("unknown session format")

// Session is the persisted state of one editing session.
type Session struct {
	Content string            `json:"content" yaml:"content" toml:"content"`
	Records []timeline.Record `json:"records" yaml:"records" toml:"records"`
}

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return FormatJSON, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// Capture builds a session from the current state of tl.
func Capture(tl *timeline.Timeline) *Session {
	return &Session{
		Content: tl.InitialValue(),
		Records: tl.Records(),
	}
}

// Timeline rehydrates the session into a new timeline.
func (s *Session) Timeline(opts ...timeline.Option) (*timeline.Timeline, error) {
	return timeline.New(s.Content, s.Records, opts...)
}

// Decode reads a session in format f from r.
func Decode(r io.Reader, f Format) (*Session, error) {
	s := &Session{}
	switch f {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(s); err != nil {
			return nil, fmt.Errorf("decode JSON session: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(s); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode YAML session: %w", err)
		}
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(s); err != nil {
			return nil, fmt.Errorf("decode TOML session: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
	return s, nil
}

// Encode writes s to w in format f.
func Encode(w io.Writer, s *Session, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("encode JSON session: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("encode YAML session: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode YAML session: %w", err)
		}
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(s); err != nil {
			return fmt.Errorf("encode TOML session: %w", err)
		}
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
	return nil
}

// Load reads the session stored at path, choosing the format by extension.
func Load(path string) (*Session, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}

	s, err := Decode(bytes.NewReader(data), f)
	if err != nil {
		return nil, fmt.Errorf("load session '%s': %w", path, err)
	}
	logger.DebugTagf("session", "Session: Loaded %d record(s) from %s (%v)", len(s.Records), path, f)
	return s, nil
}

// Save writes s to path, choosing the format by extension. The file is
// written to a temporary sibling first and renamed into place.
func Save(path string, s *Session) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := Encode(&buf, s, f); err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("write session: %w", err)
	}
	logger.DebugTagf("session", "Session: Saved %d record(s) to %s (%v)", len(s.Records), path, f)
	return nil
}

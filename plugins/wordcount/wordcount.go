// plugins/wordcount/wordcount.go
package wordcount

import (
	"fmt"
	"strings"

	"github.com/bethropolis/timeline/internal/plugin"
	"github.com/bethropolis/timeline/internal/text"
)

// Ensure WordCount implements plugin.Plugin
var _ plugin.Plugin = (*WordCount)(nil)

// WordCount is a simple plugin to count lines, words, and characters.
type WordCount struct {
	api plugin.API // Store the API for later use
}

// New creates a new instance of the WordCount plugin.
func New() plugin.Plugin {
	return &WordCount{}
}

// Name returns the unique name of the plugin.
func (p *WordCount) Name() string {
	return "wordcount"
}

// Initialize registers the wc command.
func (p *WordCount) Initialize(api plugin.API) error {
	p.api = api
	if err := api.RegisterCommand("wc", p.executeWordCount); err != nil {
		return fmt.Errorf("failed to register 'wc' command: %w", err)
	}
	return nil
}

// Shutdown performs cleanup (nothing needed for this simple plugin).
func (p *WordCount) Shutdown() error {
	return nil
}

// Stats describes a buffer.
type Stats struct {
	Lines int
	Words int
	Chars int // In the timeline's character unit
	Bytes int
}

// Count computes the stats of value. An empty value has no lines.
func Count(value string, u text.Unit) Stats {
	s := Stats{
		Words: len(strings.Fields(value)),
		Chars: text.Len(value, u),
		Bytes: len(value),
	}
	if value != "" {
		s.Lines = strings.Count(value, "\n") + 1
		if strings.HasSuffix(value, "\n") {
			s.Lines--
		}
	}
	return s
}

// executeWordCount is the function called when the wc command runs.
func (p *WordCount) executeWordCount(args string) error {
	if p.api == nil {
		return fmt.Errorf("wordcount plugin not initialized with API")
	}
	if strings.TrimSpace(args) != "" {
		return fmt.Errorf("wc takes no arguments")
	}

	s := Count(p.api.Value(), p.api.Unit())
	p.api.Printf("Lines: %d, Words: %d, Chars: %d, Bytes: %d\n", s.Lines, s.Words, s.Chars, s.Bytes)
	return nil
}

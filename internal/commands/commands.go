// Package commands runs line-oriented edit scripts against a timeline.
package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bethropolis/timeline/internal/clipboard"
	"github.com/bethropolis/timeline/internal/logger"
	"github.com/bethropolis/timeline/internal/timeline"
)

var (
	// ErrUnknownCommand is returned for a line whose first word is not registered.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrBadArguments is returned when a command cannot parse its arguments.
	ErrBadArguments = errors.New("bad arguments")
)

// Func runs one command. args is the rest of the line after the command name,
// with leading whitespace removed.
type Func func(r *Runner, args string) error

// Runner executes commands against one timeline.
type Runner struct {
	tl        *timeline.Timeline
	clipboard *clipboard.Manager
	chain     timeline.Predicate
	out       io.Writer

	commands map[string]Func
}

// NewRunner creates a runner with the built-in commands registered.
// chain is the predicate used by undo-chain and redo-chain when no name is given.
func NewRunner(tl *timeline.Timeline, clip *clipboard.Manager, chain timeline.Predicate, out io.Writer) *Runner {
	if clip == nil {
		clip = clipboard.NewManager(false)
	}
	if chain == nil {
		chain = timeline.SplitOnBlankSpace
	}
	if out == nil {
		out = io.Discard
	}
	r := &Runner{
		tl:        tl,
		clipboard: clip,
		chain:     chain,
		out:       out,
		commands:  make(map[string]Func),
	}
	registerBuiltins(r)
	return r
}

// Timeline returns the timeline the runner edits.
func (r *Runner) Timeline() *timeline.Timeline {
	return r.tl
}

// Register adds a command. Names are case-sensitive and must be unique.
func (r *Runner) Register(name string, fn Func) error {
	if name == "" || strings.ContainsAny(name, " \t") {
		return fmt.Errorf("invalid command name %q", name)
	}
	if fn == nil {
		return fmt.Errorf("command %q has no function", name)
	}
	if _, exists := r.commands[name]; exists {
		return fmt.Errorf("command %q already registered", name)
	}
	r.commands[name] = fn
	logger.DebugTagf("commands", "Runner: Registered command '%s'", name)
	return nil
}

// Exec runs a single line. Blank lines and lines starting with '#' do nothing.
func (r *Runner) Exec(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	name, args := line, ""
	if i := strings.IndexAny(line, " \t"); i >= 0 {
		name, args = line[:i], strings.TrimLeft(line[i:], " \t")
	}

	cmdFunc, exists := r.commands[name]
	if !exists {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	logger.DebugTagf("commands", "Runner: Executing '%s' with args %q", name, args)
	if err := cmdFunc(r, args); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// Run executes every line read from in and stops at the first failure.
func (r *Runner) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := r.Exec(scanner.Text()); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	logger.Debugf("Runner: Finished script, %d line(s)", lineNo)
	return nil
}

func (r *Runner) printf(format string, args ...interface{}) {
	fmt.Fprintf(r.out, format, args...)
}

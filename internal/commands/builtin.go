package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bethropolis/timeline/internal/text"
	"github.com/bethropolis/timeline/internal/timeline"
)

// ErrIntegrity is returned by the check command when replaying the active
// records does not reproduce the current value.
var ErrIntegrity = errors.New("integrity check failed")

func registerBuiltins(r *Runner) {
	builtins := []struct {
		name string
		fn   Func
	}{
		{"push", cmdPush},
		{"insert", cmdInsert},
		{"delete", cmdDelete},
		{"undo", cmdUndo},
		{"redo", cmdRedo},
		{"undo-chain", cmdUndoChain},
		{"redo-chain", cmdRedoChain},
		{"check", cmdCheck},
		{"print", cmdPrint},
		{"records", cmdRecords},
		{"yank", cmdYank},
		{"paste", cmdPaste},
		{"reset", cmdReset},
	}
	for _, b := range builtins {
		// Built-in names are fixed, so registration cannot collide.
		_ = r.Register(b.name, b.fn)
	}
}

func (r *Runner) push(rec timeline.Record) error {
	_, err := r.tl.Push(rec)
	return err
}

// push START END TEXT
func cmdPush(r *Runner, args string) error {
	nums, rest, err := leadingInts(args, 2)
	if err != nil {
		return err
	}
	s, err := parseText(rest)
	if err != nil {
		return err
	}
	return r.push(timeline.NewReplace(nums[0], nums[1], s))
}

// insert POS TEXT
func cmdInsert(r *Runner, args string) error {
	nums, rest, err := leadingInts(args, 1)
	if err != nil {
		return err
	}
	s, err := parseText(rest)
	if err != nil {
		return err
	}
	return r.push(timeline.NewInsert(nums[0], s))
}

// delete START END
func cmdDelete(r *Runner, args string) error {
	nums, rest, err := leadingInts(args, 2)
	if err != nil {
		return err
	}
	if err := noArgs(rest); err != nil {
		return err
	}
	return r.push(timeline.NewDelete(nums[0], nums[1]))
}

func cmdUndo(r *Runner, args string) error {
	n, err := parseCount(args)
	if err != nil {
		return err
	}
	_, err = r.tl.Revert(n)
	return err
}

func cmdRedo(r *Runner, args string) error {
	n, err := parseCount(args)
	if err != nil {
		return err
	}
	_, err = r.tl.Apply(n)
	return err
}

func (r *Runner) predicate(args string) (timeline.Predicate, error) {
	if args = strings.TrimSpace(args); args == "" {
		return r.chain, nil
	}
	p, err := timeline.PredicateByName(args)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadArguments, err)
	}
	return p, nil
}

func cmdUndoChain(r *Runner, args string) error {
	p, err := r.predicate(args)
	if err != nil {
		return err
	}
	_, err = r.tl.RevertChain(p)
	return err
}

func cmdRedoChain(r *Runner, args string) error {
	p, err := r.predicate(args)
	if err != nil {
		return err
	}
	_, err = r.tl.ApplyChain(p)
	return err
}

func cmdCheck(r *Runner, args string) error {
	if err := noArgs(args); err != nil {
		return err
	}
	if want := r.tl.CheckIntegrity(); want != "" {
		return fmt.Errorf("%w: replay gives %q, value is %q", ErrIntegrity, want, r.tl.Value())
	}
	r.printf("integrity ok\n")
	return nil
}

func cmdPrint(r *Runner, args string) error {
	if err := noArgs(args); err != nil {
		return err
	}
	r.printf("%q\n", r.tl.Value())
	return nil
}

func cmdRecords(r *Runner, args string) error {
	if err := noArgs(args); err != nil {
		return err
	}
	for i, rec := range r.tl.Records() {
		r.printf("%d %s\n", i, rec)
	}
	return nil
}

// yank [START END] copies the whole value or a range of it.
func cmdYank(r *Runner, args string) error {
	value := r.tl.Value()
	if strings.TrimSpace(args) != "" {
		nums, rest, err := leadingInts(args, 2)
		if err != nil {
			return err
		}
		if err := noArgs(rest); err != nil {
			return err
		}
		value = text.Slice(value, nums[0], nums[1], r.tl.Unit())
	}
	return r.clipboard.Copy(value)
}

// paste START END replaces the range with the clipboard content.
func cmdPaste(r *Runner, args string) error {
	nums, rest, err := leadingInts(args, 2)
	if err != nil {
		return err
	}
	if err := noArgs(rest); err != nil {
		return err
	}
	s, err := r.clipboard.Paste()
	if err != nil {
		return err
	}
	return r.push(timeline.NewReplace(nums[0], nums[1], s))
}

// reset [TEXT] drops all records and starts over from TEXT.
func cmdReset(r *Runner, args string) error {
	s, err := parseText(args)
	if err != nil {
		return err
	}
	r.tl.Reset(s)
	return nil
}

package commands

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// leadingInts reads n whitespace-separated integers from the front of args and
// returns them with the untouched remainder.
func leadingInts(args string, n int) ([]int, string, error) {
	nums := make([]int, 0, n)
	rest := args
	for len(nums) < n {
		rest = strings.TrimLeft(rest, " \t")
		if rest == "" {
			return nil, "", fmt.Errorf("%w: want %d number(s), got %d", ErrBadArguments, n, len(nums))
		}
		field := rest
		if i := strings.IndexAny(rest, " \t"); i >= 0 {
			field, rest = rest[:i], rest[i:]
		} else {
			rest = ""
		}
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %q is not a number", ErrBadArguments, field)
		}
		nums = append(nums, v)
	}
	return nums, rest, nil
}

// parseText turns the remainder of a line into text. A leading quote means a
// Go string literal, anything else is taken literally.
func parseText(rest string) (string, error) {
	rest = strings.TrimLeft(rest, " \t")
	if !strings.HasPrefix(rest, `"`) {
		return rest, nil
	}
	s, err := strconv.Unquote(strings.TrimRight(rest, " \t"))
	if err != nil {
		return "", fmt.Errorf("%w: bad quoted text %s", ErrBadArguments, rest)
	}
	return s, nil
}

// parseCount reads an optional step count. Empty means 1, "all" means every step.
func parseCount(args string) (int, error) {
	switch args = strings.TrimSpace(args); args {
	case "":
		return 1, nil
	case "all":
		return math.MaxInt, nil
	}
	n, err := strconv.Atoi(args)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a count", ErrBadArguments, args)
	}
	return n, nil
}

func noArgs(args string) error {
	if strings.TrimSpace(args) != "" {
		return fmt.Errorf("%w: unexpected %q", ErrBadArguments, args)
	}
	return nil
}

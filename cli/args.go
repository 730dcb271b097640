package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// Args is the argument list of a running command. Its helpers consume
// arguments from the front.
type Args struct {
	items []string
}

// NewArgs wraps a copy of items.
func NewArgs(items []string) *Args {
	return &Args{items: append([]string(nil), items...)}
}

// Len returns the number of remaining arguments.
func (a *Args) Len() int { return len(a.items) }

// Rest returns the remaining arguments without consuming them.
func (a *Args) Rest() []string { return append([]string(nil), a.items...) }

// Peek returns the next argument without consuming it.
func (a *Args) Peek() (string, bool) {
	if len(a.items) == 0 {
		return "", false
	}
	return a.items[0], true
}

// Pop consumes and returns the next argument.
func (a *Args) Pop() (string, bool) {
	arg, ok := a.Peek()
	if ok {
		a.items = a.items[1:]
	}
	return arg, ok
}

// Tags consumes arguments up to the next one starting with "-". At least
// one tag is required.
func (a *Args) Tags(option string) (map[string]struct{}, error) {
	tags := map[string]struct{}{}
	for len(a.items) > 0 && !strings.HasPrefix(a.items[0], "-") {
		tags[a.items[0]] = struct{}{}
		a.items = a.items[1:]
	}
	if len(tags) == 0 {
		return nil, fmt.Errorf("%w for %s", ErrNoTags, option)
	}
	return tags, nil
}

// Positional consumes the argument at position and returns it with
// surrounding whitespace removed. An empty result is an error unless
// allowEmpty is set.
func (a *Args) Positional(option string, position int, allowEmpty bool) (string, error) {
	if len(a.items) == 0 || position < 0 || position >= len(a.items) {
		return "", fmt.Errorf("%w: no %s provided", ErrMissingArgument, option)
	}
	arg := strings.TrimSpace(a.items[position])
	a.items = append(a.items[:position:position], a.items[position+1:]...)
	if !allowEmpty && arg == "" {
		return "", fmt.Errorf("%w: empty %s isn't allowed", ErrEmptyArgument, option)
	}
	return arg, nil
}

// Int consumes the next argument as an integer.
func (a *Args) Int(option string) (int, error) {
	arg, err := a.Positional(option, 0, false)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", option, err)
	}
	return n, nil
}

// DisallowTrailing fails if any arguments are left.
func (a *Args) DisallowTrailing() error {
	if len(a.items) == 0 {
		return nil
	}
	quoted := make([]string, len(a.items))
	for i, arg := range a.items {
		quoted[i] = strconv.Quote(arg)
	}
	return fmt.Errorf("%w: %s", ErrTrailingArguments, strings.Join(quoted, ", "))
}

// DisallowPositional fails if arg is not an option.
func DisallowPositional(arg string) error {
	if !strings.HasPrefix(arg, "-") {
		return fmt.Errorf("%w: %s", ErrUnknownPositional, arg)
	}
	return nil
}

// UnknownOptional returns the error for an option a command doesn't accept.
func UnknownOptional(arg string) error {
	return fmt.Errorf("%w: %s", ErrUnknownArgument, arg)
}

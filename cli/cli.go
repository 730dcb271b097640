// Package cli dispatches a command line to one of a fixed set of commands
// and prints help generated from their descriptions.
//
// Commands are looked up by name or abbreviation. "-h", "--help" and "help"
// show the global command list when given alone, and help for a single
// command when given before or after its name:
//
//	app := &cli.App{Name: "todo", Commands: []cli.Command{{
//		Name:    "add",
//		Abbrevs: []string{"a"},
//		Run:     add,
//		Help:    cli.CommandHelp{Description: "add an item", Usage: "<text>"},
//	}}}
//	os.Exit(app.Main(ctx, os.Args[1:]))
//
// Tokens of the form "@name" are replaced by the words of Aliases[name]
// before dispatch. Help tables are laid out with [wui.FormatTable] and wrap
// their description column to the terminal width.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/muesli/termenv"

	"github.com/bjaus/wui"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnknownCommand    = errors.New("unknown command")
	ErrUnknownAlias      = errors.New("unknown alias")
	ErrNoTags            = errors.New("no tags specified")
	ErrMissingArgument   = errors.New("missing argument")
	ErrEmptyArgument     = errors.New("empty argument")
	ErrTrailingArguments = errors.New("unknown trailing arguments")
	ErrUnknownPositional = errors.New("unknown positional argument")
	ErrUnknownArgument   = errors.New("unknown argument")
	ErrDuplicateCommand  = errors.New("duplicate command")
)

var helpAliases = []string{"-h", "--help", "help"}

func isHelp(arg string) bool { return slices.Contains(helpAliases, arg) }

// OptionHelp documents a single option of a command.
type OptionHelp struct {
	Spec        string
	Description string
}

// CommandHelp is the help text of a command.
type CommandHelp struct {
	Description string
	Usage       string
	Options     []OptionHelp
}

// RunFunc executes a command with the arguments that follow its name.
type RunFunc func(ctx context.Context, args *Args) error

// Command is a named entry point.
type Command struct {
	Name    string
	Abbrevs []string
	Run     RunFunc
	Help    CommandHelp
}

// App holds the commands of a program. The zero values of the output and
// logging fields are usable: stdout, stderr and a discarding logger.
type App struct {
	// Name is shown in usage lines.
	Name string
	// Commands are listed in help in this order.
	Commands []Command
	// Aliases maps "@name" tokens to their expansion.
	Aliases map[string]string

	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	// Width overrides the detected terminal width for tables.
	Width int
	// NoColor strips escape sequences from everything the app prints. It
	// is also honored when NO_COLOR is set in the environment.
	NoColor bool
}

// Main runs the app and turns an error into a red "Error:" line on Stderr.
// It returns the process exit status.
func (a *App) Main(ctx context.Context, argv []string) int {
	if err := a.Run(ctx, argv); err != nil {
		a.printf(a.stderr(), "%s %s\n", wui.Colorize("Error:", wui.Red), err)
		return 1
	}
	return 0
}

// Warn prints a yellow "Warning:" line on Stdout.
func (a *App) Warn(format string, args ...any) {
	a.printf(a.stdout(), "%s %s\n", wui.Colorize("Warning:", wui.Yellow), fmt.Sprintf(format, args...))
}

// Run dispatches argv, which must not include the program name.
func (a *App) Run(ctx context.Context, argv []string) error {
	args, err := ExpandAliases(argv, a.Aliases)
	if err != nil {
		return err
	}
	if !slices.Equal(args, argv) {
		a.logger().Debug("expanded aliases", "from", argv, "to", args)
	}

	if len(args) == 0 || len(args) == 1 && isHelp(args[0]) {
		return a.printUsage()
	}

	showHelp := false
	if isHelp(args[0]) {
		showHelp = true
		args = args[1:]
	}

	cmd, err := a.lookup(args[0])
	if err != nil {
		return err
	}
	args = args[1:]

	if showHelp || len(args) > 0 && isHelp(args[0]) {
		a.logger().Debug("showing command help", "command", cmd.Name)
		return a.printCommandHelp(cmd)
	}
	if cmd.Run == nil {
		return fmt.Errorf("%w: %s has nothing to run", ErrUnknownCommand, cmd.Name)
	}
	a.logger().Debug("running command", "command", cmd.Name, "args", args)
	return cmd.Run(ctx, NewArgs(args))
}

// Validate reports names or abbreviations used by more than one command.
func (a *App) Validate() error {
	seen := map[string]string{}
	for _, cmd := range a.Commands {
		for _, name := range append([]string{cmd.Name}, cmd.Abbrevs...) {
			if other, ok := seen[name]; ok {
				return fmt.Errorf("%w: %q used by %s and %s", ErrDuplicateCommand, name, other, cmd.Name)
			}
			seen[name] = cmd.Name
		}
	}
	return nil
}

func (a *App) lookup(name string) (Command, error) {
	for _, cmd := range a.Commands {
		if cmd.Name == name {
			return cmd, nil
		}
	}
	for _, cmd := range a.Commands {
		if slices.Contains(cmd.Abbrevs, name) {
			a.logger().Debug("resolved abbreviation", "abbrev", name, "command", cmd.Name)
			return cmd, nil
		}
	}
	return Command{}, fmt.Errorf("%w: %s", ErrUnknownCommand, name)
}

// --- Help ---

func (a *App) printUsage() error {
	w := a.stdout()
	a.printf(w, "%s %s [-h | --help] <command> [<arguments>]\n", wui.Colorize("Usage:", wui.Bold), a.Name)
	a.printf(w, "\n%s\n", wui.Colorize("Commands:", wui.Bold))
	rows := []wui.Row{wui.Cells(wui.Colorize("  help", wui.Cyan), "show help for a command")}
	for _, cmd := range a.Commands {
		names := strings.Join(append([]string{cmd.Name}, cmd.Abbrevs...), ", ")
		rows = append(rows, wui.Cells(wui.Colorize("  "+names, wui.Cyan), cmd.Help.Description))
	}
	return a.WriteTable(rows, wui.WithColumnSpacing(2), wui.WithWrapColumns(1))
}

func (a *App) printCommandHelp(cmd Command) error {
	w := a.stdout()
	usage := strings.TrimRight(fmt.Sprintf("%s %s %s %s", wui.Colorize("Usage:", wui.Bold), a.Name, cmd.Name, cmd.Help.Usage), " ")
	a.printf(w, "%s\n\n", usage)
	desc := []wui.Row{wui.Cells(wui.Colorize("Description:", wui.Bold), cmd.Help.Description)}
	if err := a.WriteTable(desc, wui.WithColumnSpacing(1), wui.WithWrapColumns(1)); err != nil {
		return err
	}
	if len(cmd.Help.Options) == 0 {
		return nil
	}
	a.printf(w, "\n%s\n", wui.Colorize("Options:", wui.Bold))
	rows := make([]wui.Row, len(cmd.Help.Options))
	for i, opt := range cmd.Help.Options {
		rows[i] = wui.Cells("  "+opt.Spec, opt.Description)
	}
	return a.WriteTable(rows, wui.WithColumnSpacing(3), wui.WithWrapColumns(1))
}

// WriteTable lays out rows with [wui.FormatTable] and prints them on Stdout,
// honoring Width and NoColor. Nothing is printed when the layout fails.
func (a *App) WriteTable(rows []wui.Row, opts ...wui.Option) error {
	if a.Width > 0 {
		opts = append(opts, wui.WithTerminalWidth(a.Width))
	}
	seq, err := wui.FormatTable(rows, opts...)
	if err != nil {
		return err
	}
	w := a.stdout()
	for line := range seq {
		a.printf(w, "%s\n", line)
	}
	return nil
}

// --- Output ---

// Printf prints on Stdout, stripping escape sequences when color is off.
func (a *App) Printf(format string, args ...any) {
	a.printf(a.stdout(), format, args...)
}

func (a *App) printf(w io.Writer, format string, args ...any) {
	s := fmt.Sprintf(format, args...)
	if a.NoColor || termenv.EnvNoColor() {
		s = wui.StripEscapes(s)
	}
	_, _ = io.WriteString(w, s)
}

func (a *App) stdout() io.Writer {
	if a.Stdout != nil {
		return a.Stdout
	}
	return os.Stdout
}

func (a *App) stderr() io.Writer {
	if a.Stderr != nil {
		return a.Stderr
	}
	return os.Stderr
}

func (a *App) logger() *slog.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return slog.New(slog.DiscardHandler)
}

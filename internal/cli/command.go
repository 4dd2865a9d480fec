package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/mfridman/clitree/internal/suggest"
)

// NoExecError is returned when the selected command has no execution function.
type NoExecError struct {
	Command *Command
}

func (e *NoExecError) Error() string {
	return fmt.Sprintf("command %q has no execution function", e.Command.path())
}

// Command is a command or subcommand within the command hierarchy.
type Command struct {
	// Name is a single word identifying the command in the hierarchy and in help text.
	Name string

	// Usage is the full usage pattern, e.g. "clitree match [flags] <pattern> <file>". If empty, a
	// pattern is derived from the command path.
	Usage string

	// ShortHelp is a brief description shown in help text.
	ShortHelp string

	// UsageFunc optionally replaces [DefaultUsage] for this command.
	UsageFunc func(*Command) string

	// Flags holds the command's own flag definitions. Flags of parent commands are available to
	// subcommands, with the subcommand's flags taking precedence.
	Flags *flag.FlagSet

	// FlagsMetadata extends Flags with additional information, such as required flags.
	FlagsMetadata []FlagMetadata

	// SubCommands are the commands nested under this command, in declaration order.
	SubCommands []*Command

	// Exec runs the command. It is called by [Run] on the command selected by [Parse].
	Exec func(ctx context.Context, s *State) error

	state    *State
	selected *Command
}

// FlagMetadata holds additional information about a flag.
type FlagMetadata struct {
	// Name must match a flag name in the command's flag set.
	Name string

	// Required flags must appear on the command line.
	Required bool
}

// FlagsFunc creates a new [flag.FlagSet] and applies fn to it. Example:
//
//	cmd.Flags = cli.FlagsFunc(func(f *flag.FlagSet) {
//	    f.Bool("negate", false, "invert the match")
//	    f.Int("max-depth", 0, "maximum tree depth")
//	})
func FlagsFunc(fn func(*flag.FlagSet)) *flag.FlagSet {
	fset := flag.NewFlagSet("", flag.ContinueOnError)
	fn(fset)
	return fset
}

// path returns the space-separated command chain leading to c, or just its name before parsing.
func (c *Command) path() string {
	if c.state == nil || len(c.state.chain) == 0 {
		return c.Name
	}
	return getCommandPath(c.state.chain)
}

func (c *Command) findSubCommand(name string) *Command {
	for _, sub := range c.SubCommands {
		if strings.EqualFold(sub.Name, name) {
			return sub
		}
	}
	return nil
}

func (c *Command) unknownCommandError(name string) error {
	known := make([]string, 0, len(c.SubCommands))
	for _, sub := range c.SubCommands {
		known = append(known, sub.Name)
	}
	if suggestions := suggest.FindSimilar(name, known, 3); len(suggestions) > 0 {
		return fmt.Errorf("unknown command %q. Did you mean one of these?\n\t%s",
			name,
			strings.Join(suggestions, "\n\t"))
	}
	return fmt.Errorf("unknown command %q", name)
}

func getCommandPath(commands []*Command) string {
	names := make([]string, 0, len(commands))
	for _, c := range commands {
		names = append(names, c.Name)
	}
	return strings.Join(names, " ")
}

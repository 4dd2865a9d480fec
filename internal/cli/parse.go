package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/mfridman/xflag"
)

// Parse walks the command hierarchy following args, parses flags, and records the selected
// command for [Run]. Typically args is os.Args[1:].
//
// Flags may appear anywhere after the subcommand names. Everything after a "--" delimiter is passed
// through as positional arguments. If a help flag is found, usage of the deepest command reached is
// printed to its flag set's output and [flag.ErrHelp] is returned.
func Parse(root *Command, args []string) error {
	if root == nil {
		return errors.New("failed to parse: root command is nil")
	}
	if err := validateCommands(root, nil); err != nil {
		return fmt.Errorf("failed to parse: %w", err)
	}

	argsToParse, remainingArgs := args, []string(nil)
	for i, arg := range args {
		if arg == "--" {
			argsToParse, remainingArgs = args[:i], args[i+1:]
			break
		}
	}

	current := root
	chain := []*Command{root}
	initState(root, nil, chain)

	// First pass: find the selected command, so help requests are answered before any flag
	// parsing errors.
	for _, arg := range argsToParse {
		if isHelpFlag(arg) {
			return current.showHelp()
		}
		if strings.HasPrefix(arg, "-") {
			continue
		}
		if len(current.SubCommands) == 0 {
			break
		}
		sub := current.findSubCommand(arg)
		if sub == nil {
			return current.unknownCommandError(arg)
		}
		chain = append(chain, sub)
		initState(sub, current.state, chain)
		current = sub
	}
	root.selected = current

	// Walk the chain backwards so a subcommand's flag shadows a parent flag of the same name.
	combined := flag.NewFlagSet(root.Name, flag.ContinueOnError)
	combined.SetOutput(io.Discard)
	for i := len(chain) - 1; i >= 0; i-- {
		chain[i].Flags.VisitAll(func(f *flag.Flag) {
			if combined.Lookup(f.Name) == nil {
				combined.Var(f.Value, f.Name, f.Usage)
			}
		})
	}
	if err := xflag.ParseToEnd(combined, argsToParse); err != nil {
		return fmt.Errorf("command %q: %w", current.Name, err)
	}

	if err := checkRequiredFlags(current, combined, argsToParse); err != nil {
		return err
	}

	// Drop the command names, which flag parsing leaves in place.
	parsed := combined.Args()
	start := 0
	for _, cmd := range chain[1:] {
		if start < len(parsed) && strings.EqualFold(parsed[start], cmd.Name) {
			start++
		}
	}
	var finalArgs []string
	finalArgs = append(finalArgs, parsed[start:]...)
	finalArgs = append(finalArgs, remainingArgs...)
	current.state.Args = finalArgs
	return nil
}

func initState(c *Command, parent *State, chain []*Command) {
	if c.Flags == nil {
		c.Flags = flag.NewFlagSet(c.Name, flag.ContinueOnError)
	}
	c.state = &State{
		flags:  c.Flags,
		parent: parent,
		chain:  append([]*Command(nil), chain...),
	}
}

func isHelpFlag(arg string) bool {
	switch arg {
	case "-h", "--h", "-help", "--help":
		return true
	}
	return false
}

func checkRequiredFlags(c *Command, combined *flag.FlagSet, args []string) error {
	var missing []string
	for _, meta := range c.FlagsMetadata {
		if !meta.Required {
			continue
		}
		if combined.Lookup(meta.Name) == nil {
			return fmt.Errorf("command %q: internal error: required flag %q not found in flag set", c.Name, meta.Name)
		}
		if !flagPresent(meta.Name, args) {
			missing = append(missing, meta.Name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("command %q: required flag(s) %q not set", c.Name, strings.Join(missing, ", "))
	}
	return nil
}

func flagPresent(name string, args []string) bool {
	for _, arg := range args {
		if arg == "-"+name || arg == "--"+name ||
			strings.HasPrefix(arg, "-"+name+"=") ||
			strings.HasPrefix(arg, "--"+name+"=") {
			return true
		}
	}
	return false
}

func validateCommands(c *Command, path []string) error {
	if c.Name == "" {
		if len(path) == 0 {
			return errors.New("root command has no name")
		}
		return fmt.Errorf("subcommand in path %q has no name", strings.Join(path, " "))
	}
	if strings.ContainsAny(c.Name, " \t") {
		return fmt.Errorf("command name %q contains spaces", c.Name)
	}
	path = append(path, c.Name)
	for _, sub := range c.SubCommands {
		if err := validateCommands(sub, path); err != nil {
			return err
		}
	}
	return nil
}

// Package cobratree exposes a [cobra.Command] tree as a [clitree.Parser].
package cobratree

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mfridman/clitree"
)

const (
	helpFlagName      = "help"
	helpFlagShorthand = "h"

	// dispatchDest is the destination name reported for the subcommand dispatch action.
	dispatchDest = "command"
)

// Option configures how a command tree is exposed.
type Option func(*options)

type options struct {
	availableOnly bool
}

// WithAvailableOnly skips subcommands that cobra would not list in help output: hidden,
// deprecated, and the ones with nothing to run.
func WithAvailableOnly() Option {
	return func(o *options) { o.availableOnly = true }
}

// New returns a parser backed by cmd. The command tree is read on every call, never modified by
// this package, and is expected to stay unchanged while a traversal is running.
//
// The parser's actions are, in order:
//   - one per local flag (including persistent flags declared on cmd), with the flag name as
//     destination and "-<shorthand>" and "--<name>" as option strings;
//   - a help action ("-h", "--help") when cmd does not define a help flag itself, mirroring the flag
//     cobra adds when the command executes;
//   - when cmd has subcommands, a dispatch action with one choice per subcommand, followed by one
//     [clitree.Alias] choice per alias.
func New(cmd *cobra.Command, opts ...Option) clitree.Parser {
	o := new(options)
	for _, opt := range opts {
		opt(o)
	}
	return &command{cmd: cmd, opts: o}
}

type command struct {
	cmd  *cobra.Command
	opts *options
}

var _ clitree.Parser = (*command)(nil)

func (c *command) Prog() string {
	return c.cmd.CommandPath()
}

func (c *command) HasSubparsers() bool {
	return c.cmd.HasSubCommands()
}

func (c *command) Actions() []clitree.Action {
	var actions []clitree.Action
	c.cmd.LocalFlags().VisitAll(func(f *pflag.Flag) {
		actions = append(actions, flagAction(f))
	})
	if c.cmd.Flags().Lookup(helpFlagName) == nil {
		help := &action{dest: helpFlagName}
		if c.cmd.Flags().ShorthandLookup(helpFlagShorthand) == nil {
			help.optionStrings = append(help.optionStrings, "-"+helpFlagShorthand)
		}
		help.optionStrings = append(help.optionStrings, "--"+helpFlagName)
		actions = append(actions, help)
	}
	if c.cmd.HasSubCommands() {
		actions = append(actions, c.dispatcher())
	}
	return actions
}

func (c *command) dispatcher() *dispatcher {
	d := &dispatcher{action: action{dest: dispatchDest}}
	var aliases []clitree.Choice
	for _, sub := range c.cmd.Commands() {
		if c.opts.availableOnly && !sub.IsAvailableCommand() {
			continue
		}
		d.choices = append(d.choices, clitree.Choice{
			Name:  sub.Name(),
			Value: &command{cmd: sub, opts: c.opts},
		})
		for _, alias := range sub.Aliases {
			aliases = append(aliases, clitree.Choice{
				Name:  alias,
				Value: clitree.Alias{Target: sub.Name()},
			})
		}
	}
	d.choices = append(d.choices, aliases...)
	return d
}

func flagAction(f *pflag.Flag) *action {
	a := &action{dest: f.Name}
	if f.Shorthand != "" {
		a.optionStrings = append(a.optionStrings, "-"+f.Shorthand)
	}
	a.optionStrings = append(a.optionStrings, "--"+f.Name)
	return a
}

type action struct {
	dest          string
	optionStrings []string
}

func (a *action) Dest() string            { return a.dest }
func (a *action) OptionStrings() []string { return a.optionStrings }

type dispatcher struct {
	action
	choices []clitree.Choice
}

var _ clitree.DispatchAction = (*dispatcher)(nil)

func (d *dispatcher) Choices() []clitree.Choice { return d.choices }

package cli

import (
	"flag"

	"github.com/mfridman/clitree"
)

// Tree exposes the command hierarchy rooted at root as a [clitree.Parser].
//
// Each command reports the help flags [Parse] always accepts, then its own flags in lexicographical
// order, each spelled with one and two dashes, and finally a dispatch action over its subcommands.
func Tree(root *Command) clitree.Parser {
	return &treeNode{cmd: root, prog: root.Name}
}

type treeNode struct {
	cmd  *Command
	prog string
}

func (n *treeNode) Prog() string        { return n.prog }
func (n *treeNode) HasSubparsers() bool { return len(n.cmd.SubCommands) > 0 }

func (n *treeNode) Actions() []clitree.Action {
	actions := []clitree.Action{
		treeAction{dest: "help", optionStrings: []string{"-h", "--help"}},
	}
	if n.cmd.Flags != nil {
		n.cmd.Flags.VisitAll(func(f *flag.Flag) {
			actions = append(actions, treeAction{
				dest:          f.Name,
				optionStrings: []string{"-" + f.Name, "--" + f.Name},
			})
		})
	}
	if len(n.cmd.SubCommands) > 0 {
		d := treeDispatcher{treeAction: treeAction{dest: "command"}}
		for _, sub := range n.cmd.SubCommands {
			d.choices = append(d.choices, clitree.Choice{
				Name:  sub.Name,
				Value: &treeNode{cmd: sub, prog: n.prog + " " + sub.Name},
			})
		}
		actions = append(actions, d)
	}
	return actions
}

type treeAction struct {
	dest          string
	optionStrings []string
}

func (a treeAction) Dest() string            { return a.dest }
func (a treeAction) OptionStrings() []string { return a.optionStrings }

type treeDispatcher struct {
	treeAction
	choices []clitree.Choice
}

func (d treeDispatcher) Choices() []clitree.Choice { return d.choices }

package clitree_test

import (
	"iter"
	"slices"

	"github.com/mfridman/clitree"
)

// node is a minimal parser used to build trees in tests.
type node struct {
	prog    string
	actions []clitree.Action
	subs    bool
}

func (n *node) Prog() string              { return n.prog }
func (n *node) Actions() []clitree.Action { return n.actions }
func (n *node) HasSubparsers() bool       { return n.subs }

func (n *node) add(a ...clitree.Action) *node {
	n.actions = append(n.actions, a...)
	return n
}

type option struct {
	dest  string
	flags []string
}

func (o option) Dest() string            { return o.dest }
func (o option) OptionStrings() []string { return o.flags }

type dispatch struct {
	option
	choices []clitree.Choice
}

func (d *dispatch) Choices() []clitree.Choice { return d.choices }

var helpOption = option{dest: "help", flags: []string{"-h", "--help"}}

func newNode(prog string, opts ...clitree.Action) *node {
	return &node{prog: prog, actions: append([]clitree.Action{helpOption}, opts...)}
}

// withSubcommands appends a dispatch action over children, named by the last token of their prog.
func (n *node) withSubcommands(children ...*node) *node {
	d := &dispatch{option: option{dest: "command"}}
	for _, c := range children {
		d.choices = append(d.choices, clitree.Choice{Name: lastToken(c.prog), Value: c})
	}
	n.subs = true
	return n.add(d)
}

func lastToken(s string) string {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == ' ' {
			return s[i+1:]
		}
	}
	return s
}

// exampleTree is:
//
//	prog --verbose
//	├── add
//	│   └── item name (positional)
//	└── remove --force (no help)
type exampleTree struct {
	root, add, item, remove *node
}

func newExampleTree() exampleTree {
	item := newNode("prog add item", option{dest: "name"})
	add := newNode("prog add").withSubcommands(item)
	remove := &node{prog: "prog remove"}
	remove.add(option{dest: "force", flags: []string{"-f", "--force"}})
	root := newNode("prog", option{dest: "verbose", flags: []string{"-v", "--verbose"}}).
		withSubcommands(add, remove)
	return exampleTree{root: root, add: add, item: item, remove: remove}
}

func progs(seq iter.Seq[clitree.Parser]) []string {
	var out []string
	for p := range seq {
		out = append(out, p.Prog())
	}
	return out
}

func collect(seq iter.Seq[clitree.Parser]) []clitree.Parser {
	return slices.Collect(seq)
}

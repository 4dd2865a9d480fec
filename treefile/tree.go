package treefile

import (
	"github.com/mfridman/clitree"
)

// dispatchDest is the destination name of the subcommand dispatch action.
const dispatchDest = "command"

var helpAction = &action{dest: "help", optionStrings: []string{"-h", "--help"}}

// Build returns the root parser of doc. The document must not be modified afterwards.
func Build(doc *Document) clitree.Parser {
	return build(doc.Prog, addHelp(doc.AddHelp), doc.Options, doc.Commands)
}

func build(prog string, help bool, options []Option, commands []Command) *parser {
	p := &parser{prog: prog}
	if help {
		p.actions = append(p.actions, helpAction)
	}
	for _, opt := range options {
		p.actions = append(p.actions, &action{dest: opt.Dest, optionStrings: opt.Flags})
	}
	if len(commands) == 0 {
		return p
	}

	d := &dispatcher{action: action{dest: dispatchDest}}
	for _, cmd := range commands {
		child := build(prog+" "+cmd.Name, addHelp(cmd.AddHelp), cmd.Options, cmd.Commands)
		d.choices = append(d.choices, clitree.Choice{Name: cmd.Name, Value: child})
		for _, alias := range cmd.Aliases {
			d.choices = append(d.choices, clitree.Choice{
				Name:  alias,
				Value: clitree.Alias{Target: cmd.Name},
			})
		}
	}
	p.subparsers = true
	p.actions = append(p.actions, d)
	return p
}

type parser struct {
	prog       string
	actions    []clitree.Action
	subparsers bool
}

var _ clitree.Parser = (*parser)(nil)

func (p *parser) Prog() string              { return p.prog }
func (p *parser) Actions() []clitree.Action { return p.actions }
func (p *parser) HasSubparsers() bool       { return p.subparsers }

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

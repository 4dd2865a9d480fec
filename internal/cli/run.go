package cli

import (
	"context"
	"errors"
	"io"
	"os"
)

// ParseAndRun combines [Parse] and [Run].
func ParseAndRun(ctx context.Context, root *Command, args []string, options *RunOptions) error {
	if err := Parse(root, args); err != nil {
		return err
	}
	return Run(ctx, root, options)
}

// RunOptions specifies the standard streams for a command. Nil streams default to [os.Stdin],
// [os.Stdout] and [os.Stderr].
type RunOptions struct {
	Stdin          io.Reader
	Stdout, Stderr io.Writer
}

// Run executes the command selected by [Parse]. A root command without an execution function
// prints its usage instead.
//
// The options parameter may be nil.
func Run(ctx context.Context, root *Command, options *RunOptions) error {
	if root == nil || root.selected == nil {
		return errors.New("command has not been parsed")
	}
	selected := root.selected
	options = checkAndSetRunOptions(options)
	updateState(selected.state, options)

	if selected.Exec == nil {
		if selected == root || len(selected.SubCommands) > 0 {
			return selected.showHelp()
		}
		return &NoExecError{Command: selected}
	}
	return selected.Exec(ctx, selected.state)
}

func updateState(s *State, opt *RunOptions) {
	if s.Stdin == nil {
		s.Stdin = opt.Stdin
	}
	if s.Stdout == nil {
		s.Stdout = opt.Stdout
	}
	if s.Stderr == nil {
		s.Stderr = opt.Stderr
	}
}

func checkAndSetRunOptions(opt *RunOptions) *RunOptions {
	if opt == nil {
		opt = &RunOptions{}
	}
	if opt.Stdin == nil {
		opt.Stdin = os.Stdin
	}
	if opt.Stdout == nil {
		opt.Stdout = os.Stdout
	}
	if opt.Stderr == nil {
		opt.Stderr = os.Stderr
	}
	return opt
}

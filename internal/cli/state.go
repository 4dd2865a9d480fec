package cli

import (
	"flag"
	"fmt"
	"io"
)

// State is the per-command execution state. Child states link to their parent, so flags of parent
// commands remain reachable through [GetFlag].
type State struct {
	// Args contains the positional arguments left after flag parsing.
	Args []string

	// Standard I/O streams.
	Stdin          io.Reader
	Stdout, Stderr io.Writer

	flags  *flag.FlagSet
	parent *State
	// chain is the command path from the root to the owning command.
	chain []*Command
}

// GetFlag returns the value of the named flag, looking in the current command first and then in
// its parents. Example:
//
//	negate := cli.GetFlag[bool](s, "negate")
//	depth := cli.GetFlag[int](s, "max-depth")
//
// GetFlag panics if the flag is not defined anywhere in the hierarchy or if T does not match the
// registered type. Both are programming errors and should fail loudly.
func GetFlag[T any](s *State, name string) T {
	f, owner := lookupFlag(s, name)
	if f == nil {
		panic(fmt.Errorf("internal error: flag %q not found in command %q flag set", "-"+name, commandName(s)))
	}
	var value any = f.Value
	if getter, ok := f.Value.(flag.Getter); ok {
		value = getter.Get()
	}
	if v, ok := value.(T); ok {
		return v
	}
	panic(fmt.Errorf("internal error: type mismatch for flag %q in command %q: registered %T, requested %T",
		"-"+name, commandName(owner), value, *new(T)))
}

// lookupFlag returns the named flag and the state that defines it, walking up the hierarchy.
func lookupFlag(s *State, name string) (*flag.Flag, *State) {
	for ; s != nil; s = s.parent {
		if s.flags == nil {
			continue
		}
		if f := s.flags.Lookup(name); f != nil {
			return f, s
		}
	}
	return nil, nil
}

func commandName(s *State) string {
	if len(s.chain) == 0 {
		return ""
	}
	return s.chain[len(s.chain)-1].Name
}

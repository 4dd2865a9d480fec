package clitree

// Parser is a single command-line parser within a tree of parsers and subparsers.
type Parser interface {
	// Prog is the full invoked command path, space-separated, with the program name as the first
	// token. For example, "git remote add".
	Prog() string

	// Actions returns the declared options and positional arguments in declaration order.
	Actions() []Action

	// HasSubparsers reports whether the parser has a subcommand registry.
	HasSubparsers() bool
}

// Action is a declared option or positional argument.
type Action interface {
	// Dest is the internal destination name, e.g. "dry_run" or "path".
	Dest() string

	// OptionStrings are the flag spellings in declaration order, e.g. "-n" and "--dry-run". Empty
	// for positional arguments.
	OptionStrings() []string
}

// DispatchAction is an [Action] responsible for routing to a named subcommand's parser. A parser
// declares at most one.
type DispatchAction interface {
	Action

	// Choices returns the subcommand entries in declaration order.
	Choices() []Choice
}

// Choice is one entry of a dispatch action.
type Choice struct {
	// Name is the subcommand name.
	Name string

	// Value is usually a [Parser]. Other values, such as an [Alias], are ignored during traversal.
	Value any
}

// Alias is a choice value naming an alternative spelling of another subcommand. Adapters use it
// instead of repeating the target parser, so a tree walk yields each parser once.
type Alias struct {
	// Target is the canonical name of the aliased subcommand.
	Target string
}

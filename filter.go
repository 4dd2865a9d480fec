package clitree

import (
	"iter"
	"strings"
)

// CommandPath returns the subcommand chain of p, without the program name. For a parser with prog
// "git remote add" it returns "remote add". A root parser returns the empty string.
func CommandPath(p Parser) string {
	fields := strings.Fields(p.Prog())
	if len(fields) <= 1 {
		return ""
	}
	return strings.Join(fields[1:], " ")
}

// Matching returns the parsers whose [CommandPath] matches pattern. If negate is true, it returns
// the parsers that do not match instead.
//
// Keep in mind the root parser has an empty command path: use `^$` to select only the root.
func Matching(parsers iter.Seq[Parser], pattern *Pattern, negate bool) iter.Seq[Parser] {
	return filter(parsers, negate, func(p Parser) bool {
		return pattern.MatchString(CommandPath(p))
	})
}

// WithOption returns the parsers declaring at least one action whose destination name or any of
// whose option strings matches pattern. If negate is true, it returns the parsers with no such
// action.
//
// Both the destination and the flag spellings are checked, so "help", "-h" and "--help" all find
// parsers with the usual help option, and positional arguments can be matched by name.
func WithOption(parsers iter.Seq[Parser], pattern *Pattern, negate bool) iter.Seq[Parser] {
	return filter(parsers, negate, func(p Parser) bool {
		for _, a := range p.Actions() {
			if hasMatch(a, pattern) {
				return true
			}
		}
		return false
	})
}

func hasMatch(a Action, pattern *Pattern) bool {
	if pattern.MatchString(a.Dest()) {
		return true
	}
	for _, s := range a.OptionStrings() {
		if pattern.MatchString(s) {
			return true
		}
	}
	return false
}

func filter(parsers iter.Seq[Parser], negate bool, match func(Parser) bool) iter.Seq[Parser] {
	return func(yield func(Parser) bool) {
		for p := range parsers {
			if match(p) == negate {
				continue
			}
			if !yield(p) {
				return
			}
		}
	}
}

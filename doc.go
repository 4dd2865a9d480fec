// Package clitree walks command-line parser trees and filters them by command path or by declared
// option.
//
// A tree is any value implementing [Parser]. Subcommand dispatch is modeled by a [DispatchAction]
// among a parser's actions, whose [Choice] values hold the child parsers. Adapters for concrete
// parser libraries live in sub-packages, for example [github.com/mfridman/clitree/cobratree] and
// [github.com/mfridman/clitree/treefile].
//
// The functions in this package never construct or modify a tree. They return lazy, restartable
// sequences meant to be composed:
//
//	pattern := clitree.MustCompile(`^remote`)
//	help := clitree.MustCompile(`^--help$`)
//	for p := range clitree.WithOption(clitree.Matching(clitree.Parsers(root, 0), pattern, false), help, true) {
//	    fmt.Println(p.Prog())
//	}
package clitree

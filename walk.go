package clitree

import (
	"iter"
)

// FindDispatcher returns the dispatch action among the actions of p, or nil if p has none.
//
// The last action is checked first, since subcommand dispatch is almost always declared last.
// Otherwise the first dispatch action found scanning front to back is returned.
func FindDispatcher(p Parser) DispatchAction {
	if p == nil {
		return nil
	}
	actions := p.Actions()
	if len(actions) == 0 {
		return nil
	}
	if d, ok := actions[len(actions)-1].(DispatchAction); ok {
		return d
	}
	for _, a := range actions {
		if d, ok := a.(DispatchAction); ok {
			return d
		}
	}
	return nil
}

// Parsers returns a depth-first sequence of every parser in the tree rooted at root, starting with
// root itself. Children are visited in declaration order, each subtree fully before its next
// sibling.
//
// If maxDepth is greater than zero, parsers at depth maxDepth or deeper are not yielded. The root
// is at depth 0, so a maxDepth of 1 yields only the root. A maxDepth of 0 (or less) means no limit.
//
// Choice values that are not a [Parser] are skipped. The sequence may be iterated more than once.
func Parsers(root Parser, maxDepth int) iter.Seq[Parser] {
	return func(yield func(Parser) bool) {
		if root == nil {
			return
		}
		walk(root, maxDepth, 0, yield)
	}
}

// walk reports false once yield has asked to stop.
func walk(p Parser, maxDepth, depth int, yield func(Parser) bool) bool {
	if maxDepth > 0 && depth >= maxDepth {
		return true
	}
	if !yield(p) {
		return false
	}
	if !p.HasSubparsers() {
		return true
	}
	d := FindDispatcher(p)
	if d == nil {
		return true
	}
	for _, choice := range d.Choices() {
		sub, ok := choice.Value.(Parser)
		if !ok || sub == nil {
			continue
		}
		if !walk(sub, maxDepth, depth+1, yield) {
			return false
		}
	}
	return true
}

package clitree

import (
	"fmt"
	"regexp"
)

// PatternError is returned when a pattern expression cannot be compiled.
type PatternError struct {
	Expr string
	Err  error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Expr, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

// Pattern is a compiled regular expression that matches at the start of a string. The pattern
// need not consume the whole string, only a leading prefix of it.
//
// A Pattern is safe for concurrent use.
type Pattern struct {
	expr string
	re   *regexp.Regexp
}

// Compile parses a regular expression (RE2 syntax, case-sensitive unless the expression sets
// flags) and returns a Pattern anchored at the start of the subject.
func Compile(expr string) (*Pattern, error) {
	// Compile the bare expression first: wrapping an unbalanced one like "a)|(b" in a group would
	// otherwise compile into something unanchored.
	if _, err := regexp.Compile(expr); err != nil {
		return nil, &PatternError{Expr: expr, Err: err}
	}
	re, err := regexp.Compile(`^(?:` + expr + `)`)
	if err != nil {
		return nil, &PatternError{Expr: expr, Err: err}
	}
	return &Pattern{expr: expr, re: re}, nil
}

// MustCompile is like [Compile] but panics if the expression cannot be parsed.
func MustCompile(expr string) *Pattern {
	p, err := Compile(expr)
	if err != nil {
		panic(err)
	}
	return p
}

// FromRegexp returns a Pattern with the same expression as re, anchored at the start of the
// subject.
func FromRegexp(re *regexp.Regexp) (*Pattern, error) {
	if re == nil {
		return nil, &PatternError{Err: fmt.Errorf("nil regexp")}
	}
	return Compile(re.String())
}

// MatchString reports whether the pattern matches a prefix of s.
func (p *Pattern) MatchString(s string) bool {
	return p.re.MatchString(s)
}

// String returns the source expression used to compile the pattern.
func (p *Pattern) String() string {
	return p.expr
}

package clitree_test

import (
	"regexp"
	"regexp/syntax"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfridman/clitree"
)

func TestPattern(t *testing.T) {
	t.Parallel()

	t.Run("anchored at start", func(t *testing.T) {
		t.Parallel()
		p, err := clitree.Compile("add")
		require.NoError(t, err)
		assert.True(t, p.MatchString("add"))
		assert.True(t, p.MatchString("add item"))
		assert.False(t, p.MatchString("remove add"))
		assert.Equal(t, "add", p.String())
	})
	t.Run("alternation stays anchored", func(t *testing.T) {
		t.Parallel()
		p := clitree.MustCompile("add|remove")
		assert.True(t, p.MatchString("remove"))
		assert.False(t, p.MatchString("x remove"))
	})
	t.Run("case sensitive by default", func(t *testing.T) {
		t.Parallel()
		assert.False(t, clitree.MustCompile("add").MatchString("ADD"))
		assert.True(t, clitree.MustCompile("(?i)add").MatchString("ADD"))
	})
	t.Run("empty expression matches everything", func(t *testing.T) {
		t.Parallel()
		p := clitree.MustCompile("")
		assert.True(t, p.MatchString(""))
		assert.True(t, p.MatchString("anything"))
	})
	t.Run("from regexp", func(t *testing.T) {
		t.Parallel()
		p, err := clitree.FromRegexp(regexp.MustCompile(`item$`))
		require.NoError(t, err)
		assert.True(t, p.MatchString("item"))
		assert.False(t, p.MatchString("add item"))

		_, err = clitree.FromRegexp(nil)
		require.Error(t, err)
	})
	t.Run("invalid", func(t *testing.T) {
		t.Parallel()
		for _, expr := range []string{"(", "a)|(b", "[z-a]"} {
			_, err := clitree.Compile(expr)
			require.Error(t, err, "expression %q", expr)
			var patternErr *clitree.PatternError
			require.ErrorAs(t, err, &patternErr)
			assert.Equal(t, expr, patternErr.Expr)
			var syntaxErr *syntax.Error
			assert.ErrorAs(t, err, &syntaxErr)
			assert.Contains(t, err.Error(), "invalid pattern")
		}
		assert.Panics(t, func() { clitree.MustCompile("(") })
	})
}

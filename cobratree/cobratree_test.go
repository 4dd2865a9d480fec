package cobratree_test

import (
	"bytes"
	"slices"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfridman/clitree"
	"github.com/mfridman/clitree/cobratree"
)

// newTaskCommand returns:
//
//	task --verbose
//	├── list --all
//	├── remote (alias r)
//	│   ├── add --name
//	│   └── remove --force --host/-h
//	└── debug (hidden)
func newTaskCommand() *cobra.Command {
	run := func(cmd *cobra.Command, args []string) {}

	root := &cobra.Command{Use: "task"}
	root.PersistentFlags().BoolP("verbose", "v", false, "verbose output")

	list := &cobra.Command{Use: "list", Run: run}
	list.Flags().BoolP("all", "a", false, "list all tasks")

	remote := &cobra.Command{Use: "remote", Aliases: []string{"r"}}
	add := &cobra.Command{Use: "add <url>", Run: run}
	add.Flags().String("name", "", "remote name")
	remove := &cobra.Command{Use: "remove", Run: run}
	remove.Flags().Bool("force", false, "force removal")
	remove.Flags().StringP("host", "h", "", "remote host")
	remote.AddCommand(add, remove)

	debug := &cobra.Command{Use: "debug", Hidden: true, Run: run}

	root.AddCommand(list, remote, debug)
	return root
}

func progs(t *testing.T, parsers []clitree.Parser) []string {
	t.Helper()
	var out []string
	for _, p := range parsers {
		out = append(out, p.Prog())
	}
	return out
}

func collect(root clitree.Parser, maxDepth int) []clitree.Parser {
	var out []clitree.Parser
	for p := range clitree.Parsers(root, maxDepth) {
		out = append(out, p)
	}
	return out
}

func TestParsers(t *testing.T) {
	t.Parallel()

	t.Run("all commands", func(t *testing.T) {
		t.Parallel()
		root := cobratree.New(newTaskCommand())
		got := progs(t, collect(root, 0))
		// cobra sorts subcommands by name.
		assert.Equal(t, []string{
			"task",
			"task debug",
			"task list",
			"task remote",
			"task remote add",
			"task remote remove",
		}, got)
	})
	t.Run("available only", func(t *testing.T) {
		t.Parallel()
		root := cobratree.New(newTaskCommand(), cobratree.WithAvailableOnly())
		got := progs(t, collect(root, 0))
		assert.Equal(t, []string{
			"task",
			"task list",
			"task remote",
			"task remote add",
			"task remote remove",
		}, got)
	})
	t.Run("max depth", func(t *testing.T) {
		t.Parallel()
		root := cobratree.New(newTaskCommand())
		assert.Equal(t, []string{"task"}, progs(t, collect(root, 1)))
		assert.Equal(t, []string{"task", "task debug", "task list", "task remote"}, progs(t, collect(root, 2)))
	})
}

func TestActions(t *testing.T) {
	t.Parallel()

	t.Run("root", func(t *testing.T) {
		t.Parallel()
		root := cobratree.New(newTaskCommand())
		actions := root.Actions()
		require.Len(t, actions, 3)
		assert.Equal(t, "verbose", actions[0].Dest())
		assert.Equal(t, []string{"-v", "--verbose"}, actions[0].OptionStrings())
		assert.Equal(t, "help", actions[1].Dest())
		assert.Equal(t, []string{"-h", "--help"}, actions[1].OptionStrings())
		assert.Equal(t, "command", actions[2].Dest())
		assert.Empty(t, actions[2].OptionStrings())
	})
	t.Run("aliases", func(t *testing.T) {
		t.Parallel()
		root := cobratree.New(newTaskCommand())
		d := clitree.FindDispatcher(root)
		require.NotNil(t, d)
		choices := d.Choices()
		require.Len(t, choices, 4)
		var names []string
		for _, c := range choices {
			names = append(names, c.Name)
		}
		assert.Equal(t, []string{"debug", "list", "remote", "r"}, names)
		assert.Equal(t, clitree.Alias{Target: "remote"}, choices[3].Value)
	})
	t.Run("help shorthand taken", func(t *testing.T) {
		t.Parallel()
		root := cobratree.New(newTaskCommand())
		pattern := clitree.MustCompile(`remote remove$`)
		var remove clitree.Parser
		for p := range clitree.Matching(clitree.Parsers(root, 0), pattern, false) {
			remove = p
		}
		require.NotNil(t, remove)
		var help clitree.Action
		for _, a := range remove.Actions() {
			if a.Dest() == "help" {
				help = a
			}
		}
		require.NotNil(t, help)
		assert.Equal(t, []string{"--help"}, help.OptionStrings())
	})
	t.Run("help flag installed by cobra", func(t *testing.T) {
		t.Parallel()
		cmd := newTaskCommand()
		cmd.SetOut(new(bytes.Buffer))
		cmd.SetArgs([]string{"--help"})
		require.NoError(t, cmd.Execute())

		var helps int
		for _, a := range cobratree.New(cmd).Actions() {
			if a.Dest() == "help" {
				helps++
				assert.Equal(t, []string{"-h", "--help"}, a.OptionStrings())
			}
		}
		assert.Equal(t, 1, helps)
	})
}

func TestFilters(t *testing.T) {
	t.Parallel()

	// Reading a cobra tree is not safe for concurrent use, so the subtests share one tree serially.
	root := cobratree.New(newTaskCommand())
	parsers := clitree.Parsers(root, 0)

	t.Run("with option", func(t *testing.T) {
		// remove declares -h through --host, every other command through help.
		var got []clitree.Parser
		for p := range clitree.WithOption(parsers, clitree.MustCompile(`^-h$`), false) {
			got = append(got, p)
		}
		assert.Equal(t, []string{
			"task",
			"task debug",
			"task list",
			"task remote",
			"task remote add",
			"task remote remove",
		}, progs(t, got))

		got = got[:0]
		for p := range clitree.WithOption(parsers, clitree.MustCompile(`^-h$`), true) {
			got = append(got, p)
		}
		assert.Empty(t, got)
	})
	t.Run("help without short form", func(t *testing.T) {
		var got []string
		for p := range parsers {
			for _, a := range p.Actions() {
				if a.Dest() == "help" && !slices.Contains(a.OptionStrings(), "-h") {
					got = append(got, p.Prog())
				}
			}
		}
		assert.Equal(t, []string{"task remote remove"}, got)
	})
	t.Run("matching", func(t *testing.T) {
		var got []clitree.Parser
		for p := range clitree.Matching(parsers, clitree.MustCompile(`^remote`), false) {
			got = append(got, p)
		}
		assert.Equal(t, []string{"task remote", "task remote add", "task remote remove"}, progs(t, got))
	})
	t.Run("persistent flags are declared once", func(t *testing.T) {
		var got []clitree.Parser
		for p := range clitree.WithOption(parsers, clitree.MustCompile(`^--verbose$`), false) {
			got = append(got, p)
		}
		assert.Equal(t, []string{"task"}, progs(t, got))
	})
}

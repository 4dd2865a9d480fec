package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/mfridman/clitree"
	"github.com/mfridman/clitree/internal/cli"
	"github.com/mfridman/clitree/internal/config"
	"github.com/mfridman/clitree/treefile"
)

func newRootCommand(cfg config.Config, helpOutput io.Writer) *cli.Command {
	// queryFlags are shared by the commands that walk a tree.
	queryFlags := func(negate bool) *flag.FlagSet {
		return cli.FlagsFunc(func(f *flag.FlagSet) {
			f.SetOutput(helpOutput)
			f.Int("max-depth", cfg.MaxDepth, "stop descending at this depth; the root is at depth 0 (0 means no limit)")
			f.String("format", cfg.Format, "output format: text or json")
			if negate {
				f.Bool("negate", false, "select the parsers that do not match")
			}
		})
	}
	noFlags := func() *flag.FlagSet {
		return cli.FlagsFunc(func(f *flag.FlagSet) { f.SetOutput(helpOutput) })
	}

	root := &cli.Command{
		Name:      "clitree",
		ShortHelp: "Inspect command-line parser trees described in YAML, TOML or JSON files.",
		Flags: cli.FlagsFunc(func(f *flag.FlagSet) {
			f.SetOutput(helpOutput)
			f.Bool("v", false, "log debug output to stderr")
		}),
	}
	root.SubCommands = []*cli.Command{
		{
			Name:      "list",
			Usage:     "clitree list [flags] <file>",
			ShortHelp: "List every parser in the tree, depth first.",
			Flags:     queryFlags(false),
			Exec: func(ctx context.Context, s *cli.State) error {
				if len(s.Args) != 1 {
					return fmt.Errorf("list: expected <file>, got %d argument(s)", len(s.Args))
				}
				return query(ctx, s, s.Args[0], func(seq iter.Seq[clitree.Parser]) iter.Seq[clitree.Parser] {
					return seq
				})
			},
		},
		{
			Name:      "match",
			Usage:     "clitree match [flags] <pattern> <file>",
			ShortHelp: "List the parsers whose command path, without the program name, starts with a match of pattern.",
			Flags:     queryFlags(true),
			Exec: func(ctx context.Context, s *cli.State) error {
				pattern, file, err := patternArgs("match", s.Args)
				if err != nil {
					return err
				}
				negate := cli.GetFlag[bool](s, "negate")
				return query(ctx, s, file, func(seq iter.Seq[clitree.Parser]) iter.Seq[clitree.Parser] {
					return clitree.Matching(seq, pattern, negate)
				})
			},
		},
		{
			Name:      "with-option",
			Usage:     "clitree with-option [flags] <pattern> <file>",
			ShortHelp: "List the parsers declaring an option whose destination or flag spelling starts with a match of pattern.",
			Flags:     queryFlags(true),
			Exec: func(ctx context.Context, s *cli.State) error {
				pattern, file, err := patternArgs("with-option", s.Args)
				if err != nil {
					return err
				}
				negate := cli.GetFlag[bool](s, "negate")
				return query(ctx, s, file, func(seq iter.Seq[clitree.Parser]) iter.Seq[clitree.Parser] {
					return clitree.WithOption(seq, pattern, negate)
				})
			},
		},
		{
			Name:      "validate",
			Usage:     "clitree validate <file>",
			ShortHelp: "Check a tree file against the tree file schema.",
			Flags:     noFlags(),
			Exec: func(ctx context.Context, s *cli.State) error {
				if len(s.Args) != 1 {
					return fmt.Errorf("validate: expected <file>, got %d argument(s)", len(s.Args))
				}
				return validate(s, s.Args[0])
			},
		},
		{
			Name:      "commands",
			ShortHelp: "List the clitree commands.",
			Flags:     noFlags(),
			Exec: func(ctx context.Context, s *cli.State) error {
				_, err := writeParsers(s.Stdout, config.FormatText, clitree.Parsers(cli.Tree(root), 0))
				return err
			},
		},
		{
			Name:      "version",
			ShortHelp: "Print the clitree version.",
			Flags:     noFlags(),
			Exec: func(ctx context.Context, s *cli.State) error {
				_, err := fmt.Fprintln(s.Stdout, "clitree", version())
				return err
			},
		},
	}
	return root
}

func patternArgs(name string, args []string) (*clitree.Pattern, string, error) {
	if len(args) != 2 {
		return nil, "", fmt.Errorf("%s: expected <pattern> <file>, got %d argument(s)", name, len(args))
	}
	pattern, err := clitree.Compile(args[0])
	if err != nil {
		return nil, "", err
	}
	return pattern, args[1], nil
}

// query loads the tree in file, applies filter to its parsers and writes the result.
func query(
	ctx context.Context,
	s *cli.State,
	file string,
	filter func(iter.Seq[clitree.Parser]) iter.Seq[clitree.Parser],
) error {
	logger := newLogger(s)
	maxDepth := cli.GetFlag[int](s, "max-depth")
	format := cli.GetFlag[string](s, "format")
	if err := (config.Config{MaxDepth: maxDepth, Format: format}).Validate(); err != nil {
		return err
	}

	start := time.Now()
	root, err := treefile.Load(file)
	if err != nil {
		return err
	}
	logger.Debug("loaded tree", slog.String("file", file), slog.Duration("elapsed", time.Since(start)))

	parsers := filter(clitree.Parsers(root, maxDepth))
	n, err := writeParsers(s.Stdout, format, untilDone(ctx, parsers))
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	logger.Debug("query complete", slog.Int("max_depth", maxDepth), slog.Int("parsers", n))
	return nil
}

// untilDone stops seq once ctx is canceled.
func untilDone(ctx context.Context, seq iter.Seq[clitree.Parser]) iter.Seq[clitree.Parser] {
	return func(yield func(clitree.Parser) bool) {
		for p := range seq {
			if ctx.Err() != nil || !yield(p) {
				return
			}
		}
	}
}

func validate(s *cli.State, file string) error {
	result, err := treefile.ValidateFile(file)
	if err != nil {
		return err
	}
	if result.Valid {
		fmt.Fprintf(s.Stdout, "%s: ok\n", file)
		return nil
	}
	for _, issue := range result.Issues {
		fmt.Fprintf(s.Stdout, "%s: %s\n", file, issue)
	}
	return fmt.Errorf("%s: %d schema violation(s)", file, len(result.Issues))
}

func newLogger(s *cli.State) *slog.Logger {
	level := slog.LevelInfo
	if cli.GetFlag[bool](s, "v") {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(s.Stderr, &slog.HandlerOptions{Level: level}))
}

func version() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "(devel)"
}

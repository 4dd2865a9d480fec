// Command clitree lists and filters the parsers of a command-line parser tree described in a
// YAML, TOML or JSON file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/mfridman/clitree/internal/cli"
	"github.com/mfridman/clitree/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.Load(os.Getenv("CLITREE_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if err := run(ctx, cfg, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, args []string, stdout, stderr io.Writer) error {
	root := newRootCommand(cfg, stderr)
	return cli.ParseAndRun(ctx, root, args, &cli.RunOptions{
		Stdout: stdout,
		Stderr: stderr,
	})
}

// Package cli is a lightweight framework for the clitree command: nested subcommands, per-command
// flag sets, and generated usage text.
//
// A command hierarchy is also a parser tree; see [Tree].
package cli

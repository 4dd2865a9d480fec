// Package treefile loads command-line parser trees from description files and exposes them as
// [clitree.Parser] values.
//
// A tree file describes the root program, its options and, recursively, its subcommands. It can be
// written in YAML, TOML or JSON:
//
//	prog: git
//	options:
//	  - dest: verbose
//	    flags: [-v, --verbose]
//	commands:
//	  - name: remote
//	    aliases: [rem]
//	    commands:
//	      - name: add
//	        options:
//	          - dest: name      # positional argument, no flags
//	          - dest: url
//
// Every parser gets a help option (-h, --help) declared first, unless add_help is false. Parsers
// with subcommands get a dispatch action with destination "command" declared last. Aliases are
// exposed as [clitree.Alias] choices.
//
// Files are validated against an embedded JSON schema before the tree is built.
package treefile

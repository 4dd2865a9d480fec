package cli

import (
	"cmp"
	"flag"
	"fmt"
	"slices"
	"strings"

	"github.com/mfridman/clitree/internal/textutil"
)

const usageWidth = 80

func (c *Command) showHelp() error {
	w := c.Flags.Output()
	if c.UsageFunc != nil {
		fmt.Fprintln(w, c.UsageFunc(c))
	} else {
		fmt.Fprintln(w, DefaultUsage(c))
	}
	return flag.ErrHelp
}

// DefaultUsage renders the help text of c: description, usage pattern, subcommands, and the local
// and inherited flags.
func DefaultUsage(c *Command) string {
	if c == nil {
		return ""
	}
	var b strings.Builder

	if c.ShortHelp != "" {
		for _, line := range textutil.Wrap(c.ShortHelp, usageWidth) {
			b.WriteString(line + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("Usage:\n  ")
	if c.Usage != "" {
		b.WriteString(c.Usage)
	} else {
		b.WriteString(c.path())
		if c.Flags != nil {
			b.WriteString(" [flags]")
		}
		if len(c.SubCommands) > 0 {
			b.WriteString(" <command>")
		}
	}
	b.WriteString("\n\n")

	if len(c.SubCommands) > 0 {
		b.WriteString("Available Commands:\n")
		sorted := slices.Clone(c.SubCommands)
		slices.SortFunc(sorted, func(a, b *Command) int {
			return cmp.Compare(a.Name, b.Name)
		})
		entries := make([]entry, 0, len(sorted))
		for _, sub := range sorted {
			entries = append(entries, entry{name: sub.Name, text: sub.ShortHelp})
		}
		writeEntries(&b, entries, maxNameLen(entries))
		b.WriteString("\n")
	}

	var local, global []entry
	if c.state != nil {
		for i, cmd := range c.state.chain {
			isGlobal := i < len(c.state.chain)-1
			cmd.Flags.VisitAll(func(f *flag.Flag) {
				e := entry{name: "-" + f.Name, text: f.Usage}
				if f.DefValue != "" && f.DefValue != "false" {
					e.text += fmt.Sprintf(" (default %s)", f.DefValue)
				}
				if isGlobal {
					global = append(global, e)
				} else {
					local = append(local, e)
				}
			})
		}
	} else if c.Flags != nil {
		c.Flags.VisitAll(func(f *flag.Flag) {
			local = append(local, entry{name: "-" + f.Name, text: f.Usage})
		})
	}
	// Local and global flags share one alignment.
	flagWidth := max(maxNameLen(local), maxNameLen(global))
	for _, section := range []struct {
		title   string
		entries []entry
	}{
		{"Flags", local},
		{"Global Flags", global},
	} {
		if len(section.entries) == 0 {
			continue
		}
		slices.SortFunc(section.entries, func(a, b entry) int {
			return cmp.Compare(a.name, b.name)
		})
		b.WriteString(section.title + ":\n")
		writeEntries(&b, section.entries, flagWidth)
		b.WriteString("\n")
	}

	if len(c.SubCommands) > 0 {
		fmt.Fprintf(&b, "Use \"%s [command] --help\" for more information about a command.\n", c.path())
	}

	return strings.TrimRight(b.String(), "\n")
}

type entry struct {
	name string
	text string
}

func maxNameLen(entries []entry) int {
	n := 0
	for _, e := range entries {
		n = max(n, len(e.name))
	}
	return n
}

// writeEntries writes a two-column list with names padded to maxLen, wrapping the text column.
func writeEntries(b *strings.Builder, entries []entry, maxLen int) {
	nameWidth := maxLen + 4
	indent := strings.Repeat(" ", nameWidth+2)

	for _, e := range entries {
		lines := textutil.Wrap(e.text, usageWidth-nameWidth)
		if len(lines) == 0 {
			fmt.Fprintf(b, "  %s\n", e.name)
			continue
		}
		padding := strings.Repeat(" ", nameWidth-len(e.name))
		fmt.Fprintf(b, "  %s%s%s\n", e.name, padding, lines[0])
		for _, line := range lines[1:] {
			fmt.Fprintf(b, "%s%s\n", indent, line)
		}
	}
}

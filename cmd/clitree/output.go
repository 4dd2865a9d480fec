package main

import (
	"encoding/json"
	"fmt"
	"io"
	"iter"

	"github.com/mfridman/clitree"
	"github.com/mfridman/clitree/internal/config"
)

type parserJSON struct {
	Prog        string       `json:"prog"`
	Path        string       `json:"path"`
	Options     []optionJSON `json:"options"`
	Subcommands []string     `json:"subcommands,omitempty"`
}

type optionJSON struct {
	Dest  string   `json:"dest"`
	Flags []string `json:"flags,omitempty"`
}

// writeParsers writes parsers to w in the given format and returns how many were written.
func writeParsers(w io.Writer, format string, parsers iter.Seq[clitree.Parser]) (int, error) {
	switch format {
	case config.FormatText:
		var n int
		for p := range parsers {
			if _, err := fmt.Fprintln(w, p.Prog()); err != nil {
				return n, err
			}
			n++
		}
		return n, nil
	case config.FormatJSON:
		out := []parserJSON{}
		for p := range parsers {
			out = append(out, toJSON(p))
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return len(out), enc.Encode(out)
	default:
		return 0, fmt.Errorf("unknown output format %q", format)
	}
}

func toJSON(p clitree.Parser) parserJSON {
	out := parserJSON{
		Prog:    p.Prog(),
		Path:    clitree.CommandPath(p),
		Options: []optionJSON{},
	}
	for _, a := range p.Actions() {
		if d, ok := a.(clitree.DispatchAction); ok {
			for _, c := range d.Choices() {
				if _, ok := c.Value.(clitree.Parser); ok {
					out.Subcommands = append(out.Subcommands, c.Name)
				}
			}
			continue
		}
		out.Options = append(out.Options, optionJSON{Dest: a.Dest(), Flags: a.OptionStrings()})
	}
	return out
}

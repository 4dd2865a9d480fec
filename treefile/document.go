package treefile

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format is the encoding of a tree file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatFromPath returns the format matching the file extension of path.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported tree file extension %q: want .yaml, .yml, .toml or .json", ext)
	}
}

// Document is the decoded content of a tree file.
type Document struct {
	Prog        string    `json:"prog"`
	Description string    `json:"description,omitempty"`
	AddHelp     *bool     `json:"add_help,omitempty"`
	Options     []Option  `json:"options,omitempty"`
	Commands    []Command `json:"commands,omitempty"`
}

// Command is a subcommand entry.
type Command struct {
	Name        string    `json:"name"`
	Aliases     []string  `json:"aliases,omitempty"`
	Description string    `json:"description,omitempty"`
	AddHelp     *bool     `json:"add_help,omitempty"`
	Options     []Option  `json:"options,omitempty"`
	Commands    []Command `json:"commands,omitempty"`
}

// Option is a declared option or, when Flags is empty, a positional argument.
type Option struct {
	Dest  string   `json:"dest"`
	Flags []string `json:"flags,omitempty"`
	Help  string   `json:"help,omitempty"`
}

func addHelp(b *bool) bool {
	return b == nil || *b
}

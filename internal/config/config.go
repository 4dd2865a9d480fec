package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	appName   = "clitree"
	envPrefix = "CLITREE"
	fileName  = "config"
	fileType  = "yaml"

	// KeyMaxDepth is the config key and env suffix (CLITREE_MAX_DEPTH) for the traversal limit.
	KeyMaxDepth = "max_depth"
	// KeyFormat is the config key and env suffix (CLITREE_FORMAT) for the output format.
	KeyFormat = "format"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds the command defaults. Command-line flags override them.
type Config struct {
	// MaxDepth limits tree traversal; 0 means unlimited.
	MaxDepth int
	// Format is the output format, "text" or "json".
	Format string
}

// Dir returns the clitree config directory, e.g. ~/.config/clitree.
func Dir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "."+appName)
	}
	return filepath.Join(dir, appName)
}

// FilePath returns the default config file path.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// Load reads the config file at path, if it exists, and applies CLITREE_MAX_DEPTH and
// CLITREE_FORMAT environment overrides. An empty path means [FilePath].
func Load(path string) (Config, error) {
	if path == "" {
		path = FilePath()
	}
	v := viper.New()
	v.SetDefault(KeyMaxDepth, 0)
	v.SetDefault(KeyFormat, FormatText)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetConfigFile(path)
	v.SetConfigType(fileType)
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}

	cfg := Config{
		MaxDepth: v.GetInt(KeyMaxDepth),
		Format:   v.GetString(KeyFormat),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports invalid settings.
func (c Config) Validate() error {
	if c.MaxDepth < 0 {
		return fmt.Errorf("invalid %s %d: must not be negative", KeyMaxDepth, c.MaxDepth)
	}
	switch c.Format {
	case FormatText, FormatJSON:
		return nil
	default:
		return fmt.Errorf("invalid %s %q: want %q or %q", KeyFormat, c.Format, FormatText, FormatJSON)
	}
}

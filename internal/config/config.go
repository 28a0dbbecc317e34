// Package config loads optional per-project settings from .quell.toml.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/quell-dev/quell/internal/model"
)

// DefaultFile is the config file looked up in the working directory.
const DefaultFile = ".quell.toml"

// Config is the parsed configuration with defaults applied.
type Config struct {
	DefaultStyle string `toml:"default_style"` // NONE, NOLINT_SPECIFIC, NOLINTNEXTLINE, NOLINT_BLOCK
	ContextLines int    `toml:"context_lines"` // preview lines around the warning
	SessionFile  string `toml:"session_file"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		DefaultStyle: model.StyleNone.String(),
		ContextLines: 5,
		SessionFile:  "quell-session.txt",
	}
}

// Style returns the configured default style.
func (c Config) Style() model.Style {
	return model.ParseStyle(c.DefaultStyle)
}

// Load reads path, falling back to defaults when the file does not
// exist. A file that exists but fails to parse is an error — a typo
// in the config should be reported, not silently ignored.
func Load(path string) (Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	if cfg.ContextLines < 1 {
		cfg.ContextLines = Default().ContextLines
	}
	return cfg, nil
}

// Package config loads formatter settings from biome.toml and turns them
// into printer options. Flags may override individual fields after loading.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/MakakWasTaken/biome/internal/printer"
)

// FileName is the per-project configuration file.
const FileName = "biome.toml"

var (
	// ErrBadWidth indicates a non-positive max_width.
	ErrBadWidth = errors.New("max_width must be positive")
	// ErrBadIndentWidth indicates a non-positive indent_width.
	ErrBadIndentWidth = errors.New("indent_width must be positive")
)

// Config mirrors biome.toml.
type Config struct {
	Format Format `toml:"format"`
}

// Format is the [format] section.
type Format struct {
	MaxWidth    int    `toml:"max_width"`
	IndentWidth int    `toml:"indent_width"`
	UseTabs     bool   `toml:"use_tabs"`
	LineEnding  string `toml:"line_ending"`
}

// Default returns the configuration used when no file is found.
func Default() Config {
	return Config{Format: Format{
		MaxWidth:    80,
		IndentWidth: 2,
		LineEnding:  "lf",
	}}
}

// Load reads and validates a configuration file.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Discover walks from dir upward looking for biome.toml. It returns the
// path and true when found.
func Discover(dir string) (string, bool) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// Validate checks the invariants the printer relies on.
func (c Config) Validate() error {
	if c.Format.MaxWidth <= 0 {
		return ErrBadWidth
	}
	if c.Format.IndentWidth <= 0 {
		return ErrBadIndentWidth
	}
	if _, err := printer.ParseLineEnding(c.Format.LineEnding); err != nil {
		return err
	}
	return nil
}

// PrinterOptions converts the configuration into printer options.
// Validate must have passed.
func (c Config) PrinterOptions() printer.Options {
	ending, err := printer.ParseLineEnding(c.Format.LineEnding)
	if err != nil {
		ending = printer.LineEndingLF
	}
	return printer.Options{
		MaxWidth:    c.Format.MaxWidth,
		IndentWidth: c.Format.IndentWidth,
		UseTabs:     c.Format.UseTabs,
		LineEnding:  ending,
	}
}

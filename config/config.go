// Package config handles runtime.toml runtime option files.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents a runtime.toml options file.
type Config struct {
	Diagnostics Diagnostics `toml:"diagnostics"`

	// Path is the file the configuration was loaded from (set at load
	// time).
	Path string `toml:"-"`
}

// Diagnostics tunes the runtime's diagnostic output.
type Diagnostics struct {
	// BacktraceDepth caps the frames captured when an exception is
	// raised.
	BacktraceDepth int `toml:"backtrace-depth"`

	// ThreadNameMax caps the length of thread names.
	ThreadNameMax int `toml:"thread-name-max"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Diagnostics: Diagnostics{
			BacktraceDepth: 64,
			ThreadNameMax:  32,
		},
	}
}

// Load parses a runtime.toml file from the given directory.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, "runtime.toml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	cfg.Path, err = filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", path, err)
	}

	// Defaults for fields the file leaves unset or zero
	def := Default()
	if cfg.Diagnostics.BacktraceDepth <= 0 {
		cfg.Diagnostics.BacktraceDepth = def.Diagnostics.BacktraceDepth
	}
	if cfg.Diagnostics.ThreadNameMax <= 0 {
		cfg.Diagnostics.ThreadNameMax = def.Diagnostics.ThreadNameMax
	}

	return cfg, nil
}

// FindAndLoad walks up from startDir to find a runtime.toml file, then
// loads and returns it. Returns nil if no file is found.
func FindAndLoad(startDir string) (*Config, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, "runtime.toml")
		if _, err := os.Stat(path); err == nil {
			return Load(dir)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, nil
		}
		dir = parent
	}
}

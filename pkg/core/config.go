// pkg/core/config.go
package core

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config describes one installed Kush toolchain. A Toolchain instance is
// built from it once and never mutated afterwards.
type Config struct {
	// InstallDir is the directory holding the toolchain binaries
	InstallDir string `yaml:"install_dir"`

	// DriverDir is the directory the driver itself runs from. It is added
	// to the program search path when distinct from InstallDir.
	DriverDir string `yaml:"driver_dir"`

	// ResourceDir is the compiler resource directory with the bundled
	// headers and runtime archives
	ResourceDir string `yaml:"resource_dir"`

	// Sysroot is the target root directory tree, empty for none
	Sysroot string `yaml:"sysroot"`

	// Triple is the target triple, e.g. "x86_64-pc-kush"
	Triple string `yaml:"triple"`

	// DefaultPIE makes position-independent executables the default
	DefaultPIE bool `yaml:"default_pie"`

	// Debug enables debug logging
	Debug bool `yaml:"debug"`

	// Logger for custom logging
	Logger *log.Logger `yaml:"-"`
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		InstallDir: getDefaultInstallDir(),
		DefaultPIE: true,
	}
}

// LoadConfig loads configuration from file
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = filepath.Join(home, ".config", "kushtc", "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to file
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		path = filepath.Join(home, ".config", "kushtc", "config.yaml")
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// NewLogger returns the configured logger, falling back to a discard logger
// unless Debug is set.
func (c *Config) NewLogger() *log.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	if c.Debug {
		return log.New(os.Stderr, "[kushtc] ", log.LstdFlags)
	}
	return log.New(io.Discard, "", 0)
}

func getDefaultInstallDir() string {
	if path := os.Getenv("KUSHTC_INSTALL_DIR"); path != "" {
		return path
	}

	return filepath.Join("/opt", "kush", "toolchain", "bin")
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultWorkDir is where archives, binaries, and logs live unless overridden.
const DefaultWorkDir = "./wdctmp"

// DriverConfig overrides the built-in settings for a single driver.
type DriverConfig struct {
	// URL replaces the resolved download URL entirely.
	URL string `yaml:"url"`
	// Binary replaces the path the driver binary is expected at after
	// extraction. Relative paths are resolved against the work dir.
	Binary string `yaml:"binary"`
	// Port replaces the default listening port used for readiness checks.
	Port int `yaml:"port"`
	// Args are appended to the driver's fixed logging arguments.
	Args []string `yaml:"args"`
}

// Config holds tool configuration loaded from an optional YAML file.
// Every component receives it explicitly; there is no global state.
type Config struct {
	WorkDir string                  `yaml:"work_dir"`
	Drivers map[string]DriverConfig `yaml:"drivers"`
}

// Default returns a Config with built-in defaults and no driver overrides.
func Default() *Config {
	return &Config{WorkDir: DefaultWorkDir}
}

// Load reads a YAML config file from path. A missing file is not an error:
// it returns Default(). An empty file also yields defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.WorkDir == "" {
		cfg.WorkDir = DefaultWorkDir
	}
	return cfg, nil
}

// Driver returns the override block for the named driver, or a zero value
// when the config has none.
func (c *Config) Driver(name string) DriverConfig {
	if c.Drivers == nil {
		return DriverConfig{}
	}
	return c.Drivers[name]
}

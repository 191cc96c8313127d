package main

import (
	"github.com/imichael2e2/wdc/internal/config"
)

// defaultConfigPath is probed when --config is not given. A missing file
// just yields defaults.
const defaultConfigPath = "wdctl.yaml"

// loadConfig merges the config file with command-line flags. Flags win.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		path = defaultConfigPath
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if workDir != "" {
		cfg.WorkDir = workDir
	}
	return cfg, nil
}

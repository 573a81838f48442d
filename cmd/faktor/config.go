// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	toml "github.com/pelletier/go-toml/v2"
)

// config is the faktor.toml schema. All fields are optional.
type config struct {
	// Backend names the registered compute backend to initialize.
	Backend string `toml:"backend"`
	// Epsilon is the relative tolerance for rank decisions; 0 keeps the
	// library's eps-scaled default.
	Epsilon float64 `toml:"epsilon"`
}

const defaultConfigPath = "faktor.toml"

// loadConfig reads the TOML config. A missing default file is not an
// error; a missing explicit --config path is.
func loadConfig() (config, error) {
	var cfg config
	path := cfgFile
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}

		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	log.Debug("loaded config", "path", path, "backend", cfg.Backend)

	return cfg, nil
}

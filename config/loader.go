/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	rfs "bennypowers.dev/reslink/fs"
)

// ConfigFileName is the base name of the config file without extension.
const ConfigFileName = "reslink"

// ConfigDir is the directory where config files are stored.
const ConfigDir = ".config"

// configExtensions are the supported config file extensions in priority order.
var configExtensions = []string{".yaml", ".yml", ".json"}

// Load searches for .config/reslink.{yaml,yml,json} in rootDir.
// Returns nil if no config found (not an error).
func Load(filesystem rfs.FileSystem, rootDir string) (*Config, error) {
	for _, ext := range configExtensions {
		configPath := filepath.Join(rootDir, ConfigDir, ConfigFileName+ext)
		if !filesystem.Exists(configPath) {
			continue
		}

		data, err := filesystem.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", configPath, err)
		}

		cfg := Default()
		switch ext {
		case ".yaml", ".yml":
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing %s: %w", configPath, err)
			}
		case ".json":
			if err := json.Unmarshal(jsonc.ToJSON(data), cfg); err != nil {
				return nil, fmt.Errorf("parsing %s: %w", configPath, err)
			}
		}

		if _, err := cfg.Layout(); err != nil {
			return nil, fmt.Errorf("%s: %w", configPath, err)
		}
		return cfg, nil
	}

	return nil, nil
}

// Find loads the config of startDir or its nearest ancestor that has one.
// It returns the directory the config was found in.
func Find(filesystem rfs.FileSystem, startDir string) (*Config, string, error) {
	dir := filepath.Clean(startDir)
	for {
		cfg, err := Load(filesystem, dir)
		if err != nil || cfg != nil {
			return cfg, dir, err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, "", nil
		}
		dir = parent
	}
}

// LoadOrDefault returns config or defaults if not found.
func LoadOrDefault(filesystem rfs.FileSystem, rootDir string) *Config {
	cfg, err := Load(filesystem, rootDir)
	if err != nil || cfg == nil {
		return Default()
	}
	return cfg
}

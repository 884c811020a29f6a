/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for resource link resolution.
package config

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/reslink/cache"
	"bennypowers.dev/reslink/project"
)

// Config represents the reslink configuration.
type Config struct {
	// PartialMatching matches filenames containing the literal's final
	// segment instead of equal to it.
	PartialMatching bool `yaml:"partialMatching" json:"partialMatching"`

	// CacheExpiry is how long a resolved link is reused.
	CacheExpiry Duration `yaml:"cacheExpiry" json:"cacheExpiry"`

	// SingleSlotCache keeps one cached result across all documents.
	SingleSlotCache bool `yaml:"singleSlotCache" json:"singleSlotCache"`

	// Strategies names the enabled strategies. Empty enables all.
	Strategies []string `yaml:"strategies" json:"strategies"`

	// Roots replaces the default Maven and Gradle source roots.
	Roots []RootSpec `yaml:"roots" json:"roots"`

	// Classpath lists dependency directories for class name lookups.
	Classpath []string `yaml:"classpath" json:"classpath"`

	// Markers replaces the files that mark a project directory.
	Markers []string `yaml:"markers" json:"markers"`

	// Watch invalidates class indexes when files change.
	Watch bool `yaml:"watch" json:"watch"`
}

// RootSpec represents a source root pattern.
// It can be specified as a simple string path or as an object with a category.
type RootSpec struct {
	// Path is the root directory relative to the project (supports globs).
	Path string `yaml:"path" json:"path"`

	// Category is the root category. Inferred from Path when empty.
	Category string `yaml:"category" json:"category"`
}

// UnmarshalYAML handles both string and object forms for RootSpec.
func (r *RootSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		r.Path = node.Value
		return nil
	}

	type rawRootSpec RootSpec
	return node.Decode((*rawRootSpec)(r))
}

// UnmarshalJSON handles both string and object forms for RootSpec.
func (r *RootSpec) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		r.Path = s
		return nil
	}

	type rawRootSpec RootSpec
	return json.Unmarshal(data, (*rawRootSpec)(r))
}

// Pattern converts the spec to a project root pattern.
func (r RootSpec) Pattern() (project.Pattern, error) {
	if r.Category == "" {
		return project.Pattern{Glob: r.Path, Category: project.InferCategory(r.Path)}, nil
	}
	category, err := project.ParseCategory(r.Category)
	if err != nil {
		return project.Pattern{}, fmt.Errorf("root %q: %w", r.Path, err)
	}
	return project.Pattern{Glob: r.Path, Category: category}, nil
}

// Duration is a time.Duration written as a Go duration string ("2s") or as
// integer milliseconds.
type Duration struct {
	time.Duration
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := parseDuration(node.Value)
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(data []byte) error {
	parsed, err := parseDuration(strings.Trim(string(data), `"`))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return d.String(), nil
}

func parseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Duration(ms) * time.Millisecond, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", s, err)
	}
	return d, nil
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		CacheExpiry: Duration{cache.DefaultExpiry},
	}
}

// Expiry returns the cache expiry, falling back to the default.
func (c *Config) Expiry() time.Duration {
	if c.CacheExpiry.Duration <= 0 {
		return cache.DefaultExpiry
	}
	return c.CacheExpiry.Duration
}

// Layout returns the root patterns, or the defaults when none are configured.
func (c *Config) Layout() ([]project.Pattern, error) {
	if len(c.Roots) == 0 {
		return project.DefaultLayout(), nil
	}
	patterns := make([]project.Pattern, 0, len(c.Roots))
	for _, spec := range c.Roots {
		p, err := spec.Pattern()
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, p)
	}
	return patterns, nil
}

// MergeJSON overlays the keys present in a JSON object onto c.
func (c *Config) MergeJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	if err := json.Unmarshal(data, c); err != nil {
		return fmt.Errorf("merging config: %w", err)
	}
	return nil
}

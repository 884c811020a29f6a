/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package app assembles resolution engines for the reslink commands.
package app

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"

	"bennypowers.dev/reslink/classindex"
	"bennypowers.dev/reslink/config"
	rfs "bennypowers.dev/reslink/fs"
	"bennypowers.dev/reslink/hyperlink"
	"bennypowers.dev/reslink/parser"
	"bennypowers.dev/reslink/project"
	"bennypowers.dev/reslink/resolver"
)

// Flag keys bound by the root command.
const (
	KeyPartial    = "partial"
	KeyExpiry     = "expiry"
	KeySingleSlot = "single-slot"
	KeyStrategies = "strategies"
	KeyVerbose    = "verbose"
)

// Hosts are the user-facing collaborators of an engine.
type Hosts struct {
	Chooser hyperlink.Chooser
	Opener  hyperlink.Opener
	Status  hyperlink.Status
}

// Engine is an assembled hyperlink engine with the parts behind it.
type Engine struct {
	*hyperlink.Engine

	Config   *config.Config
	Projects *project.Detector
	Classes  *classindex.Registry
	Resolver *resolver.Resolver
}

// LoadConfig finds the config governing dir and applies the overrides in v.
// A missing config file yields the defaults.
func LoadConfig(filesystem rfs.FileSystem, dir string, v *viper.Viper) (*config.Config, error) {
	cfg, _, err := config.Find(filesystem, dir)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = config.Default()
	}
	Apply(v, cfg)
	return cfg, nil
}

// Apply overlays the flags and RESLINK_ environment variables set in v.
func Apply(v *viper.Viper, cfg *config.Config) {
	if v == nil {
		return
	}
	if v.IsSet(KeyPartial) {
		cfg.PartialMatching = v.GetBool(KeyPartial)
	}
	if v.IsSet(KeyExpiry) {
		if d := v.GetDuration(KeyExpiry); d > 0 {
			cfg.CacheExpiry = config.Duration{Duration: d}
		}
	}
	if v.IsSet(KeySingleSlot) {
		cfg.SingleSlotCache = v.GetBool(KeySingleSlot)
	}
	if v.IsSet(KeyStrategies) {
		if names := v.GetStringSlice(KeyStrategies); len(names) > 0 {
			cfg.Strategies = names
		}
	}
}

// Build wires a project detector, class index registry, resolver and
// hyperlink engine for cfg.
func Build(filesystem rfs.FileSystem, cfg *config.Config, hosts Hosts) (*Engine, error) {
	layout, err := cfg.Layout()
	if err != nil {
		return nil, err
	}

	opts := []project.DetectorOption{project.WithLayout(layout)}
	if len(cfg.Markers) > 0 {
		opts = append(opts, project.WithMarkers(cfg.Markers...))
	}
	detector := project.NewDetector(filesystem, opts...)
	classes := classindex.NewRegistry(filesystem, detector, classindex.WithClasspath(cfg.Classpath...))

	res, err := resolver.New(filesystem, detector, resolver.Options{
		Partial:    cfg.PartialMatching,
		Strategies: cfg.Strategies,
		Classes:    classes,
	})
	if err != nil {
		return nil, err
	}

	engine := hyperlink.New(hyperlink.Options{
		Tokenizer:   parser.NewJavaTokenizer(),
		Resolver:    res,
		Chooser:     hosts.Chooser,
		Opener:      hosts.Opener,
		Status:      hosts.Status,
		CacheExpiry: cfg.Expiry(),
		SingleSlot:  cfg.SingleSlotCache,
	})

	return &Engine{
		Engine:   engine,
		Config:   cfg,
		Projects: detector,
		Classes:  classes,
		Resolver: res,
	}, nil
}

// ForFile loads the config governing file and builds an engine for it.
func ForFile(filesystem rfs.FileSystem, file string, v *viper.Viper, hosts Hosts) (*Engine, error) {
	cfg, err := LoadConfig(filesystem, filepath.Dir(file), v)
	if err != nil {
		return nil, err
	}
	return Build(filesystem, cfg, hosts)
}

// ReadDocument reads file as a document with an absolute path.
func ReadDocument(filesystem rfs.FileSystem, file string) (hyperlink.Document, error) {
	abs, err := filepath.Abs(file)
	if err != nil {
		return hyperlink.Document{}, fmt.Errorf("resolving %s: %w", file, err)
	}
	text, err := filesystem.ReadFile(abs)
	if err != nil {
		return hyperlink.Document{}, fmt.Errorf("reading %s: %w", file, err)
	}
	return hyperlink.Document{Path: abs, Text: text}, nil
}

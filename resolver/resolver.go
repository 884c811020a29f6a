/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolver turns a string literal into the set of files it may name,
// by running a set of independent lookup strategies and unioning their
// results.
package resolver

import (
	"fmt"
	"path/filepath"
	"sort"

	"bennypowers.dev/reslink/classindex"
	rfs "bennypowers.dev/reslink/fs"
	"bennypowers.dev/reslink/internal/logger"
	"bennypowers.dev/reslink/literal"
	"bennypowers.dev/reslink/project"
	"bennypowers.dev/reslink/specifier"
)

// Options configures a Resolver.
type Options struct {
	// Partial enables partial filename matching.
	Partial bool

	// Strategies names the enabled strategies. Empty enables all.
	Strategies []string

	// Classes provides class indexes for the classname strategy.
	Classes classindex.Provider
}

// Resolver runs the enabled strategies for a literal.
type Resolver struct {
	model      project.Model
	strategies []Strategy
}

// New creates a Resolver over filesystem and model.
func New(filesystem rfs.FileSystem, model project.Model, opts Options) (*Resolver, error) {
	mode := Exact
	if opts.Partial {
		mode = Partial
	}

	available := map[string]Strategy{
		CurrentDir:    &currentDir{fs: filesystem, mode: mode},
		SourceRoots:   &sourceRoots{fs: filesystem, mode: mode},
		PackageMirror: &packageMirror{fs: filesystem, mode: mode},
		ClassName:     &className{provider: opts.Classes},
		ProjectRoot:   &projectRoot{fs: filesystem},
		Absolute:      &absolute{fs: filesystem},
	}

	names := opts.Strategies
	if len(names) == 0 {
		names = StrategyNames
	}

	r := &Resolver{model: model}
	seen := make(map[string]bool)
	for _, name := range names {
		s, ok := available[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		r.strategies = append(r.strategies, s)
	}
	return r, nil
}

// NewWithStrategies creates a Resolver running exactly the given strategies.
func NewWithStrategies(model project.Model, strategies ...Strategy) *Resolver {
	return &Resolver{model: model, strategies: strategies}
}

// Strategies returns the names of the enabled strategies.
func (r *Resolver) Strategies() []string {
	names := make([]string, len(r.strategies))
	for i, s := range r.strategies {
		names[i] = s.Name()
	}
	return names
}

// Resolve returns the union of every strategy's candidates for lit found in
// the document at origin.
func (r *Resolver) Resolve(origin string, lit literal.Literal) Result {
	result := Result{
		Span:      lit.Span,
		Target:    lit.Text,
		HasTarget: true,
	}

	q := &Query{
		Origin: filepath.Clean(origin),
		Text:   lit.Text,
		Spec:   specifier.Parse(lit.Text),
	}
	if r.model != nil {
		p, err := r.model.Owner(q.Origin)
		if err != nil {
			logger.Debug("no project for %s: %v", q.Origin, err)
		} else {
			q.Project = p
		}
	}

	seen := make(map[string]bool)
	for _, s := range r.strategies {
		files, err := s.Resolve(q)
		if err != nil {
			logger.Debug("strategy %s for %q: %v", s.Name(), lit.Text, err)
			continue
		}
		for _, f := range files {
			path := filepath.Clean(f.Path)
			if seen[path] {
				continue
			}
			seen[path] = true
			result.Files = append(result.Files, File{Path: path})
		}
	}

	sort.Slice(result.Files, func(i, j int) bool {
		return result.Files[i].Path < result.Files[j].Path
	})
	result.Project = q.Project
	return result
}

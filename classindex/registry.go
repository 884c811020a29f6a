/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package classindex

import (
	"sync"

	rfs "bennypowers.dev/reslink/fs"
	"bennypowers.dev/reslink/internal/logger"
	"bennypowers.dev/reslink/project"
)

// Registry provides one SourceIndex per project.
type Registry struct {
	fs        rfs.FileSystem
	model     project.Model
	classpath []string

	mu      sync.Mutex
	indexes map[string]*SourceIndex
	added   func(*SourceIndex)
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithClasspath sets dependency directories, as globs relative to each
// project directory or absolute paths.
func WithClasspath(globs ...string) RegistryOption {
	return func(r *Registry) {
		r.classpath = append(r.classpath, globs...)
	}
}

// NewRegistry creates a Registry over model.
func NewRegistry(filesystem rfs.FileSystem, model project.Model, opts ...RegistryOption) *Registry {
	r := &Registry{
		fs:      filesystem,
		model:   model,
		indexes: make(map[string]*SourceIndex),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// IndexFor implements Provider.
func (r *Registry) IndexFor(path string) (Index, bool) {
	p, err := r.model.Owner(path)
	if err != nil {
		logger.Debug("no class index for %s: %v", path, err)
		return nil, false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if idx, ok := r.indexes[p.Dir]; ok {
		return idx, true
	}

	sources := make([]string, 0, len(p.Roots))
	for _, root := range p.Roots {
		if root.Category != project.Resource && root.Category != project.TestResource {
			sources = append(sources, root.Path)
		}
	}

	patterns := make([]project.Pattern, len(r.classpath))
	for i, glob := range r.classpath {
		patterns[i] = project.Pattern{Glob: glob}
	}
	var classpath []string
	for _, root := range project.ExpandRoots(r.fs, p.Dir, patterns) {
		classpath = append(classpath, root.Path)
	}

	idx := NewSourceIndex(r.fs, sources, classpath)
	r.indexes[p.Dir] = idx
	if r.added != nil {
		r.added(idx)
	}
	return idx, true
}

// Invalidate marks every index covering path as stale.
func (r *Registry) Invalidate(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, idx := range r.indexes {
		if idx.Covers(path) {
			idx.Invalidate()
		}
	}
}

// InvalidateAll marks every index as stale.
func (r *Registry) InvalidateAll() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, idx := range r.indexes {
		idx.Invalidate()
	}
}

// snapshot returns a snapshot of the current indexes and installs added as
// the hook for indexes created later.
func (r *Registry) snapshot(added func(*SourceIndex)) []*SourceIndex {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.added = added
	out := make([]*SourceIndex, 0, len(r.indexes))
	for _, idx := range r.indexes {
		out = append(out, idx)
	}
	return out
}

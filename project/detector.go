/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package project

import (
	"fmt"
	"path/filepath"
	"sync"

	rfs "bennypowers.dev/reslink/fs"
)

// Detector finds projects by walking up from a file to the nearest directory
// containing a marker file, then expands its layout into source roots.
type Detector struct {
	fs      rfs.FileSystem
	markers []string
	layout  func(dir string) []Pattern

	mu       sync.RWMutex
	projects map[string]*Project
}

// DetectorOption configures a Detector.
type DetectorOption func(*Detector)

// WithMarkers replaces the project marker files.
func WithMarkers(markers ...string) DetectorOption {
	return func(d *Detector) {
		if len(markers) > 0 {
			d.markers = markers
		}
	}
}

// WithLayout sets the root patterns used for every project.
func WithLayout(patterns []Pattern) DetectorOption {
	return func(d *Detector) {
		if len(patterns) > 0 {
			d.layout = func(string) []Pattern { return patterns }
		}
	}
}

// WithLayoutFunc sets a per-project root pattern lookup.
func WithLayoutFunc(layout func(dir string) []Pattern) DetectorOption {
	return func(d *Detector) {
		if layout != nil {
			d.layout = layout
		}
	}
}

// NewDetector creates a Detector over filesystem.
func NewDetector(filesystem rfs.FileSystem, opts ...DetectorOption) *Detector {
	d := &Detector{
		fs:       filesystem,
		markers:  DefaultMarkers,
		layout:   func(string) []Pattern { return DefaultLayout() },
		projects: make(map[string]*Project),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Owner implements Model.
func (d *Detector) Owner(path string) (*Project, error) {
	dir, ok := d.projectDir(path)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoProject, path)
	}

	d.mu.RLock()
	p, ok := d.projects[dir]
	d.mu.RUnlock()
	if ok {
		return p, nil
	}

	p = &Project{Dir: dir, Roots: ExpandRoots(d.fs, dir, d.layout(dir))}

	d.mu.Lock()
	d.projects[dir] = p
	d.mu.Unlock()
	return p, nil
}

// Forget drops cached projects so roots are expanded again on next use.
func (d *Detector) Forget() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.projects = make(map[string]*Project)
}

// projectDir returns the nearest ancestor of path holding a marker.
func (d *Detector) projectDir(path string) (string, bool) {
	dir := filepath.Clean(path)
	if !rfs.IsDir(d.fs, dir) {
		dir = filepath.Dir(dir)
	}
	for {
		for _, marker := range d.markers {
			if rfs.IsFile(d.fs, filepath.Join(dir, marker)) {
				return dir, true
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

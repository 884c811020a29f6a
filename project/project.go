/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package project models the projects that own source files: their
// directories and ordered source roots.
package project

import (
	"path/filepath"
	"strings"
)

// Root is a source root directory.
type Root struct {
	// Path is the absolute, cleaned directory path.
	Path string `json:"path"`

	// Category classifies the root.
	Category Category `json:"category"`
}

// Project is a project directory and its source roots.
type Project struct {
	// Dir is the absolute project directory.
	Dir string `json:"dir"`

	// Roots lists source roots in search order.
	Roots []Root `json:"roots"`
}

// Model finds the project that owns a file.
type Model interface {
	// Owner returns the project owning path, or ErrNoProject.
	Owner(path string) (*Project, error)
}

// RootOf returns the first root containing path and the slash-separated path
// of path relative to it.
func (p *Project) RootOf(path string) (Root, string, bool) {
	for _, root := range p.Roots {
		if rel, ok := within(root.Path, path); ok {
			return root, rel, true
		}
	}
	return Root{}, "", false
}

// Rel returns path relative to the project directory, slash-separated.
// Paths outside the project are returned unchanged.
func (p *Project) Rel(path string) string {
	if p == nil {
		return path
	}
	if rel, ok := within(p.Dir, path); ok && rel != "" {
		return rel
	}
	return path
}

// Contains reports whether path lies in the project directory.
func (p *Project) Contains(path string) bool {
	_, ok := within(p.Dir, path)
	return ok
}

// within returns target relative to dir when target is dir or below it.
func within(dir, target string) (string, bool) {
	rel, err := filepath.Rel(filepath.Clean(dir), filepath.Clean(target))
	if err != nil {
		return "", false
	}
	if rel == "." {
		return "", true
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return filepath.ToSlash(rel), true
}

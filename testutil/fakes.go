/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package testutil

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"bennypowers.dev/reslink/classindex"
	"bennypowers.dev/reslink/project"
)

// StaticModel is a project.Model over a fixed set of projects.
type StaticModel struct {
	mu       sync.Mutex
	projects []*project.Project
	calls    int
}

// NewStaticModel creates a model owning files under each project's Dir.
func NewStaticModel(projects ...*project.Project) *StaticModel {
	return &StaticModel{projects: projects}
}

// Owner implements project.Model. The deepest matching project wins.
func (m *StaticModel) Owner(path string) (*project.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++

	var owner *project.Project
	for _, p := range m.projects {
		if !p.Contains(path) {
			continue
		}
		if owner == nil || len(p.Dir) > len(owner.Dir) {
			owner = p
		}
	}
	if owner == nil {
		return nil, fmt.Errorf("%w: %s", project.ErrNoProject, path)
	}
	return owner, nil
}

// Calls returns how many times Owner was called.
func (m *StaticModel) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// MavenProject builds a project at dir with main, resource, test and
// test-resource roots in the Maven layout.
func MavenProject(dir string) *project.Project {
	return &project.Project{
		Dir: dir,
		Roots: []project.Root{
			{Path: filepath.Join(dir, "src/main/java"), Category: project.Main},
			{Path: filepath.Join(dir, "src/main/resources"), Category: project.Resource},
			{Path: filepath.Join(dir, "src/test/java"), Category: project.Test},
			{Path: filepath.Join(dir, "src/test/resources"), Category: project.TestResource},
		},
	}
}

// Classes is an in-memory class index and provider.
type Classes struct {
	mu      sync.Mutex
	decls   []classindex.Declaration
	lookups int
	scopes  []classindex.Scope
}

// NewClasses creates a class index holding decls.
func NewClasses(decls ...classindex.Declaration) *Classes {
	return &Classes{decls: decls}
}

// Declare builds a declaration for qualified with an optional source file.
func Declare(qualified, source string) classindex.Declaration {
	name := qualified
	if i := strings.LastIndex(qualified, "."); i >= 0 {
		name = qualified[i+1:]
	}
	scope := classindex.Source
	if source == "" {
		scope = classindex.Dependencies
	}
	return classindex.Declaration{Name: name, QualifiedName: qualified, Source: source, Scope: scope}
}

// IndexFor implements classindex.Provider.
func (c *Classes) IndexFor(string) (classindex.Index, bool) {
	return c, true
}

// Lookup implements classindex.Index.
func (c *Classes) Lookup(name string, scope classindex.Scope) []classindex.Declaration {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lookups++
	c.scopes = append(c.scopes, scope)

	var out []classindex.Declaration
	for _, d := range c.decls {
		if d.Name == name && scope.Has(d.Scope) {
			out = append(out, d)
		}
	}
	return out
}

// Lookups returns how many lookups were made.
func (c *Classes) Lookups() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lookups
}

// Scopes returns the scopes of every lookup, in order.
func (c *Classes) Scopes() []classindex.Scope {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]classindex.Scope(nil), c.scopes...)
}

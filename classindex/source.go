/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package classindex

import (
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/errgroup"

	rfs "bennypowers.dev/reslink/fs"
	"bennypowers.dev/reslink/internal/logger"
	"bennypowers.dev/reslink/parser"
)

// SourceIndex indexes the .java files of source directories and the .java
// and .class files of classpath directories. It builds lazily on first
// lookup and rebuilds after Invalidate, reparsing only files whose content
// changed.
type SourceIndex struct {
	fs        rfs.FileSystem
	sources   []string
	classpath []string

	mu     sync.Mutex
	built  bool
	byName map[string][]Declaration
	parsed map[string]parsedFile
	builds int
}

type parsedFile struct {
	hash  uint64
	decls []Declaration
}

type sourceFile struct {
	path  string
	scope Scope
	class bool
	root  string
}

// NewSourceIndex creates an index over source and classpath directories.
func NewSourceIndex(filesystem rfs.FileSystem, sources, classpath []string) *SourceIndex {
	return &SourceIndex{
		fs:        filesystem,
		sources:   sources,
		classpath: classpath,
		parsed:    make(map[string]parsedFile),
	}
}

// Lookup implements Index.
func (i *SourceIndex) Lookup(name string, scope Scope) []Declaration {
	i.mu.Lock()
	defer i.mu.Unlock()

	if !i.built {
		i.build()
	}

	var out []Declaration
	for _, decl := range i.byName[name] {
		if scope.Has(decl.Scope) {
			out = append(out, decl)
		}
	}
	return out
}

// Invalidate marks the index stale so the next lookup rebuilds it.
func (i *SourceIndex) Invalidate() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.built = false
}

// Dirs returns the indexed source and classpath directories.
func (i *SourceIndex) Dirs() []string {
	dirs := make([]string, 0, len(i.sources)+len(i.classpath))
	dirs = append(dirs, i.sources...)
	return append(dirs, i.classpath...)
}

// Covers reports whether path lies in one of the indexed directories.
func (i *SourceIndex) Covers(path string) bool {
	for _, dir := range i.Dirs() {
		rel, err := filepath.Rel(dir, path)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			continue
		}
		return true
	}
	return false
}

// Builds returns how many times the index was built.
func (i *SourceIndex) Builds() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.builds
}

func (i *SourceIndex) build() {
	files := i.collect()

	results := make([]parsedFile, len(files))
	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for n, f := range files {
		previous, seen := i.parsed[f.path]
		g.Go(func() error {
			results[n] = i.parseFile(f, previous, seen)
			return nil
		})
	}
	_ = g.Wait()

	parsed := make(map[string]parsedFile, len(files))
	byName := make(map[string][]Declaration)
	for n, f := range files {
		parsed[f.path] = results[n]
		for _, decl := range results[n].decls {
			byName[decl.Name] = append(byName[decl.Name], decl)
		}
	}
	for name := range byName {
		decls := byName[name]
		sort.Slice(decls, func(a, b int) bool {
			if decls[a].QualifiedName != decls[b].QualifiedName {
				return decls[a].QualifiedName < decls[b].QualifiedName
			}
			return decls[a].Source < decls[b].Source
		})
	}

	i.parsed = parsed
	i.byName = byName
	i.built = true
	i.builds++
	logger.Debug("indexed %d files in %d directories", len(files), len(i.sources)+len(i.classpath))
}

// collect walks the indexed directories for java sources and classes.
func (i *SourceIndex) collect() []sourceFile {
	var files []sourceFile
	walk := func(root string, scope Scope, classes bool) {
		_ = fs.WalkDir(i.fs, root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if d.IsDir() {
				return nil
			}
			switch filepath.Ext(path) {
			case ".java":
				files = append(files, sourceFile{path: path, scope: scope, root: root})
			case ".class":
				if classes {
					files = append(files, sourceFile{path: path, scope: scope, class: true, root: root})
				}
			}
			return nil
		})
	}
	for _, dir := range i.sources {
		walk(dir, Source, false)
	}
	for _, dir := range i.classpath {
		walk(dir, Dependencies, true)
	}
	return files
}

func (i *SourceIndex) parseFile(f sourceFile, previous parsedFile, seen bool) parsedFile {
	if f.class {
		return parsedFile{decls: classDeclarations(f)}
	}

	content, err := i.fs.ReadFile(f.path)
	if err != nil {
		logger.Debug("reading %s: %v", f.path, err)
		return parsedFile{}
	}
	hash := xxhash.Sum64(content)
	if seen && previous.hash == hash {
		return previous
	}

	unit, err := parser.Declarations(content)
	if err != nil {
		logger.Debug("parsing %s: %v", f.path, err)
		return parsedFile{hash: hash}
	}
	decls := make([]Declaration, 0, len(unit.Types))
	for _, t := range unit.Types {
		decls = append(decls, Declaration{
			Name:          t.Name,
			QualifiedName: t.QualifiedName,
			Source:        filepath.Clean(f.path),
			Scope:         f.scope,
		})
	}
	return parsedFile{hash: hash, decls: decls}
}

// classDeclarations derives the declared type of a compiled class from its
// path below the classpath directory. Anonymous and local classes are
// skipped.
func classDeclarations(f sourceFile) []Declaration {
	rel, err := filepath.Rel(f.root, f.path)
	if err != nil {
		return nil
	}
	rel = strings.TrimSuffix(filepath.ToSlash(rel), ".class")
	parts := strings.Split(strings.ReplaceAll(rel, "/", "."), "$")
	for _, part := range parts[1:] {
		if part == "" || (part[0] >= '0' && part[0] <= '9') {
			return nil
		}
	}
	qualified := strings.Join(parts, ".")
	name := qualified
	if idx := strings.LastIndex(qualified, "."); idx >= 0 {
		name = qualified[idx+1:]
	}
	return []Declaration{{Name: name, QualifiedName: qualified, Scope: f.scope}}
}

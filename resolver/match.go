/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"

	rfs "bennypowers.dev/reslink/fs"
	"bennypowers.dev/reslink/internal/logger"
)

// Mode selects how filenames are compared.
type Mode int

const (
	// Exact requires the case-folded filename to equal the name.
	Exact Mode = iota
	// Partial requires the case-folded filename to contain the name.
	Partial
)

// String returns the mode name.
func (m Mode) String() string {
	if m == Partial {
		return "partial"
	}
	return "exact"
}

// File is a candidate file. Files are compared by path only.
type File struct {
	Path string `json:"path"`
}

// Entry is a directory child considered by the matcher.
type Entry struct {
	Path  string
	IsDir bool
}

// MatchFiles returns the non-directory entries whose filename matches name.
func MatchFiles(name string, candidates []Entry, mode Mode) []File {
	if name == "" {
		return nil
	}
	fold := cases.Fold()
	want := fold.String(name)

	var files []File
	for _, entry := range candidates {
		if entry.IsDir {
			continue
		}
		got := fold.String(filepath.Base(entry.Path))
		if got == want || (mode == Partial && strings.Contains(got, want)) {
			files = append(files, File{Path: filepath.Clean(entry.Path)})
		}
	}
	return files
}

// entries lists the children of dir. A missing directory has no children.
func entries(filesystem rfs.FileSystem, dir string) ([]Entry, error) {
	children, err := filesystem.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	out := make([]Entry, 0, len(children))
	for _, child := range children {
		out = append(out, Entry{Path: filepath.Join(dir, child.Name()), IsDir: child.IsDir()})
	}
	return out, nil
}

// matchIn runs the matcher over the children of dir.
func matchIn(filesystem rfs.FileSystem, dir, name string, mode Mode) ([]File, error) {
	children, err := entries(filesystem, dir)
	if err != nil {
		return nil, err
	}
	return MatchFiles(name, children, mode), nil
}

// matchEach runs the matcher in every dir. A dir that cannot be read is
// logged and skipped so the others still contribute.
func matchEach(filesystem rfs.FileSystem, strategy, name string, mode Mode, dirs ...string) []File {
	var files []File
	for _, dir := range dirs {
		matched, err := matchIn(filesystem, dir, name, mode)
		if err != nil {
			logger.Debug("strategy %s: reading %s: %v", strategy, dir, err)
			continue
		}
		files = append(files, matched...)
	}
	return files
}

// fileAt returns the regular file at path, if any.
func fileAt(filesystem rfs.FileSystem, path string) []File {
	if rfs.IsFile(filesystem, path) {
		return []File{{Path: filepath.Clean(path)}}
	}
	return nil
}

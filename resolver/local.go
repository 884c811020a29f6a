/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import (
	"path/filepath"

	rfs "bennypowers.dev/reslink/fs"
)

// currentDir resolves the literal against the originating file's directory.
type currentDir struct {
	fs   rfs.FileSystem
	mode Mode
}

func (s *currentDir) Name() string { return CurrentDir }

func (s *currentDir) Resolve(q *Query) ([]File, error) {
	if !q.Spec.HasPath() {
		return nil, nil
	}
	dir := filepath.Dir(q.Origin)
	files := fileAt(s.fs, filepath.Join(dir, filepath.FromSlash(q.Spec.Path)))

	return append(files, matchEach(s.fs, s.Name(), q.Spec.Name(), s.mode, filepath.Join(dir, filepath.FromSlash(q.Spec.Dir())))...), nil
}

// projectRoot resolves the literal as a file path under the project directory.
type projectRoot struct {
	fs rfs.FileSystem
}

func (s *projectRoot) Name() string { return ProjectRoot }

func (s *projectRoot) Resolve(q *Query) ([]File, error) {
	if q.Project == nil {
		return nil, ErrNoProject
	}
	if !q.Spec.HasPath() {
		return nil, nil
	}
	return fileAt(s.fs, filepath.Join(q.Project.Dir, filepath.FromSlash(q.Spec.Path))), nil
}

// absolute resolves literals naming an existing absolute file.
type absolute struct {
	fs rfs.FileSystem
}

func (s *absolute) Name() string { return Absolute }

func (s *absolute) Resolve(q *Query) ([]File, error) {
	if !q.Spec.IsAbsolute() {
		return nil, nil
	}
	return fileAt(s.fs, q.Spec.Absolute), nil
}

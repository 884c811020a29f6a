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

// sourceRoots resolves the literal against every source root.
type sourceRoots struct {
	fs   rfs.FileSystem
	mode Mode
}

func (s *sourceRoots) Name() string { return SourceRoots }

func (s *sourceRoots) Resolve(q *Query) ([]File, error) {
	if q.Project == nil {
		return nil, ErrNoProject
	}
	if !q.Spec.HasPath() {
		return nil, nil
	}

	var dirs []string
	var files []File
	for _, root := range q.Project.Roots {
		dirs = append(dirs, filepath.Join(root.Path, filepath.FromSlash(q.Spec.Dir())))
		files = append(files, fileAt(s.fs, filepath.Join(root.Path, filepath.FromSlash(q.Spec.Path)))...)
	}
	return append(files, matchEach(s.fs, s.Name(), q.Spec.Name(), s.mode, dirs...)...), nil
}

// packageMirror resolves the literal in the same package of every other
// source root, so test resources are found from main sources and vice versa.
type packageMirror struct {
	fs   rfs.FileSystem
	mode Mode
}

func (s *packageMirror) Name() string { return PackageMirror }

func (s *packageMirror) Resolve(q *Query) ([]File, error) {
	if q.Project == nil {
		return nil, ErrNoProject
	}
	if q.Spec.Name() == "" {
		return nil, nil
	}
	origin, pkg, ok := q.Project.RootOf(filepath.Dir(q.Origin))
	if !ok {
		return nil, nil
	}

	var dirs []string
	for _, root := range q.Project.Roots {
		if root == origin {
			continue
		}
		dirs = append(dirs, filepath.Join(root.Path, filepath.FromSlash(pkg), filepath.FromSlash(q.Spec.Dir())))
	}
	return matchEach(s.fs, s.Name(), q.Spec.Name(), s.mode, dirs...), nil
}

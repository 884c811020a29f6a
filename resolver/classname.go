/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import (
	"strings"

	"bennypowers.dev/reslink/classindex"
	"bennypowers.dev/reslink/specifier"
)

// className resolves a fully-qualified class name to its source file. A
// binary name such as com.foo.Outer$Inner names a nested type: it matches
// com.foo.Outer.Inner only when com.foo.Outer is declared in the same file.
type className struct {
	provider classindex.Provider
}

func (s *className) Name() string { return ClassName }

func (s *className) Resolve(q *Query) ([]File, error) {
	if s.provider == nil {
		return nil, nil
	}
	qualified := strings.ReplaceAll(q.Text, "$", ".")
	if !specifier.IsQualifiedName(qualified) {
		return nil, nil
	}
	index, ok := s.provider.IndexFor(q.Origin)
	if !ok || index == nil {
		return nil, nil
	}

	const scope = classindex.Source | classindex.Dependencies
	var enclosing map[string]bool
	if outer, _, nested := strings.Cut(q.Text, "$"); nested {
		enclosing = make(map[string]bool)
		for _, decl := range index.Lookup(specifier.SimpleName(outer), scope) {
			if decl.QualifiedName == outer && decl.HasSource() {
				enclosing[decl.Source] = true
			}
		}
	}

	var files []File
	for _, decl := range index.Lookup(specifier.SimpleName(qualified), scope) {
		if decl.QualifiedName != qualified || !decl.HasSource() {
			continue
		}
		if enclosing != nil && !enclosing[decl.Source] {
			continue
		}
		files = append(files, File{Path: decl.Source})
	}
	return files, nil
}

/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import (
	"sort"

	"golang.org/x/text/cases"

	"bennypowers.dev/reslink/project"
	"bennypowers.dev/reslink/token"
)

// Result is the outcome of resolving the literal at a position.
type Result struct {
	// Span covers the literal text, or token.NoSpan when none was found.
	Span token.Span `json:"span"`

	// Target is the literal text.
	Target string `json:"target"`

	// HasTarget reports whether a literal was found.
	HasTarget bool `json:"hasTarget"`

	// Files are the candidates, sorted by path.
	Files []File `json:"files"`

	// Project owns the document, if known.
	Project *project.Project `json:"-"`
}

// NotFound returns the result for a position with no literal.
func NotFound() Result {
	return Result{Span: token.NoSpan}
}

// Valid reports whether the result has at least one candidate.
func (r Result) Valid() bool {
	return len(r.Files) > 0
}

// Presented returns the candidates in presentation order.
func (r Result) Presented() []File {
	return Present(r.Files, r.Project)
}

// Present orders files for a human choice: by project-relative path compared
// case-insensitively, ties broken by full path.
func Present(files []File, p *project.Project) []File {
	fold := cases.Fold()
	type keyed struct {
		file File
		key  string
	}
	items := make([]keyed, len(files))
	for i, f := range files {
		items[i] = keyed{file: f, key: fold.String(p.Rel(f.Path))}
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].key != items[j].key {
			return items[i].key < items[j].key
		}
		return items[i].file.Path < items[j].file.Path
	})

	out := make([]File, len(items))
	for i, item := range items {
		out[i] = item.file
	}
	return out
}

/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package classindex indexes Java type declarations by simple name, over a
// project's own sources and its configured dependencies.
package classindex

// Scope selects which parts of the index a lookup searches.
type Scope int

const (
	// Source searches the project's own source roots.
	Source Scope = 1 << iota
	// Dependencies searches configured classpath directories.
	Dependencies
)

// Has reports whether s includes other.
func (s Scope) Has(other Scope) bool {
	return s&other != 0
}

// Declaration is one indexed type.
type Declaration struct {
	// Name is the simple type name.
	Name string `json:"name"`

	// QualifiedName is the dotted, package-qualified name.
	QualifiedName string `json:"qualifiedName"`

	// Source is the absolute path of the declaring source file, empty for
	// compiled classes.
	Source string `json:"source,omitempty"`

	// Scope is where the declaration was found.
	Scope Scope `json:"scope"`
}

// HasSource reports whether the declaration has a source file.
func (d Declaration) HasSource() bool {
	return d.Source != ""
}

// Index looks up declarations by simple name.
type Index interface {
	Lookup(name string, scope Scope) []Declaration
}

// Provider returns the index that applies to a file.
type Provider interface {
	// IndexFor returns the index for path, or false when none applies.
	IndexFor(path string) (Index, bool)
}

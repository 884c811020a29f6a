/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import (
	"bennypowers.dev/reslink/project"
	"bennypowers.dev/reslink/specifier"
)

// Strategy names.
const (
	CurrentDir    = "current-dir"
	SourceRoots   = "source-roots"
	PackageMirror = "package-mirror"
	ClassName     = "classname"
	ProjectRoot   = "project-root"
	Absolute      = "absolute"
)

// StrategyNames lists every strategy in evaluation order.
var StrategyNames = []string{
	CurrentDir,
	SourceRoots,
	PackageMirror,
	ClassName,
	ProjectRoot,
	Absolute,
}

// Query is one resolution request as seen by a strategy.
type Query struct {
	// Origin is the absolute path of the document holding the literal.
	Origin string

	// Text is the literal text.
	Text string

	// Spec is the classified literal.
	Spec *specifier.Specifier

	// Project owns Origin, or nil when no project was found.
	Project *project.Project
}

// Strategy contributes candidate files for a query.
type Strategy interface {
	// Name identifies the strategy in configuration and logs.
	Name() string

	// Resolve returns the strategy's candidates. An error means the strategy
	// contributes nothing.
	Resolve(q *Query) ([]File, error)
}

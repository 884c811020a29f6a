/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// TypeDeclaration is a class, interface, enum, record or annotation type
// declared in a compilation unit.
type TypeDeclaration struct {
	// Name is the simple name. Nested types use their own simple name.
	Name string

	// QualifiedName is the package-qualified name with enclosing types
	// joined by dots, e.g. "com.foo.Outer.Inner".
	QualifiedName string
}

// CompilationUnit is what a Java source file declares.
type CompilationUnit struct {
	// Package is the declared package, empty for the default package.
	Package string

	// Types lists declared types in source order, nested types after their
	// enclosing type.
	Types []TypeDeclaration
}

var typeDeclarationKinds = map[string]bool{
	"class_declaration":           true,
	"interface_declaration":       true,
	"enum_declaration":            true,
	"record_declaration":          true,
	"annotation_type_declaration": true,
}

// Declarations reads the package and type declarations of a Java source.
func Declarations(src []byte) (*CompilationUnit, error) {
	tree, err := parse(src)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	unit := &CompilationUnit{}
	root := tree.RootNode()
	for i := uint(0); i < root.ChildCount(); i++ {
		child := root.Child(i)
		if child != nil && child.Kind() == "package_declaration" {
			unit.Package = packageName(child, src)
			break
		}
	}

	for i := uint(0); i < root.ChildCount(); i++ {
		collectTypes(root.Child(i), src, unit.Package, unit)
	}
	return unit, nil
}

func packageName(decl *sitter.Node, src []byte) string {
	for i := uint(0); i < decl.ChildCount(); i++ {
		child := decl.Child(i)
		if child == nil {
			continue
		}
		switch child.Kind() {
		case "scoped_identifier", "identifier":
			return strings.Join(strings.Fields(child.Utf8Text(src)), "")
		}
	}
	return ""
}

func collectTypes(node *sitter.Node, src []byte, prefix string, unit *CompilationUnit) {
	if node == nil || !typeDeclarationKinds[node.Kind()] {
		return
	}
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return
	}
	name := nameNode.Utf8Text(src)
	qualified := name
	if prefix != "" {
		qualified = prefix + "." + name
	}
	unit.Types = append(unit.Types, TypeDeclaration{Name: name, QualifiedName: qualified})

	body := node.ChildByFieldName("body")
	if body == nil {
		return
	}
	collectMembers(body, src, qualified, unit)
}

func collectMembers(body *sitter.Node, src []byte, prefix string, unit *CompilationUnit) {
	for i := uint(0); i < body.ChildCount(); i++ {
		child := body.Child(i)
		if child != nil && child.Kind() == "enum_body_declarations" {
			collectMembers(child, src, prefix, unit)
			continue
		}
		collectTypes(child, src, prefix, unit)
	}
}

/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package parser reads Java sources with tree-sitter. It provides the
// production tokenizer for literal extraction and the package and type
// declarations the class index needs.
package parser

import (
	"errors"
	"fmt"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_java "github.com/tree-sitter/tree-sitter-java/bindings/go"
)

// ErrParse is returned when tree-sitter produces no tree.
var ErrParse = errors.New("tree-sitter produced no tree")

var java = sitter.NewLanguage(tree_sitter_java.Language())

// parse runs a fresh parser over src. The caller must close the tree.
func parse(src []byte) (*sitter.Tree, error) {
	p := sitter.NewParser()
	defer p.Close()

	if err := p.SetLanguage(java); err != nil {
		return nil, fmt.Errorf("setting java language: %w", err)
	}
	tree := p.Parse(src, nil)
	if tree == nil {
		return nil, ErrParse
	}
	return tree, nil
}

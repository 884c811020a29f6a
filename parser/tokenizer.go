/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"bennypowers.dev/reslink/literal"
	"bennypowers.dev/reslink/token"
)

// JavaTokenizer tokenizes Java buffers.
// String literals and comments become single tokens; everything between leaf
// nodes becomes a whitespace or other token, so the stream has no gaps.
type JavaTokenizer struct{}

// NewJavaTokenizer creates a Java tokenizer.
func NewJavaTokenizer() *JavaTokenizer {
	return &JavaTokenizer{}
}

// Tokenize implements literal.Tokenizer.
func (t *JavaTokenizer) Tokenize(buf []byte) (literal.Stream, error) {
	tree, err := parse(buf)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	b := &streamBuilder{src: buf}
	b.walk(tree.RootNode())
	b.gap(len(buf))
	return token.NewStream(b.tokens...), nil
}

type streamBuilder struct {
	src    []byte
	tokens []token.Token
	pos    int
}

func (b *streamBuilder) walk(node *sitter.Node) {
	if node == nil {
		return
	}
	start, end := int(node.StartByte()), int(node.EndByte())
	if end <= start {
		return
	}

	switch node.Kind() {
	case "string_literal":
		b.emit(token.StringLiteral, start, end)
		return
	case "line_comment", "block_comment":
		b.emit(token.Comment, start, end)
		return
	}

	count := node.ChildCount()
	if count == 0 {
		b.emit(token.Other, start, end)
		return
	}
	for i := uint(0); i < count; i++ {
		b.walk(node.Child(i))
	}
}

func (b *streamBuilder) emit(kind token.Kind, start, end int) {
	if start < b.pos {
		start = b.pos
	}
	if end > len(b.src) {
		end = len(b.src)
	}
	if end <= start {
		return
	}
	b.gap(start)
	b.tokens = append(b.tokens, token.Token{
		Kind: kind,
		Span: token.Span{Start: start, End: end},
		Text: string(b.src[start:end]),
	})
	b.pos = end
}

// gap fills the bytes between the last token and until.
func (b *streamBuilder) gap(until int) {
	if until > len(b.src) {
		until = len(b.src)
	}
	if until <= b.pos {
		return
	}
	text := string(b.src[b.pos:until])
	kind := token.Other
	if strings.TrimSpace(text) == "" {
		kind = token.Whitespace
	}
	b.tokens = append(b.tokens, token.Token{
		Kind: kind,
		Span: token.Span{Start: b.pos, End: until},
		Text: text,
	})
	b.pos = until
}

/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides the lexical token model shared by tokenizers and the
// literal extractor.
package token

// Kind classifies a lexical token.
type Kind int

const (
	// Other is any token the engine does not care about.
	Other Kind = iota

	// Whitespace covers runs of spaces, tabs and line breaks.
	Whitespace

	// Comment covers line and block comments.
	Comment

	// StringLiteral is a quoted string token, quotes included.
	StringLiteral
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Whitespace:
		return "whitespace"
	case Comment:
		return "comment"
	case StringLiteral:
		return "string"
	default:
		return "other"
	}
}

// Span is a half-open region of a document, in byte offsets.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// NoSpan denotes the absence of a span.
var NoSpan = Span{Start: -1, End: -1}

// IsNone reports whether s is NoSpan.
func (s Span) IsNone() bool {
	return s.Start < 0 || s.End < 0
}

// Contains reports whether offset lies within s, end included, so a cursor
// sitting right after the last character is still on the span.
func (s Span) Contains(offset int) bool {
	if s.IsNone() {
		return false
	}
	return s.Start <= offset && offset <= s.End
}

// Len returns the number of bytes covered by s.
func (s Span) Len() int {
	if s.IsNone() {
		return 0
	}
	return s.End - s.Start
}

// Token is one lexical token of a buffer.
type Token struct {
	// Kind classifies the token.
	Kind Kind

	// Span locates the token in the buffer.
	Span Span

	// Text is the raw token text, delimiters included.
	Text string

	// index is the token's position in its stream.
	index int
}

/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import "sort"

// Stream is an ordered, gap-free sequence of tokens covering a buffer.
type Stream struct {
	tokens []Token
}

// NewStream builds a stream from tokens ordered by start offset.
func NewStream(tokens ...Token) *Stream {
	s := &Stream{tokens: make([]Token, len(tokens))}
	for i, tok := range tokens {
		tok.index = i
		s.tokens[i] = tok
	}
	return s
}

// Len returns the number of tokens in the stream.
func (s *Stream) Len() int {
	return len(s.tokens)
}

// Tokens returns a copy of the stream's tokens.
func (s *Stream) Tokens() []Token {
	out := make([]Token, len(s.tokens))
	copy(out, s.tokens)
	return out
}

// TokenAt returns the token whose span contains offset.
func (s *Stream) TokenAt(offset int) (Token, bool) {
	i := sort.Search(len(s.tokens), func(i int) bool {
		return s.tokens[i].Span.End > offset
	})
	if i >= len(s.tokens) {
		return Token{}, false
	}
	tok := s.tokens[i]
	if tok.Span.Start > offset {
		return Token{}, false
	}
	return tok, true
}

// Previous returns the token before tok, or false at the start of the stream.
func (s *Stream) Previous(tok Token) (Token, bool) {
	i := tok.index - 1
	if i < 0 || i >= len(s.tokens) {
		return Token{}, false
	}
	return s.tokens[i], true
}

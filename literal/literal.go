/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package literal locates the string literal under a cursor.
package literal

import (
	"strings"

	"bennypowers.dev/reslink/internal/logger"
	"bennypowers.dev/reslink/token"
)

// Stream is a tokenized buffer.
type Stream interface {
	// TokenAt returns the token whose span contains offset.
	TokenAt(offset int) (token.Token, bool)

	// Previous returns the token before tok.
	Previous(tok token.Token) (token.Token, bool)
}

// Tokenizer turns a buffer into a token stream.
type Tokenizer interface {
	Tokenize(buf []byte) (Stream, error)
}

// Literal is the unquoted content of a string literal token.
type Literal struct {
	// Text is the content between the quotes.
	Text string

	// Span covers Text in the buffer, quotes excluded.
	Span token.Span
}

// Extract returns the string literal at or just before offset.
// Whitespace under the cursor is skipped backwards, so a cursor placed after a
// literal's closing quote still finds it.
func Extract(tokenizer Tokenizer, buf []byte, offset int) (Literal, bool) {
	if tokenizer == nil || offset < 0 || offset >= len(buf) {
		return Literal{}, false
	}

	stream, err := tokenizer.Tokenize(buf)
	if err != nil {
		logger.Warn("tokenizing buffer: %v", err)
		return Literal{}, false
	}
	if stream == nil {
		return Literal{}, false
	}

	tok, ok := stream.TokenAt(offset)
	if !ok {
		return Literal{}, false
	}
	for tok.Kind == token.Whitespace {
		prev, ok := stream.Previous(tok)
		if !ok {
			break
		}
		tok = prev
	}

	if tok.Kind != token.StringLiteral || len(tok.Text) <= 2 {
		return Literal{}, false
	}
	return unquote(tok)
}

// unquote strips the delimiters of a string token, recognising Java text
// blocks.
func unquote(tok token.Token) (Literal, bool) {
	delim := 1
	if len(tok.Text) >= 6 && strings.HasPrefix(tok.Text, `"""`) && strings.HasSuffix(tok.Text, `"""`) {
		delim = 3
	}
	text := tok.Text[delim : len(tok.Text)-delim]
	if text == "" {
		return Literal{}, false
	}
	start := tok.Span.Start + delim
	return Literal{
		Text: text,
		Span: token.Span{Start: start, End: start + len(text)},
	}, true
}

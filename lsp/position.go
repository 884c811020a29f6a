/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package lsp

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"bennypowers.dev/reslink/token"
)

// offsetOf converts an LSP position (UTF-16 columns) to a byte offset.
func offsetOf(text []byte, pos protocol.Position) int {
	return pos.IndexIn(string(text))
}

// positionOf converts a byte offset to an LSP position (UTF-16 columns).
func positionOf(text []byte, offset int) protocol.Position {
	if offset > len(text) {
		offset = len(text)
	}
	var line, col protocol.UInteger
	for i := 0; i < offset; {
		r, size := utf8.DecodeRune(text[i:])
		if r == '\n' {
			line++
			col = 0
		} else {
			n := utf16.RuneLen(r)
			if n < 0 {
				n = 1
			}
			col += protocol.UInteger(n)
		}
		i += size
	}
	return protocol.Position{Line: line, Character: col}
}

// rangeOf converts a span to an LSP range.
func rangeOf(text []byte, span token.Span) protocol.Range {
	return protocol.Range{
		Start: positionOf(text, span.Start),
		End:   positionOf(text, span.End),
	}
}

// uriToPath converts a file:// URI to an absolute filesystem path.
func uriToPath(uri protocol.DocumentUri) (string, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", fmt.Errorf("failed to parse uri: %w", err)
	}
	if u.Scheme != "file" {
		return "", fmt.Errorf("unsupported uri scheme %q", u.Scheme)
	}
	return filepath.FromSlash(u.Path), nil
}

// pathToURI converts an absolute filesystem path to a file:// URI.
func pathToURI(path string) protocol.DocumentUri {
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(path)}
	if !strings.HasPrefix(u.Path, "/") {
		u.Path = "/" + u.Path
	}
	return u.String()
}

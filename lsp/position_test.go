/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"bennypowers.dev/reslink/token"
)

func TestPositionRoundTrip(t *testing.T) {
	text := []byte("line one\nπ = \"😀/a.txt\";\n")

	tests := []struct {
		name   string
		offset int
		want   protocol.Position
	}{
		{"start", 0, protocol.Position{Line: 0, Character: 0}},
		{"second line", 9, protocol.Position{Line: 1, Character: 0}},
		{"after two-byte rune", 11, protocol.Position{Line: 1, Character: 1}},
		{"after surrogate pair", 19, protocol.Position{Line: 1, Character: 7}},
		{"after slash", 20, protocol.Position{Line: 1, Character: 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := positionOf(text, tt.offset)
			assert.Equal(t, tt.want, pos)
			assert.Equal(t, tt.offset, offsetOf(text, pos))
		})
	}
}

func TestRangeOf(t *testing.T) {
	text := []byte("a\nbc \"x\"")
	r := rangeOf(text, token.Span{Start: 6, End: 7})
	assert.Equal(t, protocol.Position{Line: 1, Character: 4}, r.Start)
	assert.Equal(t, protocol.Position{Line: 1, Character: 5}, r.End)
}

func TestURIs(t *testing.T) {
	uri := pathToURI("/work/my shop/Foo.java")
	assert.Equal(t, "file:///work/my%20shop/Foo.java", uri)

	path, err := uriToPath(uri)
	require.NoError(t, err)
	assert.Equal(t, "/work/my shop/Foo.java", path)

	_, err = uriToPath("https://example.com/Foo.java")
	assert.Error(t, err)
}

func TestOpenArguments(t *testing.T) {
	uri, pos, err := openArguments([]any{"file:///a/B.java", float64(3), float64(7)})
	require.NoError(t, err)
	assert.Equal(t, "file:///a/B.java", uri)
	assert.Equal(t, protocol.Position{Line: 3, Character: 7}, pos)

	_, _, err = openArguments([]any{"file:///a/B.java", "3", float64(7)})
	assert.Error(t, err)

	_, _, err = openArguments([]any{float64(1), float64(3), float64(7)})
	assert.Error(t, err)
}

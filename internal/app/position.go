/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package app

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrPosition is returned for a position outside the document or in an
// unknown form.
var ErrPosition = errors.New("invalid position")

// ParsePosition converts a byte offset ("42") or a 1-based line and byte
// column ("3:17") into an offset into text.
func ParsePosition(text []byte, arg string) (int, error) {
	lineText, colText, hasCol := strings.Cut(arg, ":")
	if !hasCol {
		offset, err := strconv.Atoi(arg)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrPosition, arg)
		}
		return checkOffset(text, offset, arg)
	}

	line, err := strconv.Atoi(lineText)
	if err != nil || line < 1 {
		return 0, fmt.Errorf("%w: line in %q", ErrPosition, arg)
	}
	col, err := strconv.Atoi(colText)
	if err != nil || col < 1 {
		return 0, fmt.Errorf("%w: column in %q", ErrPosition, arg)
	}
	return LineColumn(text, line, col)
}

// LineColumn converts a 1-based line and byte column into an offset.
func LineColumn(text []byte, line, col int) (int, error) {
	start := 0
	for l := 1; l < line; l++ {
		i := bytes.IndexByte(text[start:], '\n')
		if i < 0 {
			return 0, fmt.Errorf("%w: line %d past end of document", ErrPosition, line)
		}
		start += i + 1
	}
	end := len(text)
	if i := bytes.IndexByte(text[start:], '\n'); i >= 0 {
		end = start + i
	}
	offset := start + col - 1
	if offset > end {
		return 0, fmt.Errorf("%w: column %d past end of line %d", ErrPosition, col, line)
	}
	return offset, nil
}

func checkOffset(text []byte, offset int, arg string) (int, error) {
	if offset < 0 || offset > len(text) {
		return 0, fmt.Errorf("%w: offset %s outside document of %d bytes", ErrPosition, arg, len(text))
	}
	return offset, nil
}

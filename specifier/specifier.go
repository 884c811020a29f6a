/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package specifier classifies resource strings found in string literals.
package specifier

import (
	"path"
	"path/filepath"
	"strings"
)

// Kind indicates the type of specifier.
type Kind int

const (
	// KindRelative is a path relative to a directory or source root.
	KindRelative Kind = iota
	// KindAbsolute is an absolute filesystem path. It is also tried as a
	// root-relative path, as in Class.getResource("/com/foo/x.xml").
	KindAbsolute
	// KindClasspath is a classpath: or classpath*: resource.
	KindClasspath
	// KindFileURL is a file: URL.
	KindFileURL
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindAbsolute:
		return "absolute"
	case KindClasspath:
		return "classpath"
	case KindFileURL:
		return "file"
	default:
		return "relative"
	}
}

// Specifier represents a parsed resource string.
type Specifier struct {
	// Kind is the type of specifier.
	Kind Kind

	// Path is the slash-separated path used for directory and source-root
	// lookups, without prefix or leading slash. Empty if nothing is left.
	Path string

	// Absolute is the filesystem path for absolute and file: specifiers.
	Absolute string

	// Raw is the original literal text.
	Raw string
}

var classpathPrefixes = []string{"classpath*:", "classpath:"}

// Parse parses a literal into a Specifier.
func Parse(raw string) *Specifier {
	spec := &Specifier{Kind: KindRelative, Raw: raw}
	rest := raw

	for _, prefix := range classpathPrefixes {
		if strings.HasPrefix(rest, prefix) {
			spec.Kind = KindClasspath
			rest = strings.TrimPrefix(rest, prefix)
			break
		}
	}

	if spec.Kind == KindRelative && strings.HasPrefix(rest, "file:") {
		spec.Kind = KindFileURL
		rest = strings.TrimPrefix(rest, "file:")
		if strings.HasPrefix(rest, "//") {
			rest = strings.TrimPrefix(rest, "//")
			if !strings.HasPrefix(rest, "/") {
				rest = "/" + rest
			}
		}
		if filepath.IsAbs(rest) {
			spec.Absolute = filepath.Clean(rest)
		}
	} else if spec.Kind == KindRelative && filepath.IsAbs(rest) {
		spec.Kind = KindAbsolute
		spec.Absolute = filepath.Clean(rest)
	}

	spec.Path = normalize(rest)
	return spec
}

// normalize converts rest into a clean slash-separated relative path.
func normalize(rest string) string {
	rest = strings.ReplaceAll(rest, `\`, "/")
	rest = strings.TrimLeft(rest, "/")
	if rest == "" {
		return ""
	}
	cleaned := path.Clean(rest)
	if cleaned == "." {
		return ""
	}
	return cleaned
}

// Dir returns the directory part of Path, or "" when Path is a bare name.
func (s *Specifier) Dir() string {
	dir := path.Dir(s.Path)
	if dir == "." {
		return ""
	}
	return dir
}

// Name returns the final segment of Path.
func (s *Specifier) Name() string {
	if s.Path == "" {
		return ""
	}
	return path.Base(s.Path)
}

// HasPath reports whether anything is left to look up relative to a directory.
func (s *Specifier) HasPath() bool {
	return s.Path != ""
}

// IsAbsolute returns true if the specifier names an absolute filesystem path.
func (s *Specifier) IsAbsolute() bool {
	return s.Absolute != ""
}

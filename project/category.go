/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package project

import (
	"fmt"
	"path"
	"strings"
)

// Category classifies a source root. Roots are searched in category order.
type Category int

const (
	// Main holds production sources.
	Main Category = iota
	// Resource holds production resources.
	Resource
	// Test holds test sources.
	Test
	// TestResource holds test resources.
	TestResource
	// Generated holds generated sources.
	Generated
)

var categoryNames = map[Category]string{
	Main:         "main",
	Resource:     "resource",
	Test:         "test",
	TestResource: "test-resource",
	Generated:    "generated",
}

// String returns the category name.
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// ParseCategory parses a category name.
func ParseCategory(name string) (Category, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	switch normalized {
	case "main", "source", "sources":
		return Main, nil
	case "resource", "resources":
		return Resource, nil
	case "test", "tests":
		return Test, nil
	case "test-resource", "test-resources", "testresource", "testresources":
		return TestResource, nil
	case "generated", "generated-sources":
		return Generated, nil
	}
	return Main, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
}

// InferCategory guesses the category of a root from its path.
func InferCategory(p string) Category {
	segments := strings.Split(path.Clean(strings.ReplaceAll(p, `\`, "/")), "/")
	var test, resources bool
	for _, seg := range segments {
		switch {
		case strings.HasPrefix(seg, "generated"):
			return Generated
		case seg == "test" || seg == "tests":
			test = true
		case seg == "resources":
			resources = true
		}
	}
	switch {
	case test && resources:
		return TestResource
	case test:
		return Test
	case resources:
		return Resource
	}
	return Main
}

/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package project

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	rfs "bennypowers.dev/reslink/fs"
)

// Pattern describes candidate source roots relative to a project directory.
// Glob may contain doublestar patterns.
type Pattern struct {
	Glob     string
	Category Category
}

// DefaultMarkers are the files that mark a project directory.
var DefaultMarkers = []string{
	"pom.xml",
	"build.gradle",
	"build.gradle.kts",
	"settings.gradle",
	"settings.gradle.kts",
	".config/reslink.yaml",
}

// DefaultLayout returns the Maven and Gradle source root conventions.
func DefaultLayout() []Pattern {
	return []Pattern{
		{Glob: "src/main/java", Category: Main},
		{Glob: "src/main/kotlin", Category: Main},
		{Glob: "src/main/groovy", Category: Main},
		{Glob: "src/main/resources", Category: Resource},
		{Glob: "src/test/java", Category: Test},
		{Glob: "src/test/kotlin", Category: Test},
		{Glob: "src/test/groovy", Category: Test},
		{Glob: "src/test/resources", Category: TestResource},
		{Glob: "target/generated-sources/*", Category: Generated},
		{Glob: "target/generated-test-sources/*", Category: Generated},
		{Glob: "build/generated/sources/*/*", Category: Generated},
	}
}

// ExpandRoots resolves patterns against dir and returns existing root
// directories, stably ordered by category and deduplicated.
func ExpandRoots(filesystem rfs.FileSystem, dir string, patterns []Pattern) []Root {
	var roots []Root
	seen := make(map[string]bool)

	for _, pattern := range patterns {
		for _, path := range expandDirs(filesystem, dir, pattern.Glob) {
			if seen[path] {
				continue
			}
			seen[path] = true
			roots = append(roots, Root{Path: path, Category: pattern.Category})
		}
	}

	sort.SliceStable(roots, func(i, j int) bool {
		return roots[i].Category < roots[j].Category
	})
	return roots
}

// expandDirs expands a single directory pattern which may contain globs.
func expandDirs(filesystem rfs.FileSystem, dir, pattern string) []string {
	if !filepath.IsAbs(pattern) {
		pattern = filepath.Join(dir, pattern)
	}
	pattern = filepath.Clean(pattern)

	if !containsGlob(pattern) {
		if rfs.IsDir(filesystem, pattern) {
			return []string{pattern}
		}
		return nil
	}

	// Find the base directory (non-glob prefix)
	baseDir := pattern
	for containsGlob(baseDir) {
		baseDir = filepath.Dir(baseDir)
	}
	relPattern := strings.TrimPrefix(pattern, baseDir)
	relPattern = strings.TrimPrefix(relPattern, string(filepath.Separator))
	relPattern = filepath.ToSlash(relPattern)

	var matches []string
	_ = fs.WalkDir(filesystem, baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if !d.IsDir() || path == baseDir {
			return nil
		}

		relPath := strings.TrimPrefix(path, baseDir)
		relPath = strings.TrimPrefix(relPath, string(filepath.Separator))
		if matched, _ := doublestar.Match(relPattern, filepath.ToSlash(relPath)); matched {
			matches = append(matches, filepath.Clean(path))
		}
		return nil
	})

	sort.Strings(matches)
	return matches
}

// containsGlob returns true if the pattern contains glob characters.
func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

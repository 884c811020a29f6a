/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package testutil provides fixtures and collaborator fakes for tests.
package testutil

import (
	"flag"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"bennypowers.dev/reslink/internal/mapfs"
)

const (
	// Shop is the sample Maven project, relative to testdata.
	Shop = "fixtures/shop"

	// ServiceJava is the shop source whose literals cover every strategy.
	ServiceJava = "src/main/java/com/foo/Service.java"
)

var update = flag.Bool("update", false, "rewrite golden files under testdata/golden")

// Testdata returns the module's testdata directory, found by walking up from
// the working directory of the test to the go.mod.
func Testdata(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	if err != nil {
		t.Fatalf("working directory: %v", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return filepath.Join(dir, "testdata")
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatalf("no go.mod above the test directory")
		}
		dir = parent
	}
}

// FixturePath returns the absolute path of rel, a slash-separated path
// under testdata.
func FixturePath(t *testing.T, rel string) string {
	t.Helper()
	return filepath.Join(Testdata(t), filepath.FromSlash(rel))
}

// ShopFile returns the absolute on-disk path of a file in the shop project.
func ShopFile(t *testing.T, rel string) string {
	t.Helper()
	return FixturePath(t, path.Join(Shop, rel))
}

// NewFixtureFS copies the fixture tree at fixtureDir into a MapFileSystem
// rooted at root.
func NewFixtureFS(t *testing.T, fixtureDir string, root string) *mapfs.MapFileSystem {
	t.Helper()
	dir := FixturePath(t, fixtureDir)
	mfs := mapfs.New()

	err := fs.WalkDir(os.DirFS(dir), ".", func(rel string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		content, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(rel)))
		if err != nil {
			return err
		}
		mfs.AddFile(filepath.Join(root, filepath.FromSlash(rel)), string(content), 0644)
		return nil
	})
	if err != nil {
		t.Fatalf("loading fixtures from %s: %v", fixtureDir, err)
	}
	return mfs
}

// ShopFS loads the shop project at root.
func ShopFS(t *testing.T, root string) *mapfs.MapFileSystem {
	t.Helper()
	return NewFixtureFS(t, Shop, root)
}

// LoadFixtureFile reads a file under testdata.
func LoadFixtureFile(t *testing.T, rel string) []byte {
	t.Helper()
	content, err := os.ReadFile(FixturePath(t, rel))
	if err != nil {
		t.Fatalf("reading fixture %s: %v", rel, err)
	}
	return content
}

// AssertGolden compares actual with testdata/golden/name. With -update the
// golden file is rewritten first.
func AssertGolden(t *testing.T, name string, actual []byte) {
	t.Helper()
	golden := FixturePath(t, path.Join("golden", name))
	if *update {
		if err := os.MkdirAll(filepath.Dir(golden), 0755); err != nil {
			t.Fatalf("creating golden directory: %v", err)
		}
		if err := os.WriteFile(golden, actual, 0644); err != nil {
			t.Fatalf("writing golden file %s: %v", name, err)
		}
		t.Logf("updated golden file %s", golden)
	}
	want, err := os.ReadFile(golden)
	if err != nil {
		t.Fatalf("reading golden file %s: %v", name, err)
	}
	assert.Equal(t, string(want), string(actual))
}

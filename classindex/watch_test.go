/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package classindex_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"bennypowers.dev/reslink/classindex"
	"bennypowers.dev/reslink/fs"
	"bennypowers.dev/reslink/project"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestRegistry_Watch(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "pom.xml"), "<project/>")
	writeFile(t, filepath.Join(dir, "src/main/java/com/foo/A.java"), "package com.foo;\nclass A {}\n")

	osfs := fs.NewOSFileSystem()
	reg := classindex.NewRegistry(osfs, project.NewDetector(osfs))
	idx, ok := reg.IndexFor(filepath.Join(dir, "src/main/java/com/foo/A.java"))
	require.True(t, ok)
	require.Len(t, idx.Lookup("A", classindex.Source), 1)
	require.Empty(t, idx.Lookup("B", classindex.Source))

	ctx, cancel := context.WithCancel(context.Background())
	w, err := reg.Watch(ctx)
	require.NoError(t, err)

	writeFile(t, filepath.Join(dir, "src/main/java/com/foo/B.java"), "package com.foo;\nclass B {}\n")
	assert.Eventually(t, func() bool {
		return len(idx.Lookup("B", classindex.Source)) == 1
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	w.Wait()
}

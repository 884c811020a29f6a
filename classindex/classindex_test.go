/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package classindex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/reslink/classindex"
	"bennypowers.dev/reslink/internal/mapfs"
	"bennypowers.dev/reslink/project"
)

func projectFS() *mapfs.MapFileSystem {
	mfs := mapfs.New()
	mfs.AddFile("/work/app/pom.xml", "<project/>", 0644)
	mfs.AddFile("/work/app/src/main/java/com/foo/Bar.java", `package com.foo;
public class Bar {
    public static class Inner {}
}
`, 0644)
	mfs.AddFile("/work/app/src/test/java/com/foo/BarTest.java", `package com.foo;
class BarTest {}
`, 0644)
	mfs.AddFile("/work/app/src/main/resources/com/foo/Ignored.java", `package com.foo;
class Ignored {}
`, 0644)
	mfs.AddFile("/work/app/lib/src/org/lib/Bar.java", `package org.lib;
public class Bar {}
`, 0644)
	mfs.AddFiles(
		"/work/app/lib/classes/org/dep/Bar.class",
		"/work/app/lib/classes/org/dep/Bar$Builder.class",
		"/work/app/lib/classes/org/dep/Bar$1.class",
	)
	return mfs
}

func qualified(decls []classindex.Declaration) []string {
	var out []string
	for _, d := range decls {
		out = append(out, d.QualifiedName)
	}
	return out
}

func TestRegistry_Lookup(t *testing.T) {
	mfs := projectFS()
	reg := classindex.NewRegistry(mfs, project.NewDetector(mfs),
		classindex.WithClasspath("lib/src", "lib/classes"))

	idx, ok := reg.IndexFor("/work/app/src/main/java/com/foo/Bar.java")
	require.True(t, ok)

	all := idx.Lookup("Bar", classindex.Source|classindex.Dependencies)
	assert.Equal(t, []string{"com.foo.Bar", "org.dep.Bar", "org.lib.Bar"}, qualified(all))

	own := idx.Lookup("Bar", classindex.Source)
	require.Len(t, own, 1)
	assert.Equal(t, "/work/app/src/main/java/com/foo/Bar.java", own[0].Source)

	deps := idx.Lookup("Bar", classindex.Dependencies)
	require.Len(t, deps, 2)
	assert.False(t, deps[0].HasSource(), "compiled classes have no source")
	assert.Equal(t, "/work/app/lib/src/org/lib/Bar.java", deps[1].Source)

	assert.Equal(t, []string{"com.foo.Bar.Inner"}, qualified(idx.Lookup("Inner", classindex.Source)))
	assert.Equal(t, []string{"org.dep.Bar.Builder"}, qualified(idx.Lookup("Builder", classindex.Dependencies)))
	assert.Equal(t, []string{"com.foo.BarTest"}, qualified(idx.Lookup("BarTest", classindex.Source)))
	assert.Empty(t, idx.Lookup("Ignored", classindex.Source), "resource roots are not indexed")
	assert.Empty(t, idx.Lookup("1", classindex.Dependencies))

	again, ok := reg.IndexFor("/work/app/src/test/java/com/foo/BarTest.java")
	require.True(t, ok)
	assert.Same(t, idx, again)
}

func TestRegistry_NoProject(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFiles("/loose/Foo.java")
	reg := classindex.NewRegistry(mfs, project.NewDetector(mfs))

	_, ok := reg.IndexFor("/loose/Foo.java")
	assert.False(t, ok)
}

func TestSourceIndex_Invalidate(t *testing.T) {
	mfs := projectFS()
	idx := classindex.NewSourceIndex(mfs, []string{"/work/app/src/main/java"}, nil)

	assert.Empty(t, idx.Lookup("Baz", classindex.Source))
	assert.Equal(t, 1, idx.Builds())

	mfs.AddFile("/work/app/src/main/java/com/foo/Baz.java", "package com.foo;\nclass Baz {}\n", 0644)
	assert.Empty(t, idx.Lookup("Baz", classindex.Source), "index is not rebuilt until invalidated")

	idx.Invalidate()
	assert.Equal(t, []string{"com.foo.Baz"}, qualified(idx.Lookup("Baz", classindex.Source)))
	assert.Equal(t, []string{"com.foo.Bar"}, qualified(idx.Lookup("Bar", classindex.Source)))
	assert.Equal(t, 2, idx.Builds())

	assert.True(t, idx.Covers("/work/app/src/main/java/com/foo/Baz.java"))
	assert.False(t, idx.Covers("/work/app/src/test/java/com/foo/BarTest.java"))
}

func TestSourceIndex_Covers(t *testing.T) {
	idx := classindex.NewSourceIndex(projectFS(), []string{"/work/app/src/main/java"}, []string{"/work/app/lib"})

	tests := []struct {
		path string
		want bool
	}{
		{"/work/app/src/main/java/com/foo/Bar.java", true},
		{"/work/app/src/main/java", true},
		{"/work/app/src/main/java/..gen/Stub.java", true},
		{"/work/app/lib/org/lib/Dep.class", true},
		{"/work/app/src/main/resources/app.properties", false},
		{"/work/app/src/main", false},
		{"/work/other/src/main/java/com/foo/Bar.java", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, idx.Covers(tt.path))
		})
	}
}

func TestRegistry_Invalidate(t *testing.T) {
	mfs := projectFS()
	reg := classindex.NewRegistry(mfs, project.NewDetector(mfs))

	idx, ok := reg.IndexFor("/work/app/src/main/java/com/foo/Bar.java")
	require.True(t, ok)
	assert.Empty(t, idx.Lookup("Qux", classindex.Source))

	mfs.AddFile("/work/app/src/test/java/com/foo/Qux.java", "package com.foo;\nclass Qux {}\n", 0644)
	reg.Invalidate("/elsewhere/Qux.java")
	assert.Empty(t, idx.Lookup("Qux", classindex.Source))

	reg.Invalidate("/work/app/src/test/java/com/foo/Qux.java")
	assert.Len(t, idx.Lookup("Qux", classindex.Source), 1)

	mfs.AddFile("/work/app/src/test/java/com/foo/Quux.java", "package com.foo;\nclass Quux {}\n", 0644)
	reg.InvalidateAll()
	assert.Len(t, idx.Lookup("Quux", classindex.Source), 1)
}

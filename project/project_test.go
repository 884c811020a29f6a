/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package project_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/reslink/internal/mapfs"
	"bennypowers.dev/reslink/project"
)

func mavenFS() *mapfs.MapFileSystem {
	mfs := mapfs.New()
	mfs.AddFiles(
		"/work/app/pom.xml",
		"/work/app/src/main/java/com/foo/Bar.java",
		"/work/app/src/main/resources/com/foo/app.properties",
		"/work/app/src/test/java/com/foo/MyTest.java",
		"/work/app/src/test/resources/com/foo/MyTest-context.xml",
		"/work/app/target/generated-sources/annotations/com/foo/Gen.java",
		"/work/app/target/generated-sources/jaxb/com/foo/Jaxb.java",
	)
	mfs.AddDir("/work/app/src/main/kotlin", 0755)
	return mfs
}

func TestDetector_Owner(t *testing.T) {
	d := project.NewDetector(mavenFS())

	p, err := d.Owner("/work/app/src/test/java/com/foo/MyTest.java")
	require.NoError(t, err)
	assert.Equal(t, "/work/app", p.Dir)

	assert.Equal(t, []project.Root{
		{Path: "/work/app/src/main/java", Category: project.Main},
		{Path: "/work/app/src/main/kotlin", Category: project.Main},
		{Path: "/work/app/src/main/resources", Category: project.Resource},
		{Path: "/work/app/src/test/java", Category: project.Test},
		{Path: "/work/app/src/test/resources", Category: project.TestResource},
		{Path: "/work/app/target/generated-sources/annotations", Category: project.Generated},
		{Path: "/work/app/target/generated-sources/jaxb", Category: project.Generated},
	}, p.Roots)

	again, err := d.Owner("/work/app/pom.xml")
	require.NoError(t, err)
	assert.Same(t, p, again, "projects are cached per directory")
}

func TestDetector_NoProject(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFiles("/loose/Foo.java")

	_, err := project.NewDetector(mfs).Owner("/loose/Foo.java")
	require.Error(t, err)
	assert.True(t, errors.Is(err, project.ErrNoProject))
}

func TestDetector_Options(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFiles(
		"/repo/WORKSPACE",
		"/repo/java/com/foo/Bar.java",
		"/repo/res/conf/app.yaml",
	)

	d := project.NewDetector(mfs,
		project.WithMarkers("WORKSPACE"),
		project.WithLayout([]project.Pattern{
			{Glob: "res", Category: project.Resource},
			{Glob: "java", Category: project.Main},
			{Glob: "missing", Category: project.Test},
		}),
	)

	p, err := d.Owner("/repo/java/com/foo/Bar.java")
	require.NoError(t, err)
	assert.Equal(t, []project.Root{
		{Path: "/repo/java", Category: project.Main},
		{Path: "/repo/res", Category: project.Resource},
	}, p.Roots)
}

func TestDetector_Forget(t *testing.T) {
	mfs := mavenFS()
	d := project.NewDetector(mfs)

	p, err := d.Owner("/work/app/pom.xml")
	require.NoError(t, err)
	before := len(p.Roots)

	mfs.AddFiles("/work/app/src/test/kotlin/com/foo/KtTest.kt")
	d.Forget()

	p, err = d.Owner("/work/app/pom.xml")
	require.NoError(t, err)
	assert.Len(t, p.Roots, before+1)
}

func TestProject_RootOf(t *testing.T) {
	p := &project.Project{
		Dir: "/work/app",
		Roots: []project.Root{
			{Path: "/work/app/src/main/java", Category: project.Main},
			{Path: "/work/app/src/test/java", Category: project.Test},
		},
	}

	root, rel, ok := p.RootOf("/work/app/src/test/java/com/foo")
	require.True(t, ok)
	assert.Equal(t, "/work/app/src/test/java", root.Path)
	assert.Equal(t, "com/foo", rel)

	root, rel, ok = p.RootOf("/work/app/src/main/java")
	require.True(t, ok)
	assert.Equal(t, project.Main, root.Category)
	assert.Empty(t, rel)

	_, _, ok = p.RootOf("/work/app/src/main/javascript/x")
	assert.False(t, ok)
}

func TestProject_Rel(t *testing.T) {
	p := &project.Project{Dir: "/work/app"}
	assert.Equal(t, "src/Foo.java", p.Rel("/work/app/src/Foo.java"))
	assert.Equal(t, "/elsewhere/Foo.java", p.Rel("/elsewhere/Foo.java"))
	assert.True(t, p.Contains("/work/app/x"))
	assert.False(t, p.Contains("/work/application/x"))

	var none *project.Project
	assert.Equal(t, "/x", none.Rel("/x"))
}

func TestCategory(t *testing.T) {
	for _, c := range []project.Category{project.Main, project.Resource, project.Test, project.TestResource, project.Generated} {
		parsed, err := project.ParseCategory(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}

	_, err := project.ParseCategory("vendor")
	assert.True(t, errors.Is(err, project.ErrUnknownCategory))

	tests := []struct {
		path string
		want project.Category
	}{
		{"src/main/java", project.Main},
		{"src/main/resources", project.Resource},
		{"src/test/java", project.Test},
		{"src/test/resources", project.TestResource},
		{"target/generated-sources/annotations", project.Generated},
		{"lib", project.Main},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, project.InferCategory(tt.path), tt.path)
	}
}

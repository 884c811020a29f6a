/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolve

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/reslink/internal/app"
	"bennypowers.dev/reslink/testutil"
	"bennypowers.dev/reslink/token"
)

func offsetOf(t *testing.T, needle string) string {
	t.Helper()
	data := testutil.LoadFixtureFile(t, testutil.Shop+"/"+testutil.ServiceJava)
	i := bytes.Index(data, []byte(needle))
	require.GreaterOrEqual(t, i, 0)
	return strconv.Itoa(i + 1)
}

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	Cmd.SetOut(&out)
	Cmd.SetArgs(args)
	require.NoError(t, Cmd.Execute())
	return out.String()
}

func TestRun(t *testing.T) {
	t.Run("table", func(t *testing.T) {
		out := execute(t, "--format", "table", testutil.ShopFile(t, testutil.ServiceJava), offsetOf(t, "config/settings.xml"))
		assert.Contains(t, out, "config/settings.xml")
		main := strings.Index(out, "src/main/resources/config/settings.xml")
		test := strings.Index(out, "src/test/resources/config/settings.xml")
		assert.GreaterOrEqual(t, main, 0)
		assert.Greater(t, test, main)
	})

	t.Run("json", func(t *testing.T) {
		out := execute(t, "--format", "json", testutil.ShopFile(t, testutil.ServiceJava), offsetOf(t, "com/foo/Bar.java"))
		var report app.Report
		require.NoError(t, json.Unmarshal([]byte(out), &report))
		assert.Equal(t, "com/foo/Bar.java", report.Target)
		require.Len(t, report.Files, 1)
		assert.Equal(t, "src/main/java/com/foo/Bar.java", report.Files[0].Relative)
		assert.True(t, filepath.IsAbs(report.Files[0].Path))
	})

	t.Run("line and column", func(t *testing.T) {
		// Line 4 is `    static final String SOURCE = "com/foo/Bar.java";`
		out := execute(t, "--format", "paths", testutil.ShopFile(t, testutil.ServiceJava), "4:36")
		assert.True(t, strings.HasSuffix(strings.TrimSpace(out), filepath.Join("com", "foo", "Bar.java")))
	})

	t.Run("bad position", func(t *testing.T) {
		Cmd.SetOut(&bytes.Buffer{})
		Cmd.SetErr(&bytes.Buffer{})
		Cmd.SetArgs([]string{"--format", "table", testutil.ShopFile(t, testutil.ServiceJava), "99:1"})
		assert.Error(t, Cmd.Execute())
	})
}

func TestOutput(t *testing.T) {
	span := token.Span{Start: 10, End: 26}
	report := app.Report{
		Target: "config/settings.xml",
		Span:   &span,
		Files: []app.ReportFile{
			{Path: "/p/src/main/resources/config/settings.xml", Relative: "src/main/resources/config/settings.xml"},
			{Path: "/p/src/test/resources/config/settings.xml", Relative: "src/test/resources/config/settings.xml"},
		},
	}

	tests := []struct {
		name   string
		report app.Report
		format string
		want   []string
	}{
		{"table", report, "table", []string{"target   config/settings.xml", "span     10-26", "1        src/main/resources", "2        src/test/resources"}},
		{"paths", report, "paths", []string{"/p/src/main/resources/config/settings.xml\n/p/src/test/resources/config/settings.xml\n"}},
		{"no literal", app.Report{}, "table", []string{"No string literal at position"}},
		{"no files", app.Report{Target: "x.txt", Span: &span}, "table", []string{"No resource found for x.txt"}},
		{"json", report, "json", []string{`"target": "config/settings.xml"`, `"start": 10`, `"relative": "src/test/resources/config/settings.xml"`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, output(&buf, tt.report, tt.format))
			for _, want := range tt.want {
				assert.Contains(t, buf.String(), want)
			}
		})
	}

	t.Run("unknown format", func(t *testing.T) {
		assert.Error(t, output(&bytes.Buffer{}, report, "xml"))
	})
}

func TestOutputTableGolden(t *testing.T) {
	span := token.Span{Start: 129, End: 148}
	report := app.Report{
		Target: "config/settings.xml",
		Span:   &span,
		Files: []app.ReportFile{
			{Path: "/work/shop/src/main/resources/config/settings.xml", Relative: "src/main/resources/config/settings.xml"},
			{Path: "/work/shop/src/test/resources/config/settings.xml", Relative: "src/test/resources/config/settings.xml"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, output(&buf, report, "table"))
	testutil.AssertGolden(t, "resolve-table.txt", buf.Bytes())
}

/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/reslink/internal/app"
	"bennypowers.dev/reslink/internal/mapfs"
	"bennypowers.dev/reslink/testutil"
)

const (
	shop    = "/shop"
	service = shop + "/src/main/java/com/foo/Service.java"
)

func ptr(v int) *int {
	return &v
}

func shopTools(t *testing.T) (*tools, *mapfs.MapFileSystem) {
	t.Helper()
	mfs := testutil.ShopFS(t, shop)
	return newTools(mfs, viper.New()), mfs
}

func offsetOf(t *testing.T, mfs *mapfs.MapFileSystem, needle string) int {
	t.Helper()
	data, err := mfs.ReadFile(service)
	require.NoError(t, err)
	i := bytes.Index(data, []byte(needle))
	require.GreaterOrEqual(t, i, 0)
	return i + 1
}

func TestResolve(t *testing.T) {
	tools, mfs := shopTools(t)

	t.Run("offset", func(t *testing.T) {
		report, err := tools.resolve(resolveParams{File: service, Offset: ptr(offsetOf(t, mfs, "config/settings.xml"))})
		require.NoError(t, err)
		assert.Equal(t, "config/settings.xml", report.Target)
		require.Len(t, report.Files, 2)
		assert.Equal(t, "src/main/resources/config/settings.xml", report.Files[0].Relative)
		assert.Equal(t, "src/test/resources/config/settings.xml", report.Files[1].Relative)
	})

	t.Run("line and character", func(t *testing.T) {
		// Line 4 is `    static final String SOURCE = "com/foo/Bar.java";`
		report, err := tools.resolve(resolveParams{File: service, Line: ptr(4), Character: ptr(36)})
		require.NoError(t, err)
		assert.Equal(t, "com/foo/Bar.java", report.Target)
		require.Len(t, report.Files, 1)
		assert.Equal(t, shop+"/src/main/java/com/foo/Bar.java", report.Files[0].Path)
	})

	t.Run("no literal", func(t *testing.T) {
		report, err := tools.resolve(resolveParams{File: service, Offset: ptr(2)})
		require.NoError(t, err)
		assert.Nil(t, report.Span)
		assert.Empty(t, report.Files)
	})

	t.Run("engine reused", func(t *testing.T) {
		first, err := tools.engineFor(service)
		require.NoError(t, err)
		second, err := tools.engineFor(shop + "/src/test/java/com/foo/MyTest.java")
		require.NoError(t, err)
		assert.Same(t, first, second)
	})

	tests := []struct {
		name   string
		params resolveParams
	}{
		{"missing file", resolveParams{Offset: ptr(1)}},
		{"unreadable file", resolveParams{File: shop + "/Missing.java", Offset: ptr(1)}},
		{"missing position", resolveParams{File: service}},
		{"line without character", resolveParams{File: service, Line: ptr(1)}},
		{"offset past end", resolveParams{File: service, Offset: ptr(1 << 20)}},
		{"line past end", resolveParams{File: service, Line: ptr(100), Character: ptr(1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tools.resolve(tt.params)
			assert.Error(t, err)
		})
	}
}

func connect(t *testing.T, tools *tools) *mcp.ClientSession {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	serverSession, err := newServer(tools).Connect(ctx, serverTransport, nil)
	require.NoError(t, err)

	client := mcp.NewClient(&mcp.Implementation{Name: "reslink-test", Version: "0.0.0"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = session.Close()
		_ = serverSession.Wait()
	})
	return session
}

func TestServer(t *testing.T) {
	tools, mfs := shopTools(t)
	session := connect(t, tools)
	ctx := context.Background()

	t.Run("lists tool", func(t *testing.T) {
		list, err := session.ListTools(ctx, nil)
		require.NoError(t, err)
		require.Len(t, list.Tools, 1)
		assert.Equal(t, ResolveResource, list.Tools[0].Name)
	})

	t.Run("resolves", func(t *testing.T) {
		result, err := session.CallTool(ctx, &mcp.CallToolParams{
			Name:      ResolveResource,
			Arguments: map[string]any{"file": service, "offset": offsetOf(t, mfs, "app.properties")},
		})
		require.NoError(t, err)
		require.False(t, result.IsError)
		require.Len(t, result.Content, 1)

		text, ok := result.Content[0].(*mcp.TextContent)
		require.True(t, ok)
		var report app.Report
		require.NoError(t, json.Unmarshal([]byte(text.Text), &report))
		assert.Equal(t, "app.properties", report.Target)
		require.Len(t, report.Files, 1)
		assert.Equal(t, shop+"/src/main/resources/com/foo/app.properties", report.Files[0].Path)
	})

	t.Run("reports tool errors in the result", func(t *testing.T) {
		result, err := session.CallTool(ctx, &mcp.CallToolParams{
			Name:      ResolveResource,
			Arguments: map[string]any{"file": service},
		})
		require.NoError(t, err)
		assert.True(t, result.IsError)
	})
}

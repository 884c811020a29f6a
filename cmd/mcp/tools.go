/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/viper"

	"bennypowers.dev/reslink/config"
	rfs "bennypowers.dev/reslink/fs"
	"bennypowers.dev/reslink/internal/app"
)

// ResolveResource is the name of the resolution tool.
const ResolveResource = "resolve_resource"

var errMissingPosition = errors.New("either offset or line and character are required")

type resolveParams struct {
	File      string `json:"file"`
	Line      *int   `json:"line,omitempty"`
	Character *int   `json:"character,omitempty"`
	Offset    *int   `json:"offset,omitempty"`
}

func resolveResourceTool() *mcp.Tool {
	return &mcp.Tool{
		Name: ResolveResource,
		Description: "Resolve the Java string literal at a position to the project files it names. " +
			"Returns the literal text, its byte span and the matching files in presentation order.",
		InputSchema: &jsonschema.Schema{
			Type:     "object",
			Required: []string{"file"},
			Properties: map[string]*jsonschema.Schema{
				"file": {
					Type:        "string",
					Description: "Path of the Java source file",
				},
				"line": {
					Type:        "integer",
					Description: "1-based line of the position",
					Minimum:     minimum(1),
				},
				"character": {
					Type:        "integer",
					Description: "1-based byte column of the position",
					Minimum:     minimum(1),
				},
				"offset": {
					Type:        "integer",
					Description: "Byte offset of the position, instead of line and character",
					Minimum:     minimum(0),
				},
			},
		},
	}
}

func minimum(v float64) *float64 {
	return &v
}

// tools serves tool calls, reusing one engine per config directory.
type tools struct {
	fs rfs.FileSystem
	v  *viper.Viper

	mu      sync.Mutex
	engines map[string]*app.Engine
}

func newTools(filesystem rfs.FileSystem, v *viper.Viper) *tools {
	return &tools{fs: filesystem, v: v, engines: make(map[string]*app.Engine)}
}

func (t *tools) resolveResource(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params resolveParams
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return errorResult(fmt.Errorf("invalid arguments: %w", err)), nil
	}
	report, err := t.resolve(params)
	if err != nil {
		return errorResult(err), nil
	}
	return jsonResult(report)
}

func (t *tools) resolve(params resolveParams) (app.Report, error) {
	if params.File == "" {
		return app.Report{}, errors.New("file is required")
	}
	doc, err := app.ReadDocument(t.fs, params.File)
	if err != nil {
		return app.Report{}, err
	}

	var offset int
	switch {
	case params.Offset != nil:
		offset, err = app.ParsePosition(doc.Text, fmt.Sprint(*params.Offset))
	case params.Line != nil && params.Character != nil:
		offset, err = app.LineColumn(doc.Text, *params.Line, *params.Character)
	default:
		err = errMissingPosition
	}
	if err != nil {
		return app.Report{}, err
	}

	engine, err := t.engineFor(doc.Path)
	if err != nil {
		return app.Report{}, err
	}
	return app.NewReport(engine.Resolve(doc, offset)), nil
}

func (t *tools) engineFor(file string) (*app.Engine, error) {
	cfg, dir, err := config.Find(t.fs, filepath.Dir(file))
	if err != nil {
		return nil, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if engine, ok := t.engines[dir]; ok {
		return engine, nil
	}
	if cfg == nil {
		cfg = config.Default()
	}
	app.Apply(t.v, cfg)
	engine, err := app.Build(t.fs, cfg, app.Hosts{})
	if err != nil {
		return nil, err
	}
	t.engines[dir] = engine
	return engine, nil
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding result: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}, nil
}

func errorResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
		IsError: true,
	}
}

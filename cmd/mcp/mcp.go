/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package mcp provides the mcp command for reslink.
package mcp

import (
	"io"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	rfs "bennypowers.dev/reslink/fs"
	"bennypowers.dev/reslink/internal/logger"
	"bennypowers.dev/reslink/internal/version"
)

// Cmd is the mcp cobra command.
var Cmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MCP tool server on stdio",
	Long: `Run a Model Context Protocol server over stdin and stdout.

Tools:
  resolve_resource  list the files the string literal at a position links to`,
	Args: cobra.NoArgs,
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	logger.SetOutput(io.Discard)
	tools := newTools(rfs.NewOSFileSystem(), viper.GetViper())
	return newServer(tools).Run(cmd.Context(), &mcp.StdioTransport{})
}

func newServer(tools *tools) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "reslink",
		Version: version.Get(),
	}, nil)
	server.AddTool(resolveResourceTool(), tools.resolveResource)
	return server
}

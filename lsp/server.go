/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package lsp serves resource links over the Language Server Protocol:
// go to definition, hover and an open command.
package lsp

import (
	"context"
	"sync"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	rfs "bennypowers.dev/reslink/fs"
	"bennypowers.dev/reslink/hyperlink"
)

// OpenCommand is the workspace command that opens the link at a position.
// Arguments are [uri, line, character].
const OpenCommand = "reslink.open"

// Workspace describes the client workspace at initialize time.
type Workspace struct {
	// Root is the workspace root directory, empty when the client sent none.
	Root string

	// Options is the client's initializationOptions as JSON.
	Options []byte
}

// Factory builds the engine for a workspace. host provides the
// client-backed chooser, opener and status.
type Factory func(ctx context.Context, ws Workspace, host *Host) (*hyperlink.Engine, error)

// Server is the reslink language server.
type Server struct {
	name    string
	version string
	factory Factory
	fs      rfs.FileSystem
	log     commonlog.Logger

	handler protocol.Handler
	host    *Host
	docs    *documents

	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.RWMutex
	engine *hyperlink.Engine

	// activations tracks open commands still waiting on the client.
	activations sync.WaitGroup
}

// NewServer creates a language server. Documents that are not open are read
// from filesystem.
func NewServer(name, version string, factory Factory, filesystem rfs.FileSystem) *Server {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{
		name:    name,
		version: version,
		factory: factory,
		fs:      filesystem,
		log:     commonlog.GetLogger(name + ".lsp"),
		host:    &Host{},
		docs:    newDocuments(),
		ctx:     ctx,
		cancel:  cancel,
	}
	s.handler = protocol.Handler{
		Initialize:              s.initialize,
		Initialized:             s.initialized,
		Shutdown:                s.shutdown,
		TextDocumentDidOpen:     s.textDocumentDidOpen,
		TextDocumentDidChange:   s.textDocumentDidChange,
		TextDocumentDidClose:    s.textDocumentDidClose,
		TextDocumentDefinition:  s.textDocumentDefinition,
		TextDocumentHover:       s.textDocumentHover,
		WorkspaceExecuteCommand: s.workspaceExecuteCommand,
	}
	return s
}

// Handler returns the protocol handler.
func (s *Server) Handler() *protocol.Handler {
	return &s.handler
}

// RunStdio serves the protocol over stdin and stdout until the client exits.
func (s *Server) RunStdio() error {
	defer s.cancel()
	return server.NewServer(&s.handler, s.name, false).RunStdio()
}

// Close stops background work started for the workspace.
func (s *Server) Close() {
	s.cancel()
}

func (s *Server) currentEngine() *hyperlink.Engine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine
}

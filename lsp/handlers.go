/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package lsp

import (
	"encoding/json"
	"fmt"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"bennypowers.dev/reslink/hyperlink"
)

func (s *Server) initialize(
	context *glsp.Context,
	params *protocol.InitializeParams,
) (any, error) {
	s.host.bind(context)

	ws := Workspace{Root: workspaceRoot(params)}
	if params.InitializationOptions != nil {
		options, err := json.Marshal(params.InitializationOptions)
		if err != nil {
			return nil, fmt.Errorf("reading initializationOptions: %w", err)
		}
		ws.Options = options
	}

	engine, err := s.factory(s.ctx, ws, s.host)
	if err != nil {
		return nil, fmt.Errorf("configuring workspace %s: %w", ws.Root, err)
	}
	s.mu.Lock()
	s.engine = engine
	s.mu.Unlock()

	capabilities := s.handler.CreateServerCapabilities()
	syncKind := protocol.TextDocumentSyncKindIncremental
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: &protocol.True,
		Change:    &syncKind,
	}
	capabilities.DefinitionProvider = true
	capabilities.HoverProvider = true
	capabilities.ExecuteCommandProvider = &protocol.ExecuteCommandOptions{
		Commands: []string{OpenCommand},
	}

	s.log.Infof("initialized workspace %q", ws.Root)
	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    s.name,
			Version: &s.version,
		},
	}, nil
}

func (s *Server) initialized(
	context *glsp.Context,
	params *protocol.InitializedParams,
) error {
	s.host.bind(context)
	return nil
}

func (s *Server) shutdown(context *glsp.Context) error {
	s.log.Info("shutdown")
	s.cancel()
	return nil
}

func (s *Server) textDocumentDidOpen(
	context *glsp.Context,
	params *protocol.DidOpenTextDocumentParams,
) error {
	uri := params.TextDocument.URI
	s.docs.open(uri, params.TextDocument.Text)
	s.invalidate(uri)
	return nil
}

func (s *Server) textDocumentDidChange(
	context *glsp.Context,
	params *protocol.DidChangeTextDocumentParams,
) error {
	uri := params.TextDocument.URI
	if err := s.docs.apply(uri, params.ContentChanges); err != nil {
		return err
	}
	s.invalidate(uri)
	return nil
}

func (s *Server) textDocumentDidClose(
	context *glsp.Context,
	params *protocol.DidCloseTextDocumentParams,
) error {
	uri := params.TextDocument.URI
	s.docs.close(uri)
	s.invalidate(uri)
	return nil
}

func (s *Server) textDocumentDefinition(
	context *glsp.Context,
	params *protocol.DefinitionParams,
) (any, error) {
	engine := s.currentEngine()
	if engine == nil {
		return nil, nil
	}
	doc, offset, err := s.document(params.TextDocument.URI, params.Position)
	if err != nil {
		return nil, err
	}

	result := engine.Resolve(doc, offset)
	if !result.Valid() {
		return nil, nil
	}
	locations := make([]protocol.Location, 0, len(result.Files))
	for _, f := range result.Presented() {
		locations = append(locations, protocol.Location{
			URI:   pathToURI(f.Path),
			Range: protocol.Range{},
		})
	}
	return locations, nil
}

func (s *Server) textDocumentHover(
	context *glsp.Context,
	params *protocol.HoverParams,
) (*protocol.Hover, error) {
	engine := s.currentEngine()
	if engine == nil {
		return nil, nil
	}
	doc, offset, err := s.document(params.TextDocument.URI, params.Position)
	if err != nil {
		return nil, err
	}

	text, ok := engine.Describe(doc, offset)
	if !ok {
		return nil, nil
	}
	r := rangeOf(doc.Text, engine.SpanOf(doc, offset))
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: text,
		},
		Range: &r,
	}, nil
}

func (s *Server) workspaceExecuteCommand(
	context *glsp.Context,
	params *protocol.ExecuteCommandParams,
) (any, error) {
	if params.Command != OpenCommand {
		return nil, fmt.Errorf("unknown command %q", params.Command)
	}
	engine := s.currentEngine()
	if engine == nil {
		return nil, nil
	}

	uri, pos, err := openArguments(params.Arguments)
	if err != nil {
		return nil, err
	}
	doc, offset, err := s.document(uri, pos)
	if err != nil {
		return nil, err
	}

	// Replies to the window requests Activate sends are read on the
	// connection loop that is running this handler.
	s.activations.Go(func() {
		if !engine.Activate(s.ctx, doc, offset) {
			s.log.Debugf("nothing opened for %s at %d", doc.Path, offset)
		}
	})
	return nil, nil
}

// document returns the open or on-disk document at uri and the byte offset
// of pos in it.
func (s *Server) document(uri protocol.DocumentUri, pos protocol.Position) (hyperlink.Document, int, error) {
	path, err := uriToPath(uri)
	if err != nil {
		return hyperlink.Document{}, 0, err
	}
	text, ok := s.docs.get(uri)
	if !ok {
		text, err = s.fs.ReadFile(path)
		if err != nil {
			return hyperlink.Document{}, 0, fmt.Errorf("reading %s: %w", path, err)
		}
	}
	return hyperlink.Document{Path: path, Text: text}, offsetOf(text, pos), nil
}

func (s *Server) invalidate(uri protocol.DocumentUri) {
	engine := s.currentEngine()
	if engine == nil {
		return
	}
	if path, err := uriToPath(uri); err == nil {
		engine.Invalidate(path)
	}
}

// openArguments decodes [uri, line, character].
func openArguments(args []any) (protocol.DocumentUri, protocol.Position, error) {
	if len(args) != 3 {
		return "", protocol.Position{}, fmt.Errorf("%s expects [uri, line, character], got %d arguments", OpenCommand, len(args))
	}
	uri, ok := args[0].(string)
	if !ok {
		return "", protocol.Position{}, fmt.Errorf("%s: uri must be a string", OpenCommand)
	}
	line, ok1 := args[1].(float64)
	character, ok2 := args[2].(float64)
	if !ok1 || !ok2 || line < 0 || character < 0 {
		return "", protocol.Position{}, fmt.Errorf("%s: line and character must be non-negative numbers", OpenCommand)
	}
	return uri, protocol.Position{
		Line:      protocol.UInteger(line),
		Character: protocol.UInteger(character),
	}, nil
}

func workspaceRoot(params *protocol.InitializeParams) string {
	if len(params.WorkspaceFolders) > 0 {
		if path, err := uriToPath(params.WorkspaceFolders[0].URI); err == nil {
			return path
		}
	}
	if params.RootURI != nil {
		if path, err := uriToPath(*params.RootURI); err == nil {
			return path
		}
	}
	if params.RootPath != nil {
		return *params.RootPath
	}
	return ""
}

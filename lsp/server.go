// Copyright 2024 The Funlet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lsp implements the Funlet language server.
//
// The server is a thin adapter between the editor protocol and the
// analysis packages: every document event re-runs the parser and binder
// over the full document text, and the on-demand features (formatting,
// go-to-definition) read the most recently cached successful analyses.
// No recoverable condition is surfaced as a protocol error; syntax errors
// and unbound names become diagnostics, and a missing cache becomes an
// empty result.
package lsp

import (
	"os"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"github.com/LuKuangChen/Learn-LSP/syntax"
)

const serverName = "funlet-ls"

// Settings mirrors the configuration section the client pushes with
// workspace/didChangeConfiguration.
type Settings struct {
	MaxNumberOfProblems int
}

var defaultSettings = Settings{MaxNumberOfProblems: 100}

// Server owns the open documents, the client-pushed settings, and the
// protocol handler table.
type Server struct {
	handler protocol.Handler
	docs    *DocumentStore
	version string

	mu       sync.Mutex
	settings Settings

	exitFn func(code int) // replaced in tests
}

// New returns a server ready to run. version is reported to the client in
// the initialize response.
func New(version string) *Server {
	s := &Server{
		docs:     NewDocumentStore(),
		settings: defaultSettings,
		version:  version,
		exitFn:   os.Exit,
	}
	s.handler = protocol.Handler{
		Initialize:                      s.initialize,
		Initialized:                     s.initialized,
		Shutdown:                        s.shutdown,
		SetTrace:                        s.setTrace,
		Exit:                            s.exit,
		TextDocumentDidOpen:             s.textDocumentDidOpen,
		TextDocumentDidChange:           s.textDocumentDidChange,
		TextDocumentDidClose:            s.textDocumentDidClose,
		TextDocumentFormatting:          s.textDocumentFormatting,
		TextDocumentDefinition:          s.textDocumentDefinition,
		TextDocumentCompletion:          s.textDocumentCompletion,
		CompletionItemResolve:           s.completionItemResolve,
		WorkspaceDidChangeConfiguration: s.workspaceDidChangeConfiguration,
	}
	return s
}

// RunStdio serves the protocol over stdin/stdout until the client
// disconnects.
func (s *Server) RunStdio(debug bool) error {
	return server.NewServer(&s.handler, serverName, debug).RunStdio()
}

func (s *Server) currentSettings() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// --- Lifecycle ---

func (s *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := s.handler.CreateServerCapabilities()
	capabilities.TextDocumentSync = protocol.TextDocumentSyncKindFull
	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    serverName,
			Version: &s.version,
		},
	}, nil
}

func (s *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (s *Server) shutdown(ctx *glsp.Context) error {
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (s *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) exit(ctx *glsp.Context) error {
	s.exitFn(0)
	return nil
}

// --- Document lifecycle ---

func (s *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	doc := s.docs.Open(params.TextDocument.URI, params.TextDocument.Version, params.TextDocument.Text)
	s.publishDiagnostics(ctx, doc)
	return nil
}

func (s *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	// Sync is full-text: each change event carries the whole document.
	for _, change := range params.ContentChanges {
		var text string
		switch change := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			text = change.Text
		case protocol.TextDocumentContentChangeEvent:
			text = change.Text
		default:
			continue
		}
		doc := s.docs.Change(params.TextDocument.URI, params.TextDocument.Version, text)
		s.publishDiagnostics(ctx, doc)
	}
	return nil
}

func (s *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.Close(params.TextDocument.URI)
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []protocol.Diagnostic{},
	})
	return nil
}

// publishDiagnostics recomputes and publishes the document's diagnostic
// list, replacing whatever the client holds for this URI.
func (s *Server) publishDiagnostics(ctx *glsp.Context, doc *Document) {
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         doc.URI,
		Diagnostics: diagnostics(doc, s.currentSettings().MaxNumberOfProblems),
	})
}

// --- On-demand features ---

// textDocumentFormatting returns one whole-document edit replacing the
// text with its canonical rendering. A document that is unknown, failed to
// parse, or is already canonical produces no edits.
func (s *Server) textDocumentFormatting(ctx *glsp.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.Get(params.TextDocument.URI)
	if doc == nil || doc.Tree == nil {
		return nil, nil
	}
	formatted := syntax.Render(doc.Tree)
	if formatted == doc.Text {
		return nil, nil
	}
	return []protocol.TextEdit{{
		Range:   fullRange(doc.Text),
		NewText: formatted,
	}}, nil
}

// textDocumentDefinition resolves the identifier under the cursor to the
// location of its binder in the same document. Unknown documents, failed
// parses, unbound names, and positions outside any identifier all produce
// a nil result, never an error.
func (s *Server) textDocumentDefinition(ctx *glsp.Context, params *protocol.DefinitionParams) (any, error) {
	doc := s.docs.Get(params.TextDocument.URI)
	if doc == nil || doc.Table == nil {
		return nil, nil
	}
	spans := doc.Table.DefinitionsAt(fromPosition(params.Position))
	if len(spans) == 0 {
		return nil, nil
	}
	locations := make([]protocol.Location, len(spans))
	for i, span := range spans {
		locations[i] = protocol.Location{URI: doc.URI, Range: toRange(span)}
	}
	return locations, nil
}

// --- Completion ---

// Completion is a static, content-independent keyword list; it is not
// derived from the document's analyses.
func (s *Server) textDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	kind := protocol.CompletionItemKindKeyword
	return []protocol.CompletionItem{
		{Label: "function", Kind: &kind},
		{Label: "let", Kind: &kind},
		{Label: "end", Kind: &kind},
	}, nil
}

func (s *Server) completionItemResolve(ctx *glsp.Context, item *protocol.CompletionItem) (*protocol.CompletionItem, error) {
	switch item.Label {
	case "function":
		item.Detail = strptr("function(x): body end")
		item.Documentation = "A single-parameter function abstraction."
	case "let":
		item.Detail = strptr("let x = init body")
		item.Documentation = "Binds a name for use in the body that follows; the name is not visible in its own initializer."
	case "end":
		item.Detail = strptr("closes a function body")
	}
	return item, nil
}

func strptr(s string) *string { return &s }

// --- Settings ---

func (s *Server) workspaceDidChangeConfiguration(ctx *glsp.Context, params *protocol.DidChangeConfigurationParams) error {
	settings := settingsFrom(params.Settings)
	s.mu.Lock()
	s.settings = settings
	s.mu.Unlock()
	return nil
}

// settingsFrom extracts the funlet section from the untyped settings blob
// the client pushes. Missing or malformed fields fall back to defaults.
func settingsFrom(raw any) Settings {
	settings := defaultSettings
	root, ok := raw.(map[string]any)
	if !ok {
		return settings
	}
	section, ok := root["funlet"].(map[string]any)
	if !ok {
		return settings
	}
	if n, ok := section["maxNumberOfProblems"].(float64); ok && n >= 0 {
		settings.MaxNumberOfProblems = int(n)
	}
	return settings
}

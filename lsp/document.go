// Copyright 2024 The Funlet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lsp

import (
	"sync"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/LuKuangChen/Learn-LSP/resolve"
	"github.com/LuKuangChen/Learn-LSP/syntax"
)

// A Document is one open editor document together with the analyses of its
// current text. Tree and Table are non-nil only when the last parse
// succeeded; a failed parse records ParseErr instead, so stale analyses
// are never served.
type Document struct {
	URI     protocol.DocumentUri
	Version int32
	Text    string

	Tree     syntax.Term
	Table    resolve.Table
	ParseErr *syntax.Error
}

// analyze runs the parser and, on success, the binder over the document's
// current text. The previous results are discarded unconditionally first.
func (d *Document) analyze() {
	d.Tree, d.Table, d.ParseErr = nil, nil, nil
	tree, err := syntax.Parse(string(d.URI), d.Text)
	if err != nil {
		d.ParseErr = err.(*syntax.Error)
		return
	}
	d.Tree = tree
	d.Table = resolve.Term(tree)
}

// A DocumentStore holds the open documents, keyed by URI.
//
// Entries are replaced wholesale on every change. A *Document handed out
// by the store is an immutable snapshot: a later change installs a new
// entry rather than mutating the old one, so readers need no lock beyond
// the map's own.
type DocumentStore struct {
	mu   sync.Mutex
	docs map[protocol.DocumentUri]*Document
}

func NewDocumentStore() *DocumentStore {
	return &DocumentStore{docs: make(map[protocol.DocumentUri]*Document)}
}

// Open analyzes text and records it as the document's current state.
func (s *DocumentStore) Open(uri protocol.DocumentUri, version int32, text string) *Document {
	doc := &Document{URI: uri, Version: version, Text: text}
	doc.analyze()
	s.mu.Lock()
	s.docs[uri] = doc
	s.mu.Unlock()
	return doc
}

// Change replaces the document's text and re-analyzes it. Document sync is
// full-text, so a change is indistinguishable from reopening.
func (s *DocumentStore) Change(uri protocol.DocumentUri, version int32, text string) *Document {
	return s.Open(uri, version, text)
}

// Get returns the document for uri, or nil if it is not open.
func (s *DocumentStore) Get(uri protocol.DocumentUri) *Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.docs[uri]
}

// Close removes the document for uri, if open.
func (s *DocumentStore) Close(uri protocol.DocumentUri) {
	s.mu.Lock()
	delete(s.docs, uri)
	s.mu.Unlock()
}

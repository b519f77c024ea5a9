// Copyright 2024 The Funlet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentStore(t *testing.T) {
	store := NewDocumentStore()

	doc := store.Open("file:///a.fun", 1, "x")
	require.NotNil(t, doc)
	assert.Equal(t, doc, store.Get("file:///a.fun"))
	assert.Nil(t, store.Get("file:///b.fun"))

	changed := store.Change("file:///a.fun", 2, "function(y): y end")
	assert.Equal(t, int32(2), changed.Version)
	assert.Equal(t, "function(y): y end", changed.Text)
	assert.Equal(t, changed, store.Get("file:///a.fun"))

	store.Close("file:///a.fun")
	assert.Nil(t, store.Get("file:///a.fun"))
}

func TestDocumentAnalyze(t *testing.T) {
	store := NewDocumentStore()

	doc := store.Open("file:///a.fun", 1, "let x = y x")
	require.Nil(t, doc.ParseErr)
	require.NotNil(t, doc.Tree)
	require.NotNil(t, doc.Table)
	assert.Len(t, doc.Table.Unbound(), 1)

	// A failed parse clears the cached analyses.
	doc = store.Change("file:///a.fun", 2, "let x =")
	require.NotNil(t, doc.ParseErr)
	assert.Nil(t, doc.Tree)
	assert.Nil(t, doc.Table)
}

// Copyright 2024 The Funlet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package resolve computes the lexical binding structure of a Funlet
// syntax tree.
//
// Resolution attaches nothing to the tree. It produces a flat table with
// one record per identifier, in pre-order, which both the diagnostics
// layer and the go-to-definition query read. Computing the table once per
// document and sharing it between consumers keeps the two features from
// ever disagreeing about what a name refers to.
package resolve

import "github.com/LuKuangChen/Learn-LSP/syntax"

// A Binding records the resolution of one identifier.
//
// For an identifier used in expression position, Target is the nearest
// enclosing binder of the same name, or nil if the name is unbound. For
// the binding identifier of a Fun parameter or Let name, Target is the
// identifier itself, marking a definition site.
type Binding struct {
	Occurrence *syntax.Var
	Target     *syntax.Var
}

// A Table holds exactly one Binding per Var node of a tree, in the tree's
// pre-order traversal order.
type Table []Binding

// Term resolves every identifier of t and returns the binding table.
func Term(t syntax.Term) Table {
	r := &resolver{}
	r.term(t, nil)
	return r.table
}

type resolver struct {
	table Table
}

func (r *resolver) term(t syntax.Term, e *env) {
	switch t := t.(type) {
	case *syntax.Var:
		r.table = append(r.table, Binding{Occurrence: t, Target: e.lookup(t.Name)})
	case *syntax.Fun:
		r.table = append(r.table, Binding{Occurrence: t.Param, Target: t.Param})
		r.term(t.Body, e.bind(t.Param.Name, t.Param))
	case *syntax.App:
		r.term(t.Fn, e)
		r.term(t.Arg, e)
	case *syntax.Let:
		r.table = append(r.table, Binding{Occurrence: t.Name, Target: t.Name})
		// The bound name is not in scope for its own initializer.
		r.term(t.Init, e)
		r.term(t.Body, e.bind(t.Name.Name, t.Name))
	}
}

// An env is a persistent association list from names to binder
// identifiers. Extending an env allocates a new head and shares the tail,
// so a nested scope's extension is invisible to sibling scopes and deep
// let/function chains cost one node per binder, not a map copy.
type env struct {
	name   string
	binder *syntax.Var
	parent *env
}

func (e *env) bind(name string, binder *syntax.Var) *env {
	return &env{name: name, binder: binder, parent: e}
}

func (e *env) lookup(name string) *syntax.Var {
	for ; e != nil; e = e.parent {
		if e.name == name {
			return e.binder
		}
	}
	return nil
}

// Unbound returns the occurrences that resolved to no binder, in table
// order.
func (t Table) Unbound() []*syntax.Var {
	var vs []*syntax.Var
	for _, b := range t {
		if b.Target == nil {
			vs = append(vs, b.Occurrence)
		}
	}
	return vs
}

// DefinitionsAt returns the spans of the binder identifiers of every
// occurrence whose span contains pos, both boundaries inclusive.
//
// The result is a list because the contract tolerates overlapping
// occurrences, though the grammar never produces them. Unbound occurrences
// never contribute, and a position outside every occurrence yields an
// empty result, not an error.
func (t Table) DefinitionsAt(pos syntax.Position) []syntax.Span {
	var spans []syntax.Span
	for _, b := range t {
		if b.Target == nil {
			continue
		}
		if syntax.SpanOf(b.Occurrence).Contains(pos) {
			spans = append(spans, syntax.SpanOf(b.Target))
		}
	}
	return spans
}

// Copyright 2024 The Funlet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package syntax provides a Funlet parser and abstract syntax tree.
//
// Funlet is a minimal expression language: variables, single-parameter
// function abstraction, application, and local let bindings. Every node
// records its exact source extent, which downstream analyses use verbatim
// for diagnostics and location answers.
package syntax

// A Node is a node in a Funlet syntax tree.
type Node interface {
	// Span returns the start and end position of the node.
	Span() (start, end Position)
}

// Start returns the start position of the node.
func Start(n Node) Position {
	start, _ := n.Span()
	return start
}

// End returns the end position of the node.
func End(n Node) Position {
	_, end := n.Span()
	return end
}

// A Term is a Funlet expression.
type Term interface {
	Node
	term()
}

func (*Var) term() {}
func (*Fun) term() {}
func (*App) term() {}
func (*Let) term() {}

// A Var represents an identifier, either a use in expression position or
// the binding identifier of a Fun parameter or Let name.
type Var struct {
	NamePos Position
	Name    string
}

func (x *Var) Span() (start, end Position) {
	return x.NamePos, x.NamePos.add(x.Name)
}

// A Fun represents a single-parameter function abstraction:
//
//	function(x): body end
type Fun struct {
	Function Position // position of "function" keyword
	Param    *Var
	Body     Term
	End      Position // position just after "end"
}

func (x *Fun) Span() (start, end Position) {
	return x.Function, x.End
}

// An App represents an application: Fn(Arg).
// Chained arguments associate left: f(a)(b) is App(App(f,a),b).
type App struct {
	Fn     Term
	Arg    Term
	Rparen Position
}

func (x *App) Span() (start, end Position) {
	start, _ = x.Fn.Span()
	return start, x.Rparen.add(")")
}

// A Let represents a local binding:
//
//	let x = init body
//
// The bound name is in scope within Body but not within Init.
type Let struct {
	Let  Position // position of "let" keyword
	Name *Var
	Init Term
	Body Term
}

func (x *Let) Span() (start, end Position) {
	_, end = x.Body.Span()
	return x.Let, end
}

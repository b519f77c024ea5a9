// Copyright 2024 The Funlet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

import "strings"

// Render formats a syntax tree as canonical Funlet source text.
//
// Rendering is total and a pure function of the tree: it never fails, and
// reparsing the result yields a structurally equal tree. Function and let
// forms are laid out over three lines with a two-space indent per nesting
// level; applications stay inline regardless of depth.
func Render(t Term) string {
	var b strings.Builder
	render(&b, t, 0)
	return b.String()
}

const indentUnit = "  "

func writeIndent(b *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString(indentUnit)
	}
}

func render(b *strings.Builder, t Term, depth int) {
	switch t := t.(type) {
	case *Var:
		b.WriteString(t.Name)
	case *Fun:
		b.WriteString("function(")
		b.WriteString(t.Param.Name)
		b.WriteString("):\n")
		writeIndent(b, depth+1)
		render(b, t.Body, depth+1)
		b.WriteString("\n")
		writeIndent(b, depth)
		b.WriteString("end")
	case *App:
		render(b, t.Fn, depth)
		b.WriteString("(")
		render(b, t.Arg, depth)
		b.WriteString(")")
	case *Let:
		// The body continues at the let's own depth: a chain of lets
		// reads as a flat sequence of bindings, not a staircase.
		b.WriteString("let ")
		b.WriteString(t.Name.Name)
		b.WriteString(" =\n")
		writeIndent(b, depth+1)
		render(b, t.Init, depth+1)
		b.WriteString("\n")
		writeIndent(b, depth)
		render(b, t.Body, depth)
	}
}

// Copyright 2024 The Funlet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

import "fmt"

// A Position describes the location of a character of Funlet source text.
//
// Lines and columns are zero-based and counted in characters, matching the
// coordinate model of the editor protocol: a newline increments Line and
// resets Col, and every other character increments Col.
type Position struct {
	Line int32
	Col  int32
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// add returns the position immediately after s, which must not contain a
// newline.
func (p Position) add(s string) Position {
	p.Col += int32(len(s))
	return p
}

// Before reports whether p is strictly before q in source order.
func (p Position) Before(q Position) bool {
	return p.Line < q.Line || p.Line == q.Line && p.Col < q.Col
}

// A Span delimits the source extent of a syntax node.
// End is the position immediately after the last character of the node.
type Span struct {
	Start, End Position
}

// SpanOf returns n's extent as a Span value.
func SpanOf(n Node) Span {
	start, end := n.Span()
	return Span{Start: start, End: end}
}

// Contains reports whether the span contains pos.
// Both boundary positions are inclusive, so a cursor sitting just after the
// last character of an identifier still hits it.
func (s Span) Contains(pos Position) bool {
	return !pos.Before(s.Start) && !s.End.Before(pos)
}

// A Cursor is an immutable scanning position within a source document.
//
// Cursors are passed and returned by value, never aliased and mutated, so
// speculative lookahead such as StartsWith cannot corrupt parser state.
// Reading past the end of the input is a contract violation and panics;
// the parser's grammar decisions guarantee it never happens.
type Cursor struct {
	src string
	off int
	pos Position
}

// NewCursor returns a cursor at the start of src, position 0:0.
func NewCursor(src string) Cursor {
	return Cursor{src: src}
}

// EOF reports whether the cursor has consumed the entire input.
func (c Cursor) EOF() bool {
	return c.off >= len(c.src)
}

// Pos returns the cursor's current source position.
func (c Cursor) Pos() Position {
	return c.pos
}

// Peek returns the character at the cursor without consuming it.
func (c Cursor) Peek() byte {
	if c.EOF() {
		panic("syntax: cursor read past end of input")
	}
	return c.src[c.off]
}

// Advance returns a cursor one character past c, tracking line and column.
func (c Cursor) Advance() Cursor {
	if c.Peek() == '\n' {
		c.pos.Line++
		c.pos.Col = 0
	} else {
		c.pos.Col++
	}
	c.off++
	return c
}

// StartsWith reports whether the unconsumed input begins with lit.
func (c Cursor) StartsWith(lit string) bool {
	return len(c.src)-c.off >= len(lit) && c.src[c.off:c.off+len(lit)] == lit
}

// Matches reports whether the current character satisfies pred.
// It is false at end of input.
func (c Cursor) Matches(pred func(byte) bool) bool {
	return !c.EOF() && pred(c.Peek())
}

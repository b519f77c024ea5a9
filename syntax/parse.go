// Copyright 2024 The Funlet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

import "fmt"

// An Error describes the first point at which a document deviates from the
// Funlet grammar. Parsing aborts immediately: there is no recovery and no
// partial tree.
type Error struct {
	Path   string
	Pos    Position
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s:%s: %s", e.Path, e.Pos, e.Reason)
}

// Parse parses the complete source text of a Funlet document.
//
// The grammar:
//
//	term     = atom { "(" term ")" }       // arguments fold left into App
//	atom     = funAtom | letAtom | variable
//	funAtom  = "function(" variable "):" space term space "end"
//	letAtom  = "let " variable space "=" space term space term
//	variable = letter {letter}             // lowercase ASCII only
//	space    = one or more of ' ', '\n', '\t'
//
// Separators are mandatory: a missing space is a syntax error. After the
// top-level term the input must be exactly empty. Parsing is linear in the
// length of src; every decision uses fixed-length lookahead only.
func Parse(path, src string) (Term, error) {
	p := parser{path: path}
	x, c, err := p.term(NewCursor(src))
	if err != nil {
		return nil, err
	}
	if !c.EOF() {
		return nil, p.fail(c, "Expecting EOF")
	}
	return x, nil
}

type parser struct {
	path string
}

func (p *parser) fail(c Cursor, reason string) *Error {
	return &Error{Path: p.path, Pos: c.Pos(), Reason: reason}
}

// lit consumes the literal s.
func (p *parser) lit(c Cursor, s string) (Cursor, error) {
	if !c.StartsWith(s) {
		return c, p.fail(c, "Expecting '"+s+"'")
	}
	for i := 0; i < len(s); i++ {
		c = c.Advance()
	}
	return c, nil
}

func isSpace(b byte) bool { return b == ' ' || b == '\n' || b == '\t' }
func isLetter(b byte) bool { return 'a' <= b && b <= 'z' }

// space consumes a maximal run of at least one whitespace character.
func (p *parser) space(c Cursor) (Cursor, error) {
	if !c.Matches(isSpace) {
		return c, p.fail(c, "Expecting a space")
	}
	for c.Matches(isSpace) {
		c = c.Advance()
	}
	return c, nil
}

// variable parses a maximal run of lowercase ASCII letters.
func (p *parser) variable(c Cursor) (*Var, Cursor, error) {
	if !c.Matches(isLetter) {
		return nil, c, p.fail(c, "Expecting a variable")
	}
	pos, start := c.Pos(), c.off
	for c.Matches(isLetter) {
		c = c.Advance()
	}
	return &Var{NamePos: pos, Name: c.src[start:c.off]}, c, nil
}

// term parses an atom followed by zero or more parenthesized arguments.
func (p *parser) term(c Cursor) (Term, Cursor, error) {
	x, c, err := p.atom(c)
	if err != nil {
		return nil, c, err
	}
	for c.StartsWith("(") {
		c = c.Advance()
		arg, c2, err := p.term(c)
		if err != nil {
			return nil, c2, err
		}
		rparen := c2.Pos()
		c, err = p.lit(c2, ")")
		if err != nil {
			return nil, c, err
		}
		x = &App{Fn: x, Arg: arg, Rparen: rparen}
	}
	return x, c, nil
}

func (p *parser) atom(c Cursor) (Term, Cursor, error) {
	switch {
	case c.StartsWith("function("):
		return p.funAtom(c)
	case c.StartsWith("let "):
		return p.letAtom(c)
	default:
		v, c, err := p.variable(c)
		if err != nil {
			return nil, c, err
		}
		return v, c, nil
	}
}

func (p *parser) funAtom(c Cursor) (Term, Cursor, error) {
	start := c.Pos()
	c, err := p.lit(c, "function")
	if err != nil {
		return nil, c, err
	}
	if c, err = p.lit(c, "("); err != nil {
		return nil, c, err
	}
	param, c, err := p.variable(c)
	if err != nil {
		return nil, c, err
	}
	if c, err = p.lit(c, ")"); err != nil {
		return nil, c, err
	}
	if c, err = p.lit(c, ":"); err != nil {
		return nil, c, err
	}
	if c, err = p.space(c); err != nil {
		return nil, c, err
	}
	body, c, err := p.term(c)
	if err != nil {
		return nil, c, err
	}
	if c, err = p.space(c); err != nil {
		return nil, c, err
	}
	if c, err = p.lit(c, "end"); err != nil {
		return nil, c, err
	}
	return &Fun{Function: start, Param: param, Body: body, End: c.Pos()}, c, nil
}

func (p *parser) letAtom(c Cursor) (Term, Cursor, error) {
	start := c.Pos()
	c, err := p.lit(c, "let ")
	if err != nil {
		return nil, c, err
	}
	name, c, err := p.variable(c)
	if err != nil {
		return nil, c, err
	}
	if c, err = p.space(c); err != nil {
		return nil, c, err
	}
	if c, err = p.lit(c, "="); err != nil {
		return nil, c, err
	}
	if c, err = p.space(c); err != nil {
		return nil, c, err
	}
	init, c, err := p.term(c)
	if err != nil {
		return nil, c, err
	}
	if c, err = p.space(c); err != nil {
		return nil, c, err
	}
	body, c, err := p.term(c)
	if err != nil {
		return nil, c, err
	}
	return &Let{Let: start, Name: name, Init: init, Body: body}, c, nil
}

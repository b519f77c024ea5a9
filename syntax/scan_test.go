// Copyright 2024 The Funlet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

import "testing"

func TestCursorAdvance(t *testing.T) {
	c := NewCursor("ab\ncd")
	want := []struct {
		ch   byte
		line int32
		col  int32
	}{
		{'a', 0, 0},
		{'b', 0, 1},
		{'\n', 0, 2},
		{'c', 1, 0},
		{'d', 1, 1},
	}
	for i, w := range want {
		if c.EOF() {
			t.Fatalf("step %d: unexpected EOF", i)
		}
		if got := c.Peek(); got != w.ch {
			t.Errorf("step %d: Peek() = %q, want %q", i, got, w.ch)
		}
		if got := c.Pos(); got.Line != w.line || got.Col != w.col {
			t.Errorf("step %d: Pos() = %s, want %d:%d", i, got, w.line, w.col)
		}
		c = c.Advance()
	}
	if !c.EOF() {
		t.Errorf("cursor not at EOF after consuming all input")
	}
	if got := c.Pos(); got.Line != 1 || got.Col != 2 {
		t.Errorf("final Pos() = %s, want 1:2", got)
	}
}

func TestCursorValueSemantics(t *testing.T) {
	c := NewCursor("xy")
	d := c.Advance()
	if got := c.Pos(); got.Col != 0 {
		t.Errorf("original cursor moved: Pos() = %s", got)
	}
	if got := d.Pos(); got.Col != 1 {
		t.Errorf("advanced cursor Pos() = %s, want 0:1", got)
	}
}

func TestCursorStartsWith(t *testing.T) {
	c := NewCursor("let x")
	for _, test := range []struct {
		lit  string
		want bool
	}{
		{"let ", true},
		{"let x", true},
		{"let xy", false}, // longer than the input
		{"function(", false},
		{"", true},
	} {
		if got := c.StartsWith(test.lit); got != test.want {
			t.Errorf("StartsWith(%q) = %v, want %v", test.lit, got, test.want)
		}
	}
}

func TestCursorMatches(t *testing.T) {
	c := NewCursor("a")
	if !c.Matches(isLetter) {
		t.Errorf("Matches(isLetter) = false at %q", 'a')
	}
	if c.Matches(isSpace) {
		t.Errorf("Matches(isSpace) = true at %q", 'a')
	}
	if c.Advance().Matches(isLetter) {
		t.Errorf("Matches at EOF = true, want false")
	}
}

func TestCursorPeekPastEnd(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Peek past end did not panic")
		}
	}()
	NewCursor("").Peek()
}

func TestPositionBefore(t *testing.T) {
	for _, test := range []struct {
		p, q Position
		want bool
	}{
		{Position{0, 0}, Position{0, 1}, true},
		{Position{0, 5}, Position{1, 0}, true},
		{Position{1, 0}, Position{0, 5}, false},
		{Position{2, 3}, Position{2, 3}, false},
	} {
		if got := test.p.Before(test.q); got != test.want {
			t.Errorf("%s.Before(%s) = %v, want %v", test.p, test.q, got, test.want)
		}
	}
}

func TestSpanContains(t *testing.T) {
	span := Span{Start: Position{0, 4}, End: Position{0, 7}}
	for _, test := range []struct {
		pos  Position
		want bool
	}{
		{Position{0, 3}, false},
		{Position{0, 4}, true}, // start boundary is inclusive
		{Position{0, 5}, true},
		{Position{0, 7}, true}, // end boundary is inclusive
		{Position{0, 8}, false},
		{Position{1, 5}, false},
	} {
		if got := span.Contains(test.pos); got != test.want {
			t.Errorf("Contains(%s) = %v, want %v", test.pos, got, test.want)
		}
	}
}

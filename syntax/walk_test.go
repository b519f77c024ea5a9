// Copyright 2024 The Funlet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax_test

import (
	"bytes"
	"fmt"
	"log"
	"reflect"
	"strings"
	"testing"

	"github.com/LuKuangChen/Learn-LSP/syntax"
)

func TestWalk(t *testing.T) {
	const src = `let f = function(x): x(y) end f(z)`
	tree, err := syntax.Parse("test.fun", src)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	var depth int
	syntax.Walk(tree, func(n syntax.Node) bool {
		if n == nil {
			depth--
			return true
		}
		fmt.Fprintf(&buf, "%s%s\n",
			strings.Repeat("  ", depth),
			strings.TrimPrefix(reflect.TypeOf(n).String(), "*syntax."))
		depth++
		return true
	})
	got := strings.TrimSpace(buf.String())
	want := strings.TrimSpace(`
Let
  Var
  Fun
    Var
    App
      Var
      Var
  App
    Var
    Var`)
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestWalkPrune(t *testing.T) {
	tree, err := syntax.Parse("test.fun", "function(x): x(y) end")
	if err != nil {
		t.Fatal(err)
	}
	// Refusing to descend into the Fun must suppress all identifiers.
	var idents int
	syntax.Walk(tree, func(n syntax.Node) bool {
		if _, ok := n.(*syntax.Var); ok {
			idents++
		}
		_, isFun := n.(*syntax.Fun)
		return !isFun
	})
	if idents != 0 {
		t.Errorf("pruned walk visited %d identifiers, want 0", idents)
	}
}

// ExampleWalk enumerates the identifiers of a program in pre-order.
func ExampleWalk() {
	tree, err := syntax.Parse("example.fun", "let f = function(x): x(y) end f(z)")
	if err != nil {
		log.Fatal(err)
	}

	var idents []string
	syntax.Walk(tree, func(n syntax.Node) bool {
		if v, ok := n.(*syntax.Var); ok {
			idents = append(idents, v.Name)
		}
		return true
	})
	fmt.Println(strings.Join(idents, " "))

	// Output:
	// f x x y f z
}

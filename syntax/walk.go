// Copyright 2024 The Funlet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

import "fmt"

// Walk traverses a syntax tree in depth-first order: it calls f(n) for each
// node n, then, if f(n) is true, visits the children of n, then calls
// f(nil) to mark the end of n's children.
func Walk(n Node, f func(Node) bool) {
	if n == nil {
		panic("nil node")
	}
	if !f(n) {
		return
	}
	switch n := n.(type) {
	case *Var:
		// no children
	case *Fun:
		Walk(n.Param, f)
		Walk(n.Body, f)
	case *App:
		Walk(n.Fn, f)
		Walk(n.Arg, f)
	case *Let:
		Walk(n.Name, f)
		Walk(n.Init, f)
		Walk(n.Body, f)
	default:
		panic(fmt.Sprintf("unexpected node type: %T", n))
	}
	f(nil)
}

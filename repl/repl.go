// Copyright 2024 The Funlet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package repl provides a read/check/print loop for Funlet.
//
// It supports readline-style command editing. Because function and let
// forms usually span several lines, the REPL keeps reading continuation
// lines until the accumulated input parses, or a blank line gives up and
// reports the error. Well-formed input is echoed back in canonical form,
// followed by one note per identifier that resolves to no binding.
package repl

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/LuKuangChen/Learn-LSP/resolve"
	"github.com/LuKuangChen/Learn-LSP/syntax"
)

// REPL executes a read, check, print loop.
func REPL() {
	rl, err := readline.New(">>> ")
	if err != nil {
		PrintError(err)
		return
	}
	defer rl.Close()
	for {
		if err := rcp(rl); err != nil {
			if err == readline.ErrInterrupt {
				fmt.Println(err)
				continue
			}
			break
		}
	}
	fmt.Println()
}

// rcp reads, checks, and prints one term.
//
// It returns an error (possibly readline.ErrInterrupt) only if readline
// failed. Funlet errors are printed.
func rcp(rl *readline.Instance) error {
	rl.SetPrompt(">>> ")
	line, err := rl.Readline()
	if err != nil {
		return err
	}
	if strings.TrimSpace(line) == "" {
		return nil
	}

	input := line
	term, perr := syntax.Parse("<stdin>", input)
	for perr != nil {
		rl.SetPrompt("... ")
		line, err = rl.Readline()
		if err != nil {
			if err == io.EOF {
				break
			}
			return err
		}
		if line == "" {
			break
		}
		input += "\n" + line
		term, perr = syntax.Parse("<stdin>", input)
	}
	if perr != nil {
		PrintError(perr)
		return nil
	}

	fmt.Println(syntax.Render(term))
	for _, v := range resolve.Term(term).Unbound() {
		fmt.Printf("note: `%s` is not defined\n", v.Name)
	}
	return nil
}

// PrintError prints the error to stderr.
func PrintError(err error) {
	fmt.Fprintln(os.Stderr, err)
}

// Copyright 2024 The Funlet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/LuKuangChen/Learn-LSP/resolve"
	"github.com/LuKuangChen/Learn-LSP/syntax"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Parse files and report diagnostics",
	Long:  "Parse each file and report syntax errors and identifiers that are not defined.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

var (
	locLabel  = color.New(color.Bold)
	errLabel  = color.New(color.Bold, color.FgHiRed)
	warnLabel = color.New(color.Bold, color.FgHiYellow)
)

func runCheck(cmd *cobra.Command, args []string) error {
	reported := 0
	for _, path := range args {
		src, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		tree, err := syntax.Parse(path, string(src))
		if err != nil {
			perr := err.(*syntax.Error)
			fmt.Printf("%s %s %s\n",
				locLabel.Sprintf("%s:%s:", path, perr.Pos),
				errLabel.Sprint("error:"),
				perr.Reason)
			reported++
			continue
		}
		for _, v := range resolve.Term(tree).Unbound() {
			fmt.Printf("%s %s `%s` is not defined\n",
				locLabel.Sprintf("%s:%s:", path, syntax.Start(v)),
				warnLabel.Sprint("warning:"),
				v.Name)
			reported++
		}
	}
	if reported > 0 {
		return errors.New(plural(reported, "problem") + " found")
	}
	return nil
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// Copyright 2024 The Funlet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/LuKuangChen/Learn-LSP/syntax"
)

var fmtWrite bool

var fmtCmd = &cobra.Command{
	Use:   "fmt <file>...",
	Short: "Reformat files to canonical form",
	Long:  "Print each file's canonical formatting. Files with syntax errors are left alone.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFmt,
}

func init() {
	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "write result back to the source file instead of stdout")
}

func runFmt(cmd *cobra.Command, args []string) error {
	for _, path := range args {
		src, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		tree, err := syntax.Parse(path, string(src))
		if err != nil {
			return err
		}
		formatted := syntax.Render(tree)
		if fmtWrite {
			// The grammar accepts no trailing characters after the top-level
			// term, so the file is written without a final newline.
			if formatted != string(src) {
				if err := os.WriteFile(path, []byte(formatted), 0o644); err != nil {
					return err
				}
			}
		} else {
			fmt.Println(formatted)
		}
	}
	return nil
}

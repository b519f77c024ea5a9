// Copyright 2024 The Funlet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LuKuangChen/Learn-LSP/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive read/check/print loop",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Welcome to Funlet " + version)
		repl.REPL()
	},
}

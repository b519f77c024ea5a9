// Copyright 2024 The Funlet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/LuKuangChen/Learn-LSP/repl"
)

const version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "funlet",
	Short: "Funlet - analysis tools and language server for the Funlet language",
	Long: `Funlet parses, checks, and formats programs in the Funlet expression
language (variables, single-parameter functions, application, and let
bindings), and serves the same analyses to editors over the language
server protocol.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// A bare invocation on a terminal drops into the REPL, like any
		// interpreter; piped input gets the usage text instead.
		if term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Println("Welcome to Funlet " + version)
			repl.REPL()
			return nil
		}
		return cmd.Help()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the funlet version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("funlet " + version)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

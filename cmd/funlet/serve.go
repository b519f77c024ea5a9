// Copyright 2024 The Funlet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/LuKuangChen/Learn-LSP/lsp"
)

var serveDebug bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the language protocol over stdio",
	Long:  "Serve the Funlet language server over stdin/stdout for editor integrations.",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "log protocol traffic to stderr")
}

func runServe(cmd *cobra.Command, args []string) error {
	verbosity := 1
	if serveDebug {
		verbosity = 2
	}
	commonlog.Configure(verbosity, nil) // stderr; stdout belongs to the protocol
	return lsp.New(version).RunStdio(serveDebug)
}

// Copyright 2024 The Funlet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The funlet command analyzes Funlet source files and serves the language
// server used by editor integrations. With no arguments on a terminal, it
// starts a read/check/print loop.
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}

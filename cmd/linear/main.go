// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Command linear evaluates vector and matrix operations.
//
// Usage:
//
//	linear det '[1, 0, 0, 0, 0, 2, 0, 0, 0, 0, 3, 0, 0, 0, 0, 1]'
//	linear lerp '[1, 2, 3]' '[7, 8, 9]' 0.5
//	linear contains '[1, 1]' '[0, 0]' '[4, 0]' '[0, 4]'
package main

import (
	"fmt"
	"os"

	"github.com/gviegas/linear/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "linear:", err)
		os.Exit(1)
	}
}

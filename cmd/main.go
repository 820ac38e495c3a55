// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 lonelyowl13

// Package main is the entry point for the comfygen CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/lonelyowl13/comfyui-workflow-generator/cmd/internal"
)

func main() {
	if err := internal.Run(context.Background(), os.Getenv); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

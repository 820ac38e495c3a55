// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 lonelyowl13

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "comfygen",
		Short: "Generate and run typed ComfyUI workflow APIs",
		Long: `comfygen turns a ComfyUI node registry (object_info) into a typed
Python workflow-builder module, and can queue assembled workflows on a
running server.`,
	}

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newUploadCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 lonelyowl13

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lonelyowl13/comfyui-workflow-generator/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(version.Info())
			return nil
		},
	}
}

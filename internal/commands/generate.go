// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 lonelyowl13

package commands

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lonelyowl13/comfyui-workflow-generator/internal/comfy"
	"github.com/lonelyowl13/comfyui-workflow-generator/internal/config"
	"github.com/lonelyowl13/comfyui-workflow-generator/internal/generate"
	"github.com/lonelyowl13/comfyui-workflow-generator/internal/prompts"
	"github.com/lonelyowl13/comfyui-workflow-generator/internal/registry"
)

type generateOptions struct {
	output string
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate [path|url]",
		Short: "Generate a typed workflow API from a node registry",
		Long: `Generate a typed Python workflow-builder module from a ComfyUI node
registry. The source is either a local object_info.json file or the
base URL of a running ComfyUI server.`,
		Example: `  # From a saved registry dump
  comfygen generate object_info.json

  # From a running server
  comfygen generate http://127.0.0.1:8188

  # Custom output path
  comfygen generate object_info.json -o my_workflow_api.py`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := ""
			if len(args) > 0 {
				source = args[0]
			}
			return runGenerate(cmd, opts, source)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file (default workflow_api.py)")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts *generateOptions, source string) error {
	cfg, err := config.LoadDefault()
	if err != nil {
		return err
	}

	if source == "" {
		if err := prompts.RunGenerateForm(&source); err != nil {
			return err
		}
	}

	output := opts.output
	if output == "" {
		output = cfg.Output
	}

	var reg registry.Registry
	if isURL(source) {
		client := comfy.NewClient(source)
		data, err := client.FetchObjectInfo(cmd.Context())
		if err != nil {
			return err
		}
		reg, err = registry.Parse(data)
		if err != nil {
			return err
		}
	} else {
		dir, file := filepath.Split(source)
		if dir == "" {
			dir = "."
		}
		loader := registry.NewLoader(os.DirFS(dir))
		reg, err = loader.LoadFile(file)
		if err != nil {
			return err
		}
	}

	if err := generate.WriteFile(reg, output); err != nil {
		return err
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Source", Value: source},
		{Label: "Node types", Value: strconv.Itoa(len(reg))},
		{Label: "Output", Value: output},
	}, "Workflow API generated")
	return nil
}

func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 lonelyowl13

package commands

import (
	"github.com/spf13/cobra"

	"github.com/lonelyowl13/comfyui-workflow-generator/internal/comfy"
	"github.com/lonelyowl13/comfyui-workflow-generator/internal/config"
	"github.com/lonelyowl13/comfyui-workflow-generator/internal/prompts"
)

type uploadOptions struct {
	server string
	kind   string
	name   string
}

func newUploadCmd() *cobra.Command {
	opts := &uploadOptions{}

	cmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload an input asset to a ComfyUI server",
		Long: `Upload a local file to the server's upload endpoint and print the
stored name to use in workflow inputs.`,
		Example: `  # Upload an input image
  comfygen upload photo.png

  # Upload under a fixed stored name
  comfygen upload photo.png --name input_01.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpload(cmd, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.server, "server", "", "ComfyUI server base URL (default http://127.0.0.1:8188)")
	cmd.Flags().StringVar(&opts.kind, "kind", "image", "Upload endpoint kind (image, mask, ...)")
	cmd.Flags().StringVar(&opts.name, "name", "", "Stored name to request (image uploads only)")

	return cmd
}

func runUpload(cmd *cobra.Command, opts *uploadOptions, path string) error {
	cfg, err := config.LoadDefault()
	if err != nil {
		return err
	}

	server := opts.server
	if server == "" {
		server = cfg.Server
	}

	client := comfy.NewClient(server)

	var stored string
	if opts.kind == "image" {
		stored, err = client.UploadImage(cmd.Context(), path, opts.name)
	} else {
		stored, err = client.UploadFile(cmd.Context(), path, opts.kind)
	}
	if err != nil {
		return err
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "File", Value: path},
		{Label: "Stored as", Value: stored},
	}, "Upload complete")
	return nil
}

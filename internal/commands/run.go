// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 lonelyowl13

package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lonelyowl13/comfyui-workflow-generator/internal/comfy"
	"github.com/lonelyowl13/comfyui-workflow-generator/internal/config"
	"github.com/lonelyowl13/comfyui-workflow-generator/internal/prompts"
)

type runOptions struct {
	server    string
	outputDir string
	timeout   int
}

func newRunCmd() *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run <workflow.json>",
		Short: "Queue a workflow on a ComfyUI server and download its outputs",
		Example: `  # Run a workflow built with a generated API
  comfygen run workflow.json

  # Against a remote server, with a longer completion timeout
  comfygen run workflow.json --server http://10.0.0.5:8188 --timeout 900`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(cmd, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.server, "server", "", "ComfyUI server base URL (default http://127.0.0.1:8188)")
	cmd.Flags().StringVar(&opts.outputDir, "output-dir", "output", "Directory for downloaded artifacts")
	cmd.Flags().IntVar(&opts.timeout, "timeout", 0, "Completion timeout in seconds (default 300)")

	return cmd
}

func runRun(cmd *cobra.Command, opts *runOptions, workflowPath string) error {
	cfg, err := config.LoadDefault()
	if err != nil {
		return err
	}

	server := opts.server
	if server == "" {
		server = cfg.Server
	}
	timeout := time.Duration(opts.timeout) * time.Second
	if timeout == 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}

	wf, err := comfy.LoadWorkflow(workflowPath)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	client := comfy.NewClient(server)

	if !client.CheckServer(ctx) {
		return fmt.Errorf("ComfyUI server is not running at %s", server)
	}

	promptID, err := client.Queue(ctx, wf)
	if err != nil {
		return err
	}
	fmt.Printf("Queued workflow %s (%d nodes), waiting up to %v...\n", promptID, len(wf), timeout)

	res, err := client.WaitForCompletion(ctx, promptID, timeout)
	if err != nil {
		return err
	}

	files, err := client.DownloadResults(ctx, res, opts.outputDir)
	if err != nil {
		return err
	}

	fields := make([]prompts.ResultField, 0, len(files)+1)
	fields = append(fields, prompts.ResultField{Label: "Prompt", Value: promptID})
	for _, f := range files {
		fields = append(fields, prompts.ResultField{Label: "Saved", Value: f})
	}
	prompts.PrintResult(fields, fmt.Sprintf("Downloaded %d file(s)", len(files)))
	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 lonelyowl13

package prompts

import "github.com/charmbracelet/huh"

// RunGenerateForm prompts for the registry source when the generate
// command was invoked without one.
func RunGenerateForm(source *string) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Registry source").
				Description("Path to an object_info.json file or a ComfyUI server URL").
				Placeholder("object_info.json or http://127.0.0.1:8188").
				Validate(requiredValidator("source")).
				Value(source),
		),
	).WithTheme(Theme())

	return form.Run()
}

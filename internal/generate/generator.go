// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 lonelyowl13

package generate

import (
	"os"

	"github.com/lonelyowl13/comfyui-workflow-generator/internal/registry"
)

// DefaultFileName is the conventional artifact destination.
const DefaultFileName = "workflow_api.py"

// Generate resolves a registry and renders the builder module in one
// synchronous pass. No state outlives the call.
func Generate(reg registry.Registry) ([]byte, error) {
	return Render(Assemble(reg))
}

// WriteFile generates the builder module and writes it to path.
func WriteFile(reg registry.Registry, path string) error {
	data, err := Generate(reg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644) //nolint:gosec // generated source, not a secret
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 lonelyowl13

package generate

import (
	"github.com/lonelyowl13/comfyui-workflow-generator/internal/registry"
)

// Assemble resolves a parsed registry into the module model: one
// builder method per node type in registry order, one enum per
// (node, input) pair with an inline choice list, and one placeholder
// class per distinct custom type seen across all inputs and outputs.
// All resolution state is owned by this call; identical registries
// assemble to identical models.
func Assemble(reg registry.Registry) *Module {
	m := NewMapper()
	mod := &Module{}

	for _, nt := range reg {
		for _, in := range nt.Required {
			if in.Spec.Type.IsEnum {
				mod.Enums = append(mod.Enums, synthesizeEnum(nt.Name, in.Name, in.Spec.Type.Enum))
			}
		}
		for _, in := range nt.Optional {
			if in.Spec.Type.IsEnum {
				mod.Enums = append(mod.Enums, synthesizeEnum(nt.Name, in.Name, in.Spec.Type.Enum))
			}
		}

		mod.Methods = append(mod.Methods, synthesizeMethod(m, nt))
	}

	mod.CustomTypes = m.CustomTypes()
	return mod
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 lonelyowl13

package generate

import (
	"github.com/lonelyowl13/comfyui-workflow-generator/internal/registry"
)

// synthesizeMethod builds the builder method for one node type:
// required inputs first, then optional inputs, both in schema order,
// and one return slot per declared output. Every parameter carries a
// default (the schema's, else None) so the generated signature stays
// valid regardless of which inputs the schema chose to default.
func synthesizeMethod(m *Mapper, nt registry.NodeType) Method {
	method := Method{
		Name:     Normalize(nt.Name),
		NodeName: nt.Name,
	}

	for _, in := range nt.Required {
		method.Params = append(method.Params, synthesizeParam(m, in))
	}
	for _, in := range nt.Optional {
		method.Params = append(method.Params, synthesizeParam(m, in))
	}

	for _, out := range nt.Outputs {
		method.Returns = append(method.Returns, m.HandleType(out))
	}

	return method
}

func synthesizeParam(m *Mapper, in registry.Input) Param {
	def := "None"
	if in.Spec.HasDefault {
		def = pyLiteral(in.Spec.Default)
	}
	return Param{
		Name:      Normalize(in.Name),
		InputName: in.Name,
		Type:      m.MapType(in.Spec.Type),
		Default:   def,
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 lonelyowl13

// Package generate turns a parsed ComfyUI registry into a typed Python
// workflow-builder module. The registry is resolved into a
// declaration-level intermediate model first; text rendering is a
// separate pass (render.go) so the model's invariants are testable
// without string comparison.
package generate

// Module is the complete input passed to the artifact template.
type Module struct {
	CustomTypes []string // placeholder class names, first-seen order
	Enums       []EnumDecl
	Methods     []Method // one per registry entry, registry order
}

// EnumDecl is one synthesized choice type for a (node, input) pair.
type EnumDecl struct {
	Name    string
	Integer bool // IntEnum when every literal is an integer
	Members []EnumMember
}

// EnumMember is one literal choice.
type EnumMember struct {
	Name  string
	Value string // rendered Python literal
}

// Method is one generated builder method.
type Method struct {
	Name     string  // normalized node name
	NodeName string  // raw registry name, recorded as the node's class_type
	Params   []Param // required inputs first, then optional, schema order
	Returns  []string
}

// Param is one generated parameter.
type Param struct {
	Name      string // normalized identifier
	InputName string // raw schema name, used as the inputs-dict key
	Type      string
	Default   string // rendered Python literal; "None" when the schema has none
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 lonelyowl13

// Package registry parses a ComfyUI object_info catalog into ordered
// node type descriptors.
package registry

// Registry is the parsed object_info catalog, in source order.
type Registry []NodeType

// NodeType describes one node type: its name as registered on the
// server, its inputs in declaration order, and its output slots.
type NodeType struct {
	Name     string
	Required []Input
	Optional []Input
	Outputs  []TypeSpec
}

// Input is one named input slot.
type Input struct {
	Name string
	Spec InputSpec
}

// InputSpec is the type tag and options attached to an input.
type InputSpec struct {
	Type       TypeSpec
	Default    any  // rendered into the generated signature
	HasDefault bool // distinguishes an explicit null default from none at all
}

// TypeSpec is one schema type tag. A tag is either a name (primitive,
// the "*" wildcard, or a free-text custom type) or an inline list of
// literal choices.
type TypeSpec struct {
	Name   string
	Enum   []any // literal values in list order; valid when IsEnum
	IsEnum bool
}

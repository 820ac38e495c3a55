// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 lonelyowl13

package generate

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/lonelyowl13/comfyui-workflow-generator/internal/registry"
)

// primitives maps registry type tags to Python types.
var primitives = map[string]string{
	"INT":     "int",
	"FLOAT":   "float",
	"STRING":  "str",
	"BOOLEAN": "bool",
}

// Wildcard is the registry marker for "any output".
const Wildcard = "*"

// AnyOutput is the universal handle type usable wherever a producer's
// output fits.
const AnyOutput = "AnyNodeOutput"

// handleFor maps a Python primitive to its output-handle class.
var handleFor = map[string]string{
	"int":   "IntNodeOutput",
	"float": "FloatNodeOutput",
	"str":   "StrNodeOutput",
	"bool":  "BoolNodeOutput",
}

// Mapper resolves registry type tags to Python type names and collects
// the distinct custom type names seen along the way. One Mapper is
// scoped to one generation run.
type Mapper struct {
	customs []string
	seen    map[string]struct{}
}

// NewMapper creates an empty Mapper.
func NewMapper() *Mapper {
	return &Mapper{seen: make(map[string]struct{})}
}

// MapType resolves a type tag for a method-signature position. Enum
// lists resolve to their underlying primitive so call sites can pass
// raw values; the companion enum class is synthesized separately.
// Custom names are normalized and registered as placeholder types.
func (m *Mapper) MapType(ts registry.TypeSpec) string {
	if ts.IsEnum {
		if allIntegers(ts.Enum) {
			return "int"
		}
		return "str"
	}
	if py, ok := primitives[ts.Name]; ok {
		return py
	}
	if ts.Name == Wildcard {
		return AnyOutput
	}
	return m.registerCustom(ts.Name)
}

// HandleType resolves a type tag for a return-slot position. Primitive
// results stay chainable graph handles instead of bare values.
func (m *Mapper) HandleType(ts registry.TypeSpec) string {
	py := m.MapType(ts)
	if handle, ok := handleFor[py]; ok {
		return handle
	}
	return py
}

// CustomTypes returns every registered custom type name in first-seen
// order.
func (m *Mapper) CustomTypes() []string {
	return m.customs
}

func (m *Mapper) registerCustom(raw string) string {
	name := Normalize(raw)
	if _, ok := m.seen[name]; !ok {
		m.seen[name] = struct{}{}
		m.customs = append(m.customs, name)
	}
	return name
}

// allIntegers reports whether every literal in the list is an integer.
// An empty list is not integral: its enum stays a plain Enum and its
// parameter type stays str.
func allIntegers(values []any) bool {
	if len(values) == 0 {
		return false
	}
	for _, v := range values {
		if !isInteger(v) {
			return false
		}
	}
	return true
}

func isInteger(v any) bool {
	switch n := v.(type) {
	case json.Number:
		return !strings.ContainsAny(n.String(), ".eE")
	case int, int64:
		return true
	case float64:
		return n == float64(int64(n))
	default:
		return false
	}
}

// pyLiteral renders a decoded JSON value as a Python literal.
func pyLiteral(v any) string {
	switch t := v.(type) {
	case nil:
		return "None"
	case bool:
		if t {
			return "True"
		}
		return "False"
	case json.Number:
		return t.String()
	case string:
		return pyString(t)
	case float64:
		return fmt.Sprintf("%v", t)
	case []any:
		elems := make([]string, len(t))
		for i, e := range t {
			elems[i] = pyLiteral(e)
		}
		return "[" + strings.Join(elems, ", ") + "]"
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pairs := make([]string, len(keys))
		for i, k := range keys {
			pairs[i] = pyString(k) + ": " + pyLiteral(t[k])
		}
		return "{" + strings.Join(pairs, ", ") + "}"
	default:
		return pyString(fmt.Sprint(t))
	}
}

// pyString renders a double-quoted Python string literal.
func pyString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\x%02x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 lonelyowl13

package generate

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed workflow.py.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.New("workflow.py.tmpl").
	Funcs(template.FuncMap{
		"signature":  signature,
		"returns":    returnAnnotation,
		"returnstmt": returnStatement,
		"inputsdict": inputsDict,
		"pystr":      pyString,
	}).
	ParseFS(tmplFS, "workflow.py.tmpl"))

// Render serializes the module model to Python source. Rendering is a
// pure function of the model: identical models produce byte-identical
// artifacts.
func Render(mod *Module) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "workflow.py.tmpl", mod); err != nil {
		return nil, fmt.Errorf("failed to render module: %w", err)
	}
	return buf.Bytes(), nil
}

// signature renders the parameter list. Every parameter defaults so
// the signature parses regardless of which inputs the schema chose to
// default.
func signature(m Method) string {
	parts := make([]string, 0, len(m.Params)+1)
	parts = append(parts, "self")
	for _, p := range m.Params {
		parts = append(parts, fmt.Sprintf("%s: %s = %s", p.Name, p.Type, p.Default))
	}
	return strings.Join(parts, ", ")
}

// returnAnnotation renders the return type: nothing for zero outputs,
// the handle type for one, a fixed-arity Tuple for several.
func returnAnnotation(m Method) string {
	switch len(m.Returns) {
	case 0:
		return ""
	case 1:
		return m.Returns[0]
	default:
		return "Tuple[" + strings.Join(m.Returns, ", ") + "]"
	}
}

// returnStatement renders the handle construction, one handle per
// output slot carrying (node_id, slot_index).
func returnStatement(m Method) string {
	if len(m.Returns) == 0 {
		return ""
	}
	handles := make([]string, len(m.Returns))
	for i, typ := range m.Returns {
		handles[i] = fmt.Sprintf("%s(node_id, %d)", typ, i)
	}
	if len(handles) == 1 {
		return "return " + handles[0]
	}
	return "return (" + strings.Join(handles, ", ") + ")"
}

// inputsDict renders the collected-arguments dict, keyed by the
// original schema input names.
func inputsDict(m Method) string {
	if len(m.Params) == 0 {
		return "{}"
	}
	pairs := make([]string, len(m.Params))
	for i, p := range m.Params {
		pairs[i] = pyString(p.InputName) + ": " + p.Name
	}
	return "{" + strings.Join(pairs, ", ") + "}"
}

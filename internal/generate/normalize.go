// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 lonelyowl13

package generate

import (
	"fmt"
	"hash/fnv"
	"strings"
	"unicode"
)

// pythonKeywords are the names that cannot be used as identifiers in
// the generated module.
var pythonKeywords = map[string]struct{}{
	"False": {}, "None": {}, "True": {}, "and": {}, "as": {},
	"assert": {}, "async": {}, "await": {}, "break": {}, "class": {},
	"continue": {}, "def": {}, "del": {}, "elif": {}, "else": {},
	"except": {}, "finally": {}, "for": {}, "from": {}, "global": {},
	"if": {}, "import": {}, "in": {}, "is": {}, "lambda": {},
	"nonlocal": {}, "not": {}, "or": {}, "pass": {}, "raise": {},
	"return": {}, "try": {}, "while": {}, "with": {}, "yield": {},
}

// Normalize maps an arbitrary registry name to a valid Python
// identifier. Whitespace runs become a single underscore, every other
// character outside [A-Za-z0-9_] is dropped, a leading digit gets an
// underscore prefix and keywords get an underscore suffix. The result
// is never empty: a name that strips to nothing falls back to a stable
// hash of the raw input. Normalize is idempotent on its own output.
func Normalize(raw string) string {
	var b strings.Builder
	pendingSep := false
	for _, r := range raw {
		switch {
		case unicode.IsSpace(r):
			pendingSep = true
		case r == '_' ||
			(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9'):
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
		default:
			// dropped
		}
	}

	name := b.String()
	if name == "" {
		h := fnv.New32a()
		h.Write([]byte(raw)) //nolint:errcheck
		return fmt.Sprintf("Sym_%08x", h.Sum32())
	}
	if name[0] >= '0' && name[0] <= '9' {
		name = "_" + name
	}
	if _, reserved := pythonKeywords[name]; reserved {
		name += "_"
	}
	return name
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 lonelyowl13

package generate

import (
	"encoding/json"
	"fmt"
	"strings"
)

// synthesizeEnum builds the companion enum declaration for one
// (node, input) pair with an inline literal list. Enums are never
// shared across pairs, even for identical lists: coupling unrelated
// inputs through one type would make the generated API lie about the
// schema. An empty list still yields the declaration so call sites can
// reference the type.
func synthesizeEnum(nodeName, inputName string, values []any) EnumDecl {
	decl := EnumDecl{
		Name:    Normalize(nodeName) + Normalize(inputName) + "Values",
		Integer: allIntegers(values),
	}

	seen := make(map[string]struct{}, len(values))
	for i, v := range values {
		name := memberName(v, decl.Integer)
		if _, dup := seen[name]; dup {
			// A positional suffix can itself collide with a later
			// literal ("a_2" vs a renamed "a"), so keep bumping until
			// the name is free. Enum members must be unique or the
			// artifact fails to import.
			base := name
			for n := i; ; n++ {
				name = fmt.Sprintf("%s_%d", base, n)
				if _, taken := seen[name]; !taken {
					break
				}
			}
		}
		seen[name] = struct{}{}
		decl.Members = append(decl.Members, EnumMember{
			Name:  name,
			Value: pyLiteral(v),
		})
	}
	return decl
}

// memberName derives an identifier for one literal. Integer members
// get a VALUE_ prefix since digits alone cannot name a Python member.
func memberName(v any, integer bool) string {
	if integer {
		s := fmt.Sprint(v)
		if n, ok := v.(json.Number); ok {
			s = n.String()
		}
		return "VALUE_" + strings.ReplaceAll(s, "-", "_")
	}
	return Normalize(fmt.Sprint(v))
}

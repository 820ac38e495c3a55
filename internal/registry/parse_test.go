// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 lonelyowl13

package registry

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_PreservesOrder(t *testing.T) {
	doc := `{
		"KSampler": {
			"input": {
				"required": {
					"seed": ["INT", {"default": 0}],
					"steps": ["INT", {"default": 20}],
					"cfg": ["FLOAT", {"default": 8.0}]
				},
				"optional": {
					"add_noise": ["BOOLEAN", {"default": true}]
				}
			},
			"output": ["LATENT"]
		},
		"VAELoader": {
			"input": {"required": {"vae_name": ["STRING", {"default": "vae.pt"}]}},
			"output": ["VAE"]
		}
	}`
	reg, err := Parse([]byte(doc))
	require.NoError(t, err)
	require.Len(t, reg, 2)

	assert.Equal(t, "KSampler", reg[0].Name)
	assert.Equal(t, "VAELoader", reg[1].Name)

	var required []string
	for _, in := range reg[0].Required {
		required = append(required, in.Name)
	}
	assert.Equal(t, []string{"seed", "steps", "cfg"}, required)

	require.Len(t, reg[0].Optional, 1)
	assert.Equal(t, "add_noise", reg[0].Optional[0].Name)

	require.Len(t, reg[0].Outputs, 1)
	assert.Equal(t, "LATENT", reg[0].Outputs[0].Name)
}

func TestParse_Defaults(t *testing.T) {
	doc := `{
		"N": {
			"input": {
				"required": {
					"a": ["INT", {"default": 0}],
					"b": ["FLOAT", {"default": 8.0}],
					"c": ["STRING", {"default": "euler"}],
					"d": ["BOOLEAN", {"default": true}],
					"e": ["MODEL", {"default": null}],
					"f": ["CLIP", {}],
					"g": ["VAE"]
				}
			},
			"output": []
		}
	}`
	reg, err := Parse([]byte(doc))
	require.NoError(t, err)

	in := reg[0].Required
	require.Len(t, in, 7)

	assert.True(t, in[0].Spec.HasDefault)
	assert.Equal(t, json.Number("0"), in[0].Spec.Default)
	assert.Equal(t, json.Number("8.0"), in[1].Spec.Default, "numbers keep their source form")
	assert.Equal(t, "euler", in[2].Spec.Default)
	assert.Equal(t, true, in[3].Spec.Default)

	// An explicit null default is still a default.
	assert.True(t, in[4].Spec.HasDefault)
	assert.Nil(t, in[4].Spec.Default)

	// No default key, and no options element at all.
	assert.False(t, in[5].Spec.HasDefault)
	assert.False(t, in[6].Spec.HasDefault)
}

func TestParse_EnumTags(t *testing.T) {
	doc := `{
		"N": {
			"input": {
				"required": {
					"duration": [[5, 8, 10], "COMBO"],
					"mode": [["a", "b"], {"default": "a"}],
					"empty": [[], "COMBO"]
				}
			},
			"output": []
		}
	}`
	reg, err := Parse([]byte(doc))
	require.NoError(t, err)

	in := reg[0].Required
	require.Len(t, in, 3)

	assert.True(t, in[0].Spec.Type.IsEnum)
	assert.Equal(t, []any{json.Number("5"), json.Number("8"), json.Number("10")}, in[0].Spec.Type.Enum)
	assert.False(t, in[0].Spec.HasDefault, "a bare options string carries no default")

	assert.True(t, in[1].Spec.Type.IsEnum)
	assert.Equal(t, "a", in[1].Spec.Default)

	assert.True(t, in[2].Spec.Type.IsEnum)
	assert.Empty(t, in[2].Spec.Type.Enum)
}

func TestParse_MissingSections(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"no optional section", `{"N": {"input": {"required": {}}, "output": []}}`},
		{"no required section", `{"N": {"input": {"optional": {}}, "output": []}}`},
		{"no input at all", `{"N": {"output": ["MODEL"]}}`},
		{"no output at all", `{"N": {"input": {}}}`},
		{"empty registry", `{}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.NoError(t, err)
		})
	}
}

func TestParse_SkipsDisplayMetadata(t *testing.T) {
	doc := `{
		"N": {
			"input": {"required": {"x": ["INT", {"default": 1}]}},
			"output": ["INT"],
			"output_name": ["value"],
			"category": "utils",
			"description": "does a thing",
			"output_node": false
		}
	}`
	reg, err := Parse([]byte(doc))
	require.NoError(t, err)
	require.Len(t, reg, 1)
	assert.Len(t, reg[0].Required, 1)
	assert.Len(t, reg[0].Outputs, 1)
}

func TestParse_InvalidJSON(t *testing.T) {
	_, err := Parse([]byte("invalid json content"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestParse_InvalidShape(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"top level array", `[1, 2, 3]`},
		{"top level string", `"nope"`},
		{"entry not an object", `{"N": 42}`},
		{"entry with neither input nor output", `{"N": {"category": "utils"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidFormat)
		})
	}
}

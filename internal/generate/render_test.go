// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 lonelyowl13

package generate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_SampleRegistry(t *testing.T) {
	reg := mustParse(t, sampleObjectInfo)
	data, err := Generate(reg)
	require.NoError(t, err)
	code := string(data)

	wantCode := []string{
		"class NodeOutput:",
		"class StrNodeOutput(NodeOutput):",
		"class FloatNodeOutput(NodeOutput):",
		"class IntNodeOutput(NodeOutput):",
		"class BoolNodeOutput(NodeOutput):",
		"class AnyNodeOutput(NodeOutput):",
		"class MODEL(NodeOutput):",
		"class CLIP(NodeOutput):",
		"class VAE(NodeOutput):",
		"class Workflow:",
		"def __init__(self):",
		"def _add_node(self, class_type, inputs):",
		"def get_workflow(self):",
		`def CheckpointLoaderSimple(self, ckpt_name: str = "model.ckpt") -> Tuple[MODEL, CLIP, VAE]:`,
		`"ckpt_name": ckpt_name`,
		`self._add_node("CheckpointLoaderSimple", inputs)`,
		"return (MODEL(node_id, 0), CLIP(node_id, 1), VAE(node_id, 2))",
		"def KSampler(",
		"add_noise: bool = True",
		"return_with_leftover_noise: bool = False",
		"return LATENT(node_id, 0)",
		"def node_output_to_ref(output):",
		"return [output.node_id, output.slot_index]",
		"def new_node_id():",
	}
	for _, want := range wantCode {
		if !strings.Contains(code, want) {
			t.Errorf("generated module missing expected code snippet:\nwant: %q\ngot:\n%s", want, code)
		}
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, WriteFile(mustParse(t, sampleObjectInfo), path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm(), "generated source should be world-readable")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "class Workflow:")
}

func TestGenerate_Deterministic(t *testing.T) {
	reg := mustParse(t, sampleObjectInfo)

	first, err := Generate(reg)
	require.NoError(t, err)
	second, err := Generate(reg)
	require.NoError(t, err)

	assert.Equal(t, first, second, "identical registries must generate byte-identical artifacts")
}

func TestGenerate_EmptyRegistry(t *testing.T) {
	data, err := Generate(mustParse(t, `{}`))
	require.NoError(t, err)
	code := string(data)

	// Base types and the builder skeleton are always emitted.
	for _, want := range []string{
		"class NodeOutput:",
		"class StrNodeOutput(NodeOutput):",
		"class AnyNodeOutput(NodeOutput):",
		"class Workflow:",
		"def __init__(self):",
		"def _add_node(self, class_type, inputs):",
		"def get_workflow(self):",
		"def new_node_id():",
	} {
		assert.Contains(t, code, want)
	}
	assert.NotContains(t, code, "class Enum") // no enums synthesized
}

func TestGenerate_Enums(t *testing.T) {
	doc := `{
		"TestNode": {
			"input": {
				"required": {
					"duration": [[5, 8, 10], "COMBO"],
					"empty_enum": [[], "COMBO"]
				}
			},
			"output": ["LATENT"]
		}
	}`
	data, err := Generate(mustParse(t, doc))
	require.NoError(t, err)
	code := string(data)

	assert.Contains(t, code, "class TestNodedurationValues(IntEnum):")
	assert.Contains(t, code, "VALUE_5 = 5")
	assert.Contains(t, code, "VALUE_10 = 10")
	// Enum-typed parameters accept the raw underlying primitive.
	assert.Contains(t, code, "duration: int = None")

	// An empty choice list still yields a valid, referencable type.
	assert.Contains(t, code, "class TestNodeempty_enumValues(Enum):\n    pass")
}

func TestGenerate_ZeroInputZeroOutputMethod(t *testing.T) {
	data, err := Generate(mustParse(t, `{"Noop": {"input": {}, "output": []}}`))
	require.NoError(t, err)
	code := string(data)

	assert.Contains(t, code, "def Noop(self):")
	assert.Contains(t, code, `node_id = self._add_node("Noop", inputs)`)
	assert.NotContains(t, code, "def Noop(self) ->")
}

func TestGenerate_NormalizedMethodAndParam(t *testing.T) {
	doc := `{
		"123Node": {
			"input": {"required": {"class": ["STRING", {"default": ""}]}},
			"output": ["*"]
		}
	}`
	data, err := Generate(mustParse(t, doc))
	require.NoError(t, err)
	code := string(data)

	assert.Contains(t, code, `def _123Node(self, class_: str = "") -> AnyNodeOutput:`)
	assert.Contains(t, code, `"class": class_`)
	assert.Contains(t, code, `self._add_node("123Node", inputs)`)
}

func TestGenerate_WrappedPrimitiveReturn(t *testing.T) {
	data, err := Generate(mustParse(t, `{"Counter": {"input": {}, "output": ["INT"]}}`))
	require.NoError(t, err)
	code := string(data)

	assert.Contains(t, code, "def Counter(self) -> IntNodeOutput:")
	assert.Contains(t, code, "return IntNodeOutput(node_id, 0)")
}

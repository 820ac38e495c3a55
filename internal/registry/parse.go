// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 lonelyowl13

package registry

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrMalformed indicates the document is not valid JSON at all.
	ErrMalformed = errors.New("invalid JSON")

	// ErrInvalidFormat indicates the document is valid JSON but not an
	// object_info catalog: the top level is not a name→descriptor
	// mapping, or an entry carries neither "input" nor "output".
	ErrInvalidFormat = errors.New("invalid object_info format")
)

// Parse decodes an object_info document. Key order matters to the
// generated API (parameter order follows the schema), so the document
// is walked with a token decoder instead of unmarshalling into maps.
// Numbers are kept as json.Number to avoid float drift in defaults.
func Parse(data []byte) (Registry, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("%w: top level is not an object", ErrInvalidFormat)
	}

	var reg Registry
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		name := keyTok.(string)

		nt, err := parseNodeType(dec, name)
		if err != nil {
			return nil, err
		}
		reg = append(reg, nt)
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return reg, nil
}

func parseNodeType(dec *json.Decoder, name string) (NodeType, error) {
	nt := NodeType{Name: name}

	tok, err := dec.Token()
	if err != nil {
		return nt, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nt, fmt.Errorf("%w: entry %q is not an object", ErrInvalidFormat, name)
	}

	hasInput, hasOutput := false, false
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nt, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		switch keyTok.(string) {
		case "input":
			hasInput = true
			if err := parseInputSections(dec, &nt); err != nil {
				return nt, fmt.Errorf("node %q: %w", name, err)
			}
		case "output":
			hasOutput = true
			outputs, err := parseOutputs(dec)
			if err != nil {
				return nt, fmt.Errorf("node %q: %w", name, err)
			}
			nt.Outputs = outputs
		default:
			// object_info carries display metadata (category,
			// description, output_name, ...) the builder does not need.
			if _, err := decodeValue(dec); err != nil {
				return nt, fmt.Errorf("node %q: %w: %v", name, ErrMalformed, err)
			}
		}
	}
	if _, err := dec.Token(); err != nil {
		return nt, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if !hasInput && !hasOutput {
		return nt, fmt.Errorf("%w: entry %q has neither input nor output", ErrInvalidFormat, name)
	}
	return nt, nil
}

// parseInputSections reads {"required": {...}, "optional": {...}}.
// Either section may be absent.
func parseInputSections(dec *json.Decoder, nt *NodeType) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	d, ok := tok.(json.Delim)
	if !ok || d != '{' {
		// A non-object input section contributes no parameters.
		return skipRest(dec, tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		switch keyTok.(string) {
		case "required":
			inputs, err := parseInputs(dec)
			if err != nil {
				return err
			}
			nt.Required = inputs
		case "optional":
			inputs, err := parseInputs(dec)
			if err != nil {
				return err
			}
			nt.Optional = inputs
		default:
			if _, err := decodeValue(dec); err != nil {
				return err
			}
		}
	}
	_, err = dec.Token()
	return err
}

// parseInputs reads an ordered mapping input name → [typeTag, options?].
func parseInputs(dec *json.Decoder) ([]Input, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	d, ok := tok.(json.Delim)
	if !ok || d != '{' {
		return nil, skipRest(dec, tok)
	}

	var inputs []Input
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name := keyTok.(string)

		spec, err := parseInputSpec(dec)
		if err != nil {
			return nil, fmt.Errorf("input %q: %w", name, err)
		}
		inputs = append(inputs, Input{Name: name, Spec: spec})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return inputs, nil
}

// parseInputSpec reads one input spec. The usual shape is
// [typeTag, {"default": ...}] but the options element may be absent or
// a bare string, and some packs write the tag alone.
func parseInputSpec(dec *json.Decoder) (InputSpec, error) {
	v, err := decodeValue(dec)
	if err != nil {
		return InputSpec{}, err
	}

	elems, ok := v.([]any)
	if !ok {
		// Bare tag without the options wrapper.
		return InputSpec{Type: typeSpecOf(v)}, nil
	}

	var spec InputSpec
	if len(elems) > 0 {
		spec.Type = typeSpecOf(elems[0])
	} else {
		spec.Type = TypeSpec{IsEnum: true}
	}
	if len(elems) > 1 {
		if opts, ok := elems[1].(map[string]any); ok {
			if def, present := opts["default"]; present {
				spec.Default = def
				spec.HasDefault = true
			}
		}
	}
	return spec, nil
}

func parseOutputs(dec *json.Decoder) ([]TypeSpec, error) {
	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	elems, ok := v.([]any)
	if !ok {
		return nil, nil
	}
	outputs := make([]TypeSpec, 0, len(elems))
	for _, e := range elems {
		outputs = append(outputs, typeSpecOf(e))
	}
	return outputs, nil
}

// typeSpecOf interprets a decoded type tag: a string names a type, a
// list is an inline enum. Anything else degrades to its string form.
func typeSpecOf(v any) TypeSpec {
	switch t := v.(type) {
	case string:
		return TypeSpec{Name: t}
	case []any:
		return TypeSpec{Enum: t, IsEnum: true}
	default:
		return TypeSpec{Name: fmt.Sprint(t)}
	}
}

// decodeValue reads one complete JSON value from the token stream.
func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return decodeFrom(dec, tok)
}

func decodeFrom(dec *json.Decoder, tok json.Token) (any, error) {
	d, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}
	switch d {
	case '{':
		obj := make(map[string]any)
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			v, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			obj[keyTok.(string)] = v
		}
		_, err := dec.Token()
		return obj, err
	case '[':
		arr := []any{}
		for dec.More() {
			v, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		_, err := dec.Token()
		return arr, err
	default:
		return nil, fmt.Errorf("unexpected delimiter %v", d)
	}
}

// skipRest consumes the remainder of a value whose opening token has
// already been read.
func skipRest(dec *json.Decoder, tok json.Token) error {
	_, err := decodeFrom(dec, tok)
	return err
}

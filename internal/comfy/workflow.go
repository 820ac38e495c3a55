// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 lonelyowl13

package comfy

import (
	"encoding/json"
	"fmt"
	"os"
)

// Workflow is the submittable prompt mapping produced by a generated
// builder's get_workflow(): node id → node record.
type Workflow map[string]Node

// Node is one workflow node. Input values are literals or wire-format
// [node_id, slot_index] edge references.
type Node struct {
	ClassType string         `json:"class_type"`
	Inputs    map[string]any `json:"inputs"`
}

// Result is one finished history entry for a queued prompt.
type Result struct {
	Outputs map[string]NodeOutputs `json:"outputs"`
}

// NodeOutputs holds the artifacts one node produced.
type NodeOutputs struct {
	Images []Artifact `json:"images"`
}

// Artifact names one downloadable file on the server.
type Artifact struct {
	Filename  string `json:"filename"`
	Subfolder string `json:"subfolder"`
	Type      string `json:"type"`
}

// LoadWorkflow reads a workflow mapping from a JSON file.
func LoadWorkflow(path string) (Workflow, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	var wf Workflow
	if err := json.Unmarshal(data, &wf); err != nil {
		return nil, fmt.Errorf("invalid workflow file %s: %w", path, err)
	}
	return wf, nil
}

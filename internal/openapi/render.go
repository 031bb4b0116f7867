package openapi

import (
	"encoding/json"
	"fmt"

	"go.yaml.in/yaml/v4"
)

// RenderJSON serializes the document as indented JSON. Map keys are
// emitted in sorted order, so identical documents render to identical
// bytes.
func RenderJSON(doc *Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("rendering JSON document: %w", err)
	}
	return append(data, '\n'), nil
}

// RenderYAML serializes the document as block-style YAML, the
// human-readable twin of the JSON output.
func RenderYAML(doc *Document) ([]byte, error) {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("rendering YAML document: %w", err)
	}
	return data, nil
}

package engine

import (
	"encoding/json"
	"fmt"
	"os"
)

// Metadata describes an exported model: tensor shapes, label order, the
// hooked layer name and the classifier head weights used for gradient
// capture. Shipped next to the .onnx file, same as the training export.
type Metadata struct {
	InputShape    []int64     `json:"input_shape"`
	LogitsShape   []int64     `json:"logits_shape"`
	FeaturesShape []int64     `json:"features_shape"`
	Labels        []string    `json:"labels"`
	HookedLayer   string      `json:"hooked_layer"`
	HeadWeights   [][]float64 `json:"head_weights,omitempty"`
}

// LoadMetadata reads and validates a metadata file.
func LoadMetadata(path string) (*Metadata, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read metadata: %w", err)
	}

	var meta Metadata
	if err := json.Unmarshal(raw, &meta); err != nil {
		return nil, fmt.Errorf("parse metadata: %w", err)
	}
	if err := meta.validate(); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (m *Metadata) validate() error {
	if len(m.InputShape) != 4 {
		return fmt.Errorf("metadata: input_shape must have 4 dims, got %d", len(m.InputShape))
	}
	if len(m.LogitsShape) != 2 {
		return fmt.Errorf("metadata: logits_shape must have 2 dims, got %d", len(m.LogitsShape))
	}
	if len(m.FeaturesShape) != 4 {
		return fmt.Errorf("metadata: features_shape must have 4 dims, got %d", len(m.FeaturesShape))
	}
	if len(m.Labels) == 0 {
		return fmt.Errorf("metadata: labels are empty")
	}
	if n := int(m.LogitsShape[1]); n != len(m.Labels) {
		return fmt.Errorf("metadata: logits_shape carries %d classes, want %d labels", n, len(m.Labels))
	}
	if m.HookedLayer == "" {
		return fmt.Errorf("metadata: hooked_layer is empty")
	}
	if len(m.HeadWeights) > 0 {
		if len(m.HeadWeights) != len(m.Labels) {
			return fmt.Errorf("metadata: head_weights rows %d do not match %d labels",
				len(m.HeadWeights), len(m.Labels))
		}
		channels := int(m.FeaturesShape[1])
		for i, row := range m.HeadWeights {
			if len(row) != channels {
				return fmt.Errorf("metadata: head_weights row %d has %d columns, want %d",
					i, len(row), channels)
			}
		}
	}
	return nil
}

func (m *Metadata) featureDims() (channels, height, width int) {
	return int(m.FeaturesShape[1]), int(m.FeaturesShape[2]), int(m.FeaturesShape[3])
}

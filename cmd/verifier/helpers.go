package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Alias1177/Verifier/models"
	"gopkg.in/yaml.v3"
)

// loadPredictions reads a YAML (or JSON) file holding one prediction or a list
func loadPredictions(path string) ([]models.Prediction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read predictions: %w", err)
	}
	return parsePredictions(data)
}

func parsePredictions(data []byte) ([]models.Prediction, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("parse predictions: %w", err)
	}
	if len(node.Content) == 0 {
		return nil, fmt.Errorf("parse predictions: empty document")
	}

	root := node.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		var list []models.Prediction
		if err := root.Decode(&list); err != nil {
			return nil, fmt.Errorf("decode prediction list: %w", err)
		}
		return list, nil
	case yaml.MappingNode:
		var single models.Prediction
		if err := root.Decode(&single); err != nil {
			return nil, fmt.Errorf("decode prediction: %w", err)
		}
		return []models.Prediction{single}, nil
	default:
		return nil, fmt.Errorf("parse predictions: expected a mapping or a list")
	}
}

// parseObject treats numeric flag values as numbers and anything else as text
func parseObject(raw string) models.Object {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return models.Object{}
	}
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		return models.NumberObject(v)
	}
	return models.TextObject(raw)
}

package oracle

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/Alias1177/Verifier/models"
)

// PlaceholderJustification replaces a justification that is not a string
const PlaceholderJustification = "LLM justification unavailable."

// DefaultConfidence replaces a confidence that is missing, non-numeric or out of range
const DefaultConfidence = 0.5

var errNoObject = errors.New("no JSON object in completion")

// Parse extracts the JSON object embedded in raw completion text and repairs
// each verdict field independently. It fails only when no object can be decoded.
func Parse(raw string) (models.Verdict, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end < start {
		return models.Verdict{}, errNoObject
	}

	var fields map[string]any
	if err := json.Unmarshal([]byte(raw[start:end+1]), &fields); err != nil {
		return models.Verdict{}, err
	}

	return models.Verdict{
		Verdict:       coerceVerdict(fields["verdict"]),
		Confidence:    coerceConfidence(fields["confidence"]),
		Justification: coerceJustification(fields["justification"]),
		Source:        coerceSource(fields["source"]),
	}, nil
}

func coerceVerdict(v any) models.VerdictValue {
	s, ok := v.(string)
	if !ok {
		return models.VerdictUnknown
	}
	value := models.VerdictValue(strings.ToLower(strings.TrimSpace(s)))
	if value == "not matured" {
		value = models.VerdictNotMatured
	}
	if !value.Valid() {
		return models.VerdictUnknown
	}
	return value
}

func coerceConfidence(v any) float64 {
	var f float64
	switch c := v.(type) {
	case float64:
		f = c
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(c), 64)
		if err != nil {
			return DefaultConfidence
		}
		f = parsed
	default:
		return DefaultConfidence
	}
	if math.IsNaN(f) || f < 0 || f > 1 {
		return DefaultConfidence
	}
	return f
}

func coerceJustification(v any) string {
	s, ok := v.(string)
	if !ok {
		return PlaceholderJustification
	}
	return s
}

func coerceSource(v any) *string {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	return &s
}

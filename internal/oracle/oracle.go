package oracle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Alias1177/Verifier/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const systemInstruction = "You are a helpful, precise fact-checking agent."

// ErrNoBackend is reported when the oracle has no completion backend configured
var ErrNoBackend = errors.New("no completion backend configured")

// Oracle resolves predictions no specialized strategy handles by asking a
// text-completion backend for a verdict.
type Oracle struct {
	backend models.Completer
	model   string
	logger  zerolog.Logger
}

// New creates an oracle. backend may be nil, in which case every call
// degrades to an unknown verdict.
func New(backend models.Completer, model string) *Oracle {
	if backend != nil && model == "" {
		model = backend.Model()
	}
	return &Oracle{
		backend: backend,
		model:   model,
		logger:  log.With().Str("component", "fallback_oracle").Logger(),
	}
}

// Verify never fails; transport and parse errors become an unknown verdict
// sourced from the oracle itself.
func (o *Oracle) Verify(ctx context.Context, p models.Prediction) models.Verdict {
	if o.backend == nil {
		return o.failure(fmt.Sprintf("LLM fallback failed: %s", ErrNoBackend))
	}

	prompt, err := BuildPrompt(p)
	if err != nil {
		o.logger.Error().Err(err).Msg("Failed to build prompt")
		return o.failure(fmt.Sprintf("LLM fallback failed: %s", err))
	}

	completion, err := o.backend.Complete(ctx, systemInstruction, prompt)
	if err != nil {
		o.logger.Error().Err(err).Msg("Completion backend call failed")
		return o.failure(fmt.Sprintf("LLM fallback failed: %s", err))
	}

	verdict, err := Parse(strings.TrimSpace(completion))
	if err != nil {
		o.logger.Error().Err(err).Str("output", completion).Msg("Failed to parse LLM output")
		return o.failure("LLM fallback used, but output could not be parsed.")
	}
	return verdict
}

// Sentinel is the source reported for verdicts produced by the oracle's own failure paths
func (o *Oracle) Sentinel() string {
	return "llm://" + o.model
}

func (o *Oracle) failure(justification string) models.Verdict {
	return models.Verdict{
		Verdict:       models.VerdictUnknown,
		Confidence:    DefaultConfidence,
		Justification: justification,
		Source:        models.Source(o.Sentinel()),
	}
}

// BuildPrompt serializes the prediction into the instruction sent to the backend
func BuildPrompt(p models.Prediction) (string, error) {
	body, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal prediction: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("You are a fact-checking assistant. Given the following structured prediction, ")
	sb.WriteString("check if it is correct using your knowledge and reasoning. ")
	sb.WriteString("Return ONLY a JSON object with the following keys:\n")
	sb.WriteString(`- verdict: "true", "false", "not_matured", or "unknown"` + "\n")
	sb.WriteString("- confidence: a float between 0 and 1\n")
	sb.WriteString("- justification: a short explanation\n")
	sb.WriteString("- source: a URL or null\n\n")
	sb.WriteString("Prediction:\n")
	sb.Write(body)
	sb.WriteString("\n\nReturn only the JSON object, nothing else.\n")
	return sb.String(), nil
}

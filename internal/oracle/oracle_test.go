package oracle

import (
	"context"
	"errors"
	"testing"

	"github.com/Alias1177/Verifier/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCompleter struct {
	reply  string
	err    error
	model  string
	system string
	prompt string
}

func (f *fakeCompleter) Complete(_ context.Context, system, prompt string) (string, error) {
	f.system, f.prompt = system, prompt
	return f.reply, f.err
}

func (f *fakeCompleter) Model() string {
	return f.model
}

var rainPrediction = models.Prediction{
	Subject:   "London",
	Predicate: "rains on",
	Object:    models.TextObject("New Year's Day"),
	Deadline:  "2025-01-01",
	Context:   "weather",
}

func TestOracleVerify(t *testing.T) {
	backend := &fakeCompleter{
		model: "gpt-4o",
		reply: `{"verdict": "true", "confidence": 0.7, "justification": "It rained.", "source": null}`,
	}
	o := New(backend, "")

	got := o.Verify(context.Background(), rainPrediction)

	assert.Equal(t, models.VerdictTrue, got.Verdict)
	assert.Equal(t, 0.7, got.Confidence)
	assert.Equal(t, "It rained.", got.Justification)
	assert.Nil(t, got.Source)
	assert.Equal(t, systemInstruction, backend.system)
	assert.Contains(t, backend.prompt, `"subject": "London"`)
	assert.Contains(t, backend.prompt, "Return only the JSON object")
	assert.Equal(t, "llm://gpt-4o", o.Sentinel())
}

func TestOracleFailures(t *testing.T) {
	tests := []struct {
		name          string
		backend       models.Completer
		justification string
	}{
		{"no backend", nil, "LLM fallback failed: no completion backend configured"},
		{"transport error", &fakeCompleter{err: errors.New("connection refused")}, "LLM fallback failed: connection refused"},
		{"unparseable output", &fakeCompleter{reply: "I cannot answer that."}, "LLM fallback used, but output could not be parsed."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.backend, "test-model").Verify(context.Background(), rainPrediction)

			assert.Equal(t, models.VerdictUnknown, got.Verdict)
			assert.Equal(t, DefaultConfidence, got.Confidence)
			assert.Equal(t, tt.justification, got.Justification)
			require.NotNil(t, got.Source)
			assert.Equal(t, "llm://test-model", *got.Source)
		})
	}
}

func TestBuildPrompt(t *testing.T) {
	prompt, err := BuildPrompt(models.Prediction{Subject: "BTC", Predicate: ">", Object: models.NumberObject(70000), Deadline: "2025-06-30"})
	require.NoError(t, err)

	assert.Contains(t, prompt, `"object": 70000`)
	assert.Contains(t, prompt, `"not_matured"`)
}

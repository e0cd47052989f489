package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Alias1177/Verifier/internal/resolver"
	"github.com/Alias1177/Verifier/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePredictionsList(t *testing.T) {
	doc := `
- subject: Bitcoin
  predicate: ">"
  object: 70000
  deadline: "2025-06-30T23:59:59Z"
  context: crypto
- subject: Arsenal
  predicate: beats
  object: Liverpool
  deadline: "2025-03-03"
  context: sports
`
	ps, err := parsePredictions([]byte(doc))
	require.NoError(t, err)
	require.Len(t, ps, 2)
	assert.True(t, ps[0].Object.IsNumber)
	assert.Equal(t, models.PredicateBeats, ps[1].Predicate)
}

func TestParsePredictionsSingleJSON(t *testing.T) {
	ps, err := parsePredictions([]byte(`{"subject": "UK CPI", "predicate": ">", "object": 3.2, "deadline": "2024-03-31", "context": "cpi"}`))
	require.NoError(t, err)
	require.Len(t, ps, 1)
	assert.Equal(t, "UK CPI", ps[0].Subject)
	assert.Equal(t, 3.2, ps[0].Object.Number)
}

func TestParsePredictionsErrors(t *testing.T) {
	for _, doc := range []string{"", "just a string", "- [1, 2]", "subject: [unclosed"} {
		_, err := parsePredictions([]byte(doc))
		assert.Error(t, err, doc)
	}
}

func TestLoadPredictions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "predictions.yaml")
	require.NoError(t, os.WriteFile(path, []byte("subject: ETH\npredicate: '<'\nobject: 1000\n"), 0o600))

	ps, err := loadPredictions(path)
	require.NoError(t, err)
	require.Len(t, ps, 1)
	assert.Equal(t, models.PredicateLess, ps[0].Predicate)

	_, err = loadPredictions(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParseObject(t *testing.T) {
	assert.True(t, parseObject("").IsZero())
	assert.True(t, parseObject(" 70000 ").IsNumber)
	assert.Equal(t, "Liverpool", parseObject("Liverpool").String())
	assert.False(t, parseObject("2024 US election").IsNumber)
}

func TestVerifyAllPreservesOrder(t *testing.T) {
	svc := resolver.New(resolver.Sources{Model: "test"}, nil, nil)

	results, err := verifyAll(context.Background(), svc, demoPredictions, 3)
	require.NoError(t, err)
	require.Len(t, results, len(demoPredictions))

	wantDomains := []models.Domain{
		models.DomainPrice,
		models.DomainPrice,
		models.DomainPrice,
		models.DomainPolitics,
		models.DomainSports,
		models.DomainEconomics,
	}
	for i, r := range results {
		assert.Equal(t, demoPredictions[i].Subject, r.Prediction.Subject)
		assert.Equal(t, wantDomains[i], r.Domain)
		assert.True(t, r.Verdict.Verdict.Valid())
	}
}

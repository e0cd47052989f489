package verifier

import (
	"context"
	"testing"

	"github.com/Alias1177/Verifier/internal/metrics"
	"github.com/Alias1177/Verifier/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tagged returns a strategy that answers with its domain name as justification
func tagged(domain models.Domain) Strategy {
	return StrategyFunc(func(_ context.Context, _ models.Prediction) models.Verdict {
		return models.Verdict{Verdict: models.VerdictTrue, Confidence: 1, Justification: string(domain)}
	})
}

func allStrategies() map[models.Domain]Strategy {
	return map[models.Domain]Strategy{
		models.DomainPrice:     tagged(models.DomainPrice),
		models.DomainPolitics:  tagged(models.DomainPolitics),
		models.DomainSports:    tagged(models.DomainSports),
		models.DomainEconomics: tagged(models.DomainEconomics),
	}
}

func TestRouterSelect(t *testing.T) {
	r := NewRouter(allStrategies(), tagged(models.DomainFallback))

	tests := []struct {
		name    string
		subject string
		context string
		want    models.Domain
	}{
		{"crypto context", "Anything", "crypto", models.DomainPrice},
		{"stocks context", "AAPL", "Stocks", models.DomainPrice},
		{"election context", "Jane Smith", "election", models.DomainPolitics},
		{"football context", "Chelsea", " Football ", models.DomainSports},
		{"cpi context", "UK CPI", "cpi", models.DomainEconomics},
		{"employment context", "US NFP", "employment", models.DomainEconomics},
		{"context beats subject", "Bitcoin", "sports", models.DomainSports},
		{"bitcoin subject", "Bitcoin", "", models.DomainPrice},
		{"eth subject", "ETH", "misc", models.DomainPrice},
		{"president subject", "President Smith", "", models.DomainPolitics},
		{"arsenal subject", "Arsenal", "", models.DomainSports},
		{"price before politics", "Trump stock", "", models.DomainPrice},
		{"politics before sports", "Biden team", "", models.DomainPolitics},
		{"economics has no subject keywords", "UK GDP", "", models.DomainFallback},
		{"nothing matches", "Will it rain", "weather", models.DomainFallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := models.Prediction{Subject: tt.subject, Context: tt.context}
			assert.Equal(t, tt.want, r.Select(p))
			assert.Equal(t, tt.want, r.Select(p), "routing is deterministic")
		})
	}
}

func TestRouterRouteDispatches(t *testing.T) {
	r := NewRouter(allStrategies(), tagged(models.DomainFallback))

	got := r.Route(context.Background(), models.Prediction{Subject: "Arsenal", Context: "sports"})
	assert.Equal(t, string(models.DomainSports), got.Justification)

	got = r.Route(context.Background(), models.Prediction{Subject: "Will it rain"})
	assert.Equal(t, string(models.DomainFallback), got.Justification)
}

func TestRouterSkipsDomainsWithoutStrategy(t *testing.T) {
	r := NewRouter(map[models.Domain]Strategy{
		models.DomainSports: tagged(models.DomainSports),
	}, tagged(models.DomainFallback))

	assert.Equal(t, models.DomainFallback, r.Select(models.Prediction{Subject: "BTC", Context: "crypto"}))
	assert.Equal(t, models.DomainSports, r.Select(models.Prediction{Subject: "Arsenal"}))
}

func TestRouterRecoversFromPanics(t *testing.T) {
	strategies := allStrategies()
	strategies[models.DomainPrice] = StrategyFunc(func(context.Context, models.Prediction) models.Verdict {
		panic("index out of range")
	})
	r := NewRouter(strategies, tagged(models.DomainFallback))

	var got models.Verdict
	require.NotPanics(t, func() {
		got = r.Route(context.Background(), models.Prediction{Subject: "BTC"})
	})
	assert.Equal(t, models.VerdictUnknown, got.Verdict)
	assert.Equal(t, 0.0, got.Confidence)
	assert.Nil(t, got.Source)
	assert.Contains(t, got.Justification, "index out of range")
}

func TestRouterRejectsInvalidVerdicts(t *testing.T) {
	strategies := allStrategies()
	strategies[models.DomainPolitics] = StrategyFunc(func(context.Context, models.Prediction) models.Verdict {
		return models.Verdict{Verdict: "maybe", Confidence: 0.4}
	})
	r := NewRouter(strategies, tagged(models.DomainFallback))

	got := r.Route(context.Background(), models.Prediction{Subject: "Biden"})
	assert.Equal(t, models.VerdictUnknown, got.Verdict)
}

func TestRouterWithoutFallback(t *testing.T) {
	r := NewRouter(allStrategies(), nil)

	got := r.Route(context.Background(), models.Prediction{Subject: "Will it rain"})
	assert.Equal(t, models.VerdictUnknown, got.Verdict)
	assert.Equal(t, 0.0, got.Confidence)
}

func TestRouterWithRules(t *testing.T) {
	rules := []Rule{{
		Name:   "always-economics",
		Domain: models.DomainEconomics,
		Match:  func(models.Prediction) bool { return true },
	}}
	r := NewRouter(allStrategies(), nil, WithRules(rules))

	assert.Equal(t, models.DomainEconomics, r.Select(models.Prediction{Subject: "BTC", Context: "crypto"}))
	assert.Equal(t, "router[always-economics -> fallback]", r.String())
}

func TestRouterRecordsMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRouter(allStrategies(), tagged(models.DomainFallback), WithMetrics(metrics.NewRecorder(reg)))

	r.Route(context.Background(), models.Prediction{Subject: "BTC"})
	r.Route(context.Background(), models.Prediction{Subject: "ETH"})

	count, err := testutil.GatherAndCount(reg, "verifier_verifications_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

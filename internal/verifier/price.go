package verifier

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Alias1177/Verifier/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	// PriceWindow is how far before the deadline price samples are considered
	PriceWindow = 30 * 24 * time.Hour
	// ReliableSamples is the sample count above which a series is considered reliable
	ReliableSamples = 10
)

// assetAliases maps common tickers and names to CoinGecko ids
var assetAliases = map[string]string{
	"bitcoin":  "bitcoin",
	"btc":      "bitcoin",
	"ethereum": "ethereum",
	"eth":      "ethereum",
	"cardano":  "cardano",
	"ada":      "cardano",
	"solana":   "solana",
	"sol":      "solana",
	"polkadot": "polkadot",
	"dot":      "polkadot",
}

// CanonicalAsset maps a subject to its canonical asset id
func CanonicalAsset(subject string) string {
	clean := strings.ToLower(strings.TrimSpace(subject))
	if id, ok := assetAliases[clean]; ok {
		return id
	}
	return clean
}

// PriceVerifier resolves "did the asset cross the threshold during the window" predictions
type PriceVerifier struct {
	source models.PriceSource
	now    Clock
	logger zerolog.Logger
}

// NewPriceVerifier creates a price strategy backed by source
func NewPriceVerifier(source models.PriceSource, now Clock) *PriceVerifier {
	if now == nil {
		now = systemClock
	}
	return &PriceVerifier{
		source: source,
		now:    now,
		logger: log.With().Str("component", "price_verifier").Logger(),
	}
}

// Verify checks the window extremes against the target: max for > and >=, min for < and <=
func (v *PriceVerifier) Verify(ctx context.Context, p models.Prediction) models.Verdict {
	if blank(p.Subject) || blank(string(p.Predicate)) || p.Object.IsZero() || blank(p.Deadline) {
		return models.Unknown("Missing required fields for price verification")
	}

	deadline, err := models.ParseDeadline(p.Deadline)
	if err != nil {
		return models.Unknown("Invalid deadline format")
	}

	if v.now().Before(deadline) {
		return models.Verdict{
			Verdict:       models.VerdictNotMatured,
			Confidence:    1.0,
			Justification: fmt.Sprintf("Prediction deadline %s has not passed yet", p.Deadline),
		}
	}

	target, ok := p.Object.Float()
	if !ok {
		return models.Unknown("Price target %q is not numeric", p.Object.String())
	}
	if !p.Predicate.IsNumeric() {
		return models.Unknown("Unsupported predicate: %s", p.Predicate)
	}

	assetID := CanonicalAsset(p.Subject)
	series, err := v.source.PriceHistory(ctx, assetID, deadline.Add(-PriceWindow), deadline)
	if err != nil {
		v.logger.Error().Err(err).Str("asset", assetID).Msg("Price fetch failed")
		return models.Unknown("Could not fetch price data for %s", p.Subject)
	}
	if len(series.Points) == 0 {
		return models.Unknown("Could not fetch price data for %s", p.Subject)
	}

	maxPrice, minPrice := series.MaxMin()
	var extreme float64
	var comparison string
	switch p.Predicate {
	case models.PredicateGreater, models.PredicateGreaterEqual:
		extreme = maxPrice
		comparison = fmt.Sprintf("max price %g vs target %g", maxPrice, target)
	default:
		extreme = minPrice
		comparison = fmt.Sprintf("min price %g vs target %g", minPrice, target)
	}
	hit, _ := p.Predicate.Compare(extreme, target)

	confidence := 0.7
	if len(series.Points) > ReliableSamples {
		confidence = 0.95
	}

	v.logger.Debug().Str("asset", assetID).Int("samples", len(series.Points)).Bool("hit", hit).Msg("Price verified")

	return models.Verdict{
		Verdict:       models.Bool(hit),
		Confidence:    confidence,
		Justification: fmt.Sprintf("%s %s %g: %s", p.Subject, p.Predicate, target, comparison),
		Source:        models.Source(series.SourceURL),
	}
}

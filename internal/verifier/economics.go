package verifier

import (
	"context"
	"fmt"
	"strings"

	"github.com/Alias1177/Verifier/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// indicatorAliases maps short indicator names to TradingEconomics indicator queries
var indicatorAliases = map[string]string{
	"CPI": "consumer price index cpi",
	"GDP": "gdp",
	"NFP": "non farm payrolls",
}

// CanonicalIndicator maps an indicator token to its query string
func CanonicalIndicator(token string) string {
	if q, ok := indicatorAliases[strings.ToUpper(token)]; ok {
		return q
	}
	return strings.ToLower(token)
}

// EconomicsVerifier compares the latest indicator value known at the deadline against a target
type EconomicsVerifier struct {
	source models.IndicatorSource
	logger zerolog.Logger
}

// NewEconomicsVerifier creates an economics strategy backed by source
func NewEconomicsVerifier(source models.IndicatorSource) *EconomicsVerifier {
	return &EconomicsVerifier{
		source: source,
		logger: log.With().Str("component", "economics_verifier").Logger(),
	}
}

// Verify expects a subject of the form "<country> <indicator>", e.g. "UK CPI"
func (v *EconomicsVerifier) Verify(ctx context.Context, p models.Prediction) models.Verdict {
	if blank(p.Subject) || blank(string(p.Predicate)) || p.Object.IsZero() || blank(p.Deadline) {
		return models.Unknown("Missing required fields for economics verification.")
	}

	parts := strings.Fields(p.Subject)
	if len(parts) < 2 {
		return models.Unknown("Subject should be in format '<Country> <Indicator>'")
	}
	country := parts[0]
	indicator := CanonicalIndicator(parts[1])

	deadline, err := models.ParseDeadline(p.Deadline)
	if err != nil {
		return models.Unknown("Invalid deadline format")
	}
	target, ok := p.Object.Float()
	if !ok {
		return models.Unknown("Economics target %q is not numeric", p.Object.String())
	}
	if !p.Predicate.IsNumeric() {
		return models.Unknown("Unsupported predicate: %s", p.Predicate)
	}

	series, err := v.source.Historical(ctx, country, indicator)
	if err != nil {
		v.logger.Error().Err(err).Str("country", country).Str("indicator", indicator).Msg("Economics fetch failed")
		return models.Unknown("Economics verifier error: %s", err)
	}
	if len(series.Points) == 0 {
		return models.Unknown("No data found for %s.", p.Subject)
	}

	best, found := series.LatestAsOf(deadline)
	if !found {
		verdict := models.Unknown("No data before deadline for %s.", p.Subject)
		verdict.Source = models.Source(series.SourceURL)
		return verdict
	}

	hit, _ := p.Predicate.Compare(best.Value, target)
	date := best.Label
	if date == "" {
		date = best.Timestamp.Format("2006-01-02")
	}

	return models.Verdict{
		Verdict:       models.Bool(hit),
		Confidence:    0.9,
		Justification: fmt.Sprintf("%s %s %g: value was %g on %s", p.Subject, p.Predicate, target, best.Value, date),
		Source:        models.Source(series.SourceURL),
	}
}

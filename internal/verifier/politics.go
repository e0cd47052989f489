package verifier

import (
	"context"
	"fmt"
	"strings"

	"github.com/Alias1177/Verifier/internal/extract"
	"github.com/Alias1177/Verifier/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// PoliticsVerifier decides whether a candidate won an election from encyclopedia prose
type PoliticsVerifier struct {
	source models.Encyclopedia
	logger zerolog.Logger
}

// NewPoliticsVerifier creates a politics strategy backed by source
func NewPoliticsVerifier(source models.Encyclopedia) *PoliticsVerifier {
	return &PoliticsVerifier{
		source: source,
		logger: log.With().Str("component", "politics_verifier").Logger(),
	}
}

// Verify applies, in order: withdrawal evidence, winner match, other winners, no evidence
func (v *PoliticsVerifier) Verify(ctx context.Context, p models.Prediction) models.Verdict {
	election := strings.TrimSpace(p.Object.String())
	if blank(p.Subject) || election == "" {
		return models.Unknown("Missing candidate or election name.")
	}

	hits, err := v.source.Search(ctx, election+" election")
	if err != nil {
		v.logger.Error().Err(err).Str("election", election).Msg("Encyclopedia search failed")
		return models.Unknown("Politics verifier error: %s", err)
	}
	if len(hits) == 0 {
		return models.Unknown("No Wikipedia page found for election: %s", election)
	}

	page := hits[0]
	text, err := v.source.PlainText(ctx, page.Title)
	if err != nil {
		v.logger.Error().Err(err).Str("title", page.Title).Msg("Encyclopedia fetch failed")
		return models.Unknown("Politics verifier error: %s", err)
	}

	return Decide(p.Subject, election, text, page.URL)
}

// Decide applies the politics decision policy to a page body
func Decide(subject, election, text, sourceURL string) models.Verdict {
	source := models.Source(sourceURL)

	if extract.Withdrew(text, subject) {
		return models.Verdict{
			Verdict:       models.VerdictFalse,
			Confidence:    0.9,
			Justification: fmt.Sprintf("%s withdrew from or suspended their campaign in %s.", subject, election),
			Source:        source,
		}
	}

	winners := extract.Winners(text)
	if _, ok := extract.MatchWinner(winners, subject); ok {
		return models.Verdict{
			Verdict:       models.VerdictTrue,
			Confidence:    0.95,
			Justification: fmt.Sprintf("%s is listed as the winner in Wikipedia for %s.", subject, election),
			Source:        source,
		}
	}

	if len(winners) > 0 {
		return models.Verdict{
			Verdict:       models.VerdictFalse,
			Confidence:    0.95,
			Justification: fmt.Sprintf("%s is not listed as the winner for %s; extracted winners: %s.", subject, election, strings.Join(winners, ", ")),
			Source:        source,
		}
	}

	verdict := models.Unknown("Could not determine the winner of %s from Wikipedia.", election)
	verdict.Source = source
	return verdict
}

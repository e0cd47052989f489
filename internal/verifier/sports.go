package verifier

import (
	"context"
	"fmt"
	"strings"

	"github.com/Alias1177/Verifier/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultLeague is used when no league is configured.
// TODO: derive the league from the teams instead of scanning a single league.
const DefaultLeague = "English Premier League"

// SportsVerifier decides whether subject beat object on the deadline's date
type SportsVerifier struct {
	source models.EventSource
	league string
	logger zerolog.Logger
}

// NewSportsVerifier creates a sports strategy scanning league
func NewSportsVerifier(source models.EventSource, league string) *SportsVerifier {
	if league == "" {
		league = DefaultLeague
	}
	return &SportsVerifier{
		source: source,
		league: league,
		logger: log.With().Str("component", "sports_verifier").Logger(),
	}
}

// Verify looks for the fixture between subject and object on the deadline's date
func (v *SportsVerifier) Verify(ctx context.Context, p models.Prediction) models.Verdict {
	opponent := strings.TrimSpace(p.Object.String())
	if blank(p.Subject) || opponent == "" || blank(p.Deadline) {
		return models.Unknown("Missing team names or date.")
	}

	date, ok := models.DeadlineDate(p.Deadline)
	if !ok {
		return models.Unknown("Invalid deadline format")
	}

	events, err := v.source.EventsOnDay(ctx, date, v.league)
	if err != nil {
		v.logger.Error().Err(err).Str("date", date).Msg("Sports fetch failed")
		return models.Unknown("Sports verifier error: %s", err)
	}

	team := strings.ToLower(strings.TrimSpace(p.Subject))
	other := strings.ToLower(opponent)

	for _, e := range events {
		home := strings.ToLower(strings.TrimSpace(e.HomeTeam))
		away := strings.ToLower(strings.TrimSpace(e.AwayTeam))
		if !sameFixture(home, away, team, other) {
			continue
		}
		if !e.HasScores() {
			continue
		}

		homeScore, awayScore := *e.HomeScore, *e.AwayScore
		source := models.Source(e.SourceURL)

		if team == home && homeScore > awayScore {
			return models.Verdict{
				Verdict:       models.VerdictTrue,
				Confidence:    0.9,
				Justification: fmt.Sprintf("%s beat %s on %s (%d-%d).", p.Subject, opponent, date, homeScore, awayScore),
				Source:        source,
			}
		}
		if team == away && awayScore > homeScore {
			return models.Verdict{
				Verdict:       models.VerdictTrue,
				Confidence:    0.9,
				Justification: fmt.Sprintf("%s beat %s on %s (%d-%d).", p.Subject, opponent, date, awayScore, homeScore),
				Source:        source,
			}
		}
		return models.Verdict{
			Verdict:       models.VerdictFalse,
			Confidence:    0.8,
			Justification: fmt.Sprintf("%s did not beat %s on %s (score: %d-%d).", p.Subject, opponent, date, homeScore, awayScore),
			Source:        source,
		}
	}

	return models.Unknown("No match found for %s vs %s on %s.", p.Subject, opponent, date)
}

// sameFixture reports whether {home, away} equals {a, b}
func sameFixture(home, away, a, b string) bool {
	return (home == a && away == b) || (home == b && away == a)
}

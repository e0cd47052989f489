package models

import (
	"context"
	"time"
)

// PriceSource returns price samples for a canonical asset id over [from, to]
type PriceSource interface {
	PriceHistory(ctx context.Context, assetID string, from, to time.Time) (PriceSeries, error)
}

// IndicatorSource returns the historical series of an economic indicator for a country
type IndicatorSource interface {
	Historical(ctx context.Context, country, indicator string) (IndicatorSeries, error)
}

// EventSource returns the fixtures played in a league on a given day (YYYY-MM-DD)
type EventSource interface {
	EventsOnDay(ctx context.Context, date, league string) ([]MatchEvent, error)
}

// Encyclopedia searches an encyclopedic corpus and returns plain-text page bodies
type Encyclopedia interface {
	Search(ctx context.Context, query string) ([]SearchHit, error)
	PlainText(ctx context.Context, title string) (string, error)
}

// Completer is an opaque text-completion backend
type Completer interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
	Model() string
}

package verifier

import (
	"context"
	"time"

	"github.com/Alias1177/Verifier/models"
)

type fakePrices struct {
	series models.PriceSeries
	err    error
	calls  int
	from   time.Time
	to     time.Time
	asset  string
}

func (f *fakePrices) PriceHistory(_ context.Context, assetID string, from, to time.Time) (models.PriceSeries, error) {
	f.calls++
	f.asset, f.from, f.to = assetID, from, to
	return f.series, f.err
}

type fakeIndicators struct {
	series    models.IndicatorSeries
	err       error
	calls     int
	country   string
	indicator string
}

func (f *fakeIndicators) Historical(_ context.Context, country, indicator string) (models.IndicatorSeries, error) {
	f.calls++
	f.country, f.indicator = country, indicator
	return f.series, f.err
}

type fakeEvents struct {
	events []models.MatchEvent
	err    error
	date   string
	league string
}

func (f *fakeEvents) EventsOnDay(_ context.Context, date, league string) ([]models.MatchEvent, error) {
	f.date, f.league = date, league
	return f.events, f.err
}

type fakeEncyclopedia struct {
	hits      []models.SearchHit
	text      string
	searchErr error
	textErr   error
	query     string
	title     string
}

func (f *fakeEncyclopedia) Search(_ context.Context, query string) ([]models.SearchHit, error) {
	f.query = query
	return f.hits, f.searchErr
}

func (f *fakeEncyclopedia) PlainText(_ context.Context, title string) (string, error) {
	f.title = title
	return f.text, f.textErr
}

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

func points(values ...float64) []models.EvidencePoint {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	out := make([]models.EvidencePoint, len(values))
	for i, v := range values {
		out[i] = models.EvidencePoint{Timestamp: start.Add(time.Duration(i) * time.Hour), Value: v}
	}
	return out
}

func intPtr(v int) *int {
	return &v
}

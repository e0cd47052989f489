package thesportsdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	httpClient "github.com/Alias1177/Verifier/internal/platform/http"
	"github.com/Alias1177/Verifier/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Client is the TheSportsDB API client
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *httpClient.Client
	logger     zerolog.Logger
}

// ClientOptions holds options for creating a new TheSportsDB client
type ClientOptions struct {
	APIKey         string
	BaseURL        string
	RequestTimeout time.Duration
	RequestsPerSec int
	MaxRetries     int
}

type eventsResponse struct {
	Events []event `json:"events"`
}

type event struct {
	ID         string      `json:"idEvent"`
	HomeTeam   string      `json:"strHomeTeam"`
	AwayTeam   string      `json:"strAwayTeam"`
	HomeScore  flexibleInt `json:"intHomeScore"`
	AwayScore  flexibleInt `json:"intAwayScore"`
	DateEvent  string      `json:"dateEvent"`
	EventThumb string      `json:"strEventThumb"`
}

// flexibleInt decodes scores sent as "3", 3, "" or null. Anything else, such as
// "PP" for a postponed fixture, decodes as no score.
type flexibleInt struct {
	Value *int
}

func (f *flexibleInt) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" || raw == `""` {
		f.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		raw = strings.TrimSpace(s)
	}
	if raw == "" {
		f.Value = nil
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Debug().Str("score", raw).Msg("Ignoring non-numeric score")
		f.Value = nil
		return nil
	}
	f.Value = &v
	return nil
}

// NewClient creates a new TheSportsDB API client
func NewClient(options ClientOptions) *Client {
	if options.BaseURL == "" {
		options.BaseURL = "https://www.thesportsdb.com/api/v1/json"
	}
	if options.APIKey == "" {
		options.APIKey = "3"
	}

	return &Client{
		apiKey:  options.APIKey,
		baseURL: strings.TrimRight(options.BaseURL, "/"),
		httpClient: httpClient.NewClient(httpClient.ClientOptions{
			Timeout:        options.RequestTimeout,
			RequestsPerSec: options.RequestsPerSec,
			MaxRetries:     options.MaxRetries,
			Component:      "thesportsdb_http",
		}),
		logger: log.With().Str("component", "thesportsdb_client").Logger(),
	}
}

// EventsOnDay lists the events of league played on date (YYYY-MM-DD)
func (c *Client) EventsOnDay(ctx context.Context, date, league string) ([]models.MatchEvent, error) {
	endpoint := fmt.Sprintf("%s/%s/eventsday.php", c.baseURL, url.PathEscape(c.apiKey))
	params := url.Values{}
	params.Set("d", date)
	if league != "" {
		params.Set("l", league)
	}

	var data eventsResponse
	if err := c.httpClient.GetJSON(ctx, endpoint, params, nil, &data); err != nil {
		return nil, fmt.Errorf("thesportsdb events on %s: %w", date, err)
	}

	events := make([]models.MatchEvent, 0, len(data.Events))
	for _, e := range data.Events {
		events = append(events, models.MatchEvent{
			ID:        e.ID,
			HomeTeam:  e.HomeTeam,
			AwayTeam:  e.AwayTeam,
			HomeScore: e.HomeScore.Value,
			AwayScore: e.AwayScore.Value,
			Date:      e.DateEvent,
			SourceURL: eventURL(e),
		})
	}

	c.logger.Debug().Str("date", date).Str("league", league).Int("count", len(events)).Msg("Fetched events")
	return events, nil
}

func eventURL(e event) string {
	if e.ID != "" {
		return "https://www.thesportsdb.com/event/" + e.ID
	}
	return e.EventThumb
}

package tradingeconomics

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	httpClient "github.com/Alias1177/Verifier/internal/platform/http"
	"github.com/Alias1177/Verifier/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ErrNoData is returned when the provider has no observations for the indicator
var ErrNoData = errors.New("no indicator data")

// Client is the TradingEconomics historical data client
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *httpClient.Client
	logger     zerolog.Logger
}

// ClientOptions holds options for creating a new TradingEconomics client
type ClientOptions struct {
	APIKey         string
	BaseURL        string
	RequestTimeout time.Duration
	RequestsPerSec int
	MaxRetries     int
}

type observation struct {
	Country   string   `json:"Country"`
	Category  string   `json:"Category"`
	DateTime  string   `json:"DateTime"`
	Value     *float64 `json:"Value"`
	Frequency string   `json:"Frequency"`
}

// NewClient creates a new TradingEconomics client
func NewClient(options ClientOptions) *Client {
	if options.BaseURL == "" {
		options.BaseURL = "https://api.tradingeconomics.com"
	}
	if options.APIKey == "" {
		options.APIKey = "guest:guest"
	}

	return &Client{
		apiKey:  options.APIKey,
		baseURL: strings.TrimRight(options.BaseURL, "/"),
		httpClient: httpClient.NewClient(httpClient.ClientOptions{
			Timeout:        options.RequestTimeout,
			RequestsPerSec: options.RequestsPerSec,
			MaxRetries:     options.MaxRetries,
			Component:      "tradingeconomics_http",
		}),
		logger: log.With().Str("component", "tradingeconomics_client").Logger(),
	}
}

// Historical fetches every published observation of indicator for country
func (c *Client) Historical(ctx context.Context, country, indicator string) (models.IndicatorSeries, error) {
	endpoint := fmt.Sprintf("%s/historical/country/%s/indicator/%s",
		c.baseURL, url.PathEscape(strings.ToLower(country)), url.PathEscape(indicator))
	params := url.Values{}
	params.Set("c", c.apiKey)
	params.Set("f", "json")

	var data []observation
	if err := c.httpClient.GetJSON(ctx, endpoint, params, nil, &data); err != nil {
		return models.IndicatorSeries{}, fmt.Errorf("tradingeconomics %s/%s: %w", country, indicator, err)
	}

	series := models.IndicatorSeries{Country: country, Indicator: indicator, SourceURL: endpoint}
	for _, o := range data {
		if o.Value == nil {
			continue
		}
		ts, err := parseDateTime(o.DateTime)
		if err != nil {
			c.logger.Debug().Err(err).Str("datetime", o.DateTime).Msg("Skipping observation")
			continue
		}
		series.Points = append(series.Points, models.EvidencePoint{
			Timestamp: ts,
			Value:     *o.Value,
			Label:     o.DateTime,
			Source:    endpoint,
		})
	}

	if len(series.Points) == 0 {
		return series, ErrNoData
	}

	c.logger.Debug().Str("country", country).Str("indicator", indicator).Int("count", len(series.Points)).Msg("Fetched indicator history")
	return series, nil
}

// parseDateTime reads the first 19 characters as a zone-less UTC timestamp
func parseDateTime(s string) (time.Time, error) {
	if len(s) > 19 {
		s = s[:19]
	}
	return time.Parse("2006-01-02T15:04:05", s)
}

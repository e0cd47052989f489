package coingecko

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	httpClient "github.com/Alias1177/Verifier/internal/platform/http"
	"github.com/Alias1177/Verifier/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ErrEmptySeries is returned when the provider has no samples for the window
var ErrEmptySeries = errors.New("empty price series")

// Client is the CoinGecko API client
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *httpClient.Client
	logger     zerolog.Logger
}

// ClientOptions holds options for creating a new CoinGecko client
type ClientOptions struct {
	APIKey         string
	BaseURL        string
	RequestTimeout time.Duration
	RequestsPerSec int
	MaxRetries     int
}

type marketChartResponse struct {
	Prices [][]float64 `json:"prices"`
}

// NewClient creates a new CoinGecko API client
func NewClient(options ClientOptions) *Client {
	if options.BaseURL == "" {
		options.BaseURL = "https://api.coingecko.com/api/v3"
	}

	return &Client{
		apiKey:  options.APIKey,
		baseURL: strings.TrimRight(options.BaseURL, "/"),
		httpClient: httpClient.NewClient(httpClient.ClientOptions{
			Timeout:        options.RequestTimeout,
			RequestsPerSec: options.RequestsPerSec,
			MaxRetries:     options.MaxRetries,
			Component:      "coingecko_http",
		}),
		logger: log.With().Str("component", "coingecko_client").Logger(),
	}
}

// PriceHistory fetches USD price samples for coinID between from and to
func (c *Client) PriceHistory(ctx context.Context, coinID string, from, to time.Time) (models.PriceSeries, error) {
	endpoint := fmt.Sprintf("%s/coins/%s/market_chart/range", c.baseURL, url.PathEscape(coinID))
	params := url.Values{}
	params.Set("vs_currency", "usd")
	params.Set("from", strconv.FormatInt(from.Unix(), 10))
	params.Set("to", strconv.FormatInt(to.Unix(), 10))

	var headers map[string]string
	if c.apiKey != "" {
		headers = map[string]string{"x-cg-demo-api-key": c.apiKey}
	}

	var data marketChartResponse
	if err := c.httpClient.GetJSON(ctx, endpoint, params, headers, &data); err != nil {
		return models.PriceSeries{}, fmt.Errorf("coingecko market chart for %s: %w", coinID, err)
	}

	series := models.PriceSeries{AssetID: coinID, SourceURL: endpoint}
	for _, sample := range data.Prices {
		if len(sample) < 2 {
			continue
		}
		series.Points = append(series.Points, models.EvidencePoint{
			Timestamp: time.UnixMilli(int64(sample[0])).UTC(),
			Value:     sample[1],
			Source:    endpoint,
		})
	}

	if len(series.Points) == 0 {
		c.logger.Warn().Str("coin", coinID).Msg("No prices in response")
		return series, ErrEmptySeries
	}

	sort.Slice(series.Points, func(i, j int) bool {
		return series.Points[i].Timestamp.Before(series.Points[j].Timestamp)
	})

	c.logger.Debug().Str("coin", coinID).Int("count", len(series.Points)).Msg("Fetched prices")
	return series, nil
}

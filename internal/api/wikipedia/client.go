package wikipedia

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

// ErrPageNotFound is returned when a title has no page body
var ErrPageNotFound = errors.New("page not found")

// Client is the MediaWiki action API client
type Client struct {
	apiURL     string
	pageBase   string
	httpClient *httpClient.Client
	logger     zerolog.Logger
}

// ClientOptions holds options for creating a new Wikipedia client
type ClientOptions struct {
	APIURL         string
	RequestTimeout time.Duration
	RequestsPerSec int
	MaxRetries     int
}

type searchResponse struct {
	Query struct {
		Search []struct {
			Title  string `json:"title"`
			PageID int    `json:"pageid"`
		} `json:"search"`
	} `json:"query"`
}

type extractResponse struct {
	Query struct {
		Pages map[string]struct {
			Title   string  `json:"title"`
			Extract string  `json:"extract"`
			Missing *string `json:"missing,omitempty"`
		} `json:"pages"`
	} `json:"query"`
}

// NewClient creates a new Wikipedia client
func NewClient(options ClientOptions) *Client {
	if options.APIURL == "" {
		options.APIURL = "https://en.wikipedia.org/w/api.php"
	}

	return &Client{
		apiURL:   options.APIURL,
		pageBase: pageBase(options.APIURL),
		httpClient: httpClient.NewClient(httpClient.ClientOptions{
			Timeout:        options.RequestTimeout,
			RequestsPerSec: options.RequestsPerSec,
			MaxRetries:     options.MaxRetries,
			Component:      "wikipedia_http",
		}),
		logger: log.With().Str("component", "wikipedia_client").Logger(),
	}
}

// Search returns the full-text search hits for query, most relevant first
func (c *Client) Search(ctx context.Context, query string) ([]models.SearchHit, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("list", "search")
	params.Set("srsearch", query)
	params.Set("format", "json")

	var data searchResponse
	if err := c.httpClient.GetJSON(ctx, c.apiURL, params, nil, &data); err != nil {
		return nil, fmt.Errorf("wikipedia search %q: %w", query, err)
	}

	hits := make([]models.SearchHit, 0, len(data.Query.Search))
	for _, s := range data.Query.Search {
		hits = append(hits, models.SearchHit{Title: s.Title, URL: c.PageURL(s.Title)})
	}

	c.logger.Debug().Str("query", query).Int("hits", len(hits)).Msg("Searched")
	return hits, nil
}

// PlainText returns the plain-text extract of the page titled title
func (c *Client) PlainText(ctx context.Context, title string) (string, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("prop", "extracts")
	params.Set("explaintext", "1")
	params.Set("titles", title)
	params.Set("format", "json")

	var data extractResponse
	if err := c.httpClient.GetJSON(ctx, c.apiURL, params, nil, &data); err != nil {
		return "", fmt.Errorf("wikipedia extract %q: %w", title, err)
	}

	for _, page := range data.Query.Pages {
		if page.Missing != nil {
			continue
		}
		return page.Extract, nil
	}
	return "", fmt.Errorf("%w: %s", ErrPageNotFound, title)
}

// PageURL builds the human-readable article URL for title
func (c *Client) PageURL(title string) string {
	return c.pageBase + url.PathEscape(strings.ReplaceAll(title, " ", "_"))
}

func pageBase(apiURL string) string {
	u, err := url.Parse(apiURL)
	if err != nil || u.Host == "" {
		return "https://en.wikipedia.org/wiki/"
	}
	return u.Scheme + "://" + u.Host + "/wiki/"
}

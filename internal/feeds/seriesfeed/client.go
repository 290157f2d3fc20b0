package seriesfeed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"gamecast-service/internal/domain"
	"gamecast-service/internal/feeds"
)

const (
	providerName       = "seriesfeed"
	defaultBaseURL     = "https://series.example.com/v1"
	defaultHTTPTimeout = 10 * time.Second
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config controls how the client reaches the playoff series API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client fetches per-season playoff series records. The feed speaks canonical
// team ids; the client only normalizes pair ordering.
type Client struct {
	baseURL    string
	httpClient httpDoer
}

// NewClient constructs a series feed client.
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	var doer httpDoer = cfg.HTTPClient
	if cfg.HTTPClient == nil {
		doer = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: doer,
	}
}

// Name identifies the feed in logs and metrics.
func (c *Client) Name() string {
	return providerName
}

// ListSeries retrieves every playoff series record for a season.
func (c *Client) ListSeries(ctx context.Context, season string) ([]domain.PlayoffSeriesRecord, error) {
	url := fmt.Sprintf("%s/series?season=%s", c.baseURL, season)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, feeds.Transient(providerName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, feeds.Transient(providerName, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))))
	}

	var payload seriesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, feeds.Transient(providerName, err)
	}

	records := make([]domain.PlayoffSeriesRecord, 0, len(payload.Series))
	for _, row := range payload.Series {
		records = append(records, mapSeries(row, season))
	}
	return records, nil
}

type seriesResponse struct {
	Series []seriesRow `json:"series"`
}

type seriesRow struct {
	Teams   []string  `json:"teams"`
	Summary string    `json:"summary"`
	Games   []gameRow `json:"games"`
}

type gameRow struct {
	ID     string `json:"id"`
	Number int    `json:"number"`
}

func mapSeries(row seriesRow, season string) domain.PlayoffSeriesRecord {
	record := domain.PlayoffSeriesRecord{
		Season:  season,
		Summary: strings.TrimSpace(row.Summary),
	}
	if len(row.Teams) >= 2 {
		a, b := row.Teams[0], row.Teams[1]
		if b < a {
			a, b = b, a
		}
		record.TeamIDs = [2]string{a, b}
	}
	record.Games = make([]domain.SeriesGame, 0, len(row.Games))
	for _, g := range row.Games {
		record.Games = append(record.Games, domain.SeriesGame{
			ExternalGameID: g.ID,
			GameNumber:     g.Number,
		})
	}
	return record
}

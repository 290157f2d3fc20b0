package broadcast

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
	"gamecast-service/internal/timeutil"
)

const (
	providerName       = "broadcast"
	defaultBaseURL     = "https://broadcasts.example.com/v1"
	defaultHTTPTimeout = 10 * time.Second
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config controls how the client reaches the broadcast listing API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client fetches daily broadcast-network listings. Rows name teams in the
// listing's own free-text refs; callers resolve them against the directory.
type Client struct {
	baseURL    string
	httpClient httpDoer
}

// NewClient constructs a broadcast listing client.
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

// ListBroadcasts retrieves every listing row for the given calendar date.
func (c *Client) ListBroadcasts(ctx context.Context, date time.Time) ([]domain.BroadcastEntry, error) {
	url := fmt.Sprintf("%s/broadcasts?date=%s", c.baseURL, timeutil.FormatDate(date))

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

	var payload listingResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, feeds.Transient(providerName, err)
	}

	entries := make([]domain.BroadcastEntry, 0, len(payload.Listings))
	for _, row := range payload.Listings {
		entries = append(entries, mapListing(row))
	}
	return entries, nil
}

type listingResponse struct {
	Listings []listingRow `json:"listings"`
}

type listingRow struct {
	Network string `json:"network"`
	Home    string `json:"home"`
	Away    string `json:"away"`
	Date    string `json:"date"`
}

func mapListing(row listingRow) domain.BroadcastEntry {
	entry := domain.BroadcastEntry{
		Network: strings.TrimSpace(row.Network),
		HomeRef: strings.TrimSpace(row.Home),
		AwayRef: strings.TrimSpace(row.Away),
	}
	if parsed, err := timeutil.ParseDate(row.Date); err == nil {
		entry.Date = parsed
	}
	return entry
}

package espn

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

// Config controls how the client reaches the upstream scoreboard API.
type Config struct {
	BaseURL    string
	LeaguePath string // e.g. "football/nfl"
	HTTPClient *http.Client
}

// Client fetches scoreboard listings and event summaries and maps them to the
// generic feed shapes. It serves as the possession feed: the summary payload
// carries the live possession marker for football games.
type Client struct {
	baseURL    string
	leaguePath string
	httpClient httpDoer
}

// NewClient constructs a scoreboard client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		leaguePath: normalizeLeaguePath(cfg.LeaguePath),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// Name identifies the feed in logs and metrics.
func (c *Client) Name() string {
	return providerName
}

// ListEvents retrieves every event on the given calendar date.
func (c *Client) ListEvents(ctx context.Context, date time.Time) ([]feeds.Event, error) {
	url := fmt.Sprintf("%s/%s/scoreboard?dates=%s", c.baseURL, c.leaguePath, date.Format(scoreboardDateLayout))

	var payload scoreboardResponse
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return nil, err
	}

	events := make([]feeds.Event, 0, len(payload.Events))
	for _, e := range payload.Events {
		events = append(events, mapEvent(e))
	}
	return events, nil
}

// EventDetail fetches the live summary for a single event.
func (c *Client) EventDetail(ctx context.Context, externalID string) (feeds.EventDetail, error) {
	url := fmt.Sprintf("%s/%s/summary?event=%s", c.baseURL, c.leaguePath, externalID)

	var payload summaryResponse
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return feeds.EventDetail{}, err
	}

	if len(payload.Header.Competitions) == 0 {
		return feeds.EventDetail{}, fmt.Errorf("espn: summary for %s has no competition: %w", externalID, domain.ErrNotFound)
	}
	return mapDetail(payload.Header.Competitions[0]), nil
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return feeds.Transient(providerName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return feeds.Transient(providerName, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return feeds.Transient(providerName, err)
	}
	return nil
}

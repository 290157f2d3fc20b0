package schedstore

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"gamecast-service/internal/feeds"
	"gamecast-service/internal/timeutil"
)

// Config controls how the schedule-store client reaches the upstream API.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	MaxPages   int
}

// Client fetches games from the canonical team/schedule store. The store
// speaks in status phrases ("Final", "In Progress", "Halftime") rather than
// short codes; the state machine's basketball table covers that vocabulary.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
	maxPages   int
}

// NewClient constructs a schedule-store client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		maxPages:   resolveMaxPages(cfg.MaxPages),
	}
}

// Name identifies the feed in logs and metrics.
func (c *Client) Name() string {
	return providerName
}

// ListEvents retrieves every game on the given calendar date, following
// pagination up to the configured page cap.
func (c *Client) ListEvents(ctx context.Context, date time.Time) ([]feeds.Event, error) {
	page := 1
	events := make([]feeds.Event, 0)

	for {
		req, err := c.buildRequest(ctx, date, page)
		if err != nil {
			return nil, err
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, feeds.Transient(providerName, err)
		}

		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			resp.Body.Close()
			return nil, feeds.Transient(providerName, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))))
		}

		var payload gamesResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr != nil {
			resp.Body.Close()
			return nil, feeds.Transient(providerName, decodeErr)
		}
		resp.Body.Close()

		for _, g := range payload.Data {
			events = append(events, mapGame(g))
		}

		totalPages := payload.Meta.TotalPages
		if totalPages > 0 {
			if page >= totalPages {
				break
			}
		} else if len(payload.Data) < defaultPerPage {
			break
		}
		if page >= c.maxPages {
			break
		}
		page++
	}

	return events, nil
}

func (c *Client) buildRequest(ctx context.Context, date time.Time, page int) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/games", nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Set("dates[]", timeutil.FormatDate(date))
	q.Set("per_page", strconv.Itoa(defaultPerPage))
	q.Set("page", strconv.Itoa(page))
	req.URL.RawQuery = q.Encode()

	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	return req, nil
}

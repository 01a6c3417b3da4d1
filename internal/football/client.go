// Package football is a thin client for the API-Football v3 HTTP API.
// It fetches live fixtures and per-fixture lineups; every other detail of
// the API is someone else's problem.
package football

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

// ErrUnavailable marks any transport or non-200 failure so callers can show
// a neutral "try again" message instead of the raw error.
var ErrUnavailable = fmt.Errorf("football data unavailable")

// Client calls the API-Football endpoints. Requests are paced with a token
// bucket; the free tier tolerates very little burst.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient returns a Client for the given base URL and API key.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Every(200*time.Millisecond), 1),
	}
}

// LiveFixtures returns all fixtures currently in play, most relevant first
// as delivered by the API.
func (c *Client) LiveFixtures(ctx context.Context) ([]Fixture, error) {
	var out fixturesResponse
	if err := c.get(ctx, "/fixtures", url.Values{"live": {"all"}}, &out); err != nil {
		return nil, err
	}
	return out.Response, nil
}

// Lineups returns the announced lineups for one fixture. An empty slice
// means the lineups are not published yet, which is not an error.
func (c *Client) Lineups(ctx context.Context, fixtureID int) ([]TeamLineup, error) {
	var out lineupsResponse
	params := url.Values{"fixture": {fmt.Sprint(fixtureID)}}
	if err := c.get(ctx, "/fixtures/lineups", params, &out); err != nil {
		return nil, err
	}
	return out.Response, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, result any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("x-apisports-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("%w: decode: %v", ErrUnavailable, err)
	}
	return nil
}

type fixturesResponse struct {
	Response []Fixture `json:"response"`
}

type lineupsResponse struct {
	Response []TeamLineup `json:"response"`
}

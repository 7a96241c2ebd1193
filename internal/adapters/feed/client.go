// Package feed fetches season records from the upstream data service.
//
// Every fetch is one GET against a fixed endpoint whose response body is
// a JSON array. Batched endpoints take the requested ids comma-joined in
// a single query parameter; the id list is passed through as-is, with no
// deduplication and no positional pairing of responses to requests.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/semaphore"

	model "github.com/okian/boxscore/internal/domain/model"
	"github.com/okian/boxscore/pkg/metrics"
)

// Upstream endpoint names.
const (
	EndpointGames             = "games"
	EndpointGameStatsheets    = "gameStatsheets"
	EndpointTeamStatsheets    = "teamStatsheets"
	EndpointPlayerSeasonStats = "playerSeasonStats"
)

// Default client configuration.
const (
	defaultBaseURL = "https://www.blaseball.com/database"
	defaultTimeout = 30 * time.Second
)

// Fetcher provides typed access to the four upstream resources.
type Fetcher interface {
	// Games returns the games played on a day, using 0-based season and day.
	Games(ctx context.Context, season, day int) ([]model.GameUpdate, error)
	// GameStatsheets returns the statsheets for the requested ids.
	GameStatsheets(ctx context.Context, ids []string) ([]model.GameStatsheet, error)
	// TeamStatsheets returns the team statsheets for the requested ids.
	TeamStatsheets(ctx context.Context, ids []string) ([]model.TeamStatsheet, error)
	// PlayerSeasonStats returns the player statsheets for the requested ids.
	PlayerSeasonStats(ctx context.Context, ids []string) ([]model.PlayerStatsheet, error)
}

// Client implements Fetcher over HTTP. One Client, and the http.Client
// inside it, is shared by every concurrent day pipeline.
type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *semaphore.Weighted // nil means unbounded
}

var _ Fetcher = (*Client)(nil)

// New creates a Client with defaults, then applies options.
func New(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    defaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Games fetches one day's games by season and day query parameters.
func (c *Client) Games(ctx context.Context, season, day int) ([]model.GameUpdate, error) {
	q := url.Values{}
	q.Set("season", strconv.Itoa(season))
	q.Set("day", strconv.Itoa(day))
	return fetchList[model.GameUpdate](ctx, c, EndpointGames, q)
}

// GameStatsheets fetches game statsheets in one batched request.
func (c *Client) GameStatsheets(ctx context.Context, ids []string) ([]model.GameStatsheet, error) {
	return Batch[model.GameStatsheet](ctx, c, EndpointGameStatsheets, ids)
}

// TeamStatsheets fetches team statsheets in one batched request.
func (c *Client) TeamStatsheets(ctx context.Context, ids []string) ([]model.TeamStatsheet, error) {
	return Batch[model.TeamStatsheet](ctx, c, EndpointTeamStatsheets, ids)
}

// PlayerSeasonStats fetches player statsheets in one batched request.
func (c *Client) PlayerSeasonStats(ctx context.Context, ids []string) ([]model.PlayerStatsheet, error) {
	return Batch[model.PlayerStatsheet](ctx, c, EndpointPlayerSeasonStats, ids)
}

// Batch issues one GET for the requested ids, comma-joined into the ids
// parameter. An empty list still issues the request with an empty value.
func Batch[T any](ctx context.Context, c *Client, endpoint string, ids []string) ([]T, error) {
	q := url.Values{}
	q.Set("ids", strings.Join(ids, ","))
	return fetchList[T](ctx, c, endpoint, q)
}

// fetchList performs the GET and decodes the JSON array response.
func fetchList[T any](ctx context.Context, c *Client, endpoint string, query url.Values) ([]T, error) {
	if c.limiter != nil {
		if err := c.limiter.Acquire(ctx, 1); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrTransport, endpoint, err)
		}
		defer c.limiter.Release(1)
	}

	metrics.RecordFetch(endpoint)
	metrics.IncFetchInFlight()
	defer metrics.DecFetchInFlight()
	start := time.Now()

	u := c.baseURL + "/" + endpoint + "?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		metrics.RecordFetchFailure(endpoint)
		return nil, fmt.Errorf("%w: build %s request: %v", ErrTransport, endpoint, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordFetchFailure(endpoint)
		return nil, fmt.Errorf("%w: get %s: %v", ErrTransport, endpoint, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		metrics.RecordFetchFailure(endpoint)
		return nil, fmt.Errorf("%w: %s returned status %d", ErrTransport, endpoint, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.RecordFetchFailure(endpoint)
		return nil, fmt.Errorf("%w: read %s response: %v", ErrTransport, endpoint, err)
	}

	var out []T
	if err := json.Unmarshal(body, &out); err != nil {
		metrics.RecordFetchFailure(endpoint)
		return nil, fmt.Errorf("%w: %s response: %v", ErrDecode, endpoint, err)
	}

	metrics.RecordFetchDuration(endpoint, float64(time.Since(start).Milliseconds()))
	return out, nil
}

package sportskeeda

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/preston-bernstein/nfl-hq-service/internal/domain/schedule"
	"github.com/preston-bernstein/nfl-hq-service/internal/domain/teams"
	"github.com/preston-bernstein/nfl-hq-service/internal/logging"
	"github.com/preston-bernstein/nfl-hq-service/internal/providers"
	"github.com/preston-bernstein/nfl-hq-service/internal/timeutil"
)

// Config controls how the Sportskeeda client reaches the upstream API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	// Season pins the schedule year; zero derives it from the current date.
	Season int
	Logger *slog.Logger
}

// Client fetches team schedules from the Sportskeeda taxonomy API.
type Client struct {
	baseURL    string
	httpClient httpDoer
	season     int
	now        func() time.Time
	logger     *slog.Logger
}

// NewClient constructs a Sportskeeda client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		season:     cfg.Season,
		now:        time.Now,
		logger:     cfg.Logger,
	}
}

// Name identifies the provider in logs and metrics.
func (c *Client) Name() string {
	return providerName
}

// FetchSchedule retrieves the team's schedule for the current season.
func (c *Client) FetchSchedule(ctx context.Context, team teams.Team) ([]schedule.Game, error) {
	if team.SportskeedaID <= 0 {
		return nil, fmt.Errorf("%s: team %s has no upstream id: %w", providerName, team.ID, providers.ErrTeamNotFound)
	}

	req, err := c.buildRequest(ctx, team)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp); err != nil {
		return nil, err
	}

	var payload scheduleResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%s: decode schedule for %s: %w", providerName, team.ID, err)
	}

	games := mapGames(payload.Schedule)
	logging.Debug(logging.FromContext(ctx, c.logger), "schedule fetched",
		slog.String(logging.FieldProvider, providerName),
		slog.String(logging.FieldTeam, team.ID),
		slog.Int(logging.FieldCount, len(games)),
	)
	return games, nil
}

func (c *Client) buildRequest(ctx context.Context, team teams.Team) (*http.Request, error) {
	url := c.baseURL + fmt.Sprintf(schedulePathFormat, c.resolveSeason(), team.SportskeedaID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (c *Client) resolveSeason() int {
	if c.season > 0 {
		return c.season
	}
	return timeutil.SeasonYear(c.now())
}

func (c *Client) checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	msg := strings.TrimSpace(string(body))

	if resp.StatusCode == http.StatusTooManyRequests {
		return &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"), c.now()),
			Remaining:  resp.Header.Get("X-RateLimit-Remaining"),
			Message:    msg,
		}
	}
	return &providers.StatusError{
		Provider:   providerName,
		StatusCode: resp.StatusCode,
		Body:       msg,
	}
}

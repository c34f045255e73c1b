package standings

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/nfl-hq-service/internal/domain/schedule"
	"github.com/preston-bernstein/nfl-hq-service/internal/domain/teams"
	"github.com/preston-bernstein/nfl-hq-service/internal/logging"
	"github.com/preston-bernstein/nfl-hq-service/internal/metrics"
	"github.com/preston-bernstein/nfl-hq-service/internal/providers"
	"github.com/preston-bernstein/nfl-hq-service/internal/retry"
)

// Schedule is a fetch result. Available is false when every attempt failed,
// in which case Games is empty.
type Schedule struct {
	Games     []schedule.Game
	Available bool
}

type scheduleFetcher interface {
	Fetch(ctx context.Context, team teams.Team) Schedule
}

// Fetcher retrieves one team's schedule under a retry policy and never fails:
// an exhausted policy yields an unavailable, empty schedule.
type Fetcher struct {
	provider providers.ScheduleProvider
	logger   *slog.Logger
}

// NewFetcher wraps provider with the retry policy and per-attempt timeout.
func NewFetcher(provider providers.ScheduleProvider, policy retry.Policy, attemptTimeout time.Duration, providerName string, logger *slog.Logger, recorder *metrics.Recorder) *Fetcher {
	return &Fetcher{
		provider: providers.NewRetryingProvider(provider, logger, recorder, providerName, policy, attemptTimeout),
		logger:   logger,
	}
}

// Fetch returns the team's games, or an unavailable Schedule after the policy is exhausted.
func (f *Fetcher) Fetch(ctx context.Context, team teams.Team) Schedule {
	games, err := f.provider.FetchSchedule(ctx, team)
	if err != nil {
		logging.Warn(logging.FromContext(ctx, f.logger), "schedule unavailable",
			slog.String(logging.FieldTeam, team.ID),
			slog.Any(logging.FieldError, err),
		)
		return Schedule{}
	}
	if games == nil {
		games = []schedule.Game{}
	}
	return Schedule{Games: games, Available: true}
}

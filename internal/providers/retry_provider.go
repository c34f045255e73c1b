package providers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/preston-bernstein/nfl-hq-service/internal/domain/schedule"
	"github.com/preston-bernstein/nfl-hq-service/internal/domain/teams"
	"github.com/preston-bernstein/nfl-hq-service/internal/logging"
	"github.com/preston-bernstein/nfl-hq-service/internal/metrics"
	"github.com/preston-bernstein/nfl-hq-service/internal/retry"
)

const defaultAttemptTimeout = 10 * time.Second

// retryingProvider wraps a ScheduleProvider with a bounded retry policy and a per-attempt timeout.
type retryingProvider struct {
	inner          ScheduleProvider
	logger         *slog.Logger
	metrics        *metrics.Recorder
	providerName   string
	policy         retry.Policy
	attemptTimeout time.Duration
	opts           []retry.Option
}

// NewRetryingProvider wraps the given provider with retries. A non-positive
// attemptTimeout falls back to 10s.
func NewRetryingProvider(inner ScheduleProvider, logger *slog.Logger, recorder *metrics.Recorder, providerName string, policy retry.Policy, attemptTimeout time.Duration) ScheduleProvider {
	if providerName == "" {
		providerName = "provider"
	}
	if attemptTimeout <= 0 {
		attemptTimeout = defaultAttemptTimeout
	}
	return &retryingProvider{
		inner:          inner,
		logger:         logger,
		metrics:        recorder,
		providerName:   providerName,
		policy:         policy,
		attemptTimeout: attemptTimeout,
	}
}

func (r *retryingProvider) FetchSchedule(ctx context.Context, team teams.Team) ([]schedule.Game, error) {
	if r.inner == nil {
		return nil, ErrProviderUnavailable
	}

	var games []schedule.Game
	op := func(ctx context.Context, attempt int) error {
		result, err := r.attempt(ctx, team)
		if err == nil {
			games = result
			return nil
		}
		if IsPermanent(err) {
			return retry.Permanent(err)
		}
		return err
	}

	opts := append([]retry.Option{retry.WithNotify(func(err error, attempt int, wait time.Duration) {
		r.logWarn(ctx, "provider fetch retry",
			slog.String(logging.FieldTeam, team.ID),
			slog.Int(logging.FieldAttempt, attempt),
			slog.Int("max_attempts", r.policy.Attempts()),
			slog.Duration("wait", wait),
			slog.Any(logging.FieldError, err),
		)
	})}, r.opts...)

	if err := retry.Do(ctx, r.policy, op, opts...); err != nil {
		r.logWarn(ctx, "provider fetch failed",
			slog.String(logging.FieldTeam, team.ID),
			slog.Int("max_attempts", r.policy.Attempts()),
			slog.Any(logging.FieldError, err),
		)
		return nil, fmt.Errorf("fetch schedule %s: %w", team.ID, err)
	}
	return games, nil
}

func (r *retryingProvider) attempt(ctx context.Context, team teams.Team) ([]schedule.Game, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, r.attemptTimeout)
	defer cancel()

	start := time.Now()
	games, err := r.inner.FetchSchedule(attemptCtx, team)
	r.metrics.RecordProviderAttempt(r.providerName, time.Since(start), err)
	if rl, ok := AsRateLimitError(err); ok {
		r.metrics.RecordRateLimit(r.providerName, rl.RetryAfter)
	}
	return games, err
}

func (r *retryingProvider) logWarn(ctx context.Context, msg string, args ...any) {
	logger := logging.FromContext(ctx, r.logger)
	logWithProvider(ctx, logger, slog.LevelWarn, r.providerName, msg, args...)
}

package providers

import (
	"context"
	"log/slog"

	"golang.org/x/time/rate"

	"github.com/preston-bernstein/nfl-hq-service/internal/domain/schedule"
	"github.com/preston-bernstein/nfl-hq-service/internal/domain/teams"
	"github.com/preston-bernstein/nfl-hq-service/internal/logging"
)

const defaultRatePerSecond = 16

// rateLimitedProvider wraps a ScheduleProvider with a token bucket so a full
// standings fan-out does not exceed upstream quotas.
type rateLimitedProvider struct {
	next    ScheduleProvider
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewRateLimitedProvider allows perSecond calls per second with a burst of the same size.
// Calls block until a token is available or ctx is done.
func NewRateLimitedProvider(next ScheduleProvider, perSecond float64, logger *slog.Logger) ScheduleProvider {
	if perSecond <= 0 {
		perSecond = defaultRatePerSecond
	}
	burst := int(perSecond)
	if burst < 1 {
		burst = 1
	}
	return &rateLimitedProvider{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
		logger:  logger,
	}
}

func (p *rateLimitedProvider) FetchSchedule(ctx context.Context, team teams.Team) ([]schedule.Game, error) {
	if p == nil || p.next == nil {
		if p != nil {
			logging.Warn(p.logger, "provider unavailable", slog.String(logging.FieldProvider, "rate-limited"))
		}
		return nil, ErrProviderUnavailable
	}
	if err := p.limiter.Wait(ctx); err != nil {
		logging.Debug(p.logger, "rate-limited fetch canceled",
			slog.String(logging.FieldProvider, "rate-limited"),
			slog.String(logging.FieldTeam, team.ID),
		)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, err
	}
	return p.next.FetchSchedule(ctx, team)
}

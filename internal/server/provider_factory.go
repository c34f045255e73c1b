package server

import (
	"log/slog"

	"github.com/preston-bernstein/nfl-hq-service/internal/config"
	"github.com/preston-bernstein/nfl-hq-service/internal/providers"
)

// providerFactory assembles the upstream provider behind the shared rate limiter.
// Retries are layered on by the standings fetcher.
type providerFactory struct {
	logger *slog.Logger
}

func newProviderFactory(logger *slog.Logger) providerFactory {
	return providerFactory{logger: logger}
}

func (f providerFactory) build(cfg config.Config) (providers.ScheduleProvider, string) {
	base := selectProvider(cfg, f.logger)
	name := normalizeProviderName(cfg.Provider, base)
	return providers.NewRateLimitedProvider(base, cfg.Sportskeeda.RatePerSecond, f.logger), name
}

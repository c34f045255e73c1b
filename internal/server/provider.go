package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/preston-bernstein/nfl-hq-service/internal/config"
	"github.com/preston-bernstein/nfl-hq-service/internal/logging"
	"github.com/preston-bernstein/nfl-hq-service/internal/providers"
	"github.com/preston-bernstein/nfl-hq-service/internal/providers/fixture"
	"github.com/preston-bernstein/nfl-hq-service/internal/providers/sportskeeda"
)

// upstreamClientTimeout caps a single HTTP exchange; the fetcher applies its own per-attempt deadline too.
const upstreamClientTimeout = 15 * time.Second

func selectProvider(cfg config.Config, logger *slog.Logger) providers.ScheduleProvider {
	switch cfg.Provider {
	case "fixture", "":
		return fixture.New()
	case "sportskeeda":
		return sportskeeda.NewClient(sportskeeda.Config{
			BaseURL:    cfg.Sportskeeda.BaseURL,
			HTTPClient: &http.Client{Timeout: upstreamClientTimeout},
			Logger:     logger,
		})
	default:
		logging.Warn(logger, "unknown provider, falling back to fixture", slog.String(logging.FieldProvider, cfg.Provider))
		return fixture.New()
	}
}

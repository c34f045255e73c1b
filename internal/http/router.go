package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/preston-bernstein/nfl-hq-service/internal/http/handlers"
	"github.com/preston-bernstein/nfl-hq-service/internal/http/middleware"
	"github.com/preston-bernstein/nfl-hq-service/internal/http/requestutil"
	"github.com/preston-bernstein/nfl-hq-service/internal/metrics"
)

// RouterConfig carries the cross-cutting pieces the router wraps around handlers.
type RouterConfig struct {
	Logger      *slog.Logger
	Recorder    *metrics.Recorder
	CORSOrigins []string
}

// NewRouter registers the read-only API on a chi router.
func NewRouter(handler *handlers.Handler, cfg RouterConfig) nethttp.Handler {
	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(func(next nethttp.Handler) nethttp.Handler {
		return middleware.LoggingMiddleware(cfg.Logger, cfg.Recorder, next)
	})
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{nethttp.MethodGet, nethttp.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", requestutil.HeaderRequestID},
		ExposedHeaders: []string{"X-Cache", requestutil.HeaderRequestID},
		MaxAge:         300,
	}))

	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	r.Get("/health", handler.Health)
	r.Get("/ready", handler.Ready)

	r.Route("/api", func(r chi.Router) {
		r.Get("/standings", handler.Standings)
		r.Get("/standings/divisions/{division}", handler.Division)
		r.Get("/teams", handler.Teams)
		r.Get("/teams/{id}", handler.Team)
	})
	return r
}

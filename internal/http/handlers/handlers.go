package handlers

import (
	"context"
	"errors"
	"log/slog"
	nethttp "net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	domain "github.com/preston-bernstein/nfl-hq-service/internal/domain/standings"
	"github.com/preston-bernstein/nfl-hq-service/internal/domain/teams"
	"github.com/preston-bernstein/nfl-hq-service/internal/logging"
	"github.com/preston-bernstein/nfl-hq-service/internal/poller"
	"github.com/preston-bernstein/nfl-hq-service/internal/standings"
)

const msgUnavailable = "standings unavailable"

// StandingsReader serves cached standings.
type StandingsReader interface {
	Read(ctx context.Context) (domain.Snapshot, standings.Outcome, error)
	Division(ctx context.Context, raw string) (teams.Division, []domain.TeamStanding, standings.Outcome, error)
	Team(ctx context.Context, id string) (domain.TeamStanding, standings.Outcome, error)
}

// TeamDirectory serves the static team reference table.
type TeamDirectory interface {
	Teams() []teams.Team
	TeamByID(id string) (teams.Team, bool)
}

// Handler wires HTTP routes to the standings and team services.
type Handler struct {
	standings StandingsReader
	teams     TeamDirectory
	logger    *slog.Logger
	statusFn  func() poller.Status
}

// DivisionResponse is one division's standings in rank order.
type DivisionResponse struct {
	Division   teams.Division        `json:"division"`
	Conference teams.Conference      `json:"conference"`
	Standings  []domain.TeamStanding `json:"standings"`
	Stale      bool                  `json:"stale"`
}

// TeamsResponse lists the reference teams.
type TeamsResponse struct {
	Teams []teams.Team `json:"teams"`
	Count int          `json:"count"`
}

// TeamResponse is a reference team with its standing when one could be served.
type TeamResponse struct {
	Team     teams.Team           `json:"team"`
	Standing *domain.TeamStanding `json:"standing,omitempty"`
	Stale    bool                 `json:"stale"`
}

// NewHandler constructs a Handler. statusFn may be nil when no warmer runs.
func NewHandler(reader StandingsReader, directory TeamDirectory, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		standings: reader,
		teams:     directory,
		logger:    logger,
		statusFn:  statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic: the warmer has produced a snapshot and is not failing repeatedly.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// Standings returns the full league snapshot.
func (h *Handler) Standings(w nethttp.ResponseWriter, r *nethttp.Request) {
	snap, outcome, err := h.standings.Read(r.Context())
	if err != nil {
		h.unavailable(w, r, err)
		return
	}
	w.Header().Set(headerCache, string(outcome))
	writeJSON(w, nethttp.StatusOK, snap, h.logger)
}

// Division returns one division's rank-ordered standings.
func (h *Handler) Division(w nethttp.ResponseWriter, r *nethttp.Request) {
	raw := chi.URLParam(r, "division")
	division, list, outcome, err := h.standings.Division(r.Context(), raw)
	switch {
	case errors.Is(err, standings.ErrUnknownDivision):
		writeError(w, r, nethttp.StatusNotFound, "division not found", h.logger)
		return
	case err != nil:
		h.unavailable(w, r, err)
		return
	}
	w.Header().Set(headerCache, string(outcome))
	writeJSON(w, nethttp.StatusOK, DivisionResponse{
		Division:   division,
		Conference: division.Conference(),
		Standings:  list,
		Stale:      outcome == standings.OutcomeStale,
	}, h.logger)
}

// Teams returns the reference table.
func (h *Handler) Teams(w nethttp.ResponseWriter, r *nethttp.Request) {
	list := h.teams.Teams()
	if list == nil {
		list = []teams.Team{}
	}
	writeJSON(w, nethttp.StatusOK, TeamsResponse{Teams: list, Count: len(list)}, h.logger)
}

// Team returns one team and its standing. The team is still served when standings are unavailable.
func (h *Handler) Team(w nethttp.ResponseWriter, r *nethttp.Request) {
	id := strings.ToLower(strings.TrimSpace(chi.URLParam(r, "id")))
	team, ok := h.teams.TeamByID(id)
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "team not found", h.logger)
		return
	}

	resp := TeamResponse{Team: team}
	st, outcome, err := h.standings.Team(r.Context(), team.ID)
	if err != nil {
		logging.Warn(loggerFromContext(r, h.logger), "team standing unavailable",
			slog.String(logging.FieldTeam, team.ID),
			slog.Any(logging.FieldError, err),
		)
	} else {
		resp.Standing = &st
		resp.Stale = outcome == standings.OutcomeStale
		w.Header().Set(headerCache, string(outcome))
	}
	writeJSON(w, nethttp.StatusOK, resp, h.logger)
}

// NotFound answers unknown routes.
func (h *Handler) NotFound(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
}

// MethodNotAllowed answers non-GET requests on known routes.
func (h *Handler) MethodNotAllowed(w nethttp.ResponseWriter, r *nethttp.Request) {
	w.Header().Set("Allow", nethttp.MethodGet)
	writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
}

func (h *Handler) unavailable(w nethttp.ResponseWriter, r *nethttp.Request, err error) {
	logger := loggerFromContext(r, h.logger)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		logging.Warn(logger, "standings request abandoned", slog.Any(logging.FieldError, err))
	} else {
		logging.Error(logger, "standings request failed", err)
	}
	writeError(w, r, nethttp.StatusBadGateway, msgUnavailable, h.logger)
}

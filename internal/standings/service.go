package standings

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	domain "github.com/preston-bernstein/nfl-hq-service/internal/domain/standings"
	"github.com/preston-bernstein/nfl-hq-service/internal/domain/teams"
	"github.com/preston-bernstein/nfl-hq-service/internal/logging"
	"github.com/preston-bernstein/nfl-hq-service/internal/metrics"
	"github.com/preston-bernstein/nfl-hq-service/internal/providers"
	"github.com/preston-bernstein/nfl-hq-service/internal/retry"
)

// TeamSource lists the reference teams to rank.
type TeamSource interface {
	ListTeams() []teams.Team
}

// Config tunes the pipeline. Zero values take the package defaults.
type Config struct {
	CacheTTL       time.Duration
	BatchSize      int
	BatchDelay     time.Duration
	FetchTimeout   time.Duration
	Retry          retry.Policy
	ComputeTimeout time.Duration
	ProviderName   string
}

// Service computes league standings from team schedules and caches the result.
type Service struct {
	teams        TeamSource
	orchestrator *Orchestrator
	cache        *Cache
	logger       *slog.Logger
	metrics      *metrics.Recorder
	now          func() time.Time
}

// NewService wires fetcher, orchestrator and cache over the given provider.
func NewService(cfg Config, source TeamSource, provider providers.ScheduleProvider, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	fetcher := NewFetcher(provider, cfg.Retry, cfg.FetchTimeout, cfg.ProviderName, logger, recorder)
	svc := &Service{
		teams:        source,
		orchestrator: NewOrchestrator(fetcher, cfg.BatchSize, cfg.BatchDelay, logger),
		logger:       logger,
		metrics:      recorder,
		now:          time.Now,
	}
	svc.cache = NewCache(svc.compute, cfg.CacheTTL, cfg.ComputeTimeout, logger, recorder)
	return svc
}

// Standings returns the league snapshot, from cache when fresh.
func (s *Service) Standings(ctx context.Context) (domain.Snapshot, error) {
	snap, _, err := s.cache.Get(ctx)
	return snap, err
}

// Read is Standings plus how the cache served it.
func (s *Service) Read(ctx context.Context) (domain.Snapshot, Outcome, error) {
	return s.cache.Get(ctx)
}

// Division returns one division's rank-ordered standings. raw accepts a slug or display name.
func (s *Service) Division(ctx context.Context, raw string) (teams.Division, []domain.TeamStanding, Outcome, error) {
	d, ok := teams.ParseDivision(raw)
	if !ok {
		return "", nil, "", fmt.Errorf("%w: %q", ErrUnknownDivision, raw)
	}
	snap, outcome, err := s.cache.Get(ctx)
	if err != nil {
		return d, nil, outcome, err
	}
	list := snap.Divisions[d]
	if list == nil {
		list = []domain.TeamStanding{}
	}
	return d, list, outcome, nil
}

// Team returns a single team's standing.
func (s *Service) Team(ctx context.Context, id string) (domain.TeamStanding, Outcome, error) {
	snap, outcome, err := s.cache.Get(ctx)
	if err != nil {
		return domain.TeamStanding{}, outcome, err
	}
	st, ok := snap.Team(id)
	if !ok {
		return domain.TeamStanding{}, outcome, fmt.Errorf("%w: %s", ErrTeamNotFound, id)
	}
	return st, outcome, nil
}

// Refresh forces a recomputation, as the cache warmer does.
func (s *Service) Refresh(ctx context.Context) error {
	return s.cache.Refresh(ctx)
}

// Ready reports whether a snapshot has been computed at least once.
func (s *Service) Ready() bool {
	_, _, ok := s.cache.Peek()
	return ok
}

func (s *Service) compute(ctx context.Context) (domain.Snapshot, error) {
	start := time.Now()
	snap, err := s.build(ctx)
	s.metrics.RecordStandingsCompute(time.Since(start), snap.Degraded, err)

	logger := logging.FromContext(ctx, s.logger)
	if err != nil {
		logging.Error(logger, "standings compute failed", err)
		return domain.Snapshot{}, err
	}
	logging.Info(logger, "standings computed",
		slog.Int(logging.FieldCount, len(snap.Standings)),
		slog.Int(logging.FieldDegraded, snap.Degraded),
		slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
	)
	return snap, nil
}

func (s *Service) build(ctx context.Context) (domain.Snapshot, error) {
	var list []teams.Team
	if s.teams != nil {
		list = s.teams.ListTeams()
	}
	unranked, err := s.orchestrator.Run(ctx, list)
	if err != nil {
		return domain.Snapshot{}, err
	}
	flat, divisions := Rank(unranked)

	degraded := 0
	for _, st := range flat {
		if st.RecordStatus == domain.StatusUnavailable {
			degraded++
		}
	}
	return domain.Snapshot{
		Standings:   flat,
		Divisions:   divisions,
		GeneratedAt: s.now().UTC(),
		Degraded:    degraded,
	}, nil
}

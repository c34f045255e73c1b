package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/nfl-hq-service/internal/domain/schedule"
	"github.com/preston-bernstein/nfl-hq-service/internal/domain/teams"
)

// StubProvider is a test double for providers.ScheduleProvider.
// Schedules and Errors are keyed by team id; Default/Err apply to any other team.
type StubProvider struct {
	Schedules map[string][]schedule.Game
	Errors    map[string]error
	Default   []schedule.Game
	Err       error
	Calls     atomic.Int32
	Notify    chan struct{}

	once     sync.Once
	mu       sync.Mutex
	perTeam  map[string]int
	inFlight atomic.Int32
	maxSeen  atomic.Int32
}

// FetchSchedule returns configured games and error while tracking calls.
func (s *StubProvider) FetchSchedule(ctx context.Context, team teams.Team) ([]schedule.Game, error) {
	current := s.inFlight.Add(1)
	defer s.inFlight.Add(-1)
	for {
		seen := s.maxSeen.Load()
		if current <= seen || s.maxSeen.CompareAndSwap(seen, current) {
			break
		}
	}

	if s.Notify != nil {
		s.once.Do(func() { close(s.Notify) })
	}
	s.Calls.Add(1)
	s.mu.Lock()
	if s.perTeam == nil {
		s.perTeam = make(map[string]int)
	}
	s.perTeam[team.ID]++
	s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err, ok := s.Errors[team.ID]; ok {
		return nil, err
	}
	if games, ok := s.Schedules[team.ID]; ok {
		return games, nil
	}
	return s.Default, s.Err
}

// CallsFor returns how many times the team was fetched.
func (s *StubProvider) CallsFor(teamID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.perTeam[teamID]
}

// MaxConcurrent returns the highest number of overlapping fetches observed.
func (s *StubProvider) MaxConcurrent() int {
	return int(s.maxSeen.Load())
}

// BlockingProvider parks every fetch until Release is closed.
type BlockingProvider struct {
	Games   []schedule.Game
	Release chan struct{}
	Started chan struct{}
	Calls   atomic.Int32
}

// FetchSchedule waits for Release or ctx, signalling Started once per call when buffered.
func (b *BlockingProvider) FetchSchedule(ctx context.Context, team teams.Team) ([]schedule.Game, error) {
	b.Calls.Add(1)
	if b.Started != nil {
		select {
		case b.Started <- struct{}{}:
		default:
		}
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-b.Release:
		return b.Games, nil
	}
}

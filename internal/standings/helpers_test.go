package standings

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/preston-bernstein/nfl-hq-service/internal/domain/schedule"
	domain "github.com/preston-bernstein/nfl-hq-service/internal/domain/standings"
	"github.com/preston-bernstein/nfl-hq-service/internal/domain/teams"
)

func team(id string, d teams.Division) teams.Team {
	return teams.Team{ID: id, Name: id, Conference: d.Conference(), Division: d}
}

func leagueOf(perDivision int) []teams.Team {
	var out []teams.Team
	for _, d := range teams.Divisions {
		for i := 0; i < perDivision; i++ {
			out = append(out, team(fmt.Sprintf("%s-%d", d.Slug(), i), d))
		}
	}
	return out
}

func games(w, l, t int) []schedule.Game {
	var out []schedule.Game
	add := func(n int, r schedule.Result) {
		for i := 0; i < n; i++ {
			out = append(out, schedule.Game{Week: fmt.Sprintf("Week %d", len(out)+1), EventType: schedule.EventRegularSeason, Result: r})
		}
	}
	add(w, schedule.ResultWin)
	add(l, schedule.ResultLoss)
	add(t, schedule.ResultTie)
	return out
}

func standing(id string, d teams.Division, w, l, t int) domain.TeamStanding {
	return domain.NewTeamStanding(team(id, d), domain.TeamRecord{Wins: w, Losses: l, Ties: t}, domain.StatusAvailable)
}

// fakeFetcher serves canned schedules and tracks concurrency.
type fakeFetcher struct {
	mu        sync.Mutex
	schedules map[string]Schedule
	order     []string
	delay     time.Duration
	calls     atomic.Int32
	inFlight  atomic.Int32
	maxSeen   atomic.Int32
}

func (f *fakeFetcher) Fetch(ctx context.Context, t teams.Team) Schedule {
	f.calls.Add(1)
	cur := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)
	for {
		seen := f.maxSeen.Load()
		if cur <= seen || f.maxSeen.CompareAndSwap(seen, cur) {
			break
		}
	}
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	f.mu.Lock()
	f.order = append(f.order, t.ID)
	s, ok := f.schedules[t.ID]
	f.mu.Unlock()
	if !ok {
		return Schedule{Games: []schedule.Game{}, Available: true}
	}
	return s
}

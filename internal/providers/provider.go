package providers

import (
	"context"

	"github.com/preston-bernstein/nfl-hq-service/internal/domain/schedule"
	"github.com/preston-bernstein/nfl-hq-service/internal/domain/teams"
)

// ScheduleProvider fetches a team's season schedule from an upstream source.
// Implementations return the games as reported, including unplayed and
// non-regular-season entries; filtering happens downstream.
type ScheduleProvider interface {
	FetchSchedule(ctx context.Context, team teams.Team) ([]schedule.Game, error)
}

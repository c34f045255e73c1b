package testutil

import (
	"time"

	domain "github.com/preston-bernstein/nfl-hq-service/internal/domain/standings"
	"github.com/preston-bernstein/nfl-hq-service/internal/domain/teams"
)

// SampleTeam returns a minimal reference team in the given division.
func SampleTeam(id string, d teams.Division) teams.Team {
	return teams.Team{
		ID:            id,
		Name:          id,
		FullName:      "Sample " + id,
		Abbreviation:  "SMP",
		City:          "Sample",
		Conference:    d.Conference(),
		Division:      d,
		SportskeedaID: 1,
	}
}

// SampleStanding returns an available standing for the given record.
func SampleStanding(id string, d teams.Division, wins, losses, ties int) domain.TeamStanding {
	return domain.NewTeamStanding(SampleTeam(id, d), domain.TeamRecord{Wins: wins, Losses: losses, Ties: ties}, domain.StatusAvailable)
}

// SampleSnapshot groups the standings by division, keeping the given order as rank order.
func SampleSnapshot(generatedAt time.Time, list ...domain.TeamStanding) domain.Snapshot {
	snap := domain.Snapshot{
		Standings:   list,
		Divisions:   make(map[teams.Division][]domain.TeamStanding),
		GeneratedAt: generatedAt,
	}
	for _, st := range list {
		snap.Divisions[st.Division] = append(snap.Divisions[st.Division], st)
		if st.RecordStatus == domain.StatusUnavailable {
			snap.Degraded++
		}
	}
	return snap
}

package standings

import (
	"time"

	"github.com/preston-bernstein/nfl-hq-service/internal/domain/teams"
)

// RecordStatus distinguishes a real 0-0-0 from a record we could not compute.
type RecordStatus string

const (
	// StatusAvailable means at least one completed regular-season game was counted.
	StatusAvailable RecordStatus = "available"
	// StatusNoGames means the schedule was fetched but nothing has been played yet.
	StatusNoGames RecordStatus = "none"
	// StatusUnavailable means the schedule fetch failed and the record is a 0-0-0 placeholder.
	StatusUnavailable RecordStatus = "unavailable"
)

// TeamRecord is a team's regular-season win/loss/tie tally.
type TeamRecord struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Ties   int `json:"ties"`
}

// GamesPlayed returns the number of decided games.
func (r TeamRecord) GamesPlayed() int {
	return r.Wins + r.Losses + r.Ties
}

// TeamStanding combines a reference team with its computed record and rank.
type TeamStanding struct {
	teams.Team
	TeamRecord
	Record           string       `json:"record"`
	WinPercentage    float64      `json:"winPercentage"`
	DivisionRank     string       `json:"divisionRank"`
	DivisionPosition int          `json:"divisionPosition"`
	RecordStatus     RecordStatus `json:"recordStatus"`
}

// NewTeamStanding derives record string and win percentage; rank is left for the ranker.
func NewTeamStanding(team teams.Team, record TeamRecord, status RecordStatus) TeamStanding {
	return TeamStanding{
		Team:          team,
		TeamRecord:    record,
		Record:        FormatRecord(record),
		WinPercentage: WinPercentage(record),
		RecordStatus:  status,
	}
}

// Snapshot is the full standings payload for all teams.
type Snapshot struct {
	Standings   []TeamStanding                    `json:"standings"`
	Divisions   map[teams.Division][]TeamStanding `json:"divisions"`
	GeneratedAt time.Time                         `json:"generatedAt"`
	Stale       bool                              `json:"stale"`
	Degraded    int                               `json:"degraded"`
}

// Clone returns a deep copy so callers can flag or reorder without touching cached state.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		GeneratedAt: s.GeneratedAt,
		Stale:       s.Stale,
		Degraded:    s.Degraded,
	}
	if s.Standings != nil {
		out.Standings = append([]TeamStanding(nil), s.Standings...)
	}
	if s.Divisions != nil {
		out.Divisions = make(map[teams.Division][]TeamStanding, len(s.Divisions))
		for d, list := range s.Divisions {
			out.Divisions[d] = append([]TeamStanding(nil), list...)
		}
	}
	return out
}

// Team returns the standing for a team id.
func (s Snapshot) Team(id string) (TeamStanding, bool) {
	for _, st := range s.Standings {
		if st.ID == id {
			return st, true
		}
	}
	return TeamStanding{}, false
}

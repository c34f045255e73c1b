package standings

import (
	"github.com/preston-bernstein/nfl-hq-service/internal/domain/schedule"
	domain "github.com/preston-bernstein/nfl-hq-service/internal/domain/standings"
)

// CalculateRecord tallies completed regular-season games. Preseason,
// postseason and unplayed entries are ignored.
func CalculateRecord(games []schedule.Game) domain.TeamRecord {
	var r domain.TeamRecord
	for _, g := range games {
		if !g.RegularSeason() {
			continue
		}
		switch g.Result {
		case schedule.ResultWin:
			r.Wins++
		case schedule.ResultLoss:
			r.Losses++
		case schedule.ResultTie:
			r.Ties++
		}
	}
	return r
}

// RecordFor derives the record and its status from a fetch result.
func RecordFor(s Schedule) (domain.TeamRecord, domain.RecordStatus) {
	if !s.Available {
		return domain.TeamRecord{}, domain.StatusUnavailable
	}
	r := CalculateRecord(s.Games)
	if r.GamesPlayed() == 0 {
		return r, domain.StatusNoGames
	}
	return r, domain.StatusAvailable
}

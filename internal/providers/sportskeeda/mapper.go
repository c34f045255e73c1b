package sportskeeda

import (
	"strings"

	"github.com/preston-bernstein/nfl-hq-service/internal/domain/schedule"
)

func mapGames(items []gameResponse) []schedule.Game {
	out := make([]schedule.Game, 0, len(items))
	for _, g := range items {
		out = append(out, mapGame(g))
	}
	return out
}

func mapGame(g gameResponse) schedule.Game {
	game := schedule.Game{
		Week: strings.TrimSpace(string(g.Week)),
		Date: strings.TrimSpace(g.Date),
		Opponent: schedule.Opponent{
			Name:         strings.TrimSpace(g.Opponent.Name),
			Abbreviation: strings.ToUpper(strings.TrimSpace(g.Opponent.Abbreviation)),
			Home:         g.Opponent.IsHome,
		},
		EventType: mapEventType(g.EventType),
		Result:    mapResult(g.Result),
		Venue:     strings.TrimSpace(g.Venue),
		TV:        strings.TrimSpace(g.TV),
	}
	if g.Score != nil {
		game.Score = &schedule.Score{Team: g.Score.Team, Opponent: g.Score.Opponent}
	}
	return game
}

func mapEventType(code int) schedule.EventType {
	switch code {
	case eventRegularSeason:
		return schedule.EventRegularSeason
	case eventPostseason:
		return schedule.EventPostseason
	case eventPreseason:
		return schedule.EventPreseason
	default:
		return schedule.EventOther
	}
}

// mapResult keeps only exact W/L/T outcomes; anything else is treated as unplayed.
func mapResult(raw string) schedule.Result {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "W":
		return schedule.ResultWin
	case "L":
		return schedule.ResultLoss
	case "T":
		return schedule.ResultTie
	default:
		return schedule.ResultNone
	}
}

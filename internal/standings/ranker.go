package standings

import (
	"sort"

	domain "github.com/preston-bernstein/nfl-hq-service/internal/domain/standings"
	"github.com/preston-bernstein/nfl-hq-service/internal/domain/teams"
)

// Rank groups standings by division, orders each division by win percentage
// desc, wins desc, losses asc, and assigns 1-based positions and ordinals.
// The sort is stable, so exact ties keep their input order.
//
// The flat list is ordered by conference (AFC first), then division name, then rank.
func Rank(list []domain.TeamStanding) ([]domain.TeamStanding, map[teams.Division][]domain.TeamStanding) {
	grouped := make(map[teams.Division][]domain.TeamStanding)
	for _, st := range list {
		grouped[st.Division] = append(grouped[st.Division], st)
	}

	order := make([]teams.Division, 0, len(grouped))
	for d, members := range grouped {
		sort.SliceStable(members, func(i, j int) bool {
			return ahead(members[i], members[j])
		})
		for i := range members {
			members[i].DivisionPosition = i + 1
			members[i].DivisionRank = domain.Ordinal(i + 1)
		}
		order = append(order, d)
	}
	sort.Slice(order, func(i, j int) bool {
		ci, cj := order[i].Conference(), order[j].Conference()
		if ci != cj {
			return ci < cj
		}
		return order[i] < order[j]
	})

	flat := make([]domain.TeamStanding, 0, len(list))
	for _, d := range order {
		flat = append(flat, grouped[d]...)
	}
	return flat, grouped
}

func ahead(a, b domain.TeamStanding) bool {
	if a.WinPercentage != b.WinPercentage {
		return a.WinPercentage > b.WinPercentage
	}
	if a.Wins != b.Wins {
		return a.Wins > b.Wins
	}
	return a.Losses < b.Losses
}

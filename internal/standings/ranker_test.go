package standings

import (
	"reflect"
	"testing"

	domain "github.com/preston-bernstein/nfl-hq-service/internal/domain/standings"
	"github.com/preston-bernstein/nfl-hq-service/internal/domain/teams"
)

func ids(list []domain.TeamStanding) []string {
	out := make([]string, len(list))
	for i, st := range list {
		out[i] = st.ID
	}
	return out
}

func TestRankOrdersByWinPercentageThenWinsThenLosses(t *testing.T) {
	input := []domain.TeamStanding{
		standing("a", teams.AFCEast, 5, 5, 0),  // .500, 5 wins
		standing("b", teams.AFCEast, 10, 2, 0), // .833
		standing("c", teams.AFCEast, 6, 6, 0),  // .500, 6 wins
		standing("d", teams.AFCEast, 4, 4, 2),  // .500, 4 wins
	}
	_, divs := Rank(input)
	got := divs[teams.AFCEast]
	if want := []string{"b", "c", "a", "d"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("expected %v, got %v", want, ids(got))
	}
	for i, st := range got {
		if st.DivisionPosition != i+1 || st.DivisionRank != domain.Ordinal(i+1) {
			t.Fatalf("position %d: unexpected rank %d/%s", i, st.DivisionPosition, st.DivisionRank)
		}
	}
}

func TestRankLossesBreakRemainingTies(t *testing.T) {
	// Same win% and wins is only possible with zero games; construct it directly.
	a := standing("a", teams.NFCWest, 0, 0, 0)
	b := standing("b", teams.NFCWest, 0, 0, 0)
	a.WinPercentage, b.WinPercentage = 0.5, 0.5
	a.Wins, b.Wins = 3, 3
	a.Losses, b.Losses = 4, 2
	_, divs := Rank([]domain.TeamStanding{a, b})
	if want := []string{"b", "a"}; !reflect.DeepEqual(ids(divs[teams.NFCWest]), want) {
		t.Fatalf("expected %v, got %v", want, ids(divs[teams.NFCWest]))
	}
}

func TestRankAllZeroDivisionKeepsInputOrder(t *testing.T) {
	input := []domain.TeamStanding{
		standing("z", teams.NFCNorth, 0, 0, 0),
		standing("m", teams.NFCNorth, 0, 0, 0),
		standing("a", teams.NFCNorth, 0, 0, 0),
	}
	_, divs := Rank(input)
	if want := []string{"z", "m", "a"}; !reflect.DeepEqual(ids(divs[teams.NFCNorth]), want) {
		t.Fatalf("expected input order %v, got %v", want, ids(divs[teams.NFCNorth]))
	}
}

func TestRankAssignsGaplessPositionsPerDivision(t *testing.T) {
	var input []domain.TeamStanding
	for i, tm := range leagueOf(4) {
		input = append(input, domain.NewTeamStanding(tm, domain.TeamRecord{Wins: i % 5, Losses: i % 3}, domain.StatusAvailable))
	}
	flat, divs := Rank(input)
	if len(flat) != len(input) {
		t.Fatalf("expected %d standings, got %d", len(input), len(flat))
	}
	if len(divs) != len(teams.Divisions) {
		t.Fatalf("expected %d divisions, got %d", len(teams.Divisions), len(divs))
	}
	for d, members := range divs {
		for i, st := range members {
			if st.DivisionPosition != i+1 {
				t.Fatalf("%s: expected position %d, got %d", d, i+1, st.DivisionPosition)
			}
			if st.Division != d {
				t.Fatalf("%s contains %s from %s", d, st.ID, st.Division)
			}
		}
	}
}

func TestRankFlatOrderIsConferenceDivisionRank(t *testing.T) {
	input := []domain.TeamStanding{
		standing("nfc-w", teams.NFCWest, 1, 0, 0),
		standing("afc-w", teams.AFCWest, 1, 0, 0),
		standing("afc-e2", teams.AFCEast, 0, 1, 0),
		standing("nfc-e", teams.NFCEast, 1, 0, 0),
		standing("afc-e1", teams.AFCEast, 1, 0, 0),
	}
	flat, _ := Rank(input)
	want := []string{"afc-e1", "afc-e2", "afc-w", "nfc-e", "nfc-w"}
	if !reflect.DeepEqual(ids(flat), want) {
		t.Fatalf("expected %v, got %v", want, ids(flat))
	}
}

func TestRankIsDeterministic(t *testing.T) {
	var input []domain.TeamStanding
	for i, tm := range leagueOf(4) {
		input = append(input, domain.NewTeamStanding(tm, domain.TeamRecord{Wins: i % 4, Losses: (i + 1) % 3, Ties: i % 2}, domain.StatusAvailable))
	}
	first, _ := Rank(append([]domain.TeamStanding(nil), input...))
	for i := 0; i < 5; i++ {
		again, _ := Rank(append([]domain.TeamStanding(nil), input...))
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("ranking changed between runs")
		}
	}
}

func TestRankEmpty(t *testing.T) {
	flat, divs := Rank(nil)
	if len(flat) != 0 || len(divs) != 0 {
		t.Fatalf("expected empty output, got %v %v", flat, divs)
	}
}

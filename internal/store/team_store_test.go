package store

import (
	"testing"

	"github.com/preston-bernstein/nfl-hq-service/internal/domain/teams"
)

func TestLoadDefaultHasFullLeague(t *testing.T) {
	s, err := LoadDefault()
	if err != nil {
		t.Fatalf("load default: %v", err)
	}
	all := s.ListTeams()
	if len(all) != 32 {
		t.Fatalf("expected 32 teams, got %d", len(all))
	}

	perDivision := map[teams.Division]int{}
	ids := map[int]string{}
	for _, team := range all {
		perDivision[team.Division]++
		if team.SportskeedaID == 0 {
			t.Fatalf("team %s missing upstream id", team.ID)
		}
		if other, dup := ids[team.SportskeedaID]; dup {
			t.Fatalf("upstream id %d shared by %s and %s", team.SportskeedaID, other, team.ID)
		}
		ids[team.SportskeedaID] = team.ID
	}
	for _, d := range teams.Divisions {
		if perDivision[d] != 4 {
			t.Fatalf("division %s has %d teams", d, perDivision[d])
		}
	}
}

func TestGetTeam(t *testing.T) {
	s, err := LoadDefault()
	if err != nil {
		t.Fatalf("load default: %v", err)
	}
	bills, ok := s.GetTeam("buffalo-bills")
	if !ok {
		t.Fatalf("expected buffalo-bills")
	}
	if bills.Division != teams.AFCEast || bills.Abbreviation != "BUF" {
		t.Fatalf("unexpected team %+v", bills)
	}
	if _, ok := s.GetTeam("london-monarchs"); ok {
		t.Fatalf("expected unknown team to be missing")
	}
}

func TestTeamsInDivision(t *testing.T) {
	s, err := LoadDefault()
	if err != nil {
		t.Fatalf("load default: %v", err)
	}
	north := s.TeamsInDivision(teams.NFCNorth)
	want := []string{"chicago-bears", "detroit-lions", "green-bay-packers", "minnesota-vikings"}
	if len(north) != len(want) {
		t.Fatalf("expected %d teams, got %d", len(want), len(north))
	}
	for i, id := range want {
		if north[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, north[i].ID)
		}
	}
}

func TestLoadYAMLRejectsBadTables(t *testing.T) {
	cases := map[string]string{
		"missing id":   "teams:\n  - name: X\n    conference: AFC\n    division: AFC East\n",
		"bad division": "teams:\n  - id: x\n    conference: AFC\n    division: AFC Central\n",
		"mismatch":     "teams:\n  - id: x\n    conference: NFC\n    division: AFC East\n",
		"duplicate":    "teams:\n  - id: x\n    conference: AFC\n    division: AFC East\n  - id: x\n    conference: AFC\n    division: AFC East\n",
		"not yaml":     "teams: [",
	}
	for name, doc := range cases {
		if _, err := LoadYAML([]byte(doc)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestSetTeamsReplacesSnapshot(t *testing.T) {
	s := NewTeamStore()
	s.SetTeams([]teams.Team{{ID: "a"}, {ID: "b"}})
	s.SetTeams([]teams.Team{{ID: "c"}})

	got := s.ListTeams()
	if len(got) != 1 || got[0].ID != "c" {
		t.Fatalf("expected replaced snapshot, got %+v", got)
	}
	if _, ok := s.GetTeam("a"); ok {
		t.Fatalf("expected old team to be gone")
	}
}

func TestListTeamsReturnsCopy(t *testing.T) {
	s := NewTeamStore()
	s.SetTeams([]teams.Team{{ID: "a", Name: "A"}})
	got := s.ListTeams()
	got[0].Name = "mutated"
	if again, _ := s.GetTeam("a"); again.Name != "A" {
		t.Fatalf("store should not be mutated through ListTeams")
	}
}

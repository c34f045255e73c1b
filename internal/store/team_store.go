package store

import (
	_ "embed"
	"fmt"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/preston-bernstein/nfl-hq-service/internal/domain/teams"
)

//go:embed teams.yaml
var defaultTeamsYAML []byte

type teamsFile struct {
	Teams []teams.Team `yaml:"teams"`
}

// TeamStore keeps the static team reference table in memory.
type TeamStore struct {
	mu    sync.RWMutex
	order []string
	teams map[string]teams.Team
}

// NewTeamStore constructs an empty TeamStore.
func NewTeamStore() *TeamStore {
	return &TeamStore{
		teams: make(map[string]teams.Team),
	}
}

// LoadDefault builds a store from the embedded 32-team table.
func LoadDefault() (*TeamStore, error) {
	return LoadYAML(defaultTeamsYAML)
}

// LoadYAML parses a teams document and validates every entry.
func LoadYAML(data []byte) (*TeamStore, error) {
	var file teamsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode teams: %w", err)
	}
	if err := validate(file.Teams); err != nil {
		return nil, err
	}
	s := NewTeamStore()
	s.SetTeams(file.Teams)
	return s, nil
}

func validate(items []teams.Team) error {
	seen := make(map[string]struct{}, len(items))
	for i, t := range items {
		if t.ID == "" {
			return fmt.Errorf("team %d: missing id", i)
		}
		if _, dup := seen[t.ID]; dup {
			return fmt.Errorf("team %s: duplicate id", t.ID)
		}
		seen[t.ID] = struct{}{}
		if !t.Division.Valid() {
			return fmt.Errorf("team %s: unknown division %q", t.ID, t.Division)
		}
		if t.Division.Conference() != t.Conference {
			return fmt.Errorf("team %s: division %s is not in conference %s", t.ID, t.Division, t.Conference)
		}
	}
	return nil
}

// ListTeams returns a copy of the teams in table order.
func (s *TeamStore) ListTeams() []teams.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]teams.Team, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.teams[id])
	}
	return result
}

// GetTeam retrieves a team by slug.
func (s *TeamStore) GetTeam(id string) (teams.Team, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.teams[id]
	return t, ok
}

// TeamsInDivision returns the division's teams sorted by id.
func (s *TeamStore) TeamsInDivision(d teams.Division) []teams.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []teams.Team
	for _, id := range s.order {
		if t := s.teams[id]; t.Division == d {
			result = append(result, t)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// SetTeams replaces the table. Later duplicates overwrite earlier ones.
func (s *TeamStore) SetTeams(items []teams.Team) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.teams = make(map[string]teams.Team, len(items))
	s.order = s.order[:0]
	for _, t := range items {
		if _, exists := s.teams[t.ID]; !exists {
			s.order = append(s.order, t.ID)
		}
		s.teams[t.ID] = t
	}
}

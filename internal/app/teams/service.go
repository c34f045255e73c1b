package teams

import "github.com/preston-bernstein/nfl-hq-service/internal/domain/teams"

// Store defines the read contract for the team reference table.
type Store interface {
	ListTeams() []teams.Team
	GetTeam(id string) (teams.Team, bool)
	TeamsInDivision(d teams.Division) []teams.Team
}

// Service exposes team lookups backed by a Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Teams returns every reference team.
func (s *Service) Teams() []teams.Team {
	return s.store.ListTeams()
}

// TeamByID returns a single team if present.
func (s *Service) TeamByID(id string) (teams.Team, bool) {
	return s.store.GetTeam(id)
}

// Division returns the teams of a division slug or name.
func (s *Service) Division(raw string) (teams.Division, []teams.Team, bool) {
	d, ok := teams.ParseDivision(raw)
	if !ok {
		return "", nil, false
	}
	return d, s.store.TeamsInDivision(d), true
}

package standings

import "errors"

var (
	// ErrNoTeams means the reference table is empty; nothing can be ranked.
	ErrNoTeams = errors.New("no teams to compute standings for")
	// ErrUnavailable means a recompute failed and there is no earlier snapshot to fall back on.
	ErrUnavailable = errors.New("standings unavailable")
	// ErrTeamNotFound is returned by team lookups over a snapshot.
	ErrTeamNotFound = errors.New("team not found")
	// ErrUnknownDivision is returned for division names outside the eight NFL divisions.
	ErrUnknownDivision = errors.New("unknown division")
)

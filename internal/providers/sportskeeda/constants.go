package sportskeeda

import "time"

const (
	providerName       = "sportskeeda"
	defaultBaseURL     = "https://cf-gotham.sportskeeda.com"
	defaultHTTPTimeout = 10 * time.Second
	schedulePathFormat = "/taxonomy/sport/nfl/schedule/%d/%d"
	maxErrorBody       = 512
)

// Upstream event_type codes.
const (
	eventPreseason     = 0
	eventRegularSeason = 1
	eventPostseason    = 2
)

package schedule

// EventType categorises a scheduled game.
type EventType string

const (
	EventRegularSeason EventType = "regular_season"
	EventPreseason     EventType = "preseason"
	EventPostseason    EventType = "postseason"
	EventOther         EventType = "other"
)

// Result is the outcome of a game from the scheduled team's perspective.
// An empty Result means the game has not been played.
type Result string

const (
	ResultWin  Result = "W"
	ResultLoss Result = "L"
	ResultTie  Result = "T"
	ResultNone Result = ""
)

// Score holds the final points for the team and its opponent.
type Score struct {
	Team     int `json:"team"`
	Opponent int `json:"opponent"`
}

// Opponent identifies the other side of a scheduled game.
type Opponent struct {
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation,omitempty"`
	Home         bool   `json:"home"`
}

// Game is one entry of a team's schedule as reported upstream.
type Game struct {
	Week      string    `json:"week"`
	Date      string    `json:"date,omitempty"`
	Opponent  Opponent  `json:"opponent"`
	EventType EventType `json:"eventType"`
	Result    Result    `json:"result,omitempty"`
	Score     *Score    `json:"score,omitempty"`
	Venue     string    `json:"venue,omitempty"`
	TV        string    `json:"tv,omitempty"`
}

// Completed reports whether the game has a recorded result.
func (g Game) Completed() bool {
	return g.Result != ResultNone
}

// RegularSeason reports whether the game counts toward standings.
func (g Game) RegularSeason() bool {
	return g.EventType == EventRegularSeason
}

package sportskeeda

import (
	"bytes"
	"encoding/json"
)

type scheduleResponse struct {
	Schedule []gameResponse `json:"schedule"`
}

type gameResponse struct {
	Week      flexString       `json:"week"`
	Date      string           `json:"date"`
	EventType int              `json:"event_type"`
	Opponent  opponentResponse `json:"opponent"`
	Result    string           `json:"result"`
	Score     *scoreResponse   `json:"score"`
	TV        string           `json:"tv"`
	Venue     string           `json:"venue"`
}

type opponentResponse struct {
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	IsHome       bool   `json:"is_home"`
}

type scoreResponse struct {
	Team     int `json:"team"`
	Opponent int `json:"opponent"`
}

// flexString accepts either a JSON string or a bare number ("Week 3" or 3).
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString("Week " + n.String())
	return nil
}

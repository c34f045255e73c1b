package teams

import "strings"

// Conference is one of the two NFL conferences.
type Conference string

const (
	AFC Conference = "AFC"
	NFC Conference = "NFC"
)

// Division names as they appear in standings tables ("AFC East").
type Division string

const (
	AFCEast  Division = "AFC East"
	AFCNorth Division = "AFC North"
	AFCSouth Division = "AFC South"
	AFCWest  Division = "AFC West"
	NFCEast  Division = "NFC East"
	NFCNorth Division = "NFC North"
	NFCSouth Division = "NFC South"
	NFCWest  Division = "NFC West"
)

// Divisions lists every division in display order.
var Divisions = []Division{
	AFCEast, AFCNorth, AFCSouth, AFCWest,
	NFCEast, NFCNorth, NFCSouth, NFCWest,
}

// Conference returns the conference prefix of the division.
func (d Division) Conference() Conference {
	if strings.HasPrefix(string(d), string(NFC)) {
		return NFC
	}
	return AFC
}

// Slug returns the URL form of the division ("afc-east").
func (d Division) Slug() string {
	return strings.ToLower(strings.ReplaceAll(string(d), " ", "-"))
}

// Valid reports whether d is one of the eight NFL divisions.
func (d Division) Valid() bool {
	for _, known := range Divisions {
		if d == known {
			return true
		}
	}
	return false
}

// ParseDivision accepts either a slug ("nfc-north") or a display name ("NFC North").
func ParseDivision(raw string) (Division, bool) {
	needle := strings.ToLower(strings.TrimSpace(raw))
	for _, d := range Divisions {
		if needle == d.Slug() || needle == strings.ToLower(string(d)) {
			return d, true
		}
	}
	return "", false
}

// Team is a static reference entry for one NFL franchise.
type Team struct {
	ID            string     `json:"id" yaml:"id"`
	Name          string     `json:"name" yaml:"name"`
	FullName      string     `json:"fullName" yaml:"fullName"`
	Abbreviation  string     `json:"abbreviation" yaml:"abbreviation"`
	City          string     `json:"city" yaml:"city"`
	Conference    Conference `json:"conference" yaml:"conference"`
	Division      Division   `json:"division" yaml:"division"`
	SportskeedaID int        `json:"sportskeedaId" yaml:"sportskeedaId"`
}

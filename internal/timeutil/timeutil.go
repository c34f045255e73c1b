package timeutil

import "time"

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// seasonRolloverMonth is the first month in which a new NFL season year applies.
const seasonRolloverMonth = time.March

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// SeasonYear returns the NFL season a date belongs to. January and February
// games (playoffs, Super Bowl) belong to the previous calendar year's season.
func SeasonYear(now time.Time) int {
	if now.Month() < seasonRolloverMonth {
		return now.Year() - 1
	}
	return now.Year()
}

package standings

import "strconv"

// FormatRecord renders a record as "W-L-T".
func FormatRecord(r TeamRecord) string {
	return strconv.Itoa(r.Wins) + "-" + strconv.Itoa(r.Losses) + "-" + strconv.Itoa(r.Ties)
}

// WinPercentage counts ties as half a win; zero games played yields 0.
func WinPercentage(r TeamRecord) float64 {
	played := r.GamesPlayed()
	if played == 0 {
		return 0
	}
	return (float64(r.Wins) + 0.5*float64(r.Ties)) / float64(played)
}

// Ordinal formats a 1-based rank ("1st", "2nd", "11th", "22nd").
func Ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}

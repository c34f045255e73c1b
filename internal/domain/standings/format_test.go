package standings

import (
	"math"
	"testing"
)

func TestFormatRecord(t *testing.T) {
	if got := FormatRecord(TeamRecord{Wins: 9, Losses: 6, Ties: 1}); got != "9-6-1" {
		t.Fatalf("expected 9-6-1, got %s", got)
	}
	if got := FormatRecord(TeamRecord{}); got != "0-0-0" {
		t.Fatalf("expected 0-0-0, got %s", got)
	}
}

func TestWinPercentage(t *testing.T) {
	cases := []struct {
		record TeamRecord
		want   float64
	}{
		{TeamRecord{Wins: 9, Losses: 6, Ties: 1}, 0.59375},
		{TeamRecord{}, 0},
		{TeamRecord{Wins: 3}, 1},
		{TeamRecord{Ties: 2}, 0.5},
		{TeamRecord{Losses: 4}, 0},
	}
	for _, tc := range cases {
		if got := WinPercentage(tc.record); math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("WinPercentage(%+v) = %v, want %v", tc.record, got, tc.want)
		}
	}
}

func TestOrdinal(t *testing.T) {
	cases := map[int]string{
		1:   "1st",
		2:   "2nd",
		3:   "3rd",
		4:   "4th",
		11:  "11th",
		12:  "12th",
		13:  "13th",
		21:  "21st",
		22:  "22nd",
		32:  "32nd",
		111: "111th",
	}
	for in, want := range cases {
		if got := Ordinal(in); got != want {
			t.Fatalf("Ordinal(%d) = %s, want %s", in, got, want)
		}
	}
}

package teams

import (
	"reflect"
	"testing"
)

func TestTeamJSONTags(t *testing.T) {
	type fieldCheck struct {
		name string
		tag  string
	}
	teamType := reflect.TypeOf(Team{})
	fields := []fieldCheck{
		{"ID", "id"},
		{"Name", "name"},
		{"FullName", "fullName"},
		{"Abbreviation", "abbreviation"},
		{"City", "city"},
		{"Conference", "conference"},
		{"Division", "division"},
		{"SportskeedaID", "sportskeedaId"},
	}
	for _, fc := range fields {
		f, ok := teamType.FieldByName(fc.name)
		if !ok {
			t.Fatalf("missing field %s", fc.name)
		}
		if tag := f.Tag.Get("json"); tag != fc.tag {
			t.Fatalf("field %s expected tag %s, got %s", fc.name, fc.tag, tag)
		}
	}
}

func TestDivisionHelpers(t *testing.T) {
	if AFCEast.Slug() != "afc-east" {
		t.Fatalf("unexpected slug %s", AFCEast.Slug())
	}
	if NFCWest.Conference() != NFC || AFCSouth.Conference() != AFC {
		t.Fatalf("unexpected conference mapping")
	}
	if !NFCNorth.Valid() || Division("XFL East").Valid() {
		t.Fatalf("unexpected division validity")
	}
	if len(Divisions) != 8 {
		t.Fatalf("expected 8 divisions, got %d", len(Divisions))
	}
}

func TestParseDivision(t *testing.T) {
	cases := map[string]Division{
		"afc-east":  AFCEast,
		"NFC North": NFCNorth,
		" nfc-west": NFCWest,
	}
	for in, want := range cases {
		got, ok := ParseDivision(in)
		if !ok || got != want {
			t.Fatalf("ParseDivision(%q) = %q,%v want %q", in, got, ok, want)
		}
	}
	if _, ok := ParseDivision("afc-central"); ok {
		t.Fatalf("expected unknown division to fail")
	}
}

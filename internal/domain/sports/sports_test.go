package sports

import (
	"errors"
	"strings"
	"testing"
)

func TestCatalogLabelsAndAPITypes(t *testing.T) {
	cases := []struct {
		sport   Sport
		label   string
		apiType string
	}{
		{Unihockey, "Unihockey", "swissunihockey"},
		{Volleyball, "Volleyball", "swissvolley"},
		{Handball, "Handball", "swisshandball"},
	}
	for _, tc := range cases {
		if tc.sport.Label() != tc.label {
			t.Fatalf("expected label %s, got %s", tc.label, tc.sport.Label())
		}
		if tc.sport.APIType() != tc.apiType {
			t.Fatalf("expected api type %s, got %s", tc.apiType, tc.sport.APIType())
		}
	}
	if len(All()) != 3 {
		t.Fatalf("expected three sports, got %d", len(All()))
	}
}

func TestParse(t *testing.T) {
	s, err := Parse(" Volleyball ")
	if err != nil || s != Volleyball {
		t.Fatalf("expected volleyball, got %q (%v)", s, err)
	}
	if _, err := Parse("curling"); !errors.Is(err, ErrUnknownSport) {
		t.Fatalf("expected ErrUnknownSport, got %v", err)
	}
	if Sport("").Valid() {
		t.Fatalf("empty sport must not be valid")
	}
}

func TestClubsQuery(t *testing.T) {
	want := "{\n  clubs {\n    id\n    name\n  }\n}\n"
	if got := Unihockey.ClubsQuery().String(); got != want {
		t.Fatalf("unexpected clubs query:\n%s", got)
	}
}

func TestTeamsQueryIncludesLeagueForVolleyball(t *testing.T) {
	q := Volleyball.TeamsQuery("42").String()
	if !strings.Contains(q, `teams(clubId: "42")`) || !strings.Contains(q, "liga") {
		t.Fatalf("unexpected teams query:\n%s", q)
	}
	if strings.Contains(Unihockey.TeamsQuery("42").String(), "liga") {
		t.Fatalf("unihockey teams query should not request liga")
	}
}

func TestGamesQueryAddsClubOnlyForHandball(t *testing.T) {
	if q := Handball.GamesQuery("7", "9").String(); !strings.Contains(q, `games(teamId: "7", clubId: "9")`) {
		t.Fatalf("handball games query must carry club id:\n%s", q)
	}
	if q := Unihockey.GamesQuery("7", "9").String(); strings.Contains(q, "clubId") {
		t.Fatalf("unihockey games query must not carry club id:\n%s", q)
	}
}

func TestQueryEscapesArguments(t *testing.T) {
	q := Unihockey.TeamsQuery(`a"b`).String()
	if !strings.Contains(q, `clubId: "a\"b"`) {
		t.Fatalf("expected escaped argument, got:\n%s", q)
	}
}

package testutil

import (
	"github.com/preston-bernstein/club-studio/internal/domain/clubs"
	domaingames "github.com/preston-bernstein/club-studio/internal/domain/games"
	"github.com/preston-bernstein/club-studio/internal/domain/teams"
)

// SampleGame returns a game fixture on date (DD.MM.YYYY) with the given result.
func SampleGame(id, date, result string) domaingames.Game {
	if result == "" {
		result = domaingames.NotPlayedResult
	}
	return domaingames.Game{
		ID:       id,
		Date:     date,
		Time:     "19:30",
		HomeTeam: "Home " + id,
		AwayTeam: "Away " + id,
		Result:   result,
	}
}

// SampleClubs returns a small unsorted club list.
func SampleClubs() []clubs.Club {
	return []clubs.Club{
		{ID: "333", Name: "Pfadi Winterthur"},
		{ID: "401", Name: "HC Kriens-Luzern"},
		{ID: "120", Name: "BSV Bern"},
	}
}

// SampleTeams returns the teams of one club.
func SampleTeams(clubID string) []teams.Team {
	return []teams.Team{
		{ID: clubID + "2", Name: "U19 Elite"},
		{ID: clubID + "1", Name: "Herren 1", League: "QHL"},
	}
}

package providers

import (
	"context"

	"github.com/preston-bernstein/club-studio/internal/domain/clubs"
	"github.com/preston-bernstein/club-studio/internal/domain/games"
	"github.com/preston-bernstein/club-studio/internal/domain/sports"
	"github.com/preston-bernstein/club-studio/internal/domain/teams"
)

// ClubProvider fetches the clubs of a federation.
type ClubProvider interface {
	FetchClubs(ctx context.Context, sport sports.Sport) ([]clubs.Club, error)
}

// TeamProvider fetches the teams of one club.
type TeamProvider interface {
	FetchTeams(ctx context.Context, sport sports.Sport, clubID string) ([]teams.Team, error)
}

// GameProvider fetches the games of one team. clubID is ignored by sports that do not need it.
type GameProvider interface {
	FetchGames(ctx context.Context, sport sports.Sport, teamID, clubID string) ([]games.Game, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	ClubProvider
	TeamProvider
	GameProvider
}

package testutil

import (
	"context"
	"sync/atomic"

	"github.com/preston-bernstein/club-studio/internal/domain/clubs"
	domaingames "github.com/preston-bernstein/club-studio/internal/domain/games"
	"github.com/preston-bernstein/club-studio/internal/domain/sports"
	"github.com/preston-bernstein/club-studio/internal/domain/teams"
	"github.com/preston-bernstein/club-studio/internal/providers"
)

// StubProvider is a providers.DataProvider returning fixed data.
type StubProvider struct {
	Clubs []clubs.Club
	Teams []teams.Team
	Games []domaingames.Game
	Err   error
	Calls atomic.Int32
	// Notify is closed on the first fetch.
	Notify chan struct{}
}

var _ providers.DataProvider = (*StubProvider)(nil)

func (s *StubProvider) FetchClubs(ctx context.Context, sport sports.Sport) ([]clubs.Club, error) {
	s.touch()
	return s.Clubs, s.Err
}

func (s *StubProvider) FetchTeams(ctx context.Context, sport sports.Sport, clubID string) ([]teams.Team, error) {
	s.touch()
	return s.Teams, s.Err
}

func (s *StubProvider) FetchGames(ctx context.Context, sport sports.Sport, teamID, clubID string) ([]domaingames.Game, error) {
	s.touch()
	return s.Games, s.Err
}

func (s *StubProvider) touch() {
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
}

// UnavailableProvider fails every fetch with ErrProviderUnavailable.
type UnavailableProvider struct{}

func (UnavailableProvider) FetchClubs(ctx context.Context, sport sports.Sport) ([]clubs.Club, error) {
	return nil, providers.ErrProviderUnavailable
}

func (UnavailableProvider) FetchTeams(ctx context.Context, sport sports.Sport, clubID string) ([]teams.Team, error) {
	return nil, providers.ErrProviderUnavailable
}

func (UnavailableProvider) FetchGames(ctx context.Context, sport sports.Sport, teamID, clubID string) ([]domaingames.Game, error) {
	return nil, providers.ErrProviderUnavailable
}

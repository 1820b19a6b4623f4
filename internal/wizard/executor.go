package wizard

import (
	"context"
	"fmt"

	appgames "github.com/preston-bernstein/club-studio/internal/app/games"
	"github.com/preston-bernstein/club-studio/internal/domain/clubs"
	"github.com/preston-bernstein/club-studio/internal/domain/sports"
	"github.com/preston-bernstein/club-studio/internal/domain/teams"
	"github.com/preston-bernstein/club-studio/internal/preview"
)

// ClubLister is satisfied by app/clubs.Resolver.
type ClubLister interface {
	ListClubs(ctx context.Context, sport sports.Sport) ([]clubs.Club, error)
}

// TeamLister is satisfied by app/teams.Resolver.
type TeamLister interface {
	ListTeams(ctx context.Context, sport sports.Sport, clubID string) ([]teams.Team, error)
}

// GameLister is satisfied by app/games.Resolver.
type GameLister interface {
	ListGames(ctx context.Context, q appgames.Query) (appgames.Listing, error)
}

// Executor turns commands into completion events. Execute blocks until the work is done
// or ctx is canceled.
type Executor struct {
	Clubs    ClubLister
	Teams    TeamLister
	Games    GameLister
	Renderer preview.Renderer
}

// Execute runs cmd and reports its completion event, tagged with cmd's generation.
func (x Executor) Execute(ctx context.Context, cmd Command) Event {
	switch c := cmd.(type) {
	case FetchClubs:
		if x.Clubs == nil {
			return ClubsLoaded{Generation: c.Generation, Err: errNotConfigured("clubs")}
		}
		list, err := x.Clubs.ListClubs(ctx, c.Sport)
		return ClubsLoaded{Generation: c.Generation, Clubs: list, Err: err}
	case FetchTeams:
		if x.Teams == nil {
			return TeamsLoaded{Generation: c.Generation, Err: errNotConfigured("teams")}
		}
		list, err := x.Teams.ListTeams(ctx, c.Sport, c.ClubID)
		return TeamsLoaded{Generation: c.Generation, Teams: list, Err: err}
	case FetchGames:
		if x.Games == nil {
			return GamesLoaded{Generation: c.Generation, Listing: appgames.Listing{Query: c.Query}, Err: errNotConfigured("games")}
		}
		listing, err := x.Games.ListGames(ctx, c.Query)
		return GamesLoaded{Generation: c.Generation, Listing: listing, Err: err}
	case RenderPreview:
		if x.Renderer == nil {
			return PreviewRendered{Generation: c.Generation, Err: errNotConfigured("renderer")}
		}
		art, err := x.Renderer.Render(ctx, c.Request)
		return PreviewRendered{Generation: c.Generation, Artifact: art, Err: err}
	}
	return nil
}

func errNotConfigured(what string) error {
	return fmt.Errorf("wizard: no %s source configured", what)
}

package wizard

import (
	appgames "github.com/preston-bernstein/club-studio/internal/app/games"
	"github.com/preston-bernstein/club-studio/internal/domain/clubs"
	"github.com/preston-bernstein/club-studio/internal/domain/sports"
	"github.com/preston-bernstein/club-studio/internal/domain/teams"
	"github.com/preston-bernstein/club-studio/internal/preview"
)

// Event is a user action or a fetch completion.
type Event interface {
	event()
}

// SportChosen selects (or changes) the sport from any state.
type SportChosen struct{ Sport sports.Sport }

// ClubChosen selects a club from the loaded list.
type ClubChosen struct{ Club clubs.Club }

// TeamChosen selects a team from the loaded list.
type TeamChosen struct{ Team teams.Team }

// GameToggled adds or removes one game from the selection.
type GameToggled struct{ GameID string }

// IncludePastToggled flips whether past games are listed.
type IncludePastToggled struct{}

// GamesConfirmed commits the current game selection.
type GamesConfirmed struct{}

// Back returns to the previous step.
type Back struct{}

// ClubFilterChanged narrows the club list locally.
type ClubFilterChanged struct{ Query string }

// PreviewOptionsChanged picks another theme or template kind for the confirmed games.
type PreviewOptionsChanged struct {
	Theme preview.Theme
	Kind  preview.Kind
}

// ClubsLoaded completes a FetchClubs command.
type ClubsLoaded struct {
	Generation uint64
	Clubs      []clubs.Club
	Err        error
}

// TeamsLoaded completes a FetchTeams command.
type TeamsLoaded struct {
	Generation uint64
	Teams      []teams.Team
	Err        error
}

// GamesLoaded completes a FetchGames command.
type GamesLoaded struct {
	Generation uint64
	Listing    appgames.Listing
	Err        error
}

// PreviewRendered completes a RenderPreview command.
type PreviewRendered struct {
	Generation uint64
	Artifact   preview.Artifact
	Err        error
}

func (SportChosen) event()           {}
func (ClubChosen) event()            {}
func (TeamChosen) event()            {}
func (GameToggled) event()           {}
func (IncludePastToggled) event()    {}
func (GamesConfirmed) event()        {}
func (Back) event()                  {}
func (ClubFilterChanged) event()     {}
func (PreviewOptionsChanged) event() {}
func (ClubsLoaded) event()           {}
func (TeamsLoaded) event()           {}
func (GamesLoaded) event()           {}
func (PreviewRendered) event()       {}

// Command is a side effect requested by Reduce. Every command carries the generation it
// was issued under; its completion event is dropped if the generation has moved on.
type Command interface {
	Gen() uint64
}

type FetchClubs struct {
	Generation uint64
	Sport      sports.Sport
}

type FetchTeams struct {
	Generation uint64
	Sport      sports.Sport
	ClubID     string
}

type FetchGames struct {
	Generation uint64
	Query      appgames.Query
}

type RenderPreview struct {
	Generation uint64
	Request    preview.Request
}

func (c FetchClubs) Gen() uint64    { return c.Generation }
func (c FetchTeams) Gen() uint64    { return c.Generation }
func (c FetchGames) Gen() uint64    { return c.Generation }
func (c RenderPreview) Gen() uint64 { return c.Generation }

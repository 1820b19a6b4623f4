// Package wizard sequences sport, club, team and game selection. The state is an explicit
// sum type; events are folded into it by the pure Reduce and side effects come back as
// Commands for a Runner to execute.
package wizard

import (
	"slices"

	"github.com/preston-bernstein/club-studio/internal/domain/clubs"
	"github.com/preston-bernstein/club-studio/internal/domain/games"
	"github.com/preston-bernstein/club-studio/internal/domain/sports"
	"github.com/preston-bernstein/club-studio/internal/domain/teams"
)

// Step names a wizard state for display, logs and metrics.
type Step string

const (
	StepSport   Step = "sport"
	StepClub    Step = "club"
	StepTeam    Step = "team"
	StepGames   Step = "games"
	StepPreview Step = "preview"
)

// State is one of SportUnselected, ClubUnselected, TeamUnselected, GamesUnselected or
// GamesSelected. Each variant carries exactly the choices made so far.
type State interface {
	Step() Step
	sealed()
}

// SportUnselected is the entry state.
type SportUnselected struct{}

// ClubUnselected waits for a club of Sport.
type ClubUnselected struct {
	Sport sports.Sport
}

// TeamUnselected waits for a team of Club.
type TeamUnselected struct {
	Sport sports.Sport
	Club  clubs.Club
}

// GamesUnselected waits for the game selection to be confirmed.
type GamesUnselected struct {
	Sport sports.Sport
	Club  clubs.Club
	Team  teams.Team
}

// GamesSelected is terminal: the confirmed games go to the preview renderer.
type GamesSelected struct {
	Sport       sports.Sport
	Club        clubs.Club
	Team        teams.Team
	GameIDs     []string
	ResultFlags []bool
	Games       []games.Game
}

func (SportUnselected) Step() Step { return StepSport }
func (ClubUnselected) Step() Step  { return StepClub }
func (TeamUnselected) Step() Step  { return StepTeam }
func (GamesUnselected) Step() Step { return StepGames }
func (GamesSelected) Step() Step   { return StepPreview }

func (SportUnselected) sealed() {}
func (ClubUnselected) sealed()  {}
func (TeamUnselected) sealed()  {}
func (GamesUnselected) sealed() {}
func (GamesSelected) sealed()   {}

// SportOf returns the chosen sport, if any.
func SportOf(s State) (sports.Sport, bool) {
	switch v := s.(type) {
	case ClubUnselected:
		return v.Sport, true
	case TeamUnselected:
		return v.Sport, true
	case GamesUnselected:
		return v.Sport, true
	case GamesSelected:
		return v.Sport, true
	}
	return "", false
}

// ClubOf returns the chosen club, if any.
func ClubOf(s State) (clubs.Club, bool) {
	switch v := s.(type) {
	case TeamUnselected:
		return v.Club, true
	case GamesUnselected:
		return v.Club, true
	case GamesSelected:
		return v.Club, true
	}
	return clubs.Club{}, false
}

// TeamOf returns the chosen team, if any.
func TeamOf(s State) (teams.Team, bool) {
	switch v := s.(type) {
	case GamesUnselected:
		return v.Team, true
	case GamesSelected:
		return v.Team, true
	}
	return teams.Team{}, false
}

// SelectedGameIDs returns the confirmed game ids; empty before confirmation.
func SelectedGameIDs(s State) []string {
	if v, ok := s.(GamesSelected); ok {
		return slices.Clone(v.GameIDs)
	}
	return nil
}

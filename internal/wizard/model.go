package wizard

import (
	appclubs "github.com/preston-bernstein/club-studio/internal/app/clubs"
	appgames "github.com/preston-bernstein/club-studio/internal/app/games"
	"github.com/preston-bernstein/club-studio/internal/domain/clubs"
	"github.com/preston-bernstein/club-studio/internal/domain/teams"
	"github.com/preston-bernstein/club-studio/internal/preview"
)

// Model is the complete wizard state. Treat it as a value: Reduce never modifies the
// slices of the model it was given.
type Model struct {
	State State
	// Generation identifies the current fetch. Bumped by every change that makes
	// in-flight results irrelevant.
	Generation uint64
	// Loading is true while the current step's fetch is outstanding.
	Loading bool

	Clubs      []clubs.Club
	ClubFilter string
	Teams      []teams.Team

	Listing     appgames.Listing
	IncludePast bool
	Selection   appgames.Selection

	Theme       preview.Theme
	Kind        preview.Kind
	Rendering   bool
	Preview     *preview.Artifact
	PreviewErr  error
	LastFailure error
}

// New returns the initial model. maxGames caps the selection (default when <= 0).
func New(maxGames int) Model {
	return Model{
		State:     SportUnselected{},
		Selection: appgames.NewSelection(maxGames),
		Theme:     preview.DefaultTheme,
	}
}

// Step is the current step.
func (m Model) Step() Step {
	if m.State == nil {
		return StepSport
	}
	return m.State.Step()
}

// VisibleClubs is the club list after the local filter.
func (m Model) VisibleClubs() []clubs.Club {
	return appclubs.Filter(m.Clubs, m.ClubFilter)
}

// SelectedIDs is the live selection while picking games.
func (m Model) SelectedIDs() []string {
	return m.Selection.IDs()
}

// PreviewRequest builds the renderer request for a confirmed selection.
func (m Model) PreviewRequest() (preview.Request, bool) {
	sel, ok := m.State.(GamesSelected)
	if !ok {
		return preview.Request{}, false
	}
	return preview.Request{
		APIType:     sel.Sport.APIType(),
		GameIDs:     sel.GameIDs,
		ResultFlags: sel.ResultFlags,
		Theme:       m.Theme,
		Kind:        m.Kind,
	}, true
}

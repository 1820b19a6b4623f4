package wizard

import (
	"slices"

	appgames "github.com/preston-bernstein/club-studio/internal/app/games"
	"github.com/preston-bernstein/club-studio/internal/domain/clubs"
	"github.com/preston-bernstein/club-studio/internal/domain/sports"
	"github.com/preston-bernstein/club-studio/internal/preview"
)

// Reduce folds ev into m. It is pure: the same inputs always give the same outputs and
// nothing outside the returned values changes. Events that do not apply to the current
// state return m unchanged and no commands.
func Reduce(m Model, ev Event) (Model, []Command) {
	if m.State == nil {
		m.State = SportUnselected{}
	}
	if IsStale(m, ev) {
		return m, nil
	}

	switch e := ev.(type) {
	case SportChosen:
		if !e.Sport.Valid() {
			return m, nil
		}
		return enterClubs(m, e.Sport)

	case ClubChosen:
		s, ok := m.State.(ClubUnselected)
		if !ok || m.Loading || e.Club.ID == "" {
			return m, nil
		}
		return enterTeams(m, s.Sport, e.Club)

	case TeamChosen:
		s, ok := m.State.(TeamUnselected)
		if !ok || m.Loading || e.Team.ID == "" {
			return m, nil
		}
		m.IncludePast = false
		return enterGames(m, GamesUnselected{Sport: s.Sport, Club: s.Club, Team: e.Team})

	case GameToggled:
		if _, ok := m.State.(GamesUnselected); !ok || m.Loading {
			return m, nil
		}
		if !m.Selection.Contains(e.GameID) && !listed(m.Listing, e.GameID) {
			return m, nil
		}
		m.Selection = m.Selection.Toggle(e.GameID)
		return m, nil

	case IncludePastToggled:
		s, ok := m.State.(GamesUnselected)
		if !ok {
			return m, nil
		}
		m.IncludePast = !m.IncludePast
		return refetchGames(m, s)

	case GamesConfirmed:
		s, ok := m.State.(GamesUnselected)
		if !ok || m.Loading {
			return m, nil
		}
		c, ok := m.Selection.Confirm(m.Listing.Games)
		if !ok {
			return m, nil
		}
		m.State = GamesSelected{
			Sport:       s.Sport,
			Club:        s.Club,
			Team:        s.Team,
			GameIDs:     c.GameIDs,
			ResultFlags: c.ResultFlags,
			Games:       c.Games,
		}
		m.Kind = preview.DefaultKind(c.ResultFlags)
		return render(m)

	case PreviewOptionsChanged:
		sel, ok := m.State.(GamesSelected)
		if !ok {
			return m, nil
		}
		if e.Theme != "" {
			if !slices.Contains(preview.Themes(), e.Theme) {
				return m, nil
			}
			m.Theme = e.Theme
		}
		switch e.Kind {
		case "":
		case preview.KindPreview:
			m.Kind = e.Kind
		case preview.KindResult:
			if !slices.Contains(sel.ResultFlags, true) {
				return m, nil
			}
			m.Kind = e.Kind
		default:
			return m, nil
		}
		return render(m)

	case Back:
		return back(m)

	case ClubFilterChanged:
		if _, ok := m.State.(ClubUnselected); !ok {
			return m, nil
		}
		m.ClubFilter = e.Query
		return m, nil

	case ClubsLoaded:
		if _, ok := m.State.(ClubUnselected); !ok {
			return m, nil
		}
		m.Loading = false
		m.LastFailure = e.Err
		m.Clubs = orEmpty(e.Clubs)
		return m, nil

	case TeamsLoaded:
		if _, ok := m.State.(TeamUnselected); !ok {
			return m, nil
		}
		m.Loading = false
		m.LastFailure = e.Err
		m.Teams = orEmpty(e.Teams)
		return m, nil

	case GamesLoaded:
		if _, ok := m.State.(GamesUnselected); !ok {
			return m, nil
		}
		m.Loading = false
		m.LastFailure = e.Err
		m.Listing = e.Listing
		return m, nil

	case PreviewRendered:
		if _, ok := m.State.(GamesSelected); !ok {
			return m, nil
		}
		m.Rendering = false
		m.PreviewErr = e.Err
		if e.Err != nil {
			m.Preview = nil
			return m, nil
		}
		art := e.Artifact
		m.Preview = &art
		return m, nil
	}
	return m, nil
}

// IsStale reports whether ev completes a command from an earlier generation.
func IsStale(m Model, ev Event) bool {
	switch e := ev.(type) {
	case ClubsLoaded:
		return e.Generation != m.Generation
	case TeamsLoaded:
		return e.Generation != m.Generation
	case GamesLoaded:
		return e.Generation != m.Generation
	case PreviewRendered:
		return e.Generation != m.Generation
	}
	return false
}

// StepOfEvent names the step a completion event belongs to.
func StepOfEvent(ev Event) Step {
	switch ev.(type) {
	case ClubsLoaded:
		return StepClub
	case TeamsLoaded:
		return StepTeam
	case GamesLoaded:
		return StepGames
	case PreviewRendered:
		return StepPreview
	}
	return ""
}

func back(m Model) (Model, []Command) {
	switch s := m.State.(type) {
	case GamesSelected:
		return enterGames(m, GamesUnselected{Sport: s.Sport, Club: s.Club, Team: s.Team})
	case GamesUnselected:
		return enterTeams(m, s.Sport, s.Club)
	case TeamUnselected:
		return enterClubs(m, s.Sport)
	case ClubUnselected:
		m = clearFrom(m, StepSport)
		m.State = SportUnselected{}
		m.Generation++
		m.Loading = false
		return m, nil
	}
	return m, nil
}

func enterClubs(m Model, sport sports.Sport) (Model, []Command) {
	m = clearFrom(m, StepSport)
	m.State = ClubUnselected{Sport: sport}
	m.Generation++
	m.Loading = true
	return m, []Command{FetchClubs{Generation: m.Generation, Sport: sport}}
}

func enterTeams(m Model, sport sports.Sport, club clubs.Club) (Model, []Command) {
	m = clearFrom(m, StepClub)
	m.State = TeamUnselected{Sport: sport, Club: club}
	m.Generation++
	m.Loading = true
	return m, []Command{FetchTeams{Generation: m.Generation, Sport: sport, ClubID: club.ID}}
}

func enterGames(m Model, s GamesUnselected) (Model, []Command) {
	m = clearFrom(m, StepTeam)
	m.State = s
	return refetchGames(m, s)
}

func refetchGames(m Model, s GamesUnselected) (Model, []Command) {
	m.Generation++
	m.Loading = true
	q := appgames.Query{Sport: s.Sport, TeamID: s.Team.ID, ClubID: s.Club.ID, IncludePast: m.IncludePast}
	return m, []Command{FetchGames{Generation: m.Generation, Query: q}}
}

func render(m Model) (Model, []Command) {
	req, _ := m.PreviewRequest()
	m.Generation++
	m.Rendering = true
	m.Preview = nil
	m.PreviewErr = nil
	return m, []Command{RenderPreview{Generation: m.Generation, Request: req}}
}

// clearFrom drops everything chosen or fetched after step.
func clearFrom(m Model, step Step) Model {
	m.LastFailure = nil
	m.Rendering = false
	m.Preview = nil
	m.PreviewErr = nil
	m.Kind = ""
	m.Selection = appgames.NewSelection(m.Selection.Max())
	m.Listing = appgames.Listing{}
	if step == StepTeam {
		return m
	}
	m.IncludePast = false
	m.Teams = nil
	if step == StepClub {
		return m
	}
	m.Clubs = nil
	m.ClubFilter = ""
	return m
}

func listed(l appgames.Listing, id string) bool {
	for _, g := range l.Games {
		if g.ID == id {
			return true
		}
	}
	return false
}

func orEmpty[T any](list []T) []T {
	if list == nil {
		return []T{}
	}
	return list
}

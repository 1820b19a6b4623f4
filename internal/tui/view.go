package tui

import (
	"fmt"
	"strings"

	"github.com/preston-bernstein/club-studio/internal/domain/sports"
	"github.com/preston-bernstein/club-studio/internal/wizard"
)

func (m model) View() string {
	var sb strings.Builder

	sb.WriteString(m.header())
	sb.WriteString("\n\n")

	switch m.state.Step() {
	case wizard.StepSport:
		sb.WriteString(m.sportView())
	case wizard.StepClub:
		sb.WriteString(m.clubView())
	case wizard.StepTeam:
		sb.WriteString(m.teamView())
	case wizard.StepGames:
		sb.WriteString(m.gamesView())
	default:
		sb.WriteString(m.previewView())
	}

	sb.WriteString("\n")
	if m.err != nil {
		sb.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		sb.WriteString("\n")
	} else if m.status != "" {
		sb.WriteString(selectedStyle.Render(m.status))
		sb.WriteString("\n")
	}
	sb.WriteString(helpStyle.Render(m.help.ShortHelpView(m.keys.forStep(m.state.Step()))))

	return sb.String()
}

func (m model) header() string {
	parts := []string{titleStyle.Render("Club Studio")}
	if crumbs := breadcrumb(m.state.State); crumbs != "" {
		parts = append(parts, crumbStyle.Render(crumbs))
	}
	parts = append(parts, userStyle.Render(m.userLabel()))
	return strings.Join(parts, "  ")
}

func (m model) userLabel() string {
	if m.auth == nil {
		return "guest"
	}
	if p := m.auth.Profile(); p != nil && p.FullName != "" {
		return p.FullName
	}
	if u := m.auth.User(); u != nil {
		return u.Email
	}
	return "guest"
}

func breadcrumb(s wizard.State) string {
	var parts []string
	if sport, ok := wizard.SportOf(s); ok {
		parts = append(parts, sport.Label())
	}
	if club, ok := wizard.ClubOf(s); ok {
		parts = append(parts, club.Name)
	}
	if team, ok := wizard.TeamOf(s); ok {
		parts = append(parts, team.Name)
	}
	return strings.Join(parts, " › ")
}

func (m model) row(i int, text string) string {
	if i == m.cursor {
		return cursorStyle.Render("> ") + text
	}
	return itemStyle.Render(text)
}

func (m model) loading(what string) string {
	return m.spinner.View() + helpStyle.Render(" Loading "+what+"...")
}

func (m model) failure() string {
	if m.state.LastFailure == nil {
		return ""
	}
	return errorStyle.Render("Last fetch failed: "+m.state.LastFailure.Error()) + "\n"
}

func (m model) sportView() string {
	var sb strings.Builder
	sb.WriteString("Choose a sport\n\n")
	for i, s := range sports.All() {
		sb.WriteString(m.row(i, s.Label()))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m model) clubView() string {
	var sb strings.Builder
	sb.WriteString(inputStyle.Render(m.filter.View()))
	sb.WriteString("\n\n")
	if m.state.Loading {
		sb.WriteString(m.loading("clubs"))
		return sb.String()
	}
	sb.WriteString(m.failure())
	visible := m.state.VisibleClubs()
	if len(visible) == 0 {
		sb.WriteString(helpStyle.Render("No clubs found"))
		return sb.String()
	}
	for i, c := range visible {
		sb.WriteString(m.row(i, c.Name))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m model) teamView() string {
	if m.state.Loading {
		return m.loading("teams")
	}
	var sb strings.Builder
	sb.WriteString(m.failure())
	if len(m.state.Teams) == 0 {
		sb.WriteString(helpStyle.Render("No teams found"))
		return sb.String()
	}
	for i, t := range m.state.Teams {
		label := t.Name
		if t.League != "" {
			label += helpStyle.Render("  " + t.League)
		}
		sb.WriteString(m.row(i, label))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m model) gamesView() string {
	if m.state.Loading {
		return m.loading("games")
	}
	var sb strings.Builder
	sb.WriteString(m.failure())

	past := "hidden"
	if m.state.IncludePast {
		past = "shown"
	}
	sel := m.state.Selection
	sb.WriteString(helpStyle.Render(fmt.Sprintf("%d/%d selected · past games %s", sel.Len(), sel.Max(), past)))
	sb.WriteString("\n\n")

	if len(m.state.Listing.Groups) == 0 {
		sb.WriteString(helpStyle.Render("No games found"))
		return sb.String()
	}
	i := 0
	for _, g := range m.state.Listing.Groups {
		sb.WriteString(dateStyle.Render(g.Date))
		sb.WriteString("\n")
		for _, game := range g.Games {
			mark := "[ ]"
			if sel.Contains(game.ID) {
				mark = selectedStyle.Render("[x]")
			}
			line := fmt.Sprintf("%s %s  %s – %s", mark, game.Time, game.HomeTeam, game.AwayTeam)
			if game.HasResult() {
				line += "  " + game.Result
			}
			sb.WriteString(m.row(i, line))
			sb.WriteString("\n")
			i++
		}
	}
	return sb.String()
}

func (m model) previewView() string {
	sel, ok := m.state.State.(wizard.GamesSelected)
	if !ok {
		return ""
	}
	var sb strings.Builder
	for _, g := range sel.Games {
		sb.WriteString(itemStyle.Render(fmt.Sprintf("%s %s  %s – %s", g.Date, g.Time, g.HomeTeam, g.AwayTeam)))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Theme: %s   Template: %s\n\n", crumbStyle.Render(m.state.Theme.Label()), crumbStyle.Render(string(m.state.Kind))))

	switch {
	case m.state.Rendering:
		sb.WriteString(m.spinner.View() + helpStyle.Render(" Rendering..."))
	case m.state.PreviewErr != nil:
		sb.WriteString(errorStyle.Render("Render failed: " + m.state.PreviewErr.Error()))
	case m.state.Preview != nil:
		sb.WriteString(selectedStyle.Render(fmt.Sprintf("%s ready (%s)", m.state.Preview.ContentType, humanSize(len(m.state.Preview.Data)))))
	}
	sb.WriteString("\n")
	return sb.String()
}

func humanSize(n int) string {
	if n < 1024 {
		return fmt.Sprintf("%d B", n)
	}
	return fmt.Sprintf("%.1f KB", float64(n)/1024)
}

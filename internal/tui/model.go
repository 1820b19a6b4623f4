// Package tui drives the selection wizard from the terminal. The bubbletea model only
// translates keys into wizard events and renders the runner's latest model.
package tui

import (
	"context"
	"errors"
	"log/slog"
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/preston-bernstein/club-studio/internal/auth"
	"github.com/preston-bernstein/club-studio/internal/domain/sports"
	"github.com/preston-bernstein/club-studio/internal/logging"
	"github.com/preston-bernstein/club-studio/internal/preview"
	"github.com/preston-bernstein/club-studio/internal/wizard"
)

// Options wires the TUI.
type Options struct {
	Runner *wizard.Runner
	// Auth is optional; when set the header shows the signed-in user.
	Auth *auth.Context
	// OutDir receives saved previews. Empty means the working directory.
	OutDir string
	Logger *slog.Logger
}

// modelMsg carries a new wizard model published by the runner.
type modelMsg wizard.Model

type savedMsg struct {
	path string
	err  error
}

type model struct {
	runner *wizard.Runner
	auth   *auth.Context
	outDir string
	logger *slog.Logger

	updates     chan wizard.Model
	done        chan struct{}
	unsubscribe func()

	state    wizard.Model
	lastStep wizard.Step
	cursor   int
	status   string
	err      error

	filter  textinput.Model
	spinner spinner.Model
	help    help.Model
	keys    keyMap

	width  int
	height int
}

func newModel(opts Options) model {
	ti := textinput.New()
	ti.Placeholder = "Filter clubs..."
	ti.Prompt = "/ "
	ti.Width = 40
	ti.Focus()

	sp := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(cursorStyle))

	m := model{
		runner:  opts.Runner,
		auth:    opts.Auth,
		outDir:  opts.OutDir,
		logger:  opts.Logger,
		updates: make(chan wizard.Model, 1),
		done:    make(chan struct{}),
		filter:  ti,
		spinner: sp,
		help:    help.New(),
		keys:    defaultKeys(),
	}
	m.state = opts.Runner.Model()
	m.lastStep = m.state.Step()
	m.unsubscribe = opts.Runner.OnChange(latest(m.updates))
	return m
}

// latest returns a subscriber that keeps only the newest model in ch. It never blocks, so
// the runner is free to publish while the UI is busy.
func latest(ch chan wizard.Model) func(wizard.Model) {
	return func(m wizard.Model) {
		for {
			select {
			case ch <- m:
				return
			default:
			}
			select {
			case <-ch:
			default:
			}
		}
	}
}

func (m model) waitForModel() tea.Msg {
	select {
	case next := <-m.updates:
		return modelMsg(next)
	case <-m.done:
		return nil
	}
}

func (m model) close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
	close(m.done)
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.waitForModel, m.spinner.Tick, textinput.Blink)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case modelMsg:
		m.apply(wizard.Model(msg))
		return m, m.waitForModel

	case savedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.status = ""
		} else {
			m.err = nil
			m.status = "saved " + msg.path
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	return m, cmd
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	step := m.state.Step()

	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Back) {
		if step == wizard.StepSport {
			return m, tea.Quit
		}
		m.dispatch(wizard.Back{})
		return m, nil
	}
	if key.Matches(msg, m.keys.Up) {
		m.move(-1)
		return m, nil
	}
	if key.Matches(msg, m.keys.Down) {
		m.move(1)
		return m, nil
	}

	switch step {
	case wizard.StepSport:
		return m.sportKey(msg)
	case wizard.StepClub:
		return m.clubKey(msg)
	case wizard.StepTeam:
		return m.teamKey(msg)
	case wizard.StepGames:
		return m.gamesKey(msg)
	default:
		return m.previewKey(msg)
	}
}

func (m model) sportKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Choose):
		all := sports.All()
		if m.cursor < len(all) {
			m.dispatch(wizard.SportChosen{Sport: all[m.cursor]})
		}
	}
	return m, nil
}

func (m model) clubKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Choose) {
		visible := m.state.VisibleClubs()
		if m.cursor < len(visible) {
			m.dispatch(wizard.ClubChosen{Club: visible[m.cursor]})
		}
		return m, nil
	}
	before := m.filter.Value()
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	if after := m.filter.Value(); after != before {
		m.dispatch(wizard.ClubFilterChanged{Query: after})
		m.cursor = 0
	}
	return m, cmd
}

func (m model) teamKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Choose):
		if m.cursor < len(m.state.Teams) {
			m.dispatch(wizard.TeamChosen{Team: m.state.Teams[m.cursor]})
		}
	}
	return m, nil
}

func (m model) gamesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	games := m.state.Listing.Games
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Toggle):
		if m.cursor < len(games) {
			m.dispatch(wizard.GameToggled{GameID: games[m.cursor].ID})
		}
	case key.Matches(msg, m.keys.Past):
		m.dispatch(wizard.IncludePastToggled{})
	case key.Matches(msg, m.keys.Confirm):
		m.dispatch(wizard.GamesConfirmed{})
	}
	return m, nil
}

func (m model) previewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Theme):
		m.dispatch(wizard.PreviewOptionsChanged{Theme: nextTheme(m.state.Theme), Kind: m.state.Kind})
	case key.Matches(msg, m.keys.Kind):
		m.dispatch(wizard.PreviewOptionsChanged{Theme: m.state.Theme, Kind: otherKind(m.state.Kind)})
	case key.Matches(msg, m.keys.Save):
		req, ok := m.state.PreviewRequest()
		if !ok || m.state.Preview == nil || m.state.Rendering {
			return m, nil
		}
		return m, savePreview(m.outDir, req, *m.state.Preview)
	}
	return m, nil
}

// dispatch hands ev to the runner and picks up the reduced model right away. The
// subscription still delivers it; apply is idempotent.
func (m *model) dispatch(ev wizard.Event) {
	logging.Debug(m.logger, "wizard event",
		slog.String(logging.FieldStep, string(m.state.Step())),
		slog.String("event", eventName(ev)),
	)
	m.runner.Dispatch(ev)
	m.apply(m.runner.Model())
}

func (m *model) apply(next wizard.Model) {
	if next.Generation < m.state.Generation {
		return
	}
	m.state = next
	if step := next.Step(); step != m.lastStep {
		m.lastStep = step
		m.cursor = 0
		m.status = ""
		m.err = nil
		if step == wizard.StepClub && next.ClubFilter == "" {
			m.filter.Reset()
		}
	}
	if n := m.listLen(); m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
}

func (m *model) move(delta int) {
	n := m.listLen()
	if n == 0 {
		m.cursor = 0
		return
	}
	m.cursor = (m.cursor + delta + n) % n
}

func (m model) listLen() int {
	switch m.state.Step() {
	case wizard.StepSport:
		return len(sports.All())
	case wizard.StepClub:
		return len(m.state.VisibleClubs())
	case wizard.StepTeam:
		return len(m.state.Teams)
	case wizard.StepGames:
		return len(m.state.Listing.Games)
	}
	return 0
}

func nextTheme(current preview.Theme) preview.Theme {
	themes := preview.Themes()
	i := slices.Index(themes, current)
	return themes[(i+1)%len(themes)]
}

func otherKind(current preview.Kind) preview.Kind {
	if current == preview.KindResult {
		return preview.KindPreview
	}
	return preview.KindResult
}

// Run starts the TUI and blocks until the user quits or ctx is canceled.
func Run(ctx context.Context, opts Options) error {
	m := newModel(opts)
	defer m.close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

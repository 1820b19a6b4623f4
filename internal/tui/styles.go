package tui

import "github.com/charmbracelet/lipgloss"

var (
	foreground = lipgloss.Color("#f8f8f2")
	comment    = lipgloss.Color("#6272a4")
	cyan       = lipgloss.Color("#8be9fd")
	green      = lipgloss.Color("#50fa7b")
	orange     = lipgloss.Color("#ffb86c")
	pink       = lipgloss.Color("#ff79c6")
	purple     = lipgloss.Color("#bd93f9")
	red        = lipgloss.Color("#ff5555")
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(purple).
			Bold(true).
			Padding(0, 1)

	crumbStyle = lipgloss.NewStyle().
			Foreground(cyan)

	userStyle = lipgloss.NewStyle().
			Foreground(comment).
			Italic(true)

	inputStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(comment).
			Padding(0, 1)

	itemStyle = lipgloss.NewStyle().
			Foreground(foreground).
			PaddingLeft(2)

	cursorStyle = lipgloss.NewStyle().
			Foreground(pink).
			Bold(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(green)

	dateStyle = lipgloss.NewStyle().
			Foreground(orange).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(comment)

	errorStyle = lipgloss.NewStyle().
			Foreground(red)
)

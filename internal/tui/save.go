package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/preston-bernstein/club-studio/internal/preview"
	"github.com/preston-bernstein/club-studio/internal/wizard"
)

func savePreview(dir string, req preview.Request, art preview.Artifact) tea.Cmd {
	return func() tea.Msg {
		if dir == "" {
			dir = "."
		}
		path := filepath.Join(dir, preview.FileName(req, art))
		if err := os.WriteFile(path, art.Data, 0o644); err != nil {
			return savedMsg{err: fmt.Errorf("save preview: %w", err)}
		}
		return savedMsg{path: path}
	}
}

func eventName(ev wizard.Event) string {
	name := fmt.Sprintf("%T", ev)
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i+1:]
	}
	return name
}

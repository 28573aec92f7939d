package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type mainMenuItem struct {
	label string
	open  func(a *App) screen // nil means quit
}

var mainMenuItems = []mainMenuItem{
	{"Select default boot entry", func(a *App) screen { return newBrowseScreen() }},
	{"View current default", newViewDefaultScreen},
	{"Edit kernel parameters", newKernelParamsScreen},
	{"Change boot timeout", newTimeoutScreen},
	{"Manage configuration backups", newBackupsScreen},
	{"Clean up old kernels", newCleanupScreen},
	{"Boot time history", newBootTimesScreen},
	{"Validate configuration", newValidateScreen},
	{"Quit", nil},
}

type mainMenuScreen struct {
	cursor int
}

func newMainMenuScreen() *mainMenuScreen {
	return &mainMenuScreen{}
}

func (s *mainMenuScreen) title() string { return "Main menu" }

func (s *mainMenuScreen) update(a *App, msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		s.cursor--
		if s.cursor < 0 {
			s.cursor = len(mainMenuItems) - 1
		}
	case "down", "j":
		s.cursor = (s.cursor + 1) % len(mainMenuItems)
	case "enter":
		item := mainMenuItems[s.cursor]
		if item.open == nil {
			return tea.Quit
		}
		a.push(item.open(a))
	case "q":
		return tea.Quit
	}
	return nil
}

func (s *mainMenuScreen) view(a *App) string {
	var b strings.Builder
	b.WriteString("\n")
	for i, item := range mainMenuItems {
		if i == s.cursor {
			b.WriteString(selectedStyle.Render("> " + item.label))
		} else {
			b.WriteString("  " + item.label)
		}
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("↑/↓ move · enter select · q quit"))
	return b.String()
}

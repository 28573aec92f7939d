// Package tui implements the interactive terminal interface: a single
// active screen drawn from a closed set of screen types, with an
// explicit back-stack on the root model so "back" behaves the same way
// everywhere.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/grublist/grublist-cli/internal/logging"
	"github.com/grublist/grublist-cli/pkg/config"
	"github.com/grublist/grublist-cli/pkg/menu"
	"github.com/grublist/grublist-cli/pkg/names"
)

// screen is one state of the navigation machine. Screens mutate the
// App (push, replace, back, status) from inside update; the App owns
// the event loop and the stack.
type screen interface {
	title() string
	update(a *App, msg tea.KeyMsg) tea.Cmd
	view(a *App) string
}

type App struct {
	Settings config.Settings
	Tree     *menu.Entry
	Names    *names.Store

	current screen
	stack   []screen

	width  int
	height int
	status string
}

func NewApp(settings config.Settings, tree *menu.Entry, nameStore *names.Store) *App {
	return &App{
		Settings: settings,
		Tree:     tree,
		Names:    nameStore,
		current:  newMainMenuScreen(),
	}
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		// A status message lives until the next keypress.
		a.status = ""
		return a, a.current.update(a, msg)
	}
	return a, nil
}

func (a *App) View() string {
	header := titleStyle.Render("grublist · " + a.current.title())
	parts := []string{header, a.current.view(a)}
	if a.status != "" {
		parts = append(parts, statusStyle.Render(a.status))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// push makes s the active screen and remembers the previous one.
func (a *App) push(s screen) {
	a.stack = append(a.stack, a.current)
	a.current = s
	logging.Debug("screen pushed", zap.String("screen", s.title()), zap.Int("depth", len(a.stack)))
}

// replace swaps the active screen without touching the stack. Used
// when a screen hands over to a sibling whose back target is the same,
// and when a sub-editor exits by reconstructing its parent from
// persisted state instead of popping a stale copy.
func (a *App) replace(s screen) {
	a.current = s
}

// back pops the stack. An empty stack is not an error: the main menu
// is the safe default destination.
func (a *App) back() {
	if n := len(a.stack); n > 0 {
		a.current = a.stack[n-1]
		a.stack = a.stack[:n-1]
		return
	}
	a.current = newMainMenuScreen()
}

func (a *App) setStatus(s string) {
	a.status = s
}

// displayName resolves an entry's name through the custom-name
// overlay.
func (a *App) displayName(p menu.Path, e *menu.Entry) string {
	if name, ok := a.Names.Get(p); ok {
		return name
	}
	return e.Name
}

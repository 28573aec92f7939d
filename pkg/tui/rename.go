package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/grublist/grublist-cli/pkg/menu"
)

// renameScreen edits the custom display name of one entry. The
// underlying tree is never touched; the override lives in the name
// overlay file keyed by the serialized path. Clearing the name removes
// the override.
type renameScreen struct {
	path  menu.Path
	input textinput.Model
}

func newRenameScreen(p menu.Path, current string) *renameScreen {
	ti := textinput.New()
	ti.Placeholder = "display name (empty removes the override)"
	ti.SetValue(current)
	ti.CursorEnd()
	ti.Focus()
	return &renameScreen{path: p.Clone(), input: ti}
}

func (s *renameScreen) title() string { return "Rename entry" }

func (s *renameScreen) update(a *App, msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		a.back()
		return nil

	case "enter":
		a.Names.Set(s.path, s.input.Value())
		if err := a.Names.Save(); err != nil {
			a.setStatus("could not save custom names: " + err.Error())
		} else if s.input.Value() == "" {
			a.setStatus("custom name removed")
		} else {
			a.setStatus(fmt.Sprintf("renamed to %q", s.input.Value()))
		}
		a.back()
		return nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

func (s *renameScreen) view(a *App) string {
	return fmt.Sprintf("Custom name for entry %s:\n\n%s\n%s",
		dimStyle.Render(s.path.String()),
		s.input.View(),
		helpStyle.Render("enter save · esc cancel"))
}

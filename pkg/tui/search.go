package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/grublist/grublist-cli/pkg/menu"
	"github.com/grublist/grublist-cli/pkg/search"
)

// searchScreen is the incremental search overlay pushed from the
// browser. Every keystroke recomputes the match set; enter jumps the
// parent browser to the selected match, esc just closes. Either way
// the query and matches are handed back so n/N keep working.
type searchScreen struct {
	parent  *browseScreen
	input   textinput.Model
	matches []menu.Path
	cursor  int
}

func newSearchScreen(a *App, parent *browseScreen) *searchScreen {
	ti := textinput.New()
	ti.Placeholder = "entry name"
	ti.Prompt = "/ "
	ti.Focus()

	s := &searchScreen{parent: parent, input: ti}
	if parent.lastQuery != "" {
		s.input.SetValue(parent.lastQuery)
		s.input.CursorEnd()
		s.matches = search.Matches(a.Tree, parent.lastQuery)
	}
	return s
}

func (s *searchScreen) title() string { return "Search" }

func (s *searchScreen) close(a *App) {
	s.parent.lastQuery = s.input.Value()
	s.parent.lastMatches = s.matches
	a.back()
}

func (s *searchScreen) update(a *App, msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		s.close(a)
		return nil

	case "enter":
		if s.cursor < len(s.matches) {
			s.parent.jumpTo(s.matches[s.cursor])
		}
		s.close(a)
		return nil

	case "up":
		if s.cursor > 0 {
			s.cursor--
		}
		return nil

	case "down":
		if s.cursor < len(s.matches)-1 {
			s.cursor++
		}
		return nil
	}

	before := s.input.Value()
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	if s.input.Value() != before {
		s.matches = search.Matches(a.Tree, s.input.Value())
		s.cursor = 0
	}
	return cmd
}

func (s *searchScreen) view(a *App) string {
	var b strings.Builder
	b.WriteString(s.input.View())
	b.WriteString("\n\n")

	if s.input.Value() == "" {
		b.WriteString(dimStyle.Render("  type to search boot entries"))
	} else if len(s.matches) == 0 {
		b.WriteString(dimStyle.Render("  no matches"))
	}
	for i, p := range s.matches {
		e, ok := menu.TryGet(a.Tree, p)
		if !ok {
			continue
		}
		line := fmt.Sprintf("%s  %s", a.displayName(p, e), dimStyle.Render(p.String()))
		if i == s.cursor {
			b.WriteString(selectedStyle.Render("> ") + line)
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("↑/↓ move · enter jump · esc close"))
	return b.String()
}

package tui

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/grublist/grublist-cli/pkg/menu"
	"github.com/grublist/grublist-cli/pkg/search"
)

// browseScreen walks the boot entry tree. prefix addresses the
// submenu whose children are listed; cursor selects among them.
// Selecting a submenu descends; selecting a menu entry asks for
// confirmation before it becomes the default.
type browseScreen struct {
	prefix menu.Path
	cursor int

	// Last search, kept so n/N can cycle matches after the overlay
	// closes.
	lastQuery   string
	lastMatches []menu.Path
}

func newBrowseScreen() *browseScreen {
	return &browseScreen{}
}

func (s *browseScreen) title() string { return "Boot entries" }

func (s *browseScreen) siblings(a *App) []*menu.Entry {
	parent, ok := menu.TryGet(a.Tree, s.prefix)
	if !ok {
		return nil
	}
	return parent.Children
}

func (s *browseScreen) selectedPath() menu.Path {
	return s.prefix.Child(s.cursor)
}

// jumpTo repositions the browser on the entry at p.
func (s *browseScreen) jumpTo(p menu.Path) {
	if len(p) == 0 {
		return
	}
	s.prefix = p.Parent()
	s.cursor = p[len(p)-1]
}

func (s *browseScreen) update(a *App, msg tea.KeyMsg) tea.Cmd {
	sibs := s.siblings(a)

	switch {
	case key.Matches(msg, browseKeys.Up):
		if len(sibs) > 0 {
			s.cursor--
			if s.cursor < 0 {
				s.cursor = len(sibs) - 1
			}
		}

	case key.Matches(msg, browseKeys.Down):
		if len(sibs) > 0 {
			s.cursor = (s.cursor + 1) % len(sibs)
		}

	case key.Matches(msg, browseKeys.Select):
		if s.cursor >= len(sibs) {
			return nil
		}
		sel := sibs[s.cursor]
		switch sel.Kind {
		case menu.KindSubmenu:
			s.prefix = s.prefix.Child(s.cursor)
			s.cursor = 0
		case menu.KindMenuEntry:
			p := s.selectedPath()
			a.push(newConfirmScreen(p, a.displayName(p, sel)))
		}

	case key.Matches(msg, browseKeys.Ascend):
		if len(s.prefix) > 0 {
			// Land on the submenu we came out of.
			s.cursor = s.prefix[len(s.prefix)-1]
			s.prefix = s.prefix.Parent()
		} else {
			a.back()
		}

	case key.Matches(msg, browseKeys.Rename):
		if s.cursor < len(sibs) {
			p := s.selectedPath()
			a.push(newRenameScreen(p, a.displayName(p, sibs[s.cursor])))
		}

	case key.Matches(msg, browseKeys.Search):
		a.push(newSearchScreen(a, s))

	case key.Matches(msg, browseKeys.Next):
		s.cycleMatch(a, search.NextAfter)

	case key.Matches(msg, browseKeys.Prev):
		s.cycleMatch(a, search.PrevBefore)

	case key.Matches(msg, browseKeys.Copy):
		if s.cursor < len(sibs) {
			p := s.selectedPath()
			if err := clipboard.WriteAll(p.String()); err != nil {
				a.setStatus("clipboard unavailable: " + err.Error())
			} else {
				a.setStatus("copied path " + p.String())
			}
		}
	}
	return nil
}

func (s *browseScreen) cycleMatch(a *App, step func([]menu.Path, menu.Path) (menu.Path, bool)) {
	if len(s.lastMatches) == 0 {
		a.setStatus("no search results; press / to search")
		return
	}
	if p, ok := step(s.lastMatches, s.selectedPath()); ok {
		s.jumpTo(p)
		a.setStatus("match for " + s.lastQuery)
	}
}

// breadcrumb renders the submenu chain above the current listing.
func (s *browseScreen) breadcrumb(a *App) string {
	parts := []string{"(top)"}
	for i := range s.prefix {
		p := s.prefix[:i+1]
		if e, ok := menu.TryGet(a.Tree, p); ok {
			parts = append(parts, a.displayName(p.Clone(), e))
		}
	}
	return dimStyle.Render(strings.Join(parts, " > "))
}

func (s *browseScreen) view(a *App) string {
	var b strings.Builder
	b.WriteString(s.breadcrumb(a))
	b.WriteString("\n\n")

	sibs := s.siblings(a)
	if len(sibs) == 0 {
		b.WriteString(dimStyle.Render("  (no entries)"))
		b.WriteString("\n")
	}
	for i, e := range sibs {
		p := s.prefix.Child(i)
		label := a.displayName(p, e)
		if e.Kind == menu.KindSubmenu {
			label = submenuStyle.Render(label + " ▸")
		}
		if i == s.cursor {
			b.WriteString(selectedStyle.Render("> ") + label)
		} else {
			b.WriteString("  " + label)
		}
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(browseKeys.helpLine()))
	return b.String()
}

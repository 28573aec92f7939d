package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/grublist/grublist-cli/pkg/grubcfg"
	"github.com/grublist/grublist-cli/pkg/menu"
)

// viewDefaultScreen shows the persisted GRUB_DEFAULT value, resolved
// against the current tree when possible, and offers a one-key fix for
// the legacy title format.
type viewDefaultScreen struct {
	value    string
	resolved string // display name when the value is a resolvable path
	legacy   bool
}

func newViewDefaultScreen(a *App) screen {
	cfg, err := grubcfg.Load(a.Settings.DefaultsPath)
	if err != nil {
		return newMessageScreen(messageError, err.Error())
	}

	s := &viewDefaultScreen{value: cfg.Default()}
	switch {
	case s.value == "saved":
		// GRUB remembers the last-booted entry; nothing to resolve.
	case grubcfg.IsLegacyDefault(s.value):
		s.legacy = true
	default:
		p := menu.ParsePath(s.value)
		if e, ok := menu.TryGet(a.Tree, p); ok && len(p) > 0 {
			s.resolved = a.displayName(p, e)
		}
	}
	return s
}

func (s *viewDefaultScreen) title() string { return "Current default" }

func (s *viewDefaultScreen) update(a *App, msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "f":
		if !s.legacy {
			return nil
		}
		fixed, ok := grubcfg.FixLegacyDefault(s.value, a.Tree)
		if !ok {
			a.setStatus("no boot entry carries that title; fix GRUB_DEFAULT by hand")
			return nil
		}
		cfg, err := grubcfg.Load(a.Settings.DefaultsPath)
		if err != nil {
			a.setStatus("fix failed: " + err.Error())
			return nil
		}
		cfg.Set(grubcfg.KeyDefault, fixed)
		if err := cfg.Save(); err != nil {
			a.setStatus("fix failed: " + err.Error())
			return nil
		}
		a.setStatus("GRUB_DEFAULT rewritten as " + fixed)
		a.replace(newViewDefaultScreen(a))

	case "c":
		if err := clipboard.WriteAll(s.value); err != nil {
			a.setStatus("clipboard unavailable: " + err.Error())
		} else {
			a.setStatus("copied")
		}

	case "esc", "enter", "q":
		a.back()
	}
	return nil
}

func (s *viewDefaultScreen) view(a *App) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\nGRUB_DEFAULT = %q\n\n", s.value)

	switch {
	case s.value == "saved":
		b.WriteString(dimStyle.Render("GRUB boots whatever was chosen last."))
	case s.legacy:
		b.WriteString(warningStyle.Render("This is the deprecated title format."))
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("Press f to rewrite it as a menu path."))
	case s.resolved != "":
		fmt.Fprintf(&b, "Resolves to: %s", selectedStyle.Render(s.resolved))
	default:
		b.WriteString(warningStyle.Render("Format not recognized against the current menu."))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("f fix legacy · c copy · esc back"))
	return b.String()
}

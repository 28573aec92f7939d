package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/grublist/grublist-cli/pkg/grubcfg"
)

// validateScreen shows the classified result of a configuration dry
// run.
type validateScreen struct {
	result *grubcfg.ValidationResult
	err    error
}

func newValidateScreen(a *App) screen {
	s := &validateScreen{}
	s.result, s.err = grubcfg.Validate()
	return s
}

func (s *validateScreen) title() string { return "Validation" }

func (s *validateScreen) update(a *App, msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "enter", "q":
		a.back()
	}
	return nil
}

func (s *validateScreen) view(a *App) string {
	var b strings.Builder
	b.WriteString("\n")

	switch {
	case s.err != nil:
		b.WriteString(errorStyle.Render("could not run grub-mkconfig: " + s.err.Error()))
		b.WriteString("\n")
	case s.result.Valid:
		b.WriteString(successStyle.Render("configuration looks valid"))
		b.WriteString("\n")
	default:
		b.WriteString(errorStyle.Render("configuration has problems"))
		b.WriteString("\n")
	}

	if s.result != nil {
		for _, e := range s.result.Errors {
			b.WriteString(errorStyle.Render("  " + e))
			b.WriteString("\n")
		}
		for _, w := range s.result.Warnings {
			b.WriteString(warningStyle.Render("  " + w))
			b.WriteString("\n")
		}
	}

	b.WriteString(helpStyle.Render("esc back"))
	return b.String()
}

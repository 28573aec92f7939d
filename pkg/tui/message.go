package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"
)

type messageKind int

const (
	messageInfo messageKind = iota
	messageSuccess
	messageError
)

// messageScreen is a read-only notice. Any key dismisses it.
type messageScreen struct {
	kind messageKind
	text string
}

func newMessageScreen(kind messageKind, text string) *messageScreen {
	return &messageScreen{kind: kind, text: text}
}

func (s *messageScreen) title() string {
	switch s.kind {
	case messageSuccess:
		return "Done"
	case messageError:
		return "Error"
	default:
		return "Notice"
	}
}

func (s *messageScreen) update(a *App, msg tea.KeyMsg) tea.Cmd {
	a.back()
	return nil
}

func (s *messageScreen) view(a *App) string {
	width := a.width - 4
	if width < 20 || width > 76 {
		width = 76
	}
	body := wordwrap.String(s.text, width)
	switch s.kind {
	case messageSuccess:
		body = successStyle.Render(body)
	case messageError:
		body = errorStyle.Render(body)
	}
	return "\n" + body + "\n" + helpStyle.Render("press any key to continue")
}

package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/grublist/grublist-cli/pkg/grubcfg"
)

type timeoutMode int

const (
	timeoutIdle timeoutMode = iota
	timeoutEditValue
	timeoutSelectStyle
)

var timeoutStyles = []string{"menu", "hidden", "countdown"}

// timeoutScreen edits GRUB_TIMEOUT and GRUB_TIMEOUT_STYLE. Edits are
// in-memory until enter persists them.
type timeoutScreen struct {
	timeout string
	style   string

	mode        timeoutMode
	input       textinput.Model
	styleCursor int
}

func newTimeoutScreen(a *App) screen {
	cfg, err := grubcfg.Load(a.Settings.DefaultsPath)
	if err != nil {
		return newMessageScreen(messageError, err.Error())
	}
	return &timeoutScreen{timeout: cfg.Timeout(), style: cfg.TimeoutStyle()}
}

func (s *timeoutScreen) title() string { return "Boot timeout" }

func (s *timeoutScreen) update(a *App, msg tea.KeyMsg) tea.Cmd {
	switch s.mode {
	case timeoutEditValue:
		return s.updateEditValue(msg)
	case timeoutSelectStyle:
		s.updateSelectStyle(msg)
		return nil
	}

	switch msg.String() {
	case "t":
		s.mode = timeoutEditValue
		s.input = textinput.New()
		s.input.Placeholder = "seconds (-1 waits forever, 0 boots immediately)"
		s.input.SetValue(s.timeout)
		s.input.CursorEnd()
		s.input.Focus()

	case "s":
		s.mode = timeoutSelectStyle
		s.styleCursor = 0
		for i, style := range timeoutStyles {
			if style == s.style {
				s.styleCursor = i
			}
		}

	case "enter":
		cfg, err := grubcfg.Load(a.Settings.DefaultsPath)
		if err != nil {
			a.setStatus("save failed: " + err.Error())
			return nil
		}
		cfg.Set(grubcfg.KeyTimeout, s.timeout)
		cfg.Set(grubcfg.KeyTimeoutStyle, s.style)
		if err := cfg.Save(); err != nil {
			a.setStatus("save failed: " + err.Error())
			return nil
		}
		a.setStatus("timeout settings saved")

	case "esc", "q":
		a.back()
	}
	return nil
}

func (s *timeoutScreen) updateEditValue(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		s.mode = timeoutIdle
		return nil
	case "enter":
		// Anything that is not an integer >= -1 is discarded and the
		// prompt re-shown.
		n, err := strconv.Atoi(strings.TrimSpace(s.input.Value()))
		if err != nil || n < -1 {
			s.input.SetValue("")
			return nil
		}
		s.timeout = strconv.Itoa(n)
		s.mode = timeoutIdle
		return nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

func (s *timeoutScreen) updateSelectStyle(msg tea.KeyMsg) {
	switch msg.String() {
	case "esc":
		s.mode = timeoutIdle
	case "up", "k":
		s.styleCursor--
		if s.styleCursor < 0 {
			s.styleCursor = len(timeoutStyles) - 1
		}
	case "down", "j":
		s.styleCursor = (s.styleCursor + 1) % len(timeoutStyles)
	case "enter":
		s.style = timeoutStyles[s.styleCursor]
		s.mode = timeoutIdle
	}
}

func (s *timeoutScreen) view(a *App) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\nGRUB_TIMEOUT       = %s\n", s.timeout)
	fmt.Fprintf(&b, "GRUB_TIMEOUT_STYLE = %s\n", s.style)

	switch s.mode {
	case timeoutEditValue:
		b.WriteString("\ntimeout: " + s.input.View() + "\n")
	case timeoutSelectStyle:
		b.WriteString("\n")
		for i, style := range timeoutStyles {
			if i == s.styleCursor {
				b.WriteString(selectedStyle.Render("> "+style) + "\n")
			} else {
				b.WriteString("  " + style + "\n")
			}
		}
	default:
		b.WriteString(helpStyle.Render("t timeout · s style · enter save · esc back"))
	}
	return b.String()
}

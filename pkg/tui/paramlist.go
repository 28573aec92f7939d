package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/grublist/grublist-cli/pkg/grubcfg"
)

type paramMode int

const (
	paramIdle paramMode = iota
	paramEditValue
	paramAddName
	paramAddValue
	paramDeleteIndex
)

// paramListScreen edits one kernel command line as an ordered list of
// tokens. Sub-modes own the text input; esc exits the sub-mode first
// and only leaves the screen from idle. Leaving persists the list and
// reconstructs the parent screen from the saved file.
type paramListScreen struct {
	key    string
	params []string
	cursor int

	mode        paramMode
	input       textinput.Model
	pendingName string
}

func newParamListScreen(key string, params []string) *paramListScreen {
	return &paramListScreen{key: key, params: params, input: textinput.New()}
}

func (s *paramListScreen) title() string { return "Edit " + s.key }

func (s *paramListScreen) update(a *App, msg tea.KeyMsg) tea.Cmd {
	if s.mode != paramIdle {
		return s.updateSubMode(a, msg)
	}

	switch msg.String() {
	case "up", "k":
		if len(s.params) > 0 {
			s.cursor--
			if s.cursor < 0 {
				s.cursor = len(s.params) - 1
			}
		}

	case "down", "j":
		if len(s.params) > 0 {
			s.cursor = (s.cursor + 1) % len(s.params)
		}

	case "e", "enter":
		if len(s.params) == 0 {
			return nil
		}
		_, value, _ := grubcfg.SplitParam(s.params[s.cursor])
		s.enterSubMode(paramEditValue, value, "value (empty makes it a flag)")

	case "a":
		s.enterSubMode(paramAddName, "", "parameter name")

	case "d":
		if len(s.params) == 0 {
			return nil
		}
		s.enterSubMode(paramDeleteIndex, "", fmt.Sprintf("index to delete (0-%d)", len(s.params)-1))

	case "s":
		if err := s.save(a); err != nil {
			a.setStatus("save failed: " + err.Error())
		} else {
			a.setStatus(s.key + " saved")
		}

	case "esc":
		// Idle back: persist and hand control to a freshly loaded
		// parent so it never shows stale values.
		if err := s.save(a); err != nil {
			a.replace(newMessageScreen(messageError, err.Error()))
			return nil
		}
		a.replace(newKernelParamsScreen(a))

	case "q":
		// Discard edits.
		a.replace(newKernelParamsScreen(a))
	}
	return nil
}

func (s *paramListScreen) enterSubMode(mode paramMode, value, placeholder string) {
	s.mode = mode
	s.input = textinput.New()
	s.input.Placeholder = placeholder
	s.input.SetValue(value)
	s.input.CursorEnd()
	s.input.Focus()
}

func (s *paramListScreen) updateSubMode(a *App, msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		// The sub-mode consumes the back gesture; the screen stays.
		s.mode = paramIdle
		return nil

	case "enter":
		s.commitSubMode(a)
		return nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

func (s *paramListScreen) commitSubMode(a *App) {
	value := strings.TrimSpace(s.input.Value())

	switch s.mode {
	case paramEditValue:
		name, _, _ := grubcfg.SplitParam(s.params[s.cursor])
		s.params[s.cursor] = grubcfg.FormatParam(name, value)
		s.mode = paramIdle

	case paramAddName:
		if value == "" {
			// Nothing typed: re-prompt rather than add an empty token.
			return
		}
		s.pendingName = value
		s.enterSubMode(paramAddValue, "", "value (empty adds a flag)")

	case paramAddValue:
		s.params = append(s.params, grubcfg.FormatParam(s.pendingName, value))
		s.cursor = len(s.params) - 1
		s.mode = paramIdle

	case paramDeleteIndex:
		idx, err := strconv.Atoi(value)
		if err != nil || idx < 0 || idx >= len(s.params) {
			// Invalid input is discarded and the prompt stays up.
			s.input.SetValue("")
			return
		}
		s.params = append(s.params[:idx], s.params[idx+1:]...)
		if s.cursor >= len(s.params) {
			s.cursor = len(s.params) - 1
		}
		if s.cursor < 0 {
			s.cursor = 0
		}
		s.mode = paramIdle
	}
}

func (s *paramListScreen) save(a *App) error {
	cfg, err := grubcfg.Load(a.Settings.DefaultsPath)
	if err != nil {
		return err
	}
	cfg.Set(s.key, grubcfg.JoinParams(s.params))
	return cfg.Save()
}

func (s *paramListScreen) view(a *App) string {
	var b strings.Builder
	b.WriteString("\n")

	if len(s.params) == 0 {
		b.WriteString(dimStyle.Render("  (no parameters)"))
		b.WriteString("\n")
	}
	for i, p := range s.params {
		line := fmt.Sprintf("%2d  %s", i, p)
		if i == s.cursor && s.mode != paramAddName && s.mode != paramAddValue {
			b.WriteString(selectedStyle.Render("> ") + line)
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	switch s.mode {
	case paramEditValue:
		b.WriteString("\nedit value: " + s.input.View() + "\n")
	case paramAddName:
		b.WriteString("\nadd parameter: " + s.input.View() + "\n")
	case paramAddValue:
		b.WriteString(fmt.Sprintf("\nvalue for %s: %s\n", s.pendingName, s.input.View()))
	case paramDeleteIndex:
		b.WriteString("\ndelete index: " + s.input.View() + "\n")
	default:
		b.WriteString(helpStyle.Render("e edit · a add · d delete · s save · esc save+exit · q discard"))
	}
	return b.String()
}

package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/grublist/grublist-cli/pkg/grubcfg"
)

// cmdlineKeys are the kernel command-line variables the editor offers.
var cmdlineKeys = []string{
	grubcfg.KeyCmdlineLinuxDefault,
	grubcfg.KeyCmdlineLinux,
}

// kernelParamsScreen picks which command-line variable to edit. It is
// rebuilt from the persisted configuration every time the list editor
// exits, so the values shown are never stale.
type kernelParamsScreen struct {
	cfg    *grubcfg.Config
	cursor int
}

func newKernelParamsScreen(a *App) screen {
	cfg, err := grubcfg.Load(a.Settings.DefaultsPath)
	if err != nil {
		return newMessageScreen(messageError, err.Error())
	}
	return &kernelParamsScreen{cfg: cfg}
}

func (s *kernelParamsScreen) title() string { return "Kernel parameters" }

func (s *kernelParamsScreen) update(a *App, msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		s.cursor--
		if s.cursor < 0 {
			s.cursor = len(cmdlineKeys) - 1
		}
	case "down", "j":
		s.cursor = (s.cursor + 1) % len(cmdlineKeys)
	case "enter":
		key := cmdlineKeys[s.cursor]
		params := grubcfg.ParseParams(s.cfg.Params[key])
		// Replace, not push: this screen will be reconstructed from
		// the saved file when the editor exits.
		a.replace(newParamListScreen(key, params))
	case "esc", "q":
		a.back()
	}
	return nil
}

func (s *kernelParamsScreen) view(a *App) string {
	var b strings.Builder
	b.WriteString("\n")
	for i, key := range cmdlineKeys {
		value := s.cfg.Params[key]
		if value == "" {
			value = dimStyle.Render("(empty)")
		}
		line := fmt.Sprintf("%s = %s", key, value)
		if i == s.cursor {
			b.WriteString(selectedStyle.Render("> ") + line)
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("↑/↓ move · enter edit · esc back"))
	return b.String()
}

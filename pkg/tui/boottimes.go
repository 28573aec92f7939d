package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/grublist/grublist-cli/pkg/boottime"
)

// bootTimesScreen is a read-only listing of recent boot durations.
type bootTimesScreen struct {
	entries []boottime.Entry
}

func newBootTimesScreen(a *App) screen {
	return &bootTimesScreen{entries: boottime.Collect()}
}

func (s *bootTimesScreen) title() string { return "Boot times" }

func (s *bootTimesScreen) update(a *App, msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "enter", "q":
		a.back()
	}
	return nil
}

func (s *bootTimesScreen) view(a *App) string {
	var b strings.Builder
	b.WriteString("\n")
	if len(s.entries) == 0 {
		b.WriteString(dimStyle.Render("  no boot records (is systemd available?)"))
		b.WriteString("\n")
	}
	for _, e := range s.entries {
		fmt.Fprintf(&b, "  %-19s  %-30s  %s\n",
			e.Timestamp, e.Kernel, boottime.FormatDuration(e.Seconds))
	}
	b.WriteString(helpStyle.Render("esc back"))
	return b.String()
}

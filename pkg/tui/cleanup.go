package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/grublist/grublist-cli/pkg/backup"
	"github.com/grublist/grublist-cli/pkg/kernel"
)

// cleanupScreen lists kernels other than the running one and deletes a
// version's files after confirmation. Deletion is refused outright
// when the running kernel could not be determined.
type cleanupScreen struct {
	current    string
	unused     []kernel.Unused
	cursor     int
	confirming bool
}

func newCleanupScreen(a *App) screen {
	s := &cleanupScreen{}
	if cur, err := kernel.Current(); err == nil {
		s.current = cur
		s.unused = kernel.ScanUnused(a.Settings.BootDir, cur)
	}
	return s
}

func (s *cleanupScreen) title() string { return "Kernel cleanup" }

func (s *cleanupScreen) update(a *App, msg tea.KeyMsg) tea.Cmd {
	if s.confirming {
		switch msg.String() {
		case "y", "Y":
			version := s.unused[s.cursor].Version
			if err := kernel.DeleteFiles(a.Settings.BootDir, version); err != nil {
				a.setStatus(err.Error())
			} else {
				a.setStatus("deleted files for " + version + "; run update-grub to refresh the menu")
			}
			s.confirming = false
			s.unused = kernel.ScanUnused(a.Settings.BootDir, s.current)
			if s.cursor >= len(s.unused) {
				s.cursor = len(s.unused) - 1
			}
			if s.cursor < 0 {
				s.cursor = 0
			}
		case "n", "N", "esc":
			s.confirming = false
		}
		return nil
	}

	switch msg.String() {
	case "up", "k":
		if len(s.unused) > 0 {
			s.cursor--
			if s.cursor < 0 {
				s.cursor = len(s.unused) - 1
			}
		}
	case "down", "j":
		if len(s.unused) > 0 {
			s.cursor = (s.cursor + 1) % len(s.unused)
		}
	case "d":
		if s.current == "" {
			a.setStatus("running kernel unknown; refusing to delete anything")
			return nil
		}
		if len(s.unused) > 0 {
			s.confirming = true
		}
	case "esc", "q":
		a.back()
	}
	return nil
}

func (s *cleanupScreen) view(a *App) string {
	var b strings.Builder
	if s.current == "" {
		b.WriteString("\n" + warningStyle.Render("could not determine the running kernel"))
	} else {
		fmt.Fprintf(&b, "\nrunning kernel: %s\n", selectedStyle.Render(s.current))
	}
	b.WriteString("\n")

	if len(s.unused) == 0 {
		b.WriteString(dimStyle.Render("  no unused kernels"))
		b.WriteString("\n")
	}
	for i, u := range s.unused {
		line := fmt.Sprintf("%-30s  %d files  %s", u.Version, len(u.Files), backup.FormatSize(u.Size))
		if i == s.cursor {
			b.WriteString(selectedStyle.Render("> ") + line)
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	if s.confirming {
		u := s.unused[s.cursor]
		b.WriteString("\n" + warningStyle.Render(fmt.Sprintf(
			"Delete all %d files for %s? (y/n)", len(u.Files), u.Version)))
	} else {
		b.WriteString(helpStyle.Render("d delete version · esc back"))
	}
	return b.String()
}

package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/grublist/grublist-cli/pkg/backup"
)

type backupsConfirm int

const (
	backupsNone backupsConfirm = iota
	backupsRestore
	backupsDelete
)

// backupsScreen lists the defaults-file backups and restores or
// deletes one after a yes/no confirmation sub-mode.
type backupsScreen struct {
	backups []backup.Info
	cursor  int
	confirm backupsConfirm
}

func newBackupsScreen(a *App) screen {
	return &backupsScreen{backups: backup.List(a.Settings.BackupDir)}
}

func (s *backupsScreen) title() string { return "Backups" }

func (s *backupsScreen) refresh(a *App) {
	s.backups = backup.List(a.Settings.BackupDir)
	if s.cursor >= len(s.backups) {
		s.cursor = len(s.backups) - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

func (s *backupsScreen) update(a *App, msg tea.KeyMsg) tea.Cmd {
	if s.confirm != backupsNone {
		switch msg.String() {
		case "y", "Y":
			target := s.backups[s.cursor]
			var err error
			if s.confirm == backupsRestore {
				err = backup.Restore(target.Path, a.Settings.DefaultsPath)
			} else {
				err = backup.Delete(target.Path)
			}
			if err != nil {
				a.setStatus(err.Error())
			} else if s.confirm == backupsRestore {
				a.setStatus("restored " + filepath.Base(target.Path))
			} else {
				a.setStatus("deleted " + filepath.Base(target.Path))
			}
			s.confirm = backupsNone
			s.refresh(a)
		case "n", "N", "esc":
			s.confirm = backupsNone
		}
		return nil
	}

	switch msg.String() {
	case "up", "k":
		if len(s.backups) > 0 {
			s.cursor--
			if s.cursor < 0 {
				s.cursor = len(s.backups) - 1
			}
		}
	case "down", "j":
		if len(s.backups) > 0 {
			s.cursor = (s.cursor + 1) % len(s.backups)
		}
	case "r":
		if len(s.backups) > 0 {
			s.confirm = backupsRestore
		}
	case "d":
		if len(s.backups) > 0 {
			s.confirm = backupsDelete
		}
	case "esc", "q":
		a.back()
	}
	return nil
}

func (s *backupsScreen) view(a *App) string {
	var b strings.Builder
	b.WriteString("\n")

	if len(s.backups) == 0 {
		b.WriteString(dimStyle.Render("  no backups found"))
		b.WriteString("\n")
	}
	for i, bk := range s.backups {
		line := fmt.Sprintf("%-40s  %8s  %s",
			filepath.Base(bk.Path), backup.FormatSize(bk.Size), backup.FormatTime(bk.Modified))
		if i == s.cursor {
			b.WriteString(selectedStyle.Render("> ") + line)
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	switch s.confirm {
	case backupsRestore:
		b.WriteString("\n" + warningStyle.Render("Restore this backup over the live file? (y/n)"))
	case backupsDelete:
		b.WriteString("\n" + warningStyle.Render("Delete this backup? (y/n)"))
	default:
		b.WriteString(helpStyle.Render("r restore · d delete · esc back"))
	}
	return b.String()
}

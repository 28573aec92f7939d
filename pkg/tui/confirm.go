package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/grublist/grublist-cli/internal/logging"
	"github.com/grublist/grublist-cli/pkg/grubcfg"
	"github.com/grublist/grublist-cli/pkg/menu"
)

// confirmScreen asks before a menu entry becomes the persisted default.
type confirmScreen struct {
	path menu.Path
	name string
}

func newConfirmScreen(p menu.Path, name string) *confirmScreen {
	return &confirmScreen{path: p.Clone(), name: name}
}

func (s *confirmScreen) title() string { return "Set default" }

func (s *confirmScreen) update(a *App, msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y", "Y", "enter":
		cfg, err := grubcfg.Load(a.Settings.DefaultsPath)
		if err != nil {
			a.replace(newMessageScreen(messageError, err.Error()))
			return nil
		}
		cfg.SetDefaultPath(s.path)
		if err := cfg.Save(); err != nil {
			a.replace(newMessageScreen(messageError, err.Error()))
			return nil
		}
		logging.Info("default entry set",
			zap.String("path", s.path.String()), zap.String("name", s.name))
		a.replace(newMessageScreen(messageSuccess, fmt.Sprintf(
			"Default boot entry set to %q (%s).\n\nRun update-grub (or grub-mkconfig) to apply.",
			s.name, s.path.String())))

	case "n", "N", "esc":
		a.back()
	}
	return nil
}

func (s *confirmScreen) view(a *App) string {
	return fmt.Sprintf("Set %q as the default boot entry?\n\nGRUB_DEFAULT will become %s\n%s",
		s.name,
		selectedStyle.Render(`"`+s.path.String()+`"`),
		helpStyle.Render("y confirm · n/esc cancel"))
}

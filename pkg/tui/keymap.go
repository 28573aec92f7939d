package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// browseKeyMap drives the boot-entry browser. Bindings double as the
// help line.
type browseKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Ascend key.Binding
	Rename key.Binding
	Search key.Binding
	Next   key.Binding
	Prev   key.Binding
	Copy   key.Binding
}

var browseKeys = browseKeyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Select: key.NewBinding(key.WithKeys("enter", "right", "l"), key.WithHelp("enter", "select")),
	Ascend: key.NewBinding(key.WithKeys("esc", "left", "h", "backspace"), key.WithHelp("esc", "back")),
	Rename: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rename")),
	Search: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Next:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next match")),
	Prev:   key.NewBinding(key.WithKeys("N"), key.WithHelp("N", "prev match")),
	Copy:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy path")),
}

func (k browseKeyMap) helpLine() string {
	bindings := []key.Binding{k.Up, k.Down, k.Select, k.Ascend, k.Rename, k.Search, k.Next, k.Prev, k.Copy}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " · ")
}

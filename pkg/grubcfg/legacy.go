package grubcfg

import (
	"regexp"

	"github.com/grublist/grublist-cli/pkg/menu"
)

var numericPathRe = regexp.MustCompile(`^\d+(>\d+)*$`)

// IsLegacyDefault reports whether a GRUB_DEFAULT value uses the old
// title format ("Ubuntu, with Linux 6.5.0-14-generic") instead of the
// numeric path format GRUB recommends ("1>0"). "saved" and empty
// values are neither.
func IsLegacyDefault(value string) bool {
	if value == "" || value == "saved" {
		return false
	}
	return !numericPathRe.MatchString(value)
}

// FixLegacyDefault resolves an old title-format GRUB_DEFAULT against
// the parsed menu tree and returns the equivalent numeric path string.
// The match is on exact entry title, searched in pre-order so the
// first occurrence wins. Returns false when no entry carries the
// title, in which case the value is left for the user to fix by hand.
func FixLegacyDefault(value string, root *menu.Entry) (string, bool) {
	var found menu.Path
	var walk func(e *menu.Entry, prefix menu.Path) bool
	walk = func(e *menu.Entry, prefix menu.Path) bool {
		for i, child := range e.Children {
			p := prefix.Child(i)
			if child.Kind == menu.KindMenuEntry && child.Name == value {
				found = p
				return true
			}
			if walk(child, p) {
				return true
			}
		}
		return false
	}
	if !walk(root, nil) {
		return "", false
	}
	return found.String(), true
}

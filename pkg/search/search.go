// Package search implements live incremental search over the parsed
// boot menu tree. Results are paths, not node pointers, so they stay
// meaningful for exactly as long as the tree they were produced from.
package search

import (
	"strings"

	"github.com/grublist/grublist-cli/pkg/menu"
)

// Matches collects the paths of every entry whose name contains the
// query, case-insensitively. The empty query yields no matches: it
// means "nothing typed yet", not "everything". Results come back in
// depth-first pre-order (children in index order), which keeps
// next/previous navigation stable across repeated queries. The root is
// never a candidate. A non-matching submenu is still recursed into,
// since its descendants may match.
func Matches(root *menu.Entry, query string) []menu.Path {
	if query == "" {
		return nil
	}
	q := strings.ToLower(query)
	var out []menu.Path
	var walk func(e *menu.Entry, prefix menu.Path)
	walk = func(e *menu.Entry, prefix menu.Path) {
		for i, child := range e.Children {
			p := prefix.Child(i)
			if strings.Contains(strings.ToLower(child.Name), q) {
				out = append(out, p)
			}
			walk(child, p)
		}
	}
	walk(root, nil)
	return out
}

// First returns the first match, if any.
func First(matches []menu.Path) (menu.Path, bool) {
	if len(matches) == 0 {
		return nil, false
	}
	return matches[0], true
}

// Last returns the last match, if any.
func Last(matches []menu.Path) (menu.Path, bool) {
	if len(matches) == 0 {
		return nil, false
	}
	return matches[len(matches)-1], true
}

// NextAfter returns the match following current in match order,
// wrapping to the first past the end. When current is not itself a
// member of the match set, it falls back to the first match.
func NextAfter(matches []menu.Path, current menu.Path) (menu.Path, bool) {
	idx := indexOf(matches, current)
	if idx < 0 {
		return First(matches)
	}
	return matches[(idx+1)%len(matches)], true
}

// PrevBefore returns the match preceding current in match order,
// wrapping to the last before the start. When current is not itself a
// member of the match set, it falls back to the last match.
func PrevBefore(matches []menu.Path, current menu.Path) (menu.Path, bool) {
	idx := indexOf(matches, current)
	if idx < 0 {
		return Last(matches)
	}
	return matches[(idx-1+len(matches))%len(matches)], true
}

func indexOf(matches []menu.Path, p menu.Path) int {
	for i, m := range matches {
		if m.Equal(p) {
			return i
		}
	}
	return -1
}

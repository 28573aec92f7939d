package menu

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
)

// DefaultMenuPath is where grub-mkconfig renders the boot menu.
const DefaultMenuPath = "/boot/grub/grub.cfg"

var (
	declRe       = regexp.MustCompile(`^\s*(menuentry|submenu)\s*'([^']*)'`)
	openBraceRe  = regexp.MustCompile(`\{\s*$`)
	closeBraceRe = regexp.MustCompile(`^\s*\}`)
)

// Parse builds the boot menu tree from rendered grub.cfg text.
//
// The grammar is not formally validated anywhere in GRUB itself, so
// parsing is deliberately lenient: lines that are not entry
// declarations contribute only to brace/level tracking, and unbalanced
// braces degrade to attaching entries at a shallower level instead of
// failing. A declaration line ending in "{" counts for both the entry
// and the opening brace in the same pass.
func Parse(r io.Reader) (*Entry, error) {
	root := New("root", KindRoot)
	level := 0

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()

		if caps := declRe.FindStringSubmatch(line); caps != nil {
			kind := KindMenuEntry
			if caps[1] == "submenu" {
				kind = KindSubmenu
			}
			// The open container at this depth is the most recently
			// declared node: descend by last child, stopping early if
			// a level has no children yet.
			parent := root
			for i := 0; i < level; i++ {
				if len(parent.Children) == 0 {
					break
				}
				parent = parent.Children[len(parent.Children)-1]
			}
			parent.Children = append(parent.Children, New(caps[2], kind))
		}

		if openBraceRe.MatchString(line) {
			level++
		}
		if closeBraceRe.MatchString(line) {
			if level > 0 {
				level--
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan menu definition: %w", err)
	}

	return root, nil
}

// Load parses the boot menu from the given file. A missing or
// unreadable file is an error distinct from an empty menu: callers
// treat it as a startup-terminating condition, never as an empty tree.
func Load(path string) (*Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open boot menu %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f)
}

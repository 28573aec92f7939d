package menu

import (
	"strconv"
	"strings"
)

// Path addresses a node relative to the tree root as an ordered list
// of child indices. A path of length 0 denotes the root. Paths are the
// only long-lived handle to a node: the tree may be re-parsed between
// sessions, so a persisted path must be revalidated with TryGet.
type Path []int

// String serializes the path as ">"-joined decimal indices, the format
// persisted in GRUB_DEFAULT and used as the custom-name overlay key.
// The root path serializes as the empty string.
func (p Path) String() string {
	if len(p) == 0 {
		return ""
	}
	parts := make([]string, len(p))
	for i, idx := range p {
		parts[i] = strconv.Itoa(idx)
	}
	return strings.Join(parts, ">")
}

// ParsePath parses a ">"-joined path string. Malformed or negative
// components are ignored rather than failing the whole string, so a
// value that is not a path at all parses as the root path and the
// caller's TryGet revalidation decides what to do with it.
func ParsePath(s string) Path {
	var p Path
	for _, part := range strings.Split(s, ">") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 {
			continue
		}
		p = append(p, n)
	}
	return p
}

// Equal reports whether two paths address the same position.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy. Screens hand paths to each other
// and must not share backing arrays.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	c := make(Path, len(p))
	copy(c, p)
	return c
}

// Child returns a new path descending into the given child index.
func (p Path) Child(idx int) Path {
	c := make(Path, len(p), len(p)+1)
	copy(c, p)
	return append(c, idx)
}

// Parent returns the path with its last component removed. The parent
// of the root is the root.
func (p Path) Parent() Path {
	if len(p) == 0 {
		return nil
	}
	return p[:len(p)-1].Clone()
}

package menu

// Kind classifies a node in the parsed boot menu tree.
type Kind int

const (
	KindRoot Kind = iota
	KindMenuEntry
	KindSubmenu
)

func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindMenuEntry:
		return "menuentry"
	case KindSubmenu:
		return "submenu"
	default:
		return "unknown"
	}
}

// Entry is a node in the boot menu tree. The root entry always exists
// after a successful parse; children are ordered as they appear in the
// configuration file, and that order is the indexing basis for paths.
type Entry struct {
	Name     string
	Kind     Kind
	Children []*Entry
}

// New creates an entry with no children.
func New(name string, kind Kind) *Entry {
	return &Entry{Name: name, Kind: kind}
}

// Get resolves a path against the tree by exact index traversal. It
// panics on an out-of-range index; callers must only pass paths known
// valid for this tree (freshly produced by the parser or search engine
// in the same session). Use TryGet for anything persisted or external.
func Get(root *Entry, path Path) *Entry {
	e := root
	for _, idx := range path {
		e = e.Children[idx]
	}
	return e
}

// TryGet resolves a path against the tree, returning false instead of
// panicking when any index is out of range. Paths loaded from saved
// state must go through TryGet, since the tree may have been re-parsed
// since the path was produced.
func TryGet(root *Entry, path Path) (*Entry, bool) {
	e := root
	for _, idx := range path {
		if idx < 0 || idx >= len(e.Children) {
			return nil, false
		}
		e = e.Children[idx]
	}
	return e, true
}

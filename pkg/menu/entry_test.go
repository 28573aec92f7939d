package menu

import "testing"

func testTree() *Entry {
	// root -> [Ubuntu, Advanced options -> [Ubuntu with Linux 6.5.0, Recovery]]
	advanced := New("Advanced options", KindSubmenu)
	advanced.Children = []*Entry{
		New("Ubuntu, with Linux 6.5.0", KindMenuEntry),
		New("Ubuntu, with Linux 6.5.0 (recovery mode)", KindMenuEntry),
	}
	root := New("root", KindRoot)
	root.Children = []*Entry{
		New("Ubuntu", KindMenuEntry),
		advanced,
	}
	return root
}

func TestGet(t *testing.T) {
	root := testTree()

	tests := []struct {
		name string
		path Path
		want string
	}{
		{name: "root itself", path: Path{}, want: "root"},
		{name: "first child", path: Path{0}, want: "Ubuntu"},
		{name: "submenu", path: Path{1}, want: "Advanced options"},
		{name: "nested entry", path: Path{1, 0}, want: "Ubuntu, with Linux 6.5.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Get(root, tt.path)
			if got.Name != tt.want {
				t.Errorf("Get(%v).Name = %q, want %q", tt.path, got.Name, tt.want)
			}
		})
	}
}

func TestTryGetNeverPanics(t *testing.T) {
	root := testTree()

	tests := []struct {
		name   string
		path   Path
		wantOK bool
	}{
		{name: "valid nested", path: Path{1, 1}, wantOK: true},
		{name: "index out of range", path: Path{5}, wantOK: false},
		{name: "descend past leaf", path: Path{0, 0}, wantOK: false},
		{name: "deep garbage", path: Path{1, 0, 3, 9}, wantOK: false},
		{name: "negative index", path: Path{-1}, wantOK: false},
		{name: "root", path: Path{}, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ok := TryGet(root, tt.path)
			if ok != tt.wantOK {
				t.Errorf("TryGet(%v) ok = %v, want %v", tt.path, ok, tt.wantOK)
			}
			if ok && e == nil {
				t.Error("TryGet returned ok with nil entry")
			}
		})
	}
}

func TestKindString(t *testing.T) {
	if KindRoot.String() != "root" || KindMenuEntry.String() != "menuentry" || KindSubmenu.String() != "submenu" {
		t.Error("Kind.String() returned unexpected names")
	}
}

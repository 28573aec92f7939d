package backup

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestList(t *testing.T) {
	dir := t.TempDir()

	write := func(name, content string, age time.Duration) {
		t.Helper()
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		mtime := time.Now().Add(-age)
		if err := os.Chtimes(path, mtime, mtime); err != nil {
			t.Fatal(err)
		}
	}

	write("grub", "live config", 0)
	write("grub.bak", "newest backup", time.Hour)
	write("grub.pre-restore-1700000000.bak", "older backup", 48*time.Hour)
	write("unrelated.bak", "not ours", time.Hour)
	write("grub.old", "wrong suffix", time.Hour)

	backups := List(dir)
	if len(backups) != 2 {
		t.Fatalf("List() returned %d backups, want 2: %+v", len(backups), backups)
	}
	if filepath.Base(backups[0].Path) != "grub.bak" {
		t.Errorf("newest backup first: got %s", backups[0].Path)
	}
	if backups[0].Size != int64(len("newest backup")) {
		t.Errorf("Size = %d, want %d", backups[0].Size, len("newest backup"))
	}
}

func TestListMissingDir(t *testing.T) {
	if got := List(filepath.Join(t.TempDir(), "nope")); got != nil {
		t.Errorf("List() of missing dir = %v, want nil", got)
	}
}

func TestRestore(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "grub")
	backupPath := filepath.Join(dir, "grub.bak")

	if err := os.WriteFile(target, []byte("current"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(backupPath, []byte("from backup"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := Restore(backupPath, target); err != nil {
		t.Fatalf("Restore() error = %v", err)
	}

	content, _ := os.ReadFile(target)
	if string(content) != "from backup" {
		t.Errorf("target = %q, want restored content", content)
	}

	// The pre-restore copy of the live file must exist.
	entries, _ := os.ReadDir(dir)
	found := false
	for _, e := range entries {
		if strings.Contains(e.Name(), "pre-restore") {
			found = true
			data, _ := os.ReadFile(filepath.Join(dir, e.Name()))
			if string(data) != "current" {
				t.Errorf("pre-restore backup = %q, want previous live content", data)
			}
		}
	}
	if !found {
		t.Error("no pre-restore backup was written")
	}
}

func TestDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grub.bak")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := Delete(path); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("backup still exists after Delete()")
	}
	if err := Delete(path); err == nil {
		t.Error("deleting a missing backup should fail")
	}
}

func TestFormatters(t *testing.T) {
	if got := FormatSize(0); got == "" {
		t.Error("FormatSize(0) returned empty string")
	}
	ts := time.Date(2026, 8, 25, 10, 30, 0, 0, time.UTC)
	if got := FormatTime(ts); got != "2026-08-25 10:30:00" {
		t.Errorf("FormatTime = %q", got)
	}
}

// Package backup manages the .bak copies of the GRUB defaults file.
package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// DefaultDir is where backups of the defaults file accumulate.
const DefaultDir = "/etc/default"

// Info describes one backup file.
type Info struct {
	Path     string
	Size     int64
	Modified time.Time
}

// List returns the grub*.bak files under dir, newest first.
func List(dir string) []Info {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var backups []Info
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "grub") || !strings.HasSuffix(name, ".bak") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, Info{
			Path:     filepath.Join(dir, name),
			Size:     info.Size(),
			Modified: info.ModTime(),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Modified.After(backups[j].Modified)
	})
	return backups
}

// Restore copies a backup over the live defaults file. The current
// live file is first preserved as a timestamped pre-restore backup so
// a restore is itself reversible.
func Restore(backupPath, target string) error {
	if _, err := os.Stat(target); err == nil {
		preRestore := fmt.Sprintf("%s.pre-restore-%d.bak", target, time.Now().Unix())
		if err := copyFile(target, preRestore); err != nil {
			return fmt.Errorf("failed to preserve current config: %w", err)
		}
	}
	if err := copyFile(backupPath, target); err != nil {
		return fmt.Errorf("failed to restore %s: %w", backupPath, err)
	}
	return nil
}

// Delete removes a backup file.
func Delete(path string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to delete backup %s: %w", path, err)
	}
	return nil
}

func copyFile(src, dst string) error {
	content, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, content, 0644)
}

// FormatSize renders a byte count for display.
func FormatSize(n int64) string {
	return humanize.Bytes(uint64(n))
}

// FormatTime renders a timestamp for display.
func FormatTime(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}

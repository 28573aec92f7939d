package kernel

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Unused groups the files belonging to one kernel version that is not
// currently running.
type Unused struct {
	Version string
	Files   []string
	Size    int64
}

// ScanUnused finds every installed kernel other than current and
// collects all files under bootDir mentioning its version, with their
// total size. Results are sorted oldest version first, which is the
// order they are usually cleaned up in.
func ScanUnused(bootDir, current string) []Unused {
	var unused []Unused
	for _, k := range List(bootDir) {
		if k.Version == current {
			continue
		}
		files, size := filesForVersion(bootDir, k.Version)
		unused = append(unused, Unused{Version: k.Version, Files: files, Size: size})
	}

	sort.Slice(unused, func(i, j int) bool {
		return unused[i].Version < unused[j].Version
	})
	return unused
}

func filesForVersion(bootDir, version string) ([]string, int64) {
	entries, err := os.ReadDir(bootDir)
	if err != nil {
		return nil, 0
	}

	var files []string
	var total int64
	for _, entry := range entries {
		if !strings.Contains(entry.Name(), version) {
			continue
		}
		path := filepath.Join(bootDir, entry.Name())
		files = append(files, path)
		if info, err := entry.Info(); err == nil {
			total += info.Size()
		}
	}
	return files, total
}

// DeleteFiles removes every file and directory under bootDir whose
// name mentions the given kernel version. The caller is responsible
// for confirming the version is not in use.
func DeleteFiles(bootDir, version string) error {
	if version == "" {
		return fmt.Errorf("refusing to delete files for an empty version")
	}
	entries, err := os.ReadDir(bootDir)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", bootDir, err)
	}

	for _, entry := range entries {
		if !strings.Contains(entry.Name(), version) {
			continue
		}
		path := filepath.Join(bootDir, entry.Name())
		if entry.IsDir() {
			err = os.RemoveAll(path)
		} else {
			err = os.Remove(path)
		}
		if err != nil {
			return fmt.Errorf("failed to delete %s: %w", path, err)
		}
	}
	return nil
}

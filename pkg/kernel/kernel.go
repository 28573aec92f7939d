// Package kernel inventories installed kernels under /boot and finds
// the files belonging to versions no longer in use.
package kernel

import (
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// DefaultBootDir is where kernels and their support files live.
const DefaultBootDir = "/boot"

var versionRe = regexp.MustCompile(`(\d+\.\d+\.\d+[-\w.]*)`)

// Info describes one installed kernel image.
type Info struct {
	Version string
	Path    string
}

// List returns the kernels installed under bootDir (vmlinuz-* files,
// ".old" symlinks excluded), newest version string first.
func List(bootDir string) []Info {
	entries, err := os.ReadDir(bootDir)
	if err != nil {
		return nil
	}

	var kernels []Info
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "vmlinuz-") || strings.Contains(name, "old") {
			continue
		}
		kernels = append(kernels, Info{
			Version: strings.TrimPrefix(name, "vmlinuz-"),
			Path:    filepath.Join(bootDir, name),
		})
	}

	sort.Slice(kernels, func(i, j int) bool {
		return kernels[i].Version > kernels[j].Version
	})
	return kernels
}

// runUname is swapped out in tests.
var runUname = func() (string, error) {
	out, err := exec.Command("uname", "-r").Output()
	return string(out), err
}

// Current returns the running kernel's release string.
func Current() (string, error) {
	out, err := runUname()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// VersionFromTitle extracts a kernel version from a boot entry title
// like "Ubuntu, with Linux 6.5.0-14-generic". Returns "" when the
// title carries no version.
func VersionFromTitle(title string) string {
	return versionRe.FindString(title)
}

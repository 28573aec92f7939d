package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ValidateEntryPath validates a serialized menu path argument like
// "1>0". Every ">"-separated component must be a non-negative integer.
// The empty string addresses the menu root and is accepted.
func ValidateEntryPath(path string) error {
	if path == "" {
		return nil
	}
	for _, part := range strings.Split(path, ">") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 {
			return fmt.Errorf("invalid menu path %q: component %q is not a non-negative integer", path, part)
		}
	}
	return nil
}

// ValidateFilePath checks that path names an existing regular file,
// like a backup chosen for restore.
func ValidateFilePath(path string) error {
	if !filepath.IsAbs(path) {
		path, _ = filepath.Abs(path)
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("path does not exist: %s", path)
		}
		return fmt.Errorf("error accessing path: %w", err)
	}

	if info.IsDir() {
		return fmt.Errorf("path is a directory, expected file: %s", path)
	}

	return nil
}

// ValidateOutputFormat checks an -o flag value.
func ValidateOutputFormat(format string) error {
	switch format {
	case FormatText, FormatJSON, FormatYAML:
		return nil
	}
	return fmt.Errorf("invalid output format: %s (must be: text, json, or yaml)", format)
}

// ValidateTimeoutStyle validates a GRUB_TIMEOUT_STYLE value.
func ValidateTimeoutStyle(style string) error {
	switch style {
	case "menu", "hidden", "countdown":
		return nil
	}
	return fmt.Errorf("invalid timeout style: %s (must be: menu, hidden, or countdown)", style)
}

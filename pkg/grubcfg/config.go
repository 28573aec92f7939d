// Package grubcfg reads and line-rewrites the /etc/default/grub
// key-value file and wraps the external tools that act on it.
package grubcfg

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/grublist/grublist-cli/pkg/menu"
)

// DefaultPath is the stock location of the GRUB defaults file.
const DefaultPath = "/etc/default/grub"

// Well-known keys.
const (
	KeyDefault             = "GRUB_DEFAULT"
	KeyTimeout             = "GRUB_TIMEOUT"
	KeyTimeoutStyle        = "GRUB_TIMEOUT_STYLE"
	KeyCmdlineLinux        = "GRUB_CMDLINE_LINUX"
	KeyCmdlineLinuxDefault = "GRUB_CMDLINE_LINUX_DEFAULT"
)

var (
	paramRe    = regexp.MustCompile(`^\s*([A-Z_][A-Z0-9_]*)\s*=\s*(.+)$`)
	paramKeyRe = regexp.MustCompile(`^\s*([A-Z_][A-Z0-9_]*)\s*=`)
)

// Config holds the parsed key-value pairs of a GRUB defaults file.
// Values are stored unquoted; Save reapplies quoting where GRUB
// expects it.
type Config struct {
	Path   string
	Params map[string]string
}

// Load reads and parses the defaults file at path. Comments and blank
// lines are skipped; unparseable lines are ignored. GRUB_TIMEOUT and
// GRUB_TIMEOUT_STYLE get GRUB's own defaults when absent.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

func parse(r io.Reader) (*Config, error) {
	cfg := &Config{Params: make(map[string]string)}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		caps := paramRe.FindStringSubmatch(line)
		if caps == nil {
			continue
		}
		value := strings.TrimSpace(caps[2])
		value = strings.Trim(value, `"`)
		value = strings.Trim(value, `'`)
		cfg.Params[caps[1]] = strings.TrimSpace(value)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if _, ok := cfg.Params[KeyTimeout]; !ok {
		cfg.Params[KeyTimeout] = "5"
	}
	if _, ok := cfg.Params[KeyTimeoutStyle]; !ok {
		cfg.Params[KeyTimeoutStyle] = "menu"
	}
	return cfg, nil
}

// Get returns the unquoted value for key.
func (c *Config) Get(key string) (string, bool) {
	v, ok := c.Params[key]
	return v, ok
}

// Set stores the unquoted value for key.
func (c *Config) Set(key, value string) {
	c.Params[key] = value
}

// Default returns the GRUB_DEFAULT value.
func (c *Config) Default() string {
	return c.Params[KeyDefault]
}

// SetDefaultPath persists a menu path as the default entry, in the
// quoted ">"-joined form GRUB expects for nested entries.
func (c *Config) SetDefaultPath(p menu.Path) {
	c.Params[KeyDefault] = p.String()
}

// Timeout returns GRUB_TIMEOUT ("5" when unset at load time).
func (c *Config) Timeout() string {
	return c.Params[KeyTimeout]
}

// TimeoutStyle returns GRUB_TIMEOUT_STYLE ("menu" when unset).
func (c *Config) TimeoutStyle() string {
	return c.Params[KeyTimeoutStyle]
}

// CmdlineLinux returns GRUB_CMDLINE_LINUX.
func (c *Config) CmdlineLinux() string {
	return c.Params[KeyCmdlineLinux]
}

// CmdlineLinuxDefault returns GRUB_CMDLINE_LINUX_DEFAULT.
func (c *Config) CmdlineLinuxDefault() string {
	return c.Params[KeyCmdlineLinuxDefault]
}

// quotedKeys always get double quotes on save; GRUB sources the file
// as shell, so values with spaces need them.
func needsQuotes(key string) bool {
	switch key {
	case KeyCmdlineLinux, KeyCmdlineLinuxDefault, KeyDefault:
		return true
	default:
		return false
	}
}

func renderLine(key, value string) string {
	if needsQuotes(key) {
		return fmt.Sprintf("%s=%q", key, value)
	}
	return fmt.Sprintf("%s=%s", key, value)
}

// Save rewrites the defaults file in place, preserving comments, blank
// lines and key order, updating the lines for known keys and appending
// any keys the file did not contain. A .bak copy of the previous
// content is written first.
func (c *Config) Save() error {
	content, err := os.ReadFile(c.Path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", c.Path, err)
	}

	lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")
	found := make(map[string]bool)

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		caps := paramKeyRe.FindStringSubmatch(trimmed)
		if caps == nil {
			continue
		}
		key := caps[1]
		if value, ok := c.Params[key]; ok {
			found[key] = true
			lines[i] = renderLine(key, value)
		}
	}

	// Append keys missing from the file, in a stable order.
	for _, key := range sortedKeys(c.Params) {
		if !found[key] {
			lines = append(lines, renderLine(key, c.Params[key]))
		}
	}

	if err := os.WriteFile(c.Path+".bak", content, 0644); err != nil {
		return fmt.Errorf("failed to create backup: %w", err)
	}

	out := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(c.Path, []byte(out), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", c.Path, err)
	}
	return nil
}

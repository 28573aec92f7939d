package grubcfg

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grublist/grublist-cli/pkg/menu"
)

const sampleDefaults = `# If you change this file, run 'update-grub' afterwards.
GRUB_DEFAULT=0
GRUB_TIMEOUT_STYLE=hidden
GRUB_TIMEOUT=10
GRUB_DISTRIBUTOR=` + "`lsb_release -i -s 2> /dev/null || echo Debian`" + `
GRUB_CMDLINE_LINUX_DEFAULT="quiet splash"
GRUB_CMDLINE_LINUX=""

# Uncomment to disable graphical terminal
#GRUB_TERMINAL=console
`

func writeDefaults(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "grub")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeDefaults(t, sampleDefaults))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	tests := []struct {
		key  string
		want string
	}{
		{KeyDefault, "0"},
		{KeyTimeout, "10"},
		{KeyTimeoutStyle, "hidden"},
		{KeyCmdlineLinuxDefault, "quiet splash"},
		{KeyCmdlineLinux, ""},
	}
	for _, tt := range tests {
		if got, _ := cfg.Get(tt.key); got != tt.want {
			t.Errorf("Get(%s) = %q, want %q", tt.key, got, tt.want)
		}
	}

	// Commented-out keys must not be picked up.
	if _, ok := cfg.Get("GRUB_TERMINAL"); ok {
		t.Error("commented key GRUB_TERMINAL was parsed")
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeDefaults(t, "GRUB_DEFAULT=0\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Timeout() != "5" {
		t.Errorf("Timeout() = %q, want fallback 5", cfg.Timeout())
	}
	if cfg.TimeoutStyle() != "menu" {
		t.Errorf("TimeoutStyle() = %q, want fallback menu", cfg.TimeoutStyle())
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("Load() of a missing file must fail")
	}
}

func TestSavePreservesLayout(t *testing.T) {
	path := writeDefaults(t, sampleDefaults)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	cfg.SetDefaultPath(menu.Path{1, 0})
	cfg.Set(KeyTimeout, "3")
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	out, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading saved file: %v", err)
	}
	content := string(out)

	if !strings.Contains(content, `GRUB_DEFAULT="1>0"`) {
		t.Errorf("saved file missing quoted path default:\n%s", content)
	}
	if !strings.Contains(content, "GRUB_TIMEOUT=3") {
		t.Errorf("saved file missing updated timeout:\n%s", content)
	}
	if !strings.Contains(content, "# If you change this file") {
		t.Error("leading comment was not preserved")
	}
	if !strings.Contains(content, "#GRUB_TERMINAL=console") {
		t.Error("commented key was not preserved")
	}

	// Key order of the original file must survive the rewrite.
	defIdx := strings.Index(content, "GRUB_DEFAULT=")
	styleIdx := strings.Index(content, "GRUB_TIMEOUT_STYLE=")
	if defIdx > styleIdx {
		t.Error("key order changed on save")
	}

	// A .bak of the pre-save content must exist.
	bak, err := os.ReadFile(path + ".bak")
	if err != nil {
		t.Fatalf("backup not written: %v", err)
	}
	if !strings.Contains(string(bak), "GRUB_DEFAULT=0") {
		t.Error("backup does not hold the previous content")
	}
}

func TestSaveAppendsMissingKeys(t *testing.T) {
	path := writeDefaults(t, "GRUB_DEFAULT=0\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	cfg.Set("GRUB_DISABLE_OS_PROBER", "false")
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	out, _ := os.ReadFile(path)
	if !strings.Contains(string(out), "GRUB_DISABLE_OS_PROBER=false") {
		t.Errorf("missing appended key:\n%s", out)
	}
}

func TestParamHelpers(t *testing.T) {
	params := ParseParams("quiet splash intel_iommu=on")
	if len(params) != 3 {
		t.Fatalf("ParseParams returned %d tokens, want 3", len(params))
	}
	if len(ParseParams("   ")) != 0 {
		t.Error("blank cmdline should yield no tokens")
	}
	if got := JoinParams(params); got != "quiet splash intel_iommu=on" {
		t.Errorf("JoinParams = %q", got)
	}

	name, value, hasValue := SplitParam("intel_iommu=on")
	if name != "intel_iommu" || value != "on" || !hasValue {
		t.Errorf("SplitParam = %q %q %v", name, value, hasValue)
	}
	name, _, hasValue = SplitParam("quiet")
	if name != "quiet" || hasValue {
		t.Errorf("SplitParam flag = %q %v", name, hasValue)
	}

	if FormatParam("quiet", "") != "quiet" || FormatParam("root", "/dev/sda1") != "root=/dev/sda1" {
		t.Error("FormatParam rendered tokens wrong")
	}
}

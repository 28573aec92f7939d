package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/grublist/grublist-cli/internal/cli"
	"github.com/grublist/grublist-cli/pkg/config"
)

const testMenu = `menuentry 'Ubuntu' {
}
submenu 'Advanced options' {
menuentry 'Ubuntu, with Linux 6.5.0' {
}
}
`

const testDefaults = `GRUB_DEFAULT=0
GRUB_TIMEOUT=5
GRUB_CMDLINE_LINUX_DEFAULT="quiet splash"
`

func setupCommandTest(t *testing.T) {
	t.Helper()
	dir := t.TempDir()

	menuPath := filepath.Join(dir, "grub.cfg")
	if err := os.WriteFile(menuPath, []byte(testMenu), 0644); err != nil {
		t.Fatal(err)
	}
	defaultsPath := filepath.Join(dir, "grub")
	if err := os.WriteFile(defaultsPath, []byte(testDefaults), 0644); err != nil {
		t.Fatal(err)
	}

	Configure(config.Settings{
		MenuPath:     menuPath,
		DefaultsPath: defaultsPath,
		NamesPath:    filepath.Join(dir, "names.json"),
		BootDir:      dir,
		BackupDir:    dir,
	})
	cli.SetGlobalFlags(true, true, true) // quiet, no color, skip confirms
}

func runCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	cmd.Flags().StringP("output", "o", "text", "")
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestSearchCommand(t *testing.T) {
	setupCommandTest(t)

	out, err := runCommand(t, NewSearchCommand(), "linux")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if !strings.Contains(out, "1>0") || !strings.Contains(out, "Ubuntu, with Linux 6.5.0") {
		t.Errorf("search output missing match:\n%s", out)
	}
}

func TestSearchCommandJSON(t *testing.T) {
	setupCommandTest(t)

	out, err := runCommand(t, NewSearchCommand(), "ubuntu", "-o", "json")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if !strings.Contains(out, `"path": "0"`) {
		t.Errorf("json output missing path:\n%s", out)
	}
}

func TestSetDefaultCommand(t *testing.T) {
	setupCommandTest(t)

	if _, err := runCommand(t, NewSetDefaultCommand(), "1>0"); err != nil {
		t.Fatalf("set-default: %v", err)
	}

	content, err := os.ReadFile(settings.DefaultsPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), `GRUB_DEFAULT="1>0"`) {
		t.Errorf("defaults file not updated:\n%s", content)
	}
}

func TestSetDefaultRejectsSubmenu(t *testing.T) {
	setupCommandTest(t)

	if _, err := runCommand(t, NewSetDefaultCommand(), "1"); err == nil {
		t.Error("setting a submenu as default must fail")
	}
}

func TestSetDefaultRejectsUnresolvablePath(t *testing.T) {
	setupCommandTest(t)

	if _, err := runCommand(t, NewSetDefaultCommand(), "5"); err == nil {
		t.Error("an out-of-range path must fail")
	}
	if _, err := runCommand(t, NewSetDefaultCommand(), "not-a-path"); err == nil {
		t.Error("a malformed path must fail")
	}
}

func TestSetTimeoutCommand(t *testing.T) {
	setupCommandTest(t)

	if _, err := runCommand(t, NewSetTimeoutCommand(), "0", "--style", "hidden"); err != nil {
		t.Fatalf("set-timeout: %v", err)
	}

	content, err := os.ReadFile(settings.DefaultsPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), "GRUB_TIMEOUT=0") {
		t.Errorf("timeout not updated:\n%s", content)
	}
	if !strings.Contains(string(content), "GRUB_TIMEOUT_STYLE=hidden") {
		t.Errorf("style not updated:\n%s", content)
	}

	if _, err := runCommand(t, NewSetTimeoutCommand(), "--", "-2"); err == nil {
		t.Error("timeout below -1 must fail")
	}
	if _, err := runCommand(t, NewSetTimeoutCommand(), "5", "--style", "instant"); err == nil {
		t.Error("unknown style must fail")
	}
}

func TestShowDefaultCommand(t *testing.T) {
	setupCommandTest(t)

	out, err := runCommand(t, NewShowDefaultCommand())
	if err != nil {
		t.Fatalf("show-default: %v", err)
	}
	if !strings.Contains(out, `GRUB_DEFAULT = "0"`) || !strings.Contains(out, "Ubuntu") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

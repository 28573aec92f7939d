package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestOutputResultsJSON(t *testing.T) {
	var buf bytes.Buffer
	data := map[string]string{"path": "1>0"}
	if err := OutputResults(&buf, FormatJSON, data); err != nil {
		t.Fatalf("OutputResults: %v", err)
	}
	if !strings.Contains(buf.String(), `"path": "1>0"`) {
		t.Errorf("unexpected json:\n%s", buf.String())
	}
}

func TestOutputResultsYAML(t *testing.T) {
	var buf bytes.Buffer
	data := map[string]string{"kind": "menuentry"}
	if err := OutputResults(&buf, FormatYAML, data); err != nil {
		t.Fatalf("OutputResults: %v", err)
	}
	if !strings.Contains(buf.String(), "kind: menuentry") {
		t.Errorf("unexpected yaml:\n%s", buf.String())
	}
}

func TestOutputResultsRejectsUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := OutputResults(&buf, "xml", nil); err == nil {
		t.Error("unknown format should fail")
	}
}

func TestTableFormatterAlignsColumns(t *testing.T) {
	var buf bytes.Buffer
	table := NewTableFormatter(&buf)
	table.Header("PATH", "NAME")
	table.Row("0", "Ubuntu")
	table.Row("1>0", "Ubuntu, with Linux 6.5.0")
	table.Flush()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header, separator and 2 rows, got:\n%s", buf.String())
	}
	// Both rows start their NAME column at the same offset.
	if strings.Index(lines[2], "Ubuntu") != strings.Index(lines[3], "Ubuntu,") {
		t.Errorf("columns not aligned:\n%s", buf.String())
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"exactly-ten", 11, "exactly-ten"},
		{"a much longer entry name", 10, "a much ..."},
		{"abcdef", 3, "abc"},
	}
	for _, tt := range tests {
		if got := TruncateString(tt.in, tt.maxLen); got != tt.want {
			t.Errorf("TruncateString(%q, %d) = %q, want %q", tt.in, tt.maxLen, got, tt.want)
		}
	}
}

func TestConfirmSkippedWithYesFlag(t *testing.T) {
	SetGlobalFlags(false, false, true)
	defer SetGlobalFlags(false, false, false)

	ok, err := Confirm("overwrite /etc/default/grub?", false)
	if err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if !ok {
		t.Error("--yes must answer confirmation prompts with true")
	}
}

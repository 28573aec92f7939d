package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// Output formats accepted by the -o flag.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// OutputResults encodes data as JSON or YAML for scripting. Text
// rendering is the caller's job; "text" here is only the fallback for
// values without a table layout.
func OutputResults(w io.Writer, format string, data interface{}) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(data)

	case FormatYAML:
		out, err := yaml.Marshal(data)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err

	case FormatText:
		_, err := fmt.Fprintf(w, "%v\n", data)
		return err
	}
	return fmt.Errorf("unsupported output format %q", format)
}

// TableFormatter renders aligned columns for the text output of list
// commands. Rows are buffered; Flush writes them out.
type TableFormatter struct {
	tw *tabwriter.Writer
}

// NewTableFormatter returns a formatter writing to w.
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{tw: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

// Header writes the column names followed by a separator line.
func (t *TableFormatter) Header(columns ...string) {
	fmt.Fprintln(t.tw, strings.Join(columns, "\t"))
	fmt.Fprintln(t.tw, strings.Repeat("-", 80))
}

// Row writes one table row.
func (t *TableFormatter) Row(cells ...string) {
	fmt.Fprintln(t.tw, strings.Join(cells, "\t"))
}

// Flush aligns and writes the buffered table.
func (t *TableFormatter) Flush() {
	t.tw.Flush()
}

// TruncateString caps s at maxLen bytes, marking the cut with an
// ellipsis when there is room for one. Entry names in tables go
// through this so one long title cannot wreck the column alignment.
func TruncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

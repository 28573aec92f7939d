package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	quiet       bool
	noColor     bool
	skipConfirm bool
)

// SetGlobalFlags wires the root command's persistent flags into this
// package. Call it before any prompt or print helper.
func SetGlobalFlags(q, nc, yes bool) {
	quiet = q
	noColor = nc
	skipConfirm = yes
}

// Confirm asks on stdin before a change to the bootloader
// configuration goes through. --yes answers every prompt with true.
func Confirm(prompt string, defaultYes bool) (bool, error) {
	if skipConfirm {
		return true, nil
	}

	suffix := " [y/N] "
	if defaultYes {
		suffix = " [Y/n] "
	}
	fmt.Print(prompt + suffix)

	answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	if answer == "" {
		return defaultYes, nil
	}
	return answer == "y" || answer == "yes", nil
}

// status renders one message line. With --no-color the symbol is
// replaced by a plain-text label so output stays grep-friendly.
func status(w io.Writer, symbol, label, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if noColor {
		fmt.Fprintf(w, "%s: %s\n", label, msg)
		return
	}
	fmt.Fprintf(w, "%s %s\n", symbol, msg)
}

// PrintSuccess reports a completed action. Silenced by --quiet.
func PrintSuccess(format string, args ...interface{}) {
	if quiet {
		return
	}
	status(os.Stdout, "✓", "OK", format, args...)
}

// PrintInfo reports context that is not part of the result proper,
// like "no entries match". Silenced by --quiet.
func PrintInfo(format string, args ...interface{}) {
	if quiet {
		return
	}
	status(os.Stdout, "ℹ", "INFO", format, args...)
}

// PrintWarning writes to stderr and is not silenced by --quiet.
func PrintWarning(format string, args ...interface{}) {
	status(os.Stderr, "⚠", "WARNING", format, args...)
}

// PrintError writes to stderr and is not silenced by --quiet.
func PrintError(format string, args ...interface{}) {
	status(os.Stderr, "✗", "ERROR", format, args...)
}

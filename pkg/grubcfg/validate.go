package grubcfg

import (
	"fmt"
	"os/exec"
	"strings"
)

// ValidationResult is the classified output of a configuration
// dry run.
type ValidationResult struct {
	Valid    bool
	Errors   []string
	Warnings []string
	Output   string
}

// runCommand is swapped out in tests.
var runCommand = func(name string, args ...string) (stdout, stderr string, err error) {
	cmd := exec.Command(name, args...)
	var out, errBuf strings.Builder
	cmd.Stdout = &out
	cmd.Stderr = &errBuf
	err = cmd.Run()
	return out.String(), errBuf.String(), err
}

// Validate runs `grub-mkconfig --dry-run` and classifies its output.
// A non-nil error means the tool could not be run at all; a result
// with Valid=false means it ran and complained.
func Validate() (*ValidationResult, error) {
	stdout, stderr, err := runCommand("grub-mkconfig", "--dry-run")
	if err != nil {
		if _, isExit := err.(*exec.ExitError); !isExit {
			return nil, fmt.Errorf("failed to run grub-mkconfig: %w", err)
		}
	}
	return classify(stdout, stderr, err == nil), nil
}

func classify(stdout, stderr string, success bool) *ValidationResult {
	result := &ValidationResult{Output: stdout}
	for _, line := range append(strings.Split(stdout, "\n"), strings.Split(stderr, "\n")...) {
		lower := strings.ToLower(line)
		switch {
		case strings.Contains(lower, "error"):
			result.Errors = append(result.Errors, line)
		case strings.Contains(lower, "warning"):
			result.Warnings = append(result.Warnings, line)
		}
	}
	result.Valid = success && len(result.Errors) == 0
	return result
}

// Package boottime collects boot duration statistics from systemd.
// Command execution is separated from output parsing so the parsers
// are testable without a running systemd.
package boottime

import (
	"fmt"
	"os/exec"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Entry is one recorded boot.
type Entry struct {
	Kernel    string
	Seconds   float64
	Timestamp string
}

var (
	startupRe  = regexp.MustCompile(`Startup finished in (?:[^=]+= )?(\d+\.?\d*)\s*(s|ms)`)
	bootListRe = regexp.MustCompile(`^\s*(-?\d+)\s+(\S+)\s+\S+\s+(\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2})`)
	kernelRe   = regexp.MustCompile(`Linux version (\S+)`)
)

// runCommand is swapped out in tests.
var runCommand = func(name string, args ...string) (string, error) {
	out, err := exec.Command(name, args...).Output()
	return string(out), err
}

// Collect gathers boot times: the current boot from
// `systemd-analyze time`, previous boots from the journal. Results
// are sorted newest first. Boots whose duration cannot be determined
// are skipped rather than reported as zero.
func Collect() []Entry {
	var entries []Entry

	if out, err := runCommand("systemd-analyze", "time"); err == nil {
		if secs, ok := ParseStartupFinished(out); ok {
			kernel := "unknown"
			if out, err := runCommand("uname", "-r"); err == nil {
				kernel = strings.TrimSpace(out)
			}
			entries = append(entries, Entry{
				Kernel:    kernel,
				Seconds:   secs,
				Timestamp: time.Now().Format("2006-01-02 15:04:05"),
			})
		}
	}

	out, err := runCommand("journalctl", "--list-boots", "--no-pager", "-n", "10")
	if err != nil {
		return entries
	}
	for _, rec := range ParseBootList(out) {
		if rec.Index >= 0 {
			// Index 0 is the current boot, already covered above.
			continue
		}
		secs, ok := bootDuration(rec.Index)
		if !ok {
			continue
		}
		entries = append(entries, Entry{
			Kernel:    bootKernel(rec.Index),
			Seconds:   secs,
			Timestamp: rec.Started,
		})
	}

	// Newest first; the timestamp format sorts lexically.
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Timestamp > entries[j].Timestamp
	})
	return entries
}

// BootRecord is one line of `journalctl --list-boots`.
type BootRecord struct {
	Index   int
	BootID  string
	Started string
}

// ParseBootList parses `journalctl --list-boots` output. The weekday
// is dropped from the first-entry timestamp so all timestamps share
// the lexically sortable "2006-01-02 15:04:05" shape.
func ParseBootList(out string) []BootRecord {
	var records []BootRecord
	for _, line := range strings.Split(out, "\n") {
		caps := bootListRe.FindStringSubmatch(line)
		if caps == nil {
			continue
		}
		idx, err := strconv.Atoi(caps[1])
		if err != nil {
			continue
		}
		records = append(records, BootRecord{Index: idx, BootID: caps[2], Started: caps[3]})
	}
	return records
}

// ParseStartupFinished extracts the total boot duration in seconds
// from a "Startup finished in ..." line.
func ParseStartupFinished(out string) (float64, bool) {
	caps := startupRe.FindStringSubmatch(out)
	if caps == nil {
		return 0, false
	}
	val, err := strconv.ParseFloat(caps[1], 64)
	if err != nil {
		return 0, false
	}
	if caps[2] == "ms" {
		val /= 1000
	}
	return val, true
}

// ParseKernelVersion extracts the kernel release from a journal
// "Linux version ..." line.
func ParseKernelVersion(out string) string {
	caps := kernelRe.FindStringSubmatch(out)
	if caps == nil {
		return ""
	}
	return caps[1]
}

func bootDuration(index int) (float64, bool) {
	out, err := runCommand("journalctl", "-b", strconv.Itoa(index),
		"--no-pager", "--grep", "Startup finished", "-n", "1")
	if err != nil {
		return 0, false
	}
	return ParseStartupFinished(out)
}

func bootKernel(index int) string {
	out, err := runCommand("journalctl", "-b", strconv.Itoa(index),
		"--no-pager", "--grep", "Linux version", "-n", "1")
	if err != nil {
		return "unknown"
	}
	if v := ParseKernelVersion(out); v != "" {
		return v
	}
	return "unknown"
}

// FormatDuration renders a boot duration for display.
func FormatDuration(seconds float64) string {
	if seconds < 60 {
		return fmt.Sprintf("%.2fs", seconds)
	}
	minutes := int(seconds / 60)
	return fmt.Sprintf("%dm %.2fs", minutes, seconds-float64(minutes)*60)
}

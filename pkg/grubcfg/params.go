package grubcfg

import (
	"sort"
	"strings"
)

// ParseParams splits a kernel command line into its tokens.
func ParseParams(cmdline string) []string {
	return strings.Fields(cmdline)
}

// JoinParams joins kernel command-line tokens back into one value.
func JoinParams(params []string) string {
	return strings.Join(params, " ")
}

// SplitParam splits a single token into name and optional value.
// Flag-style tokens ("quiet") have no value.
func SplitParam(param string) (name string, value string, hasValue bool) {
	if pos := strings.Index(param, "="); pos >= 0 {
		return param[:pos], param[pos+1:], true
	}
	return param, "", false
}

// FormatParam renders a name and optional value back into a token.
func FormatParam(name, value string) string {
	if value == "" {
		return name
	}
	return name + "=" + value
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Package commands holds the scriptable cobra subcommands. They share
// the collaborator packages with the TUI and add table/JSON/YAML
// output for use in scripts.
package commands

import "github.com/grublist/grublist-cli/pkg/config"

var settings config.Settings

// Configure hands the loaded settings to the subcommands. Called from
// the root command's PersistentPreRunE.
func Configure(s config.Settings) {
	settings = s
}

// Settings returns the settings loaded for this invocation.
func Settings() config.Settings {
	return settings
}

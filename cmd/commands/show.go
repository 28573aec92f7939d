package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grublist/grublist-cli/internal/cli"
	"github.com/grublist/grublist-cli/pkg/grubcfg"
	"github.com/grublist/grublist-cli/pkg/menu"
	"github.com/grublist/grublist-cli/pkg/names"
)

// defaultInfo is the structured form of the show-default output.
type defaultInfo struct {
	Value    string `json:"value" yaml:"value"`
	Resolved string `json:"resolved,omitempty" yaml:"resolved,omitempty"`
	Legacy   bool   `json:"legacy" yaml:"legacy"`
	Saved    bool   `json:"saved" yaml:"saved"`
}

// NewShowDefaultCommand creates the show-default command
func NewShowDefaultCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show-default",
		Short: "Show the configured default boot entry",
		Long: `Show the GRUB_DEFAULT value and, when it is a menu path, the boot
entry it resolves to in the current menu.

Examples:
  grublist show-default
  grublist show-default -o json`,
		Args: cobra.NoArgs,
		RunE: runShowDefault,
	}
}

func runShowDefault(cmd *cobra.Command, args []string) error {
	outputFormat, _ := cmd.Flags().GetString("output")
	if err := cli.ValidateOutputFormat(outputFormat); err != nil {
		return err
	}

	cfg, err := grubcfg.Load(settings.DefaultsPath)
	if err != nil {
		return err
	}

	info := defaultInfo{Value: cfg.Default()}
	switch {
	case info.Value == "saved":
		info.Saved = true
	case grubcfg.IsLegacyDefault(info.Value):
		info.Legacy = true
	default:
		// Resolution is best effort: an unreadable menu still lets us
		// print the raw value.
		if tree, err := menu.Load(settings.MenuPath); err == nil {
			p := menu.ParsePath(info.Value)
			if e, ok := menu.TryGet(tree, p); ok && len(p) > 0 {
				info.Resolved = e.Name
				if n, ok := names.Load(settings.NamesPath).Get(p); ok {
					info.Resolved = n
				}
			}
		}
	}

	if outputFormat != "text" {
		return cli.OutputResults(cmd.OutOrStdout(), outputFormat, info)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "GRUB_DEFAULT = %q\n", info.Value)
	switch {
	case info.Saved:
		fmt.Fprintln(cmd.OutOrStdout(), "GRUB boots whatever was chosen last.")
	case info.Legacy:
		cli.PrintWarning("deprecated title format; run the TUI's \"View current default\" screen to fix it")
	case info.Resolved != "":
		fmt.Fprintf(cmd.OutOrStdout(), "Resolves to: %s\n", info.Resolved)
	default:
		cli.PrintWarning("value does not resolve against the current menu")
	}
	return nil
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grublist/grublist-cli/internal/cli"
	"github.com/grublist/grublist-cli/pkg/grubcfg"
	"github.com/grublist/grublist-cli/pkg/menu"
)

// NewSetDefaultCommand creates the set-default command
func NewSetDefaultCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-default <path>",
		Short: "Set the default boot entry by menu path",
		Long: `Set GRUB_DEFAULT to a menu path such as "0" or "1>0" (submenu index,
then entry index). The path must resolve to a boot entry in the
current menu.

Examples:
  grublist set-default 0
  grublist set-default "1>0" --yes`,
		Args: cobra.ExactArgs(1),
		RunE: runSetDefault,
	}
}

func runSetDefault(cmd *cobra.Command, args []string) error {
	if err := cli.ValidateEntryPath(args[0]); err != nil {
		return err
	}
	p := menu.ParsePath(args[0])
	if len(p) == 0 {
		return fmt.Errorf("%q does not address a boot entry", args[0])
	}

	tree, err := menu.Load(settings.MenuPath)
	if err != nil {
		return fmt.Errorf("cannot read the boot menu: %w", err)
	}
	entry, ok := menu.TryGet(tree, p)
	if !ok {
		return fmt.Errorf("path %q does not resolve against the current menu", p.String())
	}
	if entry.Kind != menu.KindMenuEntry {
		return fmt.Errorf("%q is a submenu, not a boot entry", entry.Name)
	}

	ok, err = cli.Confirm(fmt.Sprintf("Set %q (%s) as the default boot entry?", entry.Name, p.String()), false)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	cfg, err := grubcfg.Load(settings.DefaultsPath)
	if err != nil {
		return err
	}
	cfg.SetDefaultPath(p)
	if err := cfg.Save(); err != nil {
		return err
	}

	cli.PrintSuccess("GRUB_DEFAULT set to %q; run update-grub to apply", p.String())
	return nil
}

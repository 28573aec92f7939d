package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/grublist/grublist-cli/internal/cli"
	"github.com/grublist/grublist-cli/pkg/grubcfg"
)

var timeoutStyle string

// NewSetTimeoutCommand creates the set-timeout command
func NewSetTimeoutCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-timeout <seconds>",
		Short: "Set the boot menu timeout",
		Long: `Set GRUB_TIMEOUT. Use -1 to wait forever and 0 to boot immediately.
The --style flag also sets GRUB_TIMEOUT_STYLE.

Examples:
  grublist set-timeout 5
  grublist set-timeout 0 --style hidden`,
		Args: cobra.ExactArgs(1),
		RunE: runSetTimeout,
	}
	cmd.Flags().StringVar(&timeoutStyle, "style", "", "timeout style: menu, hidden or countdown")
	return cmd
}

func runSetTimeout(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil || n < -1 {
		return fmt.Errorf("invalid timeout %q: must be an integer >= -1", args[0])
	}
	if timeoutStyle != "" {
		if err := cli.ValidateTimeoutStyle(timeoutStyle); err != nil {
			return err
		}
	}

	cfg, err := grubcfg.Load(settings.DefaultsPath)
	if err != nil {
		return err
	}
	cfg.Set(grubcfg.KeyTimeout, strconv.Itoa(n))
	if timeoutStyle != "" {
		cfg.Set(grubcfg.KeyTimeoutStyle, timeoutStyle)
	}
	if err := cfg.Save(); err != nil {
		return err
	}

	cli.PrintSuccess("GRUB_TIMEOUT set to %d; run update-grub to apply", n)
	return nil
}

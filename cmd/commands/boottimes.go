package commands

import (
	"github.com/spf13/cobra"

	"github.com/grublist/grublist-cli/internal/cli"
	"github.com/grublist/grublist-cli/pkg/boottime"
)

// NewBootTimesCommand creates the boot-times command
func NewBootTimesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "boot-times",
		Short: "List boot durations for recent boots",
		Long: `Collect boot durations from systemd-analyze and the journal and list
them newest first.`,
		Args: cobra.NoArgs,
		RunE: runBootTimes,
	}
}

func runBootTimes(cmd *cobra.Command, args []string) error {
	outputFormat, _ := cmd.Flags().GetString("output")
	if err := cli.ValidateOutputFormat(outputFormat); err != nil {
		return err
	}

	entries := boottime.Collect()

	if outputFormat != "text" {
		return cli.OutputResults(cmd.OutOrStdout(), outputFormat, entries)
	}

	if len(entries) == 0 {
		cli.PrintInfo("no boot records found (is systemd available?)")
		return nil
	}
	table := cli.NewTableFormatter(cmd.OutOrStdout())
	table.Header("BOOTED", "KERNEL", "DURATION")
	for _, e := range entries {
		table.Row(e.Timestamp, e.Kernel, boottime.FormatDuration(e.Seconds))
	}
	table.Flush()
	return nil
}

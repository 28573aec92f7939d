package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grublist/grublist-cli/internal/cli"
	"github.com/grublist/grublist-cli/pkg/grubcfg"
)

// NewValidateCommand creates the validate command
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the GRUB configuration with a dry run",
		Long: `Run grub-mkconfig --dry-run and report errors and warnings. Exits
non-zero when the configuration has problems, so it can gate scripts.`,
		Args: cobra.NoArgs,
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	outputFormat, _ := cmd.Flags().GetString("output")
	if err := cli.ValidateOutputFormat(outputFormat); err != nil {
		return err
	}

	result, err := grubcfg.Validate()
	if err != nil {
		return err
	}

	if outputFormat != "text" {
		if err := cli.OutputResults(cmd.OutOrStdout(), outputFormat, result); err != nil {
			return err
		}
	} else {
		for _, e := range result.Errors {
			cli.PrintError("%s", e)
		}
		for _, w := range result.Warnings {
			cli.PrintWarning("%s", w)
		}
		if result.Valid {
			cli.PrintSuccess("configuration looks valid")
		}
	}

	if !result.Valid {
		return fmt.Errorf("configuration has problems")
	}
	return nil
}

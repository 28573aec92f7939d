package commands

import (
	"github.com/spf13/cobra"

	"github.com/grublist/grublist-cli/internal/cli"
	"github.com/grublist/grublist-cli/pkg/backup"
)

type backupInfo struct {
	Path     string `json:"path" yaml:"path"`
	Size     int64  `json:"size" yaml:"size"`
	Modified string `json:"modified" yaml:"modified"`
}

// NewBackupsCommand creates the backups command
func NewBackupsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backups",
		Short: "List backups of the GRUB defaults file",
		Args:  cobra.NoArgs,
		RunE:  runBackups,
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "restore <file>",
		Short: "Restore a backup over the live defaults file",
		Args:  cobra.ExactArgs(1),
		RunE:  runBackupRestore,
	})
	return cmd
}

func runBackups(cmd *cobra.Command, args []string) error {
	outputFormat, _ := cmd.Flags().GetString("output")
	if err := cli.ValidateOutputFormat(outputFormat); err != nil {
		return err
	}

	var infos []backupInfo
	for _, b := range backup.List(settings.BackupDir) {
		infos = append(infos, backupInfo{
			Path:     b.Path,
			Size:     b.Size,
			Modified: backup.FormatTime(b.Modified),
		})
	}

	if outputFormat != "text" {
		return cli.OutputResults(cmd.OutOrStdout(), outputFormat, infos)
	}

	if len(infos) == 0 {
		cli.PrintInfo("no backups under %s", settings.BackupDir)
		return nil
	}
	table := cli.NewTableFormatter(cmd.OutOrStdout())
	table.Header("FILE", "SIZE", "MODIFIED")
	for _, b := range infos {
		table.Row(b.Path, backup.FormatSize(b.Size), b.Modified)
	}
	table.Flush()
	return nil
}

func runBackupRestore(cmd *cobra.Command, args []string) error {
	if err := cli.ValidateFilePath(args[0]); err != nil {
		return err
	}

	ok, err := cli.Confirm("Restore "+args[0]+" over "+settings.DefaultsPath+"?", false)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if err := backup.Restore(args[0], settings.DefaultsPath); err != nil {
		return err
	}
	cli.PrintSuccess("restored %s", args[0])
	return nil
}

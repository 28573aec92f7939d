package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/grublist/grublist-cli/internal/cli"
	"github.com/grublist/grublist-cli/pkg/backup"
	"github.com/grublist/grublist-cli/pkg/kernel"
)

var kernelsUnused bool

type kernelInfo struct {
	Version string `json:"version" yaml:"version"`
	Path    string `json:"path,omitempty" yaml:"path,omitempty"`
	Running bool   `json:"running" yaml:"running"`
	Files   int    `json:"files,omitempty" yaml:"files,omitempty"`
	Size    int64  `json:"size,omitempty" yaml:"size,omitempty"`
}

// NewKernelsCommand creates the kernels command
func NewKernelsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kernels",
		Short: "List installed kernels",
		Long: `List the kernels installed under the boot directory, marking the one
currently running. With --unused, list only the versions that are not
running, with the files and disk space a cleanup would reclaim.

Examples:
  grublist kernels
  grublist kernels --unused -o json`,
		Args: cobra.NoArgs,
		RunE: runKernels,
	}
	cmd.Flags().BoolVarP(&kernelsUnused, "unused", "u", false, "list only kernels that are not running")
	return cmd
}

func runKernels(cmd *cobra.Command, args []string) error {
	outputFormat, _ := cmd.Flags().GetString("output")
	if err := cli.ValidateOutputFormat(outputFormat); err != nil {
		return err
	}

	current, err := kernel.Current()
	if err != nil {
		cli.PrintWarning("could not determine the running kernel: %v", err)
	}

	var infos []kernelInfo
	if kernelsUnused {
		for _, u := range kernel.ScanUnused(settings.BootDir, current) {
			infos = append(infos, kernelInfo{
				Version: u.Version,
				Files:   len(u.Files),
				Size:    u.Size,
			})
		}
	} else {
		for _, k := range kernel.List(settings.BootDir) {
			infos = append(infos, kernelInfo{
				Version: k.Version,
				Path:    k.Path,
				Running: k.Version == current,
			})
		}
	}

	if outputFormat != "text" {
		return cli.OutputResults(cmd.OutOrStdout(), outputFormat, infos)
	}

	if len(infos) == 0 {
		cli.PrintInfo("no kernels found under %s", settings.BootDir)
		return nil
	}
	table := cli.NewTableFormatter(cmd.OutOrStdout())
	if kernelsUnused {
		table.Header("VERSION", "FILES", "SIZE")
		for _, k := range infos {
			table.Row(k.Version, strconv.Itoa(k.Files), backup.FormatSize(k.Size))
		}
	} else {
		table.Header("VERSION", "RUNNING", "PATH")
		for _, k := range infos {
			mark := ""
			if k.Running {
				mark = "*"
			}
			table.Row(k.Version, mark, k.Path)
		}
	}
	table.Flush()
	return nil
}

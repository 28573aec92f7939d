package commands

import (
	"github.com/spf13/cobra"

	"github.com/grublist/grublist-cli/internal/cli"
	"github.com/grublist/grublist-cli/pkg/menu"
	"github.com/grublist/grublist-cli/pkg/names"
	"github.com/grublist/grublist-cli/pkg/search"
)

type searchResult struct {
	Path string `json:"path" yaml:"path"`
	Name string `json:"name" yaml:"name"`
	Kind string `json:"kind" yaml:"kind"`
}

// NewSearchCommand creates the search command
func NewSearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search boot entries by name",
		Long: `Search the boot menu for entries whose name contains the query
(case-insensitive). Results are listed in menu order with the path
usable with set-default.

Examples:
  grublist search linux
  grublist search recovery -o json`,
		Args: cobra.ExactArgs(1),
		RunE: runSearch,
	}
}

func runSearch(cmd *cobra.Command, args []string) error {
	outputFormat, _ := cmd.Flags().GetString("output")
	if err := cli.ValidateOutputFormat(outputFormat); err != nil {
		return err
	}

	tree, err := menu.Load(settings.MenuPath)
	if err != nil {
		return err
	}
	overlay := names.Load(settings.NamesPath)

	var results []searchResult
	for _, p := range search.Matches(tree, args[0]) {
		e, ok := menu.TryGet(tree, p)
		if !ok {
			continue
		}
		name := e.Name
		if n, ok := overlay.Get(p); ok {
			name = n
		}
		results = append(results, searchResult{Path: p.String(), Name: name, Kind: e.Kind.String()})
	}

	if outputFormat != "text" {
		return cli.OutputResults(cmd.OutOrStdout(), outputFormat, results)
	}

	if len(results) == 0 {
		cli.PrintInfo("no entries match %q", args[0])
		return nil
	}
	table := cli.NewTableFormatter(cmd.OutOrStdout())
	table.Header("PATH", "KIND", "NAME")
	for _, r := range results {
		table.Row(r.Path, r.Kind, cli.TruncateString(r.Name, 60))
	}
	table.Flush()
	return nil
}

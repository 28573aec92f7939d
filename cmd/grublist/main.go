package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/grublist/grublist-cli/cmd/commands"
	"github.com/grublist/grublist-cli/internal/cli"
	"github.com/grublist/grublist-cli/internal/logging"
	"github.com/grublist/grublist-cli/pkg/config"
	"github.com/grublist/grublist-cli/pkg/menu"
	"github.com/grublist/grublist-cli/pkg/names"
	"github.com/grublist/grublist-cli/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var (
	cfgFile string
	quiet   bool
	noColor bool
	yes     bool
)

var rootCmd = &cobra.Command{
	Use:   "grublist",
	Short: "Terminal-based manager for the GRUB boot menu",
	Long: `Grublist is a terminal-based tool for managing a GRUB bootloader
configuration: pick the default boot entry from the parsed menu, edit
kernel parameters and the boot timeout, manage backups of
/etc/default/grub, clean up old kernels and review boot times.

Run without arguments to start the interactive TUI; subcommands expose
the same operations for scripting.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		commands.Configure(settings)
		cli.SetGlobalFlags(quiet, noColor, yes)

		// Silent unless the user opts in: a configured log file turns
		// logging on at the configured level, otherwise the
		// GRUBLIST_LOG_LEVEL environment variable decides.
		if settings.LogFile != "" {
			return logging.Initialize(settings.LogLevel, settings.LogFile)
		}
		return logging.Initialize("", "")
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := commands.Settings()

		// An unreadable boot menu is fatal before the TUI starts.
		tree, err := menu.Load(settings.MenuPath)
		if err != nil {
			return fmt.Errorf("cannot read the boot menu: %w (is GRUB installed, and are you root?)", err)
		}

		app := tui.NewApp(settings, tree, names.Load(settings.NamesPath))
		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("failed to start the terminal user interface: %w", err)
		}
		logging.Sync()
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of grublist",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("grublist version %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: /etc/grublist/grublist.yaml)")
	rootCmd.PersistentFlags().StringP("output", "o", "text", "output format: text, json or yaml")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress informational output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&yes, "yes", "y", false, "assume yes for confirmation prompts")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewShowDefaultCommand())
	rootCmd.AddCommand(commands.NewSetDefaultCommand())
	rootCmd.AddCommand(commands.NewSearchCommand())
	rootCmd.AddCommand(commands.NewSetTimeoutCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewKernelsCommand())
	rootCmd.AddCommand(commands.NewBackupsCommand())
	rootCmd.AddCommand(commands.NewBootTimesCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

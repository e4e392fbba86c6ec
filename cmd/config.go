package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xolan/devjournal/internal/cli/handlers"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display or manage configuration settings",
	Long: `Display the current effective configuration.

Settings are merged from defaults, the config file, the environment
(JOURNAL_FILE, JOURNAL_LOG_LEVEL, also read from a .env file) and the
--file flag, in that order.

Configuration file location:
  ~/.config/devjournal/config.toml          Linux
  ~/Library/Application Support/devjournal  macOS
  %AppData%\devjournal\config.toml          Windows

Run 'journal config init' to create a commented sample file.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ShowConfig(deps)
	},
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a sample configuration file",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.InitConfig(deps)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
}

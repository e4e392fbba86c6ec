package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xolan/devjournal/internal/config"
	"github.com/xolan/devjournal/internal/logging"
	"github.com/xolan/devjournal/internal/service"
)

var (
	fileFlag    string
	verboseFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "journal",
	Short: "A personal developer journal",
	Long: `journal keeps short developer notes (title, content, tags) in a single JSON file.

Usage:
  journal add <title> <content> <tags>     Add an entry (tags are comma-separated)
  journal edit <id> [--content text]       Replace the content of an entry
  journal delete <id>                      Remove an entry
  journal display [--tags t1,t2]           List entries, most recent first
  journal search <query> [--titles-only]   Search titles, content and tags
  journal stats                            Summarize the journal
  journal populate <n>                     Add n generated entries (max 50)
  journal export [--format json]           Export as json, yaml, csv or markdown
  journal validate                         Check the journal file health
  journal restore [n]                      Restore from backup (default: most recent)
  journal browse                           Interactive browser

Every command accepts --file to use another journal file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&fileFlag, "file", "f", "", "journal file to use (overrides config and JOURNAL_FILE)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "log storage activity to stderr")
}

// setup resolves the configuration (defaults < config file < env < flags)
// and wires the services. Injected services are kept unless a flag asks
// for a different journal or log level.
func setup() error {
	if deps.Services != nil && fileFlag == "" && !verboseFlag {
		return nil
	}

	if err := config.LoadEnv(); err != nil {
		return err
	}

	configPath, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to determine config file location: %w", err)
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return err
	}
	cfg = cfg.ApplyEnv()
	if fileFlag != "" {
		cfg.JournalFile = fileFlag
	}
	if verboseFlag {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, deps.Stderr)
	if err != nil {
		return err
	}

	deps.Config = cfg
	deps.Logger = logger
	deps.Services = service.NewServices(configPath, cfg, logger)
	logger.Debug("configuration resolved")
	return nil
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"journal version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	rootCmd.SetOut(deps.Stdout)
	rootCmd.SetErr(deps.Stderr)
	rootCmd.SetIn(deps.Stdin)
	return rootCmd.Execute()
}

// Package cli implements the fastset command line.
package cli

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/fastset/internal/config"
	"github.com/rshade/fastset/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the fastset CLI.
// Without a subcommand it opens the interactive option list, filtered by the
// arguments when there are any.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:     "fastset [filter]",
		Short:   "Browse and change options in a fast-set list",
		Long:    "fastset: a scrollable, filterable list of options with single-key actions",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(cmd); err != nil {
				return err
			}
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, strings.Join(args, " "))
		},
	}

	cmd.PersistentFlags().String("config", "", "configuration file (default $FASTSET_HOME/config.yaml)")
	cmd.PersistentFlags().String("options", "", "YAML option file (default: built-in options)")
	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().Bool("no-keys", false, "do not bind alt+<key> action shortcuts")
	cmd.PersistentFlags().Bool("no-watch", false, "do not reload when the option file changes")
	cmd.AddCommand(newListCmd(), newConfigCmd())

	return cmd
}

const rootCmdExample = `  # Browse every option
  fastset

  # Browse options whose name contains "mouse"
  fastset mouse

  # Browse integer options read from a file
  fastset --options ./options.yaml t:integer

  # Print options changed from their default
  fastset list d:

  # Initialize configuration
  fastset config init`

// annotationDefaultConfig marks commands that run with the default
// configuration instead of loading the configuration file.
const annotationDefaultConfig = "fastset/default-config"

// loadConfig loads the configuration file, applies flag overrides and makes
// the result the global configuration.
func loadConfig(cmd *cobra.Command) error {
	cfg := config.New()
	if cmd.Annotations[annotationDefaultConfig] == "" {
		path, _ := cmd.Flags().GetString("config")
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("options") {
		cfg.Options.File, _ = cmd.Flags().GetString("options")
	}
	if noKeys, _ := cmd.Flags().GetBool("no-keys"); noKeys {
		cfg.Look.UseKeys = false
	}
	if noWatch, _ := cmd.Flags().GetBool("no-watch"); noWatch {
		cfg.Options.Watch = false
	}

	config.SetGlobalConfig(cfg)
	return nil
}

// newConfigCmd creates the config command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management commands",
	}
	cmd.AddCommand(NewConfigInitCmd())
	return cmd
}

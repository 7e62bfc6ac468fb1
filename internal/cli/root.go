// Package cli implements the folio command line.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/folio/internal/config"
	"github.com/opencode-ai/folio/internal/logging"
)

var (
	configFile     string
	logLevel       string
	logFormat      string
	storageBackend string
	jsonOutput     bool
	noColor        bool
	noProgress     bool
	nonInteractive bool

	appConfig    *config.Config
	closeLogging func() error

	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Browse a themed portfolio in the terminal",
	Long: `folio renders a portfolio (experience, skills, education, projects,
certifications and contact details) as a themed terminal UI. It can also
serve the same UI over SSH and export the content as Markdown.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initApp()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if closeLogging != nil {
			return closeLogging()
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (default $XDG_CONFIG_HOME/folio/config.yaml)")
	flags.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.StringVar(&logFormat, "log-format", "", "log format (console, json)")
	flags.StringVar(&storageBackend, "storage", "", "preference storage backend (sqlite, keyring, memory)")
	flags.BoolVar(&jsonOutput, "json", false, "output JSON")
	flags.BoolVar(&noColor, "no-color", false, "disable colored output")
	flags.BoolVar(&noProgress, "no-progress", false, "disable progress output")
	flags.BoolVar(&nonInteractive, "non-interactive", false, "never prompt or start the TUI")
}

// SetVersion records build metadata for `folio version`.
func SetVersion(v, c, d string) {
	version, commit, date = v, c, d
	rootCmd.Version = v
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(os.Stderr, err)
	}
	return err
}

// GetConfig returns the loaded configuration.
func GetConfig() *config.Config {
	return appConfig
}

func initApp() error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}

	if storageBackend != "" {
		cfg.Storage.Backend = storageBackend
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if logFormat != "" {
		cfg.Logging.Format = logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	closer, err := logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		File:   cfg.Logging.File,
	})
	if err != nil {
		return fmt.Errorf("failed to initialise logging: %w", err)
	}

	appConfig = cfg
	closeLogging = closer

	logger := logging.Component("cli")
	logger.Debug().
		Str("config", cfg.Source).
		Str("storage", cfg.Storage.Backend).
		Msg("configuration loaded")
	return nil
}

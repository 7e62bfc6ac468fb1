package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/opencode-ai/folio/internal/config"
	"github.com/opencode-ai/folio/internal/content"
	"github.com/opencode-ai/folio/internal/links"
	"github.com/opencode-ai/folio/internal/logging"
	"github.com/opencode-ai/folio/internal/tui"
)

var uiNoSplash bool

func init() {
	rootCmd.AddCommand(uiCmd)
	uiCmd.Flags().BoolVar(&uiNoSplash, "no-splash", false, "skip the splash screen")
}

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Launch the folio TUI",
	Long:  "Launch the folio terminal user interface (TUI). This is the default command.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd)
	},
}

func runTUI(cmd *cobra.Command) error {
	if IsNonInteractive() {
		return &PreflightError{
			Message:  "TUI requires an interactive terminal",
			Hint:     "Run with a TTY, or use the theme and export subcommands",
			NextStep: "folio --help",
		}
	}

	cfg := GetConfig()
	if err := redirectLogging(cfg); err != nil {
		return err
	}

	portfolio, err := loadPortfolio(cfg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	b, err := openBackend(ctx, cfg)
	if err != nil {
		return err
	}
	defer b.Close()

	// Loaded before the first frame so the stored theme is used right away.
	store := newStore(ctx, cfg, b, lipgloss.HasDarkBackground())

	splashDuration := cfg.Splash.Duration
	if uiNoSplash {
		splashDuration = 0
	}

	return tui.Run(tui.Config{
		Store:          store,
		Portfolio:      portfolio,
		Opener:         links.SystemOpener{},
		SplashDuration: splashDuration,
	})
}

// redirectLogging moves logs to a file while the alt screen is active.
func redirectLogging(cfg *config.Config) error {
	if cfg.Logging.File != "" {
		return nil
	}
	closer, err := logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		File:   filepath.Join(config.DefaultDataDir(), "folio.log"),
	})
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	closeLogging = closer
	return nil
}

func loadPortfolio(cfg *config.Config) (*content.Portfolio, error) {
	cwd, _ := os.Getwd()
	portfolio, err := content.Load(cfg.Content.File, cwd)
	if err != nil {
		return nil, fmt.Errorf("failed to load portfolio: %w", err)
	}
	logger := logging.Component("cli")
	logger.Debug().Str("source", portfolio.Source).Msg("portfolio loaded")
	return portfolio, nil
}

func hasTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/folio/internal/sshserve"
)

var (
	serveHost string
	servePort int
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveHost, "host", "", "listen host (default from ssh.host)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "listen port (default from ssh.port)")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the TUI over SSH",
	Long: `Serve the folio TUI over SSH. Each client gets its own theme preference,
keyed by the fingerprint of its public key.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		sshCfg := cfg.SSH
		if serveHost != "" {
			sshCfg.Host = serveHost
		}
		if servePort != 0 {
			sshCfg.Port = servePort
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

		server, err := sshserve.New(sshserve.Options{
			Address:        sshCfg.Address(),
			HostKeyPath:    sshCfg.HostKeyPath,
			IdleTimeout:    sshCfg.IdleTimeout,
			MaxTimeout:     sshCfg.MaxTimeout,
			RateLimit:      sshCfg.RateLimit,
			RateBurst:      sshCfg.RateBurst,
			Storage:        b.storage,
			Recorder:       b.recorder,
			Portfolio:      portfolio,
			SplashDuration: cfg.Splash.Duration,
			DefaultMode:    cfg.Appearance.Mode,
			DefaultAccent:  cfg.AccentColor(),
		})
		if err != nil {
			return err
		}

		if !IsJSONOutput() {
			fmt.Fprintf(cmd.ErrOrStderr(), "Serving folio on %s (Ctrl+C to stop)\n", colorize("ssh://"+server.Address(), colorCyan))
		}
		return server.Run(ctx)
	},
}

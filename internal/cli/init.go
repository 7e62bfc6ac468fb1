package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/folio/internal/config"
)

var (
	initForce bool

	// configDirFunc is replaced in tests.
	configDirFunc = defaultConfigDir
)

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing config file")
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file and prepare storage",
	Long: `Write a commented config file to the folio config directory and prepare
the configured preference storage.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		results := []initResult{
			createConfigFile(),
			prepareStorage(ctx, GetConfig()),
		}

		if IsJSONOutput() {
			out := make([]map[string]string, 0, len(results))
			for _, r := range results {
				out = append(out, map[string]string{"step": r.name, "status": r.status, "message": r.message})
			}
			return WriteOutput(cmd.OutOrStdout(), out)
		}

		failed := false
		for _, r := range results {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s\n", statusMarker(r.status), r.name, r.message)
			if r.status == "failed" {
				failed = true
			}
		}
		if failed {
			return fmt.Errorf("init did not complete")
		}
		return nil
	},
}

type initResult struct {
	name    string
	status  string // done, skipped, failed
	message string
}

func defaultConfigDir() string {
	return config.DefaultConfigDir()
}

func createConfigFile() initResult {
	result := initResult{name: "Config file"}

	dir := configDirFunc()
	path := filepath.Join(dir, "config.yaml")
	if _, err := os.Stat(path); err == nil && !initForce {
		result.status = "skipped"
		result.message = fmt.Sprintf("%s already exists (use --force to overwrite)", path)
		return result
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		result.status = "failed"
		result.message = fmt.Sprintf("failed to create %s: %v", dir, err)
		return result
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o644); err != nil {
		result.status = "failed"
		result.message = fmt.Sprintf("failed to write %s: %v", path, err)
		return result
	}

	result.status = "done"
	result.message = path
	return result
}

func prepareStorage(ctx context.Context, cfg *config.Config) initResult {
	result := initResult{name: "Storage"}
	if cfg == nil {
		cfg = config.Default()
	}

	if cfg.Storage.Backend != config.BackendSQLite {
		result.status = "skipped"
		result.message = fmt.Sprintf("%s backend needs no preparation", cfg.Storage.Backend)
		return result
	}

	database, err := openDatabase(ctx, cfg.Storage.Path)
	if err != nil {
		result.status = "failed"
		result.message = err.Error()
		return result
	}
	_ = database.Close()

	result.status = "done"
	result.message = cfg.Storage.Path
	return result
}

func statusMarker(status string) string {
	switch status {
	case "done":
		return colorize("✓", colorGreen)
	case "skipped":
		return colorize("-", colorYellow)
	default:
		return colorize("✗", colorRed)
	}
}

const configTemplate = `# folio Configuration File
#
# Every value can be overridden with an environment variable, for example
# FOLIO_STORAGE_BACKEND=memory or FOLIO_APPEARANCE_ACCENT=#3498db.

storage:
  # sqlite, keyring or memory
  backend: sqlite
  # path: ~/.local/share/folio/folio.db
  service: folio

appearance:
  # system follows the terminal background on first run
  mode: system
  accent: "#8e44ad"

splash:
  # 0s skips the splash screen
  duration: 3s

content:
  # Portfolio YAML file. Empty tries ./.folio/portfolio.yaml, then
  # ~/.config/folio/portfolio.yaml, then the built-in profile.
  file: ""

logging:
  level: warn
  format: console
  file: ""

ssh:
  host: 0.0.0.0
  port: 23234
  # host_key_path: ~/.local/share/folio/ssh/folio_ed25519
  idle_timeout: 10m
  max_timeout: 0s
  rate_limit: 30
  rate_burst: 10
`

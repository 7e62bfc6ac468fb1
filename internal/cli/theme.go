package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/opencode-ai/folio/internal/colors"
	"github.com/opencode-ai/folio/internal/config"
	"github.com/opencode-ai/folio/internal/preferences"
	"github.com/opencode-ai/folio/internal/theme"
	"github.com/opencode-ai/folio/internal/tui/styles"
)

var themeHistoryLimit int

func init() {
	rootCmd.AddCommand(themeCmd)
	themeCmd.AddCommand(themeShowCmd)
	themeCmd.AddCommand(themePaletteCmd)
	themeCmd.AddCommand(themeModeCmd)
	themeCmd.AddCommand(themeAccentCmd)
	themeCmd.AddCommand(themeResetCmd)
	themeCmd.AddCommand(themeTokensCmd)
	themeCmd.AddCommand(themeHistoryCmd)

	themeHistoryCmd.Flags().IntVar(&themeHistoryLimit, "limit", 20, "maximum number of changes to show")
}

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Inspect and change the theme preference",
	Long:  "Inspect and change the stored light/dark mode and accent colour.",
}

// ThemeStatus is the payload of `folio theme show --json`.
type ThemeStatus struct {
	Key     string `json:"key"`
	Backend string `json:"backend"`
	State   string `json:"state"`
	Mode    string `json:"mode"`
	Accent  string `json:"accentColor"`
	Swatch  string `json:"swatch,omitempty"`
}

var themeShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored theme preference",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(ctx context.Context, store *preferences.Store, _ *backend) error {
			pref := store.Current()
			status := ThemeStatus{
				Key:     store.Key(),
				Backend: GetConfig().Storage.Backend,
				State:   store.State().String(),
				Mode:    string(pref.Mode),
				Accent:  pref.AccentColor,
				Swatch:  swatchName(pref.AccentColor),
			}
			if IsJSONOutput() {
				return WriteOutput(cmd.OutOrStdout(), status)
			}

			accent := status.Accent
			if status.Swatch != "" {
				accent = fmt.Sprintf("%s (%s)", accent, status.Swatch)
			}
			return writeTable(cmd.OutOrStdout(), nil, [][]string{
				{"Mode:", status.Mode},
				{"Accent:", swatchChip(pref.AccentColor) + accent},
				{"Key:", status.Key},
				{"Storage:", status.Backend},
				{"State:", formatState(store.State() == preferences.StateLoaded)},
			})
		})
	},
}

var themePaletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "List the accent swatches",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(ctx context.Context, store *preferences.Store, _ *backend) error {
			active := store.Current().AccentColor
			swatches := theme.Palette()
			if IsJSONOutput() {
				return WriteOutput(cmd.OutOrStdout(), swatches)
			}

			rows := make([][]string, 0, len(swatches))
			for _, s := range swatches {
				rows = append(rows, []string{
					s.Name,
					swatchChip(s.Color) + s.Color,
					formatYesNo(strings.EqualFold(s.Color, active)),
				})
			}
			return writeTable(cmd.OutOrStdout(), []string{"NAME", "COLOR", "ACTIVE"}, rows)
		})
	},
}

var themeModeCmd = &cobra.Command{
	Use:       "mode <light|dark|toggle>",
	Short:     "Set the light/dark mode",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"light", "dark", "toggle"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(ctx context.Context, store *preferences.Store, _ *backend) error {
			var pref preferences.Preference
			arg := strings.ToLower(strings.TrimSpace(args[0]))
			if arg == "toggle" {
				pref = store.ToggleMode()
			} else {
				mode, ok := theme.ParseMode(arg)
				if !ok {
					return fmt.Errorf("unknown mode %q (want light, dark or toggle)", args[0])
				}
				pref = store.SetMode(mode)
			}
			if err := store.Persist(ctx, pref); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Mode set to %s\n", pref.Mode)
			return nil
		})
	},
}

var themeAccentCmd = &cobra.Command{
	Use:   "accent <hex|swatch>",
	Short: "Set the accent colour",
	Long:  "Set the accent colour to a #RRGGBB value or a swatch name (see `folio theme palette`).",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		color, err := resolveAccent(args[0])
		if err != nil {
			return err
		}
		return withStore(cmd, func(ctx context.Context, store *preferences.Store, _ *backend) error {
			pref, ok := store.SetAccentColor(color)
			if !ok {
				return fmt.Errorf("accent colour must not be empty")
			}
			if err := store.Persist(ctx, pref); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Accent set to %s\n", pref.AccentColor)
			return nil
		})
	},
}

var themeResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default theme",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(ctx context.Context, store *preferences.Store, _ *backend) error {
			if err := store.Reset(ctx); err != nil {
				return err
			}
			pref := store.Current()
			fmt.Fprintf(cmd.OutOrStdout(), "Theme reset to %s with accent %s\n", pref.Mode, pref.AccentColor)
			return nil
		})
	},
}

var themeTokensCmd = &cobra.Command{
	Use:   "tokens",
	Short: "Print the resolved colour tokens of the active theme",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(ctx context.Context, store *preferences.Store, _ *backend) error {
			tokens := styles.Resolve(store.Theme())
			if IsJSONOutput() {
				return WriteOutput(cmd.OutOrStdout(), tokens)
			}
			rows := [][]string{
				{"primary", tokens.Primary},
				{"primaryLight", tokens.PrimaryLight},
				{"primaryDark", tokens.PrimaryDark},
				{"secondary", tokens.Secondary},
				{"background", tokens.Background},
				{"card", tokens.Card},
				{"text", tokens.Text},
				{"textSecondary", tokens.TextSecondary},
				{"border", tokens.Border},
				{"gradient.primary", strings.Join(tokens.PrimaryGradient, " → ")},
			}
			for i := range rows {
				if len(rows[i][1]) == 7 {
					rows[i][1] = swatchChip(rows[i][1]) + rows[i][1]
				}
			}
			return writeTable(cmd.OutOrStdout(), []string{"TOKEN", "VALUE"}, rows)
		})
	},
}

var themeHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent theme changes (sqlite storage only)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(ctx context.Context, store *preferences.Store, b *backend) error {
			if b.history == nil {
				return &PreflightError{
					Message:  "theme history requires the sqlite storage backend",
					Hint:     "Set storage.backend: sqlite in the config file",
					NextStep: "folio theme history --storage sqlite",
				}
			}
			changes, err := b.history.ListByKey(ctx, store.Key(), themeHistoryLimit)
			if err != nil {
				return err
			}
			if IsJSONOutput() {
				return WriteOutput(cmd.OutOrStdout(), changes)
			}
			if len(changes) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No theme changes recorded.")
				return nil
			}
			rows := make([][]string, 0, len(changes))
			for _, c := range changes {
				rows = append(rows, []string{
					c.Timestamp.Local().Format("2006-01-02 15:04:05"),
					c.Mode,
					swatchChip(c.AccentColor) + c.AccentColor,
				})
			}
			return writeTable(cmd.OutOrStdout(), []string{"WHEN", "MODE", "ACCENT"}, rows)
		})
	},
}

// withStore opens the configured backend, loads the preference and runs fn.
func withStore(cmd *cobra.Command, fn func(context.Context, *preferences.Store, *backend) error) error {
	cfg := GetConfig()
	if cfg == nil {
		return errors.New("configuration not loaded")
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

	store := newStore(ctx, cfg, b, systemDark(cfg))
	return fn(ctx, store, b)
}

// systemDark asks the terminal for its background only when the mode
// is left to the system and a terminal is attached.
func systemDark(cfg *config.Config) bool {
	if cfg.Appearance.Mode != config.ModeSystem || !hasTTY() {
		return false
	}
	return lipgloss.HasDarkBackground()
}

func resolveAccent(value string) (string, error) {
	value = strings.TrimSpace(value)
	if s, ok := theme.SwatchByName(value); ok {
		return s.Color, nil
	}
	if hex, ok := colors.Normalize(value); ok {
		return hex, nil
	}
	return "", fmt.Errorf("invalid accent %q: want #RRGGBB or one of %s", value, strings.Join(swatchNames(), ", "))
}

func swatchName(color string) string {
	if idx := theme.SwatchIndex(color); idx >= 0 {
		return theme.Palette()[idx].Name
	}
	return ""
}

func swatchNames() []string {
	palette := theme.Palette()
	names := make([]string, len(palette))
	for i, s := range palette {
		names[i] = s.Name
	}
	return names
}

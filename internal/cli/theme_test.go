package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/folio/internal/config"
	"github.com/opencode-ai/folio/internal/content"
	"github.com/opencode-ai/folio/internal/db"
	"github.com/opencode-ai/folio/internal/preferences"
	"github.com/opencode-ai/folio/internal/theme"
)

// isolate points home, config, data and the working directory at a temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("HOME", dir)
	t.Setenv("NO_COLOR", "1")
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

// runCLI executes the root command with fresh flag state.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	configFile, logLevel, logFormat, storageBackend = "", "", "", ""
	jsonOutput, noColor, noProgress, nonInteractive = false, false, false, false
	themeHistoryLimit = 20
	exportRender, exportWidth, exportStyle, exportOutput = false, 80, "auto", ""
	initForce = false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestThemeChangesPersistAcrossRuns(t *testing.T) {
	isolate(t)

	out, err := runCLI(t, "theme", "mode", "dark")
	require.NoError(t, err)
	require.Contains(t, out, "Mode set to dark")

	out, err = runCLI(t, "theme", "accent", "Blue")
	require.NoError(t, err)
	require.Contains(t, out, "Accent set to #3498db")

	out, err = runCLI(t, "theme", "show", "--json")
	require.NoError(t, err)

	var status ThemeStatus
	require.NoError(t, json.Unmarshal([]byte(out), &status))
	require.Equal(t, "dark", status.Mode)
	require.Equal(t, "#3498db", status.Accent)
	require.Equal(t, "blue", status.Swatch)
	require.Equal(t, "loaded", status.State)
	require.Equal(t, preferences.StorageKey, status.Key)
	require.Equal(t, config.BackendSQLite, status.Backend)
}

func TestThemeShowDefaultsWithoutRecord(t *testing.T) {
	isolate(t)

	out, err := runCLI(t, "theme", "show")
	require.NoError(t, err)
	require.Contains(t, out, "light")
	require.Contains(t, out, "#8e44ad (purple)")
	require.Contains(t, out, "WARN default")
}

func TestThemeModeToggleAndInvalid(t *testing.T) {
	isolate(t)

	out, err := runCLI(t, "theme", "mode", "toggle")
	require.NoError(t, err)
	require.Contains(t, out, "Mode set to dark")

	out, err = runCLI(t, "theme", "mode", "toggle")
	require.NoError(t, err)
	require.Contains(t, out, "Mode set to light")

	_, err = runCLI(t, "theme", "mode", "sepia")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown mode")
}

func TestThemeAccentRejectsInvalidColor(t *testing.T) {
	isolate(t)

	_, err := runCLI(t, "theme", "accent", "#12345")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid accent")
	require.Contains(t, err.Error(), "purple, blue")
}

func TestThemeResetRestoresDefaults(t *testing.T) {
	isolate(t)

	_, err := runCLI(t, "theme", "accent", "#E74C3C")
	require.NoError(t, err)

	out, err := runCLI(t, "theme", "reset")
	require.NoError(t, err)
	require.Contains(t, out, "Theme reset to light with accent #8e44ad")

	out, err = runCLI(t, "theme", "show", "--json")
	require.NoError(t, err)
	var status ThemeStatus
	require.NoError(t, json.Unmarshal([]byte(out), &status))
	require.Equal(t, "#8e44ad", status.Accent)
}

func TestThemePaletteMarksActiveSwatch(t *testing.T) {
	isolate(t)

	_, err := runCLI(t, "theme", "accent", "green")
	require.NoError(t, err)

	out, err := runCLI(t, "theme", "palette")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, len(theme.Palette())+1)
	for _, line := range lines[1:] {
		fields := strings.Fields(line)
		require.Len(t, fields, 3)
		if fields[0] == "green" {
			require.Equal(t, "yes", fields[2])
		} else {
			require.Equal(t, "no", fields[2], line)
		}
	}
}

func TestThemeTokensResolvesAccent(t *testing.T) {
	isolate(t)

	_, err := runCLI(t, "theme", "accent", "orange")
	require.NoError(t, err)

	out, err := runCLI(t, "theme", "tokens")
	require.NoError(t, err)
	require.Contains(t, out, "primary ")
	require.Contains(t, out, "#e67e22")
}

func TestThemeHistoryListsNewestFirst(t *testing.T) {
	isolate(t)

	_, err := runCLI(t, "theme", "mode", "dark")
	require.NoError(t, err)
	_, err = runCLI(t, "theme", "accent", "red")
	require.NoError(t, err)

	out, err := runCLI(t, "theme", "history", "--json")
	require.NoError(t, err)

	var changes []db.PreferenceChange
	require.NoError(t, json.Unmarshal([]byte(out), &changes))
	require.Len(t, changes, 2)
	require.Equal(t, "#e74c3c", changes[0].AccentColor)
	require.Equal(t, "dark", changes[0].Mode)
	require.Equal(t, "#8e44ad", changes[1].AccentColor)

	out, err = runCLI(t, "theme", "history", "--limit", "1")
	require.NoError(t, err)
	require.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 2)
}

func TestThemeHistoryRequiresSQLite(t *testing.T) {
	isolate(t)

	_, err := runCLI(t, "--storage", "memory", "theme", "history")
	var preflight *PreflightError
	require.True(t, errors.As(err, &preflight), "expected PreflightError, got %v", err)
	require.Contains(t, preflight.Message, "sqlite")
}

func TestMemoryBackendDoesNotPersist(t *testing.T) {
	isolate(t)

	_, err := runCLI(t, "--storage", "memory", "theme", "mode", "dark")
	require.NoError(t, err)

	out, err := runCLI(t, "--storage", "memory", "theme", "show", "--json")
	require.NoError(t, err)
	var status ThemeStatus
	require.NoError(t, json.Unmarshal([]byte(out), &status))
	require.Equal(t, "light", status.Mode)
	require.Equal(t, "default", status.State)
}

func TestResolveAccent(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "purple", want: "#8e44ad"},
		{in: " YELLOW ", want: "#f1c40f"},
		{in: "#ABCDEF", want: "#abcdef"},
		{in: "abcdef", want: "#abcdef"},
		{in: "teal", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := resolveAccent(tt.in)
		if tt.wantErr {
			require.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, got)
	}
}

func TestDefaultPreference(t *testing.T) {
	cfg := config.Default()

	cfg.Appearance.Mode = config.ModeSystem
	require.Equal(t, theme.ModeDark, defaultPreference(cfg, true).Mode)
	require.Equal(t, theme.ModeLight, defaultPreference(cfg, false).Mode)

	cfg.Appearance.Mode = "dark"
	require.Equal(t, theme.ModeDark, defaultPreference(cfg, false).Mode)

	cfg.Appearance.Accent = "#27AE60"
	require.Equal(t, "#27ae60", defaultPreference(cfg, false).AccentColor)
}

func TestHistoryRecorderAppends(t *testing.T) {
	ctx := context.Background()
	database, err := db.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	_, err = database.MigrateUp(ctx)
	require.NoError(t, err)

	repo := db.NewHistoryRepository(database)
	recorder := historyRecorder{repo: repo}
	require.NoError(t, recorder.RecordChange(ctx, "APP_THEME", preferences.Preference{Mode: theme.ModeDark, AccentColor: "#3498db"}))

	changes, err := repo.ListByKey(ctx, "APP_THEME", 10)
	require.NoError(t, err)
	require.Len(t, changes, 1)
	require.Equal(t, "dark", changes[0].Mode)
	require.NotEmpty(t, changes[0].ID)
}

func TestExportWritesFile(t *testing.T) {
	dir := isolate(t)
	portfolio, err := content.Builtin()
	require.NoError(t, err)

	path := filepath.Join(dir, "out", "portfolio.md")
	_, err = runCLI(t, "export", "--no-progress", "--output", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), "# "+portfolio.Personal.Name))
}

func TestExportStdoutAndRender(t *testing.T) {
	isolate(t)
	portfolio, err := content.Builtin()
	require.NoError(t, err)

	out, err := runCLI(t, "export")
	require.NoError(t, err)
	require.Contains(t, out, "# "+portfolio.Personal.Name)

	out, err = runCLI(t, "export", "--render", "--style", "notty", "--width", "60")
	require.NoError(t, err)
	require.Contains(t, out, portfolio.Personal.Name)

	_, err = runCLI(t, "export", "--render", "--style", "neon")
	require.Error(t, err)
}

func TestVersionJSON(t *testing.T) {
	isolate(t)
	SetVersion("1.2.3", "abc123", "2026-10-01")
	t.Cleanup(func() { SetVersion("dev", "none", "unknown") })

	out, err := runCLI(t, "version", "--json")
	require.NoError(t, err)

	var info VersionInfo
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	require.Equal(t, "1.2.3", info.Version)
	require.Equal(t, "abc123", info.Commit)
	require.NotEmpty(t, info.GoVersion)
}

func TestUIRequiresTerminal(t *testing.T) {
	isolate(t)

	_, err := runCLI(t, "ui", "--non-interactive")
	var preflight *PreflightError
	require.True(t, errors.As(err, &preflight))
	require.Contains(t, preflight.Message, "interactive terminal")
}

func TestPrintErrorIncludesHint(t *testing.T) {
	var out bytes.Buffer
	printError(&out, &PreflightError{Message: "boom", Hint: "try this", NextStep: "folio init"})
	require.Contains(t, out.String(), "Error: boom")
	require.Contains(t, out.String(), "Hint: try this")
	require.Contains(t, out.String(), "Try:  folio init")

	out.Reset()
	printError(&out, errors.New("plain"))
	require.Equal(t, "Error: plain\n", out.String())
}

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
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

func TestLoadDefaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	require.Empty(t, cfg.Source)
	require.Equal(t, BackendSQLite, cfg.Storage.Backend)
	require.Equal(t, filepath.Join(dir, "data", "folio", "folio.db"), cfg.Storage.Path)
	require.Equal(t, ModeSystem, cfg.Appearance.Mode)
	require.Equal(t, "#8e44ad", cfg.AccentColor())
	require.Equal(t, 3*time.Second, cfg.Splash.Duration)
	require.Equal(t, 23234, cfg.SSH.Port)
	require.Equal(t, 10*time.Minute, cfg.SSH.IdleTimeout)
	require.Equal(t, "0.0.0.0:23234", cfg.SSH.Address())
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "folio.yaml")

	yaml := `storage:
  backend: memory
appearance:
  mode: dark
  accent: green
splash:
  duration: 500ms
ssh:
  port: 2222
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
	t.Setenv("FOLIO_SSH_PORT", "4444")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, path, cfg.Source)
	require.Equal(t, BackendMemory, cfg.Storage.Backend)
	require.Equal(t, "dark", cfg.Appearance.Mode)
	require.Equal(t, "#27ae60", cfg.AccentColor())
	require.Equal(t, 500*time.Millisecond, cfg.Splash.Duration)
	require.Equal(t, 4444, cfg.SSH.Port)
}

func TestLoadDotEnv(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "folio.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: info\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("FOLIO_LOGGING_LEVEL=debug\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("FOLIO_LOGGING_LEVEL") })

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	dir := isolate(t)
	_, err := Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	isolate(t)

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"backend", func(c *Config) { c.Storage.Backend = "redis" }},
		{"sqlite path", func(c *Config) { c.Storage.Path = " " }},
		{"keyring service", func(c *Config) { c.Storage.Backend = BackendKeyring; c.Storage.Service = "" }},
		{"mode", func(c *Config) { c.Appearance.Mode = "sepia" }},
		{"accent", func(c *Config) { c.Appearance.Accent = "magenta" }},
		{"splash", func(c *Config) { c.Splash.Duration = -time.Second }},
		{"port", func(c *Config) { c.SSH.Port = 70000 }},
		{"timeout", func(c *Config) { c.SSH.IdleTimeout = -time.Second }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			require.NoError(t, cfg.Validate())
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrInvalidConfig))
		})
	}
}

func TestDefaultConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	require.Equal(t, "/custom/config/folio", DefaultConfigDir())

	t.Setenv("XDG_CONFIG_HOME", "")
	home, _ := os.UserHomeDir()
	require.Equal(t, filepath.Join(home, ".config", "folio"), DefaultConfigDir())
}

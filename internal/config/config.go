// Package config loads folio settings from defaults, an optional YAML file,
// .env files, and FOLIO_ environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/opencode-ai/folio/internal/colors"
	"github.com/opencode-ai/folio/internal/theme"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "FOLIO"

// Storage backends.
const (
	BackendSQLite  = "sqlite"
	BackendKeyring = "keyring"
	BackendMemory  = "memory"
)

// ModeSystem defers the first-run mode to the terminal background query.
const ModeSystem = "system"

// Config is the resolved configuration.
type Config struct {
	Storage    StorageConfig    `mapstructure:"storage"`
	Appearance AppearanceConfig `mapstructure:"appearance"`
	Splash     SplashConfig     `mapstructure:"splash"`
	Content    ContentConfig    `mapstructure:"content"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	SSH        SSHConfig        `mapstructure:"ssh"`

	// Source is the config file that was read, if any.
	Source string `mapstructure:"-"`
}

// StorageConfig selects where the theme preference is kept.
type StorageConfig struct {
	Backend string `mapstructure:"backend"`
	Path    string `mapstructure:"path"`
	Service string `mapstructure:"service"`
}

// AppearanceConfig seeds the preference on first run.
type AppearanceConfig struct {
	Mode   string `mapstructure:"mode"`
	Accent string `mapstructure:"accent"`
}

// SplashConfig controls the startup screen.
type SplashConfig struct {
	Duration time.Duration `mapstructure:"duration"`
}

// ContentConfig points at an optional portfolio file.
type ContentConfig struct {
	File string `mapstructure:"file"`
}

// LoggingConfig mirrors logging.Config.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

// SSHConfig configures `folio serve`.
type SSHConfig struct {
	Host        string        `mapstructure:"host"`
	Port        int           `mapstructure:"port"`
	HostKeyPath string        `mapstructure:"host_key_path"`
	IdleTimeout time.Duration `mapstructure:"idle_timeout"`
	MaxTimeout  time.Duration `mapstructure:"max_timeout"`
	// RateLimit is new sessions per minute per remote IP.
	RateLimit int `mapstructure:"rate_limit"`
	RateBurst int `mapstructure:"rate_burst"`
}

// Address returns host:port for the SSH listener.
func (c SSHConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DefaultConfigDir returns $XDG_CONFIG_HOME/folio or ~/.config/folio.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "folio")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".folio")
	}
	return filepath.Join(home, ".config", "folio")
}

// DefaultDataDir returns $XDG_DATA_HOME/folio or ~/.local/share/folio.
func DefaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "folio")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".folio")
	}
	return filepath.Join(home, ".local", "share", "folio")
}

// DefaultConfigPath is the config file looked up when none is given.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.yaml")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("storage.backend", BackendSQLite)
	v.SetDefault("storage.path", filepath.Join(DefaultDataDir(), "folio.db"))
	v.SetDefault("storage.service", "folio")

	v.SetDefault("appearance.mode", ModeSystem)
	v.SetDefault("appearance.accent", theme.DefaultAccent)

	v.SetDefault("splash.duration", 3*time.Second)

	v.SetDefault("content.file", "")

	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file", "")

	v.SetDefault("ssh.host", "0.0.0.0")
	v.SetDefault("ssh.port", 23234)
	v.SetDefault("ssh.host_key_path", filepath.Join(DefaultDataDir(), "ssh", "folio_ed25519"))
	v.SetDefault("ssh.idle_timeout", 10*time.Minute)
	v.SetDefault("ssh.max_timeout", time.Duration(0))
	v.SetDefault("ssh.rate_limit", 30)
	v.SetDefault("ssh.rate_burst", 10)
}

// Load resolves configuration. An explicit path must exist; the default
// path is optional. A .env file next to the config file, or in the working
// directory, is loaded into the environment first without overriding
// variables that are already set.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
	}

	if err := loadDotEnv(filepath.Join(filepath.Dir(path), ".env")); err != nil {
		return nil, err
	}
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	source := ""
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		if explicit || !isNotExist(err) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		source = path
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Source = source

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration with no file or environment applied.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	_ = v.Unmarshal(&cfg)
	return &cfg
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendSQLite:
		if strings.TrimSpace(c.Storage.Path) == "" {
			return fmt.Errorf("%w: storage.path is required for sqlite", ErrInvalidConfig)
		}
	case BackendKeyring:
		if strings.TrimSpace(c.Storage.Service) == "" {
			return fmt.Errorf("%w: storage.service is required for keyring", ErrInvalidConfig)
		}
	case BackendMemory:
	default:
		return fmt.Errorf("%w: unsupported storage backend %q", ErrInvalidConfig, c.Storage.Backend)
	}

	if c.Appearance.Mode != ModeSystem {
		if _, ok := theme.ParseMode(c.Appearance.Mode); !ok {
			return fmt.Errorf("%w: appearance.mode must be system, light or dark", ErrInvalidConfig)
		}
	}
	if !colors.IsValidHex(c.Appearance.Accent) {
		if _, ok := theme.SwatchByName(c.Appearance.Accent); !ok {
			return fmt.Errorf("%w: appearance.accent %q is not a hex colour or swatch name", ErrInvalidConfig, c.Appearance.Accent)
		}
	}

	if c.Splash.Duration < 0 {
		return fmt.Errorf("%w: splash.duration must not be negative", ErrInvalidConfig)
	}

	if c.SSH.Port <= 0 || c.SSH.Port > 65535 {
		return fmt.Errorf("%w: ssh.port %d out of range", ErrInvalidConfig, c.SSH.Port)
	}
	if c.SSH.IdleTimeout < 0 || c.SSH.MaxTimeout < 0 {
		return fmt.Errorf("%w: ssh timeouts must not be negative", ErrInvalidConfig)
	}
	if c.SSH.RateLimit < 0 || c.SSH.RateBurst < 0 {
		return fmt.Errorf("%w: ssh rate limits must not be negative", ErrInvalidConfig)
	}

	return nil
}

// AccentColor resolves Appearance.Accent to a hex value.
func (c *Config) AccentColor() string {
	if s, ok := theme.SwatchByName(c.Appearance.Accent); ok {
		return s.Color
	}
	if hex, ok := colors.Normalize(c.Appearance.Accent); ok {
		return hex
	}
	return theme.DefaultAccent
}

func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return true
	}
	return errors.Is(err, os.ErrNotExist)
}

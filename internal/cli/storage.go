package cli

import (
	"context"
	"fmt"

	"github.com/opencode-ai/folio/internal/config"
	"github.com/opencode-ai/folio/internal/db"
	"github.com/opencode-ai/folio/internal/keychain"
	"github.com/opencode-ai/folio/internal/logging"
	"github.com/opencode-ai/folio/internal/preferences"
	"github.com/opencode-ai/folio/internal/theme"
)

// backend bundles the preference storage chosen by configuration.
type backend struct {
	storage  preferences.Storage
	recorder preferences.Recorder
	history  *db.HistoryRepository
	close    func() error
}

func (b *backend) Close() error {
	if b == nil || b.close == nil {
		return nil
	}
	return b.close()
}

// openBackend opens the configured preference storage. The sqlite backend
// also records every change in the history table.
func openBackend(ctx context.Context, cfg *config.Config) (*backend, error) {
	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		database, err := openDatabase(ctx, cfg.Storage.Path)
		if err != nil {
			return nil, err
		}
		history := db.NewHistoryRepository(database)
		return &backend{
			storage:  db.NewKVRepository(database),
			recorder: historyRecorder{repo: history},
			history:  history,
			close:    database.Close,
		}, nil
	case config.BackendKeyring:
		return &backend{storage: keychain.New(cfg.Storage.Service)}, nil
	case config.BackendMemory:
		return &backend{storage: preferences.NewMemory()}, nil
	default:
		return nil, fmt.Errorf("%w: unsupported storage backend %q", config.ErrInvalidConfig, cfg.Storage.Backend)
	}
}

func openDatabase(ctx context.Context, path string) (*db.DB, error) {
	database, err := db.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	applied, err := database.MigrateUp(ctx)
	if err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	if applied > 0 {
		logger := logging.Component("cli")
		logger.Debug().Int("applied", applied).Str("path", path).Msg("applied migrations")
	}
	return database, nil
}

// historyRecorder adapts the history repository to preferences.Recorder.
type historyRecorder struct {
	repo *db.HistoryRepository
}

func (h historyRecorder) RecordChange(ctx context.Context, key string, pref preferences.Preference) error {
	return h.repo.Append(ctx, &db.PreferenceChange{
		Key:         key,
		Mode:        string(pref.Mode),
		AccentColor: pref.AccentColor,
	})
}

// defaultPreference resolves configured appearance defaults. The "system"
// mode uses darkBackground.
func defaultPreference(cfg *config.Config, darkBackground bool) preferences.Preference {
	mode := theme.ModeLight
	if cfg.Appearance.Mode == config.ModeSystem {
		if darkBackground {
			mode = theme.ModeDark
		}
	} else if parsed, ok := theme.ParseMode(cfg.Appearance.Mode); ok {
		mode = parsed
	}
	return preferences.Preference{Mode: mode, AccentColor: cfg.AccentColor()}
}

// newStore builds and loads the local preference store.
func newStore(ctx context.Context, cfg *config.Config, b *backend, darkBackground bool) *preferences.Store {
	opts := []preferences.Option{preferences.WithDefaults(defaultPreference(cfg, darkBackground))}
	if b.recorder != nil {
		opts = append(opts, preferences.WithRecorder(b.recorder))
	}
	store := preferences.NewStore(b.storage, opts...)
	store.Load(ctx)
	return store
}

package preferences

import (
	"context"
	"fmt"

	"github.com/opencode-ai/folio/internal/logging"
	"github.com/opencode-ai/folio/internal/theme"
)

// State is the store lifecycle state.
type State int

const (
	// StateDefault means no persisted record has been applied.
	StateDefault State = iota
	// StateLoaded means a persisted record was read and validated.
	StateLoaded
)

func (s State) String() string {
	if s == StateLoaded {
		return "loaded"
	}
	return "default"
}

// Store holds the current preference. It has a single writer and does no
// locking of its own.
type Store struct {
	storage  Storage
	recorder Recorder
	key      string
	defaults Preference
	current  Preference
	state    State
}

// Option configures a Store.
type Option func(*Store)

// WithKeySuffix scopes the store to APP_THEME:<suffix>.
func WithKeySuffix(suffix string) Option {
	return func(s *Store) {
		s.key = Key(suffix)
	}
}

// WithDefaults sets the record used until (or instead of) a persisted one.
// An empty accent keeps the default swatch.
func WithDefaults(p Preference) Option {
	return func(s *Store) {
		if p.Mode != theme.ModeDark {
			p.Mode = theme.ModeLight
		}
		if p.AccentColor == "" {
			p.AccentColor = theme.DefaultAccent
		}
		s.defaults = p
	}
}

// WithRecorder attaches a change recorder.
func WithRecorder(r Recorder) Option {
	return func(s *Store) {
		s.recorder = r
	}
}

// NewStore creates a Store in the default state.
func NewStore(storage Storage, opts ...Option) *Store {
	s := &Store{
		storage:  storage,
		key:      StorageKey,
		defaults: Default(theme.ModeLight),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.current = s.defaults
	return s
}

// Key returns the storage key in use.
func (s *Store) Key() string {
	return s.key
}

// State returns the lifecycle state.
func (s *Store) State() State {
	return s.state
}

// Current returns the active preference.
func (s *Store) Current() Preference {
	return s.current
}

// Defaults returns the record used when nothing is persisted.
func (s *Store) Defaults() Preference {
	return s.defaults
}

// Theme returns the derived theme for the active preference.
func (s *Store) Theme() theme.Theme {
	return s.current.Theme()
}

// Load reads the persisted record. Absent values, read errors, and
// malformed records leave the store in the default state; errors are
// logged, never returned.
func (s *Store) Load(ctx context.Context) Preference {
	logger := logging.Component("preferences")

	raw, ok, err := s.storage.Get(ctx, s.key)
	if err != nil {
		logger.Warn().Err(err).Str("key", s.key).Msg("failed to read theme preference")
		return s.current
	}
	if !ok || raw == "" {
		logger.Debug().Str("key", s.key).Msg("no stored theme preference")
		return s.current
	}

	pref, err := Decode(raw, s.defaults.AccentColor)
	if err != nil {
		logger.Warn().Err(err).Str("key", s.key).Msg("failed to parse stored theme")
		return s.current
	}

	s.current = pref
	s.state = StateLoaded
	logger.Debug().
		Str("key", s.key).
		Str("mode", string(pref.Mode)).
		Str("accent", pref.AccentColor).
		Msg("loaded theme preference")
	return s.current
}

// SetMode switches the mode and returns the record to persist.
func (s *Store) SetMode(mode theme.Mode) Preference {
	if mode != theme.ModeDark {
		mode = theme.ModeLight
	}
	s.current.Mode = mode
	return s.current
}

// ToggleMode flips between light and dark.
func (s *Store) ToggleMode() Preference {
	return s.SetMode(s.current.Mode.Toggle())
}

// SetAccentColor sets the accent. An empty colour is rejected with a
// warning and leaves the preference unchanged.
func (s *Store) SetAccentColor(color string) (Preference, bool) {
	if color == "" {
		logger := logging.Component("preferences")
		logger.Warn().Msg("ignoring empty accent color")
		return s.current, false
	}
	s.current.AccentColor = color
	return s.current, true
}

// Persist writes pref. Callers that must not surface failures log the
// returned error and move on.
func (s *Store) Persist(ctx context.Context, pref Preference) error {
	raw, err := Encode(pref)
	if err != nil {
		return err
	}
	if err := s.storage.Set(ctx, s.key, raw); err != nil {
		return fmt.Errorf("persist theme preference: %w", err)
	}

	if s.recorder != nil {
		if err := s.recorder.RecordChange(ctx, s.key, pref); err != nil {
			logger := logging.Component("preferences")
			logger.Warn().Err(err).Str("key", s.key).Msg("failed to record preference change")
		}
	}
	return nil
}

// Reset restores the defaults and persists them.
func (s *Store) Reset(ctx context.Context) error {
	s.current = s.defaults
	s.state = StateDefault
	return s.Persist(ctx, s.current)
}

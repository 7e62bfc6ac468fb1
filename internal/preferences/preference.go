// Package preferences owns the persisted theme preference: the light/dark
// mode and the accent colour.
package preferences

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/opencode-ai/folio/internal/theme"
)

// StorageKey is the key the preference record is stored under.
const StorageKey = "APP_THEME"

// ErrMalformedRecord is returned by Decode for values that are not a JSON
// object.
var ErrMalformedRecord = errors.New("malformed preference record")

// Preference is the persisted record.
type Preference struct {
	Mode        theme.Mode `json:"mode"`
	AccentColor string     `json:"accentColor"`
}

// Default returns the first-run preference for mode.
func Default(mode theme.Mode) Preference {
	if mode != theme.ModeDark {
		mode = theme.ModeLight
	}
	return Preference{Mode: mode, AccentColor: theme.DefaultAccent}
}

// IsDark reports whether the preference selects dark mode.
func (p Preference) IsDark() bool {
	return p.Mode == theme.ModeDark
}

// Theme derives the theme for p.
func (p Preference) Theme() theme.Theme {
	return theme.For(p.Mode, p.AccentColor)
}

// Key returns the storage key for an identity suffix. An empty suffix is
// the local key.
func Key(suffix string) string {
	suffix = strings.TrimSpace(suffix)
	if suffix == "" {
		return StorageKey
	}
	return StorageKey + ":" + suffix
}

// Encode serialises p as {"mode":...,"accentColor":...}.
func Encode(p Preference) (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("encode preference: %w", err)
	}
	return string(data), nil
}

// Decode parses and validates a stored record. A mode other than "dark"
// becomes light; an accent that is missing, empty, or not a string becomes
// fallbackAccent. Values that are not a JSON object are rejected.
func Decode(raw, fallbackAccent string) (Preference, error) {
	var fields map[string]any
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return Preference{}, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	if fields == nil {
		return Preference{}, fmt.Errorf("%w: not an object", ErrMalformedRecord)
	}

	pref := Preference{Mode: theme.ModeLight, AccentColor: fallbackAccent}
	if mode, _ := fields["mode"].(string); mode == string(theme.ModeDark) {
		pref.Mode = theme.ModeDark
	}
	if accent, ok := fields["accentColor"].(string); ok && accent != "" {
		pref.AccentColor = accent
	}
	return pref, nil
}

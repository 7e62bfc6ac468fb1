// Package theme defines the light and dark design tokens and derives
// accent-coloured variants of them.
package theme

import "strings"

// Mode selects a base theme.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// ParseMode maps a string to a Mode. Anything other than "dark" or "light"
// reports false and resolves to light.
func ParseMode(s string) (Mode, bool) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeDark:
		return ModeDark, true
	case ModeLight:
		return ModeLight, true
	default:
		return ModeLight, false
	}
}

// Toggle returns the opposite mode.
func (m Mode) Toggle() Mode {
	if m == ModeDark {
		return ModeLight
	}
	return ModeDark
}

// IsDark reports whether m is the dark mode.
func (m Mode) IsDark() bool {
	return m == ModeDark
}

// Colors holds the semantic colour roles.
type Colors struct {
	Primary      string
	PrimaryLight string
	PrimaryDark  string

	Secondary      string
	SecondaryLight string
	SecondaryDark  string

	Background          string
	BackgroundSecondary string
	Card                string
	CardSecondary       string

	Text          string
	TextSecondary string
	TextTertiary  string

	Border      string
	BorderLight string

	Success string
	Warning string
	Error   string
	Overlay string
}

// Gradients holds ordered colour stops. Every list has at least two entries.
type Gradients struct {
	Primary    []string
	Secondary  []string
	Background []string
	Card       []string
}

// Spacing is the spacing scale in layout units.
type Spacing struct {
	XS, SM, MD, LG, XL, XXL, XXXL int
}

// BorderRadius is the corner radius scale.
type BorderRadius struct {
	XS, SM, MD, LG, XL, XXL, XXXL, Full int
}

// FontSizes is the text size scale.
type FontSizes struct {
	XS, SM, Base, LG, XL, XXL, XXXL, XXXXL, XXXXXL int
}

// FontWeights maps weight names to numeric weights.
type FontWeights struct {
	Normal, Medium, Semibold, Bold, Extrabold int
}

// LineHeights are line height multipliers.
type LineHeights struct {
	Tight, Normal, Relaxed float64
}

// Fonts names the font family per role.
type Fonts struct {
	Regular, Medium, Semibold, Bold string
}

// Typography groups the text tokens.
type Typography struct {
	Sizes       FontSizes
	Weights     FontWeights
	LineHeights LineHeights
	Fonts       Fonts
}

// Offset is a shadow offset.
type Offset struct {
	Width, Height int
}

// Shadow describes a drop shadow level.
type Shadow struct {
	Color     string
	Offset    Offset
	Opacity   float64
	Radius    int
	Elevation int
}

// Shadows is the elevation scale.
type Shadows struct {
	SM, MD, LG, XL Shadow
}

// Theme is a complete token set. Values are treated as immutable; use Clone
// before modifying a copy.
type Theme struct {
	Mode         Mode
	Colors       Colors
	Gradients    Gradients
	Spacing      Spacing
	BorderRadius BorderRadius
	Typography   Typography
	Shadows      Shadows
}

// Base returns a fresh copy of the base theme for mode. Unknown modes
// resolve to light.
func Base(mode Mode) Theme {
	if mode == ModeDark {
		return Dark.Clone()
	}
	return Light.Clone()
}

// Clone returns a deep copy of t.
func (t Theme) Clone() Theme {
	out := t
	out.Gradients = Gradients{
		Primary:    cloneStops(t.Gradients.Primary),
		Secondary:  cloneStops(t.Gradients.Secondary),
		Background: cloneStops(t.Gradients.Background),
		Card:       cloneStops(t.Gradients.Card),
	}
	return out
}

// IsDark reports whether the theme was built from the dark base.
func (t Theme) IsDark() bool {
	return t.Mode.IsDark()
}

func cloneStops(stops []string) []string {
	if stops == nil {
		return nil
	}
	out := make([]string, len(stops))
	copy(out, stops)
	return out
}

var defaultSpacing = Spacing{XS: 4, SM: 8, MD: 16, LG: 24, XL: 32, XXL: 48, XXXL: 64}

var defaultBorderRadius = BorderRadius{XS: 4, SM: 8, MD: 12, LG: 16, XL: 20, XXL: 24, XXXL: 32, Full: 9999}

var defaultTypography = Typography{
	Sizes:       FontSizes{XS: 12, SM: 14, Base: 16, LG: 18, XL: 20, XXL: 24, XXXL: 28, XXXXL: 32, XXXXXL: 36},
	Weights:     FontWeights{Normal: 400, Medium: 500, Semibold: 600, Bold: 700, Extrabold: 800},
	LineHeights: LineHeights{Tight: 1.2, Normal: 1.4, Relaxed: 1.6},
	Fonts:       Fonts{Regular: "System", Medium: "System", Semibold: "System", Bold: "System"},
}

var defaultShadows = Shadows{
	SM: Shadow{Color: "#000000", Offset: Offset{Width: 0, Height: 1}, Opacity: 0.05, Radius: 2, Elevation: 1},
	MD: Shadow{Color: "#000000", Offset: Offset{Width: 0, Height: 4}, Opacity: 0.1, Radius: 8, Elevation: 4},
	LG: Shadow{Color: "#000000", Offset: Offset{Width: 0, Height: 8}, Opacity: 0.15, Radius: 16, Elevation: 8},
	XL: Shadow{Color: "#000000", Offset: Offset{Width: 0, Height: 12}, Opacity: 0.2, Radius: 24, Elevation: 12},
}

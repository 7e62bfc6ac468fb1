package theme

import "github.com/opencode-ai/folio/internal/colors"

// Derive returns base with its primary tokens rebuilt from accent. The
// result shares no slices with base. An accent that is not a valid hex
// colour is replaced by DefaultAccent for the Primary token; the darker and
// translucent variants fall back through the colour helpers.
func Derive(base Theme, accent string) Theme {
	out := base.Clone()

	primary, ok := colors.Normalize(accent)
	if !ok {
		primary = DefaultAccent
	}

	out.Colors.Primary = primary
	out.Colors.PrimaryLight = colors.WithOpacity(accent, 0.2)
	out.Colors.PrimaryDark = colors.Darken(accent, 30)
	out.Gradients.Primary = colors.SanitizeGradient([]string{
		colors.Darken(accent, 20),
		primary,
	})

	return out
}

// For builds the derived theme for a mode and accent.
func For(mode Mode, accent string) Theme {
	return Derive(Base(mode), accent)
}

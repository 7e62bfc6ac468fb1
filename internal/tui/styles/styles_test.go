package styles

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/folio/internal/colors"
	"github.com/opencode-ai/folio/internal/theme"
)

func TestResolveFlattensEveryToken(t *testing.T) {
	for _, mode := range []theme.Mode{theme.ModeLight, theme.ModeDark} {
		tokens := Resolve(theme.For(mode, "#e67e22"))

		for name, value := range map[string]string{
			"primary":       tokens.Primary,
			"primary light": tokens.PrimaryLight,
			"primary dark":  tokens.PrimaryDark,
			"overlay":       tokens.Overlay,
			"background":    tokens.Background,
			"text":          tokens.Text,
		} {
			require.True(t, colors.IsValidHex(value), "%s %s = %q", mode, name, value)
		}
		for _, stop := range tokens.PrimaryGradient {
			require.True(t, colors.IsValidHex(stop), stop)
		}
	}
}

func TestResolvePrimaryLightBlendsWithBackground(t *testing.T) {
	light := Resolve(theme.For(theme.ModeLight, "#3498db"))
	dark := Resolve(theme.For(theme.ModeDark, "#3498db"))

	require.Equal(t, "#3498db", light.Primary)
	require.NotEqual(t, light.PrimaryLight, dark.PrimaryLight)
}

func TestBuildStylesKeepsTheme(t *testing.T) {
	th := theme.For(theme.ModeDark, "#27ae60")
	s := BuildStyles(th)

	require.Equal(t, th, s.Theme)
	require.Equal(t, "#27ae60", s.Tokens.Primary)
	require.NotNil(t, s.Renderer)
	require.Contains(t, s.Title.Render("folio"), "folio")
}

func TestDefaultStyles(t *testing.T) {
	s := DefaultStyles()
	require.False(t, s.Theme.IsDark())
	require.Equal(t, theme.DefaultAccent, s.Tokens.Primary)
}

package theme

import (
	"testing"

	"github.com/opencode-ai/folio/internal/colors"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		input string
		want  Mode
		ok    bool
	}{
		{"dark", ModeDark, true},
		{" Dark ", ModeDark, true},
		{"light", ModeLight, true},
		{"", ModeLight, false},
		{"system", ModeLight, false},
	}

	for _, tt := range tests {
		got, ok := ParseMode(tt.input)
		require.Equal(t, tt.want, got, tt.input)
		require.Equal(t, tt.ok, ok, tt.input)
	}
}

func TestBaseReturnsCopies(t *testing.T) {
	a := Base(ModeLight)
	a.Gradients.Primary[0] = "#000000"
	a.Colors.Text = "#000000"

	b := Base(ModeLight)
	require.Equal(t, "#a855f7", b.Gradients.Primary[0])
	require.Equal(t, "#0f172a", b.Colors.Text)
	require.Equal(t, "#a855f7", Light.Gradients.Primary[0])
}

func TestBaseUnknownModeIsLight(t *testing.T) {
	require.Equal(t, Light.Colors, Base(Mode("sepia")).Colors)
}

func TestBaseGradientsHaveTwoValidStops(t *testing.T) {
	for _, mode := range []Mode{ModeLight, ModeDark} {
		base := Base(mode)
		for _, stops := range [][]string{
			base.Gradients.Primary,
			base.Gradients.Secondary,
			base.Gradients.Background,
			base.Gradients.Card,
		} {
			require.Len(t, stops, 2)
			for _, stop := range stops {
				require.True(t, colors.IsValidHex(stop), stop)
			}
		}
	}
}

func TestDerive(t *testing.T) {
	base := Base(ModeDark)
	got := Derive(base, "#3498db")

	require.Equal(t, "#3498db", got.Colors.Primary)
	require.Equal(t, "rgba(52, 152, 219, 0.2)", got.Colors.PrimaryLight)
	require.Equal(t, colors.Darken("#3498db", 30), got.Colors.PrimaryDark)
	require.Equal(t, []string{colors.Darken("#3498db", 20), "#3498db"}, got.Gradients.Primary)

	// Everything else is untouched.
	require.Equal(t, base.Colors.Background, got.Colors.Background)
	require.Equal(t, base.Colors.Secondary, got.Colors.Secondary)
	require.Equal(t, base.Gradients.Card, got.Gradients.Card)
	require.Equal(t, base.Spacing, got.Spacing)
	require.Equal(t, base.Typography, got.Typography)
	require.Equal(t, base.Shadows, got.Shadows)
	require.Equal(t, ModeDark, got.Mode)
}

func TestDeriveDoesNotShareSlices(t *testing.T) {
	base := Base(ModeLight)
	got := Derive(base, "#27ae60")

	got.Gradients.Secondary[0] = "#000000"
	require.Equal(t, "#60a5fa", base.Gradients.Secondary[0])
}

func TestDeriveMalformedAccent(t *testing.T) {
	for _, accent := range []string{"", "blue", "#12", "#zzzzzz", "rgba(1, 2, 3, 0.4)"} {
		t.Run(accent, func(t *testing.T) {
			got := Derive(Base(ModeLight), accent)

			require.Equal(t, DefaultAccent, got.Colors.Primary)
			require.Equal(t, "rgba(142, 68, 173, 0.2)", got.Colors.PrimaryLight)
			require.Equal(t, colors.FallbackDarken, got.Colors.PrimaryDark)
			require.GreaterOrEqual(t, len(got.Gradients.Primary), 2)
			for _, stop := range got.Gradients.Primary {
				require.True(t, colors.IsValidHex(stop), stop)
			}
		})
	}
}

func TestDeriveNormalisesAccent(t *testing.T) {
	got := Derive(Base(ModeLight), "E67E22")
	require.Equal(t, "#e67e22", got.Colors.Primary)
	require.Equal(t, "#e67e22", got.Gradients.Primary[1])
}

func TestModeToggleRoundTrip(t *testing.T) {
	for _, swatch := range Palette() {
		for _, mode := range []Mode{ModeLight, ModeDark} {
			start := For(mode, swatch.Color)
			back := For(mode.Toggle().Toggle(), swatch.Color)
			require.Equal(t, start, back)
			require.NotEqual(t, start.Colors.Background, For(mode.Toggle(), swatch.Color).Colors.Background)
		}
	}
}

func TestPalette(t *testing.T) {
	p := Palette()
	require.Len(t, p, 6)
	require.Equal(t, DefaultAccent, p[0].Color)

	p[0].Color = "#000000"
	require.Equal(t, DefaultAccent, Palette()[0].Color)

	s, ok := SwatchByName("Orange")
	require.True(t, ok)
	require.Equal(t, "#e67e22", s.Color)

	_, ok = SwatchByName("magenta")
	require.False(t, ok)

	require.Equal(t, 1, SwatchIndex("#3498DB"))
	require.Equal(t, -1, SwatchIndex("#000001"))
}

package colors

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsValidHex(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"#8e44ad", true},
		{"8E44AD", true},
		{"#fff", false},
		{"#8e44ad00", false},
		{"#gggggg", false},
		{"", false},
		{"##8e44ad", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			require.Equal(t, tt.want, IsValidHex(tt.input))
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, hex := range []string{"#000000", "#ffffff", "#8e44ad", "#3498db", "#e67e22"} {
		rgb, ok := HexToRGB(hex)
		require.True(t, ok, hex)
		require.Equal(t, hex, RGBToHex(rgb.R, rgb.G, rgb.B))
	}

	rgb, ok := HexToRGB("#8E44AD")
	require.True(t, ok)
	require.Equal(t, RGB{R: 142, G: 68, B: 173}, rgb)
}

func TestRGBToHexClamps(t *testing.T) {
	require.Equal(t, "#00ff0a", RGBToHex(-20, 300, 10))
}

func TestWithOpacity(t *testing.T) {
	require.Equal(t, "rgba(52, 152, 219, 0.2)", WithOpacity("#3498db", 0.2))
	require.Equal(t, "rgba(142, 68, 173, 0.5)", WithOpacity("not-a-color", 0.5))
	require.Equal(t, "rgba(255, 255, 255, 1)", WithOpacity("ffffff", 1))
}

func TestDarkenLighten(t *testing.T) {
	require.Equal(t, "#70268f", Darken("#8e44ad", 30))
	require.Equal(t, "#000000", Darken("#101010", 40))
	require.Equal(t, FallbackDarken, Darken("nope", 10))

	require.Equal(t, "#ffffff", Lighten("#f0f0f0", 40))
	require.Equal(t, "#ac62cb", Lighten("#8e44ad", 30))
	require.Equal(t, FallbackLighten, Lighten("#12", 10))
}

func TestDarkenMonotone(t *testing.T) {
	for _, hex := range []string{"#8e44ad", "#27ae60", "#f1c40f", "#000000", "#ffffff"} {
		base, _ := HexToRGB(hex)
		for _, amount := range []int{0, 1, 30, 255, 400} {
			dark, ok := HexToRGB(Darken(hex, amount))
			require.True(t, ok)
			require.LessOrEqual(t, dark.R, base.R)
			require.LessOrEqual(t, dark.G, base.G)
			require.LessOrEqual(t, dark.B, base.B)

			light, ok := HexToRGB(Lighten(hex, amount))
			require.True(t, ok)
			require.GreaterOrEqual(t, light.R, base.R)
			require.GreaterOrEqual(t, light.G, base.G)
			require.GreaterOrEqual(t, light.B, base.B)
		}
	}
}

func TestSanitizeGradient(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{"nil", nil, []string{"#8e44ad", "#3498db"}},
		{"all invalid", []string{"red", "", "blue"}, []string{"#8e44ad", "#3498db"}},
		{"single", []string{"#123456"}, []string{"#123456", "#123456"}},
		{"filters", []string{"#111111", "oops", "rgba(0, 0, 0, 0.5)", "rgb(1, 2, 3)"}, []string{"#111111", "rgba(0, 0, 0, 0.5)", "rgb(1, 2, 3)"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeGradient(tt.input)
			require.Equal(t, tt.want, got)
			require.GreaterOrEqual(t, len(got), 2)
		})
	}
}

func TestNormalize(t *testing.T) {
	got, ok := Normalize("8E44AD")
	require.True(t, ok)
	require.Equal(t, "#8e44ad", got)

	_, ok = Normalize("#8e44a")
	require.False(t, ok)
}

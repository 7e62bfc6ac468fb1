package colors

import (
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBA is a colour channel triple with alpha in [0,1].
type RGBA struct {
	RGB
	A float64
}

// ParseRGBA parses "rgb(r, g, b)" or "rgba(r, g, b, a)" tokens. Channels are
// clamped and alpha is clamped into [0,1].
func ParseRGBA(s string) (RGBA, bool) {
	s = strings.TrimSpace(strings.ToLower(s))

	var body string
	var wantAlpha bool
	switch {
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		body = s[len("rgba(") : len(s)-1]
		wantAlpha = true
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		body = s[len("rgb(") : len(s)-1]
	default:
		return RGBA{}, false
	}

	parts := strings.Split(body, ",")
	if (wantAlpha && len(parts) != 4) || (!wantAlpha && len(parts) != 3) {
		return RGBA{}, false
	}

	channels := make([]int, 3)
	for i := 0; i < 3; i++ {
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil {
			return RGBA{}, false
		}
		channels[i] = clampChannel(v)
	}

	alpha := 1.0
	if wantAlpha {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil {
			return RGBA{}, false
		}
		alpha = clampUnit(a)
	}

	return RGBA{RGB: RGB{R: channels[0], G: channels[1], B: channels[2]}, A: alpha}, true
}

// Flatten composites color over background and returns an opaque hex value.
// Hex input passes through normalised. Anything unparsable yields the
// fallback purple.
func Flatten(color, background string) string {
	if hex, ok := Normalize(color); ok {
		return hex
	}

	rgba, ok := ParseRGBA(color)
	if !ok {
		return FallbackRGBAColor
	}

	fg := toColorful(rgba.RGB)
	bg := toColorful(RGB{})
	if bgRGB, ok := HexToRGB(background); ok {
		bg = toColorful(bgRGB)
	}

	return bg.BlendRgb(fg, rgba.A).Clamped().Hex()
}

// Sample returns n colours evenly spaced along the sanitised gradient.
// Stops that are not hex are flattened over black first.
func Sample(stops []string, n int) []string {
	if n <= 0 {
		return nil
	}

	clean := SanitizeGradient(stops)
	points := make([]colorful.Color, len(clean))
	for i, stop := range clean {
		rgb, _ := HexToRGB(Flatten(stop, "#000000"))
		points[i] = toColorful(rgb)
	}

	out := make([]string, n)
	if n == 1 {
		out[0] = points[0].Hex()
		return out
	}

	segments := float64(len(points) - 1)
	for i := 0; i < n; i++ {
		pos := float64(i) / float64(n-1) * segments
		idx := int(pos)
		if idx >= len(points)-1 {
			out[i] = points[len(points)-1].Hex()
			continue
		}
		out[i] = points[idx].BlendRgb(points[idx+1], pos-float64(idx)).Clamped().Hex()
	}
	return out
}

func toColorful(c RGB) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

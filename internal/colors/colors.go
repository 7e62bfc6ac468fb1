// Package colors provides total colour helpers for theme tokens.
//
// Every function substitutes a documented fallback instead of failing, so
// callers can feed user input straight through without checking errors.
package colors

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Fallback values returned when input cannot be parsed.
const (
	FallbackRGBAColor = "#8e44ad"
	FallbackDarken    = "#7c3aed"
	FallbackLighten   = "#a855f7"
)

// FallbackGradient is used when a gradient has no valid stops.
var FallbackGradient = [2]string{"#8e44ad", "#3498db"}

var hexDigitsRegex = regexp.MustCompile(`^[0-9a-fA-F]{6}$`)

// RGB is an 8-bit colour triple.
type RGB struct {
	R, G, B int
}

// IsValidHex reports whether color is exactly six hex digits after an
// optional leading '#'.
func IsValidHex(color string) bool {
	return hexDigitsRegex.MatchString(strings.TrimPrefix(color, "#"))
}

// Normalize returns color in lowercase #rrggbb form.
func Normalize(color string) (string, bool) {
	if !IsValidHex(color) {
		return "", false
	}
	return "#" + strings.ToLower(strings.TrimPrefix(color, "#")), true
}

// HexToRGB parses a valid hex colour into its channels.
func HexToRGB(color string) (RGB, bool) {
	if !IsValidHex(color) {
		return RGB{}, false
	}
	value, err := strconv.ParseUint(strings.TrimPrefix(color, "#"), 16, 32)
	if err != nil {
		return RGB{}, false
	}
	return RGB{
		R: int((value >> 16) & 0xFF),
		G: int((value >> 8) & 0xFF),
		B: int(value & 0xFF),
	}, true
}

// RGBToHex encodes channels as lowercase #rrggbb, clamping each into [0,255].
func RGBToHex(r, g, b int) string {
	return fmt.Sprintf("#%02x%02x%02x", clampChannel(r), clampChannel(g), clampChannel(b))
}

// Hex returns the #rrggbb encoding of c.
func (c RGB) Hex() string {
	return RGBToHex(c.R, c.G, c.B)
}

// WithOpacity formats color as an rgba() string at the given opacity.
// Invalid input yields the fallback purple at the same opacity.
func WithOpacity(color string, opacity float64) string {
	rgb, ok := HexToRGB(color)
	if !ok {
		rgb, _ = HexToRGB(FallbackRGBAColor)
	}
	return formatRGBA(rgb, opacity)
}

// Darken subtracts amount from every channel.
func Darken(color string, amount int) string {
	rgb, ok := HexToRGB(color)
	if !ok {
		return FallbackDarken
	}
	return RGBToHex(rgb.R-amount, rgb.G-amount, rgb.B-amount)
}

// Lighten adds amount to every channel.
func Lighten(color string, amount int) string {
	rgb, ok := HexToRGB(color)
	if !ok {
		return FallbackLighten
	}
	return RGBToHex(rgb.R+amount, rgb.G+amount, rgb.B+amount)
}

// SanitizeGradient keeps stops that look like colours and guarantees at
// least two of them.
func SanitizeGradient(stops []string) []string {
	valid := make([]string, 0, len(stops))
	for _, stop := range stops {
		if looksLikeColor(stop) {
			valid = append(valid, stop)
		}
	}

	switch len(valid) {
	case 0:
		return []string{FallbackGradient[0], FallbackGradient[1]}
	case 1:
		return []string{valid[0], valid[0]}
	default:
		return valid
	}
}

func looksLikeColor(value string) bool {
	return strings.HasPrefix(value, "#") ||
		strings.HasPrefix(value, "rgba") ||
		strings.HasPrefix(value, "rgb")
}

func formatRGBA(rgb RGB, opacity float64) string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", rgb.R, rgb.G, rgb.B, strconv.FormatFloat(opacity, 'f', -1, 64))
}

func clampChannel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

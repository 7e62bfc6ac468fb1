package theme

import "strings"

// Swatch is a named accent colour offered by the theme picker.
type Swatch struct {
	Name  string
	Color string
}

var swatches = []Swatch{
	{Name: "purple", Color: "#8e44ad"},
	{Name: "blue", Color: "#3498db"},
	{Name: "orange", Color: "#e67e22"},
	{Name: "green", Color: "#27ae60"},
	{Name: "red", Color: "#e74c3c"},
	{Name: "yellow", Color: "#f1c40f"},
}

// DefaultAccent is the first swatch.
const DefaultAccent = "#8e44ad"

// Palette returns the accent swatches in display order.
func Palette() []Swatch {
	out := make([]Swatch, len(swatches))
	copy(out, swatches)
	return out
}

// SwatchByName finds a swatch by case-insensitive name.
func SwatchByName(name string) (Swatch, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, s := range swatches {
		if s.Name == name {
			return s, true
		}
	}
	return Swatch{}, false
}

// SwatchIndex returns the palette index of color, or -1.
func SwatchIndex(color string) int {
	for i, s := range swatches {
		if strings.EqualFold(s.Color, color) {
			return i
		}
	}
	return -1
}

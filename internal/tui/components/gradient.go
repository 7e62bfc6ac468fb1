package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/folio/internal/colors"
	"github.com/opencode-ai/folio/internal/tui/styles"
)

// RenderGradientBar draws a solid bar of width cells blending across stops.
func RenderGradientBar(styleSet styles.Styles, stops []string, width int) string {
	if width <= 0 {
		return ""
	}
	var b strings.Builder
	for _, hex := range colors.Sample(stops, width) {
		b.WriteString(styleSet.NewStyle().Background(lipgloss.Color(hex)).Render(" "))
	}
	return b.String()
}

// RenderGradientText colours each rune of text along stops.
func RenderGradientText(styleSet styles.Styles, text string, stops []string, bold bool) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	var b strings.Builder
	for i, hex := range colors.Sample(stops, len(runes)) {
		style := styleSet.NewStyle().Foreground(lipgloss.Color(hex)).Bold(bold)
		b.WriteString(style.Render(string(runes[i])))
	}
	return b.String()
}

// RenderGradientBanner renders lines of text over a gradient background
// that spans the full width.
func RenderGradientBanner(styleSet styles.Styles, lines []string, stops []string, width int, foreground string) string {
	if width <= 0 {
		return strings.Join(lines, "\n")
	}
	samples := colors.Sample(stops, width)
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		runes := []rune(padRight(truncate(line, width), width))
		var b strings.Builder
		for i, r := range runes {
			style := styleSet.NewStyle().
				Foreground(lipgloss.Color(foreground)).
				Background(lipgloss.Color(samples[i])).
				Bold(true)
			b.WriteString(style.Render(string(r)))
		}
		out = append(out, b.String())
	}
	return strings.Join(out, "\n")
}

func padRight(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/folio/internal/tui/styles"
)

// RenderTag renders a single chip.
func RenderTag(styleSet styles.Styles, label string) string {
	return styleSet.Tag.Render(strings.TrimSpace(label))
}

// RenderTags lays chips out left to right, wrapping at width. A width of
// zero or less keeps everything on one line.
func RenderTags(styleSet styles.Styles, labels []string, width int) string {
	if len(labels) == 0 {
		return ""
	}

	var rows []string
	var row []string
	rowWidth := 0
	for _, label := range labels {
		chip := RenderTag(styleSet, label)
		chipWidth := lipgloss.Width(chip)
		if width > 0 && len(row) > 0 && rowWidth+1+chipWidth > width {
			rows = append(rows, strings.Join(row, " "))
			row = nil
			rowWidth = 0
		}
		if len(row) > 0 {
			rowWidth++
		}
		row = append(row, chip)
		rowWidth += chipWidth
	}
	if len(row) > 0 {
		rows = append(rows, strings.Join(row, " "))
	}
	return strings.Join(rows, "\n")
}

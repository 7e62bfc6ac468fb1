package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/folio/internal/theme"
	"github.com/opencode-ai/folio/internal/tui/styles"
)

// SwatchRow renders the accent palette with a cursor and the active swatch.
type SwatchRow struct {
	Swatches []theme.Swatch
	Cursor   int
	Active   string // active accent colour
}

// Move shifts the cursor, wrapping around.
func (r *SwatchRow) Move(delta int) {
	n := len(r.Swatches)
	if n == 0 {
		r.Cursor = 0
		return
	}
	r.Cursor = ((r.Cursor+delta)%n + n) % n
}

// Selected returns the swatch under the cursor.
func (r *SwatchRow) Selected() (theme.Swatch, bool) {
	if r.Cursor < 0 || r.Cursor >= len(r.Swatches) {
		return theme.Swatch{}, false
	}
	return r.Swatches[r.Cursor], true
}

// Render draws one block per swatch with its name below.
func (r *SwatchRow) Render(styleSet styles.Styles) string {
	if len(r.Swatches) == 0 {
		return ""
	}

	cells := make([]string, 0, len(r.Swatches))
	for i, s := range r.Swatches {
		block := styleSet.NewStyle().
			Background(lipgloss.Color(s.Color)).
			Width(6).
			Height(2).
			Render("")

		marker := "  "
		if strings.EqualFold(s.Color, r.Active) {
			marker = "✓ "
		}
		name := marker + s.Name
		nameStyle := styleSet.Muted
		if i == r.Cursor {
			nameStyle = styleSet.Focus
			block = styleSet.NewStyle().
				Border(lipgloss.ThickBorder()).
				BorderForeground(lipgloss.Color(styleSet.Tokens.Text)).
				Render(block)
		} else {
			block = styleSet.NewStyle().
				Border(lipgloss.HiddenBorder()).
				Render(block)
		}

		cells = append(cells, lipgloss.JoinVertical(lipgloss.Center, block, nameStyle.Render(name)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

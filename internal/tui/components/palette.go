package components

import (
	"fmt"
	"strings"

	"github.com/opencode-ai/folio/internal/tui/styles"
)

// PaletteItem is one jump target in the go-to palette.
type PaletteItem struct {
	Label       string
	Description string
	Keywords    []string
	Target      int // destination index
}

// Palette stores state for the go-to palette.
type Palette struct {
	Query string
	Index int
	Items []PaletteItem
}

// NewPalette creates a palette over items.
func NewPalette(items []PaletteItem) *Palette {
	p := &Palette{}
	p.SetItems(items)
	return p
}

// SetItems replaces the item list.
func (p *Palette) SetItems(items []PaletteItem) {
	if len(items) == 0 {
		p.Items = nil
	} else {
		p.Items = make([]PaletteItem, len(items))
		copy(p.Items, items)
	}
	p.ClampIndex()
}

// Reset clears the query and selection.
func (p *Palette) Reset() {
	p.Query = ""
	p.Index = 0
}

// SetQuery updates the filter and resets the selection.
func (p *Palette) SetQuery(query string) {
	p.Query = query
	p.Index = 0
}

// Move shifts the selection, wrapping at both ends.
func (p *Palette) Move(delta int) {
	items := p.Filtered()
	if len(items) == 0 {
		p.Index = 0
		return
	}
	if delta == 0 {
		return
	}
	idx := p.Index
	if idx < 0 || idx >= len(items) {
		idx = 0
	}
	idx += delta
	if idx < 0 {
		idx = len(items) - 1
	} else if idx >= len(items) {
		idx = 0
	}
	p.Index = idx
}

// ClampIndex ensures the selection index stays in bounds.
func (p *Palette) ClampIndex() {
	items := p.Filtered()
	if len(items) == 0 {
		p.Index = 0
		return
	}
	if p.Index < 0 {
		p.Index = 0
	}
	if p.Index >= len(items) {
		p.Index = len(items) - 1
	}
}

// Selected returns the highlighted item.
func (p *Palette) Selected() *PaletteItem {
	items := p.Filtered()
	if len(items) == 0 || p.Index < 0 || p.Index >= len(items) {
		return nil
	}
	selected := items[p.Index]
	return &selected
}

// Filtered returns items matching every query token.
func (p *Palette) Filtered() []PaletteItem {
	tokens := strings.Fields(strings.ToLower(strings.TrimSpace(p.Query)))
	if len(tokens) == 0 {
		return p.Items
	}
	filtered := make([]PaletteItem, 0, len(p.Items))
	for _, item := range p.Items {
		haystack := strings.ToLower(strings.Join(append([]string{item.Label, item.Description}, item.Keywords...), " "))
		if matchesTokens(haystack, tokens) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// Render renders the palette lines.
func (p *Palette) Render(styleSet styles.Styles, width int) []string {
	lines := []string{
		styleSet.Heading.Render("Go to"),
		styleSet.Tertiary.Render("Type to filter. Enter to jump. Esc to close."),
		styleSet.Text.Render(fmt.Sprintf("> %s", p.Query)),
		"",
	}

	items := p.Filtered()
	if len(items) == 0 {
		return append(lines, styleSet.Muted.Render("No matches."))
	}

	for idx, item := range items {
		label := item.Label
		if desc := strings.TrimSpace(item.Description); desc != "" {
			label = fmt.Sprintf("%s - %s", item.Label, desc)
		}
		label = truncate(label, width-4)
		if idx == p.Index {
			lines = append(lines, styleSet.Focus.Render("> "+label))
			continue
		}
		lines = append(lines, styleSet.Muted.Render("  "+label))
	}
	return lines
}

func matchesTokens(haystack string, tokens []string) bool {
	for _, token := range tokens {
		if !strings.Contains(haystack, token) {
			return false
		}
	}
	return true
}

// Package styles turns theme tokens into lipgloss styles.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/folio/internal/theme"
)

// Styles contains lipgloss styles derived from a theme.
type Styles struct {
	Theme    theme.Theme
	Tokens   Tokens
	Renderer *lipgloss.Renderer

	App          lipgloss.Style
	Title        lipgloss.Style
	Heading      lipgloss.Style
	Text         lipgloss.Style
	Muted        lipgloss.Style
	Tertiary     lipgloss.Style
	Accent       lipgloss.Style
	Secondary    lipgloss.Style
	Border       lipgloss.Style
	Focus        lipgloss.Style
	Success      lipgloss.Style
	Warning      lipgloss.Style
	Error        lipgloss.Style
	Card         lipgloss.Style
	CardFocused  lipgloss.Style
	Drawer       lipgloss.Style
	DrawerItem   lipgloss.Style
	DrawerActive lipgloss.Style
	Tag          lipgloss.Style
	Link         lipgloss.Style
	LinkFocused  lipgloss.Style
	Overlay      lipgloss.Style
}

// DefaultStyles builds styles for the light theme with the default accent.
func DefaultStyles() Styles {
	return BuildStyles(theme.For(theme.ModeLight, theme.DefaultAccent))
}

// BuildStyles converts a theme into styles on the default renderer.
func BuildStyles(t theme.Theme) Styles {
	return BuildStylesWithRenderer(lipgloss.DefaultRenderer(), t)
}

// BuildStylesWithRenderer converts a theme into styles bound to r. SSH
// sessions pass their own renderer so colour profiles match the client.
func BuildStylesWithRenderer(r *lipgloss.Renderer, t theme.Theme) Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	tokens := Resolve(t)
	color := func(hex string) lipgloss.Color { return lipgloss.Color(hex) }

	return Styles{
		Theme:        t,
		Tokens:       tokens,
		Renderer:     r,
		App:          r.NewStyle().Foreground(color(tokens.Text)).Background(color(tokens.Background)),
		Title:        r.NewStyle().Foreground(color(tokens.Text)).Bold(true),
		Heading:      r.NewStyle().Foreground(color(tokens.Primary)).Bold(true),
		Text:         r.NewStyle().Foreground(color(tokens.Text)),
		Muted:        r.NewStyle().Foreground(color(tokens.TextSecondary)),
		Tertiary:     r.NewStyle().Foreground(color(tokens.TextTertiary)),
		Accent:       r.NewStyle().Foreground(color(tokens.Primary)),
		Secondary:    r.NewStyle().Foreground(color(tokens.Secondary)),
		Border:       r.NewStyle().Foreground(color(tokens.Border)),
		Focus:        r.NewStyle().Foreground(color(tokens.Primary)).Bold(true),
		Success:      r.NewStyle().Foreground(color(tokens.Success)),
		Warning:      r.NewStyle().Foreground(color(tokens.Warning)),
		Error:        r.NewStyle().Foreground(color(tokens.Error)),
		Card:         r.NewStyle().Foreground(color(tokens.Text)).Background(color(tokens.Card)).Border(lipgloss.RoundedBorder()).BorderForeground(color(tokens.Border)).Padding(0, 1),
		CardFocused:  r.NewStyle().Foreground(color(tokens.Text)).Background(color(tokens.Card)).Border(lipgloss.RoundedBorder()).BorderForeground(color(tokens.Primary)).Padding(0, 1),
		Drawer:       r.NewStyle().Foreground(color(tokens.Text)).Background(color(tokens.BackgroundSecondary)),
		DrawerItem:   r.NewStyle().Foreground(color(tokens.TextSecondary)).Padding(0, 1),
		DrawerActive: r.NewStyle().Foreground(color(tokens.Card)).Background(color(tokens.Primary)).Bold(true).Padding(0, 1),
		Tag:          r.NewStyle().Foreground(color(tokens.Primary)).Background(color(tokens.PrimaryLight)).Padding(0, 1),
		Link:         r.NewStyle().Foreground(color(tokens.Secondary)).Underline(true),
		LinkFocused:  r.NewStyle().Foreground(color(tokens.Card)).Background(color(tokens.Secondary)).Bold(true),
		Overlay:      r.NewStyle().Foreground(color(tokens.Text)).Background(color(tokens.Overlay)),
	}
}

// NewStyle returns an empty style bound to the styles' renderer.
func (s Styles) NewStyle() lipgloss.Style {
	if s.Renderer == nil {
		return lipgloss.NewStyle()
	}
	return s.Renderer.NewStyle()
}

package styles

import (
	"github.com/opencode-ai/folio/internal/colors"
	"github.com/opencode-ai/folio/internal/theme"
)

// Tokens are theme colours resolved to opaque hex values. Terminals have no
// alpha channel, so rgba tokens are composited over the theme background.
type Tokens struct {
	Primary      string
	PrimaryLight string
	PrimaryDark  string
	Secondary    string

	Background          string
	BackgroundSecondary string
	Card                string
	CardSecondary       string

	Text          string
	TextSecondary string
	TextTertiary  string

	Border      string
	BorderLight string

	Success string
	Warning string
	Error   string
	Overlay string

	PrimaryGradient    []string
	SecondaryGradient  []string
	BackgroundGradient []string
	CardGradient       []string
}

// Resolve flattens every colour of t into Tokens.
func Resolve(t theme.Theme) Tokens {
	c := t.Colors
	bg, ok := colors.Normalize(c.Background)
	if !ok {
		bg = "#000000"
		if !t.IsDark() {
			bg = "#ffffff"
		}
	}
	flat := func(color string) string {
		return colors.Flatten(color, bg)
	}
	stops := func(gradient []string) []string {
		clean := colors.SanitizeGradient(gradient)
		out := make([]string, len(clean))
		for i, stop := range clean {
			out[i] = flat(stop)
		}
		return out
	}

	return Tokens{
		Primary:             flat(c.Primary),
		PrimaryLight:        flat(c.PrimaryLight),
		PrimaryDark:         flat(c.PrimaryDark),
		Secondary:           flat(c.Secondary),
		Background:          bg,
		BackgroundSecondary: flat(c.BackgroundSecondary),
		Card:                flat(c.Card),
		CardSecondary:       flat(c.CardSecondary),
		Text:                flat(c.Text),
		TextSecondary:       flat(c.TextSecondary),
		TextTertiary:        flat(c.TextTertiary),
		Border:              flat(c.Border),
		BorderLight:         flat(c.BorderLight),
		Success:             flat(c.Success),
		Warning:             flat(c.Warning),
		Error:               flat(c.Error),
		Overlay:             flat(c.Overlay),
		PrimaryGradient:     stops(t.Gradients.Primary),
		SecondaryGradient:   stops(t.Gradients.Secondary),
		BackgroundGradient:  stops(t.Gradients.Background),
		CardGradient:        stops(t.Gradients.Card),
	}
}

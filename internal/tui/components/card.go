package components

import (
	"strings"

	"github.com/opencode-ai/folio/internal/tui/styles"
)

// Card contains data needed to render a content card.
type Card struct {
	Title    string
	Subtitle string
	Meta     []string // small print lines such as dates and locations
	Body     []string // paragraphs or bullet points
	Bullets  bool
	Tags     []string
	Links    []CardLink
	Note     string
	Focused  bool
}

// CardLink is a link row; Focused marks the link that `o` will open.
type CardLink struct {
	Label   string
	URL     string
	Focused bool
}

// RenderCard renders a bordered card at the given outer width.
func RenderCard(styleSet styles.Styles, card Card, width int) string {
	if width < 20 {
		width = 20
	}
	inner := width - 4

	var lines []string
	if card.Title != "" {
		lines = append(lines, styleSet.Heading.Width(inner).Render(card.Title))
	}
	if card.Subtitle != "" {
		lines = append(lines, styleSet.Text.Bold(true).Width(inner).Render(card.Subtitle))
	}
	for _, meta := range card.Meta {
		if strings.TrimSpace(meta) == "" {
			continue
		}
		lines = append(lines, styleSet.Tertiary.Width(inner).Render(meta))
	}

	if len(card.Body) > 0 {
		lines = append(lines, "")
		for _, paragraph := range card.Body {
			if card.Bullets {
				lines = append(lines, styleSet.Muted.Width(inner).Render("• "+paragraph))
				continue
			}
			lines = append(lines, styleSet.Muted.Width(inner).Render(paragraph))
		}
	}

	if card.Note != "" {
		lines = append(lines, "", styleSet.Warning.Italic(true).Width(inner).Render(card.Note))
	}

	if len(card.Tags) > 0 {
		lines = append(lines, "", RenderTags(styleSet, card.Tags, inner))
	}

	if len(card.Links) > 0 {
		lines = append(lines, "")
		for _, link := range card.Links {
			lines = append(lines, renderCardLink(styleSet, link, inner))
		}
	}

	cardStyle := styleSet.Card
	if card.Focused {
		cardStyle = styleSet.CardFocused
	}
	return cardStyle.Width(width - 2).Render(strings.Join(lines, "\n"))
}

func renderCardLink(styleSet styles.Styles, link CardLink, width int) string {
	label := link.Label
	if label == "" {
		label = link.URL
	}
	text := truncate(label+": "+link.URL, width-2)
	if link.Focused {
		return styleSet.LinkFocused.Render("› " + text)
	}
	return "  " + styleSet.Link.Render(text)
}

func truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 1 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-1]) + "…"
}

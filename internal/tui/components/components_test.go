package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/folio/internal/theme"
	"github.com/opencode-ai/folio/internal/tui/styles"
)

func TestRenderQuickActionBarSkipsDisabled(t *testing.T) {
	styleSet := styles.DefaultStyles()

	bar := RenderQuickActionBar(styleSet, ScreenQuickActions(false, false, false))
	if strings.Contains(bar, "Next link") {
		t.Errorf("expected link actions hidden without links, got: %s", bar)
	}
	if !strings.Contains(bar, "Dark mode") {
		t.Errorf("expected dark mode toggle label, got: %s", bar)
	}

	bar = RenderQuickActionBar(styleSet, ScreenQuickActions(true, true, true))
	for _, exp := range []string{"Light mode", "Next link", "Swatch", "Apply"} {
		if !strings.Contains(bar, exp) {
			t.Errorf("expected %q in bar, got: %s", exp, bar)
		}
	}

	if RenderQuickActionBar(styleSet, nil) != "" {
		t.Error("expected empty bar for no actions")
	}
}

func TestRenderTagsWraps(t *testing.T) {
	styleSet := styles.DefaultStyles()
	labels := []string{"React Native", "TypeScript", "Redux Toolkit", "Appium", "Maestro"}

	oneLine := RenderTags(styleSet, labels, 0)
	if strings.Count(oneLine, "\n") != 0 {
		t.Errorf("expected single line, got %q", oneLine)
	}

	wrapped := RenderTags(styleSet, labels, 30)
	for _, line := range strings.Split(wrapped, "\n") {
		if lipgloss.Width(line) > 30 {
			t.Errorf("line exceeds width: %q", line)
		}
	}
	if !strings.Contains(wrapped, "Maestro") {
		t.Errorf("expected every label, got %q", wrapped)
	}
}

func TestRenderCard(t *testing.T) {
	styleSet := styles.DefaultStyles()
	card := Card{
		Title:    "SDE3",
		Subtitle: "CARS24",
		Meta:     []string{"Feb 2023 - Present", ""},
		Body:     []string{"Led the discovery pod"},
		Bullets:  true,
		Tags:     []string{"Go"},
		Links:    []CardLink{{Label: "Live", URL: "https://xiitu.com/", Focused: true}},
		Note:     "International only",
	}

	out := RenderCard(styleSet, card, 60)
	for _, exp := range []string{"SDE3", "CARS24", "Feb 2023", "• Led the discovery pod", "Go", "› Live: https://xiitu.com/", "International only"} {
		if !strings.Contains(out, exp) {
			t.Errorf("expected %q in card, got:\n%s", exp, out)
		}
	}
	for _, line := range strings.Split(out, "\n") {
		if lipgloss.Width(line) > 60 {
			t.Errorf("card line exceeds width: %q", line)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("abcdef", 4); got != "abc…" {
		t.Errorf("unexpected truncate result %q", got)
	}
	if got := truncate("abc", 5); got != "abc" {
		t.Errorf("unexpected truncate result %q", got)
	}
	if got := truncate("abc", 0); got != "" {
		t.Errorf("unexpected truncate result %q", got)
	}
}

func TestGradientRenderers(t *testing.T) {
	styleSet := styles.DefaultStyles()
	stops := []string{"#7c3aed", "#a855f7"}

	if got := RenderGradientBar(styleSet, stops, 10); lipgloss.Width(got) != 10 {
		t.Errorf("expected bar width 10, got %d", lipgloss.Width(got))
	}
	if RenderGradientBar(styleSet, stops, 0) != "" {
		t.Error("expected empty bar for zero width")
	}
	if got := RenderGradientText(styleSet, "folio", stops, true); !strings.Contains(stripANSI(got), "folio") {
		t.Errorf("expected text preserved, got %q", got)
	}

	banner := RenderGradientBanner(styleSet, []string{"MT", "Manish"}, stops, 12, "#ffffff")
	lines := strings.Split(banner, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 banner lines, got %d", len(lines))
	}
	for _, line := range lines {
		if lipgloss.Width(line) != 12 {
			t.Errorf("expected banner width 12, got %d", lipgloss.Width(line))
		}
	}
}

func TestPaletteFilterAndMove(t *testing.T) {
	p := NewPalette([]PaletteItem{
		{Label: "Home", Target: 0},
		{Label: "Experience", Description: "4 roles", Keywords: []string{"cars24"}, Target: 1},
		{Label: "Skills", Target: 2},
	})

	p.Move(-1)
	if sel := p.Selected(); sel == nil || sel.Label != "Skills" {
		t.Fatalf("expected wrap to Skills, got %+v", sel)
	}

	p.SetQuery("cars")
	if sel := p.Selected(); sel == nil || sel.Target != 1 {
		t.Fatalf("expected keyword match on Experience, got %+v", sel)
	}

	p.SetQuery("nothing")
	if p.Selected() != nil {
		t.Error("expected no selection for unmatched query")
	}
	lines := p.Render(styles.DefaultStyles(), 40)
	if !strings.Contains(strings.Join(lines, "\n"), "No matches.") {
		t.Errorf("expected no matches line, got %v", lines)
	}

	p.Reset()
	if len(p.Filtered()) != 3 {
		t.Errorf("expected reset to clear query")
	}
}

func TestSwatchRow(t *testing.T) {
	row := SwatchRow{Swatches: theme.Palette(), Active: "#3498db"}

	row.Move(-1)
	if s, _ := row.Selected(); s.Name != "yellow" {
		t.Errorf("expected wrap to yellow, got %s", s.Name)
	}
	row.Move(2)
	if s, _ := row.Selected(); s.Name != "blue" {
		t.Errorf("expected blue, got %s", s.Name)
	}

	out := row.Render(styles.DefaultStyles())
	if !strings.Contains(out, "✓ blue") {
		t.Errorf("expected active marker on blue, got:\n%s", out)
	}

	empty := SwatchRow{}
	if _, ok := empty.Selected(); ok {
		t.Error("expected no selection on empty row")
	}
}

func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'):
			inEscape = false
		case !inEscape:
			b.WriteRune(r)
		}
	}
	return b.String()
}

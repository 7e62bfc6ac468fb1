package tui

import (
	"fmt"
	"strings"

	"github.com/76creates/stickers/flexbox"
	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/folio/internal/tui/components"
)

// buildLayout recreates the flexbox for the current drawer state.
func (m *model) buildLayout() {
	fb := flexbox.New(m.width, m.layoutHeight())
	m.contentCell = flexbox.NewCell(3, 1)
	if m.drawerOpen {
		m.drawerCell = flexbox.NewCell(1, 1)
		fb.AddRows([]*flexbox.Row{fb.NewRow().AddCells(m.drawerCell, m.contentCell)})
	} else {
		m.drawerCell = nil
		fb.AddRows([]*flexbox.Row{fb.NewRow().AddCells(m.contentCell)})
	}
	m.layout = fb
	m.styleLayout()
	m.refreshDrawer()
}

func (m *model) styleLayout() {
	bg := lipgloss.Color(m.styles.Tokens.Background)
	m.contentCell.SetStyle(m.styles.NewStyle().Background(bg).Foreground(lipgloss.Color(m.styles.Tokens.Text)))
	if m.drawerCell != nil {
		m.drawerCell.SetStyle(m.styles.Drawer)
	}
}

func (m *model) layoutHeight() int {
	h := m.height - lipgloss.Height(m.footer())
	if h < 1 {
		h = 1
	}
	return h
}

// resize recomputes the flexbox and viewport dimensions.
func (m *model) resize() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	m.help.Width = m.width
	m.layout.SetWidth(m.width)
	m.layout.SetHeight(m.layoutHeight())
	m.layout.ForceRecalculate()

	m.viewport.Width = m.contentWidth()
	m.viewport.Height = maxInt(m.contentCell.GetHeight()-2, 1)
	m.refreshContent()
	m.refreshDrawer()
}

func (m *model) contentWidth() int {
	w := m.contentCell.GetWidth() - 2
	if w <= 0 {
		w = m.width - 2
	}
	return maxInt(w, 20)
}

func (m *model) refreshDrawer() {
	if m.drawerCell == nil {
		return
	}
	m.drawerCell.SetContent(m.drawerView())
}

func (m *model) drawerView() string {
	width := m.drawerCell.GetWidth()
	if width <= 0 {
		width = 24
	}
	personal := m.portfolio.Personal
	header := components.RenderGradientBanner(
		m.styles,
		[]string{
			"",
			" " + personal.Initials(),
			" " + personal.Name,
			" " + personal.Title,
			"",
		},
		m.styles.Tokens.PrimaryGradient,
		width,
		m.styles.Tokens.Card,
	)

	lines := []string{header, ""}
	for d := destHome; d < destinationCount; d++ {
		label := fmt.Sprintf("%d %s %s", int(d)+1, d.Icon(), d.Label())
		switch {
		case d == m.dest:
			lines = append(lines, components.RenderGradientBanner(m.styles, []string{" " + label}, m.styles.Tokens.PrimaryGradient, width, m.styles.Tokens.Card))
		case d == m.drawerCursor && m.focus == focusDrawer:
			lines = append(lines, m.styles.Focus.Render("›"+label))
		default:
			lines = append(lines, m.styles.DrawerItem.Render(label))
		}
	}

	mode := "☀ Light"
	if m.store.Current().IsDark() {
		mode = "☾ Dark"
	}
	lines = append(lines, "", m.styles.Tertiary.Render(" "+mode+"  (t)"))
	return strings.Join(lines, "\n")
}

// refreshContent re-renders the active screen into the viewport.
func (m *model) refreshContent() {
	width := m.contentWidth()

	var body string
	offset := -1
	switch {
	case m.paletteOpen:
		body = strings.Join(m.palette.Render(m.styles, width), "\n")
	case m.dest == destTheme:
		body = m.themeView(width)
	default:
		body, offset = m.cardsView(width)
	}

	title := m.styles.Title.Render(screenTitle(m.dest, m.portfolio))
	if m.paletteOpen {
		title = m.styles.Title.Render("Go to")
	}
	if m.focus == focusContent {
		title = m.styles.Heading.Render("▌") + title
	}
	if m.contentCell != nil {
		m.contentCell.SetContent(padLeft(title) + "\n\n" + indent(m.viewportView(body, offset)))
	}
}

func (m *model) viewportView(body string, focusOffset int) string {
	m.viewport.SetContent(body)
	if focusOffset >= 0 && m.viewport.Height > 0 {
		if focusOffset < m.viewport.YOffset || focusOffset >= m.viewport.YOffset+m.viewport.Height {
			m.viewport.SetYOffset(focusOffset)
		}
	}
	return m.viewport.View()
}

// cardsView renders the destination cards and returns the line offset of
// the card holding the focused link, or -1.
func (m *model) cardsView(width int) (string, int) {
	cards := screenCards(m.dest, m.portfolio)
	if len(cards) == 0 && emptyFor(m.dest) {
		empty := components.EmptySection(m.dest.Label())
		if m.dest == destContact {
			empty = components.EmptyContact()
		}
		return empty.Render(m.styles), -1
	}
	focused := markFocusedLink(cards, m.linkIndex)

	var parts []string
	offset, line := -1, 0
	for i, card := range cards {
		rendered := components.RenderCard(m.styles, card, width)
		if i == focused {
			offset = line
		}
		parts = append(parts, rendered)
		line += lipgloss.Height(rendered)
	}
	return strings.Join(parts, "\n"), offset
}

func (m *model) themeView(width int) string {
	pref := m.store.Current()
	mode := "Light"
	if pref.IsDark() {
		mode = "Dark"
	}

	lines := []string{
		m.styles.Heading.Render("Appearance"),
		m.styles.Text.Render(fmt.Sprintf("Mode: %s", mode)) + "  " + m.styles.Tertiary.Render("press t to toggle"),
		"",
		m.styles.Heading.Render("Accent color"),
		m.swatches.Render(m.styles),
		m.styles.Tertiary.Render("←/→ choose, enter or space to apply"),
		"",
		m.styles.Heading.Render("Preview"),
		components.RenderGradientBar(m.styles, m.styles.Tokens.PrimaryGradient, width),
		components.RenderGradientText(m.styles, "Primary gradient", m.styles.Tokens.PrimaryGradient, true),
		components.RenderTags(m.styles, []string{"Primary " + m.styles.Tokens.Primary, "Dark " + m.styles.Tokens.PrimaryDark}, width),
		components.RenderCard(m.styles, components.Card{
			Title:    "Sample card",
			Subtitle: "Secondary text",
			Body:     []string{"Cards and borders follow the active theme."},
			Links:    []components.CardLink{{Label: "Link", URL: "https://example.com"}},
		}, minInt(width, 48)),
		"",
		m.styles.Tertiary.Render(fmt.Sprintf("Stored under %s (%s)", m.store.Key(), m.store.State())),
	}
	return strings.Join(lines, "\n")
}

func padLeft(s string) string {
	return " " + s
}

func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = " " + line
	}
	return strings.Join(lines, "\n")
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Package tui implements the folio terminal user interface.
package tui

import (
	"fmt"
	"time"

	"github.com/76creates/stickers/flexbox"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/folio/internal/content"
	"github.com/opencode-ai/folio/internal/links"
	"github.com/opencode-ai/folio/internal/logging"
	"github.com/opencode-ai/folio/internal/preferences"
	"github.com/opencode-ai/folio/internal/theme"
	"github.com/opencode-ai/folio/internal/tui/components"
	"github.com/opencode-ai/folio/internal/tui/splash"
	"github.com/opencode-ai/folio/internal/tui/styles"
)

// Config wires the TUI to its collaborators.
type Config struct {
	// Store holds the loaded theme preference. Load it before calling
	// NewModel so the first frame already uses the stored theme.
	Store     *preferences.Store
	Portfolio *content.Portfolio
	Opener    links.Opener
	// SplashDuration of zero skips the splash.
	SplashDuration time.Duration
	// Renderer is the session renderer for SSH clients; nil uses the
	// default renderer.
	Renderer *lipgloss.Renderer
}

// Run launches the folio TUI program.
func Run(cfg Config, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	program := tea.NewProgram(NewModel(cfg), opts...)
	_, err := program.Run()
	return err
}

type focusArea int

const (
	focusContent focusArea = iota
	focusDrawer
)

type model struct {
	store     *preferences.Store
	portfolio *content.Portfolio
	opener    links.Opener
	renderer  *lipgloss.Renderer

	width  int
	height int
	styles styles.Styles
	keys   keyMap
	help   help.Model

	splash     splash.Model
	showSplash bool

	dest         destination
	drawerCursor destination
	drawerOpen   bool
	focus        focusArea
	linkIndex    int

	swatches    components.SwatchRow
	palette     *components.Palette
	paletteOpen bool

	viewport    viewport.Model
	layout      *flexbox.FlexBox
	drawerCell  *flexbox.Cell
	contentCell *flexbox.Cell

	status string
}

const (
	minWidth  = 60
	minHeight = 15
)

// NewModel builds the root model. A nil store falls back to an in-memory
// store with light defaults; a nil portfolio renders empty screens.
func NewModel(cfg Config) tea.Model {
	return newModel(cfg)
}

func newModel(cfg Config) model {
	store := cfg.Store
	if store == nil {
		store = preferences.NewStore(preferences.NewMemory())
	}
	portfolio := cfg.Portfolio
	if portfolio == nil {
		portfolio = &content.Portfolio{}
	}
	opener := cfg.Opener
	if opener == nil {
		opener = links.Nop{}
	}
	renderer := cfg.Renderer
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}

	m := model{
		store:        store,
		portfolio:    portfolio,
		opener:       opener,
		renderer:     renderer,
		keys:         defaultKeyMap(),
		help:         help.New(),
		dest:         destHome,
		drawerCursor: destHome,
		drawerOpen:   true,
		focus:        focusDrawer,
		linkIndex:    -1,
		palette:      components.NewPalette(paletteItems(portfolio)),
		viewport:     viewport.New(0, 0),
	}
	m.swatches = components.SwatchRow{Swatches: theme.Palette()}
	m.applyTheme()
	if idx := theme.SwatchIndex(store.Current().AccentColor); idx >= 0 {
		m.swatches.Cursor = idx
	}

	m.splash = splash.New(m.styles, portfolio.Personal.Name, portfolio.Personal.Title, cfg.SplashDuration)
	m.showSplash = cfg.SplashDuration != 0
	m.buildLayout()
	m.refreshContent()
	return m
}

func (m model) Init() tea.Cmd {
	if !m.showSplash {
		return nil
	}
	return m.splash.Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.splash, _ = m.splash.Update(msg)
		m.resize()
		return m, nil
	case splash.DoneMsg:
		if msg.ID == m.splash.ID() {
			m.showSplash = false
		}
		return m, nil
	case PersistedMsg:
		if msg.Err != nil {
			logger := logging.Component("tui")
			logger.Warn().Err(msg.Err).Str("key", m.store.Key()).Msg("failed to persist theme preference")
		}
		return m, nil
	case LinkOpenedMsg:
		if msg.Err != nil {
			logger := logging.Component("tui")
			logger.Warn().Err(msg.Err).Str("url", msg.URL).Msg("failed to open link")
			m.status = fmt.Sprintf("Could not open %s", msg.URL)
		} else {
			m.status = fmt.Sprintf("Opened %s", msg.URL)
		}
		return m, nil
	case tea.KeyMsg:
		if m.showSplash {
			if key.Matches(msg, m.keys.Quit) {
				return m, tea.Quit
			}
			return m, nil
		}
		if m.paletteOpen {
			return m.updatePalette(msg)
		}
		return m.updateKeys(msg)
	}

	if m.showSplash {
		var cmd tea.Cmd
		m.splash, cmd = m.splash.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
		return m, nil
	case key.Matches(msg, m.keys.Mode):
		pref := m.store.ToggleMode()
		m.applyTheme()
		m.refreshContent()
		return m, persistCmd(m.store, pref)
	case key.Matches(msg, m.keys.GoTo):
		m.paletteOpen = true
		m.palette.Reset()
		m.refreshContent()
		return m, nil
	case key.Matches(msg, m.keys.Focus):
		if m.focus == focusDrawer {
			m.focus = focusContent
		} else {
			m.focus = focusDrawer
			if !m.drawerOpen {
				m.drawerOpen = true
				m.buildLayout()
				m.resize()
			}
		}
		m.refreshDrawer()
		return m, nil
	case key.Matches(msg, m.keys.Drawer):
		m.drawerOpen = !m.drawerOpen
		if m.drawerOpen {
			m.focus = focusDrawer
			m.drawerCursor = m.dest
		} else {
			m.focus = focusContent
		}
		m.buildLayout()
		m.resize()
		return m, nil
	case key.Matches(msg, m.keys.Jump):
		if d, ok := destinationFromKey(msg.String()); ok {
			m.focus = focusContent
			m.navigate(d)
		}
		return m, nil
	case key.Matches(msg, m.keys.NextLink):
		m.cycleLink(1)
		return m, nil
	case key.Matches(msg, m.keys.PrevLink):
		m.cycleLink(-1)
		return m, nil
	case key.Matches(msg, m.keys.Open):
		return m.openFocusedLink()
	}

	if m.focus == focusDrawer && m.drawerOpen {
		switch {
		case key.Matches(msg, m.keys.Up):
			m.drawerCursor = (m.drawerCursor + destinationCount - 1) % destinationCount
			m.refreshDrawer()
		case key.Matches(msg, m.keys.Down):
			m.drawerCursor = (m.drawerCursor + 1) % destinationCount
			m.refreshDrawer()
		case key.Matches(msg, m.keys.Select):
			m.navigate(m.drawerCursor)
			m.focus = focusContent
			m.refreshDrawer()
		}
		return m, nil
	}

	if m.dest == destTheme {
		switch {
		case key.Matches(msg, m.keys.Left):
			m.swatches.Move(-1)
			m.refreshContent()
			return m, nil
		case key.Matches(msg, m.keys.Right):
			m.swatches.Move(1)
			m.refreshContent()
			return m, nil
		case key.Matches(msg, m.keys.Apply):
			return m.applySwatch()
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m model) updatePalette(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.paletteOpen = false
	case tea.KeyEnter:
		if selected := m.palette.Selected(); selected != nil {
			m.paletteOpen = false
			m.navigate(destination(selected.Target))
			m.focus = focusContent
			m.refreshDrawer()
			return m, nil
		}
	case tea.KeyUp:
		m.palette.Move(-1)
	case tea.KeyDown, tea.KeyTab:
		m.palette.Move(1)
	case tea.KeyBackspace:
		if q := []rune(m.palette.Query); len(q) > 0 {
			m.palette.SetQuery(string(q[:len(q)-1]))
		}
	case tea.KeySpace:
		m.palette.SetQuery(m.palette.Query + " ")
	case tea.KeyRunes:
		m.palette.SetQuery(m.palette.Query + string(msg.Runes))
	}
	m.refreshContent()
	return m, nil
}

// applySwatch sets the accent under the cursor. The theme is rebuilt
// before the persist command is returned.
func (m model) applySwatch() (tea.Model, tea.Cmd) {
	swatch, ok := m.swatches.Selected()
	if !ok {
		return m, nil
	}
	pref, changed := m.store.SetAccentColor(swatch.Color)
	if !changed {
		return m, nil
	}
	m.applyTheme()
	m.status = fmt.Sprintf("Accent set to %s", swatch.Name)
	m.refreshContent()
	return m, persistCmd(m.store, pref)
}

func (m model) openFocusedLink() (tea.Model, tea.Cmd) {
	cards := screenCards(m.dest, m.portfolio)
	all := screenLinks(cards)
	if len(all) == 0 {
		m.status = components.EmptyLinks().Title
		return m, nil
	}
	if m.linkIndex < 0 || m.linkIndex >= len(all) {
		m.status = "Press n to choose a link."
		return m, nil
	}
	target := all[m.linkIndex].URL
	m.status = fmt.Sprintf("Opening %s…", target)
	return m, openLinkCmd(m.opener, target)
}

func (m *model) cycleLink(delta int) {
	all := screenLinks(screenCards(m.dest, m.portfolio))
	if len(all) == 0 {
		m.linkIndex = -1
		m.status = components.EmptyLinks().Title
		return
	}
	if m.linkIndex < 0 {
		if delta > 0 {
			m.linkIndex = 0
		} else {
			m.linkIndex = len(all) - 1
		}
	} else {
		m.linkIndex = (m.linkIndex + delta + len(all)) % len(all)
	}
	m.refreshContent()
}

func (m *model) navigate(d destination) {
	if d < 0 || d >= destinationCount {
		return
	}
	m.dest = d
	m.drawerCursor = d
	m.linkIndex = -1
	m.status = ""
	if d == destTheme {
		if idx := theme.SwatchIndex(m.store.Current().AccentColor); idx >= 0 {
			m.swatches.Cursor = idx
		}
	}
	m.viewport.GotoTop()
	m.refreshContent()
	m.refreshDrawer()
}

// applyTheme rebuilds every style from the store's current preference.
func (m *model) applyTheme() {
	m.styles = styles.BuildStylesWithRenderer(m.renderer, m.store.Theme())
	m.swatches.Active = m.store.Current().AccentColor
	m.splash = m.splash.SetStyles(m.styles)

	m.help.Styles.ShortKey = m.styles.Accent.Bold(true)
	m.help.Styles.ShortDesc = m.styles.Muted
	m.help.Styles.ShortSeparator = m.styles.Tertiary
	m.help.Styles.FullKey = m.styles.Accent.Bold(true)
	m.help.Styles.FullDesc = m.styles.Muted
	m.help.Styles.FullSeparator = m.styles.Tertiary
	m.help.Styles.Ellipsis = m.styles.Tertiary

	if m.layout != nil {
		m.styleLayout()
		m.refreshDrawer()
	}
}

func (m model) View() string {
	if m.width > 0 && m.height > 0 {
		if m.width < minWidth || m.height < minHeight {
			return fmt.Sprintf("%s\n", joinLines(m.smallViewLines()))
		}
	}

	if m.showSplash {
		return m.styles.App.Render(m.splash.View())
	}

	if m.width == 0 || m.height == 0 {
		return joinLines([]string{
			m.styles.Title.Render(m.portfolio.Personal.Name),
			m.styles.Muted.Render("Loading…"),
		})
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.layout.Render(), m.footer())
}

func (m model) smallViewLines() []string {
	message := fmt.Sprintf("Terminal too small (%dx%d).", m.width, m.height)
	hint := fmt.Sprintf("Resize to at least %dx%d.", minWidth, minHeight)

	return []string{
		m.styles.Warning.Render(message),
		m.styles.Muted.Render(hint),
		m.styles.Muted.Render("Press q to quit."),
	}
}

func (m model) footer() string {
	if m.help.ShowAll {
		return m.help.View(m.keys)
	}
	hasLinks := len(screenLinks(screenCards(m.dest, m.portfolio))) > 0
	bar := components.RenderQuickActionBar(m.styles, components.ScreenQuickActions(m.store.Current().IsDark(), hasLinks, m.dest == destTheme))
	if m.status != "" {
		bar = m.styles.Success.Render(m.status) + "  " + bar
	}
	return m.styles.NewStyle().MaxWidth(m.width).Render(bar)
}

// Package splash implements the timed intro screen shown before the
// navigator.
package splash

import (
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/folio/internal/tui/styles"
)

const (
	// DefaultDuration is how long the splash stays up.
	DefaultDuration = 3 * time.Second

	frameInterval = 120 * time.Millisecond
)

var (
	lastID atomic.Int64
	glyphs = []string{"◐", "◓", "◑", "◒"}
)

// DoneMsg is sent once when the splash duration has elapsed.
type DoneMsg struct {
	ID int64
}

type timeoutMsg struct {
	id int64
}

type frameMsg struct {
	id  int64
	now time.Time
}

// Model is the splash screen. Each Model gets its own id so timer messages
// from a previous splash never complete a new one.
type Model struct {
	id       int64
	duration time.Duration
	started  time.Time
	now      time.Time
	frame    int
	done     bool

	name    string
	title   string
	width   int
	height  int
	styles  styles.Styles
	bar     progress.Model
	clockFn func() time.Time
}

// Option customises a Model.
type Option func(*Model)

// WithClock overrides time.Now.
func WithClock(fn func() time.Time) Option {
	return func(m *Model) {
		if fn != nil {
			m.clockFn = fn
		}
	}
}

// New creates a splash for the person named name. A negative duration
// falls back to DefaultDuration; zero skips the splash entirely.
func New(styleSet styles.Styles, name, title string, duration time.Duration, opts ...Option) Model {
	if duration < 0 {
		duration = DefaultDuration
	}
	m := Model{
		id:       lastID.Add(1),
		duration: duration,
		name:     name,
		title:    title,
		clockFn:  time.Now,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.started = m.clockFn()
	m.now = m.started
	return m.SetStyles(styleSet)
}

// ID returns the splash identifier carried by its DoneMsg.
func (m Model) ID() int64 { return m.id }

// Done reports whether DoneMsg has been emitted.
func (m Model) Done() bool { return m.done }

// Duration returns the configured duration.
func (m Model) Duration() time.Duration { return m.duration }

// SetStyles rebuilds the progress bar for a new theme.
func (m Model) SetStyles(styleSet styles.Styles) Model {
	m.styles = styleSet
	stops := styleSet.Tokens.PrimaryGradient
	if len(stops) < 2 {
		stops = []string{styleSet.Tokens.PrimaryDark, styleSet.Tokens.Primary}
	}
	width := 40
	if m.bar.Width > 0 {
		width = m.bar.Width
	}
	m.bar = progress.New(
		progress.WithGradient(stops[0], stops[len(stops)-1]),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)
	m.bar.EmptyColor = styleSet.Tokens.Border
	return m
}

// Init starts the completion timer and the frame ticker.
func (m Model) Init() tea.Cmd {
	if m.duration == 0 {
		id := m.id
		return func() tea.Msg { return timeoutMsg{id: id} }
	}
	return tea.Batch(timeoutCmd(m.id, m.duration), frameCmd(m.id))
}

// Update handles timer and resize messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		barWidth := msg.Width / 2
		if barWidth < 10 {
			barWidth = 10
		}
		if barWidth > 60 {
			barWidth = 60
		}
		m.bar.Width = barWidth
	case timeoutMsg:
		if msg.id != m.id || m.done {
			return m, nil
		}
		m.done = true
		id := m.id
		return m, func() tea.Msg { return DoneMsg{ID: id} }
	case frameMsg:
		if msg.id != m.id || m.done {
			return m, nil
		}
		m.frame++
		m.now = msg.now
		return m, frameCmd(m.id)
	}
	return m, nil
}

// Progress returns the elapsed fraction in [0, 1].
func (m Model) Progress() float64 {
	if m.done || m.duration <= 0 {
		return 1
	}
	pct := float64(m.now.Sub(m.started)) / float64(m.duration)
	if pct < 0 {
		return 0
	}
	if pct > 1 {
		return 1
	}
	return pct
}

// View renders the centred splash.
func (m Model) View() string {
	first, last := splitName(m.name)
	glyph := glyphs[m.frame%len(glyphs)]

	lines := []string{
		m.styles.Accent.Render(glyph),
		"",
		m.styles.Title.Render(spaced(strings.ToUpper(first))),
	}
	if last != "" {
		lines = append(lines, m.styles.Heading.Render(spaced(strings.ToUpper(last))))
	}
	if m.title != "" {
		lines = append(lines, m.styles.Tertiary.Render(m.title))
	}
	lines = append(lines, "", m.bar.ViewAs(m.Progress()))

	body := lipgloss.JoinVertical(lipgloss.Center, lines...)
	if m.width <= 0 || m.height <= 0 {
		return body
	}
	if m.styles.Renderer == nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
	}
	return m.styles.Renderer.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

func timeoutCmd(id int64, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return timeoutMsg{id: id} })
}

func frameCmd(id int64) tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg{id: id, now: t} })
}

func splitName(name string) (string, string) {
	fields := strings.Fields(name)
	switch len(fields) {
	case 0:
		return "", ""
	case 1:
		return fields[0], ""
	default:
		return fields[0], strings.Join(fields[1:], " ")
	}
}

func spaced(s string) string {
	return strings.Join(strings.Split(s, ""), " ")
}

package components

import (
	"fmt"
	"strings"

	"github.com/opencode-ai/folio/internal/tui/styles"
)

// QuickAction represents a keyboard-triggered action.
type QuickAction struct {
	Key     string // Keyboard key (e.g., "t", "o")
	Label   string // Display label (e.g., "Dark mode", "Open")
	Enabled bool   // Whether the action is available
}

// RenderQuickActionBar renders a horizontal bar of available quick actions.
// Format: "t:Dark mode  n:Next link  o:Open"
func RenderQuickActionBar(styleSet styles.Styles, actions []QuickAction) string {
	if len(actions) == 0 {
		return ""
	}

	var parts []string
	for _, action := range actions {
		if !action.Enabled {
			continue
		}
		keyStyle := styleSet.Accent.Bold(true)
		part := fmt.Sprintf("%s:%s", keyStyle.Render(action.Key), styleSet.Muted.Render(action.Label))
		parts = append(parts, part)
	}

	if len(parts) == 0 {
		return ""
	}

	return strings.Join(parts, "  ")
}

// ScreenQuickActions returns the footer actions for a screen.
func ScreenQuickActions(isDark, hasLinks, themeScreen bool) []QuickAction {
	modeLabel := "Dark mode"
	if isDark {
		modeLabel = "Light mode"
	}

	actions := []QuickAction{
		{Key: "tab", Label: "Focus", Enabled: true},
		{Key: "m", Label: "Menu", Enabled: true},
		{Key: "t", Label: modeLabel, Enabled: true},
		{Key: "n", Label: "Next link", Enabled: hasLinks},
		{Key: "o", Label: "Open", Enabled: hasLinks},
	}
	if themeScreen {
		actions = append(actions,
			QuickAction{Key: "←/→", Label: "Swatch", Enabled: true},
			QuickAction{Key: "enter", Label: "Apply", Enabled: true},
		)
	}
	return append(actions,
		QuickAction{Key: "?", Label: "Help", Enabled: true},
		QuickAction{Key: "q", Label: "Quit", Enabled: true},
	)
}

// Package components provides reusable TUI components.
package components

import (
	"fmt"
	"strings"

	"github.com/opencode-ai/folio/internal/tui/styles"
)

// EmptyState represents an empty state message with optional suggestions.
type EmptyState struct {
	// Icon is an optional icon to display (e.g., "📭", "🔍").
	Icon string
	// Title is the main empty state message.
	Title string
	// Subtitle is an optional secondary message.
	Subtitle string
	// Suggestions are actionable commands the user can run.
	Suggestions []Suggestion
}

// Suggestion represents a suggested command with description.
type Suggestion struct {
	// Command is the CLI command or key to use (e.g., "folio export").
	Command string
	// Description explains what the command does.
	Description string
}

// Render renders the empty state with the given styles.
func (e EmptyState) Render(styleSet styles.Styles) string {
	var lines []string

	titleLine := e.Title
	if e.Icon != "" {
		titleLine = e.Icon + "  " + titleLine
	}
	lines = append(lines, styleSet.Muted.Render(titleLine))

	if e.Subtitle != "" {
		lines = append(lines, styleSet.Tertiary.Render(e.Subtitle))
	}

	if len(e.Suggestions) > 0 {
		lines = append(lines, "")
		lines = append(lines, styleSet.Text.Render("Get started:"))
		for _, s := range e.Suggestions {
			cmdLine := fmt.Sprintf("  %s", styleSet.Accent.Render(s.Command))
			if s.Description != "" {
				cmdLine += styleSet.Muted.Render(fmt.Sprintf("  # %s", s.Description))
			}
			lines = append(lines, cmdLine)
		}
	}

	return strings.Join(lines, "\n")
}

// EmptySection returns the empty state for a content section with no entries.
func EmptySection(section string) EmptyState {
	return EmptyState{
		Icon:     "📭",
		Title:    fmt.Sprintf("No %s yet", strings.ToLower(section)),
		Subtitle: "This section is empty in the loaded portfolio.",
		Suggestions: []Suggestion{
			{Command: "folio --config <file>", Description: "point content.file at your own portfolio.yaml"},
		},
	}
}

// EmptyContact returns the empty state for a portfolio without contact details.
func EmptyContact() EmptyState {
	return EmptyState{
		Icon:     "✉️",
		Title:    "No contact details",
		Subtitle: "Add an email or social links under personal in portfolio.yaml.",
	}
}

// EmptyLinks returns the hint shown when a screen has nothing to open.
func EmptyLinks() EmptyState {
	return EmptyState{
		Icon:  "🔗",
		Title: "No links on this screen",
	}
}

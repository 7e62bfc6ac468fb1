package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/opencode-ai/folio/internal/links"
	"github.com/opencode-ai/folio/internal/preferences"
)

const (
	persistTimeout = 5 * time.Second
	openTimeout    = 5 * time.Second
)

// PersistedMsg reports the outcome of writing a preference.
type PersistedMsg struct {
	Preference preferences.Preference
	Err        error
}

// LinkOpenedMsg reports the outcome of opening a link.
type LinkOpenedMsg struct {
	URL string
	Err error
}

// persistCmd writes pref in the background. The theme has already been
// applied by the time this runs.
func persistCmd(store *preferences.Store, pref preferences.Preference) tea.Cmd {
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		return PersistedMsg{Preference: pref, Err: store.Persist(ctx, pref)}
	}
}

func openLinkCmd(opener links.Opener, url string) tea.Cmd {
	if opener == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), openTimeout)
		defer cancel()
		return LinkOpenedMsg{URL: url, Err: opener.Open(ctx, url)}
	}
}

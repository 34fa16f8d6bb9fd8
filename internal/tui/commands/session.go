// Package commands provides Bubble Tea commands for TUI operations.
package commands

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/scrapline-dev/scrapline/internal/store"
	"github.com/scrapline-dev/scrapline/internal/tui"
)

// splashDelay keeps the splash visible long enough to read even when the
// durability read is instant.
const splashDelay = 500 * time.Millisecond

// RestoreSessionCmd loads the persisted session and reports back so the
// splash screen can route to login or dashboard.
func RestoreSessionCmd(st *store.Store) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		_ = st.RestoreSession() // absent or malformed means logged out
		if d := splashDelay - time.Since(start); d > 0 {
			time.Sleep(d)
		}
		return tui.SessionRestoredMsg{Session: st.Session()}
	}
}

// LogoutCmd deletes the persisted session and clears the in-memory one.
func LogoutCmd(st *store.Store) tea.Cmd {
	return func() tea.Msg {
		return tui.LogoutDoneMsg{Err: st.Logout()}
	}
}

package commands

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/scrapline-dev/scrapline/internal/otp"
	"github.com/scrapline-dev/scrapline/internal/tui"
)

// RunOtpCmd adapts an automaton command into a Bubble Tea command. The
// automaton's own token guard handles stale results, so the adapter stays
// dumb: run it, deliver the event.
func RunOtpCmd(cmd otp.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	return func() tea.Msg {
		return tui.OtpEventMsg{Event: cmd()}
	}
}

// TickCmd schedules the next countdown tick one second out.
func TickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tui.TickMsg(t)
	})
}

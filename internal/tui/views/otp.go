package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/scrapline-dev/scrapline/internal/otp"
	"github.com/scrapline-dev/scrapline/internal/tui"
	"github.com/scrapline-dev/scrapline/internal/tui/commands"
)

// OtpModel is the view model for the OTP verification screen. All state
// lives in the automaton; the view only translates keys into automaton
// actions and renders its snapshot.
type OtpModel struct {
	automaton *otp.Automaton
	spinner   spinner.Model
	width     int
	height    int
}

// NewOtpModel creates a new OtpModel around an automaton constructed for
// this verification session.
func NewOtpModel(a *otp.Automaton, width, height int) OtpModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#38A169"))

	return OtpModel{
		automaton: a,
		spinner:   s,
		width:     width,
		height:    height,
	}
}

// Init starts the countdown tick loop.
func (m OtpModel) Init() tea.Cmd {
	return tea.Batch(commands.TickCmd(), m.spinner.Tick)
}

// Close tears the automaton down when navigation leaves the screen.
func (m OtpModel) Close() {
	m.automaton.Close()
}

// Update handles messages for the OTP view.
func (m OtpModel) Update(msg tea.Msg) (OtpModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case tui.KeyEsc:
			m.automaton.Close()
			return m, func() tea.Msg { return tui.OtpCancelledMsg{} }

		case tui.KeyBackspace:
			m.automaton.Backspace()
			return m, nil

		case tui.KeyEnter:
			return m, commands.RunOtpCmd(m.automaton.Verify())

		case "r":
			return m, commands.RunOtpCmd(m.automaton.Resend())
		}

		if len(msg.Runes) == 1 {
			return m, commands.RunOtpCmd(m.automaton.Input(msg.Runes[0]))
		}
		return m, nil

	case tui.TickMsg:
		m.automaton.Tick()
		return m, commands.TickCmd()

	case tui.OtpEventMsg:
		follow := commands.RunOtpCmd(m.automaton.Apply(msg.Event))
		if m.automaton.Phase() == otp.PhaseSucceeded {
			return m, func() tea.Msg { return tui.NavigateMsg{To: tui.StateDashboard} }
		}
		return m, follow

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

// View renders the OTP view.
func (m OtpModel) View() string {
	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render("Verify OTP"))
	b.WriteString("\n")
	b.WriteString(tui.DimStyle.Render(fmt.Sprintf("Enter the %d-digit code sent to", len(m.automaton.Digits()))))
	b.WriteString("\n")
	b.WriteString(tui.PhoneStyle.Render("+91 " + m.automaton.PhoneNumber()))
	b.WriteString("\n\n")

	b.WriteString(m.renderDigits())
	b.WriteString("\n\n")

	if msg := m.automaton.Message(); msg != "" {
		b.WriteString(tui.ErrorBoxStyle.Render(msg))
		b.WriteString("\n\n")
	}

	switch {
	case m.automaton.Phase() == otp.PhaseSubmitting:
		b.WriteString(m.spinner.View())
		b.WriteString(" Verifying...")
	case m.automaton.Resending():
		b.WriteString(m.spinner.View())
		b.WriteString(" Resending...")
	case m.automaton.CanResend():
		b.WriteString("Didn't receive the code? ")
		b.WriteString(tui.SelectedStyle.Render("Press r to resend"))
	default:
		b.WriteString(tui.DimStyle.Render(fmt.Sprintf("Didn't receive the code? Resend in %ds", m.automaton.Remaining())))
	}
	b.WriteString("\n\n")

	b.WriteString(tui.DimStyle.Render("Enter: Verify       Esc: Back to login"))

	return tui.BoxStyle.Render(b.String())
}

// renderDigits draws one box per digit slot, highlighting the focused one.
func (m OtpModel) renderDigits() string {
	digits := m.automaton.Digits()
	focus := m.automaton.Focus()

	boxes := make([]string, len(digits))
	for i, d := range digits {
		if d == "" {
			d = " "
		}
		style := tui.OtpBoxStyle
		if i == focus && m.automaton.Phase() != otp.PhaseSucceeded {
			style = tui.OtpBoxFocusedStyle
		}
		boxes[i] = style.Render(d)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, boxes...)
}

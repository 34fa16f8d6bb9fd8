package views

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/scrapline-dev/scrapline/internal/tui"
)

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

// LoginModel is the view model for the phone-number entry screen.
type LoginModel struct {
	phoneInput textinput.Model
	errMsg     string
	width      int
	height     int
}

// NewLoginModel creates a new LoginModel.
func NewLoginModel(width, height int) LoginModel {
	ti := textinput.New()
	ti.Placeholder = "10-digit phone number"
	ti.CharLimit = 10
	ti.Width = 24
	ti.Focus()

	return LoginModel{
		phoneInput: ti,
		width:      width,
		height:     height,
	}
}

// Init returns the initial command for the login view.
func (m LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the login view.
func (m LoginModel) Update(msg tea.Msg) (LoginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == tui.KeyEnter {
			phone := strings.TrimSpace(m.phoneInput.Value())
			if phone == "" {
				m.errMsg = "Please enter your phone number"
				return m, nil
			}
			if !phonePattern.MatchString(phone) {
				m.errMsg = "Please enter a valid 10-digit phone number"
				return m, nil
			}
			m.errMsg = ""
			return m, func() tea.Msg {
				return tui.SubmitPhoneMsg{PhoneNumber: phone}
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	var cmd tea.Cmd
	m.phoneInput, cmd = m.phoneInput.Update(msg)
	return m, cmd
}

// View renders the login view.
func (m LoginModel) View() string {
	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render("Welcome to Scrapline"))
	b.WriteString("\n")
	b.WriteString(tui.DimStyle.Render("Enter your phone number to get started"))
	b.WriteString("\n\n")
	b.WriteString("+91 ")
	b.WriteString(m.phoneInput.View())
	b.WriteString("\n\n")

	if m.errMsg != "" {
		b.WriteString(tui.ErrorStyle.Render(m.errMsg))
		b.WriteString("\n\n")
	}

	b.WriteString(tui.DimStyle.Render("Enter: Send OTP       Ctrl+C: Exit"))

	return tui.BoxStyle.Render(b.String())
}

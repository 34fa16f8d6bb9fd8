// Package views provides TUI view components for the scrapline application.
package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/scrapline-dev/scrapline/internal/tui"
)

// SplashModel is the view model for the startup screen shown while the
// persisted session is restored.
type SplashModel struct {
	spinner spinner.Model
	width   int
	height  int
}

// NewSplashModel creates a new SplashModel.
func NewSplashModel(width, height int) SplashModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#38A169"))

	return SplashModel{
		spinner: s,
		width:   width,
		height:  height,
	}
}

// Init returns the initial command for the splash view.
func (m SplashModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles messages for the splash view.
func (m SplashModel) Update(msg tea.Msg) (SplashModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

// View renders the splash view.
func (m SplashModel) View() string {
	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render("Scrapline"))
	b.WriteString("\n")
	b.WriteString(tui.DimStyle.Render("Scrap pickups, scheduled from your terminal"))
	b.WriteString("\n\n")
	b.WriteString(m.spinner.View())
	b.WriteString(" Loading your session...")

	return tui.BoxStyle.Render(b.String())
}

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/scrapline-dev/scrapline/internal/store"
)

// Color constants matching the app's green theme.
const (
	primaryColor   = "#38A169" // Green
	darkColor      = "#2E7D32" // Dark green
	warningColor   = "#F59E0B" // Amber
	errorColor     = "#EF4444" // Red
	dimColor       = "#6B7280" // Gray
	infoColor      = "#2196F3" // Blue
	approvalColor  = "#9C27B0" // Purple
	pendingColor   = "#FF5722" // Deep orange
	inProcessColor = "#FF9800" // Orange
)

// Style variables for consistent TUI rendering.
var (
	// BoxStyle provides a rounded border box with primary color.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(primaryColor)).
			Padding(1, 2)

	// TitleStyle renders titles in primary color with bold.
	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(primaryColor)).
			Bold(true)

	// SelectedStyle highlights selected items.
	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(primaryColor)).
			Bold(true)

	// DimStyle renders dim/muted text.
	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(dimColor))

	// ErrorStyle renders error messages in red.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(errorColor))

	// ErrorBoxStyle renders the error banner under the OTP boxes.
	ErrorBoxStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#B91C1C")).
			Background(lipgloss.Color("#FEE2E2")).
			Padding(0, 2)

	// SuccessStyle renders success messages in green.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(primaryColor))

	// PhoneStyle renders phone numbers prominently.
	PhoneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(primaryColor)).
			Bold(true)

	// OtpBoxStyle renders one OTP digit slot.
	OtpBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#CBD5E0")).
			Padding(0, 1).
			Bold(true)

	// OtpBoxFocusedStyle renders the focused OTP digit slot.
	OtpBoxFocusedStyle = OtpBoxStyle.
				BorderForeground(lipgloss.Color(primaryColor))
)

// statusColors maps order statuses to their badge colors.
var statusColors = map[store.OrderStatus]string{
	store.StatusCompleted:          primaryColor,
	store.StatusAccepted:           infoColor,
	store.StatusInProcess:          inProcessColor,
	store.StatusPendingForApproval: approvalColor,
	store.StatusPending:            pendingColor,
}

// StatusStyle returns a style for rendering the given order status.
func StatusStyle(s store.OrderStatus) lipgloss.Style {
	color, ok := statusColors[s]
	if !ok {
		color = dimColor
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true)
}

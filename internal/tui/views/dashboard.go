package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/scrapline-dev/scrapline/internal/store"
	"github.com/scrapline-dev/scrapline/internal/tui"
)

// DashboardModel is the view model for the authenticated home screen.
type DashboardModel struct {
	store  *store.Store
	width  int
	height int
}

// NewDashboardModel creates a new DashboardModel.
func NewDashboardModel(st *store.Store, width, height int) DashboardModel {
	return DashboardModel{
		store:  st,
		width:  width,
		height: height,
	}
}

// Init returns the initial command for the dashboard view.
func (m DashboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the dashboard view.
func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "s":
			return m, func() tea.Msg { return tui.NavigateMsg{To: tui.StateSchedule} }
		case "h":
			return m, func() tea.Msg { return tui.NavigateMsg{To: tui.StateHistory} }
		case "l":
			return m, func() tea.Msg { return tui.LogoutRequestMsg{} }
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// View renders the dashboard view.
func (m DashboardModel) View() string {
	var b strings.Builder

	sess := m.store.Session()
	phone := ""
	if sess != nil {
		phone = sess.PhoneNumber
	}

	b.WriteString(tui.TitleStyle.Render("Scrapline"))
	b.WriteString("  ")
	b.WriteString(tui.DimStyle.Render("+91 " + phone))
	b.WriteString("\n\n")

	b.WriteString("Recent Pickups\n\n")

	recent := m.store.RecentOrders(0)
	if len(recent) == 0 {
		b.WriteString(tui.DimStyle.Render("No pickups yet. Press s to schedule your first one."))
		b.WriteString("\n")
	}
	for _, o := range recent {
		b.WriteString(renderOrderLine(o))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(tui.DimStyle.Render("s: Schedule pickup   h: Order history   l: Logout   Ctrl+C: Exit"))

	return tui.BoxStyle.Render(b.String())
}

// renderOrderLine renders one order as a single summary line.
func renderOrderLine(o store.PickupOrder) string {
	status := tui.StatusStyle(o.Status).Render(string(o.Status))
	return fmt.Sprintf("  %s  %-10s  %-22s %s", status, o.Date, truncate(o.Address, 22), tui.DimStyle.Render(o.TimeSlot))
}

// truncate shortens s to max runes with an ellipsis.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}

package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/scrapline-dev/scrapline/internal/store"
	"github.com/scrapline-dev/scrapline/internal/tui"
)

// HistoryModel is the view model for the order history screen.
type HistoryModel struct {
	store    *store.Store
	cursor   int
	expanded bool
	width    int
	height   int
}

// NewHistoryModel creates a new HistoryModel.
func NewHistoryModel(st *store.Store, width, height int) HistoryModel {
	return HistoryModel{
		store:  st,
		width:  width,
		height: height,
	}
}

// Init returns the initial command for the history view.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history view.
func (m HistoryModel) Update(msg tea.Msg) (HistoryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		orders := m.store.Snapshot().Orders

		switch msg.String() {
		case tui.KeyEsc:
			return m, func() tea.Msg { return tui.NavigateMsg{To: tui.StateDashboard} }

		case tui.KeyUp, "k":
			if m.cursor > 0 {
				m.cursor--
			}

		case tui.KeyDown, "j":
			if m.cursor < len(orders)-1 {
				m.cursor++
			}

		case tui.KeyEnter:
			m.expanded = !m.expanded

		case "a":
			// Walk the selected order one step along the happy path.
			if m.cursor < len(orders) {
				o := orders[m.cursor]
				next := store.NextStatus(o.Status)
				if next != o.Status {
					_ = m.store.TransitionStatus(o.ID, next)
				}
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// View renders the history view.
func (m HistoryModel) View() string {
	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render("Order History"))
	b.WriteString("\n\n")

	orders := m.store.Snapshot().Orders
	if len(orders) == 0 {
		b.WriteString(tui.DimStyle.Render("No pickups scheduled yet."))
		b.WriteString("\n")
	}

	for i, o := range orders {
		marker := "  "
		if i == m.cursor {
			marker = tui.SelectedStyle.Render("> ")
		}
		b.WriteString(marker)
		b.WriteString(renderOrderLine(o))
		b.WriteString("\n")

		if i == m.cursor && m.expanded {
			b.WriteString(m.renderDetail(o))
		}
	}

	b.WriteString("\n")
	b.WriteString(tui.DimStyle.Render("↑/↓: Select   Enter: Details   a: Advance status   Esc: Back"))

	return tui.BoxStyle.Render(b.String())
}

// renderDetail renders the expanded body of the selected order.
func (m HistoryModel) renderDetail(o store.PickupOrder) string {
	var b strings.Builder

	indent := "      "
	if o.PickupCode != nil {
		b.WriteString(indent)
		b.WriteString("Pickup code: ")
		b.WriteString(tui.SuccessStyle.Render(*o.PickupCode))
		b.WriteString("\n")
	}
	if o.LocationLink != nil {
		b.WriteString(indent)
		b.WriteString(tui.DimStyle.Render(*o.LocationLink))
		b.WriteString("\n")
	}

	for _, item := range o.Items {
		b.WriteString(indent)
		b.WriteString(fmt.Sprintf("%-12s x%-3d @ %.0f", item.Name, item.Qty, item.Price))
		b.WriteString("\n")
	}
	if len(o.Items) > 0 {
		b.WriteString(indent)
		b.WriteString(fmt.Sprintf("Total: ₹%.0f", o.TotalAmount))
		b.WriteString("\n")
	}

	return b.String()
}

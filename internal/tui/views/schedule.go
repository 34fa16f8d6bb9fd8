package views

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/scrapline-dev/scrapline/internal/store"
	"github.com/scrapline-dev/scrapline/internal/tui"
)

// timeSlots are the offered pickup windows.
var timeSlots = []string{
	"9:00 AM - 10:00 AM",
	"10:00 AM - 11:00 AM",
	"11:00 AM - 12:00 PM",
	"12:00 PM - 1:00 PM",
	"2:00 PM - 3:00 PM",
	"3:00 PM - 4:00 PM",
	"4:00 PM - 5:00 PM",
	"5:00 PM - 6:00 PM",
}

// dateLayout is the form's date format.
const dateLayout = "2006-01-02"

// minimumDate returns the earliest selectable pickup date: tomorrow,
// relative to now.
func minimumDate(now time.Time) string {
	return now.AddDate(0, 0, 1).Format(dateLayout)
}

// checkDate validates a non-empty date field: it must parse as YYYY-MM-DD
// and fall on or after tomorrow. An empty result means the date is fine.
func checkDate(value string, now time.Time) string {
	if _, err := time.Parse(dateLayout, value); err != nil {
		return "Please enter the date as YYYY-MM-DD"
	}
	// ISO dates compare correctly as strings.
	if value < minimumDate(now) {
		return "Please pick a date from tomorrow onwards"
	}
	return ""
}

// Form field indices. The time slot is a picker, the rest are text inputs.
const (
	fieldDate = iota
	fieldSlot
	fieldAddress
	fieldLink
	fieldCount
)

// ScheduleModel is the view model for the schedule-pickup form.
type ScheduleModel struct {
	store *store.Store

	dateInput    textinput.Model
	addressInput textinput.Model
	linkInput    textinput.Model
	slotIndex    int
	focused      int
	errMsg       string

	width  int
	height int
}

// NewScheduleModel creates a new ScheduleModel.
func NewScheduleModel(st *store.Store, width, height int) ScheduleModel {
	date := textinput.New()
	date.Placeholder = "YYYY-MM-DD"
	date.CharLimit = 10
	date.Width = 20
	date.Focus()

	address := textinput.New()
	address.Placeholder = "Pickup address"
	address.CharLimit = 120
	address.Width = 40

	link := textinput.New()
	link.Placeholder = "Google Maps link (optional)"
	link.CharLimit = 200
	link.Width = 40

	return ScheduleModel{
		store:        st,
		dateInput:    date,
		addressInput: address,
		linkInput:    link,
		width:        width,
		height:       height,
	}
}

// Init returns the initial command for the schedule view.
func (m ScheduleModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the schedule view.
func (m ScheduleModel) Update(msg tea.Msg) (ScheduleModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case tui.KeyEsc:
			return m, func() tea.Msg { return tui.NavigateMsg{To: tui.StateDashboard} }

		case tui.KeyTab, tui.KeyDown:
			m = m.focusField((m.focused + 1) % fieldCount)
			return m, nil

		case tui.KeyShiftTab, tui.KeyUp:
			m = m.focusField((m.focused + fieldCount - 1) % fieldCount)
			return m, nil

		case "left":
			if m.focused == fieldSlot && m.slotIndex > 0 {
				m.slotIndex--
			}
			return m, nil

		case "right":
			if m.focused == fieldSlot && m.slotIndex < len(timeSlots)-1 {
				m.slotIndex++
			}
			return m, nil

		case tui.KeyEnter:
			return m.submit()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	var cmd tea.Cmd
	switch m.focused {
	case fieldDate:
		m.dateInput, cmd = m.dateInput.Update(msg)
	case fieldAddress:
		m.addressInput, cmd = m.addressInput.Update(msg)
	case fieldLink:
		m.linkInput, cmd = m.linkInput.Update(msg)
	}
	return m, cmd
}

// focusField moves keyboard focus to the given field.
func (m ScheduleModel) focusField(idx int) ScheduleModel {
	m.focused = idx
	m.dateInput.Blur()
	m.addressInput.Blur()
	m.linkInput.Blur()
	switch idx {
	case fieldDate:
		m.dateInput.Focus()
	case fieldAddress:
		m.addressInput.Focus()
	case fieldLink:
		m.linkInput.Focus()
	}
	return m
}

// submit builds a draft from the form and asks the store to schedule it.
func (m ScheduleModel) submit() (ScheduleModel, tea.Cmd) {
	draft := store.OrderDraft{
		Date:     strings.TrimSpace(m.dateInput.Value()),
		TimeSlot: timeSlots[m.slotIndex],
		Address:  strings.TrimSpace(m.addressInput.Value()),
	}
	if link := strings.TrimSpace(m.linkInput.Value()); link != "" {
		draft.LocationLink = &link
	}

	// An empty date is reported by the store; a present one must be a
	// well-formed future date.
	if draft.Date != "" {
		if msg := checkDate(draft.Date, time.Now()); msg != "" {
			m.errMsg = msg
			return m, nil
		}
	}

	order, err := m.store.ScheduleOrder(draft)
	if err != nil {
		var verr *store.ValidationError
		if errors.As(err, &verr) {
			m.errMsg = "Please fill in the " + verr.Field + " field"
		} else {
			m.errMsg = err.Error()
		}
		return m, nil
	}

	m.errMsg = ""
	return m, func() tea.Msg { return tui.OrderScheduledMsg{Order: order} }
}

// View renders the schedule view.
func (m ScheduleModel) View() string {
	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render("Schedule Pickup"))
	b.WriteString("\n\n")

	b.WriteString(m.renderLabel("Date", fieldDate))
	b.WriteString(m.dateInput.View())
	b.WriteString("\n\n")

	b.WriteString(m.renderLabel("Time slot", fieldSlot))
	slot := timeSlots[m.slotIndex]
	if m.focused == fieldSlot {
		b.WriteString(tui.SelectedStyle.Render("< " + slot + " >"))
	} else {
		b.WriteString(slot)
	}
	b.WriteString("\n\n")

	b.WriteString(m.renderLabel("Address", fieldAddress))
	b.WriteString(m.addressInput.View())
	b.WriteString("\n\n")

	b.WriteString(m.renderLabel("Location link", fieldLink))
	b.WriteString(m.linkInput.View())
	b.WriteString("\n\n")

	if m.errMsg != "" {
		b.WriteString(tui.ErrorStyle.Render(m.errMsg))
		b.WriteString("\n\n")
	}

	b.WriteString(tui.DimStyle.Render("Tab: Next field   ←/→: Pick slot   Enter: Submit   Esc: Back"))

	return tui.BoxStyle.Render(b.String())
}

// renderLabel renders a field label, highlighted when focused.
func (m ScheduleModel) renderLabel(label string, idx int) string {
	if m.focused == idx {
		return tui.SelectedStyle.Render(label+":") + " "
	}
	return tui.DimStyle.Render(label+":") + " "
}

// Package app provides the main TUI application that wires all views together.
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/scrapline-dev/scrapline/internal/config"
	"github.com/scrapline-dev/scrapline/internal/otp"
	"github.com/scrapline-dev/scrapline/internal/store"
	"github.com/scrapline-dev/scrapline/internal/tui"
	"github.com/scrapline-dev/scrapline/internal/tui/commands"
	"github.com/scrapline-dev/scrapline/internal/tui/views"
	"github.com/scrapline-dev/scrapline/internal/verify"
)

// App is the main TUI application that wires all views together.
type App struct {
	model *tui.Model

	// View models
	splashView    views.SplashModel
	loginView     views.LoginModel
	otpView       views.OtpModel
	dashboardView views.DashboardModel
	scheduleView  views.ScheduleModel
	historyView   views.HistoryModel

	hasOtp bool
}

// New creates a new App with the given configuration, store and verifier.
func New(cfg *config.Config, st *store.Store, verifier verify.Verifier) *App {
	model := tui.NewModel(cfg, st, verifier)

	return &App{
		model:      model,
		splashView: views.NewSplashModel(model.Width, model.Height),
	}
}

// Init restores the persisted session while the splash screen is shown.
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.splashView.Init(), commands.RestoreSessionCmd(a.model.Store))
}

// Update handles messages and updates the application state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.model.Width = msg.Width
		a.model.Height = msg.Height
		return a.routeToActive(msg)

	case tea.KeyMsg:
		if msg.String() == tui.KeyCtrlC {
			a.closeOtp()
			return a, tea.Quit
		}

	case tui.SessionRestoredMsg:
		if msg.Session != nil {
			return a.enterDashboard()
		}
		return a.enterLogin()

	case tui.SubmitPhoneMsg:
		return a.enterOtp(msg.PhoneNumber)

	case tui.OtpCancelledMsg:
		return a.enterLogin()

	case tui.LogoutRequestMsg:
		return a, commands.LogoutCmd(a.model.Store)

	case tui.LogoutDoneMsg:
		// The in-memory session is cleared even when the delete failed.
		return a.enterLogin()

	case tui.OrderScheduledMsg:
		return a.enterDashboard()

	case tui.NavigateMsg:
		switch msg.To {
		case tui.StateDashboard:
			return a.enterDashboard()
		case tui.StateSchedule:
			a.model.State = tui.StateSchedule
			a.scheduleView = views.NewScheduleModel(a.model.Store, a.model.Width, a.model.Height)
			return a, a.scheduleView.Init()
		case tui.StateHistory:
			a.model.State = tui.StateHistory
			a.historyView = views.NewHistoryModel(a.model.Store, a.model.Width, a.model.Height)
			return a, a.historyView.Init()
		case tui.StateLogin:
			return a.enterLogin()
		}
	}

	return a.routeToActive(msg)
}

// routeToActive forwards a message to the currently active view.
func (a *App) routeToActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch a.model.State {
	case tui.StateSplash:
		a.splashView, cmd = a.splashView.Update(msg)
	case tui.StateLogin:
		a.loginView, cmd = a.loginView.Update(msg)
	case tui.StateOtp:
		a.otpView, cmd = a.otpView.Update(msg)
	case tui.StateDashboard:
		a.dashboardView, cmd = a.dashboardView.Update(msg)
	case tui.StateSchedule:
		a.scheduleView, cmd = a.scheduleView.Update(msg)
	case tui.StateHistory:
		a.historyView, cmd = a.historyView.Update(msg)
	}

	return a, cmd
}

// enterLogin shows a fresh login screen.
func (a *App) enterLogin() (tea.Model, tea.Cmd) {
	a.closeOtp()
	a.model.State = tui.StateLogin
	a.loginView = views.NewLoginModel(a.model.Width, a.model.Height)
	return a, a.loginView.Init()
}

// enterOtp constructs a verification session for the given phone number.
func (a *App) enterOtp(phoneNumber string) (tea.Model, tea.Cmd) {
	a.closeOtp()

	cfg := a.model.Cfg
	automaton := otp.NewWith(
		phoneNumber,
		a.model.Verifier,
		a.model.Store.Login,
		cfg.OTP.Length,
		cfg.OTP.ResendCooldown,
	)

	a.model.State = tui.StateOtp
	a.otpView = views.NewOtpModel(automaton, a.model.Width, a.model.Height)
	a.hasOtp = true
	return a, a.otpView.Init()
}

// enterDashboard shows the authenticated home screen.
func (a *App) enterDashboard() (tea.Model, tea.Cmd) {
	a.closeOtp()
	a.model.State = tui.StateDashboard
	a.dashboardView = views.NewDashboardModel(a.model.Store, a.model.Width, a.model.Height)
	return a, a.dashboardView.Init()
}

// closeOtp tears down the OTP session when navigation leaves the screen,
// so late-arriving verification results become no-ops.
func (a *App) closeOtp() {
	if a.hasOtp {
		a.otpView.Close()
		a.hasOtp = false
	}
}

// View renders the current application state.
func (a *App) View() string {
	switch a.model.State {
	case tui.StateSplash:
		return a.splashView.View()
	case tui.StateLogin:
		return a.loginView.View()
	case tui.StateOtp:
		return a.otpView.View()
	case tui.StateDashboard:
		return a.dashboardView.View()
	case tui.StateSchedule:
		return a.scheduleView.View()
	case tui.StateHistory:
		return a.historyView.View()
	default:
		return "Unknown state"
	}
}

package tui

import (
	"time"

	"github.com/scrapline-dev/scrapline/internal/otp"
	"github.com/scrapline-dev/scrapline/internal/store"
)

// ============================================================================
// Session Messages
// ============================================================================

// SessionRestoredMsg signals that the persisted session (if any) has been
// loaded and the splash screen can route.
type SessionRestoredMsg struct {
	Session *store.Session
}

// SubmitPhoneMsg is sent when the user submits a valid phone number on the
// login screen.
type SubmitPhoneMsg struct {
	PhoneNumber string
}

// LogoutRequestMsg asks the app to log the user out.
type LogoutRequestMsg struct{}

// LogoutDoneMsg signals that logout finished. Err is informational: the
// in-memory session is cleared either way.
type LogoutDoneMsg struct {
	Err error
}

// ============================================================================
// OTP Messages
// ============================================================================

// OtpEventMsg carries the result of an automaton command back into the
// update loop.
type OtpEventMsg struct {
	Event otp.Event
}

// OtpCancelledMsg is sent when the user leaves the OTP screen back to login.
type OtpCancelledMsg struct{}

// ============================================================================
// Order Messages
// ============================================================================

// OrderScheduledMsg signals that a pickup request was created.
type OrderScheduledMsg struct {
	Order store.PickupOrder
}

// ============================================================================
// Navigation Messages
// ============================================================================

// NavigateMsg asks the app to switch to the given screen.
type NavigateMsg struct {
	To ViewState
}

// ============================================================================
// Utility Messages
// ============================================================================

// TickMsg is sent once per second for the OTP resend countdown.
type TickMsg time.Time

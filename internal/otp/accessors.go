package otp

// Read-only views of the session state, exposed for rendering.

// PhoneNumber returns the phone number this session verifies.
func (a *Automaton) PhoneNumber() string {
	return a.phone
}

// Digits returns a copy of the digit buffer; each slot is "" or one digit.
func (a *Automaton) Digits() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, len(a.digits))
	copy(out, a.digits)
	return out
}

// Focus returns the slot that receives the next keystroke.
func (a *Automaton) Focus() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.focus
}

// Remaining returns the ticks left until resend is allowed.
func (a *Automaton) Remaining() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.remaining
}

// CanResend reports whether the resend action is currently enabled.
func (a *Automaton) CanResend() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return !a.closed && a.phase != PhaseSucceeded && !a.resending && a.remaining == 0
}

// Resending reports whether a resend request is outstanding.
func (a *Automaton) Resending() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.resending
}

// Phase returns the current submission phase.
func (a *Automaton) Phase() Phase {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.phase
}

// Message returns the current user-facing failure message, if any.
func (a *Automaton) Message() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.message
}

// Package otp drives one OTP entry/verification session: the digit buffer,
// the focus cursor, the resend countdown, and the submission state machine.
//
// The automaton is UI-agnostic. Actions that need I/O return a Cmd, a
// closure the caller executes off the update loop; the resulting Event is
// fed back through Apply. Every attempt carries a token, and Apply discards
// events whose token is no longer the latest, so a stale verification
// response arriving after a resend (or after teardown) is a no-op.
package otp

import (
	"sync"

	"github.com/scrapline-dev/scrapline/internal/verify"
)

// Phase is the submission state of the session.
type Phase int

const (
	PhaseEntering Phase = iota
	PhaseSubmitting
	PhaseFailed
	PhaseSucceeded
)

// User-facing failure messages.
const (
	MsgMismatch     = "Incorrect OTP. Please try again."
	MsgConnectivity = "Network error. Please check your connection."
	MsgPersistence  = "Could not save your session. Please try again."
	MsgIncomplete   = "Please enter the complete 6-digit OTP."
)

// DefaultLength is the number of digit slots.
const DefaultLength = 6

// DefaultCooldown is the number of ticks before a resend is allowed.
const DefaultCooldown = 30

// Cmd is a deferred side effect. The caller runs it (typically in a
// goroutine or a bubbletea command) and passes the Event to Apply.
type Cmd func() Event

// Event is the result of a Cmd.
type Event interface {
	isEvent()
}

type verifyResult struct {
	token   uint64
	matched bool
	err     error
}

type loginResult struct {
	token uint64
	err   error
}

type resendResult struct {
	token uint64
	err   error
}

func (verifyResult) isEvent() {}
func (loginResult) isEvent()  {}
func (resendResult) isEvent() {}

// LoginFunc commits a verified phone number as the logged-in session.
type LoginFunc func(phoneNumber string) error

// Automaton owns the transient state of one OTP session.
type Automaton struct {
	mu sync.Mutex

	phone    string
	verifier verify.Verifier
	login    LoginFunc

	digits    []string // each slot is "" or exactly one digit
	focus     int
	remaining int // ticks until resend allowed
	cooldown  int
	phase     Phase
	message   string

	token     uint64 // latest attempt token; bumped by submit, resend, close
	inFlight  bool   // a verification attempt (verify or its login) is outstanding
	resending bool
	closed    bool
}

// New creates an automaton for one verification session. The countdown
// starts immediately at DefaultCooldown ticks.
func New(phoneNumber string, verifier verify.Verifier, login LoginFunc) *Automaton {
	return NewWith(phoneNumber, verifier, login, DefaultLength, DefaultCooldown)
}

// NewWith is New with an explicit buffer length and resend cooldown.
func NewWith(phoneNumber string, verifier verify.Verifier, login LoginFunc, length, cooldown int) *Automaton {
	if length <= 0 {
		length = DefaultLength
	}
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}
	return &Automaton{
		phone:     phoneNumber,
		verifier:  verifier,
		login:     login,
		digits:    make([]string, length),
		remaining: cooldown,
		cooldown:  cooldown,
		phase:     PhaseEntering,
	}
}

// Input stores a digit in the focused slot and advances the focus. The
// instant every slot holds a digit, a verification attempt starts and the
// returned Cmd carries it. Non-digits are ignored, as is input while a
// submission is in flight or after success.
func (a *Automaton) Input(r rune) Cmd {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed || a.phase == PhaseSucceeded || a.phase == PhaseSubmitting {
		return nil
	}
	if r < '0' || r > '9' {
		return nil
	}

	a.digits[a.focus] = string(r)
	if a.focus < len(a.digits)-1 {
		a.focus++
	}
	// Editing after a failure returns to entering.
	a.phase = PhaseEntering
	a.message = ""

	if a.complete() {
		return a.submit()
	}
	return nil
}

// Backspace clears the focused slot, or moves the focus back one slot when
// the focused slot is already empty. Other slots are never altered.
func (a *Automaton) Backspace() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed || a.phase == PhaseSucceeded || a.phase == PhaseSubmitting {
		return
	}

	if a.digits[a.focus] != "" {
		a.digits[a.focus] = ""
	} else if a.focus > 0 {
		a.focus--
	}
	a.phase = PhaseEntering
	a.message = ""
}

// Verify is the manual submit action. It is idempotent with the automatic
// submit: while an attempt is in flight it is a no-op. An incomplete buffer
// is reported without starting an attempt.
func (a *Automaton) Verify() Cmd {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed || a.phase == PhaseSucceeded {
		return nil
	}
	if !a.complete() {
		a.message = MsgIncomplete
		return nil
	}
	return a.submit()
}

// submit starts a verification attempt. Callers must hold a.mu.
func (a *Automaton) submit() Cmd {
	if a.inFlight {
		return nil
	}
	a.inFlight = true
	a.phase = PhaseSubmitting
	a.message = ""
	a.token++

	token := a.token
	code := a.code()
	phone := a.phone
	verifier := a.verifier
	return func() Event {
		matched, err := verifier.Verify(phone, code)
		return verifyResult{token: token, matched: matched, err: err}
	}
}

// Resend clears the buffer, resets the focus, and requests a new code.
// It is only available once the countdown has reached zero. Starting a
// resend supersedes any outstanding verification attempt. The countdown is
// reset only after the resend capability resolves.
func (a *Automaton) Resend() Cmd {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed || a.phase == PhaseSucceeded || a.resending || a.remaining > 0 {
		return nil
	}

	for i := range a.digits {
		a.digits[i] = ""
	}
	a.focus = 0
	a.phase = PhaseEntering
	a.message = ""
	a.inFlight = false
	a.resending = true
	a.token++

	token := a.token
	phone := a.phone
	verifier := a.verifier
	return func() Event {
		err := verifier.Resend(phone)
		return resendResult{token: token, err: err}
	}
}

// Tick advances the countdown by one time unit. The countdown is
// independent of any in-flight submission.
func (a *Automaton) Tick() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return
	}
	if a.remaining > 0 {
		a.remaining--
	}
}

// Apply feeds a Cmd's result back into the automaton. Stale events — any
// whose token is not the latest — are discarded without touching state.
// A matched verification returns a follow-up Cmd that commits the login;
// that is the only path on which the login function is invoked.
func (a *Automaton) Apply(ev Event) Cmd {
	a.mu.Lock()
	defer a.mu.Unlock()

	switch ev := ev.(type) {
	case verifyResult:
		if a.closed || ev.token != a.token {
			return nil
		}
		if ev.err != nil {
			a.inFlight = false
			a.phase = PhaseFailed
			a.message = MsgConnectivity
			return nil
		}
		if !ev.matched {
			a.inFlight = false
			a.phase = PhaseFailed
			a.message = MsgMismatch
			return nil
		}
		// Matched: the attempt stays in flight while the login commits.
		token := ev.token
		return func() Event {
			// The session may have been torn down or superseded between
			// Apply returning this Cmd and the Cmd running. Re-check
			// before committing anything.
			a.mu.Lock()
			if a.closed || token != a.token {
				a.mu.Unlock()
				return loginResult{token: token}
			}
			phone := a.phone
			login := a.login
			a.mu.Unlock()
			return loginResult{token: token, err: login(phone)}
		}

	case loginResult:
		if a.closed || ev.token != a.token {
			return nil
		}
		a.inFlight = false
		if ev.err != nil {
			a.phase = PhaseFailed
			a.message = MsgPersistence
			return nil
		}
		a.phase = PhaseSucceeded
		a.message = ""
		return nil

	case resendResult:
		if a.closed || ev.token != a.token {
			return nil
		}
		a.resending = false
		if ev.err != nil {
			a.message = MsgConnectivity
			return nil
		}
		a.remaining = a.cooldown
		return nil
	}

	return nil
}

// Close tears the session down: the countdown stops and any in-flight
// verification or resend result is discarded. No state changes after Close.
func (a *Automaton) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.closed = true
	a.token++
	a.inFlight = false
	a.resending = false
}

// complete reports whether every slot holds a digit. Callers must hold a.mu.
func (a *Automaton) complete() bool {
	for _, d := range a.digits {
		if d == "" {
			return false
		}
	}
	return true
}

// code concatenates the buffer. Callers must hold a.mu.
func (a *Automaton) code() string {
	out := ""
	for _, d := range a.digits {
		out += d
	}
	return out
}

package otp

import (
	"testing"

	"github.com/scrapline-dev/scrapline/internal/testutil"
)

// drive runs a command chain to completion, feeding each result back.
func drive(a *Automaton, cmd Cmd) {
	for cmd != nil {
		cmd = a.Apply(cmd())
	}
}

// enter types the given digits one by one and drives any resulting submit.
func enter(a *Automaton, digits string) {
	for _, r := range digits {
		drive(a, a.Input(r))
	}
}

type loginRecorder struct {
	calls  int
	phones []string
	err    error
}

func (l *loginRecorder) login(phone string) error {
	l.calls++
	l.phones = append(l.phones, phone)
	return l.err
}

func TestHappyPathAutoSubmit(t *testing.T) {
	v := &testutil.ScriptedVerifier{Code: "123456"}
	rec := &loginRecorder{}
	a := New("9876543210", v, rec.login)

	enter(a, "123456")

	if a.Phase() != PhaseSucceeded {
		t.Errorf("phase = %v, want PhaseSucceeded", a.Phase())
	}
	if rec.calls != 1 {
		t.Errorf("login calls = %d, want exactly 1", rec.calls)
	}
	if len(rec.phones) != 1 || rec.phones[0] != "9876543210" {
		t.Errorf("login phone = %v, want the construction-time number", rec.phones)
	}
	if v.VerifyCalls != 1 {
		t.Errorf("verify calls = %d, want 1", v.VerifyCalls)
	}
}

func TestMismatchKeepsBufferEditable(t *testing.T) {
	v := &testutil.ScriptedVerifier{Code: "123456"}
	rec := &loginRecorder{}
	a := New("9876543210", v, rec.login)

	enter(a, "123459")

	if a.Phase() != PhaseFailed {
		t.Fatalf("phase = %v, want PhaseFailed", a.Phase())
	}
	if a.Message() != MsgMismatch {
		t.Errorf("message = %q, want %q", a.Message(), MsgMismatch)
	}
	if rec.calls != 0 {
		t.Errorf("login calls = %d, want 0 on mismatch", rec.calls)
	}

	digits := a.Digits()
	want := []string{"1", "2", "3", "4", "5", "9"}
	for i := range want {
		if digits[i] != want[i] {
			t.Fatalf("buffer = %v, want %v intact after mismatch", digits, want)
		}
	}

	// Re-editing the last slot returns to entering and resubmits.
	drive(a, a.Input('6'))
	if a.Phase() != PhaseSucceeded {
		t.Errorf("phase after correction = %v, want PhaseSucceeded", a.Phase())
	}
}

func TestTransportErrorMessage(t *testing.T) {
	v := &testutil.ScriptedVerifier{VerifyErr: testutil.ErrInjected}
	a := New("9876543210", v, (&loginRecorder{}).login)

	enter(a, "123456")

	if a.Phase() != PhaseFailed {
		t.Fatalf("phase = %v, want PhaseFailed", a.Phase())
	}
	if a.Message() != MsgConnectivity {
		t.Errorf("message = %q, want %q", a.Message(), MsgConnectivity)
	}
}

func TestPersistenceFailureIsDistinct(t *testing.T) {
	v := &testutil.ScriptedVerifier{Code: "123456"}
	rec := &loginRecorder{err: testutil.ErrInjected}
	a := New("9876543210", v, rec.login)

	enter(a, "123456")

	if a.Phase() != PhaseFailed {
		t.Fatalf("phase = %v, want PhaseFailed", a.Phase())
	}
	if a.Message() != MsgPersistence {
		t.Errorf("message = %q, want %q (not the mismatch message)", a.Message(), MsgPersistence)
	}
	if rec.calls != 1 {
		t.Errorf("login calls = %d, want 1", rec.calls)
	}
}

func TestManualVerifyIncompleteBuffer(t *testing.T) {
	v := &testutil.ScriptedVerifier{Code: "123456"}
	a := New("9876543210", v, (&loginRecorder{}).login)

	enter(a, "123")
	if cmd := a.Verify(); cmd != nil {
		t.Error("incomplete buffer must not start an attempt")
	}
	if a.Message() != MsgIncomplete {
		t.Errorf("message = %q, want %q", a.Message(), MsgIncomplete)
	}
	if v.VerifyCalls != 0 {
		t.Errorf("verify calls = %d, want 0", v.VerifyCalls)
	}
}

func TestManualVerifyIdempotentWithAutoSubmit(t *testing.T) {
	v := &testutil.ScriptedVerifier{Code: "123456"}
	a := New("9876543210", v, (&loginRecorder{}).login)

	// Type all digits but hold the auto-submit command un-run, as if its
	// I/O were still in flight.
	var pending Cmd
	for _, r := range "123456" {
		if cmd := a.Input(r); cmd != nil {
			pending = cmd
		}
	}
	if pending == nil {
		t.Fatal("completing the buffer must start an attempt")
	}

	if cmd := a.Verify(); cmd != nil {
		t.Error("manual verify while an attempt is in flight must be a no-op")
	}

	drive(a, a.Apply(pending()))
	if a.Phase() != PhaseSucceeded {
		t.Errorf("phase = %v, want PhaseSucceeded", a.Phase())
	}
	if v.VerifyCalls != 1 {
		t.Errorf("verify calls = %d, want 1", v.VerifyCalls)
	}
}

func TestInputIgnoredWhileSubmitting(t *testing.T) {
	v := &testutil.ScriptedVerifier{Code: "123456"}
	a := New("9876543210", v, (&loginRecorder{}).login)

	var pending Cmd
	for _, r := range "123456" {
		if cmd := a.Input(r); cmd != nil {
			pending = cmd
		}
	}

	if cmd := a.Input('9'); cmd != nil {
		t.Error("digit entry during submission must not start another attempt")
	}
	if a.Digits()[5] != "6" {
		t.Error("digit entry during submission must not alter the buffer")
	}

	drive(a, a.Apply(pending()))
}

func TestFocusAdvanceAndBackspace(t *testing.T) {
	v := &testutil.ScriptedVerifier{Code: "123456"}
	a := New("9876543210", v, (&loginRecorder{}).login)

	a.Input('1')
	a.Input('2')
	if a.Focus() != 2 {
		t.Errorf("focus = %d, want 2 after two digits", a.Focus())
	}

	// Focused slot is empty: backspace moves back without altering others.
	a.Backspace()
	if a.Focus() != 1 {
		t.Errorf("focus = %d, want 1 after backspace on empty slot", a.Focus())
	}
	if got := a.Digits(); got[0] != "1" || got[1] != "2" {
		t.Errorf("buffer = %v, backspace on empty slot must not alter other slots", got)
	}

	// Focused slot holds a digit: backspace clears it in place.
	a.Backspace()
	if got := a.Digits(); got[1] != "" {
		t.Errorf("slot 1 = %q, want cleared", got[1])
	}
	if a.Focus() != 1 {
		t.Errorf("focus = %d, want 1 after clearing a digit", a.Focus())
	}

	// Non-digits are ignored.
	a.Input('x')
	if got := a.Digits(); got[1] != "" {
		t.Errorf("slot 1 = %q, non-digit input must be ignored", got[1])
	}
}

func TestResendCountdown(t *testing.T) {
	v := &testutil.ScriptedVerifier{Code: "123456"}
	a := New("9876543210", v, (&loginRecorder{}).login)

	if a.Remaining() != DefaultCooldown {
		t.Fatalf("countdown = %d, want %d at start", a.Remaining(), DefaultCooldown)
	}
	if cmd := a.Resend(); cmd != nil {
		t.Fatal("resend must be disabled while the countdown is running")
	}

	for i := 0; i < DefaultCooldown; i++ {
		a.Tick()
	}
	if !a.CanResend() {
		t.Fatal("resend must be enabled once the countdown reaches zero")
	}

	a.Input('1')
	cmd := a.Resend()
	if cmd == nil {
		t.Fatal("resend should start once enabled")
	}

	// Disabled again immediately; countdown resets only after completion.
	if a.CanResend() {
		t.Error("resend must be disabled while a resend is in flight")
	}
	if a.Remaining() != 0 {
		t.Errorf("countdown = %d, must not reset before the resend resolves", a.Remaining())
	}
	if got := a.Digits(); got[0] != "" || a.Focus() != 0 {
		t.Error("resend must clear the buffer and reset focus")
	}

	drive(a, a.Apply(cmd()))
	if a.Remaining() != DefaultCooldown {
		t.Errorf("countdown = %d, want %d after the resend resolves", a.Remaining(), DefaultCooldown)
	}
	if v.ResendCalls != 1 {
		t.Errorf("resend calls = %d, want 1", v.ResendCalls)
	}
}

func TestResendFailureLeavesCountdownAtZero(t *testing.T) {
	v := &testutil.ScriptedVerifier{Code: "123456", ResendErr: testutil.ErrInjected}
	a := New("9876543210", v, (&loginRecorder{}).login)

	for i := 0; i < DefaultCooldown; i++ {
		a.Tick()
	}
	cmd := a.Resend()
	drive(a, a.Apply(cmd()))

	if a.Message() != MsgConnectivity {
		t.Errorf("message = %q, want %q", a.Message(), MsgConnectivity)
	}
	if a.Remaining() != 0 {
		t.Errorf("countdown = %d, want 0 so the user can retry", a.Remaining())
	}
	if !a.CanResend() {
		t.Error("resend must be available again after a failed resend")
	}
}

func TestStaleVerifyDiscardedAfterResend(t *testing.T) {
	v := &testutil.ScriptedVerifier{Code: "123456"}
	rec := &loginRecorder{}
	a := New("9876543210", v, rec.login)

	for i := 0; i < DefaultCooldown; i++ {
		a.Tick()
	}

	// Complete the buffer; hold the verify in flight.
	var pending Cmd
	for _, r := range "123456" {
		if cmd := a.Input(r); cmd != nil {
			pending = cmd
		}
	}

	// The user resends before the verification response arrives.
	resendCmd := a.Resend()
	if resendCmd == nil {
		t.Fatal("resend should supersede the in-flight verification")
	}

	// The stale response must be discarded: no login, no phase change.
	if follow := a.Apply(pending()); follow != nil {
		t.Error("stale verify result must not produce a follow-up command")
	}
	if rec.calls != 0 {
		t.Errorf("login calls = %d, want 0 for a stale match", rec.calls)
	}
	if a.Phase() != PhaseEntering {
		t.Errorf("phase = %v, want PhaseEntering after resend", a.Phase())
	}

	drive(a, a.Apply(resendCmd()))
}

func TestCloseMakesEverythingNoOp(t *testing.T) {
	v := &testutil.ScriptedVerifier{Code: "123456"}
	rec := &loginRecorder{}
	a := New("9876543210", v, rec.login)

	var pending Cmd
	for _, r := range "123456" {
		if cmd := a.Input(r); cmd != nil {
			pending = cmd
		}
	}

	a.Close()

	if follow := a.Apply(pending()); follow != nil {
		t.Error("in-flight result after Close must be discarded")
	}
	if rec.calls != 0 {
		t.Errorf("login calls = %d, want 0 after teardown", rec.calls)
	}

	before := a.Remaining()
	a.Tick()
	if a.Remaining() != before {
		t.Error("countdown must stop after Close")
	}
	if cmd := a.Input('1'); cmd != nil {
		t.Error("input after Close must be ignored")
	}
	if cmd := a.Resend(); cmd != nil {
		t.Error("resend after Close must be ignored")
	}
}

func TestCloseBeforeLoginCommandSkipsLogin(t *testing.T) {
	v := &testutil.ScriptedVerifier{Code: "123456"}
	rec := &loginRecorder{}
	a := New("9876543210", v, rec.login)

	var pending Cmd
	for _, r := range "123456" {
		if cmd := a.Input(r); cmd != nil {
			pending = cmd
		}
	}

	// The verification matched; the automaton hands back the login step.
	loginCmd := a.Apply(pending())
	if loginCmd == nil {
		t.Fatal("matched verification should return a login command")
	}

	// Teardown wins the race: the session closes before the login step
	// runs. The step must commit nothing.
	a.Close()

	if follow := a.Apply(loginCmd()); follow != nil {
		t.Error("login result after Close must be discarded")
	}
	if rec.calls != 0 {
		t.Errorf("login calls = %d, want 0 after teardown", rec.calls)
	}
	if a.Phase() == PhaseSucceeded {
		t.Error("session must not succeed after Close")
	}
}

func TestResendBeforeLoginCommandSkipsLogin(t *testing.T) {
	v := &testutil.ScriptedVerifier{Code: "123456"}
	rec := &loginRecorder{}
	a := New("9876543210", v, rec.login)

	for i := 0; i < DefaultCooldown; i++ {
		a.Tick()
	}

	var pending Cmd
	for _, r := range "123456" {
		if cmd := a.Input(r); cmd != nil {
			pending = cmd
		}
	}

	loginCmd := a.Apply(pending())
	if loginCmd == nil {
		t.Fatal("matched verification should return a login command")
	}

	// A resend supersedes the attempt before its login step runs.
	if cmd := a.Resend(); cmd == nil {
		t.Fatal("resend should be available once the countdown is done")
	}

	if follow := a.Apply(loginCmd()); follow != nil {
		t.Error("superseded login result must not produce a follow-up command")
	}
	if rec.calls != 0 {
		t.Errorf("login calls = %d, want 0 for a superseded attempt", rec.calls)
	}
}

func TestSucceededIsTerminal(t *testing.T) {
	v := &testutil.ScriptedVerifier{Code: "123456"}
	rec := &loginRecorder{}
	a := New("9876543210", v, rec.login)

	enter(a, "123456")
	if a.Phase() != PhaseSucceeded {
		t.Fatalf("phase = %v, want PhaseSucceeded", a.Phase())
	}

	if cmd := a.Input('1'); cmd != nil {
		t.Error("input after success must be ignored")
	}
	if cmd := a.Verify(); cmd != nil {
		t.Error("verify after success must be ignored")
	}
	if rec.calls != 1 {
		t.Errorf("login calls = %d, want exactly 1", rec.calls)
	}
}

func TestCountdownIndependentOfSubmission(t *testing.T) {
	v := &testutil.ScriptedVerifier{Code: "123456"}
	a := New("9876543210", v, (&loginRecorder{}).login)

	var pending Cmd
	for _, r := range "123456" {
		if cmd := a.Input(r); cmd != nil {
			pending = cmd
		}
	}

	// Ticks keep flowing while the verification is outstanding.
	start := a.Remaining()
	a.Tick()
	a.Tick()
	if a.Remaining() != start-2 {
		t.Errorf("countdown = %d, want %d; ticking must not be blocked by submission", a.Remaining(), start-2)
	}

	drive(a, a.Apply(pending()))
}

// Package verify defines the OTP verification capability consumed by the
// OTP automaton, plus the simulated implementation the client ships with.
package verify

// Verifier checks a one-time code for a phone number and can trigger a
// fresh code to be sent. Implementations may block; the automaton runs
// them off the update loop and discards stale results itself.
type Verifier interface {
	// Verify reports whether code is the expected one for phoneNumber.
	// A false return with nil error is a plain mismatch; a non-nil error
	// means the capability itself failed (transport, timeout, ...).
	Verify(phoneNumber, code string) (bool, error)

	// Resend requests a new code for phoneNumber.
	Resend(phoneNumber string) error
}

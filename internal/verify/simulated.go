package verify

import "time"

// Simulated is the stand-in verification service: a fixed expected code and
// fixed delays instead of a real SMS gateway. It satisfies Verifier so the
// automaton cannot tell it from a remote service.
type Simulated struct {
	Code        string        // expected one-time code
	VerifyDelay time.Duration // latency before a verify resolves
	ResendDelay time.Duration // latency before a resend resolves
}

// NewSimulated returns a Simulated verifier with the given expected code
// and the reference latencies.
func NewSimulated(code string) *Simulated {
	return &Simulated{
		Code:        code,
		VerifyDelay: 800 * time.Millisecond,
		ResendDelay: time.Second,
	}
}

// Verify sleeps for the configured latency, then compares code against the
// expected one. It never fails with a transport error.
func (s *Simulated) Verify(_, code string) (bool, error) {
	if s.VerifyDelay > 0 {
		time.Sleep(s.VerifyDelay)
	}
	return code == s.Code, nil
}

// Resend sleeps for the configured latency. The simulated gateway always
// succeeds.
func (s *Simulated) Resend(string) error {
	if s.ResendDelay > 0 {
		time.Sleep(s.ResendDelay)
	}
	return nil
}

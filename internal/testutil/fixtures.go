// Package testutil provides test helper utilities for scrapline tests.
package testutil

import (
	"errors"
	"sync"
)

// ErrInjected is the error returned by a FlakyKV operation that has been
// told to fail.
var ErrInjected = errors.New("injected storage failure")

// FlakyKV is an in-memory KV with per-operation failure injection.
type FlakyKV struct {
	mu     sync.Mutex
	values map[string][]byte

	FailGet    bool
	FailSet    bool
	FailDelete bool
}

// NewFlakyKV returns an empty FlakyKV with no failures armed.
func NewFlakyKV() *FlakyKV {
	return &FlakyKV{values: make(map[string][]byte)}
}

// Get returns the stored value, or ErrInjected when FailGet is set.
func (f *FlakyKV) Get(key string) ([]byte, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FailGet {
		return nil, false, ErrInjected
	}
	v, ok := f.values[key]
	return v, ok, nil
}

// Set stores value, or returns ErrInjected when FailSet is set.
func (f *FlakyKV) Set(key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FailSet {
		return ErrInjected
	}
	f.values[key] = value
	return nil
}

// Delete removes key, or returns ErrInjected when FailDelete is set.
// The value is NOT removed on an injected failure, matching a real fault.
func (f *FlakyKV) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FailDelete {
		return ErrInjected
	}
	delete(f.values, key)
	return nil
}

// Has reports whether key is present, bypassing failure injection.
func (f *FlakyKV) Has(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.values[key]
	return ok
}

// ScriptedVerifier is a verify.Verifier with canned behaviour and call
// counting. Zero delays keep automaton tests synchronous.
type ScriptedVerifier struct {
	mu sync.Mutex

	Code      string // expected code; empty means everything matches
	VerifyErr error  // returned by Verify when set
	ResendErr error  // returned by Resend when set

	VerifyCalls int
	ResendCalls int
}

// Verify compares code against the scripted expectation.
func (s *ScriptedVerifier) Verify(_, code string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.VerifyCalls++
	if s.VerifyErr != nil {
		return false, s.VerifyErr
	}
	return s.Code == "" || code == s.Code, nil
}

// Resend returns the scripted resend result.
func (s *ScriptedVerifier) Resend(string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ResendCalls++
	return s.ResendErr
}

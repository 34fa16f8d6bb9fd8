package tui

import (
	"github.com/scrapline-dev/scrapline/internal/config"
	"github.com/scrapline-dev/scrapline/internal/store"
	"github.com/scrapline-dev/scrapline/internal/verify"
)

// ViewState represents the current screen.
type ViewState int

const (
	StateSplash ViewState = iota
	StateLogin
	StateOtp
	StateDashboard
	StateSchedule
	StateHistory
)

// Model is the shared application state passed to every view.
type Model struct {
	State    ViewState
	Cfg      *config.Config
	Store    *store.Store
	Verifier verify.Verifier

	Width  int
	Height int
}

// NewModel creates the shared model.
func NewModel(cfg *config.Config, st *store.Store, verifier verify.Verifier) *Model {
	return &Model{
		State:    StateSplash,
		Cfg:      cfg,
		Store:    st,
		Verifier: verifier,
		Width:    80,
		Height:   24,
	}
}

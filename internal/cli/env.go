// env.go assembles the shared runtime pieces every command needs: config,
// durability service, event log, store, and verifier.
package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/scrapline-dev/scrapline/internal/config"
	"github.com/scrapline-dev/scrapline/internal/log"
	"github.com/scrapline-dev/scrapline/internal/storage"
	"github.com/scrapline-dev/scrapline/internal/store"
	"github.com/scrapline-dev/scrapline/internal/verify"
)

// Env bundles the constructed runtime for one command invocation.
type Env struct {
	Cfg      *config.Config
	Store    *store.Store
	Verifier verify.Verifier

	kv *storage.SQLiteKV
}

// openEnv builds the runtime from ~/.scrapline. A missing config file is
// written with defaults; a missing session just means logged out.
func openEnv() (*Env, error) {
	dataDir, err := config.DataDir()
	if err != nil {
		return nil, err
	}

	cfg, err := config.ReadConfig(dataDir)
	if err != nil {
		cfg = config.DefaultConfig()
		if werr := config.WriteConfig(dataDir, cfg); werr != nil {
			return nil, fmt.Errorf("writing default config: %w", werr)
		}
	}

	kv, err := storage.OpenSQLite(filepath.Join(dataDir, cfg.Storage.File))
	if err != nil {
		return nil, fmt.Errorf("opening storage: %w", err)
	}

	logger, err := log.NewLogger(dataDir)
	if err != nil {
		_ = kv.Close()
		return nil, fmt.Errorf("opening event log: %w", err)
	}

	st := store.New(kv, logger)
	if cfg.App.DemoSeed {
		st.Seed(store.DemoOrders())
	}

	verifier := verify.NewSimulated(cfg.OTP.Code)
	verifier.VerifyDelay = time.Duration(cfg.OTP.VerifyDelayMs) * time.Millisecond
	verifier.ResendDelay = time.Duration(cfg.OTP.ResendDelayMs) * time.Millisecond

	return &Env{
		Cfg:      cfg,
		Store:    st,
		Verifier: verifier,
		kv:       kv,
	}, nil
}

// Close releases the environment's resources.
func (e *Env) Close() {
	_ = e.kv.Close()
}

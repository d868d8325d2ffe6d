package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abhisek/luca/internal/app"
	"github.com/abhisek/luca/internal/llm"
	"github.com/abhisek/luca/internal/progress"
	"github.com/abhisek/luca/internal/session"
	"github.com/abhisek/luca/internal/tutor"
)

// runApp builds dependencies and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dataDir, err := resolveDataDir(cmd)
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}

	logger, closeLog := newLogger(dataDir)
	defer closeLog()

	var provider llm.Provider
	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		// Missing credentials are not fatal: every operation serves
		// local content instead.
		logger.Warn("LLM provider not configured, using local content only", slog.Any("error", err))
	} else {
		provider, err = llm.NewProvider(cfg)
		if err != nil {
			logger.Warn("LLM provider init failed, using local content only", slog.Any("error", err))
			provider = nil
		} else {
			provider = llm.WithLogging(provider, logger)
		}
	}

	tut := tutor.NewService(provider, tutor.DefaultConfig(), logger)
	store := progress.NewFileStore(dataDir)
	sess := session.New(tut, store, logger)

	return app.Run(sess)
}

// newLogger writes structured logs to a file under the data dir. Logging
// to stderr would corrupt the TUI, and losing logs must not stop the app.
func newLogger(dataDir string) (*slog.Logger, func()) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return slog.New(slog.DiscardHandler), func() {}
	}

	f, err := os.OpenFile(filepath.Join(dataDir, "luca.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return slog.New(slog.DiscardHandler), func() {}
	}

	logger := slog.New(slog.NewTextHandler(f, nil))
	return logger, func() { _ = f.Close() }
}

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-blockdoku/internal/config"
	"github.com/vovakirdan/tui-blockdoku/internal/core"
	"github.com/vovakirdan/tui-blockdoku/internal/games/blockdoku"
	"github.com/vovakirdan/tui-blockdoku/internal/storage"
)

// newLogger builds the CLI logger writing to w.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("--log-level: %w", err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "blockdoku",
		Level:           level,
	})
	return logger, nil
}

// tuiLogger logs to ~/.blockdoku/blockdoku.log while the alt screen owns the
// terminal. Without a writable home the logs are dropped. The returned func
// closes the file.
func tuiLogger() (*log.Logger, func(), error) {
	noop := func() {}
	cfgDir := config.UserConfigDir()
	if cfgDir == "" {
		logger, err := newLogger(io.Discard)
		return logger, noop, err
	}
	dir := filepath.Dir(cfgDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger, lerr := newLogger(io.Discard)
		return logger, noop, lerr
	}
	f, err := os.OpenFile(filepath.Join(dir, "blockdoku.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		logger, lerr := newLogger(io.Discard)
		return logger, noop, lerr
	}
	logger, err := newLogger(f)
	if err != nil {
		f.Close()
		return nil, noop, err
	}
	return logger, func() { f.Close() }, nil
}

// loadConfig loads the config file and applies a --difficulty override.
func loadConfig(difficulty string) (config.BlockdokuConfig, error) {
	cfg, err := config.LoadBlockdoku(flagConfig)
	if err != nil {
		return cfg, err
	}
	if difficulty != "" {
		preset, err := config.ParsePreset(difficulty)
		if err != nil {
			return cfg, err
		}
		config.ApplyPreset(&cfg, preset)
	}
	return cfg, nil
}

// defaultGameID picks the registry ID for the configured difficulty.
func defaultGameID(cfg config.BlockdokuConfig) string {
	return blockdoku.IDFor(blockdoku.DifficultyFor(cfg.Difficulty))
}

// runtimeConfig sizes the screen from the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the score database. Play continues without one.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

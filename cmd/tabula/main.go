// Package main provides the entry point for the Tabula TUI application.
//
// Tabula is a TUI kanban board with a local key-value store, undo history
// and a daily planning view.
//
// Usage:
//
//	tabula [options]
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/tabula-app/tabula/internal/app"
	"github.com/tabula-app/tabula/internal/bus"
	"github.com/tabula-app/tabula/internal/config"
	"github.com/tabula-app/tabula/internal/store"
	"github.com/tabula-app/tabula/internal/undo"
)

func main() {
	backendFlag := flag.String("backend", "", "storage backend: file or sqlite (overrides config)")
	dataDirFlag := flag.String("data-dir", "", "data directory (overrides config)")
	flag.Parse()

	// A .env next to the binary or in the working directory can set
	// TABULA_* variables. Missing files are not an error.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	cfg = config.ApplyEnv(cfg)
	if *backendFlag != "" {
		cfg.Storage.Backend = *backendFlag
	}
	if *dataDirFlag != "" {
		cfg.Storage.DataDir = *dataDirFlag
		cfg.Storage.SQLitePath = filepath.Join(*dataDirFlag, "tabula.db")
	}

	if err := os.MkdirAll(cfg.Storage.DataDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating data dir: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to the TUI, so logs go to a file in the data dir.
	logFile, err := os.OpenFile(
		filepath.Join(cfg.Storage.DataDir, "tabula.log"),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND,
		0o644,
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	logger := slog.New(slog.NewTextHandler(logFile, nil))
	slog.SetDefault(logger)

	kv, watch, err := openStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		os.Exit(1)
	}
	defer kv.Close()

	b := bus.New()
	accessor := store.NewAccessor(kv, logger)
	undoLog := undo.New(accessor, b, logger)

	// External-change watcher. The file backend polls the data directory
	// and turns foreign writes into StoreChanged signals.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if watch != nil {
		interval := time.Duration(cfg.Storage.WatchIntervalMs) * time.Millisecond
		go watch(ctx, interval, func(key string) {
			b.Publish(bus.StoreChanged{Key: key})
		})
	}

	model := app.New(cfg, accessor, b, undoLog, logger)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type watchFunc func(ctx context.Context, interval time.Duration, onChange func(key string))

// openStore builds the configured KV backend. The watch function is nil for
// backends without external-change detection.
func openStore(cfg *config.Config) (store.KV, watchFunc, error) {
	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		kv, err := store.OpenSQLiteKV(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return kv, nil, nil

	case config.BackendFile, "":
		kv, err := store.NewFileKV(cfg.Storage.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return kv, kv.Watch, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

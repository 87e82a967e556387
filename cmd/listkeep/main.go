package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avelis/listkeep/internal/storage"
	"github.com/avelis/listkeep/internal/todo"
	"github.com/avelis/listkeep/internal/update"
)

func main() {
	cfg, err := update.LoadRuntimeConfig(configPath(), update.DefaultRuntimeConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "listkeep: bad config: %v\n", err)
		os.Exit(1)
	}
	cfg = update.RuntimeConfigFromEnv(cfg)

	logger := newLogger(cfg.LogPath)
	logger.Info("starting", "db", cfg.DBPath)

	if dir := filepath.Dir(cfg.DBPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "listkeep: create data dir: %v\n", err)
			os.Exit(1)
		}
	}
	store, err := storage.OpenKVStore(cfg.DBPath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "listkeep: open store: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	repo := todo.NewRepository(store, logger)
	m := update.NewModelWithConfig(repo, store, cfg, logger)

	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "listkeep failed: %v\n", err)
		os.Exit(1)
	}
	logger.Info("shutdown")
}

func configPath() string {
	if v := strings.TrimSpace(os.Getenv("LISTKEEP_CONFIG")); v != "" {
		return v
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "listkeep", "config.toml")
}

// The log goes to a file: stderr belongs to the TUI. When the file cannot
// be opened logging is disabled rather than corrupting the screen.
func newLogger(path string) *slog.Logger {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		_ = os.MkdirAll(dir, 0o755)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(f, nil))
}

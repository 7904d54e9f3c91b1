package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"kuu/internal/config"
	"kuu/internal/events"
	"kuu/pkg/database"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	if err := run(logger); err != nil {
		logger.Error("server exited", "err", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg := config.Load()

	// Filesystem bootstrap happens here, once, not as an import side effect.
	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
	}

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	n, err := database.SeedTitles(db)
	if err != nil {
		return fmt.Errorf("seed titles: %w", err)
	}
	if n > 0 {
		logger.Info("seeded kuu titles", "inserted", n)
	}

	hub := events.NewHub(logger)
	go hub.Run()

	s := &server{db: db, cfg: cfg, log: logger, hub: hub}

	logger.Info("HTTP API listening", "addr", cfg.Addr, "env", cfg.Env)
	return s.router().Run(cfg.Addr)
}

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/claude/neonfit/internal/config"
	"github.com/claude/neonfit/internal/history"
	"github.com/claude/neonfit/internal/kv"
)

// neonfit-import loads a workout history export (the JSON array produced by
// the export endpoint, or by the original browser client's backup) into the
// configured storage backend.
func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	historyPath := flag.String("path", "", "path to history JSON export (required)")
	dryRun := flag.Bool("dry-run", false, "report counts without writing to storage")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *historyPath == "" {
		fmt.Fprintf(os.Stderr, "Usage: neonfit-import -config config.yaml -path history.json [-dry-run]\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	data, err := os.ReadFile(*historyPath)
	if err != nil {
		log.Error("failed to read history file", "path", *historyPath, "error", err)
		os.Exit(1)
	}

	var entries []history.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Error("history file is not a valid entry array", "error", err)
		os.Exit(1)
	}
	log.Info("history file parsed", "entries", len(entries))

	if *dryRun {
		log.Info("DRY RUN mode, nothing written to storage")
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	var store kv.Store
	switch cfg.Storage.Driver {
	case "sqlite":
		store, err = kv.OpenSQLite(cfg.Storage.Path)
	case "postgres":
		dsn := cfg.Storage.DSN()
		if err := kv.RunMigrations(dsn, "migrations"); err != nil {
			log.Error("migration failed", "error", err)
			os.Exit(1)
		}
		store, err = kv.OpenPostgres(ctx, dsn)
	default:
		log.Error("unsupported storage driver for import", "driver", cfg.Storage.Driver)
		os.Exit(1)
	}
	if err != nil {
		log.Error("failed to open storage", "driver", cfg.Storage.Driver, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	hist := history.NewStore(store, log)
	existing := len(hist.All(ctx))
	if err := hist.Import(ctx, data); err != nil {
		log.Error("import failed", "error", err)
		os.Exit(1)
	}

	log.Info("import complete", "replaced", existing, "imported", len(entries))
}

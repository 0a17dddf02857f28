package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/claude/trainload/internal/config"
	"github.com/claude/trainload/internal/importer"
	"github.com/claude/trainload/internal/storage"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	backupPath := flag.String("path", "", "backup file or directory of backups (required)")
	dryRun := flag.Bool("dry-run", false, "report counts without inserting into database")
	stateDir := flag.String("state-dir", "", "directory for the import ledger (overrides import.state_dir)")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *backupPath == "" {
		fmt.Fprintf(os.Stderr, "Usage: trainload-import -config config.yaml -path /path/to/backup.json [-dry-run] [-state-dir DIR]\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if _, err := os.Stat(*backupPath); err != nil {
		log.Error("backup path does not exist", "path", *backupPath, "error", err)
		os.Exit(1)
	}

	// Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	dsn := cfg.Database.DSN()

	// Run migrations
	if err := storage.RunMigrations(dsn, "migrations"); err != nil {
		log.Error("migration failed", "error", err)
		os.Exit(1)
	}
	log.Info("migrations applied")

	ctx := context.Background()

	if *dryRun {
		log.Info("DRY RUN mode: no data will be written to the database")
	}

	// Connect database
	db, err := storage.New(ctx, dsn)
	if err != nil {
		log.Error("failed to connect database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	log.Info("database connected")

	// Open the ledger of already imported files
	dir := cfg.Import.StateDir
	if *stateDir != "" {
		dir = *stateDir
	}
	var state *importer.StateDB
	if dir != "" {
		state, err = importer.OpenStateDB(dir)
		if err != nil {
			log.Error("failed to open import state", "dir", dir, "error", err)
			os.Exit(1)
		}
		defer state.Close()
	}

	// Run import
	imp := importer.New(db, state, log, *dryRun)
	stats, err := imp.Import(ctx, *backupPath)
	if err != nil {
		log.Error("import failed", "error", err)
		printStats(log, stats)
		os.Exit(1)
	}

	printStats(log, stats)
	log.Info("import complete")
}

func printStats(log *slog.Logger, stats *importer.Stats) {
	log.Info("import stats",
		"files_seen", stats.FilesSeen,
		"files_processed", stats.FilesProcessed,
		"files_skipped", stats.FilesSkipped,
		"files_errored", stats.FilesErrored,
		"workouts_received", stats.WorkoutsReceived,
		"workouts_inserted", stats.WorkoutsInserted,
		"exercises_upserted", stats.ExercisesUpserted,
		"thresholds_set", stats.ThresholdsSet,
		"sets_inserted", stats.SetsInserted,
	)
	if len(stats.InvalidThresholds) > 0 {
		log.Info("skipped invalid thresholds", "muscles", stats.InvalidThresholds)
	}
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/claude/trainload/internal/importer"
	"github.com/claude/trainload/internal/upload"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	serverURL := flag.String("server", "", "trainload server URL (e.g. https://trainload.tail1234.ts.net)")
	exportPath := flag.String("path", "", "export file or directory of exports")
	apiKey := flag.String("api-key", os.Getenv("TRAINLOAD_IMPORT_API_KEY"), "import API key (default $TRAINLOAD_IMPORT_API_KEY)")
	stateDir := flag.String("state-dir", "", "directory for the upload ledger (default ~/.trainload-upload)")
	dryRun := flag.Bool("dry-run", false, "list files that would be sent without sending them")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("trainload-upload", Version)
		return
	}

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *exportPath == "" {
		fmt.Fprintf(os.Stderr, "Usage: trainload-upload -server <URL> -path <export file or dir> [-api-key KEY] [-dry-run] [-state-dir DIR]\n\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if *serverURL == "" && !*dryRun {
		fmt.Fprintf(os.Stderr, "Error: -server is required (or use -dry-run)\n")
		os.Exit(1)
	}
	if *apiKey == "" && !*dryRun {
		fmt.Fprintf(os.Stderr, "Error: -api-key or TRAINLOAD_IMPORT_API_KEY is required (or use -dry-run)\n")
		os.Exit(1)
	}

	// Strip trailing slash from server URL
	*serverURL = strings.TrimRight(*serverURL, "/")

	// Open state database
	dir := *stateDir
	if dir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			log.Error("failed to get home directory", "error", err)
			os.Exit(1)
		}
		dir = filepath.Join(homeDir, ".trainload-upload")
	}
	state, err := importer.OpenStateDB(dir)
	if err != nil {
		log.Error("failed to open state database", "error", err)
		os.Exit(1)
	}
	defer state.Close()

	if *dryRun {
		log.Info("DRY RUN mode: files will be listed but not sent")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	uploader := upload.New(upload.NewClient(*serverURL, *apiKey), state, *dryRun, log)
	stats, err := uploader.Run(ctx, *exportPath)
	if err != nil {
		log.Error("upload failed", "error", err)
		printStats(stats)
		os.Exit(1)
	}

	printStats(stats)
	log.Info("upload complete")
}

func printStats(stats *upload.Stats) {
	fmt.Println()
	fmt.Println("=== Upload Summary ===")
	fmt.Printf("  Files total:      %d\n", stats.FilesTotal)
	fmt.Printf("  Files uploaded:   %d\n", stats.FilesUploaded)
	fmt.Printf("  Files skipped:    %d (already uploaded)\n", stats.FilesSkipped)
	fmt.Printf("  Files errored:    %d\n", stats.FilesErrored)
	fmt.Println()
	fmt.Printf("  Workouts:         %d\n", stats.WorkoutsSent)
	fmt.Printf("  Sets:             %d\n", stats.SetsSent)

	if len(stats.InvalidThresholds) > 0 {
		fmt.Printf("\n  Skipped invalid thresholds:\n")
		for _, m := range stats.InvalidThresholds {
			fmt.Printf("    - %s\n", m)
		}
	}
	fmt.Println()
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/claude/trainload/internal/backup"
	"github.com/claude/trainload/internal/config"
	"github.com/claude/trainload/internal/history"
	trainloadmcp "github.com/claude/trainload/internal/mcp"
	"github.com/claude/trainload/internal/storage"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "", "path to config file (needed unless -backup is set)")
	backupPath := flag.String("backup", "", "serve analytics from a backup file instead of the database")
	timezone := flag.String("timezone", "", "timezone for today when running from a backup (e.g. Europe/Berlin)")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("trainload-mcp", Version)
		return
	}

	// stdout carries the protocol, so logs go to stderr.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *backupPath == "" && *configPath == "" {
		fmt.Fprintf(os.Stderr, "Usage: trainload-mcp -backup backup.json [-timezone TZ] | -config config.yaml\n\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	var src history.Source
	var analyticsCfg config.AnalyticsConfig

	if *backupPath != "" {
		if _, err := os.Stat(*backupPath); err != nil {
			log.Error("backup file not found", "path", *backupPath, "error", err)
			os.Exit(1)
		}
		analyticsCfg.Timezone = *timezone
		if _, err := analyticsCfg.Location(); err != nil {
			log.Error("invalid timezone", "error", err)
			os.Exit(1)
		}
		src = backup.NewFile(*backupPath)
		log.Info("serving backup file", "path", *backupPath)
	} else {
		cfg, err := config.Load(*configPath)
		if err != nil {
			log.Error("failed to load config", "error", err)
			os.Exit(1)
		}
		db, err := storage.New(context.Background(), cfg.Database.DSN())
		if err != nil {
			log.Error("failed to connect database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		analyticsCfg = cfg.Analytics
		src = db
		log.Info("database connected")
	}

	s := trainloadmcp.New(src, analyticsCfg, Version, log)
	if err := mcpserver.ServeStdio(s); err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}

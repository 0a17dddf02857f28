package upload

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/claude/trainload/internal/importer"
)

// Stats tracks upload progress.
type Stats struct {
	FilesTotal    int
	FilesUploaded int
	FilesSkipped  int
	FilesErrored  int

	WorkoutsSent int
	SetsSent     int64

	InvalidThresholds []string
}

// Uploader walks export files and POSTs each new or changed one to the
// trainload server.
type Uploader struct {
	client *Client
	state  *importer.StateDB
	dryRun bool
	log    *slog.Logger
	stats  Stats
}

// New creates a new Uploader. state may be nil, in which case every file is
// sent.
func New(client *Client, state *importer.StateDB, dryRun bool, log *slog.Logger) *Uploader {
	return &Uploader{
		client: client,
		state:  state,
		dryRun: dryRun,
		log:    log,
	}
}

// Run uploads path, or the export files directly under it when it is a
// directory. A send failure aborts the run; files already sent stay recorded.
func (u *Uploader) Run(ctx context.Context, path string) (*Stats, error) {
	files, err := importer.CollectFiles(path)
	if err != nil {
		return &u.stats, err
	}

	if !u.dryRun {
		remote, err := u.client.FetchStats(ctx)
		if err != nil {
			return &u.stats, fmt.Errorf("checking server: %w", err)
		}
		u.log.Info("server reachable", "workouts", remote.TotalWorkouts)
	}

	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return &u.stats, err
		}
		u.stats.FilesTotal++

		info, err := os.Stat(f)
		if err != nil {
			u.log.Warn("stat failed", "file", f, "error", err)
			u.stats.FilesErrored++
			continue
		}
		hash, err := importer.HashFile(f)
		if err != nil {
			u.log.Warn("hash failed", "file", f, "error", err)
			u.stats.FilesErrored++
			continue
		}

		if u.state != nil {
			done, err := u.state.IsImported(f, info.Size(), hash)
			if err != nil {
				u.log.Warn("state check failed", "file", f, "error", err)
				u.stats.FilesErrored++
				continue
			}
			if done {
				u.stats.FilesSkipped++
				continue
			}
		}

		if u.dryRun {
			u.log.Info("dry-run: would send", "file", f, "bytes", info.Size())
			continue
		}

		result, err := u.client.SendFile(ctx, f)
		if err != nil {
			return &u.stats, fmt.Errorf("sending %s: %w", f, err)
		}
		u.stats.FilesUploaded++
		u.stats.WorkoutsSent += result.WorkoutsInserted
		u.stats.SetsSent += result.SetsInserted
		u.stats.InvalidThresholds = append(u.stats.InvalidThresholds, result.InvalidThresholds...)

		if u.state != nil {
			if err := u.state.MarkImported(f, info.Size(), hash, result.WorkoutsInserted); err != nil {
				u.log.Warn("failed to mark uploaded", "file", f, "error", err)
			}
		}
		u.log.Info("uploaded export", "file", f, "workouts", result.WorkoutsInserted, "sets", result.SetsInserted)
	}

	return &u.stats, nil
}

package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/claude/trainload/internal/alpha"
	"github.com/claude/trainload/internal/backup"
	"github.com/claude/trainload/internal/models"
	"github.com/claude/trainload/internal/muscles"
	"github.com/claude/trainload/internal/storage"
	"github.com/google/uuid"
)

// Store is the write side of the history store used by the importer.
type Store interface {
	ReplaceWorkout(ctx context.Context, id uuid.UUID, sourceID string, w models.Workout) (int64, error)
	UpsertCustomExercise(ctx context.Context, ex models.Exercise) error
	SetThresholdOverride(ctx context.Context, m muscles.Muscle, t muscles.Threshold) error
	InsertImportLog(ctx context.Context, log storage.ImportLog) (int64, error)
	UpdateImportLog(ctx context.Context, id int64, log storage.ImportLog) error
}

var _ Store = (*storage.DB)(nil)

// workoutNamespace derives stable ids for workouts whose tracker id is not a UUID.
var workoutNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("trainload.workout"))

// WorkoutUUID returns the storage id for a tracker workout id: the id itself
// when it is a UUID, otherwise a name-based UUID derived from it.
func WorkoutUUID(sourceID string) uuid.UUID {
	if id, err := uuid.Parse(sourceID); err == nil {
		return id
	}
	return uuid.NewSHA1(workoutNamespace, []byte(sourceID))
}

// Stats tracks import progress.
type Stats struct {
	FilesSeen      int `json:"files_seen"`
	FilesProcessed int `json:"files_processed"`
	FilesSkipped   int `json:"files_skipped"`
	FilesErrored   int `json:"files_errored"`

	WorkoutsReceived  int   `json:"workouts_received"`
	WorkoutsInserted  int   `json:"workouts_inserted"`
	ExercisesUpserted int   `json:"exercises_upserted"`
	ThresholdsSet     int   `json:"thresholds_set"`
	SetsInserted      int64 `json:"sets_inserted"`

	InvalidThresholds []string `json:"invalid_thresholds,omitempty"`
}

// Importer reads backup exports and writes their contents to the store.
type Importer struct {
	db     Store
	state  *StateDB
	log    *slog.Logger
	dryRun bool
	stats  Stats
}

// New creates a new Importer. state may be nil, in which case every file is
// imported.
func New(db Store, state *StateDB, log *slog.Logger, dryRun bool) *Importer {
	return &Importer{db: db, state: state, log: log, dryRun: dryRun}
}

// Import processes an export file, or every export file directly under a
// directory, oldest name first. A file that fails to parse is counted and
// skipped; a store failure aborts the run.
func (imp *Importer) Import(ctx context.Context, path string) (*Stats, error) {
	files, err := CollectFiles(path)
	if err != nil {
		return &imp.stats, err
	}
	return imp.logged(ctx, path, func() error {
		return imp.importFiles(ctx, files)
	})
}

// ImportData writes already parsed export data, as received over HTTP.
// source names the origin in the import log.
func (imp *Importer) ImportData(ctx context.Context, source string, data *backup.AppData) (*Stats, error) {
	return imp.logged(ctx, source, func() error {
		imp.stats.FilesSeen++
		if err := imp.importData(ctx, data); err != nil {
			return err
		}
		imp.stats.FilesProcessed++
		return nil
	})
}

// logged runs fn between a "running" import log entry and its final status.
// Dry runs write no log.
func (imp *Importer) logged(ctx context.Context, source string, fn func() error) (*Stats, error) {
	start := time.Now()

	var logID int64
	if !imp.dryRun {
		var err error
		logID, err = imp.db.InsertImportLog(ctx, storage.ImportLog{Source: source, Status: "running"})
		if err != nil {
			return &imp.stats, err
		}
	}

	runErr := fn()

	if !imp.dryRun {
		imp.finishLog(ctx, logID, start, runErr)
	}
	return &imp.stats, runErr
}

func (imp *Importer) importFiles(ctx context.Context, files []string) error {
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		imp.stats.FilesSeen++

		info, err := os.Stat(f)
		if err != nil {
			imp.log.Warn("stat failed", "file", f, "error", err)
			imp.stats.FilesErrored++
			continue
		}
		hash, err := HashFile(f)
		if err != nil {
			imp.log.Warn("hash failed", "file", f, "error", err)
			imp.stats.FilesErrored++
			continue
		}

		if imp.state != nil {
			done, err := imp.state.IsImported(f, info.Size(), hash)
			if err != nil {
				return err
			}
			if done {
				imp.log.Info("skipping unchanged file", "file", f)
				imp.stats.FilesSkipped++
				continue
			}
		}

		data, err := readExport(f)
		if err != nil {
			imp.log.Warn("parse failed", "file", f, "error", err)
			imp.stats.FilesErrored++
			continue
		}

		if err := imp.importData(ctx, data); err != nil {
			return fmt.Errorf("importing %s: %w", filepath.Base(f), err)
		}
		imp.stats.FilesProcessed++

		if imp.state != nil && !imp.dryRun {
			if err := imp.state.MarkImported(f, info.Size(), hash, len(data.Workouts)); err != nil {
				return err
			}
		}
	}
	return nil
}

// importData writes custom exercises first so workouts never reference an
// exercise the store has not seen.
func (imp *Importer) importData(ctx context.Context, data *backup.AppData) error {
	for _, ex := range data.CustomExercises {
		if ex.ID == "" {
			continue
		}
		if !imp.dryRun {
			if err := imp.db.UpsertCustomExercise(ctx, ex); err != nil {
				return err
			}
		}
		imp.stats.ExercisesUpserted++
	}

	overrides := data.ThresholdOverrides()
	names := make([]string, 0, len(overrides))
	for m := range overrides {
		names = append(names, string(m))
	}
	sort.Strings(names)
	for _, name := range names {
		m := muscles.Muscle(name)
		t := overrides[m]
		if !t.Valid() {
			imp.log.Warn("skipping invalid threshold", "muscle", m, "mev", t.MEV, "mrv", t.MRV)
			imp.stats.InvalidThresholds = append(imp.stats.InvalidThresholds, name)
			continue
		}
		if !imp.dryRun {
			if err := imp.db.SetThresholdOverride(ctx, m, t); err != nil {
				return err
			}
		}
		imp.stats.ThresholdsSet++
	}

	for _, w := range data.Workouts {
		imp.stats.WorkoutsReceived++
		if w.ID == "" {
			imp.log.Warn("skipping workout without id", "date", w.Date, "name", w.Name)
			continue
		}
		if _, ok := w.Day(); !ok {
			imp.log.Warn("workout has malformed date, storing as recorded", "workout", w.ID, "date", w.Date)
		}

		if imp.dryRun {
			imp.stats.WorkoutsInserted++
			for _, we := range w.Exercises {
				imp.stats.SetsInserted += int64(len(we.Sets))
			}
			continue
		}
		sets, err := imp.db.ReplaceWorkout(ctx, WorkoutUUID(w.ID), w.ID, w)
		if err != nil {
			return err
		}
		imp.stats.WorkoutsInserted++
		imp.stats.SetsInserted += sets
	}
	return nil
}

func (imp *Importer) finishLog(ctx context.Context, id int64, start time.Time, runErr error) {
	durationMs := int(time.Since(start).Milliseconds())
	entry := storage.ImportLog{
		Status:            "success",
		FilesSeen:         imp.stats.FilesSeen,
		FilesSkipped:      imp.stats.FilesSkipped,
		WorkoutsReceived:  imp.stats.WorkoutsReceived,
		WorkoutsInserted:  imp.stats.WorkoutsInserted,
		ExercisesUpserted: imp.stats.ExercisesUpserted,
		SetsInserted:      imp.stats.SetsInserted,
		DurationMs:        &durationMs,
	}
	if runErr != nil {
		msg := runErr.Error()
		entry.Status = "error"
		entry.ErrorMessage = &msg
	}
	if meta, err := json.Marshal(imp.stats); err == nil {
		raw := json.RawMessage(meta)
		entry.Metadata = &raw
	}
	if err := imp.db.UpdateImportLog(ctx, id, entry); err != nil {
		imp.log.Error("failed to update import log", "id", id, "error", err)
	}
}

// readExport reads a tracker backup or an Alpha Progression CSV export.
func readExport(path string) (*backup.AppData, error) {
	if alpha.IsExportFile(path) {
		return alpha.ReadFile(path)
	}
	return backup.ReadFile(path)
}

// IsExportFile reports whether name is a backup or an Alpha Progression export.
func IsExportFile(name string) bool {
	return backup.IsBackupFile(name) || alpha.IsExportFile(name)
}

// CollectFiles returns path itself when it is a file, or the export files
// directly inside it when it is a directory.
func CollectFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !IsExportFile(e.Name()) {
			continue
		}
		files = append(files, filepath.Join(path, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

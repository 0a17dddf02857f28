// Package backup reads the tracker's full-data JSON export and writes the
// flat CSV export of its workouts.
package backup

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/claude/trainload/internal/history"
	"github.com/claude/trainload/internal/models"
	"github.com/claude/trainload/internal/muscles"
)

// AppData is the subset of the export this service reads. Unknown fields are
// ignored.
type AppData struct {
	Workouts        []models.Workout  `json:"workouts"`
	CustomExercises []models.Exercise `json:"custom_exercises"`
	UserConfig      *UserConfig       `json:"user_config"`
}

// UserConfig holds the user's settings; only the threshold overrides matter here.
type UserConfig struct {
	MuscleThresholds map[string][2]float64 `json:"muscle_thresholds"`
}

// Parse decodes an export. Gzip-compressed input is detected and inflated.
func Parse(data []byte) (*AppData, error) {
	if len(data) >= 2 && data[0] == 0x1f && data[1] == 0x8b {
		zr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("opening gzip stream: %w", err)
		}
		defer zr.Close()
		if data, err = io.ReadAll(zr); err != nil {
			return nil, fmt.Errorf("inflating backup: %w", err)
		}
	}

	var a AppData
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("parsing backup: %w", err)
	}
	for i := range a.CustomExercises {
		a.CustomExercises[i].IsCustom = true
	}
	return &a, nil
}

// ReadFile reads and parses the export at path.
func ReadFile(path string) (*AppData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading backup %s: %w", path, err)
	}
	return Parse(data)
}

// ThresholdOverrides returns the user's MEV/MRV overrides keyed by muscle.
// Entries naming an unknown muscle are dropped.
func (a *AppData) ThresholdOverrides() map[muscles.Muscle]muscles.Threshold {
	if a.UserConfig == nil || len(a.UserConfig.MuscleThresholds) == 0 {
		return nil
	}
	out := make(map[muscles.Muscle]muscles.Threshold, len(a.UserConfig.MuscleThresholds))
	for name, pair := range a.UserConfig.MuscleThresholds {
		if m, ok := muscles.Parse(name); ok {
			out[m] = muscles.Threshold{MEV: pair[0], MRV: pair[1]}
		}
	}
	return out
}

// File serves a backup on disk as a history source. The file is re-read
// whenever its size or modification time changes.
type File struct {
	path string

	mu      sync.Mutex
	data    *AppData
	size    int64
	modTime time.Time
}

// Compile-time check that *File satisfies history.Source.
var _ history.Source = (*File)(nil)

// NewFile returns a source backed by the export at path. Nothing is read
// until the first call.
func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) load() (*AppData, error) {
	info, err := os.Stat(f.path)
	if err != nil {
		return nil, fmt.Errorf("stat backup: %w", err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.data != nil && info.Size() == f.size && info.ModTime().Equal(f.modTime) {
		return f.data, nil
	}

	data, err := ReadFile(f.path)
	if err != nil {
		return nil, err
	}
	f.data, f.size, f.modTime = data, info.Size(), info.ModTime()
	return data, nil
}

func (f *File) ListWorkouts(_ context.Context) ([]models.Workout, error) {
	a, err := f.load()
	if err != nil {
		return nil, err
	}
	return a.Workouts, nil
}

func (f *File) ListCustomExercises(_ context.Context) ([]models.Exercise, error) {
	a, err := f.load()
	if err != nil {
		return nil, err
	}
	return a.CustomExercises, nil
}

func (f *File) GetThresholdOverrides(_ context.Context) (map[muscles.Muscle]muscles.Threshold, error) {
	a, err := f.load()
	if err != nil {
		return nil, err
	}
	return a.ThresholdOverrides(), nil
}

// IsBackupFile reports whether name looks like an export this package reads.
func IsBackupFile(name string) bool {
	return strings.HasSuffix(name, ".json") || strings.HasSuffix(name, ".json.gz")
}

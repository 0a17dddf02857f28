// Package analytics turns a workout history snapshot into per-muscle training
// load signals. Every function here is pure: inputs are read, never written,
// and nothing performs I/O.
package analytics

import (
	"time"

	"github.com/claude/trainload/internal/models"
	"github.com/claude/trainload/internal/muscles"
)

// ExerciseCatalog resolves an exercise id to its catalog entry.
type ExerciseCatalog interface {
	Lookup(exerciseID string) (models.Exercise, bool)
}

// Catalog combines the built-in exercise table with user-defined exercises.
type Catalog struct {
	custom map[string]models.Exercise
}

// NewCatalog indexes the given custom exercises. Entries are copied and
// flagged custom.
func NewCatalog(custom []models.Exercise) *Catalog {
	c := &Catalog{custom: make(map[string]models.Exercise, len(custom))}
	for _, ex := range custom {
		ex.IsCustom = true
		ex.MuscleGroups = append([]string(nil), ex.MuscleGroups...)
		c.custom[ex.ID] = ex
	}
	return c
}

// Lookup returns the custom exercise with this id, or a synthesized entry for
// a built-in one.
func (c *Catalog) Lookup(exerciseID string) (models.Exercise, bool) {
	if c != nil {
		if ex, ok := c.custom[exerciseID]; ok {
			return ex, true
		}
	}
	if name, ok := muscles.BuiltinName(exerciseID); ok {
		return models.Exercise{ID: exerciseID, Name: name}, true
	}
	return models.Exercise{}, false
}

// Snapshot is everything an analyzer reads: the workout history, the exercise
// catalog, the merged threshold table and the current calendar day.
type Snapshot struct {
	Workouts   []models.Workout
	Catalog    ExerciseCatalog
	Thresholds map[muscles.Muscle]muscles.Threshold
	Today      time.Time
}

// NewSnapshot merges threshold overrides over the defaults and pins today to
// a calendar day.
func NewSnapshot(workouts []models.Workout, catalog ExerciseCatalog, today time.Time, overrides ...map[muscles.Muscle]muscles.Threshold) Snapshot {
	return Snapshot{
		Workouts:   workouts,
		Catalog:    catalog,
		Thresholds: muscles.MergeThresholds(overrides...),
		Today:      CalendarDay(today),
	}
}

func (s Snapshot) threshold(m muscles.Muscle) muscles.Threshold {
	return muscles.ThresholdFor(s.Thresholds, m)
}

func (s Snapshot) exerciseName(exerciseID string) string {
	if s.Catalog != nil {
		if ex, ok := s.Catalog.Lookup(exerciseID); ok && ex.Name != "" {
			return ex.Name
		}
	}
	return exerciseID
}

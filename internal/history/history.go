// Package history loads a workout history from wherever it is kept and turns
// it into an analytics snapshot.
package history

import (
	"context"
	"fmt"
	"time"

	"github.com/claude/trainload/internal/analytics"
	"github.com/claude/trainload/internal/models"
	"github.com/claude/trainload/internal/muscles"
	"github.com/claude/trainload/internal/storage"
)

// Source provides the three inputs the analytics need.
type Source interface {
	ListWorkouts(ctx context.Context) ([]models.Workout, error)
	ListCustomExercises(ctx context.Context) ([]models.Exercise, error)
	GetThresholdOverrides(ctx context.Context) (map[muscles.Muscle]muscles.Threshold, error)
}

// Compile-time check that *storage.DB satisfies Source.
var _ Source = (*storage.DB)(nil)

// Load reads src and builds a snapshot pinned to today's calendar day.
// Threshold layers apply in order: defaults, configured, then stored.
func Load(ctx context.Context, src Source, configured map[muscles.Muscle]muscles.Threshold, today time.Time) (analytics.Snapshot, error) {
	workouts, err := src.ListWorkouts(ctx)
	if err != nil {
		return analytics.Snapshot{}, fmt.Errorf("loading workouts: %w", err)
	}
	custom, err := src.ListCustomExercises(ctx)
	if err != nil {
		return analytics.Snapshot{}, fmt.Errorf("loading custom exercises: %w", err)
	}
	stored, err := src.GetThresholdOverrides(ctx)
	if err != nil {
		return analytics.Snapshot{}, fmt.Errorf("loading threshold overrides: %w", err)
	}
	return analytics.NewSnapshot(workouts, analytics.NewCatalog(custom), today, configured, stored), nil
}

// ParseDay parses a YYYY-MM-DD override for "today". An empty string yields
// fallback.
func ParseDay(s string, fallback time.Time) (time.Time, error) {
	if s == "" {
		return fallback, nil
	}
	d, err := time.Parse(models.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", s)
	}
	return d, nil
}

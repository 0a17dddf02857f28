package storage

import (
	"context"
	"fmt"
)

// DataStats holds aggregate statistics about all stored data.
type DataStats struct {
	TotalWorkouts   int64          `json:"total_workouts"`
	TotalSets       int64          `json:"total_sets"`
	CompletedSets   int64          `json:"completed_sets"`
	CustomExercises int64          `json:"custom_exercises"`
	Overrides       int64          `json:"threshold_overrides"`
	EarliestDate    *string        `json:"earliest_date"`
	LatestDate      *string        `json:"latest_date"`
	TopExercises    []ExerciseStat `json:"top_exercises"`
}

// ExerciseStat counts how often an exercise appears in the history.
type ExerciseStat struct {
	ExerciseID string `json:"exercise_id"`
	Workouts   int64  `json:"workouts"`
	Sets       int64  `json:"completed_sets"`
}

// GetDataStats returns aggregate statistics for the stored history.
func (db *DB) GetDataStats(ctx context.Context) (*DataStats, error) {
	stats := &DataStats{}

	err := db.Pool.QueryRow(ctx,
		`SELECT
		   (SELECT COUNT(*) FROM workouts),
		   (SELECT COUNT(*) FROM workout_sets),
		   (SELECT COUNT(*) FROM workout_sets WHERE completed),
		   (SELECT COUNT(*) FROM exercises),
		   (SELECT COUNT(*) FROM muscle_thresholds)`,
	).Scan(&stats.TotalWorkouts, &stats.TotalSets, &stats.CompletedSets, &stats.CustomExercises, &stats.Overrides)
	if err != nil {
		return nil, fmt.Errorf("counting rows: %w", err)
	}

	// Only well-formed dates bound the range.
	err = db.Pool.QueryRow(ctx,
		`SELECT MIN(date), MAX(date) FROM workouts WHERE date ~ '^\d{4}-\d{2}-\d{2}$'`,
	).Scan(&stats.EarliestDate, &stats.LatestDate)
	if err != nil {
		return nil, fmt.Errorf("querying date range: %w", err)
	}

	rows, err := db.Pool.Query(ctx,
		`SELECT e.exercise_id, COUNT(DISTINCT e.workout_id),
		   COUNT(s.set_number) FILTER (WHERE s.completed)
		 FROM workout_exercises e
		 LEFT JOIN workout_sets s ON s.workout_id = e.workout_id AND s.exercise_position = e.position
		 GROUP BY e.exercise_id
		 ORDER BY COUNT(DISTINCT e.workout_id) DESC, e.exercise_id
		 LIMIT 10`)
	if err != nil {
		return nil, fmt.Errorf("querying exercise stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var s ExerciseStat
		if err := rows.Scan(&s.ExerciseID, &s.Workouts, &s.Sets); err != nil {
			return nil, fmt.Errorf("scanning exercise stat: %w", err)
		}
		stats.TopExercises = append(stats.TopExercises, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}

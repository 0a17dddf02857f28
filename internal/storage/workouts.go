package storage

import (
	"context"
	"fmt"

	"github.com/claude/trainload/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ReplaceWorkout stores a workout under id, replacing any earlier copy along
// with its exercises and sets. sourceID is the id the workout had in the
// tracker. Returns the number of sets written.
func (db *DB) ReplaceWorkout(ctx context.Context, id uuid.UUID, sourceID string, w models.Workout) (int64, error) {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("beginning tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	_, err = tx.Exec(ctx,
		`INSERT INTO workouts (id, source_id, name, date, duration_mins)
		 VALUES ($1,$2,$3,$4,$5)
		 ON CONFLICT (id) DO UPDATE SET
		   source_id = EXCLUDED.source_id, name = EXCLUDED.name,
		   date = EXCLUDED.date, duration_mins = EXCLUDED.duration_mins,
		   imported_at = NOW()`,
		id, sourceID, w.Name, w.Date, w.DurationMins)
	if err != nil {
		return 0, fmt.Errorf("upserting workout: %w", err)
	}

	// Sets go with their exercises via ON DELETE CASCADE.
	if _, err := tx.Exec(ctx, `DELETE FROM workout_exercises WHERE workout_id = $1`, id); err != nil {
		return 0, fmt.Errorf("clearing workout exercises: %w", err)
	}

	if len(w.Exercises) > 0 {
		args := make([]any, 0, len(w.Exercises)*6)
		for pos, we := range w.Exercises {
			args = append(args, id, pos, we.ExerciseID, we.Notes, we.SupersetGroup, we.RestSecondsOverride)
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO workout_exercises (workout_id, position, exercise_id, notes, superset_group, rest_seconds_override) VALUES `+
				valuesClause(len(w.Exercises), 6),
			args...)
		if err != nil {
			return 0, fmt.Errorf("inserting workout exercises: %w", err)
		}
	}

	var setCount int
	for _, we := range w.Exercises {
		setCount += len(we.Sets)
	}
	var inserted int64
	if setCount > 0 {
		args := make([]any, 0, setCount*9)
		for pos, we := range w.Exercises {
			for n, s := range we.Sets {
				args = append(args, id, pos, n, s.Weight, s.Reps, s.Distance, s.DurationSecs, s.Completed, s.Note)
			}
		}
		tag, err := tx.Exec(ctx,
			`INSERT INTO workout_sets (workout_id, exercise_position, set_number, weight, reps, distance, duration_secs, completed, note) VALUES `+
				valuesClause(setCount, 9),
			args...)
		if err != nil {
			return 0, fmt.Errorf("inserting workout sets: %w", err)
		}
		inserted = tag.RowsAffected()
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("committing workout: %w", err)
	}
	return inserted, nil
}

// ListWorkouts returns every stored workout with its exercises and sets,
// oldest first.
func (db *DB) ListWorkouts(ctx context.Context) ([]models.Workout, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, name, date, duration_mins FROM workouts ORDER BY date ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("querying workouts: %w", err)
	}
	defer rows.Close()

	workouts, err := scanWorkoutRows(rows)
	if err != nil {
		return nil, err
	}
	if err := db.attachExercises(ctx, workouts, "", nil); err != nil {
		return nil, err
	}
	return workouts, nil
}

// GetWorkout retrieves a single workout by ID with its exercises and sets.
func (db *DB) GetWorkout(ctx context.Context, workoutID uuid.UUID) (*models.Workout, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, name, date, duration_mins FROM workouts WHERE id = $1`, workoutID)
	if err != nil {
		return nil, fmt.Errorf("querying workout: %w", err)
	}
	defer rows.Close()

	workouts, err := scanWorkoutRows(rows)
	if err != nil {
		return nil, err
	}
	if len(workouts) == 0 {
		return nil, ErrNotFound
	}
	if err := db.attachExercises(ctx, workouts, "WHERE workout_id = $1", []any{workoutID}); err != nil {
		return nil, err
	}
	return &workouts[0], nil
}

// WorkoutSummary is a list entry without set detail.
type WorkoutSummary struct {
	ID            string  `json:"id"`
	SourceID      string  `json:"source_id"`
	Name          string  `json:"name"`
	Date          string  `json:"date"`
	DurationMins  int     `json:"duration_mins"`
	Exercises     int     `json:"exercises"`
	CompletedSets int     `json:"completed_sets"`
	Volume        float64 `json:"volume"`
}

// QueryWorkoutSummaries returns the most recent workouts, newest first.
func (db *DB) QueryWorkoutSummaries(ctx context.Context, limit int) ([]WorkoutSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.Pool.Query(ctx,
		`SELECT w.id, w.source_id, w.name, w.date, w.duration_mins,
		   (SELECT COUNT(*) FROM workout_exercises e WHERE e.workout_id = w.id),
		   COALESCE(SUM(CASE WHEN s.completed THEN 1 ELSE 0 END), 0),
		   COALESCE(SUM(CASE
		     WHEN NOT s.completed THEN 0
		     WHEN s.distance IS NOT NULL THEN s.distance * 10
		     WHEN s.duration_secs IS NOT NULL THEN s.duration_secs::float8 / 6
		     ELSE s.weight * s.reps END), 0)
		 FROM workouts w
		 LEFT JOIN workout_sets s ON s.workout_id = w.id
		 GROUP BY w.id
		 ORDER BY w.date DESC, w.id
		 LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying workout summaries: %w", err)
	}
	defer rows.Close()

	var result []WorkoutSummary
	for rows.Next() {
		var s WorkoutSummary
		var id uuid.UUID
		if err := rows.Scan(&id, &s.SourceID, &s.Name, &s.Date, &s.DurationMins,
			&s.Exercises, &s.CompletedSets, &s.Volume); err != nil {
			return nil, fmt.Errorf("scanning workout summary: %w", err)
		}
		s.ID = id.String()
		result = append(result, s)
	}
	return result, rows.Err()
}

func scanWorkoutRows(rows pgx.Rows) ([]models.Workout, error) {
	var result []models.Workout
	for rows.Next() {
		var w models.Workout
		var id uuid.UUID
		if err := rows.Scan(&id, &w.Name, &w.Date, &w.DurationMins); err != nil {
			return nil, fmt.Errorf("scanning workout: %w", err)
		}
		w.ID = id.String()
		result = append(result, w)
	}
	return result, rows.Err()
}

// attachExercises loads exercises and sets for the given workouts. filter is
// an optional WHERE clause on workout_id shared by both child queries.
func (db *DB) attachExercises(ctx context.Context, workouts []models.Workout, filter string, args []any) error {
	byID := make(map[string]*models.Workout, len(workouts))
	for i := range workouts {
		byID[workouts[i].ID] = &workouts[i]
	}

	exRows, err := db.Pool.Query(ctx,
		`SELECT workout_id, position, exercise_id, notes, superset_group, rest_seconds_override
		 FROM workout_exercises `+filter+`
		 ORDER BY workout_id, position`, args...)
	if err != nil {
		return fmt.Errorf("querying workout exercises: %w", err)
	}
	defer exRows.Close()

	for exRows.Next() {
		var workoutID uuid.UUID
		var pos int
		var we models.WorkoutExercise
		if err := exRows.Scan(&workoutID, &pos, &we.ExerciseID, &we.Notes, &we.SupersetGroup, &we.RestSecondsOverride); err != nil {
			return fmt.Errorf("scanning workout exercise: %w", err)
		}
		if w, ok := byID[workoutID.String()]; ok {
			w.Exercises = append(w.Exercises, we)
		}
	}
	if err := exRows.Err(); err != nil {
		return err
	}

	setRows, err := db.Pool.Query(ctx,
		`SELECT workout_id, exercise_position, weight, reps, distance, duration_secs, completed, note
		 FROM workout_sets `+filter+`
		 ORDER BY workout_id, exercise_position, set_number`, args...)
	if err != nil {
		return fmt.Errorf("querying workout sets: %w", err)
	}
	defer setRows.Close()

	for setRows.Next() {
		var workoutID uuid.UUID
		var pos int
		var s models.WorkoutSet
		if err := setRows.Scan(&workoutID, &pos, &s.Weight, &s.Reps, &s.Distance, &s.DurationSecs, &s.Completed, &s.Note); err != nil {
			return fmt.Errorf("scanning workout set: %w", err)
		}
		w, ok := byID[workoutID.String()]
		if !ok || pos < 0 || pos >= len(w.Exercises) {
			continue
		}
		w.Exercises[pos].Sets = append(w.Exercises[pos].Sets, s)
	}
	return setRows.Err()
}

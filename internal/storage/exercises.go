package storage

import (
	"context"
	"fmt"

	"github.com/claude/trainload/internal/models"
)

// UpsertCustomExercise inserts or replaces a user-defined exercise.
func (db *DB) UpsertCustomExercise(ctx context.Context, ex models.Exercise) error {
	groups := ex.MuscleGroups
	if groups == nil {
		groups = []string{}
	}
	_, err := db.Pool.Exec(ctx,
		`INSERT INTO exercises (id, name, category, equipment, muscle_groups, description, tracking_type, image)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		 ON CONFLICT (id) DO UPDATE SET
		   name = EXCLUDED.name, category = EXCLUDED.category, equipment = EXCLUDED.equipment,
		   muscle_groups = EXCLUDED.muscle_groups, description = EXCLUDED.description,
		   tracking_type = EXCLUDED.tracking_type, image = EXCLUDED.image, updated_at = NOW()`,
		ex.ID, ex.Name, string(ex.Category), string(ex.Equipment), groups,
		ex.Description, string(ex.TrackingType), ex.Image)
	if err != nil {
		return fmt.Errorf("upserting exercise %s: %w", ex.ID, err)
	}
	return nil
}

// ListCustomExercises returns every stored user-defined exercise by name.
func (db *DB) ListCustomExercises(ctx context.Context) ([]models.Exercise, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, name, category, equipment, muscle_groups, description, tracking_type, image
		 FROM exercises ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("querying exercises: %w", err)
	}
	defer rows.Close()

	var result []models.Exercise
	for rows.Next() {
		var ex models.Exercise
		var category, equipment, tracking string
		if err := rows.Scan(&ex.ID, &ex.Name, &category, &equipment, &ex.MuscleGroups,
			&ex.Description, &tracking, &ex.Image); err != nil {
			return nil, fmt.Errorf("scanning exercise: %w", err)
		}
		ex.Category = models.Category(category)
		ex.Equipment = models.Equipment(equipment)
		ex.TrackingType = models.TrackingType(tracking)
		ex.IsCustom = true
		result = append(result, ex)
	}
	return result, rows.Err()
}

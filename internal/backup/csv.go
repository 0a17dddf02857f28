package backup

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/claude/trainload/internal/models"
)

// NameLookup resolves an exercise id to a display name.
type NameLookup interface {
	Lookup(exerciseID string) (models.Exercise, bool)
}

var csvHeader = []string{
	"date", "workout_name", "duration_mins", "exercise", "set_number",
	"weight_kg", "reps", "distance_km", "duration_secs", "completed", "note",
}

// WriteCSV writes one row per set. Exercises missing from names are written
// under their id.
func WriteCSV(w io.Writer, workouts []models.Workout, names NameLookup) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	for _, wo := range workouts {
		for _, we := range wo.Exercises {
			name := we.ExerciseID
			if names != nil {
				if ex, ok := names.Lookup(we.ExerciseID); ok && ex.Name != "" {
					name = ex.Name
				}
			}
			for i, s := range we.Sets {
				var dist, dur, note string
				if s.Distance != nil {
					dist = strconv.FormatFloat(*s.Distance, 'f', -1, 64)
				}
				if s.DurationSecs != nil {
					dur = strconv.Itoa(*s.DurationSecs)
				}
				if s.Note != nil {
					note = *s.Note
				}
				record := []string{
					wo.Date,
					wo.Name,
					strconv.Itoa(wo.DurationMins),
					name,
					strconv.Itoa(i + 1),
					strconv.FormatFloat(s.Weight, 'f', -1, 64),
					strconv.Itoa(s.Reps),
					dist,
					dur,
					strconv.FormatBool(s.Completed),
					note,
				}
				if err := cw.Write(record); err != nil {
					return fmt.Errorf("writing csv row: %w", err)
				}
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

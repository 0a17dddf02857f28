package analytics

import (
	"time"

	"github.com/claude/trainload/internal/models"
	"github.com/claude/trainload/internal/muscles"
)

// Contributions resolves an exercise through the catalog: custom entries are
// parsed from their muscle groups, everything else uses the built-in table.
func Contributions(catalog ExerciseCatalog, exerciseID string) []muscles.Contribution {
	if catalog != nil {
		if ex, ok := catalog.Lookup(exerciseID); ok && ex.IsCustom {
			return muscles.Resolve(exerciseID, true, ex.MuscleGroups)
		}
	}
	return muscles.Builtin(exerciseID)
}

// emitWorkoutSets credits every exercise with at least one completed set.
func emitWorkoutSets(catalog ExerciseCatalog, wo *models.Workout, add func(muscles.Muscle, float64)) {
	for _, we := range wo.Exercises {
		n := we.CompletedSets()
		if n == 0 {
			continue
		}
		for _, c := range Contributions(catalog, we.ExerciseID) {
			add(c.Muscle, float64(n)*c.Weight)
		}
	}
}

// SessionSets returns per-muscle effective sets for a single workout.
func SessionSets(wo models.Workout, catalog ExerciseCatalog) map[muscles.Muscle]float64 {
	out := make(map[muscles.Muscle]float64)
	emitWorkoutSets(catalog, &wo, func(m muscles.Muscle, v float64) { out[m] += v })
	return out
}

// AggregateOverRange totals effective sets per muscle across every workout
// dated in [from, to].
func AggregateOverRange(workouts []models.Workout, catalog ExerciseCatalog, from, to time.Time) map[muscles.Muscle]float64 {
	return aggregate(workouts, catalog, Between(from, to))
}

func aggregate(workouts []models.Workout, catalog ExerciseCatalog, w Window) map[muscles.Muscle]float64 {
	return WindowSum(workouts, w, func(_ time.Time, wo *models.Workout, add func(muscles.Muscle, float64)) {
		emitWorkoutSets(catalog, wo, add)
	})
}

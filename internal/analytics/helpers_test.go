package analytics

import (
	"math"
	"time"

	"github.com/claude/trainload/internal/models"
)

// refToday is the fixed "today" used throughout the tests.
var refToday = time.Date(2024, 1, 7, 15, 30, 0, 0, time.UTC)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// daysAgo formats refToday minus n days.
func daysAgo(n int) string {
	return CalendarDay(refToday).AddDate(0, 0, -n).Format(models.DateLayout)
}

// sets builds n completed sets of weight×reps.
func sets(n int, weight float64, reps int) []models.WorkoutSet {
	out := make([]models.WorkoutSet, n)
	for i := range out {
		out[i] = models.WorkoutSet{Weight: weight, Reps: reps, Completed: true}
	}
	return out
}

func exercise(id string, s ...models.WorkoutSet) models.WorkoutExercise {
	return models.WorkoutExercise{ExerciseID: id, Sets: s}
}

func workout(date string, exs ...models.WorkoutExercise) models.Workout {
	return models.Workout{ID: "w-" + date, Date: date, Exercises: exs}
}

func snapshot(workouts ...models.Workout) Snapshot {
	return NewSnapshot(workouts, NewCatalog(nil), refToday)
}

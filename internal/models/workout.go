package models

import "time"

// DateLayout is the calendar-date format workouts are recorded with.
const DateLayout = "2006-01-02"

// WorkoutSet is a single logged set.
type WorkoutSet struct {
	Weight       float64  `json:"weight"`
	Reps         int      `json:"reps"`
	Distance     *float64 `json:"distance,omitempty"`
	DurationSecs *int     `json:"duration_secs,omitempty"`
	Completed    bool     `json:"completed"`
	Note         *string  `json:"note,omitempty"`
}

// WorkoutExercise is one exercise performed within a workout, with its sets in order.
type WorkoutExercise struct {
	ExerciseID          string       `json:"exercise_id"`
	Sets                []WorkoutSet `json:"sets"`
	Notes               string       `json:"notes"`
	SupersetGroup       *int         `json:"superset_group,omitempty"`
	RestSecondsOverride *int         `json:"rest_seconds_override,omitempty"`
}

// CompletedSets counts the sets marked completed.
func (we WorkoutExercise) CompletedSets() int {
	n := 0
	for _, s := range we.Sets {
		if s.Completed {
			n++
		}
	}
	return n
}

// Volume returns the tonnage-style volume of the completed sets. Cardio sets
// are scored by distance (1 km = 10) or duration (1 min = 10).
func (we WorkoutExercise) Volume() float64 {
	var v float64
	for _, s := range we.Sets {
		if !s.Completed {
			continue
		}
		switch {
		case s.Distance != nil:
			v += *s.Distance * 10
		case s.DurationSecs != nil:
			v += float64(*s.DurationSecs) / 6
		default:
			v += s.Weight * float64(s.Reps)
		}
	}
	return v
}

// Workout is a saved training session. Date is kept as recorded so that a
// malformed value excludes only this record from date-bounded analysis.
type Workout struct {
	ID           string            `json:"id"`
	Date         string            `json:"date"`
	Name         string            `json:"name"`
	Exercises    []WorkoutExercise `json:"exercises"`
	DurationMins int               `json:"duration_mins"`
}

// Day parses the workout date as a UTC calendar day.
func (w Workout) Day() (time.Time, bool) {
	d, err := time.Parse(DateLayout, w.Date)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// CompletedSets counts completed sets across all exercises.
func (w Workout) CompletedSets() int {
	n := 0
	for _, we := range w.Exercises {
		n += we.CompletedSets()
	}
	return n
}

// TotalVolume sums the volume of every exercise.
func (w Workout) TotalVolume() float64 {
	var v float64
	for _, we := range w.Exercises {
		v += we.Volume()
	}
	return v
}

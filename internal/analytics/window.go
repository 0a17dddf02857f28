package analytics

import (
	"time"

	"github.com/claude/trainload/internal/models"
)

// Window is an inclusive range of calendar days.
type Window struct {
	From time.Time
	To   time.Time
}

// CalendarDay drops the time of day, keeping t's own year, month and day.
func CalendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// LastDays returns the n-day window ending on today, e.g. n=7 covers
// today-6 through today.
func LastDays(today time.Time, n int) Window {
	t := CalendarDay(today)
	return Window{From: t.AddDate(0, 0, -(n - 1)), To: t}
}

// Between returns the window [from, to] on calendar days.
func Between(from, to time.Time) Window {
	return Window{From: CalendarDay(from), To: CalendarDay(to)}
}

// Contains reports whether day falls in the window, both ends inclusive.
func (w Window) Contains(day time.Time) bool {
	return !day.Before(w.From) && !day.After(w.To)
}

// Days is the number of calendar days covered.
func (w Window) Days() int {
	return daysBetween(w.From, w.To) + 1
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

// EachInWindow calls fn for every workout dated inside w. Workouts whose
// date doesn't parse are skipped.
func EachInWindow(workouts []models.Workout, w Window, fn func(day time.Time, wo *models.Workout)) {
	for i := range workouts {
		day, ok := workouts[i].Day()
		if !ok || !w.Contains(day) {
			continue
		}
		fn(day, &workouts[i])
	}
}

// Number is a summable value.
type Number interface {
	~int | ~float64
}

// WindowSum folds the values emitted by extract for every workout inside w
// into one per-key running total. Keys that are never emitted are absent.
func WindowSum[K comparable, V Number](workouts []models.Workout, w Window, extract func(day time.Time, wo *models.Workout, add func(K, V))) map[K]V {
	out := make(map[K]V)
	add := func(k K, v V) { out[k] += v }
	EachInWindow(workouts, w, func(day time.Time, wo *models.Workout) {
		extract(day, wo, add)
	})
	return out
}

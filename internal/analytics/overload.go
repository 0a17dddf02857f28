package analytics

import (
	"sort"
	"time"

	"github.com/claude/trainload/internal/models"
)

// OverloadWindowDays is the span of the overload and rep-range checks.
const OverloadWindowDays = 28

// trendThresholdPct separates a real change from noise.
const trendThresholdPct = 2.0

// Trend is the direction of an exercise's estimated 1RM.
type Trend string

const (
	TrendProgressing Trend = "Progressing"
	TrendStagnant    Trend = "Stagnant"
	TrendRegressing  Trend = "Regressing"
)

// EstimateOneRepMax applies the Epley formula: weight × (1 + reps/30).
func EstimateOneRepMax(weight float64, reps int) float64 {
	return weight * (1 + float64(reps)/30)
}

// ClassifyTrend maps a percentage change to a trend; ±2% is stagnant.
func ClassifyTrend(pct float64) Trend {
	switch {
	case pct > trendThresholdPct:
		return TrendProgressing
	case pct < -trendThresholdPct:
		return TrendRegressing
	default:
		return TrendStagnant
	}
}

// SplitTrend compares the average of the later half of a date-ordered series
// with the earlier half. Odd lengths give the extra point to the later half.
// Series shorter than two points, or with a non-positive early average,
// report ok=false.
func SplitTrend(series []float64) (early, late, pct float64, ok bool) {
	n := len(series)
	if n < 2 {
		return 0, 0, 0, false
	}
	mid := n / 2
	early = mean(series[:mid])
	late = mean(series[mid:])
	if early <= 0 {
		return early, late, 0, false
	}
	return early, late, (late - early) / early * 100, true
}

func mean(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// OverloadEntry is the four-week e1RM trend of one exercise.
type OverloadEntry struct {
	ExerciseID string  `json:"exercise_id"`
	Name       string  `json:"name"`
	Sessions   int     `json:"sessions"`
	EarlyAvg   float64 `json:"early_avg_e1rm"`
	LateAvg    float64 `json:"late_avg_e1rm"`
	ChangePct  float64 `json:"change_pct"`
	RecentE1RM float64 `json:"recent_e1rm"`
	Trend      Trend   `json:"trend"`
}

type e1rmSession struct {
	day  time.Time
	e1rm float64
}

// OverloadTrends reports the e1RM trend of every exercise with at least two
// qualifying sessions in the last 28 days, sorted by name. A session
// qualifies when it has a completed set with positive weight and reps.
func OverloadTrends(s Snapshot) []OverloadEntry {
	byExercise := make(map[string][]e1rmSession)
	var order []string

	EachInWindow(s.Workouts, LastDays(s.Today, OverloadWindowDays), func(day time.Time, wo *models.Workout) {
		best := sessionBestE1RM(wo)
		for _, id := range best.ids {
			if _, seen := byExercise[id]; !seen {
				order = append(order, id)
			}
			byExercise[id] = append(byExercise[id], e1rmSession{day: day, e1rm: best.max[id]})
		}
	})

	var out []OverloadEntry
	for _, id := range order {
		sessions := byExercise[id]
		if len(sessions) < 2 {
			continue
		}
		sort.SliceStable(sessions, func(i, j int) bool { return sessions[i].day.Before(sessions[j].day) })

		series := make([]float64, len(sessions))
		for i, ss := range sessions {
			series[i] = ss.e1rm
		}
		early, late, pct, ok := SplitTrend(series)
		if !ok {
			continue
		}
		out = append(out, OverloadEntry{
			ExerciseID: id,
			Name:       s.exerciseName(id),
			Sessions:   len(sessions),
			EarlyAvg:   early,
			LateAvg:    late,
			ChangePct:  pct,
			RecentE1RM: series[len(series)-1],
			Trend:      ClassifyTrend(pct),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ExerciseID < out[j].ExerciseID
	})
	return out
}

type sessionBest struct {
	ids []string
	max map[string]float64
}

// sessionBestE1RM returns the best e1RM per exercise within one workout.
// An exercise logged twice in the same workout is still one session.
func sessionBestE1RM(wo *models.Workout) sessionBest {
	best := sessionBest{max: make(map[string]float64)}
	for _, we := range wo.Exercises {
		for _, set := range we.Sets {
			if !set.Completed || set.Weight <= 0 || set.Reps <= 0 {
				continue
			}
			e := EstimateOneRepMax(set.Weight, set.Reps)
			cur, seen := best.max[we.ExerciseID]
			if !seen {
				best.ids = append(best.ids, we.ExerciseID)
			}
			if !seen || e > cur {
				best.max[we.ExerciseID] = e
			}
		}
	}
	return best
}

// HasStagnant reports whether any exercise has plateaued.
func HasStagnant(entries []OverloadEntry) bool {
	for _, e := range entries {
		if e.Trend == TrendStagnant {
			return true
		}
	}
	return false
}

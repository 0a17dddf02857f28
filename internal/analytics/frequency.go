package analytics

import (
	"time"

	"github.com/claude/trainload/internal/models"
	"github.com/claude/trainload/internal/muscles"
)

// FrequencyWindowDays is the span of the frequency and session-volume checks.
const FrequencyWindowDays = 14

// Zone is the traffic-light rating rendered next to a signal.
type Zone string

const (
	ZoneGreen   Zone = "green"
	ZoneYellow  Zone = "yellow"
	ZoneRed     Zone = "red"
	ZoneNeutral Zone = "neutral"
)

// MuscleFrequency is how often a muscle was trained over the last two weeks.
type MuscleFrequency struct {
	Muscle  muscles.Muscle `json:"muscle"`
	Days    int            `json:"days"`
	PerWeek float64        `json:"per_week"`
	Zone    Zone           `json:"zone"`
}

// ClassifyFrequency rates sessions per week: 2+ green, 1 to 2 yellow, else red.
func ClassifyFrequency(perWeek float64) Zone {
	switch {
	case perWeek >= 2.0:
		return ZoneGreen
	case perWeek >= 1.0:
		return ZoneYellow
	default:
		return ZoneRed
	}
}

// Frequency counts the distinct days each muscle was trained in the last 14
// days. Several exercises hitting the same muscle on one day count once.
// An empty history yields nil.
func Frequency(s Snapshot) []MuscleFrequency {
	if len(s.Workouts) == 0 {
		return nil
	}

	days := make(map[muscles.Muscle]map[time.Time]struct{})
	EachInWindow(s.Workouts, LastDays(s.Today, FrequencyWindowDays), func(day time.Time, wo *models.Workout) {
		for m, v := range SessionSets(*wo, s.Catalog) {
			if v <= 0 {
				continue
			}
			if days[m] == nil {
				days[m] = make(map[time.Time]struct{})
			}
			days[m][day] = struct{}{}
		}
	})

	out := make([]MuscleFrequency, 0, len(muscles.Tracked))
	for _, m := range muscles.Tracked {
		n := len(days[m])
		perWeek := float64(n) / 2.0
		out = append(out, MuscleFrequency{
			Muscle:  m,
			Days:    n,
			PerWeek: perWeek,
			Zone:    ClassifyFrequency(perWeek),
		})
	}
	return out
}

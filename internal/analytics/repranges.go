package analytics

import (
	"time"

	"github.com/claude/trainload/internal/models"
)

// RepRange is the training quality a rep count targets.
type RepRange string

const (
	RangeStrength    RepRange = "strength"
	RangeHypertrophy RepRange = "hypertrophy"
	RangeEndurance   RepRange = "endurance"
)

// ClassifyReps buckets a set: 1-5 strength, 6-12 hypertrophy, 13+ endurance.
func ClassifyReps(reps int) (RepRange, bool) {
	switch {
	case reps <= 0:
		return "", false
	case reps <= 5:
		return RangeStrength, true
	case reps <= 12:
		return RangeHypertrophy, true
	default:
		return RangeEndurance, true
	}
}

// RepRangeProfile is the rep-count histogram of the last four weeks.
// Percentages are truncated, so they may sum to less than 100.
type RepRangeProfile struct {
	Total          int  `json:"total"`
	Strength       int  `json:"strength"`
	Hypertrophy    int  `json:"hypertrophy"`
	Endurance      int  `json:"endurance"`
	StrengthPct    int  `json:"strength_pct"`
	HypertrophyPct int  `json:"hypertrophy_pct"`
	EndurancePct   int  `json:"endurance_pct"`
	SingleRange    bool `json:"single_range"`
}

// RepRanges profiles every completed set with reps in the last 28 days.
// With no such sets it reports ok=false.
func RepRanges(s Snapshot) (RepRangeProfile, bool) {
	counts := WindowSum(s.Workouts, LastDays(s.Today, OverloadWindowDays), func(_ time.Time, wo *models.Workout, add func(RepRange, int)) {
		for _, we := range wo.Exercises {
			for _, set := range we.Sets {
				if !set.Completed {
					continue
				}
				if r, ok := ClassifyReps(set.Reps); ok {
					add(r, 1)
				}
			}
		}
	})
	return profileFromCounts(counts[RangeStrength], counts[RangeHypertrophy], counts[RangeEndurance])
}

func profileFromCounts(strength, hypertrophy, endurance int) (RepRangeProfile, bool) {
	total := strength + hypertrophy + endurance
	if total == 0 {
		return RepRangeProfile{}, false
	}
	pct := func(n int) int { return int(float64(n) / float64(total) * 100) }

	p := RepRangeProfile{
		Total:          total,
		Strength:       strength,
		Hypertrophy:    hypertrophy,
		Endurance:      endurance,
		StrengthPct:    pct(strength),
		HypertrophyPct: pct(hypertrophy),
		EndurancePct:   pct(endurance),
	}
	p.SingleRange = p.StrengthPct == 100 || p.HypertrophyPct == 100 || p.EndurancePct == 100
	return p, true
}

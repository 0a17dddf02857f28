package analytics

import (
	"fmt"
	"time"

	"github.com/claude/trainload/internal/models"
)

const (
	// DeloadWeeks is the number of 7-day buckets inspected.
	DeloadWeeks = 6
	// deloadStreak is how many consecutive weekly increases call for a deload.
	deloadStreak = 4
)

// WeekVolume is the raw completed-set count of one 7-day bucket.
type WeekVolume struct {
	Label string `json:"label"`
	From  string `json:"from"`
	To    string `json:"to"`
	Sets  int    `json:"sets"`
}

// DeloadAdvice is the outcome of the six-week volume streak check.
type DeloadAdvice struct {
	Weeks        []WeekVolume `json:"weeks"`
	TotalSets    int          `json:"total_sets"`
	Streak       int          `json:"streak"`
	ShouldDeload bool         `json:"should_deload"`
}

// IncreasingStreak walks consecutive pairs and returns the run length of
// increases ending at the last pair. A pair counts only when the earlier
// value is positive; anything else resets the run.
func IncreasingStreak(volumes []int) int {
	streak := 0
	for i := 1; i < len(volumes); i++ {
		if volumes[i] > volumes[i-1] && volumes[i-1] > 0 {
			streak++
		} else {
			streak = 0
		}
	}
	return streak
}

// DeloadCheck buckets the last six weeks, oldest first. Bucket i counting back
// from today covers [today-7i-6, today-7i]. Sets are counted raw, not weighted
// by muscle. With no sets at all it reports ok=false.
func DeloadCheck(s Snapshot) (DeloadAdvice, bool) {
	today := CalendarDay(s.Today)
	span := LastDays(today, DeloadWeeks*7)

	// Key 0 is the bucket ending today.
	counts := WindowSum(s.Workouts, span, func(day time.Time, wo *models.Workout, add func(int, int)) {
		add(daysBetween(day, today)/7, wo.CompletedSets())
	})

	advice := DeloadAdvice{Weeks: make([]WeekVolume, 0, DeloadWeeks)}
	volumes := make([]int, 0, DeloadWeeks)
	for back := DeloadWeeks - 1; back >= 0; back-- {
		end := today.AddDate(0, 0, -7*back)
		start := end.AddDate(0, 0, -6)
		n := counts[back]
		advice.Weeks = append(advice.Weeks, WeekVolume{
			Label: fmt.Sprintf("W%d", DeloadWeeks-back),
			From:  start.Format(models.DateLayout),
			To:    end.Format(models.DateLayout),
			Sets:  n,
		})
		advice.TotalSets += n
		volumes = append(volumes, n)
	}

	if advice.TotalSets == 0 {
		return DeloadAdvice{}, false
	}
	advice.Streak = IncreasingStreak(volumes)
	advice.ShouldDeload = advice.Streak >= deloadStreak
	return advice, true
}

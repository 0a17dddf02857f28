package analytics

import (
	"sort"
	"time"

	"github.com/claude/trainload/internal/models"
	"github.com/claude/trainload/internal/muscles"
)

const (
	// SessionSetLimit is the most effective sets one muscle should get per session.
	SessionSetLimit = 10.0
	// MaxSessionFlags caps how many flags are reported.
	MaxSessionFlags = 5
)

// SessionFlag marks a workout that gave one muscle too many sets.
type SessionFlag struct {
	Muscle    muscles.Muscle `json:"muscle"`
	Date      string         `json:"date"`
	WorkoutID string         `json:"workout_id,omitempty"`
	Sets      float64        `json:"sets"`
}

// SessionVolume checks each workout of the last 14 days on its own and flags
// muscles above SessionSetLimit. The most recent MaxSessionFlags flags are
// returned, newest first.
func SessionVolume(s Snapshot) []SessionFlag {
	type dated struct {
		day  time.Time
		flag SessionFlag
	}
	var flags []dated

	EachInWindow(s.Workouts, LastDays(s.Today, FrequencyWindowDays), func(day time.Time, wo *models.Workout) {
		sets := SessionSets(*wo, s.Catalog)
		for _, m := range muscles.Tracked {
			if v := sets[m]; v > SessionSetLimit {
				flags = append(flags, dated{day: day, flag: SessionFlag{
					Muscle:    m,
					Date:      wo.Date,
					WorkoutID: wo.ID,
					Sets:      v,
				}})
			}
		}
	})
	if len(flags) == 0 {
		return nil
	}

	sort.SliceStable(flags, func(i, j int) bool { return flags[i].day.After(flags[j].day) })
	if len(flags) > MaxSessionFlags {
		flags = flags[:MaxSessionFlags]
	}

	out := make([]SessionFlag, len(flags))
	for i, f := range flags {
		out[i] = f.flag
	}
	return out
}

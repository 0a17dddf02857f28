package analytics

import (
	"fmt"
	"math"
	"sort"

	"github.com/claude/trainload/internal/muscles"
)

// RecoveryEntry is the time since a muscle was last trained.
type RecoveryEntry struct {
	Muscle       muscles.Muscle `json:"muscle"`
	LastTrained  string         `json:"last_trained"`
	ElapsedHours float64        `json:"elapsed_hours"`
	Zone         Zone           `json:"zone"`
	Label        string         `json:"label"`
}

// ClassifyRecovery rates elapsed time: under 24h red, under 48h yellow, else green.
// The label reads "Xh ago" below a day and "Xd ago" after.
func ClassifyRecovery(hours float64) (Zone, string) {
	switch {
	case hours < 24:
		return ZoneRed, fmt.Sprintf("%.0fh ago", math.Max(hours, 0))
	case hours < 48:
		return ZoneYellow, fmt.Sprintf("%.0fd ago", math.Floor(hours/24))
	default:
		return ZoneGreen, fmt.Sprintf("%.0fd ago", math.Floor(hours/24))
	}
}

// Recovery scans the whole history for the last day each muscle was trained.
// Muscles never trained are left out. Entries are sorted most recent first.
func Recovery(s Snapshot) []RecoveryEntry {
	today := CalendarDay(s.Today)
	lastDate := make(map[muscles.Muscle]string)
	lastDay := make(map[muscles.Muscle]int)

	for _, wo := range s.Workouts {
		day, ok := wo.Day()
		if !ok {
			continue
		}
		ago := daysBetween(day, today)
		for m, v := range SessionSets(wo, s.Catalog) {
			if v <= 0 {
				continue
			}
			if prev, seen := lastDay[m]; !seen || ago < prev {
				lastDay[m] = ago
				lastDate[m] = wo.Date
			}
		}
	}

	var out []RecoveryEntry
	for _, m := range muscles.Tracked {
		ago, ok := lastDay[m]
		if !ok {
			continue
		}
		hours := float64(ago) * 24
		zone, label := ClassifyRecovery(hours)
		out = append(out, RecoveryEntry{
			Muscle:       m,
			LastTrained:  lastDate[m],
			ElapsedHours: hours,
			Zone:         zone,
			Label:        label,
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].ElapsedHours < out[j].ElapsedHours })
	return out
}

package analytics

import (
	"testing"

	"github.com/claude/trainload/internal/models"
	"github.com/claude/trainload/internal/muscles"
)

func TestClassifyRecovery(t *testing.T) {
	tests := []struct {
		hours float64
		zone  Zone
		label string
	}{
		{0, ZoneRed, "0h ago"},
		{-24, ZoneRed, "0h ago"},
		{23, ZoneRed, "23h ago"},
		{24, ZoneYellow, "1d ago"},
		{47, ZoneYellow, "1d ago"},
		{48, ZoneGreen, "2d ago"},
		{24 * 9, ZoneGreen, "9d ago"},
	}
	for _, tt := range tests {
		zone, label := ClassifyRecovery(tt.hours)
		if zone != tt.zone || label != tt.label {
			t.Errorf("ClassifyRecovery(%v) = %v %q, want %v %q", tt.hours, zone, label, tt.zone, tt.label)
		}
	}
}

// TestRecovery verifies the most recent session wins and untrained muscles
// are left out.
func TestRecovery(t *testing.T) {
	workouts := []models.Workout{
		workout(daysAgo(60), exercise("chest-01", sets(3, 80, 8)...)),
		workout(daysAgo(0), exercise("chest-03", sets(3, 80, 8)...)),
		workout(daysAgo(1), exercise("arms-01", sets(3, 30, 10)...)),
		workout(daysAgo(40), exercise("legs-01", sets(3, 140, 5)...)),
		workout("garbage", exercise("back-06", sets(3, 100, 8)...)),
	}
	got := Recovery(snapshot(workouts...))

	byMuscle := make(map[muscles.Muscle]RecoveryEntry)
	for _, e := range got {
		byMuscle[e.Muscle] = e
	}

	tests := []struct {
		muscle muscles.Muscle
		date   string
		zone   Zone
		label  string
	}{
		{muscles.Chest, daysAgo(0), ZoneRed, "0h ago"},
		{muscles.Triceps, daysAgo(0), ZoneRed, "0h ago"},
		{muscles.FrontDelts, daysAgo(60), ZoneGreen, "60d ago"},
		{muscles.Biceps, daysAgo(1), ZoneYellow, "1d ago"},
		{muscles.Quads, daysAgo(40), ZoneGreen, "40d ago"},
	}
	for _, tt := range tests {
		e, ok := byMuscle[tt.muscle]
		if !ok {
			t.Errorf("%s missing", tt.muscle)
			continue
		}
		if e.LastTrained != tt.date || e.Zone != tt.zone || e.Label != tt.label {
			t.Errorf("%s = %+v, want %s %s %q", tt.muscle, e, tt.date, tt.zone, tt.label)
		}
	}

	for _, m := range []muscles.Muscle{muscles.Calves, muscles.Lats} {
		if _, ok := byMuscle[m]; ok {
			t.Errorf("%s present, want excluded", m)
		}
	}

	for i := 1; i < len(got); i++ {
		if got[i].ElapsedHours < got[i-1].ElapsedHours {
			t.Errorf("entry %d (%v h) sorted before %d (%v h)", i-1, got[i-1].ElapsedHours, i, got[i].ElapsedHours)
		}
	}
}

package analytics

import (
	"testing"

	"github.com/claude/trainload/internal/models"
)

func TestClassifyReps(t *testing.T) {
	tests := []struct {
		reps   int
		want   RepRange
		wantOK bool
	}{
		{0, "", false},
		{1, RangeStrength, true},
		{5, RangeStrength, true},
		{6, RangeHypertrophy, true},
		{12, RangeHypertrophy, true},
		{13, RangeEndurance, true},
		{50, RangeEndurance, true},
	}
	for _, tt := range tests {
		got, ok := ClassifyReps(tt.reps)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ClassifyReps(%d) = %v, %v, want %v, %v", tt.reps, got, ok, tt.want, tt.wantOK)
		}
	}
}

// TestRepRangesTruncates verifies percentages are truncated, not rounded.
func TestRepRangesTruncates(t *testing.T) {
	workouts := []models.Workout{
		workout(daysAgo(1),
			exercise("chest-01", models.WorkoutSet{Weight: 100, Reps: 3, Completed: true}),
			exercise("chest-01", models.WorkoutSet{Weight: 80, Reps: 8, Completed: true}),
			exercise("chest-01", models.WorkoutSet{Weight: 50, Reps: 15, Completed: true}),
			exercise("chest-01", models.WorkoutSet{Weight: 50, Reps: 15}),
			exercise("chest-01", models.WorkoutSet{Weight: 50, Reps: 0, Completed: true}),
		),
		workout(daysAgo(28), exercise("chest-01", sets(10, 100, 3)...)),
	}
	p, ok := RepRanges(snapshot(workouts...))
	if !ok {
		t.Fatal("ok = false, want true")
	}
	if p.Total != 3 {
		t.Errorf("Total = %d, want 3", p.Total)
	}
	if p.StrengthPct != 33 || p.HypertrophyPct != 33 || p.EndurancePct != 33 {
		t.Errorf("pcts = %d/%d/%d, want 33/33/33", p.StrengthPct, p.HypertrophyPct, p.EndurancePct)
	}
	if p.SingleRange {
		t.Error("SingleRange = true, want false")
	}
}

// TestRepRangesSingleRange verifies the all-one-range flag.
func TestRepRangesSingleRange(t *testing.T) {
	p, ok := RepRanges(snapshot(workout(daysAgo(0), exercise("legs-01", sets(4, 140, 5)...))))
	if !ok || p.StrengthPct != 100 || !p.SingleRange {
		t.Errorf("RepRanges = %+v, %v, want 100%% strength", p, ok)
	}
}

// TestRepRangesEmpty verifies no qualifying sets means no profile.
func TestRepRangesEmpty(t *testing.T) {
	if _, ok := RepRanges(snapshot()); ok {
		t.Error("ok = true, want false")
	}
}

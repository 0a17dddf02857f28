package analytics

import (
	"testing"

	"github.com/claude/trainload/internal/models"
	"github.com/claude/trainload/internal/muscles"
)

// TestClassifyVolume verifies both landmarks are inclusive in the optimal band.
func TestClassifyVolume(t *testing.T) {
	th := muscles.Threshold{MEV: 6, MRV: 22}
	tests := []struct {
		sets float64
		want VolumeStatus
	}{
		{0, VolumeNone},
		{-1, VolumeNone},
		{0.3, VolumeUnder},
		{5.9, VolumeUnder},
		{6, VolumeOptimal},
		{14, VolumeOptimal},
		{22, VolumeOptimal},
		{22.1, VolumeOver},
	}
	for _, tt := range tests {
		if got := ClassifyVolume(tt.sets, th); got != tt.want {
			t.Errorf("ClassifyVolume(%v) = %v, want %v", tt.sets, got, tt.want)
		}
	}

	// A zero MEV means any training is optimal.
	if got := ClassifyVolume(0.5, muscles.Threshold{MEV: 0, MRV: 12}); got != VolumeOptimal {
		t.Errorf("ClassifyVolume(0.5, mev=0) = %v, want optimal", got)
	}
}

// TestVolumeBalance verifies every tracked muscle is reported in order and
// that overrides replace the default landmarks.
func TestVolumeBalance(t *testing.T) {
	workouts := []models.Workout{
		workout(daysAgo(2), exercise("chest-03", sets(5, 80, 8)...)),
		workout(daysAgo(7), exercise("chest-03", sets(20, 80, 8)...)),
	}
	overrides := map[muscles.Muscle]muscles.Threshold{muscles.Chest: {MEV: 2, MRV: 4}}
	s := NewSnapshot(workouts, NewCatalog(nil), refToday, overrides)

	got := VolumeBalance(s)
	if len(got) != len(muscles.Tracked) {
		t.Fatalf("len = %d, want %d", len(got), len(muscles.Tracked))
	}
	for i, v := range got {
		if v.Muscle != muscles.Tracked[i] {
			t.Errorf("entry %d = %s, want %s", i, v.Muscle, muscles.Tracked[i])
		}
	}

	byMuscle := make(map[muscles.Muscle]MuscleVolume)
	for _, v := range got {
		byMuscle[v.Muscle] = v
	}

	chest := byMuscle[muscles.Chest]
	if chest.Sets != 5 || chest.MEV != 2 || chest.MRV != 4 || chest.Status != VolumeOver {
		t.Errorf("Chest = %+v, want 5 sets over 2/4", chest)
	}
	if chest.Region != muscles.RegionPush {
		t.Errorf("Chest region = %s, want push", chest.Region)
	}

	tri := byMuscle[muscles.Triceps]
	if !approx(tri.Sets, 2.5) || tri.Status != VolumeUnder {
		t.Errorf("Triceps = %+v, want 2.5 under", tri)
	}
	if byMuscle[muscles.Quads].Status != VolumeNone {
		t.Errorf("Quads status = %s, want none", byMuscle[muscles.Quads].Status)
	}
}

// TestGroupByRegion verifies every muscle lands in exactly one bucket.
func TestGroupByRegion(t *testing.T) {
	regions := GroupByRegion(VolumeBalance(snapshot()))
	if len(regions) != 4 {
		t.Fatalf("len = %d, want 4", len(regions))
	}
	seen := 0
	for _, r := range regions {
		seen += len(r.Muscles)
	}
	if seen != len(muscles.Tracked) {
		t.Errorf("grouped %d muscles, want %d", seen, len(muscles.Tracked))
	}
	if regions[3].Region != muscles.RegionCore || regions[3].Muscles[0].Muscle != muscles.Abs {
		t.Errorf("core bucket = %+v", regions[3])
	}
}

// TestSummarizeBalance verifies untrained and zero-MEV muscles are never
// counted as undertrained.
func TestSummarizeBalance(t *testing.T) {
	volumes := []MuscleVolume{
		{Muscle: muscles.Chest, Sets: 3, MEV: 6, MRV: 22},
		{Muscle: muscles.Lats, Sets: 0, MEV: 10, MRV: 25},
		{Muscle: muscles.Traps, Sets: 1, MEV: 0, MRV: 26},
		{Muscle: muscles.Quads, Sets: 21, MEV: 8, MRV: 20},
		{Muscle: muscles.Abs, Sets: 25, MEV: 0, MRV: 25},
	}
	got := SummarizeBalance(volumes)
	want := BalanceSummary{Undertrained: 1, Overtrained: 1}
	if got != want {
		t.Errorf("SummarizeBalance = %+v, want %+v", got, want)
	}
}

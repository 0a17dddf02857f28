package analytics

import (
	"testing"

	"github.com/claude/trainload/internal/models"
	"github.com/claude/trainload/internal/muscles"
)

// TestBuildReportEmpty verifies an empty history yields a report with the
// volume table and no optional sections.
func TestBuildReportEmpty(t *testing.T) {
	r := BuildReport(snapshot())
	if r.Today != "2024-01-07" {
		t.Errorf("Today = %s, want 2024-01-07", r.Today)
	}
	if len(r.Volume) != len(muscles.Tracked) {
		t.Errorf("Volume len = %d, want %d", len(r.Volume), len(muscles.Tracked))
	}
	for _, v := range r.Volume {
		if v.Status != VolumeNone {
			t.Errorf("%s status = %s, want none", v.Muscle, v.Status)
		}
	}
	if r.Frequency != nil || r.Overload != nil || r.SessionVolume != nil || r.Recovery != nil {
		t.Error("expected empty list sections")
	}
	if r.Deload != nil || r.RepRanges != nil || r.PushPull != nil {
		t.Error("expected nil optional sections")
	}
	if r.StagnationHint {
		t.Error("StagnationHint = true, want false")
	}
}

// TestBuildReport verifies sections are filled from one snapshot.
func TestBuildReport(t *testing.T) {
	workouts := []models.Workout{
		workout(daysAgo(8), exercise("chest-01", sets(3, 100, 5)...)),
		workout(daysAgo(1), exercise("chest-01", sets(3, 100, 5)...), exercise("back-01", sets(3, 60, 10)...)),
	}
	r := BuildReport(snapshot(workouts...))
	if r.PushPull == nil || r.PushPull.State != RatioFinite {
		t.Errorf("PushPull = %+v, want finite", r.PushPull)
	}
	if r.Deload == nil || r.Deload.TotalSets != 9 {
		t.Errorf("Deload = %+v, want 9 total sets", r.Deload)
	}
	if r.RepRanges == nil || r.RepRanges.Total != 9 {
		t.Errorf("RepRanges = %+v, want 9 sets", r.RepRanges)
	}
	if len(r.Overload) != 1 || !r.StagnationHint {
		t.Errorf("Overload = %+v, want one stagnant entry", r.Overload)
	}
	if len(r.Recovery) == 0 || r.Recovery[0].LastTrained != daysAgo(1) {
		t.Errorf("Recovery = %+v", r.Recovery)
	}
}

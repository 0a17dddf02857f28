package history

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/claude/trainload/internal/analytics"
	"github.com/claude/trainload/internal/models"
	"github.com/claude/trainload/internal/muscles"
)

type fakeSource struct {
	workouts  []models.Workout
	custom    []models.Exercise
	overrides map[muscles.Muscle]muscles.Threshold
	err       error
}

func (f *fakeSource) ListWorkouts(context.Context) ([]models.Workout, error) {
	return f.workouts, f.err
}

func (f *fakeSource) ListCustomExercises(context.Context) ([]models.Exercise, error) {
	return f.custom, nil
}

func (f *fakeSource) GetThresholdOverrides(context.Context) (map[muscles.Muscle]muscles.Threshold, error) {
	return f.overrides, nil
}

// TestLoadLayersThresholds verifies stored overrides win over configured ones,
// which win over the defaults.
func TestLoadLayersThresholds(t *testing.T) {
	src := &fakeSource{
		overrides: map[muscles.Muscle]muscles.Threshold{muscles.Chest: {MEV: 1, MRV: 2}},
	}
	configured := map[muscles.Muscle]muscles.Threshold{
		muscles.Chest: {MEV: 3, MRV: 4},
		muscles.Quads: {MEV: 5, MRV: 6},
	}
	today := time.Date(2024, 3, 10, 22, 15, 0, 0, time.UTC)

	s, err := Load(context.Background(), src, configured, today)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		muscle muscles.Muscle
		want   muscles.Threshold
	}{
		{muscles.Chest, muscles.Threshold{MEV: 1, MRV: 2}},
		{muscles.Quads, muscles.Threshold{MEV: 5, MRV: 6}},
		{muscles.Lats, muscles.Threshold{MEV: 10, MRV: 25}},
	}
	for _, tt := range tests {
		if got := s.Thresholds[tt.muscle]; got != tt.want {
			t.Errorf("%s = %+v, want %+v", tt.muscle, got, tt.want)
		}
	}
	if !s.Today.Equal(time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Today = %v, want 2024-03-10 midnight", s.Today)
	}
}

// TestLoadCatalog verifies custom exercises from the source reach the catalog.
func TestLoadCatalog(t *testing.T) {
	src := &fakeSource{custom: []models.Exercise{{ID: "c1", Name: "Sled Push", MuscleGroups: []string{"Quads"}}}}
	s, err := Load(context.Background(), src, nil, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := analytics.Contributions(s.Catalog, "c1")
	if len(got) != 1 || got[0].Muscle != muscles.Quads {
		t.Errorf("Contributions(c1) = %v, want Quads", got)
	}
}

// TestLoadError verifies source failures are wrapped and returned.
func TestLoadError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Load(context.Background(), &fakeSource{err: boom}, nil, time.Now())
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want wrapped boom", err)
	}
}

func TestParseDay(t *testing.T) {
	fallback := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{"", fallback, false},
		{"2024-02-29", time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), false},
		{"2024-13-01", time.Time{}, true},
		{"yesterday", time.Time{}, true},
	}
	for _, tt := range tests {
		got, err := ParseDay(tt.in, fallback)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDay(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && !got.Equal(tt.want) {
			t.Errorf("ParseDay(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

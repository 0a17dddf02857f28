package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/claude/trainload/internal/config"
	"github.com/claude/trainload/internal/importer"
	"github.com/claude/trainload/internal/models"
	"github.com/claude/trainload/internal/storage"
	"github.com/google/uuid"
)

func (f *fakeStore) ReplaceWorkout(_ context.Context, id uuid.UUID, _ string, w models.Workout) (int64, error) {
	if f.workouts == nil {
		f.workouts = make(map[uuid.UUID]models.Workout)
	}
	f.workouts[id] = w
	var n int64
	for _, we := range w.Exercises {
		n += int64(len(we.Sets))
	}
	return n, nil
}

func (f *fakeStore) UpsertCustomExercise(context.Context, models.Exercise) error { return nil }

func (f *fakeStore) InsertImportLog(_ context.Context, l storage.ImportLog) (int64, error) {
	f.logs = append(f.logs, l)
	return int64(len(f.logs)), nil
}

func (f *fakeStore) UpdateImportLog(_ context.Context, id int64, l storage.ImportLog) error {
	f.logs[id-1] = l
	return nil
}

const importBackup = `{"workouts":[{"id":"w1","date":"2024-01-05","name":"Push","exercises":[
  {"exercise_id":"chest-01","sets":[{"weight":100,"reps":5,"completed":true},{"weight":100,"reps":5,"completed":true}]}]}]}`

const importAlpha = `"Push";"2024-01-05 7:30 h";"1:05 hr"
"1. Bench Press · Barbell · 8 reps"
#;KG;REPS;RIR
1;80;8;2
`

func postImport(s *Server, query, key, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/import"+query, strings.NewReader(body))
	if key != "" {
		req.Header.Set("X-API-Key", key)
	}
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

// TestImportBackup verifies an uploaded backup is stored and logged.
func TestImportBackup(t *testing.T) {
	store := &fakeStore{}
	s := newTestServer(&fakeSource{}, store, config.AnalyticsConfig{})
	s.SetImporter(store, "secret")

	rec := postImport(s, "?name=phone.json", "secret", importBackup)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	var stats importer.Stats
	if err := json.NewDecoder(rec.Body).Decode(&stats); err != nil {
		t.Fatal(err)
	}
	if stats.WorkoutsInserted != 1 || stats.SetsInserted != 2 {
		t.Errorf("stats = %+v", stats)
	}
	if _, ok := store.workouts[importer.WorkoutUUID("w1")]; !ok {
		t.Error("workout not stored")
	}
	if len(store.logs) != 1 || store.logs[0].Status != "success" {
		t.Errorf("logs = %+v", store.logs)
	}
}

// TestImportAlpha verifies ?format=alpha runs the CSV through the converter.
func TestImportAlpha(t *testing.T) {
	store := &fakeStore{}
	s := newTestServer(&fakeSource{}, store, config.AnalyticsConfig{})
	s.SetImporter(store, "secret")

	rec := postImport(s, "?format=alpha", "secret", importAlpha)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	if len(store.workouts) != 1 {
		t.Fatalf("stored %d workouts, want 1", len(store.workouts))
	}
	for _, w := range store.workouts {
		if w.Date != "2024-01-05" || len(w.Exercises) != 1 || w.Exercises[0].ExerciseID != "chest-01" {
			t.Errorf("workout = %+v", w)
		}
	}
}

// TestImportDryRun verifies nothing is written on a dry run.
func TestImportDryRun(t *testing.T) {
	store := &fakeStore{}
	s := newTestServer(&fakeSource{}, store, config.AnalyticsConfig{})
	s.SetImporter(store, "secret")

	rec := postImport(s, "?dry_run=true", "secret", importBackup)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	if len(store.workouts) != 0 || len(store.logs) != 0 {
		t.Errorf("dry run wrote workouts=%d logs=%d", len(store.workouts), len(store.logs))
	}
}

// TestImportErrors covers auth and body failures.
func TestImportErrors(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		query   string
		key     string
		body    string
		want    int
	}{
		{"not configured", false, "", "secret", importBackup, http.StatusServiceUnavailable},
		{"missing key", true, "", "", importBackup, http.StatusUnauthorized},
		{"wrong key", true, "", "nope", importBackup, http.StatusForbidden},
		{"bad json", true, "", "secret", "{", http.StatusBadRequest},
		{"unknown format", true, "?format=strong", "secret", importBackup, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{}
			s := newTestServer(&fakeSource{}, store, config.AnalyticsConfig{})
			if tt.enabled {
				s.SetImporter(store, "secret")
			}
			rec := postImport(s, tt.query, tt.key, tt.body)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d (body %s)", rec.Code, tt.want, rec.Body)
			}
			if len(store.workouts) != 0 {
				t.Error("failed import stored workouts")
			}
		})
	}
}

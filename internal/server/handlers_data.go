package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/claude/trainload/internal/analytics"
	"github.com/claude/trainload/internal/backup"
	"github.com/claude/trainload/internal/muscles"
	"github.com/claude/trainload/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// requireStore writes 503 when the server runs without a database.
func (s *Server) requireStore(w http.ResponseWriter) bool {
	if s.store == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "database not configured"})
		return false
	}
	return true
}

func (s *Server) handleListWorkouts(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	workouts, err := s.store.QueryWorkoutSummaries(r.Context(), parseLimit(r))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, workouts)
}

func (s *Server) handleGetWorkout(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	workoutID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid workout ID"})
		return
	}

	workout, err := s.store.GetWorkout(r.Context(), workoutID)
	if errors.Is(err, storage.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "workout not found"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, workout)
}

func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	workouts, err := s.src.ListWorkouts(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	custom, err := s.src.ListCustomExercises(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="workouts.csv"`)
	if err := backup.WriteCSV(w, workouts, analytics.NewCatalog(custom)); err != nil {
		s.log.Error("csv export", "error", err)
	}
}

func (s *Server) handleListThresholds(w http.ResponseWriter, r *http.Request) {
	stored, err := s.src.GetThresholdOverrides(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"configured": s.thresholds,
		"stored":     stored,
		"effective":  muscles.MergeThresholds(s.thresholds, stored),
	})
}

// muscleParam resolves the {muscle} path segment, writing 400 when it names
// no tracked muscle.
func muscleParam(w http.ResponseWriter, r *http.Request) (muscles.Muscle, bool) {
	raw := chi.URLParam(r, "muscle")
	if unescaped, err := url.PathUnescape(raw); err == nil {
		raw = unescaped
	}
	m, ok := muscles.Parse(raw)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown muscle: " + raw})
		return "", false
	}
	return m, true
}

func (s *Server) handleGetThreshold(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	m, ok := muscleParam(w, r)
	if !ok {
		return
	}
	t, err := s.store.GetThresholdOverride(r.Context(), m)
	if errors.Is(err, storage.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no override for " + string(m)})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"muscle": m, "threshold": t})
}

func (s *Server) handleSetThreshold(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	m, ok := muscleParam(w, r)
	if !ok {
		return
	}

	var t muscles.Threshold
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if !t.Valid() {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "need 0 <= mev <= mrv"})
		return
	}

	if err := s.store.SetThresholdOverride(r.Context(), m, t); err != nil {
		s.log.Error("saving threshold override", "muscle", m, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	s.log.Info("threshold override saved", "muscle", m, "mev", t.MEV, "mrv", t.MRV)
	writeJSON(w, http.StatusOK, map[string]any{"muscle": m, "threshold": t})
}

func (s *Server) handleDeleteThreshold(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	m, ok := muscleParam(w, r)
	if !ok {
		return
	}
	err := s.store.DeleteThresholdOverride(r.Context(), m)
	if errors.Is(err, storage.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no override for " + string(m)})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	s.log.Info("threshold override removed", "muscle", m)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleImportLogs(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	logs, err := s.store.QueryImportLogs(r.Context(), parseLimit(r))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, logs)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	stats, err := s.store.GetDataStats(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

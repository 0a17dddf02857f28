package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/claude/trainload/internal/analytics"
	"github.com/claude/trainload/internal/history"
	"github.com/claude/trainload/internal/muscles"
	"github.com/go-chi/chi/v5"
)

// sections maps /api/v1/analytics/{section} to the analyzer serving it.
// A nil result encodes as null.
var sections = map[string]func(analytics.Snapshot) any{
	"volume": func(s analytics.Snapshot) any {
		volume := analytics.VolumeBalance(s)
		return map[string]any{
			"muscles": volume,
			"regions": analytics.GroupByRegion(volume),
		}
	},
	"summary": func(s analytics.Snapshot) any {
		return analytics.SummarizeBalance(analytics.VolumeBalance(s))
	},
	"frequency": func(s analytics.Snapshot) any {
		return analytics.Frequency(s)
	},
	"overload": func(s analytics.Snapshot) any {
		entries := analytics.OverloadTrends(s)
		return map[string]any{
			"entries":         entries,
			"stagnation_hint": analytics.HasStagnant(entries),
		}
	},
	"deload": func(s analytics.Snapshot) any {
		if d, ok := analytics.DeloadCheck(s); ok {
			return d
		}
		return nil
	},
	"rep-ranges": func(s analytics.Snapshot) any {
		if p, ok := analytics.RepRanges(s); ok {
			return p
		}
		return nil
	},
	"push-pull": func(s analytics.Snapshot) any {
		pp := analytics.PushPull(s)
		return map[string]any{
			"balance":    pp,
			"ratio_text": pp.RatioText(),
		}
	},
	"session-volume": func(s analytics.Snapshot) any {
		return analytics.SessionVolume(s)
	},
	"recovery": func(s analytics.Snapshot) any {
		return analytics.Recovery(s)
	},
}

// loadSnapshot builds the snapshot for a request, honoring ?today=YYYY-MM-DD.
// On failure it writes the error response and returns false.
func (s *Server) loadSnapshot(w http.ResponseWriter, r *http.Request) (analytics.Snapshot, bool) {
	today, err := history.ParseDay(r.URL.Query().Get("today"), s.now())
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return analytics.Snapshot{}, false
	}
	snap, err := history.Load(r.Context(), s.src, s.thresholds, today)
	if err != nil {
		s.log.Error("loading history", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return analytics.Snapshot{}, false
	}
	return snap, true
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.loadSnapshot(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, analytics.BuildReport(snap))
}

func (s *Server) handleSection(w http.ResponseWriter, r *http.Request) {
	section := chi.URLParam(r, "section")
	fn, ok := sections[section]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown analytics section: " + section})
		return
	}
	snap, ok := s.loadSnapshot(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, fn(snap))
}

func (s *Server) handleMuscles(w http.ResponseWriter, r *http.Request) {
	stored, err := s.src.GetThresholdOverrides(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, muscles.Entries(muscles.MergeThresholds(s.thresholds, stored)))
}

func (s *Server) handleContributions(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	custom, err := s.src.ListCustomExercises(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	catalog := analytics.NewCatalog(custom)
	ex, ok := catalog.Lookup(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown exercise: " + id})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"exercise_id":   id,
		"name":          ex.Name,
		"is_custom":     ex.IsCustom,
		"contributions": analytics.Contributions(catalog, id),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// parseLimit reads the "limit" query parameter, defaulting to 50.
func parseLimit(r *http.Request) int {
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	return limit
}

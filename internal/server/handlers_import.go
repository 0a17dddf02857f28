package server

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/claude/trainload/internal/alpha"
	"github.com/claude/trainload/internal/backup"
	"github.com/claude/trainload/internal/importer"
)

// maxImportBytes caps an uploaded export.
const maxImportBytes = 64 << 20

// importAuth answers 503 until SetImporter is called, then checks the API key.
func (s *Server) importAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.importStore == nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "import not configured"})
			return
		}
		APIKeyAuth(s.importKey)(next).ServeHTTP(w, r)
	})
}

// handleImport stores an uploaded export. The body is a tracker backup
// (optionally gzipped) or, with ?format=alpha, an Alpha Progression CSV.
// ?dry_run=true parses and counts without writing.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxImportBytes))
	if err != nil {
		writeJSON(w, http.StatusRequestEntityTooLarge, map[string]string{"error": "reading body: " + err.Error()})
		return
	}

	format := r.URL.Query().Get("format")
	data, err := parseImport(format, body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	dryRun := r.URL.Query().Get("dry_run") == "true"
	source := "upload"
	if name := r.URL.Query().Get("name"); name != "" {
		source += ":" + name
	}

	imp := importer.New(s.importStore, nil, s.log, dryRun)
	stats, err := imp.ImportData(r.Context(), source, data)
	if err != nil {
		s.log.Error("import error", "source", source, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	s.log.Info("import complete", "source", source, "workouts", stats.WorkoutsInserted, "sets", stats.SetsInserted, "dry_run", dryRun)
	writeJSON(w, http.StatusOK, stats)
}

func parseImport(format string, body []byte) (*backup.AppData, error) {
	switch strings.ToLower(format) {
	case "", "backup":
		data, err := backup.Parse(body)
		if err != nil {
			return nil, fmt.Errorf("invalid backup: %w", err)
		}
		return data, nil
	case "alpha":
		sessions, err := alpha.Parse(bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("invalid alpha export: %w", err)
		}
		return alpha.Convert(sessions), nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

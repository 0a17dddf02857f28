package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/claude/trainload/internal/config"
	"github.com/claude/trainload/internal/history"
	"github.com/claude/trainload/internal/importer"
	"github.com/claude/trainload/internal/models"
	"github.com/claude/trainload/internal/muscles"
	"github.com/claude/trainload/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Store is the part of the database the data endpoints read and write.
type Store interface {
	GetWorkout(ctx context.Context, workoutID uuid.UUID) (*models.Workout, error)
	QueryWorkoutSummaries(ctx context.Context, limit int) ([]storage.WorkoutSummary, error)
	GetThresholdOverride(ctx context.Context, m muscles.Muscle) (muscles.Threshold, error)
	SetThresholdOverride(ctx context.Context, m muscles.Muscle, t muscles.Threshold) error
	DeleteThresholdOverride(ctx context.Context, m muscles.Muscle) error
	QueryImportLogs(ctx context.Context, limit int) ([]storage.ImportLog, error)
	GetDataStats(ctx context.Context) (*storage.DataStats, error)
}

// Compile-time check: *storage.DB satisfies Store.
var _ Store = (*storage.DB)(nil)

// Server holds dependencies for HTTP handlers.
type Server struct {
	src        history.Source
	store      Store
	thresholds map[muscles.Muscle]muscles.Threshold
	now        func() time.Time
	log        *slog.Logger
	router     chi.Router

	importStore importer.Store
	importKey   string
}

// New creates a new Server with all routes configured. store may be nil, in
// which case the data endpoints answer 503.
func New(src history.Source, store Store, cfg config.AnalyticsConfig, log *slog.Logger) *Server {
	s := &Server{
		src:        src,
		store:      store,
		thresholds: cfg.ThresholdOverrides(),
		now:        cfg.Today,
		log:        log,
		router:     chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// MountMCP serves an MCP transport handler under /mcp.
func (s *Server) MountMCP(h http.Handler) {
	s.router.Handle("/mcp", h)
	s.router.Handle("/mcp/*", h)
}

// SetImporter enables POST /api/v1/import, guarded by apiKey.
func (s *Server) SetImporter(store importer.Store, apiKey string) {
	s.importStore = store
	s.importKey = apiKey
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Route("/api/v1", func(r chi.Router) {
		// Analytics over the whole history
		r.Get("/analytics", s.handleReport)
		r.Get("/analytics/{section}", s.handleSection)
		r.Get("/muscles", s.handleMuscles)
		r.Get("/exercises/{id}/contributions", s.handleContributions)

		// Stored data
		r.Get("/workouts", s.handleListWorkouts)
		r.Get("/workouts/export.csv", s.handleExportCSV)
		r.Get("/workouts/{id}", s.handleGetWorkout)
		r.Get("/thresholds", s.handleListThresholds)
		r.Get("/thresholds/{muscle}", s.handleGetThreshold)
		r.Put("/thresholds/{muscle}", s.handleSetThreshold)
		r.Delete("/thresholds/{muscle}", s.handleDeleteThreshold)
		r.Get("/import-logs", s.handleImportLogs)
		r.Get("/stats", s.handleStats)

		// Import endpoint (API key required)
		r.With(s.importAuth).Post("/import", s.handleImport)
	})
}

package mcp

import (
	"log/slog"
	"time"

	"github.com/claude/trainload/internal/config"
	"github.com/claude/trainload/internal/history"
	"github.com/claude/trainload/internal/muscles"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(src history.Source, cfg config.AnalyticsConfig, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("trainload", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("trainload training load server. Analyze weekly volume per muscle group against MEV/MRV landmarks, training frequency, progressive overload, deload timing, rep ranges, push/pull balance, session volume and recovery. Every tool accepts an optional 'today' (YYYY-MM-DD) to analyze the history as of that day."),
	)

	h := newHandlers(src, cfg, log)

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolGetTrainingReport, Handler: h.getTrainingReport},
		server.ServerTool{Tool: toolGetMuscleVolume, Handler: h.getMuscleVolume},
		server.ServerTool{Tool: toolGetTrainingFrequency, Handler: h.getTrainingFrequency},
		server.ServerTool{Tool: toolGetOverloadTrends, Handler: h.getOverloadTrends},
		server.ServerTool{Tool: toolGetDeloadCheck, Handler: h.getDeloadCheck},
		server.ServerTool{Tool: toolGetRepRanges, Handler: h.getRepRanges},
		server.ServerTool{Tool: toolGetPushPullBalance, Handler: h.getPushPullBalance},
		server.ServerTool{Tool: toolGetSessionVolume, Handler: h.getSessionVolume},
		server.ServerTool{Tool: toolGetRecovery, Handler: h.getRecovery},
		server.ServerTool{Tool: toolGetExerciseMuscles, Handler: h.getExerciseMuscles},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resMuscleCatalog, Handler: h.muscleCatalog},
		server.ServerResource{Resource: resWeeklyReport, Handler: h.weeklyReport},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	src        history.Source
	thresholds map[muscles.Muscle]muscles.Threshold
	now        func() time.Time
	log        *slog.Logger
}

func newHandlers(src history.Source, cfg config.AnalyticsConfig, log *slog.Logger) *handlers {
	return &handlers{
		src:        src,
		thresholds: cfg.ThresholdOverrides(),
		now:        cfg.Today,
		log:        log,
	}
}

// --- Resource definitions ---

var resMuscleCatalog = mcp.NewResource(
	"trainload://muscle_catalog",
	"Muscle Catalog",
	mcp.WithResourceDescription("The 14 tracked muscle groups with their region and effective MEV/MRV weekly set landmarks"),
	mcp.WithMIMEType("application/json"),
)

var resWeeklyReport = mcp.NewResource(
	"trainload://weekly_report",
	"Weekly Report",
	mcp.WithResourceDescription("Full training load report as of today: volume, frequency, overload, deload, rep ranges, push/pull, session volume and recovery"),
	mcp.WithMIMEType("application/json"),
)

package mcp

import (
	"log/slog"

	"github.com/claude/neonfit/internal/history"
	"github.com/claude/neonfit/internal/kv"
	"github.com/claude/neonfit/internal/program"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(data *program.Data, hist *history.Store, store kv.Store, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("NeonFit", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("NeonFit strength training server. Query the 26-week Hybrid Master 51 program plan, logged workout history, personal records, and week-over-week progress."),
	)

	h := &handlers{
		program:  data,
		history:  hist,
		stats:    history.NewStats(hist),
		progress: history.NewProgressTracker(hist),
		kv:       store,
		log:      log,
	}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolGetProgramWeek, Handler: h.getProgramWeek},
		server.ServerTool{Tool: toolGetWorkout, Handler: h.getWorkout},
		server.ServerTool{Tool: toolGetExerciseProgression, Handler: h.getExerciseProgression},
		server.ServerTool{Tool: toolGetWeekVolume, Handler: h.getWeekVolume},
		server.ServerTool{Tool: toolGetWeekSummary, Handler: h.getWeekSummary},
		server.ServerTool{Tool: toolGetProgressionSummary, Handler: h.getProgressionSummary},
		server.ServerTool{Tool: toolGetWorkoutHistory, Handler: h.getWorkoutHistory},
		server.ServerTool{Tool: toolGetPersonalRecords, Handler: h.getPersonalRecords},
		server.ServerTool{Tool: toolCheckProgress, Handler: h.checkProgress},
		server.ServerTool{Tool: toolGetChartData, Handler: h.getChartData},
		server.ServerTool{Tool: toolGetTrainingStats, Handler: h.getTrainingStats},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resProgramInfo, Handler: h.programInfo},
		server.ServerResource{Resource: resCurrentWeek, Handler: h.currentWeek},
		server.ServerResource{Resource: resExerciseCatalog, Handler: h.exerciseCatalog},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	program  *program.Data
	history  *history.Store
	stats    *history.Stats
	progress *history.ProgressTracker
	kv       kv.Store
	log      *slog.Logger
}

// --- Resource definitions ---

var resProgramInfo = mcp.NewResource(
	"neonfit://program_info",
	"Program Info",
	mcp.WithResourceDescription("Hybrid Master 51 program metadata: block structure, techniques, deload protocol, and biceps rotation"),
	mcp.WithMIMEType("application/json"),
)

var resCurrentWeek = mcp.NewResource(
	"neonfit://current_week",
	"Current Week",
	mcp.WithResourceDescription("The active program week with its full plan and what has been logged against it"),
	mcp.WithMIMEType("application/json"),
)

var resExerciseCatalog = mcp.NewResource(
	"neonfit://exercise_catalog",
	"Exercise Catalog",
	mcp.WithResourceDescription("All exercise names appearing in the program, sorted alphabetically"),
	mcp.WithMIMEType("application/json"),
)

package server

import (
	"log/slog"
	"net/http"

	"github.com/claude/neonfit/internal/gamification"
	"github.com/claude/neonfit/internal/history"
	"github.com/claude/neonfit/internal/kv"
	"github.com/claude/neonfit/internal/program"
	"github.com/go-chi/chi/v5"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	program  *program.Data
	history  *history.Store
	stats    *history.Stats
	progress *history.ProgressTracker
	xp       *gamification.Service
	kv       kv.Store
	log      *slog.Logger
	apiKey   string
	router   chi.Router
}

// New creates a new Server with all routes configured.
func New(data *program.Data, hist *history.Store, xp *gamification.Service, store kv.Store, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		program:  data,
		history:  hist,
		stats:    history.NewStats(hist),
		progress: history.NewProgressTracker(hist),
		xp:       xp,
		kv:       store,
		log:      log,
		apiKey:   apiKey,
		router:   chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	// Program queries (read-only, no auth — tsnet handles access)
	s.router.Route("/api/v1/program", func(r chi.Router) {
		r.Get("/", s.handleAllWeeks)
		r.Get("/info", s.handleProgramInfo)
		r.Get("/days", s.handleDays)
		r.Get("/exercises", s.handleAllExercises)
		r.Get("/progression", s.handleExerciseProgression)
		r.Get("/progression/summary", s.handleProgressionSummary)
		r.Get("/validate", s.handleValidate)
		r.Get("/export", s.handleProgramExport)
		r.Get("/weeks/{week}", s.handleWeek)
		r.Get("/weeks/{week}/summary", s.handleWeekSummary)
		r.Get("/weeks/{week}/volume", s.handleWeekVolume)
		r.Get("/weeks/{week}/bicep", s.handleBicepExercise)
		r.Get("/weeks/{week}/days/{day}", s.handleWorkout)
		r.Get("/weeks/{week}/days/{day}/exercises", s.handleWorkoutExercises)
		r.Get("/weeks/{week}/days/{day}/supersets", s.handleSupersets)

		r.With(APIKeyAuth(s.apiKey)).Post("/import", s.handleProgramImport)
	})

	// History and stats
	s.router.Route("/api/v1/history", func(r chi.Router) {
		r.Get("/", s.handleHistory)
		r.Get("/weeks/{week}", s.handleHistoryByWeek)
		r.Get("/weeks/{week}/days/{day}", s.handleHistoryByDay)
		r.Get("/exercise", s.handleHistoryByExercise)
		r.Get("/exercise/last", s.handleLastWorkout)
		r.Get("/comparison", s.handleComparison)
		r.Get("/export", s.handleHistoryExport)

		r.Group(func(r chi.Router) {
			r.Use(APIKeyAuth(s.apiKey))
			r.Post("/sets", s.handleLogSet)
			r.Post("/import", s.handleHistoryImport)
			r.Delete("/", s.handleClearHistory)
		})
	})

	s.router.Route("/api/v1/stats", func(r chi.Router) {
		r.Get("/", s.handleStats)
		r.Get("/records", s.handleRecords)
		r.Get("/streak", s.handleStreak)
		r.Get("/weeks/{week}", s.handleWeeklyStats)
	})

	s.router.Route("/api/v1/progress", func(r chi.Router) {
		r.Get("/", s.handleCheckProgress)
		r.Get("/chart", s.handleChartData)
	})

	// Persisted client state (current week cursor, XP)
	s.router.Route("/api/v1/state", func(r chi.Router) {
		r.Get("/current-week", s.handleGetCurrentWeek)
		r.Get("/level", s.handleLevel)

		r.Group(func(r chi.Router) {
			r.Use(APIKeyAuth(s.apiKey))
			r.Put("/current-week", s.handleSetCurrentWeek)
			r.Post("/xp", s.handleAddXP)
		})
	})
}

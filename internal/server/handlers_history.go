package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/claude/neonfit/internal/gamification"
	"github.com/claude/neonfit/internal/history"
	"github.com/go-chi/chi/v5"
)

// Logged input is clamped rather than rejected, mirroring the numeric
// guards of the original client form.
const (
	maxSetWeight = 500
	maxSetReps   = 50
)

func (s *Server) handleLogSet(w http.ResponseWriter, r *http.Request) {
	var data history.SetData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if data.Exercise == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "exercise is required"})
		return
	}

	if data.Weight < 0 {
		data.Weight = 0
	}
	if data.Weight > maxSetWeight {
		data.Weight = maxSetWeight
	}
	if data.Reps < 1 {
		data.Reps = 1
	}
	if data.Reps > maxSetReps {
		data.Reps = maxSetReps
	}

	entry, err := s.history.LogSet(r.Context(), data)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	xp, err := s.xp.AddXP(r.Context(), gamification.XPPerSet)
	if err != nil {
		s.log.Error("awarding xp failed", "error", err)
	}

	writeJSON(w, http.StatusCreated, map[string]any{"entry": entry, "xp": xp})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	entries := s.history.All(r.Context())
	if entries == nil {
		entries = []history.Entry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleHistoryByWeek(w http.ResponseWriter, r *http.Request) {
	week, ok := s.weekParam(w, r)
	if !ok {
		return
	}
	entries := s.history.ByWeek(r.Context(), week)
	if entries == nil {
		entries = []history.Entry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleHistoryByDay(w http.ResponseWriter, r *http.Request) {
	week, ok := s.weekParam(w, r)
	if !ok {
		return
	}
	entries := s.history.ByDay(r.Context(), week, chi.URLParam(r, "day"))
	if entries == nil {
		entries = []history.Entry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleHistoryByExercise(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name parameter required"})
		return
	}
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}
	entries := s.history.ByExercise(r.Context(), name, limit)
	if entries == nil {
		entries = []history.Entry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleLastWorkout(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name parameter required"})
		return
	}
	entry := s.history.LastWorkout(r.Context(), name)
	if entry == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no sets logged for exercise"})
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (s *Server) handleComparison(w http.ResponseWriter, r *http.Request) {
	week, err := strconv.Atoi(r.URL.Query().Get("week"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "week parameter required"})
		return
	}
	day := r.URL.Query().Get("day")
	exercise := r.URL.Query().Get("exercise")
	if day == "" || exercise == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "day and exercise parameters required"})
		return
	}
	writeJSON(w, http.StatusOK, s.history.Comparison(r.Context(), week, day, exercise))
}

func (s *Server) handleHistoryExport(w http.ResponseWriter, r *http.Request) {
	data, err := s.history.Export(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (s *Server) handleHistoryImport(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "reading body: " + err.Error()})
		return
	}
	if err := s.history.Import(r.Context(), data); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, history.ErrImportFormat) {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "imported"})
}

// handleClearHistory wipes the log. The confirm=true query parameter is
// required so a stray DELETE cannot erase months of training data.
func (s *Server) handleClearHistory(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("confirm") != "true" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "confirm=true required"})
		return
	}
	if err := s.history.Clear(r.Context()); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	writeJSON(w, http.StatusOK, map[string]any{
		"totalWorkouts": s.stats.TotalWorkouts(ctx),
		"totalSets":     s.stats.TotalSets(ctx),
		"totalVolume":   s.stats.TotalVolume(ctx),
	})
}

func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("exercise")
	if name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "exercise parameter required"})
		return
	}
	ctx := r.Context()
	writeJSON(w, http.StatusOK, map[string]any{
		"exercise":      name,
		"records":       s.stats.PersonalRecords(ctx, name),
		"averageWeight": s.stats.AverageWeight(ctx, name),
	})
}

func (s *Server) handleStreak(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]int{"streak": s.stats.Streak(r.Context())})
}

func (s *Server) handleWeeklyStats(w http.ResponseWriter, r *http.Request) {
	week, ok := s.weekParam(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.stats.WeekSummary(r.Context(), week))
}

func (s *Server) handleCheckProgress(w http.ResponseWriter, r *http.Request) {
	exercise := r.URL.Query().Get("exercise")
	if exercise == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "exercise parameter required"})
		return
	}
	week, err := strconv.Atoi(r.URL.Query().Get("week"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "week parameter required"})
		return
	}
	progress := s.progress.CheckProgress(r.Context(), exercise, week)
	if progress == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not enough data to compare"})
		return
	}
	writeJSON(w, http.StatusOK, progress)
}

func (s *Server) handleChartData(w http.ResponseWriter, r *http.Request) {
	exercise := r.URL.Query().Get("exercise")
	if exercise == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "exercise parameter required"})
		return
	}
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}
	writeJSON(w, http.StatusOK, s.progress.ChartData(r.Context(), exercise, limit))
}

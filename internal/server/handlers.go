package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/claude/neonfit/internal/program"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleAllWeeks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.program.AllWeeks())
}

func (s *Server) handleProgramInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.program.Info())
}

func (s *Server) handleDays(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.program.DaysList())
}

func (s *Server) handleWeek(w http.ResponseWriter, r *http.Request) {
	week, ok := s.weekParam(w, r)
	if !ok {
		return
	}
	plan, err := s.program.Week(week)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

func (s *Server) handleWeekSummary(w http.ResponseWriter, r *http.Request) {
	week, ok := s.weekParam(w, r)
	if !ok {
		return
	}
	summary, err := s.program.Summary(week)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleWeekVolume(w http.ResponseWriter, r *http.Request) {
	week, ok := s.weekParam(w, r)
	if !ok {
		return
	}
	report, err := s.program.WeekVolume(week)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleBicepExercise(w http.ResponseWriter, r *http.Request) {
	week, ok := s.weekParam(w, r)
	if !ok {
		return
	}
	if _, err := s.program.Week(week); err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"week": week, "exercise": s.program.BicepExerciseForWeek(week)})
}

func (s *Server) handleWorkout(w http.ResponseWriter, r *http.Request) {
	week, ok := s.weekParam(w, r)
	if !ok {
		return
	}
	session, err := s.program.Workout(week, chi.URLParam(r, "day"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (s *Server) handleWorkoutExercises(w http.ResponseWriter, r *http.Request) {
	week, ok := s.weekParam(w, r)
	if !ok {
		return
	}
	exercises, err := s.program.WorkoutExercises(week, chi.URLParam(r, "day"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, exercises)
}

func (s *Server) handleSupersets(w http.ResponseWriter, r *http.Request) {
	week, ok := s.weekParam(w, r)
	if !ok {
		return
	}
	pairs, err := s.program.SupersetsForDay(week, chi.URLParam(r, "day"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, pairs)
}

func (s *Server) handleAllExercises(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.program.AllExercises())
}

func (s *Server) handleExerciseProgression(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name parameter required"})
		return
	}
	writeJSON(w, http.StatusOK, s.program.ExerciseProgression(name))
}

func (s *Server) handleProgressionSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.program.ProgressionSummary())
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.program.Validate())
}

func (s *Server) handleProgramExport(w http.ResponseWriter, r *http.Request) {
	data, err := s.program.ExportJSON()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (s *Server) handleProgramImport(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "reading body: " + err.Error()})
		return
	}
	if err := s.program.ImportJSON(data); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, program.ErrImportFormat) {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "imported"})
}

// weekParam parses the {week} path segment. On failure it writes a 400
// response and returns ok=false.
func (s *Server) weekParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	week, err := strconv.Atoi(chi.URLParam(r, "week"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid week number"})
		return 0, false
	}
	return week, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

package server

import (
	"encoding/json"
	"net/http"
	"strconv"
)

// currentWeekKey is where the week cursor persists, keeping the key the
// original client wrote so existing data carries over.
const currentWeekKey = "hybrid_current_week"

func (s *Server) handleGetCurrentWeek(w http.ResponseWriter, r *http.Request) {
	week := 1
	raw, ok, err := s.kv.Get(r.Context(), currentWeekKey)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if ok {
		if n, err := strconv.Atoi(raw); err == nil {
			week = n
		}
	}
	writeJSON(w, http.StatusOK, map[string]int{"currentWeek": week})
}

func (s *Server) handleSetCurrentWeek(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Week int `json:"week"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if err := s.program.SetCurrentWeek(body.Week); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if err := s.kv.Set(r.Context(), currentWeekKey, strconv.Itoa(body.Week)); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"currentWeek": body.Week})
}

func (s *Server) handleLevel(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.xp.LevelInfo(r.Context()))
}

func (s *Server) handleAddXP(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Amount int `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if body.Amount <= 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "amount must be positive"})
		return
	}
	if _, err := s.xp.AddXP(r.Context(), body.Amount); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, s.xp.LevelInfo(r.Context()))
}

package program

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Reps is a rep prescription: either a fixed count (High == 0) or a
// "low-high" range. The original plan mixes both encodings, so the JSON form
// is a bare number for fixed counts and a quoted range otherwise.
type Reps struct {
	Low  int
	High int
}

// FixedReps builds a fixed rep count.
func FixedReps(n int) Reps { return Reps{Low: n} }

// RepRange builds a low-high rep range.
func RepRange(low, high int) Reps { return Reps{Low: low, High: high} }

func (r Reps) String() string {
	if r.High == 0 {
		return strconv.Itoa(r.Low)
	}
	return fmt.Sprintf("%d-%d", r.Low, r.High)
}

// MarshalJSON emits a number for fixed counts, a "6-8" string for ranges.
func (r Reps) MarshalJSON() ([]byte, error) {
	if r.High == 0 {
		return json.Marshal(r.Low)
	}
	return json.Marshal(r.String())
}

// UnmarshalJSON accepts both encodings. Range parsing keeps only the bounds;
// anything else is a format error.
func (r *Reps) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*r = Reps{Low: n}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("reps: expected number or range string, got %s", data)
	}
	parts := strings.SplitN(s, "-", 2)
	low, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return fmt.Errorf("reps: bad range %q", s)
	}
	high := 0
	if len(parts) == 2 {
		high, err = strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return fmt.Errorf("reps: bad range %q", s)
		}
	}
	*r = Reps{Low: low, High: high}
	return nil
}

// Exercise is one prescribed exercise inside a session.
type Exercise struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Category     string   `json:"category"` // compound | isolation
	Muscle       []string `json:"muscle"`
	Sets         int      `json:"sets"`
	Reps         Reps     `json:"reps"`
	RPE          string   `json:"rpe"`
	Weight       float64  `json:"weight"` // kg
	Rest         int      `json:"rest"`   // seconds
	Tempo        string   `json:"tempo"`
	Notes        string   `json:"notes"`
	IsSuperset   bool     `json:"isSuperset,omitempty"`
	SupersetWith string   `json:"supersetWith,omitempty"`
}

// Session is one workout on one day of a week.
type Session struct {
	Name        string     `json:"name"`
	Duration    int        `json:"duration"` // minutes
	TotalSets   int        `json:"totalSets"`
	DaysPerWeek []string   `json:"daysPerWeek,omitempty"` // maison only
	Exercises   []Exercise `json:"exercises"`
}

// WeekPlan is the full prescription for one week: block metadata plus the
// four sessions.
type WeekPlan struct {
	WeekNumber int     `json:"weekNumber"`
	Block      int     `json:"block"`
	Technique  string  `json:"technique"`
	RPETarget  string  `json:"rpeTarget"`
	IsDeload   bool    `json:"isDeload"`
	Dimanche   Session `json:"dimanche"`
	Mardi      Session `json:"mardi"`
	Vendredi   Session `json:"vendredi"`
	Maison     Session `json:"maison"`
}

// Session returns the session for the given day.
func (w *WeekPlan) Session(d Day) *Session {
	switch d {
	case Dimanche:
		return &w.Dimanche
	case Mardi:
		return &w.Mardi
	case Vendredi:
		return &w.Vendredi
	default:
		return &w.Maison
	}
}

// Program is the generated 26-week tree, keyed week1..week26 as in the
// export format.
type Program map[string]*WeekPlan

func weekKey(n int) string { return fmt.Sprintf("week%d", n) }

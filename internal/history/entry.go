package history

import "time"

// dateLayout is the display-date format carried on every entry (dd/mm/yyyy,
// as the original French-locale client produced). It is a display string;
// chronological comparisons use Timestamp.
const dateLayout = "02/01/2006"

// Entry is one logged set. Entries are immutable once written; the history
// is an append-only sequence capped at 1000 entries.
type Entry struct {
	ID            string    `json:"id"`
	Timestamp     time.Time `json:"timestamp"`
	Date          string    `json:"date"`
	Week          int       `json:"week"`
	Day           string    `json:"day"`
	Exercise      string    `json:"exercise"`
	ExerciseIndex int       `json:"exerciseIndex"`
	SetNumber     int       `json:"setNumber"`
	Weight        float64   `json:"weight"`
	Reps          int       `json:"reps"`
	TargetWeight  float64   `json:"targetWeight"`
	TargetReps    int       `json:"targetReps"`
	RPE           *float64  `json:"rpe"`
	Technique     string    `json:"technique"`
	Notes         string    `json:"notes"`
}

// SetData is the caller-supplied part of a logged set. Zero TargetWeight and
// TargetReps default to the logged values; an empty Technique defaults to
// "STANDARD".
type SetData struct {
	Week          int      `json:"week"`
	Day           string   `json:"day"`
	Exercise      string   `json:"exercise"`
	ExerciseIndex int      `json:"exerciseIndex"`
	SetNumber     int      `json:"setNumber"`
	Weight        float64  `json:"weight"`
	Reps          int      `json:"reps"`
	TargetWeight  float64  `json:"targetWeight"`
	TargetReps    int      `json:"targetReps"`
	RPE           *float64 `json:"rpe"`
	Technique     string   `json:"technique"`
	Notes         string   `json:"notes"`
}

package history

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/claude/neonfit/internal/kv"
	"github.com/google/uuid"
)

const (
	storageKey = "neon_fit_workout_history"
	maxEntries = 1000
)

// ErrImportFormat reports imported history that is not a JSON array.
var ErrImportFormat = errors.New("invalid import format")

// Store persists the workout history as one JSON snapshot in the key-value
// store. Every read re-parses the snapshot — there is no in-memory cache —
// and every write replaces it whole.
type Store struct {
	kv  kv.Store
	log *slog.Logger
	now func() time.Time
}

// NewStore creates a Store over the given key-value backend.
func NewStore(store kv.Store, log *slog.Logger) *Store {
	return &Store{kv: store, log: log, now: time.Now}
}

// LogSet appends one completed set, evicting the oldest entry when the
// 1000-entry cap is exceeded, and persists the whole snapshot.
func (s *Store) LogSet(ctx context.Context, data SetData) (*Entry, error) {
	now := s.now()
	entry := Entry{
		ID:            uuid.NewString(),
		Timestamp:     now,
		Date:          now.Format(dateLayout),
		Week:          data.Week,
		Day:           data.Day,
		Exercise:      data.Exercise,
		ExerciseIndex: data.ExerciseIndex,
		SetNumber:     data.SetNumber,
		Weight:        data.Weight,
		Reps:          data.Reps,
		TargetWeight:  data.TargetWeight,
		TargetReps:    data.TargetReps,
		RPE:           data.RPE,
		Technique:     data.Technique,
		Notes:         data.Notes,
	}
	if entry.TargetWeight == 0 {
		entry.TargetWeight = data.Weight
	}
	if entry.TargetReps == 0 {
		entry.TargetReps = data.Reps
	}
	if entry.Technique == "" {
		entry.Technique = "STANDARD"
	}

	entries := s.All(ctx)
	entries = append(entries, entry)
	if len(entries) > maxEntries {
		entries = entries[len(entries)-maxEntries:]
	}

	if err := s.write(ctx, entries); err != nil {
		s.log.Error("logging set failed", "exercise", entry.Exercise, "error", err)
		return nil, err
	}
	return &entry, nil
}

// All returns every logged entry in append order. A missing or malformed
// snapshot yields an empty history: read failures are recovered locally and
// logged, never propagated.
func (s *Store) All(ctx context.Context) []Entry {
	raw, ok, err := s.kv.Get(ctx, storageKey)
	if err != nil {
		s.log.Error("reading history failed", "error", err)
		return nil
	}
	if !ok {
		return nil
	}
	var entries []Entry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		s.log.Error("parsing history snapshot failed", "error", err)
		return nil
	}
	return entries
}

// ByWeek returns the entries logged for one week.
func (s *Store) ByWeek(ctx context.Context, week int) []Entry {
	var out []Entry
	for _, e := range s.All(ctx) {
		if e.Week == week {
			out = append(out, e)
		}
	}
	return out
}

// ByDay returns the entries logged for one (week, day).
func (s *Store) ByDay(ctx context.Context, week int, day string) []Entry {
	var out []Entry
	for _, e := range s.All(ctx) {
		if e.Week == week && e.Day == day {
			out = append(out, e)
		}
	}
	return out
}

// ByExercise returns the entries for one exercise, newest first. A positive
// limit truncates the result.
func (s *Store) ByExercise(ctx context.Context, name string, limit int) []Entry {
	var out []Entry
	for _, e := range s.All(ctx) {
		if e.Exercise == name {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// LastWorkout returns the most recent entry for an exercise, or nil.
func (s *Store) LastWorkout(ctx context.Context, name string) *Entry {
	entries := s.ByExercise(ctx, name, 1)
	if len(entries) == 0 {
		return nil
	}
	return &entries[0]
}

// Averages holds per-group mean weight and reps.
type Averages struct {
	Weight float64 `json:"weight"`
	Reps   float64 `json:"reps"`
}

// Improvement is the delta between two averaged groups of sets.
type Improvement struct {
	WeightDiff float64 `json:"weightDiff"`
	RepsDiff   float64 `json:"repsDiff"`
	VolumeDiff float64 `json:"volumeDiff"`
}

// Comparison holds the sets of the current and previous week for one
// (day, exercise), plus their averaged improvement. Improvement is nil
// unless both weeks have data.
type Comparison struct {
	Current     []Entry      `json:"current"`
	Previous    []Entry      `json:"previous"`
	Improvement *Improvement `json:"improvement"`
}

// Comparison compares the logged sets of week and week-1 for one
// (day, exercise).
func (s *Store) Comparison(ctx context.Context, week int, day, exercise string) *Comparison {
	all := s.All(ctx)
	var current, previous []Entry
	for _, e := range all {
		if e.Day != day || e.Exercise != exercise {
			continue
		}
		switch e.Week {
		case week:
			current = append(current, e)
		case week - 1:
			previous = append(previous, e)
		}
	}

	cmp := &Comparison{Current: current, Previous: previous}
	if len(current) > 0 && len(previous) > 0 {
		cur := average(current)
		prev := average(previous)
		cmp.Improvement = &Improvement{
			WeightDiff: cur.Weight - prev.Weight,
			RepsDiff:   cur.Reps - prev.Reps,
			VolumeDiff: cur.Weight*cur.Reps - prev.Weight*prev.Reps,
		}
	}
	return cmp
}

func average(entries []Entry) Averages {
	var weight, reps float64
	for _, e := range entries {
		weight += e.Weight
		reps += float64(e.Reps)
	}
	n := float64(len(entries))
	return Averages{Weight: weight / n, Reps: reps / n}
}

// Clear removes the persisted history. Destructive; callers must obtain an
// explicit confirmation before invoking it.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.kv.Delete(ctx, storageKey); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	return nil
}

// Export serializes the full history, 2-space indented.
func (s *Store) Export(ctx context.Context) ([]byte, error) {
	entries := s.All(ctx)
	if entries == nil {
		entries = []Entry{}
	}
	return json.MarshalIndent(entries, "", "  ")
}

// Import replaces the history with the given JSON array. Anything that is
// not an array is rejected with ErrImportFormat, leaving existing history
// untouched.
func (s *Store) Import(ctx context.Context, data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return fmt.Errorf("%w: top-level value must be an array", ErrImportFormat)
	}
	var entries []Entry
	if err := json.Unmarshal(trimmed, &entries); err != nil {
		return fmt.Errorf("%w: %v", ErrImportFormat, err)
	}
	return s.write(ctx, entries)
}

func (s *Store) write(ctx context.Context, entries []Entry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encoding history: %w", err)
	}
	if err := s.kv.Set(ctx, storageKey, string(raw)); err != nil {
		return fmt.Errorf("persisting history: %w", err)
	}
	return nil
}

package history

import (
	"context"
	"math"
	"sort"
	"time"
)

// Stats computes aggregate metrics over the logged history. Every method
// re-reads the persisted snapshot through the store.
type Stats struct {
	store *Store
}

// NewStats creates a Stats over the given store.
func NewStats(store *Store) *Stats {
	return &Stats{store: store}
}

// TotalWorkouts counts the distinct (week, day) pairs present in history.
func (s *Stats) TotalWorkouts(ctx context.Context) int {
	type workoutKey struct {
		week int
		day  string
	}
	seen := make(map[workoutKey]struct{})
	for _, e := range s.store.All(ctx) {
		seen[workoutKey{e.Week, e.Day}] = struct{}{}
	}
	return len(seen)
}

// TotalSets counts every logged entry.
func (s *Stats) TotalSets(ctx context.Context) int {
	return len(s.store.All(ctx))
}

// TotalVolume sums weight*reps over all entries, in kg.
func (s *Stats) TotalVolume(ctx context.Context) float64 {
	var total float64
	for _, e := range s.store.All(ctx) {
		total += e.Weight * float64(e.Reps)
	}
	return total
}

// AverageWeight is the mean logged weight for one exercise, rounded to one
// decimal. Zero when nothing is logged.
func (s *Stats) AverageWeight(ctx context.Context, exercise string) float64 {
	sets := s.store.ByExercise(ctx, exercise, 0)
	if len(sets) == 0 {
		return 0
	}
	var total float64
	for _, e := range sets {
		total += e.Weight
	}
	return math.Round(total/float64(len(sets))*10) / 10
}

// Records holds the personal bests for one exercise.
type Records struct {
	MaxWeight float64 `json:"maxWeight"`
	MaxReps   int     `json:"maxReps"`
	MaxVolume float64 `json:"maxVolume"`
}

// PersonalRecords returns the best single-set weight, reps and volume for
// one exercise; all zero when nothing is logged.
func (s *Stats) PersonalRecords(ctx context.Context, exercise string) Records {
	var rec Records
	for _, e := range s.store.ByExercise(ctx, exercise, 0) {
		rec.MaxWeight = math.Max(rec.MaxWeight, e.Weight)
		if e.Reps > rec.MaxReps {
			rec.MaxReps = e.Reps
		}
		rec.MaxVolume = math.Max(rec.MaxVolume, e.Weight*float64(e.Reps))
	}
	return rec
}

// Streak returns the longest run of consecutive calendar days with at least
// one logged set. Distinct display dates are sorted lexically before the
// day gaps are computed, matching the original client; a gap of exactly one
// day extends the run, anything else resets it.
func (s *Stats) Streak(ctx context.Context) int {
	entries := s.store.All(ctx)
	if len(entries) == 0 {
		return 0
	}

	seen := make(map[string]struct{})
	for _, e := range entries {
		seen[e.Date] = struct{}{}
	}
	dates := make([]string, 0, len(seen))
	for d := range seen {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	streak, current := 1, 1
	for i := 1; i < len(dates); i++ {
		prev, errPrev := time.Parse(dateLayout, dates[i-1])
		curr, errCurr := time.Parse(dateLayout, dates[i])
		if errPrev != nil || errCurr != nil {
			current = 1
			continue
		}
		if int(curr.Sub(prev)/(24*time.Hour)) == 1 {
			current++
			if current > streak {
				streak = current
			}
		} else {
			current = 1
		}
	}
	return streak
}

// WeeklySummary aggregates the history of one program week.
type WeeklySummary struct {
	Week                int     `json:"week"`
	Workouts            int     `json:"workouts"` // distinct days trained
	TotalSets           int     `json:"totalSets"`
	TotalVolume         float64 `json:"totalVolume"`
	Exercises           int     `json:"exercises"` // distinct names
	AvgVolumePerWorkout int     `json:"avgVolumePerWorkout"`
}

// WeekSummary summarizes what was actually logged for one week.
func (s *Stats) WeekSummary(ctx context.Context, week int) WeeklySummary {
	sets := s.store.ByWeek(ctx, week)

	days := make(map[string]struct{})
	names := make(map[string]struct{})
	var volume float64
	for _, e := range sets {
		days[e.Day] = struct{}{}
		names[e.Exercise] = struct{}{}
		volume += e.Weight * float64(e.Reps)
	}

	summary := WeeklySummary{
		Week:        week,
		Workouts:    len(days),
		TotalSets:   len(sets),
		TotalVolume: volume,
		Exercises:   len(names),
	}
	if summary.Workouts > 0 {
		summary.AvgVolumePerWorkout = int(math.Round(volume / float64(summary.Workouts)))
	}
	return summary
}

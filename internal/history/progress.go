package history

import (
	"context"
	"fmt"
	"math"
	"sort"
)

// ProgressTracker derives week-over-week progress signals from the logged
// history.
type ProgressTracker struct {
	store *Store
}

// NewProgressTracker creates a ProgressTracker over the given store.
func NewProgressTracker(store *Store) *ProgressTracker {
	return &ProgressTracker{store: store}
}

// Progress compares the best single-set volume of two consecutive weeks.
type Progress struct {
	Improved           bool    `json:"improved"`
	Improvement        float64 `json:"improvement"`
	ImprovementPercent float64 `json:"improvementPercent"`
	CurrentBest        float64 `json:"currentBest"`
	PreviousBest       float64 `json:"previousBest"`
}

// CheckProgress compares the best set volume (weight*reps) of currentWeek
// against currentWeek-1 for one exercise. Nil when either week has no data.
func (t *ProgressTracker) CheckProgress(ctx context.Context, exercise string, currentWeek int) *Progress {
	var current, previous []Entry
	for _, e := range t.store.All(ctx) {
		if e.Exercise != exercise {
			continue
		}
		switch e.Week {
		case currentWeek:
			current = append(current, e)
		case currentWeek - 1:
			previous = append(previous, e)
		}
	}
	if len(current) == 0 || len(previous) == 0 {
		return nil
	}

	currentBest := bestVolume(current)
	previousBest := bestVolume(previous)
	improvement := currentBest - previousBest

	return &Progress{
		Improved:           improvement > 0,
		Improvement:        improvement,
		ImprovementPercent: math.Round(improvement/previousBest*100*10) / 10,
		CurrentBest:        currentBest,
		PreviousBest:       previousBest,
	}
}

func bestVolume(entries []Entry) float64 {
	var best float64
	for _, e := range entries {
		best = math.Max(best, e.Weight*float64(e.Reps))
	}
	return best
}

// ChartPoint is one workout session aggregated for charting.
type ChartPoint struct {
	Label       string  `json:"label"`
	Week        int     `json:"week"`
	Day         string  `json:"day"`
	Date        string  `json:"date"`
	MaxWeight   float64 `json:"maxWeight"`
	TotalVolume float64 `json:"totalVolume"`
	Sets        []Entry `json:"sets"`
}

// ChartData groups an exercise's entries by (week, day) session, computing
// per-session max weight and total volume, ordered by week ascending. A
// positive limit keeps only the most recent sessions.
func (t *ProgressTracker) ChartData(ctx context.Context, exercise string, limit int) []ChartPoint {
	sessions := make(map[string]*ChartPoint)
	for _, e := range t.store.ByExercise(ctx, exercise, 0) {
		key := fmt.Sprintf("W%d-%s", e.Week, e.Day)
		point, ok := sessions[key]
		if !ok {
			point = &ChartPoint{Label: key, Week: e.Week, Day: e.Day, Date: e.Date}
			sessions[key] = point
		}
		point.MaxWeight = math.Max(point.MaxWeight, e.Weight)
		point.TotalVolume += e.Weight * float64(e.Reps)
		point.Sets = append(point.Sets, e)
	}

	data := make([]ChartPoint, 0, len(sessions))
	for _, point := range sessions {
		data = append(data, *point)
	}
	sort.SliceStable(data, func(i, j int) bool { return data[i].Week < data[j].Week })

	if limit > 0 && len(data) > limit {
		data = data[len(data)-limit:]
	}
	return data
}

package history

import (
	"context"
	"testing"
	"time"
)

func seed(t *testing.T, s *Store, sets ...SetData) {
	t.Helper()
	for _, d := range sets {
		if _, err := s.LogSet(context.Background(), d); err != nil {
			t.Fatal(err)
		}
	}
}

// TestTotals verifies workout, set and volume counting. Two sets on the same
// (week, day) are one workout.
func TestTotals(t *testing.T) {
	s := testStore()
	stats := NewStats(s)
	ctx := context.Background()

	seed(t, s,
		SetData{Week: 1, Day: "dimanche", Exercise: "A", Weight: 100, Reps: 5},
		SetData{Week: 1, Day: "dimanche", Exercise: "A", Weight: 100, Reps: 5},
		SetData{Week: 1, Day: "mardi", Exercise: "B", Weight: 20, Reps: 10},
		SetData{Week: 2, Day: "dimanche", Exercise: "A", Weight: 105, Reps: 5},
	)

	if got := stats.TotalWorkouts(ctx); got != 3 {
		t.Errorf("totalWorkouts = %d, want 3", got)
	}
	if got := stats.TotalSets(ctx); got != 4 {
		t.Errorf("totalSets = %d, want 4", got)
	}
	// 500 + 500 + 200 + 525
	if got := stats.TotalVolume(ctx); got != 1725 {
		t.Errorf("totalVolume = %v, want 1725", got)
	}
}

// TestAverageWeight verifies the one-decimal rounding of the mean.
func TestAverageWeight(t *testing.T) {
	s := testStore()
	stats := NewStats(s)
	ctx := context.Background()

	if got := stats.AverageWeight(ctx, "A"); got != 0 {
		t.Errorf("average on empty history = %v, want 0", got)
	}

	seed(t, s,
		SetData{Week: 1, Day: "dimanche", Exercise: "A", Weight: 100, Reps: 5},
		SetData{Week: 2, Day: "dimanche", Exercise: "A", Weight: 102.5, Reps: 5},
		SetData{Week: 3, Day: "dimanche", Exercise: "A", Weight: 102.5, Reps: 5},
	)
	// (100 + 102.5 + 102.5) / 3 = 101.666... → 101.7
	if got := stats.AverageWeight(ctx, "A"); got != 101.7 {
		t.Errorf("averageWeight = %v, want 101.7", got)
	}
}

// TestPersonalRecords verifies the per-dimension maxima can come from
// different sets.
func TestPersonalRecords(t *testing.T) {
	s := testStore()
	stats := NewStats(s)
	ctx := context.Background()

	seed(t, s,
		SetData{Week: 1, Day: "dimanche", Exercise: "A", Weight: 100, Reps: 5},  // heaviest
		SetData{Week: 2, Day: "dimanche", Exercise: "A", Weight: 80, Reps: 12},  // most reps, biggest volume
		SetData{Week: 3, Day: "dimanche", Exercise: "B", Weight: 200, Reps: 20}, // other exercise
	)

	rec := stats.PersonalRecords(ctx, "A")
	if rec.MaxWeight != 100 {
		t.Errorf("maxWeight = %v, want 100", rec.MaxWeight)
	}
	if rec.MaxReps != 12 {
		t.Errorf("maxReps = %d, want 12", rec.MaxReps)
	}
	if rec.MaxVolume != 960 {
		t.Errorf("maxVolume = %v, want 960", rec.MaxVolume)
	}

	empty := stats.PersonalRecords(ctx, "C")
	if empty.MaxWeight != 0 || empty.MaxReps != 0 || empty.MaxVolume != 0 {
		t.Errorf("records for unlogged exercise = %+v, want zeros", empty)
	}
}

// TestStreak verifies consecutive training days extend the streak and a gap
// resets it.
func TestStreak(t *testing.T) {
	s := testStore()
	stats := NewStats(s)
	ctx := context.Background()

	if got := stats.Streak(ctx); got != 0 {
		t.Errorf("streak on empty history = %d, want 0", got)
	}

	// Three consecutive days, a gap, then two more within the same month so
	// the lexical date ordering matches chronology.
	fixedClock(s, time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC), 24*time.Hour)
	seed(t, s,
		SetData{Week: 1, Day: "dimanche", Exercise: "A", Weight: 10, Reps: 5}, // 10/03
		SetData{Week: 1, Day: "mardi", Exercise: "A", Weight: 10, Reps: 5},    // 11/03
		SetData{Week: 1, Day: "vendredi", Exercise: "A", Weight: 10, Reps: 5}, // 12/03
	)
	fixedClock(s, time.Date(2026, 3, 20, 18, 0, 0, 0, time.UTC), 24*time.Hour)
	seed(t, s,
		SetData{Week: 2, Day: "dimanche", Exercise: "A", Weight: 10, Reps: 5}, // 20/03
		SetData{Week: 2, Day: "mardi", Exercise: "A", Weight: 10, Reps: 5},    // 21/03
	)

	if got := stats.Streak(ctx); got != 3 {
		t.Errorf("streak = %d, want 3", got)
	}
}

// TestStreakSameDay verifies multiple sets on one day count as a single day.
func TestStreakSameDay(t *testing.T) {
	s := testStore()
	stats := NewStats(s)
	ctx := context.Background()

	fixedClock(s, time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC), time.Minute)
	seed(t, s,
		SetData{Week: 1, Day: "dimanche", Exercise: "A", Weight: 10, Reps: 5},
		SetData{Week: 1, Day: "dimanche", Exercise: "A", Weight: 10, Reps: 5},
		SetData{Week: 1, Day: "dimanche", Exercise: "B", Weight: 10, Reps: 5},
	)
	if got := stats.Streak(ctx); got != 1 {
		t.Errorf("streak = %d, want 1", got)
	}
}

// TestWeekSummary verifies the per-week aggregation and the average volume
// per workout.
func TestWeekSummary(t *testing.T) {
	s := testStore()
	stats := NewStats(s)
	ctx := context.Background()

	seed(t, s,
		SetData{Week: 4, Day: "dimanche", Exercise: "A", Weight: 100, Reps: 5},
		SetData{Week: 4, Day: "dimanche", Exercise: "B", Weight: 50, Reps: 10},
		SetData{Week: 4, Day: "mardi", Exercise: "A", Weight: 100, Reps: 5},
		SetData{Week: 5, Day: "dimanche", Exercise: "A", Weight: 105, Reps: 5},
	)

	summary := stats.WeekSummary(ctx, 4)
	if summary.Workouts != 2 {
		t.Errorf("workouts = %d, want 2", summary.Workouts)
	}
	if summary.TotalSets != 3 {
		t.Errorf("totalSets = %d, want 3", summary.TotalSets)
	}
	if summary.TotalVolume != 1500 {
		t.Errorf("totalVolume = %v, want 1500", summary.TotalVolume)
	}
	if summary.Exercises != 2 {
		t.Errorf("exercises = %d, want 2", summary.Exercises)
	}
	if summary.AvgVolumePerWorkout != 750 {
		t.Errorf("avgVolumePerWorkout = %d, want 750", summary.AvgVolumePerWorkout)
	}

	emptyWeek := stats.WeekSummary(ctx, 20)
	if emptyWeek.Workouts != 0 || emptyWeek.AvgVolumePerWorkout != 0 {
		t.Errorf("empty week summary = %+v, want zeros", emptyWeek)
	}
}

package history

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/claude/neonfit/internal/kv"
)

func testStore() *Store {
	return NewStore(kv.NewMemory(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// fixedClock pins the store clock so dates and ordering are deterministic.
func fixedClock(s *Store, start time.Time, step time.Duration) {
	current := start
	s.now = func() time.Time {
		t := current
		current = current.Add(step)
		return t
	}
}

// TestLogSetDefaults verifies targets default to the logged values and the
// technique defaults to STANDARD.
func TestLogSetDefaults(t *testing.T) {
	s := testStore()
	ctx := context.Background()

	entry, err := s.LogSet(ctx, SetData{
		Week: 3, Day: "dimanche", Exercise: "Trap Bar Deadlift",
		SetNumber: 1, Weight: 75, Reps: 8,
	})
	if err != nil {
		t.Fatalf("LogSet error: %v", err)
	}
	if entry.ID == "" {
		t.Error("entry has no ID")
	}
	if entry.TargetWeight != 75 {
		t.Errorf("targetWeight = %v, want 75 (defaulted)", entry.TargetWeight)
	}
	if entry.TargetReps != 8 {
		t.Errorf("targetReps = %d, want 8 (defaulted)", entry.TargetReps)
	}
	if entry.Technique != "STANDARD" {
		t.Errorf("technique = %q, want STANDARD", entry.Technique)
	}
	if entry.Date == "" {
		t.Error("entry has no display date")
	}

	all := s.All(ctx)
	if len(all) != 1 || all[0].ID != entry.ID {
		t.Fatalf("All() = %d entries, want the logged one", len(all))
	}
}

// TestLogSetExplicitTargets verifies provided targets and technique survive.
func TestLogSetExplicitTargets(t *testing.T) {
	s := testStore()
	rpe := 8.5
	entry, err := s.LogSet(context.Background(), SetData{
		Week: 7, Day: "mardi", Exercise: "Dumbbell Press",
		Weight: 24, Reps: 10, TargetWeight: 26, TargetReps: 12,
		RPE: &rpe, Technique: "REST-PAUSE",
	})
	if err != nil {
		t.Fatal(err)
	}
	if entry.TargetWeight != 26 || entry.TargetReps != 12 {
		t.Errorf("targets = %v/%d, want 26/12", entry.TargetWeight, entry.TargetReps)
	}
	if entry.Technique != "REST-PAUSE" {
		t.Errorf("technique = %q", entry.Technique)
	}
	if entry.RPE == nil || *entry.RPE != 8.5 {
		t.Errorf("rpe = %v, want 8.5", entry.RPE)
	}
}

// TestLogSetCap verifies the history keeps only the newest 1000 entries,
// evicting from the front.
func TestLogSetCap(t *testing.T) {
	s := testStore()
	ctx := context.Background()
	for i := 0; i < maxEntries+1; i++ {
		_, err := s.LogSet(ctx, SetData{
			Week: 1, Day: "dimanche",
			Exercise: fmt.Sprintf("ex%d", i), Weight: 10, Reps: 5,
		})
		if err != nil {
			t.Fatal(err)
		}
	}
	all := s.All(ctx)
	if len(all) != maxEntries {
		t.Fatalf("entry count = %d, want %d", len(all), maxEntries)
	}
	if all[0].Exercise != "ex1" {
		t.Errorf("oldest surviving entry = %q, want ex1", all[0].Exercise)
	}
	if all[len(all)-1].Exercise != fmt.Sprintf("ex%d", maxEntries) {
		t.Errorf("newest entry = %q", all[len(all)-1].Exercise)
	}
}

// TestByWeekAndByDay verifies the week and day filters.
func TestByWeekAndByDay(t *testing.T) {
	s := testStore()
	ctx := context.Background()
	for _, d := range []SetData{
		{Week: 1, Day: "dimanche", Exercise: "A", Weight: 10, Reps: 5},
		{Week: 1, Day: "mardi", Exercise: "B", Weight: 10, Reps: 5},
		{Week: 2, Day: "dimanche", Exercise: "A", Weight: 12, Reps: 5},
	} {
		if _, err := s.LogSet(ctx, d); err != nil {
			t.Fatal(err)
		}
	}

	if got := len(s.ByWeek(ctx, 1)); got != 2 {
		t.Errorf("ByWeek(1) = %d entries, want 2", got)
	}
	if got := len(s.ByDay(ctx, 1, "dimanche")); got != 1 {
		t.Errorf("ByDay(1, dimanche) = %d entries, want 1", got)
	}
	if got := len(s.ByDay(ctx, 3, "dimanche")); got != 0 {
		t.Errorf("ByDay(3, dimanche) = %d entries, want 0", got)
	}
}

// TestByExerciseOrderAndLimit verifies newest-first ordering and limit
// truncation.
func TestByExerciseOrderAndLimit(t *testing.T) {
	s := testStore()
	fixedClock(s, time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC), time.Hour)
	ctx := context.Background()

	for week := 1; week <= 4; week++ {
		if _, err := s.LogSet(ctx, SetData{Week: week, Day: "dimanche", Exercise: "A", Weight: float64(70 + week), Reps: 8}); err != nil {
			t.Fatal(err)
		}
	}

	entries := s.ByExercise(ctx, "A", 0)
	if len(entries) != 4 {
		t.Fatalf("entry count = %d, want 4", len(entries))
	}
	if entries[0].Week != 4 || entries[3].Week != 1 {
		t.Errorf("ordering = weeks %d..%d, want newest first", entries[0].Week, entries[3].Week)
	}

	limited := s.ByExercise(ctx, "A", 2)
	if len(limited) != 2 || limited[0].Week != 4 {
		t.Errorf("limit=2 kept %d entries starting at week %d", len(limited), limited[0].Week)
	}
}

// TestLastWorkout verifies the single most recent entry is returned, nil when
// nothing is logged.
func TestLastWorkout(t *testing.T) {
	s := testStore()
	fixedClock(s, time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC), time.Hour)
	ctx := context.Background()

	if got := s.LastWorkout(ctx, "A"); got != nil {
		t.Errorf("LastWorkout on empty history = %+v, want nil", got)
	}
	for week := 1; week <= 3; week++ {
		if _, err := s.LogSet(ctx, SetData{Week: week, Day: "dimanche", Exercise: "A", Weight: 70, Reps: 8}); err != nil {
			t.Fatal(err)
		}
	}
	last := s.LastWorkout(ctx, "A")
	if last == nil || last.Week != 3 {
		t.Errorf("LastWorkout = %+v, want week 3", last)
	}
}

// TestComparison verifies the week-over-week averages: 52.5 vs 50 gives a
// 2.5 kg weight improvement.
func TestComparison(t *testing.T) {
	s := testStore()
	ctx := context.Background()
	for _, d := range []SetData{
		{Week: 4, Day: "mardi", Exercise: "Dumbbell Press", Weight: 50, Reps: 10},
		{Week: 4, Day: "mardi", Exercise: "Dumbbell Press", Weight: 50, Reps: 10},
		{Week: 5, Day: "mardi", Exercise: "Dumbbell Press", Weight: 52.5, Reps: 10},
		{Week: 5, Day: "mardi", Exercise: "Dumbbell Press", Weight: 52.5, Reps: 10},
	} {
		if _, err := s.LogSet(ctx, d); err != nil {
			t.Fatal(err)
		}
	}

	cmp := s.Comparison(ctx, 5, "mardi", "Dumbbell Press")
	if len(cmp.Current) != 2 || len(cmp.Previous) != 2 {
		t.Fatalf("current/previous = %d/%d, want 2/2", len(cmp.Current), len(cmp.Previous))
	}
	if cmp.Improvement == nil {
		t.Fatal("improvement is nil with data in both weeks")
	}
	if cmp.Improvement.WeightDiff != 2.5 {
		t.Errorf("weightDiff = %v, want 2.5", cmp.Improvement.WeightDiff)
	}
	if cmp.Improvement.RepsDiff != 0 {
		t.Errorf("repsDiff = %v, want 0", cmp.Improvement.RepsDiff)
	}
}

// TestComparisonMissingWeek verifies no improvement is computed when either
// week is empty.
func TestComparisonMissingWeek(t *testing.T) {
	s := testStore()
	ctx := context.Background()
	if _, err := s.LogSet(ctx, SetData{Week: 5, Day: "mardi", Exercise: "A", Weight: 50, Reps: 10}); err != nil {
		t.Fatal(err)
	}
	cmp := s.Comparison(ctx, 5, "mardi", "A")
	if cmp.Improvement != nil {
		t.Errorf("improvement = %+v, want nil without a previous week", cmp.Improvement)
	}
}

// TestClear verifies the history is wiped.
func TestClear(t *testing.T) {
	s := testStore()
	ctx := context.Background()
	if _, err := s.LogSet(ctx, SetData{Week: 1, Day: "dimanche", Exercise: "A", Weight: 10, Reps: 5}); err != nil {
		t.Fatal(err)
	}
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("Clear error: %v", err)
	}
	if got := len(s.All(ctx)); got != 0 {
		t.Errorf("entries after clear = %d, want 0", got)
	}
}

// TestExportEmpty verifies an empty history exports as an empty array, not
// null.
func TestExportEmpty(t *testing.T) {
	data, err := testStore().Export(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(string(data)) != "[]" {
		t.Errorf("empty export = %q, want []", string(data))
	}
}

// TestImportRoundTrip verifies an exported history can be imported into a
// fresh store.
func TestImportRoundTrip(t *testing.T) {
	src := testStore()
	ctx := context.Background()
	for week := 1; week <= 3; week++ {
		if _, err := src.LogSet(ctx, SetData{Week: week, Day: "dimanche", Exercise: "A", Weight: 70, Reps: 8}); err != nil {
			t.Fatal(err)
		}
	}
	data, err := src.Export(ctx)
	if err != nil {
		t.Fatal(err)
	}

	dst := testStore()
	if err := dst.Import(ctx, data); err != nil {
		t.Fatalf("Import error: %v", err)
	}
	if got := len(dst.All(ctx)); got != 3 {
		t.Errorf("imported entries = %d, want 3", got)
	}
}

// TestImportRejectsNonArray verifies anything but a JSON array is rejected
// and the existing history survives.
func TestImportRejectsNonArray(t *testing.T) {
	s := testStore()
	ctx := context.Background()
	if _, err := s.LogSet(ctx, SetData{Week: 1, Day: "dimanche", Exercise: "A", Weight: 10, Reps: 5}); err != nil {
		t.Fatal(err)
	}

	for _, in := range []string{"", "null", "{}", `{"entries":[]}`, "garbage"} {
		if err := s.Import(ctx, []byte(in)); !errors.Is(err, ErrImportFormat) {
			t.Errorf("Import(%q) error = %v, want ErrImportFormat", in, err)
		}
	}
	if got := len(s.All(ctx)); got != 1 {
		t.Errorf("entries after rejected imports = %d, want 1", got)
	}
}

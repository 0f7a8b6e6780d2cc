package program

import (
	"errors"
	"strings"
	"testing"
)

// TestWeekBounds verifies out-of-range weeks are rejected with ErrInvalidWeek.
func TestWeekBounds(t *testing.T) {
	d := New()
	for _, n := range []int{0, -1, 27, 100} {
		if _, err := d.Week(n); !errors.Is(err, ErrInvalidWeek) {
			t.Errorf("Week(%d) error = %v, want ErrInvalidWeek", n, err)
		}
	}
	if _, err := d.Week(1); err != nil {
		t.Errorf("Week(1) error: %v", err)
	}
	if _, err := d.Week(26); err != nil {
		t.Errorf("Week(26) error: %v", err)
	}
}

// TestWorkoutDayMatching verifies day lookup is case-insensitive and unknown
// days return ErrInvalidDay.
func TestWorkoutDayMatching(t *testing.T) {
	d := New()
	session, err := d.Workout(3, "DIMANCHE")
	if err != nil {
		t.Fatalf("Workout(3, DIMANCHE) error: %v", err)
	}
	if session.Name != "DOS + JAMBES LOURDES + BRAS" {
		t.Errorf("session name = %q", session.Name)
	}

	if _, err := d.Workout(3, "lundi"); !errors.Is(err, ErrInvalidDay) {
		t.Errorf("Workout(3, lundi) error = %v, want ErrInvalidDay", err)
	}
}

// TestExerciseProgression verifies a dimanche-only lift yields one point per
// week with the expected ramp and deload drop.
func TestExerciseProgression(t *testing.T) {
	d := New()
	points := d.ExerciseProgression("Trap Bar Deadlift")
	if len(points) != 26 {
		t.Fatalf("point count = %d, want 26", len(points))
	}
	if points[0].Weight != 75 {
		t.Errorf("week 1 weight = %v, want 75", points[0].Weight)
	}
	if points[6].Weight != 85 { // week 7
		t.Errorf("week 7 weight = %v, want 85", points[6].Weight)
	}
	if points[5].Weight != 48 || !points[5].IsDeload { // week 6 deload
		t.Errorf("week 6 = %+v, want weight 48 and deload", points[5])
	}
}

// TestExerciseProgressionMultiDay verifies an exercise trained twice a week
// yields two points per week.
func TestExerciseProgressionMultiDay(t *testing.T) {
	d := New()
	points := d.ExerciseProgression("Lateral Raises")
	if len(points) != 52 {
		t.Fatalf("point count = %d, want 52", len(points))
	}
	if points[0].Day != "mardi" || points[1].Day != "vendredi" {
		t.Errorf("week 1 days = %s, %s, want mardi, vendredi", points[0].Day, points[1].Day)
	}
}

// TestExerciseProgressionUnknown verifies unknown names yield no points.
func TestExerciseProgressionUnknown(t *testing.T) {
	d := New()
	if points := d.ExerciseProgression("Nonexistent Lift"); len(points) != 0 {
		t.Errorf("point count = %d, want 0", len(points))
	}
}

// TestAllExercises verifies the distinct name catalog is sorted and contains
// both rotation exercises.
func TestAllExercises(t *testing.T) {
	d := New()
	names := d.AllExercises()
	if len(names) == 0 {
		t.Fatal("no exercises")
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("names not sorted: %q before %q", names[i-1], names[i])
		}
	}
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		seen[n] = true
	}
	if !seen["Incline Curl"] || !seen["Spider Curl"] {
		t.Error("rotation exercises missing from catalog")
	}
}

// TestWeekVolume verifies the prescribed set and rep totals of a standard
// week. Rep ranges count their lower bound.
func TestWeekVolume(t *testing.T) {
	d := New()
	report, err := d.WeekVolume(1)
	if err != nil {
		t.Fatalf("WeekVolume(1) error: %v", err)
	}
	if report.TotalSets != 106 {
		t.Errorf("totalSets = %d, want 106", report.TotalSets)
	}
	if report.TotalReps != 1278 {
		t.Errorf("totalReps = %d, want 1278", report.TotalReps)
	}
	if report.TotalWeight <= 0 {
		t.Errorf("totalWeight = %d, want positive", report.TotalWeight)
	}
	if report.WeekNumber != 1 {
		t.Errorf("weekNumber = %d, want 1", report.WeekNumber)
	}
}

// TestWeekVolumeDeloadDrop verifies the deload week moves less total weight
// than the loaded week before it.
func TestWeekVolumeDeloadDrop(t *testing.T) {
	d := New()
	week5, err := d.WeekVolume(5)
	if err != nil {
		t.Fatal(err)
	}
	week6, err := d.WeekVolume(6)
	if err != nil {
		t.Fatal(err)
	}
	if week6.TotalWeight >= week5.TotalWeight {
		t.Errorf("deload tonnage %d not below week 5 tonnage %d", week6.TotalWeight, week5.TotalWeight)
	}
}

// TestSupersetsForDay verifies the dimanche pairs: the lat pulldown/landmine
// press block and the biceps/triceps finisher, each mirrored.
func TestSupersetsForDay(t *testing.T) {
	d := New()
	pairs, err := d.SupersetsForDay(1, "dimanche")
	if err != nil {
		t.Fatalf("SupersetsForDay error: %v", err)
	}
	if len(pairs) != 4 {
		t.Fatalf("pair count = %d, want 4 (two pairs, mirrored)", len(pairs))
	}
	for _, p := range pairs {
		if p.Exercise1.SupersetWith != p.Exercise2.Name && p.Exercise2.SupersetWith != p.Exercise1.Name {
			t.Errorf("mismatched pair: %q / %q", p.Exercise1.Name, p.Exercise2.Name)
		}
	}
}

// TestValidateGenerated verifies the built-in program passes its own
// structural validation.
func TestValidateGenerated(t *testing.T) {
	report := New().Validate()
	if !report.IsValid {
		t.Fatalf("generated program invalid: %v", report.Errors)
	}
	if report.TotalWeeks != 26 {
		t.Errorf("totalWeeks = %d, want 26", report.TotalWeeks)
	}
	if report.TotalExercises == 0 {
		t.Error("totalExercises = 0")
	}
}

// TestExportImportRoundTrip verifies an export can be re-imported and yields
// the same plans.
func TestExportImportRoundTrip(t *testing.T) {
	d := New()
	data, err := d.ExportJSON()
	if err != nil {
		t.Fatalf("export error: %v", err)
	}
	if !strings.HasPrefix(string(data), "{\n  \"program\"") {
		t.Errorf("export not 2-space indented: %.40q", string(data))
	}

	fresh := New()
	if err := fresh.ImportJSON(data); err != nil {
		t.Fatalf("import error: %v", err)
	}
	report := fresh.Validate()
	if !report.IsValid {
		t.Fatalf("re-imported program invalid: %v", report.Errors)
	}
	week7, err := fresh.Week(7)
	if err != nil {
		t.Fatal(err)
	}
	if week7.Technique != "Rest-Pause" {
		t.Errorf("week 7 technique = %q after round trip", week7.Technique)
	}
}

// TestImportRejectsGarbage verifies malformed or empty imports leave the
// current program untouched.
func TestImportRejectsGarbage(t *testing.T) {
	d := New()
	for _, in := range []string{"not json", "{}", `{"program":{}}`, `[1,2,3]`} {
		if err := d.ImportJSON([]byte(in)); !errors.Is(err, ErrImportFormat) {
			t.Errorf("ImportJSON(%q) error = %v, want ErrImportFormat", in, err)
		}
	}
	if report := d.Validate(); !report.IsValid {
		t.Fatalf("program mutated by rejected import: %v", report.Errors)
	}
}

// TestProgressionSummary verifies start/end weights and the percentage
// formatting, including the deload-final end point.
func TestProgressionSummary(t *testing.T) {
	summary := New().ProgressionSummary()

	gain, ok := summary["Trap Bar Deadlift"]
	if !ok {
		t.Fatal("Trap Bar Deadlift missing from summary")
	}
	if gain.StartWeight != 75 {
		t.Errorf("startWeight = %v, want 75", gain.StartWeight)
	}
	// Week 26 is the final deload: (75+40) * 0.6 = 69
	if gain.EndWeight != 69 {
		t.Errorf("endWeight = %v, want 69", gain.EndWeight)
	}
	if gain.TotalGain != -6 {
		t.Errorf("totalGain = %v, want -6", gain.TotalGain)
	}
	if gain.PercentageIncrease != "-8.0%" {
		t.Errorf("percentageIncrease = %q, want -8.0%%", gain.PercentageIncrease)
	}
}

// TestSummary verifies the composite week overview fields.
func TestSummary(t *testing.T) {
	d := New()
	summary, err := d.Summary(13)
	if err != nil {
		t.Fatalf("Summary(13) error: %v", err)
	}
	if summary.Block != 3 {
		t.Errorf("block = %d, want 3", summary.Block)
	}
	if summary.Technique != "Drop-sets + Myo-reps" {
		t.Errorf("technique = %q", summary.Technique)
	}
	if summary.IsDeload {
		t.Error("week 13 flagged as deload")
	}
	if len(summary.Workouts) != 4 {
		t.Errorf("workout count = %d, want 4", len(summary.Workouts))
	}
	if summary.Workouts["maison"].Exercises != 1 {
		t.Errorf("maison exercises = %d, want 1", summary.Workouts["maison"].Exercises)
	}
}

// TestSetCurrentWeek verifies the cursor validates its range.
func TestSetCurrentWeek(t *testing.T) {
	d := New()
	if err := d.SetCurrentWeek(14); err != nil {
		t.Fatalf("SetCurrentWeek(14) error: %v", err)
	}
	if d.CurrentWeek != 14 {
		t.Errorf("currentWeek = %d, want 14", d.CurrentWeek)
	}
	if err := d.SetCurrentWeek(0); !errors.Is(err, ErrInvalidWeek) {
		t.Errorf("SetCurrentWeek(0) error = %v, want ErrInvalidWeek", err)
	}
	if err := d.SetCurrentWeek(27); !errors.Is(err, ErrInvalidWeek) {
		t.Errorf("SetCurrentWeek(27) error = %v, want ErrInvalidWeek", err)
	}
}

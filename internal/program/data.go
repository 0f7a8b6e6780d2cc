package program

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
)

// Data wraps a generated program tree and answers lookup, aggregation and
// validation queries over it. The tree is treated as immutable by all
// readers; ImportJSON is the only mutator and swaps the whole tree at once.
//
// CurrentWeek is a UI cursor, informational only — no query depends on it.
type Data struct {
	program     Program
	info        Info
	CurrentWeek int
}

// New builds a Data over the built-in generated program.
func New() *Data {
	return &Data{
		program:     Generate(),
		info:        DefaultInfo(),
		CurrentWeek: 1,
	}
}

// Info returns the static program metadata.
func (d *Data) Info() Info { return d.info }

// Week returns the plan for week n, or ErrInvalidWeek when n is outside
// 1..26 or absent from an imported program.
func (d *Data) Week(n int) (*WeekPlan, error) {
	if n < 1 || n > 26 {
		return nil, fmt.Errorf("week %d: %w", n, ErrInvalidWeek)
	}
	plan, ok := d.program[weekKey(n)]
	if !ok {
		return nil, fmt.Errorf("week %d missing from program: %w", n, ErrInvalidWeek)
	}
	return plan, nil
}

// Workout returns the session for (week, day). The day string is matched
// case-insensitively against the four known day names.
func (d *Data) Workout(n int, day string) (*Session, error) {
	plan, err := d.Week(n)
	if err != nil {
		return nil, err
	}
	parsed, err := ParseDay(day)
	if err != nil {
		return nil, err
	}
	return plan.Session(parsed), nil
}

// WorkoutExercises returns the ordered exercise list of one session.
func (d *Data) WorkoutExercises(n int, day string) ([]Exercise, error) {
	workout, err := d.Workout(n, day)
	if err != nil {
		return nil, err
	}
	return workout.Exercises, nil
}

// ProgressionPoint is one occurrence of an exercise in the program.
type ProgressionPoint struct {
	Week      int     `json:"week"`
	Day       string  `json:"day"`
	Weight    float64 `json:"weight"`
	Sets      int     `json:"sets"`
	Reps      Reps    `json:"reps"`
	Technique string  `json:"technique"`
	IsDeload  bool    `json:"isDeload"`
	Notes     string  `json:"notes"`
}

// ExerciseProgression collects every occurrence of an exercise across all 26
// weeks and 4 days, ordered by week. Matching is exact string equality on
// the name; two distinct exercises sharing a label are indistinguishable
// (known limitation of the name-keyed program format).
func (d *Data) ExerciseProgression(name string) []ProgressionPoint {
	var points []ProgressionPoint
	for week := 1; week <= 26; week++ {
		plan, err := d.Week(week)
		if err != nil {
			continue
		}
		for _, day := range Days() {
			session := plan.Session(day)
			for i := range session.Exercises {
				ex := &session.Exercises[i]
				if ex.Name != name {
					continue
				}
				points = append(points, ProgressionPoint{
					Week:      week,
					Day:       day.String(),
					Weight:    ex.Weight,
					Sets:      ex.Sets,
					Reps:      ex.Reps,
					Technique: plan.Technique,
					IsDeload:  plan.IsDeload,
					Notes:     ex.Notes,
				})
				break // first match per session, as in the original
			}
		}
	}
	return points
}

// AllExercises returns the distinct exercise names across the whole program,
// alphabetically sorted.
func (d *Data) AllExercises() []string {
	seen := make(map[string]struct{})
	for week := 1; week <= 26; week++ {
		plan, err := d.Week(week)
		if err != nil {
			continue
		}
		for _, day := range Days() {
			for _, ex := range plan.Session(day).Exercises {
				seen[ex.Name] = struct{}{}
			}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// VolumeReport aggregates a week's prescribed training volume. Rep ranges
// count their lower bound.
type VolumeReport struct {
	TotalSets   int `json:"totalSets"`
	TotalReps   int `json:"totalReps"`
	TotalWeight int `json:"totalWeight"` // kg, rounded
	WeekNumber  int `json:"weekNumber"`
}

// WeekVolume sums sets, reps and tonnage over the four sessions of week n.
func (d *Data) WeekVolume(n int) (*VolumeReport, error) {
	plan, err := d.Week(n)
	if err != nil {
		return nil, err
	}
	report := &VolumeReport{WeekNumber: n}
	var weight float64
	for _, day := range Days() {
		for _, ex := range plan.Session(day).Exercises {
			report.TotalSets += ex.Sets
			report.TotalReps += ex.Sets * ex.Reps.Low
			weight += float64(ex.Sets*ex.Reps.Low) * ex.Weight
		}
	}
	report.TotalWeight = int(math.Round(weight))
	return report, nil
}

// AllWeeks returns the 26 week plans in order.
func (d *Data) AllWeeks() []*WeekPlan {
	weeks := make([]*WeekPlan, 0, 26)
	for n := 1; n <= 26; n++ {
		if plan, err := d.Week(n); err == nil {
			weeks = append(weeks, plan)
		}
	}
	return weeks
}

// IsDeloadWeek reports whether week n is a deload week.
func (d *Data) IsDeloadWeek(n int) bool { return IsDeload(n) }

// Block returns the block number of week n.
func (d *Data) Block(n int) (int, error) {
	plan, err := d.Week(n)
	if err != nil {
		return 0, err
	}
	return plan.Block, nil
}

// Technique returns the technique label of week n.
func (d *Data) Technique(n int) (string, error) {
	plan, err := d.Week(n)
	if err != nil {
		return "", err
	}
	return plan.Technique, nil
}

// SupersetPair is a pair of exercises performed back to back.
type SupersetPair struct {
	Exercise1 Exercise `json:"exercise1"`
	Exercise2 Exercise `json:"exercise2"`
}

// SupersetsForDay pairs up the flagged superset exercises of one session.
// Partners are matched by name equality; a flagged exercise with no matching
// partner is silently omitted. Each pair appears once per member, mirrored,
// matching the original behavior.
func (d *Data) SupersetsForDay(n int, day string) ([]SupersetPair, error) {
	workout, err := d.Workout(n, day)
	if err != nil {
		return nil, err
	}
	var pairs []SupersetPair
	exercises := workout.Exercises
	for i := range exercises {
		if !exercises[i].IsSuperset {
			continue
		}
		for j := range exercises {
			if exercises[j].SupersetWith == exercises[i].Name ||
				exercises[i].SupersetWith == exercises[j].Name {
				pairs = append(pairs, SupersetPair{
					Exercise1: exercises[i],
					Exercise2: exercises[j],
				})
				break
			}
		}
	}
	return pairs, nil
}

// BicepExerciseForWeek returns the rotating Sunday biceps exercise.
func (d *Data) BicepExerciseForWeek(n int) string { return BicepExercise(n) }

// exportEnvelope is the on-disk export shape: the full tree plus metadata.
type exportEnvelope struct {
	Program Program `json:"program"`
	Info    Info    `json:"info"`
}

// ExportJSON serializes the program and its metadata, 2-space indented.
func (d *Data) ExportJSON() ([]byte, error) {
	return json.MarshalIndent(exportEnvelope{Program: d.program, Info: d.info}, "", "  ")
}

// ImportJSON replaces the program and metadata wholesale. On any parse
// failure the current state is left untouched and ErrImportFormat is
// returned.
func (d *Data) ImportJSON(data []byte) error {
	var env exportEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("%w: %v", ErrImportFormat, err)
	}
	if len(env.Program) == 0 {
		return fmt.Errorf("%w: missing program", ErrImportFormat)
	}
	d.program = env.Program
	d.info = env.Info
	return nil
}

// ValidationReport accumulates every structural violation found.
type ValidationReport struct {
	IsValid        bool     `json:"isValid"`
	Errors         []string `json:"errors"`
	TotalWeeks     int      `json:"totalWeeks"`
	TotalExercises int      `json:"totalExercises"`
}

// Validate checks the structural invariants of the loaded program: exactly
// 26 weeks, four non-empty sessions per week, block and technique present.
// It collects all violations instead of stopping at the first.
func (d *Data) Validate() *ValidationReport {
	errs := []string{}
	if len(d.program) != 26 {
		errs = append(errs, fmt.Sprintf("wrong week count: %d", len(d.program)))
	}
	for week := 1; week <= 26; week++ {
		plan, err := d.Week(week)
		if err != nil {
			errs = append(errs, fmt.Sprintf("S%d: %v", week, err))
			continue
		}
		for _, day := range Days() {
			if len(plan.Session(day).Exercises) == 0 {
				errs = append(errs, fmt.Sprintf("S%d %s: no exercises", week, day))
			}
		}
		if plan.Block == 0 {
			errs = append(errs, fmt.Sprintf("S%d: missing block", week))
		}
		if plan.Technique == "" {
			errs = append(errs, fmt.Sprintf("S%d: missing technique", week))
		}
	}
	return &ValidationReport{
		IsValid:        len(errs) == 0,
		Errors:         errs,
		TotalWeeks:     len(d.program),
		TotalExercises: len(d.AllExercises()),
	}
}

// ExerciseGain summarizes the weight progression of one exercise from its
// first to its last programmed occurrence.
type ExerciseGain struct {
	StartWeight        float64 `json:"startWeight"`
	EndWeight          float64 `json:"endWeight"`
	TotalGain          float64 `json:"totalGain"`
	PercentageIncrease string  `json:"percentageIncrease"`
}

// ProgressionSummary computes the start/end weight and total gain for every
// distinct exercise. A start weight of zero reports 0.0% rather than
// dividing by zero; the absolute gain stays meaningful.
func (d *Data) ProgressionSummary() map[string]ExerciseGain {
	summary := make(map[string]ExerciseGain)
	for _, name := range d.AllExercises() {
		progression := d.ExerciseProgression(name)
		if len(progression) == 0 {
			continue
		}
		first := progression[0]
		last := progression[len(progression)-1]
		percent := 0.0
		if first.Weight != 0 {
			percent = (last.Weight - first.Weight) / first.Weight * 100
		}
		summary[name] = ExerciseGain{
			StartWeight:        first.Weight,
			EndWeight:          last.Weight,
			TotalGain:          last.Weight - first.Weight,
			PercentageIncrease: fmt.Sprintf("%.1f%%", percent),
		}
	}
	return summary
}

// DayBrief is the per-day slice of a week summary.
type DayBrief struct {
	Name      string `json:"name"`
	Duration  int    `json:"duration"`
	Exercises int    `json:"exercises"`
}

// WeekSummary is the composite overview of one week.
type WeekSummary struct {
	WeekNumber  int                 `json:"weekNumber"`
	Block       int                 `json:"block"`
	Technique   string              `json:"technique"`
	IsDeload    bool                `json:"isDeload"`
	RPETarget   string              `json:"rpeTarget"`
	TotalSets   int                 `json:"totalSets"`
	TotalReps   int                 `json:"totalReps"`
	TotalWeight int                 `json:"totalWeight"`
	Workouts    map[string]DayBrief `json:"workouts"`
}

// Summary builds the composite week overview: block metadata, volume totals
// and a per-day breakdown.
func (d *Data) Summary(n int) (*WeekSummary, error) {
	plan, err := d.Week(n)
	if err != nil {
		return nil, err
	}
	volume, err := d.WeekVolume(n)
	if err != nil {
		return nil, err
	}
	workouts := make(map[string]DayBrief, 4)
	for _, day := range Days() {
		session := plan.Session(day)
		workouts[day.String()] = DayBrief{
			Name:      session.Name,
			Duration:  session.Duration,
			Exercises: len(session.Exercises),
		}
	}
	return &WeekSummary{
		WeekNumber:  n,
		Block:       plan.Block,
		Technique:   plan.Technique,
		IsDeload:    plan.IsDeload,
		RPETarget:   plan.RPETarget,
		TotalSets:   volume.TotalSets,
		TotalReps:   volume.TotalReps,
		TotalWeight: volume.TotalWeight,
		Workouts:    workouts,
	}, nil
}

// DaysList returns the fixed ordered day-name list.
func (d *Data) DaysList() []string { return DayNames() }

// SetCurrentWeek moves the UI cursor, validating the range.
func (d *Data) SetCurrentWeek(n int) error {
	if n < 1 || n > 26 {
		return fmt.Errorf("week %d: %w", n, ErrInvalidWeek)
	}
	d.CurrentWeek = n
	return nil
}

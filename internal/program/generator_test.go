package program

import (
	"reflect"
	"testing"
)

// TestGenerateDeterministic verifies two generations produce identical trees.
// The plan must be reproducible so exports and clients always agree.
func TestGenerateDeterministic(t *testing.T) {
	a := Generate()
	b := Generate()
	if !reflect.DeepEqual(a, b) {
		t.Fatal("two Generate() calls produced different programs")
	}
}

// TestGenerateStructure verifies the tree shape: 26 weeks, four sessions per
// week, and the fixed exercise counts per day.
func TestGenerateStructure(t *testing.T) {
	prog := Generate()
	if len(prog) != 26 {
		t.Fatalf("week count = %d, want 26", len(prog))
	}

	wantExercises := map[Day]int{Dimanche: 8, Mardi: 8, Vendredi: 9, Maison: 1}
	for week := 1; week <= 26; week++ {
		plan, ok := prog[weekKey(week)]
		if !ok {
			t.Fatalf("week %d missing", week)
		}
		if plan.WeekNumber != week {
			t.Errorf("week %d: weekNumber = %d", week, plan.WeekNumber)
		}
		for _, day := range Days() {
			session := plan.Session(day)
			if session == nil {
				t.Fatalf("week %d: session %s missing", week, day)
			}
			if got := len(session.Exercises); got != wantExercises[day] {
				t.Errorf("week %d %s: %d exercises, want %d", week, day, got, wantExercises[day])
			}
		}
	}
}

// TestGenerateBlockMetadata verifies each week plan carries the block info
// of its classification.
func TestGenerateBlockMetadata(t *testing.T) {
	prog := Generate()
	for week := 1; week <= 26; week++ {
		plan := prog[weekKey(week)]
		info := ClassifyWeek(week)
		if plan.Block != info.Block {
			t.Errorf("week %d: block = %d, want %d", week, plan.Block, info.Block)
		}
		if plan.Technique != info.Technique {
			t.Errorf("week %d: technique = %q, want %q", week, plan.Technique, info.Technique)
		}
		if plan.IsDeload != IsDeload(week) {
			t.Errorf("week %d: isDeload = %v, want %v", week, plan.IsDeload, IsDeload(week))
		}
	}
}

// TestGenerateExerciseIDs verifies the stable ID scheme weekN_day_slot.
func TestGenerateExerciseIDs(t *testing.T) {
	prog := Generate()
	week3 := prog[weekKey(3)]

	if got := week3.Session(Dimanche).Exercises[0].ID; got != "w3_dim_1" {
		t.Errorf("first dimanche ID = %q, want w3_dim_1", got)
	}
	if got := week3.Session(Maison).Exercises[0].ID; got != "w3_maison_1" {
		t.Errorf("maison ID = %q, want w3_maison_1", got)
	}
}

// TestGenerateBicepSlot verifies the rotating dimanche biceps slot follows
// the block-based rotation.
func TestGenerateBicepSlot(t *testing.T) {
	prog := Generate()
	find := func(week int) string {
		for _, ex := range prog[weekKey(week)].Session(Dimanche).Exercises {
			if ex.Name == "Incline Curl" || ex.Name == "Spider Curl" {
				return ex.Name
			}
		}
		return ""
	}
	if got := find(2); got != "Incline Curl" {
		t.Errorf("week 2 bicep = %q, want Incline Curl", got)
	}
	if got := find(9); got != "Spider Curl" {
		t.Errorf("week 9 bicep = %q, want Spider Curl", got)
	}
	if got := find(14); got != "Incline Curl" {
		t.Errorf("week 14 bicep = %q, want Incline Curl", got)
	}
}

// TestGenerateDeloadWeights verifies deload sessions carry reduced loads and
// the slow tempo.
func TestGenerateDeloadWeights(t *testing.T) {
	prog := Generate()
	week5 := prog[weekKey(5)].Session(Dimanche).Exercises[0]
	week6 := prog[weekKey(6)].Session(Dimanche).Exercises[0]

	if week6.Weight >= week5.Weight {
		t.Errorf("deload weight %v not below previous week %v", week6.Weight, week5.Weight)
	}
	if week6.Tempo != "4-1-2" {
		t.Errorf("deload tempo = %q, want 4-1-2", week6.Tempo)
	}
}

// TestGenerateMaisonSchedule verifies the home session keeps its twice-a-week
// evening schedule.
func TestGenerateMaisonSchedule(t *testing.T) {
	session := Generate()[weekKey(1)].Session(Maison)
	want := []string{"Mardi soir", "Jeudi soir"}
	if !reflect.DeepEqual(session.DaysPerWeek, want) {
		t.Errorf("daysPerWeek = %v, want %v", session.DaysPerWeek, want)
	}
}

package program

import "math"

// BlockInfo describes the training block a week belongs to: the mesocycle
// number (1-5), the intensity technique applied during it, and the target
// RPE range.
type BlockInfo struct {
	Block     int    `json:"block"`
	Technique string `json:"technique"`
	RPE       string `json:"rpe"`
}

// deloadWeeks is the single source of truth for recovery weeks. Both the
// block classification and the -40% weight reduction derive from it.
var deloadWeeks = [...]int{6, 12, 18, 24, 26}

// IsDeload reports whether the given week is a deload week.
func IsDeload(week int) bool {
	for _, w := range deloadWeeks {
		if w == week {
			return true
		}
	}
	return false
}

// DeloadWeeks returns the deload week numbers in ascending order.
func DeloadWeeks() []int {
	weeks := make([]int, len(deloadWeeks))
	copy(weeks, deloadWeeks[:])
	return weeks
}

// ClassifyWeek maps a week number to its block, technique and RPE target.
// Rules are evaluated in ascending week order, first match wins. The caller
// is expected to pass a week in 1..26; ProgramData enforces that boundary.
func ClassifyWeek(week int) BlockInfo {
	switch {
	case week <= 5:
		return BlockInfo{Block: 1, Technique: "Tempo 3-1-2", RPE: "6-7"}
	case week == 6:
		return BlockInfo{Block: 1, Technique: "Deload", RPE: "5-6"}
	case week <= 11:
		return BlockInfo{Block: 2, Technique: "Rest-Pause", RPE: "7-8"}
	case week == 12:
		return BlockInfo{Block: 2, Technique: "Deload", RPE: "5-6"}
	case week <= 17:
		return BlockInfo{Block: 3, Technique: "Drop-sets + Myo-reps", RPE: "8"}
	case week == 18:
		return BlockInfo{Block: 3, Technique: "Deload", RPE: "5-6"}
	case week <= 23:
		return BlockInfo{Block: 4, Technique: "Clusters + Myo-reps + Partials", RPE: "8-9"}
	case week == 24:
		return BlockInfo{Block: 4, Technique: "Deload", RPE: "5-6"}
	case week == 25:
		return BlockInfo{Block: 5, Technique: "Peak Week", RPE: "8-9"}
	default:
		return BlockInfo{Block: 5, Technique: "Deload Final", RPE: "5-6"}
	}
}

// ProgressedWeight computes the loaded weight for one exercise at one week.
// The base weight grows by increment every frequency weeks; deload weeks
// apply a 40% reduction rounded to the nearest 0.5 kg.
func ProgressedWeight(base float64, week int, increment float64, frequency int) float64 {
	progressions := (week - 1) / frequency
	raw := base + float64(progressions)*increment
	if IsDeload(week) {
		return math.Round(raw*0.6*2) / 2
	}
	return raw
}

// BicepExercise returns the rotating Sunday biceps exercise for a week.
// Odd blocks train Incline Curl (maximum stretch), even blocks Spider Curl
// (maximum contraction). Derived from the block, never from the week itself.
func BicepExercise(week int) string {
	block := ClassifyWeek(week).Block
	if block == 1 || block == 3 {
		return "Incline Curl"
	}
	return "Spider Curl"
}

// tempoFor selects the rep tempo encoding: slow eccentric on deloads, the
// 3-1-2 learning tempo during block 1, standard 2-1-2 otherwise.
func tempoFor(week int, deload bool) string {
	switch {
	case deload:
		return "4-1-2"
	case week <= 5:
		return "3-1-2"
	default:
		return "2-1-2"
	}
}

package program

import "fmt"

// Generate builds the complete 26-week program tree. The exercise lists,
// loads and coaching notes below are the Hybrid Master 51 prescription;
// weights progress via ProgressedWeight, the RPE target and tempo follow the
// week's block, and the Sunday biceps slot rotates per block. The function is
// pure: two calls yield deep-equal trees.
func Generate() Program {
	prog := make(Program, 26)
	for week := 1; week <= 26; week++ {
		info := ClassifyWeek(week)
		deload := IsDeload(week)
		prog[weekKey(week)] = &WeekPlan{
			WeekNumber: week,
			Block:      info.Block,
			Technique:  info.Technique,
			RPETarget:  info.RPE,
			IsDeload:   deload,
			Dimanche:   dimancheSession(week, info, deload),
			Mardi:      mardiSession(week, info, deload),
			Vendredi:   vendrediSession(week, info, deload),
			Maison:     maisonSession(week, info, deload),
		}
	}
	return prog
}

func exerciseID(week int, day Day, slot string) string {
	return fmt.Sprintf("w%d_%s_%s", week, day.abbrev(), slot)
}

// blockNote picks the technique cue for the week's block, falling back to the
// generic coaching cue. Block-specific cues never apply on deload weeks.
func blockNote(info BlockInfo, deload bool, byBlock map[int]string, fallback string) string {
	if !deload {
		if note, ok := byBlock[info.Block]; ok {
			return note
		}
	}
	return fallback
}

// dimancheSession: back + heavy legs + arms, 68 min, 31 sets.
func dimancheSession(week int, info BlockInfo, deload bool) Session {
	tempo := tempoFor(week, deload)
	bicep := BicepExercise(week)

	bicepCue := "Spider curl pupitre"
	if bicep == "Incline Curl" {
		bicepCue = "Incline 45° sur banc"
	}

	return Session{
		Name:      "DOS + JAMBES LOURDES + BRAS",
		Duration:  68,
		TotalSets: 31,
		Exercises: []Exercise{
			{
				ID:       exerciseID(week, Dimanche, "1"),
				Name:     "Trap Bar Deadlift",
				Category: "compound",
				Muscle:   []string{"dos", "jambes", "fessiers"},
				Sets:     5,
				Reps:     RepRange(6, 8),
				RPE:      info.RPE,
				Weight:   ProgressedWeight(75, week, 5, 3),
				Rest:     120,
				Tempo:    tempo,
				Notes: blockNote(info, deload, map[int]string{
					2: "Rest-Pause S5 : 6-8 reps → 20s → 2-3 reps",
					4: "Clusters S5 : 3 reps → 20s → 2 reps → 20s → 2 reps (7 total)",
				}, "Mouvement roi dos/jambes, barre hexagonale"),
			},
			{
				ID:       exerciseID(week, Dimanche, "2"),
				Name:     "Goblet Squat",
				Category: "compound",
				Muscle:   []string{"quadriceps", "fessiers"},
				Sets:     4,
				Reps:     FixedReps(10),
				RPE:      info.RPE,
				Weight:   ProgressedWeight(25, week, 2.5, 2),
				Rest:     75,
				Tempo:    tempo,
				Notes: blockNote(info, deload, map[int]string{
					3: "Drop-set S4 : 10 reps → -25% → 8-10 reps",
					4: "Partials S4 : 10 reps → 5 demi-reps amplitude haute",
				}, "Haltère tenu devant poitrine, descente contrôlée"),
			},
			{
				ID:       exerciseID(week, Dimanche, "3"),
				Name:     "Leg Press",
				Category: "compound",
				Muscle:   []string{"quadriceps", "fessiers"},
				Sets:     4,
				Reps:     FixedReps(10),
				RPE:      info.RPE,
				Weight:   ProgressedWeight(110, week, 10, 2),
				Rest:     75,
				Tempo:    tempo,
				Notes: blockNote(info, deload, map[int]string{
					3: "Drop-set S4 : 10 reps → -25% → 10-12 reps",
					4: "Clusters S4 : 4 reps → 20s → 3 reps → 20s → 3 reps | Puis 10 reps → 8 quarts reps",
				}, "Pieds largeur épaules, amplitude complète"),
			},
			{
				ID:           exerciseID(week, Dimanche, "4a"),
				Name:         "Lat Pulldown (prise large)",
				Category:     "compound",
				Muscle:       []string{"dos"},
				Sets:         4,
				Reps:         FixedReps(10),
				RPE:          info.RPE,
				Weight:       ProgressedWeight(60, week, 2.5, 2),
				Rest:         90,
				Tempo:        tempo,
				IsSuperset:   true,
				SupersetWith: "Landmine Press",
				Notes: blockNote(info, deload, map[int]string{
					3: "SUPERSET | Drop-set S4 : 10 reps → -20% → 8-10 reps",
				}, "SUPERSET avec Landmine Press | Prise 1.5× largeur épaules"),
			},
			{
				ID:           exerciseID(week, Dimanche, "4b"),
				Name:         "Landmine Press",
				Category:     "compound",
				Muscle:       []string{"pectoraux", "épaules"},
				Sets:         4,
				Reps:         FixedReps(10),
				RPE:          info.RPE,
				Weight:       ProgressedWeight(35, week, 2.5, 2),
				Rest:         90,
				Tempo:        tempo,
				IsSuperset:   true,
				SupersetWith: "Lat Pulldown (prise large)",
				Notes:        "SUPERSET avec Lat Pulldown | Barre calée dans coin",
			},
			{
				ID:       exerciseID(week, Dimanche, "5"),
				Name:     "Rowing Machine (prise large)",
				Category: "compound",
				Muscle:   []string{"dos"},
				Sets:     4,
				Reps:     FixedReps(10),
				RPE:      info.RPE,
				Weight:   ProgressedWeight(50, week, 2.5, 2),
				Rest:     75,
				Tempo:    tempo,
				Notes: blockNote(info, deload, map[int]string{
					3: "Myo-reps S4 : 10 reps → 5s → 4 mini-sets × 4 reps",
					4: "Myo-reps S4 : 10 reps → 5s → 4 mini-sets × 4 reps",
				}, "Prise large, coudes extérieur, tirer vers bas pecs"),
			},
			{
				ID:           exerciseID(week, Dimanche, "6a"),
				Name:         bicep,
				Category:     "isolation",
				Muscle:       []string{"biceps"},
				Sets:         4,
				Reps:         FixedReps(12),
				RPE:          info.RPE,
				Weight:       ProgressedWeight(12, week, 2.5, 3),
				Rest:         75,
				Tempo:        tempo,
				IsSuperset:   true,
				SupersetWith: "Cable Pushdown",
				Notes: blockNote(info, deload, map[int]string{
					1: "SUPERSET | Pause 2s bras tendus (étirement max)",
					3: "SUPERSET | Myo-reps S4 : 12 reps → 5s → 4 mini-sets × 4 reps",
					4: "SUPERSET | Myo-reps S4 : 12 reps → 5s → 4 mini-sets × 4 reps",
				}, "SUPERSET | "+bicepCue),
			},
			{
				ID:           exerciseID(week, Dimanche, "6b"),
				Name:         "Cable Pushdown",
				Category:     "isolation",
				Muscle:       []string{"triceps"},
				Sets:         3,
				Reps:         FixedReps(12),
				RPE:          info.RPE,
				Weight:       ProgressedWeight(20, week, 2.5, 3),
				Rest:         75,
				Tempo:        tempo,
				IsSuperset:   true,
				SupersetWith: bicep,
				Notes: blockNote(info, deload, map[int]string{
					4: "SUPERSET | Myo-reps S3 : 12 reps → 5s → 4 mini-sets × 4 reps",
				}, "SUPERSET | Coudes fixes le long du corps"),
			},
		},
	}
}

// mardiSession: chest + shoulders + triceps, 70 min, 35 sets.
func mardiSession(week int, info BlockInfo, deload bool) Session {
	tempo := tempoFor(week, deload)

	return Session{
		Name:      "PECS + ÉPAULES + TRICEPS",
		Duration:  70,
		TotalSets: 35,
		Exercises: []Exercise{
			{
				ID:       exerciseID(week, Mardi, "1"),
				Name:     "Dumbbell Press",
				Category: "compound",
				Muscle:   []string{"pectoraux", "épaules", "triceps"},
				Sets:     5,
				Reps:     FixedReps(10),
				RPE:      info.RPE,
				Weight:   ProgressedWeight(22, week, 2.5, 3),
				Rest:     105,
				Tempo:    tempo,
				Notes: blockNote(info, deload, map[int]string{
					2: "Rest-Pause S5 : 10 reps → 20s → 3-4 reps",
					3: "Drop-set S5 : 10 reps → -25% → 8-10 reps",
					4: "Clusters S5 : 4 reps → 15s → 3 reps → 15s → 3 reps",
				}, "Banc plat, haltères rotation naturelle (par haltère)"),
			},
			{
				ID:       exerciseID(week, Mardi, "2"),
				Name:     "Cable Fly (poulies moyennes)",
				Category: "isolation",
				Muscle:   []string{"pectoraux"},
				Sets:     4,
				Reps:     FixedReps(12),
				RPE:      info.RPE,
				Weight:   ProgressedWeight(10, week, 2.5, 3),
				Rest:     60,
				Tempo:    tempo,
				Notes: blockNote(info, deload, map[int]string{
					1: "Pause 2s bras écartés (étirement pecs max)",
					3: "Drop-set S4 : 12 reps → -25% → 10-12 reps + Myo-reps S4 : 12 reps → 5s → 5 mini-sets × 5 reps",
					4: "Myo-reps S4 : 12 reps → 5s → 5 mini-sets × 5 reps",
				}, "Poulies hauteur épaules, bras semi-fléchis"),
			},
			{
				ID:       exerciseID(week, Mardi, "3"),
				Name:     "Leg Press léger",
				Category: "compound",
				Muscle:   []string{"quadriceps", "fessiers"},
				Sets:     3,
				Reps:     FixedReps(15),
				RPE:      info.RPE,
				Weight:   ProgressedWeight(80, week, 10, 3),
				Rest:     60,
				Tempo:    tempo,
				Notes:    "Activation légère jambes, pas de fatigue excessive",
			},
			{
				ID:           exerciseID(week, Mardi, "4a"),
				Name:         "Extension Triceps Corde",
				Category:     "isolation",
				Muscle:       []string{"triceps"},
				Sets:         5,
				Reps:         FixedReps(12),
				RPE:          info.RPE,
				Weight:       ProgressedWeight(20, week, 2.5, 3),
				Rest:         75,
				Tempo:        tempo,
				IsSuperset:   true,
				SupersetWith: "Lateral Raises",
				Notes: blockNote(info, deload, map[int]string{
					3: "SUPERSET | Drop-set S5 : 12 reps → -20% → 10-12 reps",
					4: "SUPERSET | Myo-reps S5 : 12 reps → 5s → 4 mini-sets × 4 reps",
				}, "SUPERSET | Corde poulie haute, coudes fixes"),
			},
			{
				ID:           exerciseID(week, Mardi, "4b"),
				Name:         "Lateral Raises",
				Category:     "isolation",
				Muscle:       []string{"épaules"},
				Sets:         5,
				Reps:         FixedReps(15),
				RPE:          info.RPE,
				Weight:       ProgressedWeight(8, week, 2.5, 4),
				Rest:         75,
				Tempo:        tempo,
				IsSuperset:   true,
				SupersetWith: "Extension Triceps Corde",
				Notes: blockNote(info, deload, map[int]string{
					1: "SUPERSET | Pause 1s bras horizontaux",
					3: "SUPERSET | Drop-set S5 : 15 reps → -25% → 12-15 reps",
					4: "SUPERSET | Myo-reps S5 : 15 reps → 5s → 5 mini-sets × 5 reps",
				}, "SUPERSET | Coudes fléchis, monter horizontal (haltère)"),
			},
			{
				ID:       exerciseID(week, Mardi, "5"),
				Name:     "Face Pull",
				Category: "isolation",
				Muscle:   []string{"épaules", "dos"},
				Sets:     5,
				Reps:     FixedReps(15),
				RPE:      info.RPE,
				Weight:   ProgressedWeight(20, week, 2.5, 3),
				Rest:     60,
				Tempo:    tempo,
				Notes: blockNote(info, deload, map[int]string{
					1: "Pause 1s contraction arrière",
					3: "Myo-reps S5 : 15 reps → 5s → 5 mini-sets × 5 reps",
					4: "Myo-reps S5 : 15 reps → 5s → 5 mini-sets × 5 reps",
				}, "Corde poulie haute, tirer vers visage, rotation externe"),
			},
			{
				ID:       exerciseID(week, Mardi, "6"),
				Name:     "Rowing Machine (prise serrée)",
				Category: "compound",
				Muscle:   []string{"dos"},
				Sets:     4,
				Reps:     FixedReps(12),
				RPE:      info.RPE,
				Weight:   ProgressedWeight(50, week, 2.5, 2),
				Rest:     75,
				Tempo:    tempo,
				Notes:    "Prise serrée, coudes corps, tirer vers nombril",
			},
			{
				ID:       exerciseID(week, Mardi, "7"),
				Name:     "Overhead Extension (corde, assis)",
				Category: "isolation",
				Muscle:   []string{"triceps"},
				Sets:     4,
				Reps:     FixedReps(12),
				RPE:      info.RPE,
				Weight:   ProgressedWeight(15, week, 2.5, 3),
				Rest:     60,
				Tempo:    tempo,
				Notes: blockNote(info, deload, map[int]string{
					3: "Myo-reps S4 : 12 reps → 5s → 4 mini-sets × 4 reps",
					4: "Myo-reps S4 : 12 reps → 5s → 4 mini-sets × 4 reps",
				}, "Corde poulie haute, assis, étirement triceps max"),
			},
		},
	}
}

// vendrediSession: back + light legs + arms + shoulders, 73 min, 33 sets.
func vendrediSession(week int, info BlockInfo, deload bool) Session {
	tempo := tempoFor(week, deload)

	return Session{
		Name:      "DOS + JAMBES LÉGÈRES + BRAS + ÉPAULES",
		Duration:  73,
		TotalSets: 33,
		Exercises: []Exercise{
			{
				ID:       exerciseID(week, Vendredi, "1"),
				Name:     "Landmine Row",
				Category: "compound",
				Muscle:   []string{"dos"},
				Sets:     5,
				Reps:     FixedReps(10),
				RPE:      info.RPE,
				Weight:   ProgressedWeight(55, week, 2.5, 2),
				Rest:     105,
				Tempo:    tempo,
				Notes: blockNote(info, deload, map[int]string{
					2: "Rest-Pause S5 : 10 reps → 20s → 3-4 reps",
					3: "Drop-set S5 : 10 reps → -20% → 8-10 reps",
					4: "Clusters S5 : 4 reps → 15s → 3 reps → 15s → 3 reps",
				}, "Barre calée, une main, tirer vers hanche"),
			},
			{
				ID:           exerciseID(week, Vendredi, "2a"),
				Name:         "Leg Curl",
				Category:     "isolation",
				Muscle:       []string{"ischios"},
				Sets:         5,
				Reps:         FixedReps(12),
				RPE:          info.RPE,
				Weight:       ProgressedWeight(40, week, 5, 3),
				Rest:         75,
				Tempo:        tempo,
				IsSuperset:   true,
				SupersetWith: "Leg Extension",
				Notes: blockNote(info, deload, map[int]string{
					3: "SUPERSET | Drop-set S5 : 12 reps → -25% → 10-12 reps",
					4: "SUPERSET | Partials S5 : 12 reps → 6-8 partials amplitude haute",
				}, "SUPERSET | Allongé ou assis selon machine"),
			},
			{
				ID:           exerciseID(week, Vendredi, "2b"),
				Name:         "Leg Extension",
				Category:     "isolation",
				Muscle:       []string{"quadriceps"},
				Sets:         4,
				Reps:         FixedReps(15),
				RPE:          info.RPE,
				Weight:       ProgressedWeight(35, week, 5, 3),
				Rest:         75,
				Tempo:        tempo,
				IsSuperset:   true,
				SupersetWith: "Leg Curl",
				Notes: blockNote(info, deload, map[int]string{
					3: "SUPERSET | Drop-set S4 : 15 reps → -25% → 12-15 reps",
					4: "SUPERSET | Partials S4 : 15 reps → 10 partials derniers 30°",
				}, "SUPERSET | Extension complète, contraction 1s"),
			},
			{
				ID:           exerciseID(week, Vendredi, "3a"),
				Name:         "Cable Fly",
				Category:     "isolation",
				Muscle:       []string{"pectoraux"},
				Sets:         4,
				Reps:         FixedReps(15),
				RPE:          info.RPE,
				Weight:       ProgressedWeight(10, week, 2.5, 3),
				Rest:         60,
				Tempo:        tempo,
				IsSuperset:   true,
				SupersetWith: "Dumbbell Fly",
				Notes: blockNote(info, deload, map[int]string{
					3: "SUPERSET | Myo-reps S4 : 15 reps → 5s → 5 mini-sets × 5 reps",
					4: "SUPERSET | Myo-reps S4 : 15 reps → 5s → 5 mini-sets × 5 reps",
				}, "SUPERSET | Poulies moyennes, étirement max"),
			},
			{
				ID:           exerciseID(week, Vendredi, "3b"),
				Name:         "Dumbbell Fly",
				Category:     "isolation",
				Muscle:       []string{"pectoraux"},
				Sets:         4,
				Reps:         FixedReps(12),
				RPE:          info.RPE,
				Weight:       ProgressedWeight(10, week, 2.5, 3),
				Rest:         60,
				Tempo:        tempo,
				IsSuperset:   true,
				SupersetWith: "Cable Fly",
				Notes: blockNote(info, deload, map[int]string{
					1: "SUPERSET | Pause 2s bras écartés (étirement pecs)",
					3: "SUPERSET | Drop-set S4 : 12 reps → -25% → 10-12 reps",
					4: "SUPERSET | Myo-reps S4 : 12 reps → 5s → 4 mini-sets × 4 reps",
				}, "SUPERSET | Banc plat, amplitude complète (haltère)"),
			},
			{
				ID:           exerciseID(week, Vendredi, "4a"),
				Name:         "EZ Bar Curl",
				Category:     "isolation",
				Muscle:       []string{"biceps"},
				Sets:         5,
				Reps:         FixedReps(12),
				RPE:          info.RPE,
				Weight:       ProgressedWeight(25, week, 2.5, 3),
				Rest:         75,
				Tempo:        tempo,
				IsSuperset:   true,
				SupersetWith: "Overhead Extension",
				Notes: blockNote(info, deload, map[int]string{
					1: "SUPERSET | Pause 2s bras tendus (étirement biceps)",
					3: "SUPERSET | Myo-reps S5 : 12 reps → 5s → 4 mini-sets × 4 reps",
					4: "SUPERSET | Myo-reps S5 : 12 reps → 5s → 4 mini-sets × 4 reps",
				}, "SUPERSET | Barre EZ, coudes fixes"),
			},
			{
				ID:           exerciseID(week, Vendredi, "4b"),
				Name:         "Overhead Extension",
				Category:     "isolation",
				Muscle:       []string{"triceps"},
				Sets:         3,
				Reps:         FixedReps(12),
				RPE:          info.RPE,
				Weight:       ProgressedWeight(15, week, 2.5, 3),
				Rest:         75,
				Tempo:        tempo,
				IsSuperset:   true,
				SupersetWith: "EZ Bar Curl",
				Notes: blockNote(info, deload, map[int]string{
					4: "SUPERSET | Myo-reps S3 : 12 reps → 5s → 4 mini-sets × 4 reps",
				}, "SUPERSET | Corde poulie haute, assis, étirement max"),
			},
			{
				ID:       exerciseID(week, Vendredi, "5"),
				Name:     "Lateral Raises",
				Category: "isolation",
				Muscle:   []string{"épaules"},
				Sets:     3,
				Reps:     FixedReps(15),
				RPE:      info.RPE,
				Weight:   ProgressedWeight(8, week, 2.5, 4),
				Rest:     60,
				Tempo:    tempo,
				Notes:    "Exercice clé deltoïdes, technique parfaite obligatoire",
			},
			{
				ID:       exerciseID(week, Vendredi, "6"),
				Name:     "Wrist Curl",
				Category: "isolation",
				Muscle:   []string{"avant-bras"},
				Sets:     3,
				Reps:     FixedReps(20),
				RPE:      info.RPE,
				Weight:   ProgressedWeight(30, week, 2.5, 4),
				Rest:     45,
				Tempo:    tempo,
				Notes:    "Assis, avant-bras sur cuisses, flexion poignets",
			},
		},
	}
}

// maisonSession: hammer curls at home, Tuesday and Thursday evenings.
func maisonSession(week int, info BlockInfo, deload bool) Session {
	return Session{
		Name:        "HAMMER CURL MAISON",
		Duration:    5,
		TotalSets:   3,
		DaysPerWeek: []string{"Mardi soir", "Jeudi soir"},
		Exercises: []Exercise{
			{
				ID:       exerciseID(week, Maison, "1"),
				Name:     "Hammer Curl",
				Category: "isolation",
				Muscle:   []string{"biceps", "avant-bras"},
				Sets:     3,
				Reps:     FixedReps(12),
				RPE:      info.RPE,
				Weight:   ProgressedWeight(12, week, 2.5, 3),
				Rest:     60,
				Tempo:    tempoFor(week, deload),
				Notes:    "À faire Mardi ET Jeudi soir, prise marteau (haltère)",
			},
		},
	}
}

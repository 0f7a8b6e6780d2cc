package program

// Info is the static program metadata shipped alongside the generated tree
// in exports. It mirrors the printed Hybrid Master 51 plan sheet.
type Info struct {
	Name            string                    `json:"name"`
	Version         string                    `json:"version"`
	Duration        int                       `json:"duration"` // weeks
	WeeksPerBlock   map[string][]int          `json:"weeksPerBlock"`
	WorkoutsPerWeek int                       `json:"workoutsPerWeek"`
	DaysOfWeek      []string                  `json:"daysOfWeek"`
	HomeworkDays    []string                  `json:"homeworkDays"`
	BlockTechniques map[string]BlockTechnique `json:"blockTechniques"`
	DeloadProtocol  DeloadProtocol            `json:"deloadProtocol"`
	BicepsRotation  BicepsRotation            `json:"bicepsRotation"`
}

// BlockTechnique documents the intensity technique of one training block.
type BlockTechnique struct {
	Name        string `json:"name"`
	Weeks       string `json:"weeks"`
	Technique   string `json:"technique"`
	Description string `json:"description"`
	Pauses      string `json:"pauses,omitempty"`
	Exercises   string `json:"exercises,omitempty"`
	DropSets    string `json:"dropSets,omitempty"`
	MyoReps     string `json:"myoReps,omitempty"`
	Clusters    string `json:"clusters,omitempty"`
	Partials    string `json:"partials,omitempty"`
	RPE         string `json:"rpe"`
}

// DeloadProtocol documents the recovery-week rules.
type DeloadProtocol struct {
	Weeks         []int  `json:"weeks"`
	LoadReduction string `json:"loadReduction"`
	Tempo         string `json:"tempo"`
	RPE           string `json:"rpe"`
	Purpose       string `json:"purpose"`
}

// BicepsRotation documents the per-block Sunday biceps exercise.
type BicepsRotation struct {
	Block1 string `json:"block1"`
	Block2 string `json:"block2"`
	Block3 string `json:"block3"`
	Block4 string `json:"block4"`
	Reason string `json:"reason"`
}

// DefaultInfo returns the metadata for the built-in 26-week program.
func DefaultInfo() Info {
	return Info{
		Name:     "Hybrid Master 51",
		Version:  "2.0 Complète Corrigée",
		Duration: 26,
		WeeksPerBlock: map[string][]int{
			"block1":  {1, 2, 3, 4, 5},
			"deload1": {6},
			"block2":  {7, 8, 9, 10, 11},
			"deload2": {12},
			"block3":  {13, 14, 15, 16, 17},
			"deload3": {18},
			"block4":  {19, 20, 21, 22, 23},
			"deload4": {24},
			"block5":  {25},
			"deload5": {26},
		},
		WorkoutsPerWeek: 3,
		DaysOfWeek:      []string{"Dimanche", "Mardi", "Vendredi"},
		HomeworkDays:    []string{"Mardi soir", "Jeudi soir"},
		BlockTechniques: map[string]BlockTechnique{
			"block1": {
				Name:        "Fondations Techniques",
				Weeks:       "1-5",
				Technique:   "Tempo 3-1-2",
				Description: "3s descente, 1s pause, 2s montée",
				Pauses:      "Cable Fly (2s), Dumbbell Fly (2s), Incline Curl (2s), EZ Bar Curl (2s), Lateral Raises (1s), Face Pull (1s)",
				RPE:         "6-7",
			},
			"block2": {
				Name:        "Surcharge Progressive",
				Weeks:       "7-11",
				Technique:   "Rest-Pause",
				Description: "Dernière série exercices principaux : reps → 20s → 2-4 reps",
				Exercises:   "Trap Bar DL S5, Dumbbell Press S5, Landmine Row S5",
				RPE:         "7-8",
			},
			"block3": {
				Name:        "Surcompensation Métabolique",
				Weeks:       "13-17",
				Technique:   "Drop-sets + Myo-reps",
				Description: "Drop-sets (-25%) + Myo-reps isolations",
				DropSets:    "Goblet, Leg Press, Lat Pulldown, Dumbbell Press, Cable Fly, Extension Triceps, Lateral Raises, Landmine Row, Leg Curl, Leg Extension, Dumbbell Fly",
				MyoReps:     "Face Pull, Overhead Extension, Incline Curl, Cable Fly, Rowing Machine",
				RPE:         "8",
			},
			"block4": {
				Name:        "Intensification Maximale",
				Weeks:       "19-23",
				Technique:   "Clusters + Myo-reps + Partials",
				Description: "Clusters lourds + Myo-reps isolations + Partials jambes",
				Clusters:    "Trap Bar DL, Dumbbell Press, Landmine Row, Leg Press",
				MyoReps:     "TOUTES les isolations",
				Partials:    "Goblet (+5 demi), Leg Press (+8 quarts), Leg Curl (+6-8), Leg Extension (+10)",
				RPE:         "8-9",
			},
		},
		DeloadProtocol: DeloadProtocol{
			Weeks:         DeloadWeeks(),
			LoadReduction: "-40%",
			Tempo:         "4-1-2",
			RPE:           "5-6",
			Purpose:       "Récupération complète, prévention surentraînement",
		},
		BicepsRotation: BicepsRotation{
			Block1: "Incline Curl",
			Block2: "Spider Curl",
			Block3: "Incline Curl",
			Block4: "Spider Curl",
			Reason: "Incline = étirement max | Spider = contraction max",
		},
	}
}

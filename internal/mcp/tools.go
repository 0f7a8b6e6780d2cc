package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// --- Tool definitions ---

var toolGetProgramWeek = mcp.NewTool("get_program_week",
	mcp.WithDescription("Retrieve the full plan for one program week: every training day with its exercises, sets, reps, working weights, tempo, and coaching notes."),
	mcp.WithNumber("week", mcp.Required(), mcp.Description("Week number (1-26)")),
)

var toolGetWorkout = mcp.NewTool("get_workout",
	mcp.WithDescription("Retrieve one training session of a program week. Days are dimanche (push/pull), mardi (legs/shoulders), vendredi (upper), and maison (home biceps)."),
	mcp.WithNumber("week", mcp.Required(), mcp.Description("Week number (1-26)")),
	mcp.WithString("day", mcp.Required(), mcp.Description("Training day name"), mcp.Enum("dimanche", "mardi", "vendredi", "maison")),
)

var toolGetExerciseProgression = mcp.NewTool("get_exercise_progression",
	mcp.WithDescription("Show how one exercise's planned weight, reps, and RPE evolve across all 26 weeks, including deload drops."),
	mcp.WithString("exercise", mcp.Required(), mcp.Description("Exact exercise name (e.g. 'Dips lestés', 'Hack Squat')")),
)

var toolGetWeekVolume = mcp.NewTool("get_week_volume",
	mcp.WithDescription("Planned training volume for one week: total sets, total reps, and tonnage per day plus week totals."),
	mcp.WithNumber("week", mcp.Required(), mcp.Description("Week number (1-26)")),
)

var toolGetWeekSummary = mcp.NewTool("get_week_summary",
	mcp.WithDescription("Compact overview of one program week: block, technique, deload status, and per-day exercise/set counts."),
	mcp.WithNumber("week", mcp.Required(), mcp.Description("Week number (1-26)")),
)

var toolGetProgressionSummary = mcp.NewTool("get_progression_summary",
	mcp.WithDescription("Start-to-end planned weight gain for every weighted exercise over the 26 weeks, with percentage change."),
)

var toolGetWorkoutHistory = mcp.NewTool("get_workout_history",
	mcp.WithDescription("Query the logged set history. Filters combine: week narrows to one program week, day narrows further, exercise filters by name (newest first)."),
	mcp.WithNumber("week", mcp.Description("Filter by program week")),
	mcp.WithString("day", mcp.Description("Filter by day name (requires week)")),
	mcp.WithString("exercise", mcp.Description("Filter by exact exercise name")),
	mcp.WithNumber("limit", mcp.Description("Maximum entries to return when filtering by exercise")),
)

var toolGetPersonalRecords = mcp.NewTool("get_personal_records",
	mcp.WithDescription("Personal bests for one exercise from the logged history: max single-set weight, max reps, max volume, and average weight."),
	mcp.WithString("exercise", mcp.Required(), mcp.Description("Exact exercise name")),
)

var toolCheckProgress = mcp.NewTool("check_progress",
	mcp.WithDescription("Compare the best logged set volume (weight x reps) of one week against the week before for an exercise."),
	mcp.WithString("exercise", mcp.Required(), mcp.Description("Exact exercise name")),
	mcp.WithNumber("week", mcp.Required(), mcp.Description("Current week to compare against the previous one")),
)

var toolGetChartData = mcp.NewTool("get_chart_data",
	mcp.WithDescription("Per-session aggregates for one exercise, suitable for charting: max weight and total volume per (week, day) session, week ascending."),
	mcp.WithString("exercise", mcp.Required(), mcp.Description("Exact exercise name")),
	mcp.WithNumber("limit", mcp.Description("Keep only the most recent N sessions")),
)

var toolGetTrainingStats = mcp.NewTool("get_training_stats",
	mcp.WithDescription("Global training statistics: total workouts, total sets, total volume lifted, and the longest daily streak."),
)

// --- Tool handlers ---

func (h *handlers) getProgramWeek(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	week, err := req.RequireInt("week")
	if err != nil {
		return mcp.NewToolResultError("week parameter is required"), nil
	}

	plan, err := h.program.Week(week)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(plan)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getWorkout(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	week, err := req.RequireInt("week")
	if err != nil {
		return mcp.NewToolResultError("week parameter is required"), nil
	}
	day, err := req.RequireString("day")
	if err != nil {
		return mcp.NewToolResultError("day parameter is required"), nil
	}

	session, err := h.program.Workout(week, day)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(session)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getExerciseProgression(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exercise, err := req.RequireString("exercise")
	if err != nil {
		return mcp.NewToolResultError("exercise parameter is required"), nil
	}

	points := h.program.ExerciseProgression(exercise)
	if len(points) == 0 {
		return mcp.NewToolResultError("unknown exercise: " + exercise), nil
	}

	result, err := mcp.NewToolResultJSON(points)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getWeekVolume(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	week, err := req.RequireInt("week")
	if err != nil {
		return mcp.NewToolResultError("week parameter is required"), nil
	}

	report, err := h.program.WeekVolume(week)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(report)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getWeekSummary(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	week, err := req.RequireInt("week")
	if err != nil {
		return mcp.NewToolResultError("week parameter is required"), nil
	}

	planned, err := h.program.Summary(week)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(map[string]any{
		"planned": planned,
		"logged":  h.stats.WeekSummary(ctx, week),
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getProgressionSummary(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(h.program.ProgressionSummary())
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getWorkoutHistory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	week := req.GetInt("week", 0)
	day := req.GetString("day", "")
	exercise := req.GetString("exercise", "")
	limit := req.GetInt("limit", 0)

	var entries any
	switch {
	case exercise != "":
		entries = h.history.ByExercise(ctx, exercise, limit)
	case week != 0 && day != "":
		entries = h.history.ByDay(ctx, week, day)
	case week != 0:
		entries = h.history.ByWeek(ctx, week)
	default:
		entries = h.history.All(ctx)
	}

	result, err := mcp.NewToolResultJSON(entries)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getPersonalRecords(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exercise, err := req.RequireString("exercise")
	if err != nil {
		return mcp.NewToolResultError("exercise parameter is required"), nil
	}

	result, err := mcp.NewToolResultJSON(map[string]any{
		"exercise":      exercise,
		"records":       h.stats.PersonalRecords(ctx, exercise),
		"averageWeight": h.stats.AverageWeight(ctx, exercise),
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) checkProgress(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exercise, err := req.RequireString("exercise")
	if err != nil {
		return mcp.NewToolResultError("exercise parameter is required"), nil
	}
	week, err := req.RequireInt("week")
	if err != nil {
		return mcp.NewToolResultError("week parameter is required"), nil
	}

	progress := h.progress.CheckProgress(ctx, exercise, week)
	if progress == nil {
		return mcp.NewToolResultError("not enough data to compare weeks"), nil
	}

	result, err := mcp.NewToolResultJSON(progress)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getChartData(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exercise, err := req.RequireString("exercise")
	if err != nil {
		return mcp.NewToolResultError("exercise parameter is required"), nil
	}
	limit := req.GetInt("limit", 0)

	result, err := mcp.NewToolResultJSON(h.progress.ChartData(ctx, exercise, limit))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getTrainingStats(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(map[string]any{
		"totalWorkouts": h.stats.TotalWorkouts(ctx),
		"totalSets":     h.stats.TotalSets(ctx),
		"totalVolume":   h.stats.TotalVolume(ctx),
		"streak":        h.stats.Streak(ctx),
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

package mcp

import (
	"context"

	"github.com/claude/trainload/internal/analytics"
	"github.com/claude/trainload/internal/history"
	"github.com/mark3labs/mcp-go/mcp"
)

const todayDescription = "Analyze as of this date (YYYY-MM-DD). Defaults to today."

// --- Tool definitions ---

var toolGetTrainingReport = mcp.NewTool("get_training_report",
	mcp.WithDescription("Full training load report: weekly volume per muscle against MEV/MRV, region groups, balance summary, frequency, overload trends, deload check, rep ranges, push/pull balance, session volume flags and recovery."),
	mcp.WithString("today", mcp.Description(todayDescription)),
)

var toolGetMuscleVolume = mcp.NewTool("get_muscle_volume",
	mcp.WithDescription("Effective sets per muscle group over the last 7 days, classified against each muscle's MEV/MRV landmarks (none, under, optimal, over), grouped by region with an undertrained/overtrained summary."),
	mcp.WithString("today", mcp.Description(todayDescription)),
)

var toolGetTrainingFrequency = mcp.NewTool("get_training_frequency",
	mcp.WithDescription("How often each muscle was trained per week over the last 14 days, with a frequency zone per muscle."),
	mcp.WithString("today", mcp.Description(todayDescription)),
)

var toolGetOverloadTrends = mcp.NewTool("get_overload_trends",
	mcp.WithDescription("Estimated one-rep max (Epley) trend per exercise over the last 28 days. Compares early and late session averages and flags progressing, stagnant or regressing lifts."),
	mcp.WithString("today", mcp.Description(todayDescription)),
)

var toolGetDeloadCheck = mcp.NewTool("get_deload_check",
	mcp.WithDescription("Completed sets per week for the last 6 weeks and whether volume has risen long enough to suggest a deload week."),
	mcp.WithString("today", mcp.Description(todayDescription)),
)

var toolGetRepRanges = mcp.NewTool("get_rep_ranges",
	mcp.WithDescription("Distribution of completed sets over strength (1-5), hypertrophy (6-12) and endurance (13+) rep ranges for the last 28 days."),
	mcp.WithString("today", mcp.Description(todayDescription)),
)

var toolGetPushPullBalance = mcp.NewTool("get_push_pull_balance",
	mcp.WithDescription("Ratio of weekly push to pull effective sets with a balance status and advice."),
	mcp.WithString("today", mcp.Description(todayDescription)),
)

var toolGetSessionVolume = mcp.NewTool("get_session_volume",
	mcp.WithDescription("Workouts from the last 14 days where a single muscle got more than 10 effective sets in one session. At most the 5 newest flags are returned."),
	mcp.WithString("today", mcp.Description(todayDescription)),
)

var toolGetRecovery = mcp.NewTool("get_recovery",
	mcp.WithDescription("Hours since each muscle was last trained, with a recovery zone per muscle."),
	mcp.WithString("today", mcp.Description(todayDescription)),
)

var toolGetExerciseMuscles = mcp.NewTool("get_exercise_muscles",
	mcp.WithDescription("Muscle contributions of an exercise: which muscle groups a completed set credits and with what weight."),
	mcp.WithString("exercise_id", mcp.Required(), mcp.Description("Exercise id (e.g. 'chest-01' or a custom exercise id)")),
)

// snapshot loads the history as of the request's "today" argument. A non-nil
// result is an error to return to the client.
func (h *handlers) snapshot(ctx context.Context, req mcp.CallToolRequest, tool string) (analytics.Snapshot, *mcp.CallToolResult) {
	today, err := history.ParseDay(req.GetString("today", ""), h.now())
	if err != nil {
		return analytics.Snapshot{}, mcp.NewToolResultError(err.Error())
	}
	snap, err := history.Load(ctx, h.src, h.thresholds, today)
	if err != nil {
		h.log.Error("mcp "+tool, "error", err)
		return analytics.Snapshot{}, mcp.NewToolResultError("loading history failed: " + err.Error())
	}
	return snap, nil
}

func jsonResult[T any](v T) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(v)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

// --- Tool handlers ---

func (h *handlers) getTrainingReport(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	snap, errResult := h.snapshot(ctx, req, "get_training_report")
	if errResult != nil {
		return errResult, nil
	}
	return jsonResult(analytics.BuildReport(snap))
}

func (h *handlers) getMuscleVolume(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	snap, errResult := h.snapshot(ctx, req, "get_muscle_volume")
	if errResult != nil {
		return errResult, nil
	}
	volume := analytics.VolumeBalance(snap)
	return jsonResult(map[string]any{
		"muscles": volume,
		"regions": analytics.GroupByRegion(volume),
		"balance": analytics.SummarizeBalance(volume),
	})
}

func (h *handlers) getTrainingFrequency(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	snap, errResult := h.snapshot(ctx, req, "get_training_frequency")
	if errResult != nil {
		return errResult, nil
	}
	freq := analytics.Frequency(snap)
	if freq == nil {
		return mcp.NewToolResultText("No workouts recorded yet."), nil
	}
	return jsonResult(freq)
}

func (h *handlers) getOverloadTrends(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	snap, errResult := h.snapshot(ctx, req, "get_overload_trends")
	if errResult != nil {
		return errResult, nil
	}
	entries := analytics.OverloadTrends(snap)
	if len(entries) == 0 {
		return mcp.NewToolResultText("Not enough sessions in the last 28 days to compute a trend (need at least 2 per exercise)."), nil
	}
	return jsonResult(map[string]any{
		"entries":         entries,
		"stagnation_hint": analytics.HasStagnant(entries),
	})
}

func (h *handlers) getDeloadCheck(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	snap, errResult := h.snapshot(ctx, req, "get_deload_check")
	if errResult != nil {
		return errResult, nil
	}
	advice, ok := analytics.DeloadCheck(snap)
	if !ok {
		return mcp.NewToolResultText("No completed sets in the last 6 weeks."), nil
	}
	return jsonResult(advice)
}

func (h *handlers) getRepRanges(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	snap, errResult := h.snapshot(ctx, req, "get_rep_ranges")
	if errResult != nil {
		return errResult, nil
	}
	profile, ok := analytics.RepRanges(snap)
	if !ok {
		return mcp.NewToolResultText("No completed sets with reps in the last 28 days."), nil
	}
	return jsonResult(profile)
}

func (h *handlers) getPushPullBalance(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	snap, errResult := h.snapshot(ctx, req, "get_push_pull_balance")
	if errResult != nil {
		return errResult, nil
	}
	pp := analytics.PushPull(snap)
	return jsonResult(map[string]any{
		"balance":    pp,
		"ratio_text": pp.RatioText(),
	})
}

func (h *handlers) getSessionVolume(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	snap, errResult := h.snapshot(ctx, req, "get_session_volume")
	if errResult != nil {
		return errResult, nil
	}
	flags := analytics.SessionVolume(snap)
	if len(flags) == 0 {
		return mcp.NewToolResultText("No session exceeded 10 effective sets for a muscle in the last 14 days."), nil
	}
	return jsonResult(flags)
}

func (h *handlers) getRecovery(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	snap, errResult := h.snapshot(ctx, req, "get_recovery")
	if errResult != nil {
		return errResult, nil
	}
	entries := analytics.Recovery(snap)
	if len(entries) == 0 {
		return mcp.NewToolResultText("No trained muscles found."), nil
	}
	return jsonResult(entries)
}

func (h *handlers) getExerciseMuscles(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("exercise_id")
	if err != nil {
		return mcp.NewToolResultError("exercise_id parameter is required"), nil
	}

	custom, err := h.src.ListCustomExercises(ctx)
	if err != nil {
		h.log.Error("mcp get_exercise_muscles", "error", err)
		return mcp.NewToolResultError("loading custom exercises failed: " + err.Error()), nil
	}
	catalog := analytics.NewCatalog(custom)
	ex, ok := catalog.Lookup(id)
	if !ok {
		return mcp.NewToolResultError("unknown exercise: " + id), nil
	}
	return jsonResult(map[string]any{
		"exercise_id":   id,
		"name":          ex.Name,
		"is_custom":     ex.IsCustom,
		"contributions": analytics.Contributions(catalog, id),
	})
}

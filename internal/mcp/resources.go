package mcp

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
)

const currentWeekKey = "hybrid_current_week"

func (h *handlers) programInfo(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(h.program.Info())
	if err != nil {
		return nil, err
	}
	return jsonContents(req, data), nil
}

func (h *handlers) currentWeek(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	week := 1
	raw, ok, err := h.kv.Get(ctx, currentWeekKey)
	if err != nil {
		h.log.Warn("current_week: cursor read failed", "error", err)
	} else if ok {
		if n, err := strconv.Atoi(raw); err == nil {
			week = n
		}
	}

	plan, err := h.program.Week(week)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(map[string]any{
		"week":   week,
		"plan":   plan,
		"logged": h.stats.WeekSummary(ctx, week),
	})
	if err != nil {
		return nil, err
	}
	return jsonContents(req, data), nil
}

func (h *handlers) exerciseCatalog(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(h.program.AllExercises())
	if err != nil {
		return nil, err
	}
	return jsonContents(req, data), nil
}

func jsonContents(req mcp.ReadResourceRequest, data []byte) []mcp.ResourceContents {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}
}

package mcp

import (
	"context"
	"encoding/json"

	"github.com/claude/trainload/internal/analytics"
	"github.com/claude/trainload/internal/history"
	"github.com/claude/trainload/internal/muscles"
	"github.com/mark3labs/mcp-go/mcp"
)

func (h *handlers) muscleCatalog(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	stored, err := h.src.GetThresholdOverrides(ctx)
	if err != nil {
		return nil, err
	}
	return jsonContents(req.Params.URI, muscles.Entries(muscles.MergeThresholds(h.thresholds, stored)))
}

func (h *handlers) weeklyReport(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	snap, err := history.Load(ctx, h.src, h.thresholds, h.now())
	if err != nil {
		return nil, err
	}
	return jsonContents(req.Params.URI, analytics.BuildReport(snap))
}

func jsonContents(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

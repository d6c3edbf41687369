package server

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jbeshir/content-ratings/cmd/mcp/client"
	"github.com/mark3labs/mcp-go/mcp"
)

const maxTopRatedLimit = 100

func (s *Server) handleTopRated(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	filters := parseTopRatedFilters(request.GetArguments())

	result, err := s.client.TopRated(ctx, filters)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list top-rated content: %v", err)), nil
	}

	if len(result.Data) == 0 {
		return mcp.NewToolResultText("No top-rated content found for the selected filters."), nil
	}

	data, err := json.MarshalIndent(result.Data, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to format results: %v", err)), nil
	}

	msg := fmt.Sprintf("Found %d rated item(s) on a %d-point scale:\n\n%s",
		len(result.Data), result.Metadata.Scale, string(data))
	return mcp.NewToolResultText(msg), nil
}

func parseTopRatedFilters(args map[string]any) client.TopRatedFilters {
	var filters client.TopRatedFilters
	if category, ok := args["category"].(float64); ok && category > 0 {
		filters.CategoryID = int64(category)
	}
	if tag, ok := args["tag"].(string); ok {
		filters.Tag = strings.TrimSpace(tag)
	}
	if limit, ok := args["limit"].(float64); ok && limit > 0 {
		filters.Limit = min(int(limit), maxTopRatedLimit)
	}
	return filters
}

func (s *Server) handleGetRating(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	id, ok := request.GetArguments()["content_id"].(float64)
	if !ok || id < 1 {
		return mcp.NewToolResultError("content_id is required"), nil
	}

	rating, err := s.client.GetRating(ctx, int64(id))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get rating: %v", err)), nil
	}

	return mcp.NewToolResultText(formatRating(rating)), nil
}

func formatRating(r *client.Rating) string {
	if r.Rating == nil {
		return fmt.Sprintf("Content %d has no editor rating.", r.ContentID)
	}
	return fmt.Sprintf("Content %d is rated %d / %d.", r.ContentID, *r.Rating, r.Scale)
}

package server

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

const ratingURIPrefix = "content://"

func (s *Server) registerResources() {
	s.mcpServer.AddResourceTemplate(
		mcp.NewResourceTemplate(
			ratingURIPrefix+"{content_id}/rating",
			"Editor rating of a post or page",
			mcp.WithTemplateDescription(
				"Fetch the editor rating of a post or page by its ID, "+
					"together with the site's rating scale."),
			mcp.WithTemplateMIMEType("application/json"),
		),
		s.handleRatingResource,
	)
}

// parseRatingURI extracts the content ID from content://{content_id}/rating.
func parseRatingURI(uri string) (int64, error) {
	rest, ok := strings.CutPrefix(uri, ratingURIPrefix)
	if !ok {
		return 0, fmt.Errorf("invalid rating URI format: %s", uri)
	}
	rest, ok = strings.CutSuffix(rest, "/rating")
	if !ok {
		return 0, fmt.Errorf("invalid rating URI format: %s", uri)
	}

	id, err := strconv.ParseInt(rest, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid content_id in URI: %s", uri)
	}
	return id, nil
}

func (s *Server) handleRatingResource(
	ctx context.Context,
	request mcp.ReadResourceRequest,
) ([]mcp.ResourceContents, error) {
	uri := request.Params.URI
	id, err := parseRatingURI(uri)
	if err != nil {
		return nil, err
	}

	rating, err := s.client.GetRating(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rating %d: %w", id, err)
	}

	data, err := json.MarshalIndent(rating, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal rating: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

// Package server provides the MCP server implementation.
package server

import (
	"context"

	"github.com/jbeshir/content-ratings/cmd/mcp/client"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RatingsAPI is the part of the ratings API the MCP server exposes.
type RatingsAPI interface {
	TopRated(ctx context.Context, filters client.TopRatedFilters) (*client.TopRatedResponse, error)
	GetRating(ctx context.Context, contentID int64) (*client.Rating, error)
}

// Server is the MCP server for content ratings.
type Server struct {
	client    RatingsAPI
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server with the given API client.
func NewServer(apiClient RatingsAPI) *Server {
	s := &Server{
		client: apiClient,
	}

	s.mcpServer = server.NewMCPServer(
		"content-ratings",
		"1.0.0",
		server.WithResourceCapabilities(true, false),
		server.WithLogging(),
	)

	s.registerTools()
	s.registerResources()

	return s
}

// Run starts the MCP server with stdio transport.
func (s *Server) Run() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("top_rated",
		mcp.WithDescription(
			"List posts and pages by editor rating, highest first. "+
				"Ties are ordered by content ID."),
		mcp.WithNumber("category",
			mcp.Description("Only include content in this category ID"),
		),
		mcp.WithString("tag",
			mcp.Description("Only include content with this tag, by slug or name"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of entries to return (default: 10, max: 100)"),
		),
	), s.handleTopRated)

	s.mcpServer.AddTool(mcp.NewTool("get_rating",
		mcp.WithDescription("Get the editor rating of a post or page and the current rating scale."),
		mcp.WithNumber("content_id",
			mcp.Required(),
			mcp.Description("The ID of the post or page"),
		),
	), s.handleGetRating)
}

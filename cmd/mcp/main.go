// Package main provides the entry point for the content ratings MCP server.
//
// The server lets AI agents read editor ratings and top-rated lists over stdio.
//
// Configuration:
//
//	CONTENT_RATINGS_API_URL   - Base URL of the API (default: http://localhost:8080)
//	CONTENT_RATINGS_API_TOKEN - Optional API token (format: ratings_api|xxx)
package main

import (
	"log"
	"os"

	"github.com/jbeshir/content-ratings/cmd/mcp/client"
	"github.com/jbeshir/content-ratings/cmd/mcp/server"
)

func main() {
	apiURL := os.Getenv("CONTENT_RATINGS_API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8080"
	}

	apiClient := client.NewClient(apiURL, os.Getenv("CONTENT_RATINGS_API_TOKEN"))
	srv := server.NewServer(apiClient)

	if err := srv.Run(); err != nil {
		log.Fatal(err)
	}
}

// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/veljkom/venuerank/internal/contract"
)

// NewMCPServer initializes and configures the venuerank MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.StoreManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Venue Classification Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: classify_venues ---
	s.AddTool(mcp.NewTool("classify_venues",
		mcp.WithDescription("Run the classification rules of one bibliometric source over stored venues and persist category codes."),
		mcp.WithString("source", mcp.Description("Bibliometric source (wos, scimago, erihplus, regional). Defaults to 'wos'."), mcp.Enum("wos", "scimago", "erihplus", "regional")),
		mcp.WithString("variant", mcp.Description("Rulebook variant for the quartile rules (default, social)."), mcp.Enum("default", "social")),
		mcp.WithNumber("year", mcp.Description("Assessment year (defaults to the previous calendar year).")),
		mcp.WithNumber("commission", mcp.Description("Commission id the run is attributed to.")),
		mcp.WithNumber("venue_id", mcp.Description("Classify a single venue instead of all stored venues.")),
	), h.handleClassifyVenues)

	// --- 2. Tool: score_publication ---
	s.AddTool(mcp.NewTool("score_publication",
		mcp.WithDescription("Compute the rulebook points for a publication from its category code, research-area group, and author count."),
		mcp.WithString("code", mcp.Description("Category code, e.g. M21a or M45."), mcp.Required()),
		mcp.WithString("group", mcp.Description("Research-area group of the publication."), mcp.Enum("natural", "technical", "social", "humanities", "other")),
		mcp.WithNumber("authors", mcp.Description("Declared author count."), mcp.Required()),
		mcp.WithNumber("document_id", mcp.Description("Stored document id whose indicators refine the author count and work-type flags.")),
	), h.handleScorePublication)

	// --- 3. Tool: list_classifications ---
	s.AddTool(mcp.NewTool("list_classifications",
		mcp.WithDescription("List stored classifications, optionally filtered by venue, year, commission, or category code."),
		mcp.WithNumber("venue_id", mcp.Description("Filter by venue id.")),
		mcp.WithNumber("year", mcp.Description("Filter by assessment year.")),
		mcp.WithNumber("commission", mcp.Description("Filter by commission id.")),
		mcp.WithString("code", mcp.Description("Filter by category code, e.g. M23.")),
	), h.handleListClassifications)

	return s
}

// StartMCPServer starts the venuerank MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.StoreManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}

package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/veljkom/venuerank/core"
	"github.com/veljkom/venuerank/internal/catalog"
	"github.com/veljkom/venuerank/internal/contract"
	"github.com/veljkom/venuerank/internal/locale"
	"github.com/veljkom/venuerank/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.StoreManager
}

func (h *toolHandler) handleClassifyVenues(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if s := request.GetString("source", ""); s != "" {
		cfg.Source = schema.Source(s)
	}
	if v := request.GetString("variant", ""); v != "" {
		cfg.Variant = schema.RulebookVariant(v)
	}
	if y := request.GetInt("year", 0); y > 0 {
		cfg.Year = y
	}
	if c := request.GetInt("commission", 0); c > 0 {
		cfg.CommissionID = int64(c)
	}

	classifier, err := core.NewClassifier(cfg.Source, cfg.Variant)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid classification parameters: %v", err)), nil
	}

	engine := core.NewEngine(classifier, h.mgr.GetStore(), catalog.Default(), locale.Default())

	var summary schema.RunSummary
	if venueID := request.GetInt("venue_id", 0); venueID > 0 {
		summary, err = engine.ClassifyVenues(ctx, cfg.Year, cfg.CommissionID, []int64{int64(venueID)})
	} else {
		summary, err = engine.ClassifyAll(ctx, cfg.Year, cfg.CommissionID)
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("classification failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(summary, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleScorePublication(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	code := schema.CategoryCode(strings.TrimSpace(request.GetString("code", "")))
	if code == "" {
		return mcp.NewToolResultError("code is required"), nil
	}

	group := schema.ResearchArea(strings.ToLower(request.GetString("group", "")))
	if group == "" {
		group = schema.NaturalArea
	}
	if _, ok := schema.ValidResearchAreas[group]; !ok {
		return mcp.NewToolResultError(fmt.Sprintf("invalid group %q", group)), nil
	}

	authors := request.GetInt("authors", 0)
	flags := schema.WorkTypeFlags{Code: code}

	// Document indicators refine the author count and work-type flags
	if documentID := request.GetInt("document_id", 0); documentID > 0 {
		indicators, err := h.mgr.GetStore().ListDocumentIndicators(ctx, int64(documentID))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to load document indicators: %v", err)), nil
		}
		set := core.NewIndicatorSet(indicators)
		authors = core.ResolveAuthorCount(set, authors, h.baseCfg.Year)
		flags = core.ResolveWorkTypeFlags(set, code, h.baseCfg.Year)
	}

	result, err := core.ScoreDocument(group, code, authors, flags)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("scoring failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleListClassifications(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var filter contract.ClassificationFilter
	if venueID := request.GetInt("venue_id", 0); venueID > 0 {
		id := int64(venueID)
		filter.VenueID = &id
	}
	if year := request.GetInt("year", 0); year > 0 {
		filter.Year = &year
	}
	if commission := request.GetInt("commission", 0); commission > 0 {
		id := int64(commission)
		filter.CommissionID = &id
	}
	if code := strings.TrimSpace(request.GetString("code", "")); code != "" {
		c := schema.CategoryCode(code)
		filter.Code = &c
	}

	items, err := h.mgr.GetStore().ListClassifications(ctx, filter)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list classifications: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(items, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

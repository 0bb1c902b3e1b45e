package core

import (
	"context"
	"fmt"

	"github.com/veljkom/venuerank/internal/catalog"
	"github.com/veljkom/venuerank/internal/contract"
	"github.com/veljkom/venuerank/internal/locale"
	"github.com/veljkom/venuerank/internal/outwriter"
	"github.com/veljkom/venuerank/schema"
)

// ScoreOptions carries the per-invocation inputs of a score computation that
// are not part of the shared configuration.
type ScoreOptions struct {
	Code       schema.CategoryCode
	Group      schema.ResearchArea
	Authors    int
	DocumentID int64 // 0 means no document indicators are consulted
}

// ExecuteClassify runs the classification engine for the configured source and
// writes a run summary. An empty venueIDs slice classifies every known venue.
func ExecuteClassify(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, venueIDs []int64) error {
	classifier, err := NewClassifier(cfg.Source, cfg.Variant)
	if err != nil {
		return err
	}

	store := mgr.GetStore()
	engine := NewEngine(classifier, store, catalog.Default(), locale.Default())

	var summary schema.RunSummary
	if len(venueIDs) > 0 {
		summary, err = engine.ClassifyVenues(ctx, cfg.Year, cfg.CommissionID, venueIDs)
	} else {
		summary, err = engine.ClassifyAll(ctx, cfg.Year, cfg.CommissionID)
	}
	if err != nil {
		return err
	}

	names, err := collectVenueNames(ctx, store, summary.Results)
	if err != nil {
		return err
	}

	writer := outwriter.NewOutWriter()
	return writer.WriteSummary(summary, names, cfg)
}

// ExecuteScore computes the point value of a single publication and writes it.
// When a document id is given, its indicators may revise the author count and
// set the work-type flags that drive scaling.
func ExecuteScore(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, opts ScoreOptions) error {
	authors := opts.Authors
	flags := schema.WorkTypeFlags{Code: opts.Code}

	if opts.DocumentID > 0 {
		indicators, err := mgr.GetStore().ListDocumentIndicators(ctx, opts.DocumentID)
		if err != nil {
			return fmt.Errorf("failed to load indicators for document %d: %w", opts.DocumentID, err)
		}
		set := NewIndicatorSet(indicators)
		authors = ResolveAuthorCount(set, authors, cfg.Year)
		flags = ResolveWorkTypeFlags(set, opts.Code, cfg.Year)
	}

	result, err := ScoreDocument(opts.Group, opts.Code, authors, flags)
	if err != nil {
		return err
	}

	writer := outwriter.NewOutWriter()
	return writer.WriteScore(result, cfg)
}

// ExecuteListClassifications lists stored classifications matching the filter,
// capped at the configured result limit.
func ExecuteListClassifications(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, filter contract.ClassificationFilter) error {
	store := mgr.GetStore()
	items, err := store.ListClassifications(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to list classifications: %w", err)
	}
	if len(items) > cfg.ResultLimit {
		items = items[:cfg.ResultLimit]
	}

	names, err := collectVenueNames(ctx, store, items)
	if err != nil {
		return err
	}

	writer := outwriter.NewOutWriter()
	return writer.WriteClassifications(items, names, cfg)
}

// ExecuteListIndicators lists the indicators of one venue for the configured
// source and assessment year.
func ExecuteListIndicators(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, venueID int64) error {
	items, err := mgr.GetStore().ListVenueIndicators(ctx, venueID, cfg.Source, cfg.Year)
	if err != nil {
		return fmt.Errorf("failed to list indicators for venue %d: %w", venueID, err)
	}
	if len(items) > cfg.ResultLimit {
		items = items[:cfg.ResultLimit]
	}

	writer := outwriter.NewOutWriter()
	return writer.WriteIndicators(items, cfg)
}

// collectVenueNames resolves the display name of every venue referenced by the
// given classifications. A venue that disappeared since the run is tolerated
// and simply has no name in the map.
func collectVenueNames(ctx context.Context, store contract.Store, items []schema.Classification) (map[int64]string, error) {
	names := make(map[int64]string)
	for _, c := range items {
		if _, ok := names[c.VenueID]; ok {
			continue
		}
		v, err := store.GetVenue(ctx, c.VenueID)
		if err != nil {
			continue
		}
		names[c.VenueID] = v.Name
	}
	return names, nil
}

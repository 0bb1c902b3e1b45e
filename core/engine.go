package core

import (
	"context"
	"fmt"
	"time"

	"github.com/veljkom/venuerank/internal/contract"
	"github.com/veljkom/venuerank/schema"
)

// Engine runs the handler chain of one bibliometric source over venues and
// persists at most one classification per (venue, identifier, year, commission)
// tuple. Each venue's write set is disjoint from every other venue's, so a
// run that is cancelled between venues leaves only self-contained, idempotent
// per-venue results behind.
type Engine struct {
	classifier Classifier
	store      contract.Store
	codes      contract.CodeCatalog
	localizer  contract.Localizer
}

// NewEngine builds an engine bound to one source's classifier and the store,
// code catalog, and localization contracts.
func NewEngine(classifier Classifier, store contract.Store, codes contract.CodeCatalog, localizer contract.Localizer) *Engine {
	return &Engine{
		classifier: classifier,
		store:      store,
		codes:      codes,
		localizer:  localizer,
	}
}

// ClassifyAll pages through all known venues in stable id order, chunk size
// contract.VenuePageSize, and classifies each one for the target year and
// commission. Cancellation is honored between venues and between pages, never
// mid-venue.
func (e *Engine) ClassifyAll(ctx context.Context, year int, commission int64) (schema.RunSummary, error) {
	summary := e.newSummary(year, commission)

	var afterID int64
	for {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		venues, err := e.store.ListVenuesAfter(ctx, afterID, contract.VenuePageSize)
		if err != nil {
			return summary, fmt.Errorf("failed to page venues after id %d: %w", afterID, err)
		}
		for _, v := range venues {
			if err := ctx.Err(); err != nil {
				return summary, err
			}
			if err := e.classifyVenue(ctx, v.ID, year, commission, &summary); err != nil {
				return summary, err
			}
		}
		if len(venues) < contract.VenuePageSize {
			return summary, nil
		}
		afterID = venues[len(venues)-1].ID
	}
}

// ClassifyVenues runs the same flow restricted to an explicit id list,
// preserving input order. An unknown venue id fails the run.
func (e *Engine) ClassifyVenues(ctx context.Context, year int, commission int64, venueIDs []int64) (schema.RunSummary, error) {
	summary := e.newSummary(year, commission)

	for _, id := range venueIDs {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		if _, err := e.store.GetVenue(ctx, id); err != nil {
			return summary, fmt.Errorf("failed to load venue %d: %w", id, err)
		}
		if err := e.classifyVenue(ctx, id, year, commission, &summary); err != nil {
			return summary, err
		}
	}
	return summary, nil
}

func (e *Engine) newSummary(year int, commission int64) schema.RunSummary {
	return schema.RunSummary{
		Source:       e.classifier.Source(),
		Year:         year,
		CommissionID: commission,
	}
}

// classifyVenue loads the venue's indicators once, derives its category
// identifier tracks, and runs the chain per track. A store write failure is
// fatal for the run; results already committed for earlier venues stay valid.
func (e *Engine) classifyVenue(ctx context.Context, venueID int64, year int, commission int64, summary *schema.RunSummary) error {
	indicators, err := e.store.ListVenueIndicators(ctx, venueID, e.classifier.Source(), year)
	if err != nil {
		return fmt.Errorf("failed to load indicators for venue %d: %w", venueID, err)
	}
	set := NewIndicatorSet(indicators)
	summary.VenuesSeen++

	for _, category := range set.CategoryIdentifiers() {
		in := RuleInput{
			VenueID:  venueID,
			Category: category,
			Year:     year,
			Set:      set,
		}
		outcome, matched := e.runChain(in)
		if !matched {
			summary.Unclassified++
			continue
		}

		code, ok := e.codes.Resolve(outcome.Tier)
		if !ok {
			contract.LogWarn(fmt.Sprintf("no category code for tier %q, venue %d skipped", outcome.Tier, venueID), nil)
			summary.Unclassified++
			continue
		}

		result := schema.Classification{
			VenueID:            venueID,
			CategoryIdentifier: category,
			Year:               year,
			CommissionID:       commission,
			Code:               code,
			Reasoning:          e.resolveReasons(outcome.Reasons),
			CreatedAt:          time.Now().UTC(),
		}
		id, err := e.store.ReplaceClassification(ctx, result)
		if err != nil {
			return fmt.Errorf("failed to persist classification for venue %d category %q: %w", venueID, category, err)
		}
		result.ID = id
		summary.Classified++
		summary.Results = append(summary.Results, result)
	}
	return nil
}

// runChain evaluates handlers strictly in order and stops at the first match,
// even if a later handler would also match. A handler error fails only that
// evaluation: the chain continues so an unparsable indicator cannot block a
// venue from matching a lower tier.
func (e *Engine) runChain(in RuleInput) (Outcome, bool) {
	for _, h := range e.classifier.Chain() {
		outcome, err := h.Eval(in)
		if err != nil {
			contract.LogWarn(fmt.Sprintf("handler %s skipped for venue %d category %q", h.Name, in.VenueID, in.Category), err)
			continue
		}
		if outcome.Matched {
			return outcome, true
		}
	}
	return NoMatch, false
}

// resolveReasons renders the parameterized justifications into localized text.
func (e *Engine) resolveReasons(reasons []Reason) []schema.LocalizedText {
	var out []schema.LocalizedText
	for _, r := range reasons {
		out = append(out, e.localizer.Resolve(r.TemplateID, r.Params...)...)
	}
	return out
}

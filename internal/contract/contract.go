// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"

	"github.com/veljkom/venuerank/schema"
)

// VenuePageSize is the fixed chunk size used when paging through all venues.
const VenuePageSize = 10

// ClassificationFilter narrows classification listings. Nil fields are ignored.
type ClassificationFilter struct {
	VenueID      *int64
	Year         *int
	CommissionID *int64
	Code         *schema.CategoryCode
}

// Store defines the persistence operations the classification engine and the
// CLI depend on. This allows the store to be mocked for testing.
type Store interface {
	// --- Venue enumeration ---

	// GetVenue returns a single venue by id.
	GetVenue(ctx context.Context, id int64) (schema.Venue, error)

	// ListVenuesAfter returns up to limit venues with id greater than afterID,
	// in ascending id order. A short page signals the end of the enumeration.
	ListVenuesAfter(ctx context.Context, afterID int64, limit int) ([]schema.Venue, error)

	// PutVenue inserts a venue and returns its id.
	PutVenue(ctx context.Context, v schema.Venue) (int64, error)

	// --- Indicator lookup ---

	// ListVenueIndicators returns all indicators of one source for a venue whose
	// validity year is <= asOfYear, in ascending id order.
	ListVenueIndicators(ctx context.Context, venueID int64, source schema.Source, asOfYear int) ([]schema.Indicator, error)

	// ListDocumentIndicators returns all indicators scoped to a document, in
	// ascending id order.
	ListDocumentIndicators(ctx context.Context, documentID int64) ([]schema.Indicator, error)

	// PutIndicator inserts an indicator and returns its id. Indicators are
	// immutable once written; new harvest cycles append rows.
	PutIndicator(ctx context.Context, ind schema.Indicator) (int64, error)

	// --- Classification persistence ---

	// ReplaceClassification deletes any existing row for the exact
	// (venue, identifier, year, commission) tuple and inserts the new one,
	// in a single transaction.
	ReplaceClassification(ctx context.Context, c schema.Classification) (int64, error)

	// ListClassifications returns classifications matching the filter, in
	// ascending (venue, identifier) order.
	ListClassifications(ctx context.Context, f ClassificationFilter) ([]schema.Classification, error)

	// --- Lifecycle ---

	// GetStatus returns status information about the store.
	GetStatus(ctx context.Context) (schema.StoreStatus, error)

	// Close closes the underlying connection.
	Close() error
}

// StoreManager defines the interface for managing the store instance.
// This allows the persistence layer to be mocked for testing.
type StoreManager interface {
	GetStore() Store
}

// CodeCatalog resolves a symbolic rule outcome to the externally visible
// category code string, decoupling engine-internal tier names from the
// published coding scheme.
type CodeCatalog interface {
	Resolve(tier schema.Tier) (schema.CategoryCode, bool)
}

// Localizer renders a rule-template identifier plus deterministic parameters
// into one justification string per configured language.
type Localizer interface {
	Resolve(templateID string, params ...any) []schema.LocalizedText
}

// Package schema has models, enums and status types for all parts of venuerank.
package schema

import "time"

// Venue represents a publication series (journal or book series) under assessment.
type Venue struct {
	ID        int64     `json:"id"`         // Stable identifier assigned by the backing store
	Name      string    `json:"name"`       // Display name of the venue
	ISSN      string    `json:"issn"`       // ISSN when known, empty otherwise
	CreatedAt time.Time `json:"created_at"` // When the venue row was first written
}

// Indicator is a single timestamped bibliometric fact about a venue or document
// from one data source. Exactly one of VenueID or DocumentID is set. Multiple
// indicators may share a code but differ by category identifier or validity year.
type Indicator struct {
	ID                 int64     `json:"id"`
	VenueID            *int64    `json:"venue_id,omitempty"`
	DocumentID         *int64    `json:"document_id,omitempty"`
	Code               string    `json:"code"`
	Source             Source    `json:"source"`
	CategoryIdentifier string    `json:"category_identifier"` // Empty when the indicator is not category-scoped
	ValidFrom          int       `json:"valid_from"`          // First assessment year the value applies to
	Kind               ValueKind `json:"kind"`
	NumericValue       float64   `json:"numeric_value,omitempty"`
	BoolValue          bool      `json:"bool_value,omitempty"`
	TextValue          string    `json:"text_value,omitempty"`
	HarvestedAt        time.Time `json:"harvested_at"`
}

// LocalizedText is one language rendering of a classification justification.
type LocalizedText struct {
	Lang string `json:"lang"`
	Text string `json:"text"`
}

// Classification is the stored outcome of one classification run for one
// (venue, category identifier, year, commission) tuple. The engine enforces
// at most one row per tuple by replacing any prior row on each run.
type Classification struct {
	ID                 int64           `json:"id"`
	VenueID            int64           `json:"venue_id"`
	CategoryIdentifier string          `json:"category_identifier"`
	Year               int             `json:"year"`
	CommissionID       int64           `json:"commission_id"`
	Code               CategoryCode    `json:"code"`
	Reasoning          []LocalizedText `json:"reasoning"`
	CreatedAt          time.Time       `json:"created_at"` // Metadata only, never part of the decision
}

// WorkTypeFlags carries the transient per-document inputs consulted by the
// scaling rules. The flags are derived from document indicators and are never
// persisted on their own.
type WorkTypeFlags struct {
	Code         CategoryCode
	Theoretical  bool
	Simulation   bool
	Experimental bool
}

// RunSummary aggregates the outcome of one classification run.
type RunSummary struct {
	Source       Source           `json:"source"`
	Year         int              `json:"year"`
	CommissionID int64            `json:"commission_id"`
	VenuesSeen   int              `json:"venues_seen"`
	Classified   int              `json:"classified"`   // Number of (venue, identifier) pairs that earned a code
	Unclassified int              `json:"unclassified"` // Pairs where no handler matched
	Results      []Classification `json:"results"`
}

// ScoreResult is the transient outcome of a points-plus-scaling computation.
// Callers persist it into whatever entity needs the score.
type ScoreResult struct {
	Code           CategoryCode `json:"code"`
	Group          ResearchArea `json:"group"`
	BasePoints     float64      `json:"base_points"`
	AdjustedPoints float64      `json:"adjusted_points"`
	AuthorCount    int          `json:"author_count"` // Effective count after any revision
	Threshold      int          `json:"threshold"`    // Author threshold applied, 0 when unscaled
}

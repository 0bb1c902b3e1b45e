package core

import "github.com/veljkom/venuerank/schema"

// RuleInput carries everything a handler may consult for one
// (venue, category identifier) evaluation. Handlers are pure functions over
// this value; no evaluation state lives on the engine.
type RuleInput struct {
	VenueID  int64
	Category string // Empty when the venue has no category identifiers
	Year     int
	Set      IndicatorSet
}

// Reason is a parameterized justification for a match, keyed by a
// rule-template identifier that the localization catalog resolves to
// human-readable strings.
type Reason struct {
	TemplateID string
	Params     []any
}

// Outcome is the typed result of one handler evaluation. A non-matching
// handler returns the zero Outcome; expected "no classification" is never an
// error.
type Outcome struct {
	Matched bool
	Tier    schema.Tier
	Reasons []Reason
}

// NoMatch is the outcome of a handler whose rule did not apply.
var NoMatch = Outcome{}

// HandlerFunc evaluates one category rule against the loaded indicators.
// A missing indicator is a no-match; an error means this single evaluation
// failed (for example an unparsable rank value) and the chain continues.
type HandlerFunc func(in RuleInput) (Outcome, error)

// Handler pairs a rule function with a stable name used in warnings.
type Handler struct {
	Name string
	Eval HandlerFunc
}

// Classifier supplies the ordered handler chain for exactly one bibliometric
// source. The chain encodes a strict dominance hierarchy from most to least
// prestigious tier; the engine stops at the first match.
type Classifier interface {
	Source() schema.Source
	Chain() []Handler
}

package core

import (
	"sort"

	"github.com/veljkom/venuerank/schema"
)

// IndicatorSet is an in-memory view over the indicators loaded for one venue
// or document. All rule evaluation happens against a set, so a venue is read
// from the store exactly once per run.
type IndicatorSet struct {
	items []schema.Indicator
}

// NewIndicatorSet wraps a slice of indicators for rule evaluation.
func NewIndicatorSet(items []schema.Indicator) IndicatorSet {
	return IndicatorSet{items: items}
}

// Len returns the number of indicators in the set.
func (s IndicatorSet) Len() int {
	return len(s.items)
}

// Find returns the indicator matching code (and category identifier, when
// non-empty) whose validity year is <= asOfYear. When several rows qualify,
// for example after re-harvesting, the latest validity year wins and ties on
// validity year go to the highest store id, so the most recent write wins.
func (s IndicatorSet) Find(code, category string, asOfYear int) (schema.Indicator, bool) {
	var best schema.Indicator
	found := false
	for _, ind := range s.items {
		if ind.Code != code || ind.ValidFrom > asOfYear {
			continue
		}
		if category != "" && ind.CategoryIdentifier != category {
			continue
		}
		if !found || ind.ValidFrom > best.ValidFrom ||
			(ind.ValidFrom == best.ValidFrom && ind.ID > best.ID) {
			best = ind
			found = true
		}
	}
	return best, found
}

// FindText returns the trimmed text value of a matching textual indicator.
func (s IndicatorSet) FindText(code, category string, asOfYear int) (string, bool) {
	ind, ok := s.Find(code, category, asOfYear)
	if !ok || ind.Kind != schema.TextKind {
		return "", false
	}
	return ind.TextValue, true
}

// FindBool returns the value of a matching boolean indicator.
func (s IndicatorSet) FindBool(code, category string, asOfYear int) (bool, bool) {
	ind, ok := s.Find(code, category, asOfYear)
	if !ok || ind.Kind != schema.BooleanKind {
		return false, false
	}
	return ind.BoolValue, true
}

// FindNumeric returns the value of a matching numeric indicator.
func (s IndicatorSet) FindNumeric(code, category string, asOfYear int) (float64, bool) {
	ind, ok := s.Find(code, category, asOfYear)
	if !ok || ind.Kind != schema.NumericKind {
		return 0, false
	}
	return ind.NumericValue, true
}

// CategoryIdentifiers returns the distinct non-empty category identifiers in
// the set, sorted for deterministic iteration. A venue with no category-scoped
// indicators is treated as a single track identified by the empty string.
func (s IndicatorSet) CategoryIdentifiers() []string {
	seen := make(map[string]struct{})
	for _, ind := range s.items {
		if ind.CategoryIdentifier != "" {
			seen[ind.CategoryIdentifier] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return []string{""}
	}
	cats := make([]string, 0, len(seen))
	for cat := range seen {
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	return cats
}

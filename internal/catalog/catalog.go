// Package catalog resolves symbolic rule tiers to published category codes.
package catalog

import (
	"github.com/veljkom/venuerank/internal/contract"
	"github.com/veljkom/venuerank/schema"
)

// codeCatalog maps engine-internal tiers to the coding scheme published by
// the assessment rulebook. Keeping the mapping here means a recoding of the
// scheme never touches the rule logic.
type codeCatalog struct {
	codes map[schema.Tier]schema.CategoryCode
}

var _ contract.CodeCatalog = codeCatalog{} // Compile-time check

// Default returns the catalog for the current coding scheme.
func Default() contract.CodeCatalog {
	return codeCatalog{
		codes: map[schema.Tier]schema.CategoryCode{
			schema.TopPlusTier:  "M21a",
			schema.TopTier:      "M21",
			schema.UpperTier:    "M22",
			schema.MidTier:      "M23",
			schema.LowerTier:    "M24",
			schema.RegionalTier: "M51",
		},
	}
}

// Resolve returns the published code for a tier.
func (c codeCatalog) Resolve(tier schema.Tier) (schema.CategoryCode, bool) {
	code, ok := c.codes[tier]
	return code, ok
}

package rules

import (
	"errors"
	"strings"

	"github.com/veljkom/venuerank/schema"
)

// Author-count thresholds per work type. Below or at its threshold a work
// keeps full points; beyond it the decay formula applies.
const (
	TheoreticalThreshold  = 3
	SimulationThreshold   = 5
	ExperimentalThreshold = 7
	TopJournalThreshold   = 10
)

// decayRate is the per-extra-author discount slope.
const decayRate = 0.2

// critiqueRatio is the fixed multiplier for critique/polemic/comment codes,
// applied before any author-count scaling.
const critiqueRatio = 0.25

// ErrInvalidAuthorCount reports a missing or non-positive author count. Every
// document has a defined author count, so this is a caller error rather than
// something the rules default around.
var ErrInvalidAuthorCount = errors.New("author count must be positive")

// critiqueCodes are the reduced-credit critique/polemic/comment codes.
var critiqueCodes = map[schema.CategoryCode]struct{}{
	"M26": {},
	"M56": {},
	"M66": {},
}

// Scale discounts a point value for multi-author over-crediting. It returns
// the adjusted points and the author threshold that applied (0 when the code
// family is never scaled). The decay is a smooth monotonic discount, not a
// hard cap: arbitrarily large author counts approach but never reach zero.
func Scale(points float64, authors int, flags schema.WorkTypeFlags) (float64, int, error) {
	if authors <= 0 {
		return 0, 0, ErrInvalidAuthorCount
	}

	if isMonographFamily(flags.Code) {
		return points, 0, nil
	}

	if _, ok := critiqueCodes[flags.Code]; ok {
		points *= critiqueRatio
	}

	threshold := thresholdFor(flags)
	return decay(points, authors, threshold), threshold, nil
}

// thresholdFor picks the author threshold, first matching rule applies.
// A work none of the flags or code families classify is treated as
// experimental.
func thresholdFor(flags schema.WorkTypeFlags) int {
	switch {
	case flags.Theoretical:
		return TheoreticalThreshold
	case flags.Simulation:
		return SimulationThreshold
	case flags.Experimental || isSoftwareFamily(flags.Code):
		return ExperimentalThreshold
	case isTopJournalCode(flags.Code) || isPatentFamily(flags.Code):
		return TopJournalThreshold
	default:
		return ExperimentalThreshold
	}
}

func decay(points float64, authors, threshold int) float64 {
	if authors <= threshold {
		return points
	}
	return points / (1 + decayRate*float64(authors-threshold))
}

// isMonographFamily covers the monograph and thesis families, which are never
// scaled by author count.
func isMonographFamily(code schema.CategoryCode) bool {
	s := string(code)
	return strings.HasPrefix(s, "M1") || strings.HasPrefix(s, "M4") || strings.HasPrefix(s, "M7")
}

func isSoftwareFamily(code schema.CategoryCode) bool {
	return strings.HasPrefix(string(code), "M8")
}

func isPatentFamily(code schema.CategoryCode) bool {
	return strings.HasPrefix(string(code), "M9")
}

func isTopJournalCode(code schema.CategoryCode) bool {
	return code == "M21a" || code == "M21"
}

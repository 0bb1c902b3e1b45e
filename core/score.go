package core

import (
	"github.com/veljkom/venuerank/core/rules"
	"github.com/veljkom/venuerank/schema"
)

// ScoreDocument computes the rulebook score for a single document: the points
// table value for its category code and research-area group, discounted by
// the author-count scaling rules. Pure and reentrant; any number of callers
// may invoke it concurrently.
func ScoreDocument(group schema.ResearchArea, code schema.CategoryCode, authors int, flags schema.WorkTypeFlags) (schema.ScoreResult, error) {
	base := rules.Points(group, code)
	adjusted, threshold, err := rules.Scale(base, authors, flags)
	if err != nil {
		return schema.ScoreResult{}, err
	}
	return schema.ScoreResult{
		Code:           code,
		Group:          group,
		BasePoints:     base,
		AdjustedPoints: adjusted,
		AuthorCount:    authors,
		Threshold:      threshold,
	}, nil
}

// ResolveAuthorCount returns the effective author count: the revised count
// indicator overrides the declared count when present and positive, for
// example after excluding non-research contributors.
func ResolveAuthorCount(set IndicatorSet, declared, asOfYear int) int {
	if revised, ok := set.FindNumeric(schema.IndicatorRevisedAuthors, "", asOfYear); ok && revised > 0 {
		return int(revised)
	}
	return declared
}

// ResolveWorkTypeFlags derives the transient work-type flags from a
// document's boolean indicators. Missing indicators leave the flag unset.
func ResolveWorkTypeFlags(set IndicatorSet, code schema.CategoryCode, asOfYear int) schema.WorkTypeFlags {
	flags := schema.WorkTypeFlags{Code: code}
	if v, ok := set.FindBool(schema.IndicatorTheoretical, "", asOfYear); ok {
		flags.Theoretical = v
	}
	if v, ok := set.FindBool(schema.IndicatorSimulation, "", asOfYear); ok {
		flags.Simulation = v
	}
	if v, ok := set.FindBool(schema.IndicatorExperimental, "", asOfYear); ok {
		flags.Experimental = v
	}
	return flags
}

package core

import (
	"fmt"

	"github.com/veljkom/venuerank/schema"
)

// TemplateRegionalFirst is the rule template for regional list membership.
const TemplateRegionalFirst = "regional.first"

// regionalClassifier implements the categorical rule of the regional
// classification list: a single textual indicator equal to the distinguished
// first-category label grants one fixed tier.
type regionalClassifier struct{}

// NewRegionalClassifier returns the classifier for the regional list source.
func NewRegionalClassifier() Classifier {
	return regionalClassifier{}
}

func (regionalClassifier) Source() schema.Source {
	return schema.RegionalSource
}

func (regionalClassifier) Chain() []Handler {
	return []Handler{
		{Name: "regional-first", Eval: regionalFirst},
	}
}

func regionalFirst(in RuleInput) (Outcome, error) {
	label, ok := in.Set.FindText(schema.IndicatorRegionalRank, in.Category, in.Year)
	if !ok || label != schema.RegionalFirstCategory {
		return NoMatch, nil
	}
	return Outcome{
		Matched: true,
		Tier:    schema.RegionalTier,
		Reasons: []Reason{{TemplateID: TemplateRegionalFirst, Params: []any{in.Year}}},
	}, nil
}

// NewClassifier returns the classifier for the given source. The variant only
// affects the quartile rules.
func NewClassifier(source schema.Source, variant schema.RulebookVariant) (Classifier, error) {
	switch source {
	case schema.WOSSource:
		return NewWOSClassifier(), nil
	case schema.ScimagoSource:
		return NewScimagoClassifier(variant), nil
	case schema.ERIHPlusSource:
		return NewERIHPlusClassifier(), nil
	case schema.RegionalSource:
		return NewRegionalClassifier(), nil
	default:
		return nil, fmt.Errorf("unsupported source: %s", source)
	}
}

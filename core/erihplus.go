package core

import "github.com/veljkom/venuerank/schema"

// TemplateERIHIndexed is the rule template for ERIH PLUS membership.
const TemplateERIHIndexed = "erih.indexed"

// erihPlusClassifier implements the membership rule of the ERIH PLUS source:
// a single boolean indicator grants one fixed tier.
type erihPlusClassifier struct{}

// NewERIHPlusClassifier returns the classifier for the ERIH PLUS source.
func NewERIHPlusClassifier() Classifier {
	return erihPlusClassifier{}
}

func (erihPlusClassifier) Source() schema.Source {
	return schema.ERIHPlusSource
}

func (erihPlusClassifier) Chain() []Handler {
	return []Handler{
		{Name: "erih-indexed", Eval: erihIndexed},
	}
}

func erihIndexed(in RuleInput) (Outcome, error) {
	indexed, ok := in.Set.FindBool(schema.IndicatorERIHIndexed, in.Category, in.Year)
	if !ok || !indexed {
		return NoMatch, nil
	}
	return Outcome{
		Matched: true,
		Tier:    schema.LowerTier,
		Reasons: []Reason{{TemplateID: TemplateERIHIndexed, Params: []any{in.Year}}},
	}, nil
}

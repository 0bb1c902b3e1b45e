package core

import "github.com/veljkom/venuerank/schema"

// TemplateScimagoQuartile is the rule template for quartile matches.
const TemplateScimagoQuartile = "scimago.quartile"

// scimagoClassifier implements the quartile rules of the Scimago source. The
// rulebook variant decides how quartile labels map to tiers: the default
// variant folds Q1-Q3 into the mid tier, while the social-sciences variant
// promotes Q1 to the upper tier.
type scimagoClassifier struct {
	variant schema.RulebookVariant
}

// NewScimagoClassifier returns the classifier for the Scimago source under
// the given rulebook variant.
func NewScimagoClassifier(variant schema.RulebookVariant) Classifier {
	return scimagoClassifier{variant: variant}
}

func (scimagoClassifier) Source() schema.Source {
	return schema.ScimagoSource
}

func (c scimagoClassifier) Chain() []Handler {
	if c.variant == schema.SocialVariant {
		return []Handler{
			{Name: "scimago-upper", Eval: quartileHandler(schema.UpperTier, schema.QuartileQ1)},
			{Name: "scimago-mid", Eval: quartileHandler(schema.MidTier, schema.QuartileQ2, schema.QuartileQ3)},
			{Name: "scimago-lower", Eval: quartileHandler(schema.LowerTier, schema.QuartileQ4)},
		}
	}
	return []Handler{
		{Name: "scimago-mid", Eval: quartileHandler(schema.MidTier, schema.QuartileQ1, schema.QuartileQ2, schema.QuartileQ3)},
		{Name: "scimago-lower", Eval: quartileHandler(schema.LowerTier, schema.QuartileQ4)},
	}
}

// quartileHandler builds the rule for one tier matching an explicit set of
// allowed quartile labels. An unknown label is not an error: the venue simply
// does not match, which keeps harvest noise out of the warning stream.
func quartileHandler(tier schema.Tier, allowed ...string) HandlerFunc {
	return func(in RuleInput) (Outcome, error) {
		quartile, ok := in.Set.FindText(schema.IndicatorQuartile, in.Category, in.Year)
		if !ok {
			return NoMatch, nil
		}
		for _, label := range allowed {
			if quartile == label {
				return Outcome{
					Matched: true,
					Tier:    tier,
					Reasons: []Reason{{TemplateID: TemplateScimagoQuartile, Params: []any{quartile, in.Category, in.Year}}},
				}, nil
			}
		}
		return NoMatch, nil
	}
}

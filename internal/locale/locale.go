// Package locale renders rule-template identifiers into localized
// justification strings attached to classification results.
package locale

import (
	"fmt"

	"github.com/veljkom/venuerank/internal/contract"
	"github.com/veljkom/venuerank/schema"
)

// languages is the fixed rendering order, which keeps reasoning output
// deterministic across runs.
var languages = []string{"en", "sr"}

// templates holds one format string per language per rule template. The
// parameters are positional and supplied by the rule that matched.
var templates = map[string]map[string]string{
	"wos.flag": {
		"en": "Designated a leading international journal by Web of Science for %d",
		"sr": "Označen kao vodeći međunarodni časopis u Web of Science za %d. godinu",
	},
	"wos.rank": {
		"en": "Web of Science rank %s in category %q for %d",
		"sr": "Web of Science rang %s u kategoriji %q za %d. godinu",
	},
	"wos.percentile": {
		"en": "Web of Science citation percentile %v in category %q for %d",
		"sr": "Web of Science citatni percentil %v u kategoriji %q za %d. godinu",
	},
	"scimago.quartile": {
		"en": "Scimago quartile %s in category %q for %d",
		"sr": "Scimago kvartil %s u kategoriji %q za %d. godinu",
	},
	"erih.indexed": {
		"en": "Indexed in ERIH PLUS for %d",
		"sr": "Indeksiran u ERIH PLUS za %d. godinu",
	},
	"regional.first": {
		"en": "Listed in the first category of the regional journal list for %d",
		"sr": "Uvršten u prvu kategoriju regionalne liste časopisa za %d. godinu",
	},
}

type localizer struct{}

var _ contract.Localizer = localizer{} // Compile-time check

// Default returns the localizer over the built-in message catalog.
func Default() contract.Localizer {
	return localizer{}
}

// Resolve renders a template in every configured language. An unknown
// template id falls back to the raw id so a reasoning trail is never empty.
func (localizer) Resolve(templateID string, params ...any) []schema.LocalizedText {
	formats, ok := templates[templateID]
	if !ok {
		out := make([]schema.LocalizedText, 0, len(languages))
		for _, lang := range languages {
			out = append(out, schema.LocalizedText{Lang: lang, Text: templateID})
		}
		return out
	}

	out := make([]schema.LocalizedText, 0, len(languages))
	for _, lang := range languages {
		format, ok := formats[lang]
		if !ok {
			continue
		}
		out = append(out, schema.LocalizedText{Lang: lang, Text: fmt.Sprintf(format, params...)})
	}
	return out
}

package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/veljkom/venuerank/schema"
)

// Rank thresholds per tier, as fractions of the category size. A journal
// matches a tier when rank/total <= threshold.
const (
	wosTopPlusThreshold = 0.05
	wosTopThreshold     = 0.15
	wosUpperThreshold   = 0.35
	wosMidThreshold     = 0.75
	wosLowerThreshold   = 1.0
)

// Rule template identifiers resolved by the localization catalog.
const (
	TemplateWOSFlag       = "wos.flag"
	TemplateWOSRank       = "wos.rank"
	TemplateWOSPercentile = "wos.percentile"
)

// ErrNotRanked marks a rank value carrying the not-ranked marker. It is a
// no-match signal, not an evaluation failure.
var ErrNotRanked = errors.New("venue not ranked in category")

// rankVariants is the fixed preference order of textual rank indicators tried
// by every rank tier: the two-year rank first, then the five-year rank. The
// percentile indicator is consulted last, after both ranks.
var rankVariants = []string{schema.IndicatorRank2, schema.IndicatorRank5}

// wosClassifier implements the citation-rank rules of the Web of Science
// source: five rank tiers plus an explicit leading-journal flag.
type wosClassifier struct{}

// NewWOSClassifier returns the classifier for the Web of Science source.
func NewWOSClassifier() Classifier {
	return wosClassifier{}
}

func (wosClassifier) Source() schema.Source {
	return schema.WOSSource
}

func (wosClassifier) Chain() []Handler {
	return []Handler{
		{Name: "wos-top-plus", Eval: wosTopPlus},
		{Name: "wos-top", Eval: wosRankHandler(schema.TopTier, wosTopThreshold)},
		{Name: "wos-upper", Eval: wosRankHandler(schema.UpperTier, wosUpperThreshold)},
		{Name: "wos-mid", Eval: wosRankHandler(schema.MidTier, wosMidThreshold)},
		{Name: "wos-lower", Eval: wosRankHandler(schema.LowerTier, wosLowerThreshold)},
	}
}

// wosTopPlus grants the plus tier on the explicit leading-journal flag,
// independently of rank, or on a rank within the plus threshold.
func wosTopPlus(in RuleInput) (Outcome, error) {
	if flagged, ok := in.Set.FindBool(schema.IndicatorTopJournal, in.Category, in.Year); ok && flagged {
		return Outcome{
			Matched: true,
			Tier:    schema.TopPlusTier,
			Reasons: []Reason{{TemplateID: TemplateWOSFlag, Params: []any{in.Year}}},
		}, nil
	}
	return wosRankHandler(schema.TopPlusTier, wosTopPlusThreshold)(in)
}

// wosRankHandler builds the rule for one rank tier. Variants are tried in
// preference order and the first one satisfying the threshold matches. A
// malformed variant is remembered but does not stop the remaining variants;
// the error surfaces only when nothing matched, failing just this evaluation.
func wosRankHandler(tier schema.Tier, threshold float64) HandlerFunc {
	return func(in RuleInput) (Outcome, error) {
		var parseErr error

		for _, code := range rankVariants {
			raw, ok := in.Set.FindText(code, in.Category, in.Year)
			if !ok {
				continue
			}
			fraction, err := ParseRankFraction(raw)
			if err != nil {
				if errors.Is(err, ErrNotRanked) {
					continue
				}
				parseErr = fmt.Errorf("indicator %s value %q: %w", code, raw, err)
				continue
			}
			if fraction <= threshold {
				return Outcome{
					Matched: true,
					Tier:    tier,
					Reasons: []Reason{{TemplateID: TemplateWOSRank, Params: []any{raw, in.Category, in.Year}}},
				}, nil
			}
		}

		if percentile, ok := in.Set.FindNumeric(schema.IndicatorPercentile, in.Category, in.Year); ok {
			if percentile < 0 || percentile > 100 {
				parseErr = fmt.Errorf("indicator %s: percentile %v out of range", schema.IndicatorPercentile, percentile)
			} else if 1-percentile/100 <= threshold {
				return Outcome{
					Matched: true,
					Tier:    tier,
					Reasons: []Reason{{TemplateID: TemplateWOSPercentile, Params: []any{percentile, in.Category, in.Year}}},
				}, nil
			}
		}

		if parseErr != nil {
			return NoMatch, parseErr
		}
		return NoMatch, nil
	}
}

// ParseRankFraction parses a "rank/total" textual indicator value into a
// fraction in (0, 1]. A rank prefixed with the not-ranked marker yields
// ErrNotRanked; anything else unparsable is a malformed value.
func ParseRankFraction(raw string) (float64, error) {
	parts := strings.Split(raw, "/")
	if len(parts) != 2 {
		return 0, fmt.Errorf("expected rank/total format")
	}
	rankStr := strings.TrimSpace(parts[0])
	totalStr := strings.TrimSpace(parts[1])

	if strings.HasPrefix(rankStr, schema.NotRankedMarker) {
		return 0, ErrNotRanked
	}

	rank, err := strconv.ParseFloat(rankStr, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid rank: %w", err)
	}
	total, err := strconv.ParseFloat(totalStr, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid total: %w", err)
	}
	if rank <= 0 || total <= 0 {
		return 0, fmt.Errorf("rank and total must be positive")
	}
	if rank > total {
		return 0, fmt.Errorf("rank %v exceeds total %v", rank, total)
	}
	return rank / total, nil
}

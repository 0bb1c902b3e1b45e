package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/veljkom/venuerank/core"
	"github.com/veljkom/venuerank/internal/contract"
	"github.com/veljkom/venuerank/schema"
)

// scoreCmd computes points for a single publication.
var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Compute publication points for a category code.",
	Long: `Look up the point value of a category code, apply author-count scaling,
and print the base and adjusted point values.

The research group selects the point column of the code table. Author-count
scaling kicks in above a work-type threshold (3 for theoretical,
5 for simulation, 7 for experimental and software, 10 for top-tier journals
and patents; monographs and theses are never scaled), with critique codes
reduced to a quarter of the value.

Passing --document consults stored document indicators: a revised author
count recorded by a commission overrides the declared one, and work-type
indicators set the scaling flags.

Examples:
  # A top-journal paper in natural sciences with three authors
  venuerank score --code M21 --group natural --authors 3

  # A social-sciences paper with many authors, scaled
  venuerank score --code M23 --group social --authors 12

  # Use stored document indicators for revision and work type
  venuerank score --code M21 --authors 8 --document 1001`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		codeStr := viper.GetString("code")
		if codeStr == "" {
			contract.LogFatal("Cannot score publication", fmt.Errorf("--code is required"))
		}
		groupStr := viper.GetString("group")
		group := schema.ResearchArea(groupStr)
		if groupStr == "" {
			group = schema.NaturalArea
		}
		if _, ok := schema.ValidResearchAreas[group]; !ok {
			contract.LogFatal("Cannot score publication", fmt.Errorf("unsupported research group %q", groupStr))
		}

		opts := core.ScoreOptions{
			Code:       schema.CategoryCode(codeStr),
			Group:      group,
			Authors:    viper.GetInt("authors"),
			DocumentID: viper.GetInt64("document"),
		}
		if err := core.ExecuteScore(rootCtx, cfg, storeManager, opts); err != nil {
			contract.LogFatal("Cannot score publication", err)
		}
	},
}

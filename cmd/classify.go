package cmd

import (
	"strconv"

	"github.com/spf13/cobra"
	"github.com/veljkom/venuerank/core"
	"github.com/veljkom/venuerank/internal/contract"
)

// classifyCmd runs the classification engine over venues.
var classifyCmd = &cobra.Command{
	Use:   "classify [venue-id...]",
	Short: "Classify venues into rulebook category codes.",
	Long: `Run the handler chain of the selected bibliometric source over venues
and store one category code per (venue, category, year, commission) tuple.

Without arguments, all known venues are classified. Passing one or more
venue ids restricts the run to just those venues.

Re-running with the same year and commission replaces earlier results for
the same tuples, so runs are safe to repeat after new indicator harvests.

Examples:
  # Classify everything from Web of Science data for the default year
  venuerank classify

  # Classify a single venue from Scimago data under the social-sciences variant
  venuerank classify 42 --source scimago --variant social

  # Classify for a specific year and commission, exporting results as JSON
  venuerank classify --year 2024 --commission 3 --output json`,
	Args:    cobra.ArbitraryArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		venueIDs := make([]int64, 0, len(args))
		for _, arg := range args {
			id, err := strconv.ParseInt(arg, 10, 64)
			if err != nil {
				contract.LogFatal("Invalid venue id "+arg, err)
			}
			venueIDs = append(venueIDs, id)
		}
		if err := core.ExecuteClassify(rootCtx, cfg, storeManager, venueIDs); err != nil {
			contract.LogFatal("Cannot run classification", err)
		}
	},
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/veljkom/venuerank/core"
	"github.com/veljkom/venuerank/internal/contract"
)

// indicatorsCmd lists harvested indicators for a venue.
var indicatorsCmd = &cobra.Command{
	Use:   "indicators",
	Short: "List harvested indicators for a venue.",
	Long: `Show the raw bibliometric indicators stored for one venue, restricted to
the selected source and to validity years at or before the assessment year.

This is the exact indicator view the classification engine sees, so it is
the first place to look when a classify result is surprising.

Examples:
  # Web of Science indicators for venue 42
  venuerank indicators --venue 42

  # What the 2023 Scimago run would have seen
  venuerank indicators --venue 42 --source scimago --year 2023`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		venueID := viper.GetInt64("venue")
		if venueID <= 0 {
			contract.LogFatal("Cannot list indicators", fmt.Errorf("--venue is required"))
		}
		if err := core.ExecuteListIndicators(rootCtx, cfg, storeManager, venueID); err != nil {
			contract.LogFatal("Cannot list indicators", err)
		}
	},
}

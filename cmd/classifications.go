package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/veljkom/venuerank/core"
	"github.com/veljkom/venuerank/internal/contract"
	"github.com/veljkom/venuerank/schema"
)

// classificationFilterFromFlags builds a listing filter from the shared flags.
// Unset flags stay nil so the store does not filter on them.
func classificationFilterFromFlags() contract.ClassificationFilter {
	var filter contract.ClassificationFilter
	if venueID := viper.GetInt64("venue"); venueID > 0 {
		filter.VenueID = &venueID
	}
	if year := viper.GetInt("year"); year > 0 {
		filter.Year = &year
	}
	if commission := viper.GetInt64("commission"); commission > 0 {
		filter.CommissionID = &commission
	}
	if codeStr := viper.GetString("code"); codeStr != "" {
		code := schema.CategoryCode(codeStr)
		filter.Code = &code
	}
	return filter
}

// classificationsCmd focused on stored classification results.
var classificationsCmd = &cobra.Command{
	Use:   "classifications",
	Short: "Inspect and export stored classification results",
	Long: `Work with classification results written by earlier classify runs.

Subcommands:
  list   - List stored classifications with optional filters
  export - Export classifications to Parquet for analytics

Examples:
  # Show what a classify run stored
  venuerank classifications list --year 2024

  # Export for analysis in pandas/DuckDB
  venuerank classifications export --output-file results.parquet`,
}

// classificationsListCmd lists stored classifications.
var classificationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored classifications with optional filters",
	Long: `List classifications from the store, filtered by any combination of
venue, year, commission and category code. Results are ordered by venue
and category identifier and capped at the configured limit.

Examples:
  # Everything stored for one venue
  venuerank classifications list --venue 42

  # All M21 results of the 2024 run for commission 3
  venuerank classifications list --code M21 --year 2024 --commission 3

  # Machine-readable output
  venuerank classifications list --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		filter := classificationFilterFromFlags()
		if err := core.ExecuteListClassifications(rootCtx, cfg, storeManager, filter); err != nil {
			contract.LogFatal("Cannot list classifications", err)
		}
	},
}

// classificationsExportCmd exports classifications to a Parquet file.
var classificationsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export classifications to Parquet for BI tools and analytics",
	Long: `Export stored classifications to Parquet format.

Parquet format enables:
- Fast querying with DuckDB, Apache Spark, pandas
- Efficient storage with columnar compression
- Direct import into BI tools

Requires: --output-file parameter

Examples:
  # Export one year's results
  venuerank classifications export --year 2024 --output-file results-2024.parquet

  # Query the export with DuckDB
  duckdb -c "SELECT category_code, count(*) FROM read_parquet('results-2024.parquet') GROUP BY 1"`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		filter := classificationFilterFromFlags()
		exportCfg := cfg.Clone()
		exportCfg.Output = schema.ParquetOut
		if err := core.ExecuteListClassifications(rootCtx, exportCfg, storeManager, filter); err != nil {
			contract.LogFatal("Cannot export classifications", err)
		}
	},
}

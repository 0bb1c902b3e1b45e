package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/veljkom/venuerank/internal/contract"
	"github.com/veljkom/venuerank/internal/iostore"
)

// loadCmd focused on bulk data loading.
var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load venues and indicators from CSV files",
	Long: `Bulk-load harvested data into the store from CSV files.

Subcommands:
  venues     - Load venues (columns: name, issn)
  indicators - Load indicators (columns: venue_id, document_id, code, source,
               category_identifier, valid_from, kind, value)

Indicators are append-only: re-harvesting the same fact writes a new row, and
the classification engine resolves conflicts in favor of the newest row.

Examples:
  # Load venues first, then their indicators
  venuerank load venues venues.csv
  venuerank load indicators wos-2024.csv`,
}

// loadVenuesCmd loads venues from a CSV file.
var loadVenuesCmd = &cobra.Command{
	Use:   "venues <file>",
	Short: "Load venues from a CSV file",
	Long: `Load venue rows from a CSV file with header "name,issn".

Each row is inserted as a new venue and assigned a stable id. Note the ids
printed by later listings: indicator files reference venues by id.

Examples:
  venuerank load venues venues.csv`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		count, err := iostore.LoadVenuesCSV(rootCtx, storeManager.GetStore(), args[0])
		if err != nil {
			contract.LogFatal("Cannot load venues", err)
		}
		fmt.Printf("Loaded %d venues from %s\n", count, args[0])
	},
}

// loadIndicatorsCmd loads indicators from a CSV file.
var loadIndicatorsCmd = &cobra.Command{
	Use:   "indicators <file>",
	Short: "Load indicators from a CSV file",
	Long: `Load indicator rows from a CSV file with header
"venue_id,document_id,code,source,category_identifier,valid_from,kind,value".

Exactly one of venue_id and document_id must be set per row. The kind column
selects how the value column is parsed: numeric, boolean or text.

Examples:
  # Venue-scoped ranking indicators from a Web of Science harvest
  venuerank load indicators wos-2024.csv

  # Document-scoped work-type and author-revision indicators
  venuerank load indicators commission-3-revisions.csv`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		count, err := iostore.LoadIndicatorsCSV(rootCtx, storeManager.GetStore(), args[0])
		if err != nil {
			contract.LogFatal("Cannot load indicators", err)
		}
		fmt.Printf("Loaded %d indicators from %s\n", count, args[0])
	},
}

// Package cmd defines the command-line interface for venuerank.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/veljkom/venuerank/internal/contract"
	"github.com/veljkom/venuerank/schema"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(classificationsCmd)
	rootCmd.AddCommand(indicatorsCmd)
	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(storeCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the classifications subcommands to the parent command
	classificationsCmd.AddCommand(classificationsListCmd)
	classificationsCmd.AddCommand(classificationsExportCmd)

	// Add the load subcommands to the parent load command
	loadCmd.AddCommand(loadVenuesCmd)
	loadCmd.AddCommand(loadIndicatorsCmd)

	// Add the store subcommands to the parent store command
	storeCmd.AddCommand(storeStatusCmd)
	storeCmd.AddCommand(storeClearCmd)
	storeCmd.AddCommand(storeMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().IntP("year", "y", 0, "Assessment year (0 = previous calendar year)")
	rootCmd.PersistentFlags().Int64("commission", contract.DefaultCommission, "Commission identifier")
	rootCmd.PersistentFlags().StringP("source", "s", string(schema.WOSSource), "Bibliometric source: wos or scimago or erihplus or regional")
	rootCmd.PersistentFlags().String("variant", string(schema.DefaultVariant), "Rulebook variant: default or social")
	rootCmd.PersistentFlags().StringP("backend", "b", string(schema.SQLiteBackend), "Persistence backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().StringP("output", "o", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int64("venue", 0, "Venue id to restrict listings to")
	rootCmd.PersistentFlags().String("code", "", "Category code, e.g. M21")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of results to display")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("emoji", "yes", "Enable emoji in log output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of scoreCmd to Viper
	scoreCmd.Flags().String("group", string(schema.NaturalArea), "Research group: natural or social or humanities")
	scoreCmd.Flags().IntP("authors", "a", 1, "Declared author count")
	scoreCmd.Flags().Int64P("document", "d", 0, "Document id whose indicators revise the score inputs")
	if err := viper.BindPFlags(scoreCmd.Flags()); err != nil {
		contract.LogFatal("Error binding score flags", err)
	}

	// Bind all flags of storeMigrateCmd to Viper
	storeMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(storeMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding store migrate flags", err)
	}
}

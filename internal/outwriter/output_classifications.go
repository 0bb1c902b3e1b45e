package outwriter

import (
	"fmt"
	"io"

	"github.com/veljkom/venuerank/internal/contract"
	"github.com/veljkom/venuerank/internal/parquet"
	"github.com/veljkom/venuerank/schema"
)

// WriteClassificationList outputs stored classifications, dispatching based on
// the output format configured. Parquet output requires an output file.
func WriteClassificationList(items []schema.Classification, names map[int64]string, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeClassificationJSON(w, items, names)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeClassificationCSV(w, items, names)
		}, "Wrote CSV")
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return fmt.Errorf("parquet output requires an output file")
		}
		return parquet.WriteClassificationsParquet(cfg.OutputFile, items, names)
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			if err := writeClassificationTable(items, names, cfg, w); err != nil {
				return err
			}
			_, err := fmt.Fprintf(w, "Showing %d classifications\n", len(items))
			return err
		}, "Wrote table")
	}
}

// writeClassificationJSON writes classification rows in JSON format.
func writeClassificationJSON(w io.Writer, items []schema.Classification, names map[int64]string) error {
	// Prepare the data structure for JSON with venue name and label added
	type JSONClassification struct {
		Venue string `json:"venue"`
		Label string `json:"label"`
		schema.Classification
	}

	output := make([]JSONClassification, len(items))
	for i, c := range items {
		output[i] = JSONClassification{
			Venue:          venueName(names, c.VenueID),
			Label:          contract.GetPlainCodeLabel(c.Code),
			Classification: c,
		}
	}

	return writeJSON(w, output)
}

// Package parquet provides data structures and functions for exporting
// classification data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/veljkom/venuerank/schema"
)

// ClassificationRecord represents a single stored classification row for export.
// This struct maps to the venuerank_classifications database table, flattened
// with the venue name and per-language reasoning columns.
type ClassificationRecord struct {
	// ClassificationID is the unique identifier of the stored row
	ClassificationID int64 `parquet:"classification_id,snappy"`

	// VenueID references the classified venue
	VenueID int64 `parquet:"venue_id,snappy"`

	// VenueName is the display name of the venue at export time (nullable)
	VenueName *string `parquet:"venue_name,optional,snappy"`

	// CategoryIdentifier is the source-side category the code applies to (nullable)
	CategoryIdentifier *string `parquet:"category_identifier,optional,snappy"`

	// Year is the assessment year the classification was computed for
	Year int32 `parquet:"year,snappy"`

	// CommissionID identifies the commission whose rulebook variant applied
	CommissionID int64 `parquet:"commission_id,snappy"`

	// CategoryCode is the published code, e.g. M21a or M23
	CategoryCode string `parquet:"category_code,snappy"`

	// ReasoningEn is the English justification (nullable)
	ReasoningEn *string `parquet:"reasoning_en,optional,snappy"`

	// ReasoningSr is the Serbian justification (nullable)
	ReasoningSr *string `parquet:"reasoning_sr,optional,snappy"`

	// CreatedAt is when the row was written (stored as TIMESTAMP with nanosecond precision)
	CreatedAt time.Time `parquet:"created_at,snappy"`
}

// WriteClassificationsParquet converts classification rows and writes them to a Parquet file.
func WriteClassificationsParquet(outputPath string, items []schema.Classification, names map[int64]string) error {
	return WriteClassificationRecordsParquet(ConvertClassifications(items, names), outputPath)
}

// WriteClassificationRecordsParquet writes a slice of ClassificationRecord structs to a Parquet file.
func WriteClassificationRecordsParquet(data []ClassificationRecord, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the ClassificationRecord struct tags
	writer := parquet.NewGenericWriter[ClassificationRecord](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	// The Write method accepts a variadic slice
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertClassifications converts schema.Classification rows to ClassificationRecord for Parquet export.
func ConvertClassifications(items []schema.Classification, names map[int64]string) []ClassificationRecord {
	result := make([]ClassificationRecord, len(items))
	for i, c := range items {
		record := ClassificationRecord{
			ClassificationID: c.ID,
			VenueID:          c.VenueID,
			Year:             int32(c.Year),
			CommissionID:     c.CommissionID,
			CategoryCode:     string(c.Code),
			CreatedAt:        c.CreatedAt,
		}
		if name, ok := names[c.VenueID]; ok && name != "" {
			record.VenueName = &name
		}
		if c.CategoryIdentifier != "" {
			identifier := c.CategoryIdentifier
			record.CategoryIdentifier = &identifier
		}
		for _, r := range c.Reasoning {
			text := r.Text
			switch r.Lang {
			case "en":
				record.ReasoningEn = &text
			case "sr":
				record.ReasoningSr = &text
			}
		}
		result[i] = record
	}
	return result
}

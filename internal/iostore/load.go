package iostore

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/veljkom/venuerank/internal/contract"
	"github.com/veljkom/venuerank/schema"
)

// venueCSVHeader is the expected header of a venue load file.
var venueCSVHeader = []string{"name", "issn"}

// indicatorCSVHeader is the expected header of an indicator load file. Exactly
// one of venue_id and document_id must be set per row.
var indicatorCSVHeader = []string{
	"venue_id", "document_id", "code", "source",
	"category_identifier", "valid_from", "kind", "value",
}

// LoadVenuesCSV reads venues from a CSV file and inserts them into the store.
// Returns the number of venues written.
func LoadVenuesCSV(ctx context.Context, store contract.Store, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open venue file: %w", err)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	if err := readHeader(reader, venueCSVHeader); err != nil {
		return 0, err
	}

	count := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			return count, nil
		}
		if err != nil {
			return count, fmt.Errorf("failed to read venue row %d: %w", count+1, err)
		}

		v := schema.Venue{
			Name:      strings.TrimSpace(record[0]),
			ISSN:      strings.TrimSpace(record[1]),
			CreatedAt: time.Now().UTC(),
		}
		if v.Name == "" {
			return count, fmt.Errorf("venue row %d has an empty name", count+1)
		}
		if _, err := store.PutVenue(ctx, v); err != nil {
			return count, fmt.Errorf("failed to store venue %q: %w", v.Name, err)
		}
		count++
	}
}

// LoadIndicatorsCSV reads indicators from a CSV file and inserts them into the
// store. Returns the number of indicators written.
func LoadIndicatorsCSV(ctx context.Context, store contract.Store, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open indicator file: %w", err)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	if err := readHeader(reader, indicatorCSVHeader); err != nil {
		return 0, err
	}

	count := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			return count, nil
		}
		if err != nil {
			return count, fmt.Errorf("failed to read indicator row %d: %w", count+1, err)
		}

		ind, err := parseIndicatorRecord(record)
		if err != nil {
			return count, fmt.Errorf("indicator row %d: %w", count+1, err)
		}
		if _, err := store.PutIndicator(ctx, ind); err != nil {
			return count, fmt.Errorf("failed to store indicator %q: %w", ind.Code, err)
		}
		count++
	}
}

// readHeader consumes and validates the first record of a load file.
func readHeader(reader *csv.Reader, expected []string) error {
	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("failed to read header: %w", err)
	}
	if len(header) != len(expected) {
		return fmt.Errorf("expected %d header columns, got %d", len(expected), len(header))
	}
	for i, col := range expected {
		if strings.TrimSpace(header[i]) != col {
			return fmt.Errorf("expected header column %d to be %q, got %q", i+1, col, header[i])
		}
	}
	return nil
}

// parseIndicatorRecord converts one CSV record into an indicator, validating
// the subject, source and value kind.
func parseIndicatorRecord(record []string) (schema.Indicator, error) {
	ind := schema.Indicator{
		Code:               strings.TrimSpace(record[2]),
		Source:             schema.Source(strings.TrimSpace(record[3])),
		CategoryIdentifier: strings.TrimSpace(record[4]),
		Kind:               schema.ValueKind(strings.TrimSpace(record[6])),
		HarvestedAt:        time.Now().UTC(),
	}
	if ind.Code == "" {
		return ind, fmt.Errorf("indicator code is empty")
	}
	if _, ok := schema.ValidSources[ind.Source]; !ok {
		return ind, fmt.Errorf("unsupported source %q", ind.Source)
	}

	venueField := strings.TrimSpace(record[0])
	documentField := strings.TrimSpace(record[1])
	switch {
	case venueField != "" && documentField != "":
		return ind, fmt.Errorf("both venue_id and document_id are set")
	case venueField != "":
		id, err := strconv.ParseInt(venueField, 10, 64)
		if err != nil {
			return ind, fmt.Errorf("invalid venue_id %q: %w", venueField, err)
		}
		ind.VenueID = &id
	case documentField != "":
		id, err := strconv.ParseInt(documentField, 10, 64)
		if err != nil {
			return ind, fmt.Errorf("invalid document_id %q: %w", documentField, err)
		}
		ind.DocumentID = &id
	default:
		return ind, fmt.Errorf("neither venue_id nor document_id is set")
	}

	validFrom, err := strconv.Atoi(strings.TrimSpace(record[5]))
	if err != nil {
		return ind, fmt.Errorf("invalid valid_from %q: %w", record[5], err)
	}
	ind.ValidFrom = validFrom

	value := strings.TrimSpace(record[7])
	switch ind.Kind {
	case schema.NumericKind:
		num, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return ind, fmt.Errorf("invalid numeric value %q: %w", value, err)
		}
		ind.NumericValue = num
	case schema.BooleanKind:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return ind, fmt.Errorf("invalid boolean value %q: %w", value, err)
		}
		ind.BoolValue = b
	case schema.TextKind:
		ind.TextValue = value
	default:
		return ind, fmt.Errorf("unsupported value kind %q", ind.Kind)
	}

	return ind, nil
}

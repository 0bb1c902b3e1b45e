package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/veljkom/venuerank/internal/contract"
	"github.com/veljkom/venuerank/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteIndicatorList outputs harvested indicators, dispatching based on the output format configured.
func WriteIndicatorList(items []schema.Indicator, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, items)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeIndicatorCSV(w, items, fmtFloat)
		}, "Wrote CSV")
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeIndicatorTable(items, fmtFloat, w)
		}, "Wrote table")
	}
}

// indicatorValue renders the typed indicator payload as a single string.
func indicatorValue(ind schema.Indicator, fmtFloat func(float64) string) string {
	switch ind.Kind {
	case schema.NumericKind:
		return fmtFloat(ind.NumericValue)
	case schema.BooleanKind:
		return strconv.FormatBool(ind.BoolValue)
	default:
		return ind.TextValue
	}
}

// writeIndicatorTable generates and writes the human-readable indicator table.
func writeIndicatorTable(items []schema.Indicator, fmtFloat func(float64) string, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"ID", "Code", "Source", "Category", "From", "Kind", "Value"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignLeft
	})

	var data [][]string
	for _, ind := range items {
		row := []string{
			strconv.FormatInt(ind.ID, 10),
			ind.Code,
			string(ind.Source),
			contract.TruncateText(ind.CategoryIdentifier, 30),
			strconv.Itoa(ind.ValidFrom),
			string(ind.Kind),
			indicatorValue(ind, fmtFloat),
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(writer, "Showing %d indicators\n", len(items))
	return err
}

// writeIndicatorCSV writes harvested indicators in CSV format.
func writeIndicatorCSV(w io.Writer, items []schema.Indicator, fmtFloat func(float64) string) error {
	header := []string{
		"id",
		"venue_id",
		"document_id",
		"code",
		"source",
		"category_identifier",
		"valid_from",
		"kind",
		"value",
		"harvested_at",
	}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, ind := range items {
			var venueID, documentID string
			if ind.VenueID != nil {
				venueID = strconv.FormatInt(*ind.VenueID, 10)
			}
			if ind.DocumentID != nil {
				documentID = strconv.FormatInt(*ind.DocumentID, 10)
			}
			rec := []string{
				strconv.FormatInt(ind.ID, 10),
				venueID,
				documentID,
				ind.Code,
				string(ind.Source),
				ind.CategoryIdentifier,
				strconv.Itoa(ind.ValidFrom),
				string(ind.Kind),
				indicatorValue(ind, fmtFloat),
				ind.HarvestedAt.Format("2006-01-02 15:04:05"),
			}
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

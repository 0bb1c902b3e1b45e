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

// WriteRunSummary outputs a classification run, dispatching based on the output format configured.
func WriteRunSummary(summary schema.RunSummary, names map[int64]string, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, summary)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeClassificationCSV(w, summary.Results, names)
		}, "Wrote CSV")
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSummaryTable(summary, names, cfg, w)
		}, "Wrote table")
	}
}

// writeSummaryTable generates and writes the human-readable run table.
func writeSummaryTable(summary schema.RunSummary, names map[int64]string, cfg *contract.Config, writer io.Writer) error {
	if err := writeClassificationTable(summary.Results, names, cfg, writer); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Classified %d of %d venues from source %s (unclassified pairs: %d)\n",
		summary.Classified, summary.VenuesSeen, summary.Source, summary.Unclassified); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Assessment year: %d, commission: %d\n",
		summary.Year, summary.CommissionID); err != nil {
		return err
	}
	return nil
}

// writeClassificationTable renders classification rows as a table.
func writeClassificationTable(items []schema.Classification, names map[int64]string, cfg *contract.Config, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Venue", "Category", "Year", "Code", "Label", "Reasoning"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignLeft
	})

	maxNameWidth := GetMaxTableNameWidth(cfg)

	var data [][]string
	for _, c := range items {
		label := contract.GetPlainCodeLabel(c.Code)
		if cfg.UseColors {
			label = contract.GetColorCodeLabel(c.Code)
		}
		row := []string{
			contract.TruncateText(venueName(names, c.VenueID), maxNameWidth),
			c.CategoryIdentifier,
			strconv.Itoa(c.Year),
			string(c.Code),
			label,
			contract.TruncateText(firstReasonText(c.Reasoning, "en"), 40),
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeClassificationCSV writes classification rows in CSV format.
func writeClassificationCSV(w io.Writer, items []schema.Classification, names map[int64]string) error {
	header := []string{
		"venue_id",
		"venue",
		"category_identifier",
		"year",
		"commission_id",
		"code",
		"label",
		"reasoning_en",
		"reasoning_sr",
	}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, c := range items {
			rec := []string{
				strconv.FormatInt(c.VenueID, 10),
				venueName(names, c.VenueID),
				c.CategoryIdentifier,
				strconv.Itoa(c.Year),
				strconv.FormatInt(c.CommissionID, 10),
				string(c.Code),
				contract.GetPlainCodeLabel(c.Code),
				firstReasonText(c.Reasoning, "en"),
				firstReasonText(c.Reasoning, "sr"),
			}
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

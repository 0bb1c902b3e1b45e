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

// WriteScoreResult outputs a points computation, dispatching based on the output format configured.
func WriteScoreResult(result schema.ScoreResult, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeScoreCSV(w, result, fmtFloat)
		}, "Wrote CSV")
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeScoreTable(result, cfg, fmtFloat, w)
		}, "Wrote table")
	}
}

// writeScoreTable generates and writes the human-readable score table.
func writeScoreTable(result schema.ScoreResult, cfg *contract.Config, fmtFloat func(float64) string, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Code", "Label", "Group", "Base", "Adjusted", "Authors", "Threshold"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	label := contract.GetPlainCodeLabel(result.Code)
	if cfg.UseColors {
		label = contract.GetColorCodeLabel(result.Code)
	}

	data := [][]string{{
		string(result.Code),
		label,
		string(result.Group),
		fmtFloat(result.BasePoints),
		fmtFloat(result.AdjustedPoints),
		strconv.Itoa(result.AuthorCount),
		strconv.Itoa(result.Threshold),
	}}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if result.Threshold == 0 {
		_, err := fmt.Fprintln(writer, "Points are not scaled for this code class.")
		return err
	}
	if result.AuthorCount <= result.Threshold {
		_, err := fmt.Fprintf(writer, "Author count %d is within the threshold of %d, full points awarded.\n",
			result.AuthorCount, result.Threshold)
		return err
	}
	_, err := fmt.Fprintf(writer, "Author count %d exceeds the threshold of %d, points scaled down.\n",
		result.AuthorCount, result.Threshold)
	return err
}

// writeScoreCSV writes the points computation in CSV format.
func writeScoreCSV(w io.Writer, result schema.ScoreResult, fmtFloat func(float64) string) error {
	header := []string{
		"code",
		"label",
		"group",
		"base_points",
		"adjusted_points",
		"author_count",
		"threshold",
	}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		rec := []string{
			string(result.Code),
			contract.GetPlainCodeLabel(result.Code),
			string(result.Group),
			fmtFloat(result.BasePoints),
			fmtFloat(result.AdjustedPoints),
			strconv.Itoa(result.AuthorCount),
			strconv.Itoa(result.Threshold),
		}
		return csvWriter.Write(rec)
	})
}

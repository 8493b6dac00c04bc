package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ArnoudNL/ris-file-analyzer/internal/dedupe"
)

// Render writes the analysis report as CSV: the source filename, summary
// statistics, the database breakdown, and one detail row per unique
// entry in first-seen order. Fields containing commas, quotes, or
// newlines are quoted per RFC 4180.
func Render(w io.Writer, source string, entries []dedupe.Entry, sum Summary) error {
	cw := csv.NewWriter(w)

	rows := [][]string{
		{"Source File", source},
		{},
		{"Records identified", strconv.Itoa(sum.Total)},
		{"Duplicate records removed", strconv.Itoa(sum.Duplicates)},
		{"Records screened", strconv.Itoa(sum.Unique)},
		{"Database Sources", strconv.Itoa(sum.DatabaseSources)},
		{"Journal Sources", strconv.Itoa(sum.JournalSources)},
		{},
		{"Database Summary", formatBreakdown(sum.Breakdown)},
		{},
		{"Title", "DOI", "Frequency"},
	}
	for _, e := range entries {
		rows = append(rows, []string{e.Title, e.DOI, strconv.Itoa(e.Frequency)})
	}

	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing report row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// formatBreakdown joins the breakdown as "name (count)" pairs in the
// summarizer's sorted order.
func formatBreakdown(breakdown []DatabaseCount) string {
	parts := make([]string, len(breakdown))
	for i, dc := range breakdown {
		parts[i] = fmt.Sprintf("%s (%d)", dc.Name, dc.Count)
	}
	return strings.Join(parts, ", ")
}

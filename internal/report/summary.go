// Package report computes summary statistics and renders the CSV report.
package report

import (
	"sort"

	"github.com/ArnoudNL/ris-file-analyzer/internal/dedupe"
)

// DatabaseCount is one element of the database breakdown.
type DatabaseCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Summary holds the aggregate statistics for one analyzed file.
type Summary struct {
	Total           int             `json:"total"`
	Duplicates      int             `json:"duplicates"`
	Unique          int             `json:"unique"`
	DatabaseSources int             `json:"database_sources"`
	JournalSources  int             `json:"journal_sources"`
	Breakdown       []DatabaseCount `json:"database_breakdown,omitempty"`
}

// Summarize computes the summary statistics over the unique entries.
// The database breakdown counts unique entries per non-empty database,
// sorted by descending count then ascending name so rendering is
// deterministic.
func Summarize(entries []dedupe.Entry) Summary {
	sum := Summary{Unique: len(entries)}

	databases := make(map[string]int)
	journals := make(map[string]bool)

	for _, e := range entries {
		sum.Total += e.Frequency
		if e.Database != "" {
			databases[e.Database]++
		}
		if e.Journal != "" {
			journals[e.Journal] = true
		}
	}

	sum.Duplicates = sum.Total - sum.Unique
	sum.DatabaseSources = len(databases)
	sum.JournalSources = len(journals)

	for name, count := range databases {
		sum.Breakdown = append(sum.Breakdown, DatabaseCount{Name: name, Count: count})
	}
	sort.Slice(sum.Breakdown, func(i, j int) bool {
		if sum.Breakdown[i].Count != sum.Breakdown[j].Count {
			return sum.Breakdown[i].Count > sum.Breakdown[j].Count
		}
		return sum.Breakdown[i].Name < sum.Breakdown[j].Name
	})

	return sum
}

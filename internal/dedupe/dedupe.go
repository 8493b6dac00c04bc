// Package dedupe collapses citations that share a normalized title.
package dedupe

import (
	"strings"

	"github.com/ArnoudNL/ris-file-analyzer/internal/ris"
)

// Entry is the aggregation result for one distinct normalized title.
// All fields keep the values of the first citation seen for the title.
type Entry struct {
	Title     string `json:"title"`
	DOI       string `json:"doi"`
	Database  string `json:"database"`
	Journal   string `json:"journal"`
	Frequency int    `json:"frequency"`
}

// NormalizeTitle produces the deduplication key: lowercased and trimmed.
func NormalizeTitle(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}

// Aggregate folds citations left to right into entries keyed by
// normalized title, preserving first-seen order of distinct titles.
// Later duplicates only increment the frequency; their DOI, database,
// and journal values are discarded even when the first-seen ones were
// empty. Citations with no title all collapse into a single entry.
func Aggregate(citations []ris.Citation) []Entry {
	index := make(map[string]int)
	var entries []Entry

	for _, c := range citations {
		key := NormalizeTitle(c.Title)
		if i, ok := index[key]; ok {
			entries[i].Frequency++
			continue
		}
		index[key] = len(entries)
		entries = append(entries, Entry{
			Title:     c.Title,
			DOI:       c.DOI,
			Database:  c.Database,
			Journal:   c.Journal,
			Frequency: 1,
		})
	}

	return entries
}

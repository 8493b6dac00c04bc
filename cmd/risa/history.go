package main

import (
	"fmt"
	"os"

	"github.com/ArnoudNL/ris-file-analyzer/internal/catalog"
	"github.com/ArnoudNL/ris-file-analyzer/internal/config"
	"github.com/spf13/cobra"
)

var (
	historyLimit     int
	historyOutputDir string
	historySource    string
)

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of runs to list")
	historyCmd.Flags().StringVar(&historyOutputDir, "output-dir", "", "Directory holding the catalog (default from config)")
	historyCmd.Flags().StringVar(&historySource, "source", "", "List only runs for this source file")
	rootCmd.AddCommand(historyCmd)
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded analysis runs",
	Long: `List analysis runs recorded in the catalog.

Examples:
  risa history
  risa history --limit 5
  risa history --source citations.ris`,
	RunE: runHistory,
}

// HistoryResponse is the JSON response for the history command.
type HistoryResponse struct {
	Runs []catalog.Run `json:"runs"`
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	catalogPath := config.CatalogPath(cfg.ResolveOutputDir(historyOutputDir))

	// Don't create an empty catalog just to list it.
	if _, err := os.Stat(catalogPath); os.IsNotExist(err) {
		printHistory(nil)
		return nil
	}

	db, err := catalog.Open(catalogPath)
	if err != nil {
		exitWithError(ExitDataError, "opening catalog: %v", err)
	}
	defer db.Close()

	var runs []catalog.Run
	if historySource != "" {
		runs, err = db.BySource(historySource)
		if err == nil && len(runs) > historyLimit {
			runs = runs[:historyLimit]
		}
	} else {
		runs, err = db.Recent(historyLimit)
	}
	if err != nil {
		exitWithError(ExitDataError, "listing runs: %v", err)
	}

	printHistory(runs)
	return nil
}

func printHistory(runs []catalog.Run) {
	if !humanOutput {
		if runs == nil {
			runs = []catalog.Run{}
		}
		outputJSON(HistoryResponse{Runs: runs})
		return
	}

	if len(runs) == 0 {
		fmt.Println("No analysis runs recorded.")
		return
	}

	for _, run := range runs {
		fmt.Printf("%s  %s\n", run.AnalyzedAt.Format("2006-01-02 15:04"), truncateString(run.SourceFile, 60))
		fmt.Printf("   %d records, %d duplicates removed, %d screened\n", run.Total, run.Duplicates, run.Unique)
		fmt.Printf("   → %s\n\n", run.OutputFile)
	}
}

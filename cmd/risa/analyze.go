package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ArnoudNL/ris-file-analyzer/internal/catalog"
	"github.com/ArnoudNL/ris-file-analyzer/internal/config"
	"github.com/ArnoudNL/ris-file-analyzer/internal/dedupe"
	"github.com/ArnoudNL/ris-file-analyzer/internal/report"
	"github.com/ArnoudNL/ris-file-analyzer/internal/ris"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	analyzeOutputDir string
	analyzeStdout    bool
	analyzeNoCatalog bool
)

func init() {
	// Allow RISA_* overrides from a local .env file.
	_ = godotenv.Load()

	analyzeCmd.Flags().StringVar(&analyzeOutputDir, "output-dir", "", "Directory for the report (default from config, else \"analysis\")")
	analyzeCmd.Flags().BoolVar(&analyzeStdout, "stdout", false, "Print the report to stdout instead of writing a file")
	analyzeCmd.Flags().BoolVar(&analyzeNoCatalog, "no-catalog", false, "Skip recording the run in the catalog")
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file.ris>",
	Short: "Analyze a RIS file and write a CSV report",
	Long: `Analyze a RIS citation export file.

Parses the tagged records, collapses citations sharing a normalized
title, and writes <base>_analysis.csv with summary statistics, a
database breakdown, and one row per unique citation.

Examples:
  risa analyze citations.ris
  risa analyze citations.ris --output-dir reports
  risa analyze citations.ris --stdout`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

// AnalyzeResponse is the JSON response for the analyze command.
type AnalyzeResponse struct {
	Status  string         `json:"status"`
	Source  string         `json:"source"`
	Output  string         `json:"output,omitempty"`
	Summary report.Summary `json:"summary"`
	Warning string         `json:"warning,omitempty"`
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	data, err := os.ReadFile(inputPath)
	if err != nil {
		exitWithError(ExitError, "reading file: %v", err)
	}

	citations := ris.Parse(data)
	entries := dedupe.Aggregate(citations)
	sum := report.Summarize(entries)

	sourceName := filepath.Base(inputPath)

	var warning string
	if sum.Total == 0 {
		warning = "no records parsed from input"
		warn("%s: %s", inputPath, warning)
	}

	if analyzeStdout {
		if err := report.Render(os.Stdout, sourceName, entries, sum); err != nil {
			exitWithError(ExitError, "rendering report: %v", err)
		}
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	outDir := cfg.ResolveOutputDir(analyzeOutputDir)
	if err := os.MkdirAll(outDir, 0755); err != nil {
		exitWithError(ExitError, "creating output directory: %v", err)
	}

	// Render fully in memory so a failed write never leaves a partial report.
	var buf bytes.Buffer
	if err := report.Render(&buf, sourceName, entries, sum); err != nil {
		exitWithError(ExitError, "rendering report: %v", err)
	}

	outPath := filepath.Join(outDir, outputFileName(inputPath))
	if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
		exitWithError(ExitError, "writing report: %v", err)
	}

	// The report is already on disk; a catalog failure is not fatal.
	if cfg.CatalogEnabled(analyzeNoCatalog) {
		if err := recordRun(config.CatalogPath(outDir), inputPath, outPath, sum); err != nil {
			warn("recording run: %v", err)
		}
	}

	if humanOutput {
		fmt.Printf("✓ Analysis exported to: %s\n", outPath)
	} else {
		outputJSON(AnalyzeResponse{
			Status:  "ok",
			Source:  inputPath,
			Output:  outPath,
			Summary: sum,
			Warning: warning,
		})
	}

	return nil
}

// outputFileName derives "<base>_analysis.csv" from the input path.
func outputFileName(inputPath string) string {
	base := filepath.Base(inputPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return stem + "_analysis.csv"
}

// recordRun stores the run in the catalog database.
func recordRun(catalogPath, sourceFile, outputFile string, sum report.Summary) error {
	db, err := catalog.Open(catalogPath)
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = db.Record(catalog.Run{
		SourceFile: sourceFile,
		OutputFile: outputFile,
		Total:      sum.Total,
		Duplicates: sum.Duplicates,
		Unique:     sum.Unique,
	})
	return err
}

package cli

import (
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"vigprep/internal/config"
	"vigprep/internal/corpus"
	"vigprep/internal/quality"
)

// runCheck builds the handler for the check command.
func runCheck(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		datasetPath := flags.String("dataset", "", "Path to the dataset to check")
		configPath := flags.String("config", "", "Path to config file")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			return ExitUsage
		}
		if *datasetPath == "" {
			fmt.Fprintln(stderr, "Missing --dataset")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		cfg, _, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		ds, err := corpus.LoadDataset(*datasetPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load dataset: %v\n", err)
			return ExitError
		}

		report := quality.Evaluate(ds.Records, quality.Params{
			MinStemLength: cfg.StemLength.Min,
			MaxStemLength: cfg.StemLength.Max,
			Quota:         config.Quota(cfg),
		})
		printQualityReport(stdout, report)

		if !report.Passed {
			return ExitError
		}
		return ExitOK
	}
}

func printQualityReport(w io.Writer, report quality.Report) {
	fmt.Fprintf(w, "Checked %d records\n", report.Total)
	for _, check := range report.Checks {
		verdict := "PASS"
		if !check.Passed {
			verdict = "FAIL"
		}
		fmt.Fprintf(w, "  %-22s %s\n", check.Name, verdict)
		for _, detail := range check.Details {
			fmt.Fprintf(w, "    %s\n", detail)
		}
	}
	fmt.Fprintf(w, "Lengths: mean %.0f median %d min %d max %d\n",
		report.Lengths.Mean, report.Lengths.Median, report.Lengths.Min, report.Lengths.Max)
	fmt.Fprintf(w, "Categories: %s\n", formatCounts(report.CategoryCounts))
	if report.Passed {
		fmt.Fprintln(w, "Overall: PASS")
	} else {
		fmt.Fprintln(w, "Overall: FAIL")
	}
}

func formatCounts(counts map[string]int) string {
	parts := make([]string, 0, len(counts))
	for _, category := range sortedCategories(counts) {
		parts = append(parts, fmt.Sprintf("%s=%d", category, counts[category]))
	}
	return strings.Join(parts, " ")
}

func sortedCategories(counts map[string]int) []string {
	categories := make([]string, 0, len(counts))
	for category := range counts {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}

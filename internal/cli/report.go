package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"path/filepath"

	"vigprep/internal/report"
)

// runReport builds the handler for the report command.
func runReport(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		runRef := flags.String("run", "", "Run ID or run directory (default: latest run)")
		configPath := flags.String("config", "", "Path to config file")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			return ExitUsage
		}

		cfg, resolvedConfig, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		outputDir := resolveOutputDir(cfg, resolvedConfig)

		results, runDir, err := report.ResolveRun(outputDir, *runRef)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to resolve run: %v\n", err)
			return ExitError
		}
		reportPath := filepath.Join(runDir, "report.html")
		if err := report.WriteFile(context.Background(), reportPath, results); err != nil {
			fmt.Fprintf(stderr, "Failed to write report: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Report: %s\n", reportPath)
		return ExitOK
	}
}

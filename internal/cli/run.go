package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"vigprep/internal/duckdb"
	"vigprep/internal/pipeline"
	"vigprep/internal/report"
	"vigprep/internal/ui/live"
)

// pipelineRun is a test seam for executing the pipeline.
var pipelineRun = pipeline.Run

// runRun builds the handler for the run command.
func runRun(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		corpusPath := flags.String("corpus", "", "Path to the raw corpus file (default: from config)")
		configPath := flags.String("config", "", "Path to config file")
		uiMode := flags.String("ui", "auto", "UI mode: auto, live, or plain")
		redistribute := flags.Bool("redistribute", false, "Top up quota shortfalls from unused survivors")
		noStore := flags.Bool("no-store", false, "Skip ingesting the run into the DuckDB store")
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

		decision, err := resolveUIMode(*uiMode, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		var store *duckdb.Store
		if !*noStore {
			if err := os.MkdirAll(outputDir, 0o755); err != nil {
				fmt.Fprintf(stderr, "Failed to create output dir: %v\n", err)
				return ExitError
			}
			store, err = duckdb.Open(pipeline.StorePath(outputDir))
			if err != nil {
				fmt.Fprintf(stderr, "Failed to open run store: %v\n", err)
				return ExitError
			}
			defer store.Close()
		}

		var observer pipeline.Observer
		var controller *live.Controller
		if decision.useLive {
			controller = live.Start(stdout, live.Options{})
			observer = controller
		} else {
			observer = &plainObserver{out: stdout}
		}

		output, err := pipelineRun(context.Background(), cfg, pipeline.RunParams{
			CorpusPath:   *corpusPath,
			Redistribute: *redistribute,
			Store:        store,
			Observer:     observer,
		})
		if controller != nil {
			controller.Close()
			controller.Wait()
		}
		if err != nil {
			fmt.Fprintf(stderr, "Run failed: %v\n", err)
			return ExitError
		}

		paths, err := pipeline.WriteRunOutputs(output, outputDir)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to write outputs: %v\n", err)
			return ExitError
		}
		if err := report.WriteFile(context.Background(), paths.ReportPath(), output.Results); err != nil {
			fmt.Fprintf(stderr, "Failed to write report: %v\n", err)
			return ExitError
		}

		fmt.Fprintf(stdout, "Run %s completed\n", output.Results.RunID)
		fmt.Fprintf(stdout, "Selected: %s\n", paths.SelectedPath())
		fmt.Fprintf(stdout, "Results: %s\n", paths.ResultsPath())
		fmt.Fprintf(stdout, "Report: %s\n", paths.ReportPath())
		if !output.Results.Passed {
			fmt.Fprintln(stderr, "Quality checks failed")
			return ExitError
		}
		return ExitOK
	}
}

// plainObserver prints stage progress as plain lines.
type plainObserver struct {
	out io.Writer
}

func (o *plainObserver) OnRunStart(runID string, corpusPath string) {
	fmt.Fprintf(o.out, "Run %s on %s\n", runID, corpusPath)
}

func (o *plainObserver) OnStageStart(stage pipeline.Stage) {
	fmt.Fprintf(o.out, "  %s...\n", stage)
}

func (o *plainObserver) OnStageEnd(stage pipeline.Stage, count int) {
	fmt.Fprintf(o.out, "  %s done (%d)\n", stage, count)
}

func (o *plainObserver) OnRunEnd(results pipeline.Results) {
	verdict := "PASSED"
	if !results.Passed {
		verdict = "FAILED"
	}
	fmt.Fprintf(o.out, "Run finished: %s (%d selected)\n", verdict, results.Selected)
}

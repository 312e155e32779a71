package cli

import (
	"flag"
	"fmt"
	"io"

	"vigprep/internal/classify"
	"vigprep/internal/corpus"
)

// runRecategorize builds the handler for the recategorize command.
func runRecategorize(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		datasetPath := flags.String("dataset", "", "Path to the dataset to recategorize")
		outPath := flags.String("out", "", "Write the recategorized dataset to this path")
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

		ds, err := corpus.LoadDataset(*datasetPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load dataset: %v\n", err)
			return ExitError
		}

		classifier, err := classify.NewDiagnosis(classify.DefaultDiagnosisTable())
		if err != nil {
			fmt.Fprintf(stderr, "Invalid diagnosis table: %v\n", err)
			return ExitError
		}
		relabeled, changes := classifier.Reassign(ds.Records)

		fmt.Fprintf(stdout, "Recategorized %d of %d records\n", len(changes), len(ds.Records))
		for _, change := range changes {
			fmt.Fprintf(stdout, "  %s: %s -> %s\n", change.ID, change.Old, change.New)
		}

		if *outPath != "" {
			out := corpus.Dataset{Version: 1, Records: relabeled}
			if err := corpus.WriteDataset(*outPath, out); err != nil {
				fmt.Fprintf(stderr, "Failed to write dataset: %v\n", err)
				return ExitError
			}
			fmt.Fprintf(stdout, "Wrote %s\n", *outPath)
		}
		return ExitOK
	}
}

package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"vigprep/internal/config"
	"vigprep/internal/corpus"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file (default: search for .vigprep/config.yml)")
		datasetPath := flags.String("dataset", "", "Dataset file to validate against the schema")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if flags.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		resolved, err := resolveConfigPath(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
			return ExitError
		}

		if _, err := config.Load(resolved); err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%s\n", err.Error())
			return ExitError
		}
		fmt.Fprintln(stdout, "Config OK")

		if *datasetPath != "" {
			if err := corpus.CheckDatasetFile(*datasetPath); err != nil {
				fmt.Fprintf(stderr, "Dataset validation failed:\n%s\n", err.Error())
				return ExitError
			}
			if _, err := corpus.LoadDataset(*datasetPath); err != nil {
				fmt.Fprintf(stderr, "Dataset validation failed:\n%s\n", err.Error())
				return ExitError
			}
			fmt.Fprintln(stdout, "Dataset OK")
		}
		return ExitOK
	}
}

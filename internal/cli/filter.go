package cli

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"vigprep/internal/classify"
	"vigprep/internal/config"
	"vigprep/internal/corpus"
	"vigprep/internal/filter"
)

// runFilter builds the handler for the filter command.
func runFilter(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		corpusPath := flags.String("corpus", "", "Path to the raw corpus file")
		configPath := flags.String("config", "", "Path to config file")
		outPath := flags.String("out", "", "Write the filtered dataset to this path")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			return ExitUsage
		}

		cfg, _, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		path := *corpusPath
		if path == "" {
			path = cfg.Corpus
		}
		if path == "" {
			fmt.Fprintln(stderr, "Missing --corpus")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		records, err := corpus.LoadRaw(path)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load corpus: %v\n", err)
			return ExitError
		}

		vignetteFilter, err := filter.New(config.FilterOptions(cfg))
		if err != nil {
			fmt.Fprintf(stderr, "Invalid filter options: %v\n", err)
			return ExitError
		}
		survivors, stats, err := vignetteFilter.Apply(records)
		if err != nil {
			fmt.Fprintf(stderr, "Filter failed: %v\n", err)
			return ExitError
		}

		classifier, err := classify.NewKeyword(config.Categories(cfg))
		if err != nil {
			fmt.Fprintf(stderr, "Invalid categories: %v\n", err)
			return ExitError
		}
		classified := classifier.Assign(survivors)

		payload, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			fmt.Fprintf(stderr, "Failed to encode stats: %v\n", err)
			return ExitError
		}
		fmt.Fprintln(stdout, string(payload))

		if *outPath != "" {
			ds := corpus.Dataset{Version: 1, Records: classified}
			if err := corpus.WriteDataset(*outPath, ds); err != nil {
				fmt.Fprintf(stderr, "Failed to write dataset: %v\n", err)
				return ExitError
			}
			fmt.Fprintf(stdout, "Wrote %d records to %s\n", len(classified), *outPath)
		}
		return ExitOK
	}
}

package cli

import (
	"flag"
	"fmt"
	"io"

	"vigprep/internal/config"
	"vigprep/internal/corpus"
	"vigprep/internal/pipeline"
	"vigprep/internal/sample"
)

// runSelect builds the handler for the select command.
func runSelect(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		filteredPath := flags.String("filtered", "", "Path to the filtered dataset")
		configPath := flags.String("config", "", "Path to config file")
		seed := flags.Int64("seed", 0, "Selection seed (default: from config)")
		redistribute := flags.Bool("redistribute", false, "Top up quota shortfalls from unused survivors")
		outPath := flags.String("out", "", "Write the selected dataset to this path")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			return ExitUsage
		}
		if *filteredPath == "" {
			fmt.Fprintln(stderr, "Missing --filtered")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		cfg, _, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		// A set flag wins over the config even at zero.
		flags.Visit(func(f *flag.Flag) {
			if f.Name == "seed" {
				cfg.Seed = *seed
			}
		})

		ds, err := corpus.LoadDataset(*filteredPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load dataset: %v\n", err)
			return ExitError
		}

		quota := config.Quota(cfg)
		selection, err := sample.Select(ds.Records, quota, cfg.Seed)
		if err != nil {
			fmt.Fprintf(stderr, "Selection failed: %v\n", err)
			return ExitError
		}
		for _, shortfall := range selection.Shortfalls {
			fmt.Fprintf(stderr, "Warning: %s has %d available, target %d\n",
				shortfall.Category, shortfall.Available, shortfall.Target)
		}
		if *redistribute && len(selection.Shortfalls) > 0 {
			selection = sample.Redistribute(ds.Records, selection, cfg.TargetTotal, cfg.Seed)
		}
		selected := sample.AssignIDs(selection.Records, pipeline.IDPrefix)

		fmt.Fprintf(stdout, "Selected %d of %d records (seed %d)\n", len(selected), len(ds.Records), cfg.Seed)
		for _, category := range sortedCategories(selection.Counts) {
			fmt.Fprintf(stdout, "  %-16s %d\n", category, selection.Counts[category])
		}

		if *outPath != "" {
			out := corpus.Dataset{Version: 1, Records: selected}
			if err := corpus.WriteDataset(*outPath, out); err != nil {
				fmt.Fprintf(stderr, "Failed to write dataset: %v\n", err)
				return ExitError
			}
			fmt.Fprintf(stdout, "Wrote %s\n", *outPath)
		}
		return ExitOK
	}
}

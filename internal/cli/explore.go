package cli

import (
	"flag"
	"fmt"
	"io"

	"vigprep/internal/classify"
	"vigprep/internal/config"
	"vigprep/internal/corpus"
	"vigprep/internal/explore"
)

// runExplore builds the handler for the explore command.
func runExplore(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		corpusPath := flags.String("corpus", "", "Path to the raw corpus file")
		configPath := flags.String("config", "", "Path to config file")
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
		classifier, err := classify.NewKeyword(config.Categories(cfg))
		if err != nil {
			fmt.Fprintf(stderr, "Invalid categories: %v\n", err)
			return ExitError
		}

		summary := explore.Analyze(records, classifier)
		explore.Render(stdout, summary)
		return ExitOK
	}
}

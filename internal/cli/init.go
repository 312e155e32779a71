package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"vigprep/internal/config"
)

// runInit builds the handler for the init command.
func runInit(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		root := flags.String("root", "", "Project root (default: current directory)")
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

		target := strings.TrimSpace(*root)
		if target == "" {
			wd, err := os.Getwd()
			if err != nil {
				fmt.Fprintf(stderr, "Init failed: %v\n", err)
				return ExitError
			}
			target = wd
		}

		path, err := config.Scaffold(target)
		if err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Created %s\n", path)
		return ExitOK
	}
}

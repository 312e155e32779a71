package cli

import (
	"fmt"
	"io"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

type Command struct {
	Name    string
	Summary string
	Usage   []string
	Run     func(args []string, stdout, stderr io.Writer) int
}

func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stdout)
		return ExitUsage
	}
	if isHelpArg(args[0]) {
		printUsage(stdout)
		return ExitOK
	}

	cmd := findCommand(args[0])
	if cmd == nil {
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", args[0])
		printUsage(stderr)
		return ExitUsage
	}

	return cmd.Run(args[1:], stdout, stderr)
}

func findCommand(name string) *Command {
	for _, cmd := range commands {
		if cmd.Name == name {
			return cmd
		}
	}
	return nil
}

func isHelpArg(arg string) bool {
	switch arg {
	case "-h", "--help", "help":
		return true
	default:
		return false
	}
}

func wantsHelp(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			return true
		}
	}
	return false
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  vigprep <command> [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-13s %s\n", cmd.Name, cmd.Summary)
	}
	fmt.Fprintln(w, "\nUse \"vigprep <command> --help\" for more information.")
}

func printCommandUsage(cmd *Command, w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	for _, line := range cmd.Usage {
		fmt.Fprintf(w, "  %s\n", line)
	}
	if cmd.Summary != "" {
		fmt.Fprintf(w, "\n%s\n", cmd.Summary)
	}
}

func command(name, summary string, usage []string, runner func(cmd *Command) func(args []string, stdout, stderr io.Writer) int) *Command {
	cmd := &Command{
		Name:    name,
		Summary: summary,
		Usage:   usage,
	}
	cmd.Run = runner(cmd)
	return cmd
}

var commands = []*Command{
	command("init", "Scaffold .vigprep/config.yml", []string{
		"vigprep init [--root <dir>]",
	}, runInit),
	command("validate", "Validate config and optional dataset files", []string{
		"vigprep validate [--config <path>] [--dataset <path>]",
	}, runValidate),
	command("explore", "Print descriptive statistics for a raw corpus", []string{
		"vigprep explore --corpus <path> [--config <path>]",
	}, runExplore),
	command("filter", "Filter and classify clinical vignettes", []string{
		"vigprep filter --corpus <path> [--config <path>] [--out <path>]",
	}, runFilter),
	command("select", "Draw the stratified sample from a filtered dataset", []string{
		"vigprep select --filtered <path> [--config <path>] [--seed <n>] [--redistribute] [--out <path>]",
	}, runSelect),
	command("check", "Run quality checks over a dataset", []string{
		"vigprep check --dataset <path> [--config <path>]",
	}, runCheck),
	command("recategorize", "Reassign categories from the diagnosis text", []string{
		"vigprep recategorize --dataset <path> [--out <path>]",
	}, runRecategorize),
	command("run", "Execute the full preparation pipeline", []string{
		"vigprep run [--corpus <path>] [--config <path>] [--ui auto|live|plain] [--redistribute] [--no-store]",
	}, runRun),
	command("report", "Rebuild the HTML report for a run", []string{
		"vigprep report [--run <id|dir>] [--config <path>]",
	}, runReport),
	command("serve", "Serve run reports and the DuckDB store over HTTP", []string{
		"vigprep serve [--addr <host:port>] [--config <path>]",
	}, runServe),
}

package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"vigprep/internal/pipeline"
	"vigprep/internal/reportserver"
)

// serveReport is a test seam for running the report server.
var serveReport = reportserver.Serve

// runServe builds the handler for the serve command.
func runServe(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		addr := flags.String("addr", "127.0.0.1:5000", "Address to listen on")
		configPath := flags.String("config", "", "Path to config file")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			return ExitUsage
		}
		if flags.NArg() > 0 {
			fmt.Fprintln(stderr, "Too many arguments")
			return ExitUsage
		}
		if *addr == "" {
			fmt.Fprintln(stderr, "Missing --addr")
			return ExitUsage
		}

		cfg, resolvedConfig, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		outputDir := resolveOutputDir(cfg, resolvedConfig)
		if _, err := os.Stat(outputDir); err != nil {
			fmt.Fprintf(stderr, "Output directory not found: %v\n", err)
			return ExitError
		}

		serverCfg := reportserver.Config{
			Addr:      *addr,
			OutputDir: outputDir,
		}
		if dbPath := pipeline.StorePath(outputDir); fileExists(dbPath) {
			serverCfg.DBPath = dbPath
		}

		fmt.Fprintf(stdout, "Serving reports at http://%s\n", serverCfg.Addr)
		if err := serveReport(context.Background(), serverCfg); err != nil {
			fmt.Fprintf(stderr, "Server error: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

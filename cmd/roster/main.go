// Package main is the entry point for the roster CLI.
package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/roster/internal/cli"
	"github.com/jacksmith/roster/internal/console"
	"github.com/jacksmith/roster/internal/logging"
	"github.com/jacksmith/roster/internal/storage"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

// DefaultFile is the roster file used when --file is not given.
const DefaultFile = "employees.json"

var (
	dataFile string
	logFile  string
	verbose  bool

	logger   = zerolog.Nop()
	closeLog = func() error { return nil }
)

func main() {
	err := rootCmd.Execute()
	closeLog()
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.Red(cli.FormatError(err)))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "roster",
	Short: "roster - a small employee record keeper",
	Long: `roster keeps employee records in a single JSON file.

Run without a subcommand to use the interactive menu, or use the
subcommands below for one-shot changes and scripting.`,
	Version:           Version,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
	RunE:              runMenu,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dataFile, "file", "f", DefaultFile, "employee file")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "also append JSON logs to this file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("roster version {{.Version}}\n")
}

func setupLogging(cmd *cobra.Command, args []string) error {
	l, closeFn, err := logging.New(logging.Options{FilePath: logFile, Verbose: verbose})
	if err != nil {
		return err
	}
	logger = l
	closeLog = closeFn
	logger.Debug().Str("command", cmd.CommandPath()).Str("file", dataFile).Msg("starting")
	return nil
}

// openStore loads the roster for a one-shot command. Unlike the
// interactive shells, a file that cannot be read is an error here so
// that a write never replaces it.
func openStore() (*storage.Store, error) {
	s := storage.New(dataFile, storage.WithLogger(logger))
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

func runMenu(cmd *cobra.Command, args []string) error {
	s := storage.Open(dataFile, storage.WithLogger(logger))
	if err := console.New(s, os.Stdin, os.Stdout).Run(); err != nil {
		logger.Error().Err(err).Msg("menu stopped")
	}
	return nil
}

package main

import (
	"github.com/jacksmith/roster/internal/storage"
	"github.com/jacksmith/roster/internal/tui"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse and edit employees in a full-screen table",
	Long: `Open a full-screen table of all employees.

Keys: a add, e/enter edit, d delete, / search, c clear search,
r reload, q quit.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	return tui.Run(storage.Open(dataFile, storage.WithLogger(logger)))
}

package main

import (
	"os"

	"github.com/jacksmith/roster/internal/cli"
	"github.com/jacksmith/roster/internal/model"
	"github.com/jacksmith/roster/internal/ops"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Find employees by exact field values",
	Long: `Find employees whose fields equal every given value.

Matching is exact and case-sensitive. With no flags every employee matches.

Examples:
  roster search --department=Navy
  roster search --name="Ada Lovelace" --position=Engineer
  roster search --salary=2500`,
	Args: cobra.NoArgs,
	RunE: runSearch,
}

var searchFlags fieldFlags

func init() {
	searchFlags = bindFieldFlags(searchCmd, model.AllFields, "match %s exactly")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	results, err := ops.SearchEmployees(s, searchFlags.values(cmd))
	if err != nil {
		return err
	}

	cli.RenderEmployees(os.Stdout, results, "No employees found.")
	return nil
}

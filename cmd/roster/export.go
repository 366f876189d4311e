package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jacksmith/roster/internal/cli"
	"github.com/jacksmith/roster/internal/export"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all employees",
	Long: `Export every employee as YAML, JSON or an Excel workbook.

Text formats go to stdout unless --output is given. The xlsx format
always needs --output.

Examples:
  roster export
  roster export --format=json > backup.json
  roster export --format=xlsx -o employees.xlsx`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

var (
	exportFormat string
	exportOutput string
)

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", string(export.FormatYAML), "output format (yaml, json, xlsx)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to this file instead of stdout")

	exportCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, len(export.Formats))
		for i, f := range export.Formats {
			names[i] = string(f)
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	format, err := export.ParseFormat(exportFormat)
	if err != nil {
		return err
	}
	if format.Binary() && exportOutput == "" {
		return &cli.ValidationError{Field: "output", Message: fmt.Sprintf("required for %s export", format)}
	}

	s, err := openStore()
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if exportOutput != "" {
		f, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", exportOutput, err)
		}
		defer f.Close()
		w = f
	}

	employees := s.List()
	if err := export.Write(w, format, employees); err != nil {
		return err
	}

	logger.Debug().Str("format", string(format)).Int("count", len(employees)).Msg("exported")
	if exportOutput != "" {
		fmt.Printf("%s %d employee(s) to %s\n", cli.Green("exported"), len(employees), exportOutput)
	}
	return nil
}

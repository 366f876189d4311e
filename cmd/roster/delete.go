package main

import (
	"fmt"

	"github.com/jacksmith/roster/internal/cli"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:               "delete <id>",
	Aliases:           []string{"rm"},
	Short:             "Delete an employee",
	Args:              cobra.ExactArgs(1),
	RunE:              runDelete,
	ValidArgsFunction: completeEmployeeIDs,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	id := args[0]

	s, err := openStore()
	if err != nil {
		return err
	}

	if err := s.Delete(id); err != nil {
		return cli.Describe(err, id)
	}

	fmt.Printf("%s %s\n", cli.Green("deleted"), id)
	return nil
}

package main

import (
	"fmt"

	"github.com/jacksmith/roster/internal/cli"
	"github.com/jacksmith/roster/internal/ops"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <id>",
	Short: "Add an employee",
	Long: `Add an employee with the given id.

Only the id is required. Salary must be a number when given.

Examples:
  roster add 7 --name="Ada Lovelace" --position=Engineer
  roster add 8 --name=Grace --department=Navy --salary=2500.50`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

var (
	addName       string
	addPosition   string
	addDepartment string
	addSalary     string
	addPhone      string
	addEmail      string
)

func init() {
	addCmd.Flags().StringVar(&addName, "name", "", "employee name")
	addCmd.Flags().StringVar(&addPosition, "position", "", "job title")
	addCmd.Flags().StringVar(&addDepartment, "department", "", "department")
	addCmd.Flags().StringVar(&addSalary, "salary", "0", "salary")
	addCmd.Flags().StringVar(&addPhone, "phone", "", "phone number")
	addCmd.Flags().StringVar(&addEmail, "email", "", "email address")

	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	id := args[0]

	s, err := openStore()
	if err != nil {
		return err
	}

	e, err := ops.AddEmployee(s, ops.EmployeeInput{
		ID:         id,
		Name:       addName,
		Position:   addPosition,
		Department: addDepartment,
		Salary:     addSalary,
		Phone:      addPhone,
		Email:      addEmail,
	})
	if err != nil {
		return cli.Describe(err, id)
	}

	fmt.Printf("%s %s\n", cli.Green("added"), e.ID)
	return nil
}

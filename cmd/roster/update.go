package main

import (
	"fmt"
	"strings"

	"github.com/jacksmith/roster/internal/cli"
	"github.com/jacksmith/roster/internal/model"
	"github.com/jacksmith/roster/internal/ops"
	"github.com/jacksmith/roster/internal/storage"
	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Change an employee's fields",
	Long: `Change one or more fields of an employee.

Use flags to set specific fields, or -i to edit the record as YAML in
$EDITOR. The id itself cannot be changed.

Examples:
  roster update 7 --position="Senior Engineer"
  roster update 7 --salary=3100 --email=ada@example.com
  roster update 7 -i`,
	Args:              cobra.ExactArgs(1),
	RunE:              runUpdate,
	ValidArgsFunction: completeEmployeeIDs,
}

var (
	updateFlags       fieldFlags
	updateInteractive bool
)

func init() {
	updateFlags = bindFieldFlags(updateCmd, model.UpdatableFields, "set %s")
	updateCmd.Flags().BoolVarP(&updateInteractive, "interactive", "i", false, "edit in $EDITOR")

	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	id := args[0]

	s, err := openStore()
	if err != nil {
		return err
	}

	if updateInteractive {
		return runUpdateInteractive(s, id, cli.NewEditor())
	}

	values := updateFlags.values(cmd)
	if len(values) == 0 {
		return fmt.Errorf("no changes specified")
	}

	if _, err := ops.UpdateEmployee(s, id, values); err != nil {
		return cli.Describe(err, id)
	}

	fmt.Printf("%s %s\n", cli.Green("updated"), id)
	return nil
}

func runUpdateInteractive(s *storage.Store, id string, ed *cli.Editor) error {
	before, err := s.Get(id)
	if err != nil {
		return cli.Describe(err, id)
	}

	content, err := model.EncodeEmployeeYAML(before)
	if err != nil {
		return err
	}

	edited, err := ed.Edit(content, ".yaml")
	if err != nil {
		return err
	}

	after, err := model.DecodeEmployeeYAML(edited)
	if err != nil {
		return err
	}
	if after.ID != before.ID {
		return &cli.ValidationError{Field: "id", Message: "cannot be changed"}
	}

	p := model.Diff(before, after)
	if p.IsEmpty() {
		fmt.Println("No changes made.")
		return nil
	}

	if err := s.Update(id, p); err != nil {
		return cli.Describe(err, id)
	}

	changed := make([]string, 0, len(p.Fields()))
	for _, f := range p.Fields() {
		changed = append(changed, string(f))
	}
	fmt.Printf("%s %s (%s)\n", cli.Green("updated"), id, strings.Join(changed, ", "))
	return nil
}

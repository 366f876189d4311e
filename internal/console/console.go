// Package console implements the numbered-menu shell over an employee store.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jacksmith/roster/internal/cli"
	"github.com/jacksmith/roster/internal/model"
	"github.com/jacksmith/roster/internal/ops"
)

// errInputClosed unwinds the menu when input ends mid-dialog.
var errInputClosed = errors.New("input closed")

// Menu entries, in display order.
var menu = []cli.MenuItem{
	{Key: "1", Name: "add", Label: "Add employee"},
	{Key: "2", Name: "list", Label: "List employees"},
	{Key: "3", Name: "search", Label: "Search employees"},
	{Key: "4", Name: "update", Label: "Update employee"},
	{Key: "5", Name: "delete", Label: "Delete employee"},
	{Key: "6", Name: "exit", Label: "Exit"},
}

// searchFields are the criteria the search dialog asks for.
var searchFields = []model.Field{
	model.FieldID,
	model.FieldName,
	model.FieldPosition,
	model.FieldDepartment,
}

// Shell reads menu choices line by line and renders results as text.
type Shell struct {
	store ops.Store
	in    *bufio.Scanner
	out   io.Writer
}

// New returns a Shell reading from in and writing to out.
func New(store ops.Store, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		store: store,
		in:    bufio.NewScanner(in),
		out:   out,
	}
}

// Run shows the menu until the user exits or input ends.
// Store failures are reported and never end the loop.
func (sh *Shell) Run() error {
	for {
		sh.printMenu()
		line, err := sh.prompt("Choose an action: ")
		if err != nil {
			return sh.finish(err)
		}

		item, err := cli.MatchMenu(line, menu)
		if err != nil {
			sh.println(cli.Yellow("Invalid choice. Enter a number from 1 to 6."))
			continue
		}

		switch item.Name {
		case "add":
			err = sh.add()
		case "list":
			sh.list()
		case "search":
			err = sh.search()
		case "update":
			err = sh.update()
		case "delete":
			err = sh.delete()
		case "exit":
			sh.println("Goodbye.")
			return nil
		}
		if err != nil {
			return sh.finish(err)
		}
	}
}

func (sh *Shell) finish(err error) error {
	if errors.Is(err, errInputClosed) {
		sh.println("")
		sh.println("Goodbye.")
		return nil
	}
	return err
}

func (sh *Shell) printMenu() {
	sh.println("")
	sh.println(cli.Bold("Employee records"))
	for _, item := range menu {
		sh.println(fmt.Sprintf("%s. %s", item.Key, item.Label))
	}
}

func (sh *Shell) add() error {
	sh.println("")
	sh.println(cli.Bold("New employee"))

	id, err := sh.prompt("ID: ")
	if err != nil {
		return err
	}
	if err := ops.ValidateID(id); err != nil {
		sh.reportError(err)
		return nil
	}
	if sh.store.Exists(id) {
		sh.reportError(&cli.DuplicateError{ID: id})
		return nil
	}

	in := ops.EmployeeInput{ID: id}
	for _, step := range []struct {
		label string
		dst   *string
	}{
		{"Name: ", &in.Name},
		{"Position: ", &in.Position},
		{"Department: ", &in.Department},
	} {
		if *step.dst, err = sh.prompt(step.label); err != nil {
			return err
		}
	}

	salary, err := sh.promptSalary("Salary: ")
	if err != nil {
		return err
	}
	in.Salary = salary

	if in.Phone, err = sh.prompt("Phone: "); err != nil {
		return err
	}
	if in.Email, err = sh.prompt("Email: "); err != nil {
		return err
	}

	if _, err := ops.AddEmployee(sh.store, in); err != nil {
		sh.reportError(cli.Describe(err, id))
		return nil
	}
	sh.println(cli.Green("Employee added."))
	return nil
}

func (sh *Shell) list() {
	sh.println("")
	cli.RenderEmployees(sh.out, sh.store.List(), "No employees.")
}

func (sh *Shell) search() error {
	sh.println("")
	sh.println(cli.Bold("Search (leave a field blank to match any value)"))

	values := make(map[model.Field]string, len(searchFields))
	for _, f := range searchFields {
		v, err := sh.prompt(f.Label() + ": ")
		if err != nil {
			return err
		}
		values[f] = v
	}

	results, err := ops.SearchEmployees(sh.store, values)
	if err != nil {
		sh.reportError(err)
		return nil
	}
	cli.RenderEmployees(sh.out, results, "No employees found.")
	return nil
}

func (sh *Shell) update() error {
	sh.println("")
	id, err := sh.prompt("ID of the employee to update: ")
	if err != nil {
		return err
	}

	current, err := sh.store.Get(id)
	if err != nil {
		sh.reportError(cli.Describe(err, id))
		return nil
	}

	sh.println("Current values:")
	for i, f := range model.UpdatableFields {
		sh.println(fmt.Sprintf("%d. %s: %s", i+1, f.Label(), current.Value(f)))
	}

	var patch model.Patch
	label := "Field number to change (0 to finish): "
	for {
		choice, err := sh.prompt(label)
		if err != nil {
			return err
		}
		choice = strings.TrimSpace(choice)
		if choice == "0" {
			break
		}
		label = "Next field number (0 to finish): "

		n, convErr := strconv.Atoi(choice)
		if convErr != nil || n < 1 || n > len(model.UpdatableFields) {
			sh.println(cli.Yellow("Invalid field number."))
			continue
		}

		field := model.UpdatableFields[n-1]
		var raw string
		if field == model.FieldSalary {
			raw, err = sh.promptSalary("New salary: ")
		} else {
			raw, err = sh.prompt(fmt.Sprintf("New %s: ", strings.ToLower(field.Label())))
		}
		if err != nil {
			return err
		}
		if err := patch.Set(field, raw); err != nil {
			sh.reportError(err)
		}
	}

	if patch.IsEmpty() {
		sh.println("No changes made.")
		return nil
	}
	if err := sh.store.Update(id, patch); err != nil {
		sh.reportError(cli.Describe(err, id))
		return nil
	}
	sh.println(cli.Green("Employee updated."))
	return nil
}

func (sh *Shell) delete() error {
	sh.println("")
	id, err := sh.prompt("ID of the employee to delete: ")
	if err != nil {
		return err
	}
	if err := sh.store.Delete(id); err != nil {
		sh.reportError(cli.Describe(err, id))
		return nil
	}
	sh.println(cli.Green("Employee deleted."))
	return nil
}

// prompt writes label and reads one line, without the trailing newline.
func (sh *Shell) prompt(label string) (string, error) {
	fmt.Fprint(sh.out, label)
	if !sh.in.Scan() {
		if err := sh.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", errInputClosed
	}
	return strings.TrimRight(sh.in.Text(), "\r"), nil
}

// promptSalary asks until the answer parses as a number.
func (sh *Shell) promptSalary(label string) (string, error) {
	for {
		raw, err := sh.prompt(label)
		if err != nil {
			return "", err
		}
		if _, err := model.ParseSalary(raw); err != nil {
			sh.println(cli.Yellow("Salary must be a number, try again."))
			continue
		}
		return raw, nil
	}
}

func (sh *Shell) println(s string) {
	fmt.Fprintln(sh.out, s)
}

func (sh *Shell) reportError(err error) {
	sh.println(cli.Red(cli.FormatError(err)))
}

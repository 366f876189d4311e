// Package tui implements the full-screen employee table.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jacksmith/roster/internal/cli"
	"github.com/jacksmith/roster/internal/model"
	"github.com/jacksmith/roster/internal/ops"
)

type mode int

const (
	modeBrowse mode = iota
	modeForm
	modeConfirm
)

// searchFields are the fields offered by the search form.
var searchFields = []model.Field{model.FieldID, model.FieldName, model.FieldDepartment}

var columnWidths = map[model.Field]int{
	model.FieldID:         8,
	model.FieldName:       20,
	model.FieldPosition:   16,
	model.FieldDepartment: 14,
	model.FieldSalary:     10,
	model.FieldPhone:      14,
	model.FieldEmail:      24,
}

// Model is the bubbletea model for the employee table.
type Model struct {
	store  ops.Store
	table  table.Model
	mode   mode
	form   *form
	filter model.Criteria

	// pending is the id awaiting delete confirmation.
	pending string

	status string
	err    error
}

// New returns a Model showing every record in store.
func New(store ops.Store) Model {
	cols := make([]table.Column, len(model.AllFields))
	for i, f := range model.AllFields {
		cols[i] = table.Column{Title: f.Label(), Width: columnWidths[f]}
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	t.SetStyles(styles)

	m := Model{store: store, table: t}
	m.refresh()
	return m
}

// Run starts the table UI and blocks until the user quits.
func Run(store ops.Store) error {
	if _, err := tea.NewProgram(New(store), tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("failed to run table ui: %w", err)
	}
	return nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

// refresh reloads the table rows from the store, keeping the active filter.
func (m *Model) refresh() {
	var employees []model.Employee
	if m.filter.IsEmpty() {
		employees = m.store.List()
	} else {
		employees = m.store.Search(m.filter)
	}

	rows := make([]table.Row, len(employees))
	for i := range employees {
		row := make(table.Row, len(model.AllFields))
		for j, f := range model.AllFields {
			row[j] = employees[i].Value(f)
		}
		rows[i] = row
	}
	m.table.SetRows(rows)
	// SetRows leaves the cursor at -1 once the table has been empty.
	if m.table.Cursor() < 0 && len(rows) > 0 {
		m.table.SetCursor(0)
	}
}

// selectedID returns the id in the highlighted row, or "" for an empty table.
func (m Model) selectedID() string {
	row := m.table.SelectedRow()
	if len(row) == 0 {
		return ""
	}
	return row[0]
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.err = nil
}

func (m *Model) setError(err error, id string) {
	m.status = ""
	m.err = cli.Describe(err, id)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if h := msg.Height - 8; h > 3 {
			m.table.SetHeight(h)
		}
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.mode {
		case modeForm:
			return m.updateForm(msg)
		case modeConfirm:
			return m.updateConfirm(msg)
		default:
			return m.updateBrowse(msg)
		}
	}

	if m.mode == modeForm {
		return m, m.form.update(msg)
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "a":
		m.form = newForm(formAdd, model.AllFields)
		m.mode = modeForm
		return m, nil
	case "e", "enter":
		id := m.selectedID()
		if id == "" {
			m.setStatus("Nothing selected.")
			return m, nil
		}
		e, err := m.store.Get(id)
		if err != nil {
			m.setError(err, id)
			return m, nil
		}
		m.form = newEditForm(e)
		m.mode = modeForm
		return m, nil
	case "d":
		id := m.selectedID()
		if id == "" {
			m.setStatus("Nothing selected.")
			return m, nil
		}
		m.pending = id
		m.mode = modeConfirm
		return m, nil
	case "/":
		m.form = newForm(formSearch, searchFields)
		m.mode = modeForm
		return m, nil
	case "c":
		m.filter = model.Criteria{}
		m.refresh()
		m.setStatus("Search cleared.")
		return m, nil
	case "r":
		if err := m.store.Load(); err != nil {
			m.setError(err, "")
		} else {
			m.setStatus("Reloaded.")
		}
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch strings.ToLower(msg.String()) {
	case "y":
		id := m.pending
		if err := m.store.Delete(id); err != nil {
			m.setError(err, id)
		} else {
			m.setStatus(fmt.Sprintf("Employee %s deleted.", id))
		}
		m.refresh()
	case "n", "esc":
		m.setStatus("Delete cancelled.")
	default:
		return m, nil
	}
	m.pending = ""
	m.mode = modeBrowse
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.form = nil
		m.mode = modeBrowse
		m.setStatus("Cancelled.")
		return m, nil
	case "tab", "down":
		m.form.next()
		return m, nil
	case "shift+tab", "up":
		m.form.prev()
		return m, nil
	case "enter":
		if m.submit() {
			m.form = nil
			m.mode = modeBrowse
		}
		m.refresh()
		return m, nil
	}
	return m, m.form.update(msg)
}

// submit applies the open form. It reports whether the form should close;
// a failed add keeps the form open so the input can be corrected.
func (m *Model) submit() bool {
	values := m.form.values()

	switch m.form.kind {
	case formAdd:
		values[model.FieldSalary] = lenientSalary(values[model.FieldSalary])
		e, err := ops.AddEmployee(m.store, ops.EmployeeInput{
			ID:         values[model.FieldID],
			Name:       values[model.FieldName],
			Position:   values[model.FieldPosition],
			Department: values[model.FieldDepartment],
			Salary:     values[model.FieldSalary],
			Phone:      values[model.FieldPhone],
			Email:      values[model.FieldEmail],
		})
		if err != nil {
			m.setError(err, values[model.FieldID])
			return false
		}
		m.setStatus(fmt.Sprintf("Employee %s added.", e.ID))
		return true

	case formEdit:
		id := m.form.id
		values[model.FieldSalary] = lenientSalary(values[model.FieldSalary])
		if _, err := ops.UpdateEmployee(m.store, id, values); err != nil {
			m.setError(err, id)
			return false
		}
		m.setStatus(fmt.Sprintf("Employee %s updated.", id))
		return true

	default:
		for f, v := range values {
			values[f] = strings.TrimSpace(v)
		}
		c, err := ops.BuildCriteria(values)
		if err != nil {
			m.setError(err, "")
			return false
		}
		m.filter = c
		m.refresh()
		m.setStatus(fmt.Sprintf("%d match(es).", len(m.table.Rows())))
		return true
	}
}

// lenientSalary maps unparsable salary input to zero.
func lenientSalary(raw string) string {
	if _, err := model.ParseSalary(raw); err != nil {
		return "0"
	}
	return raw
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Employees"))
	b.WriteString("  " + helpStyle.Render(m.store.Path()))
	if !m.filter.IsEmpty() {
		b.WriteString("  " + filterStyle.Render("filtered"))
	}
	b.WriteString("\n")

	if m.mode == modeForm {
		b.WriteString(m.form.view())
	} else {
		b.WriteString(baseStyle.Render(m.table.View()))
	}
	b.WriteString("\n")

	switch {
	case m.mode == modeConfirm:
		b.WriteString(errorStyle.Render(fmt.Sprintf("Delete employee %s? (y/n)", m.pending)))
	case m.err != nil:
		b.WriteString(errorStyle.Render(cli.FormatError(m.err)))
	case m.status != "":
		b.WriteString(statusStyle.Render(m.status))
	}
	b.WriteString("\n")

	if m.mode == modeBrowse {
		b.WriteString(helpStyle.Render("a add • e edit • d delete • / search • c clear • r reload • q quit"))
	}
	return b.String()
}

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jacksmith/roster/internal/model"
)

type formKind int

const (
	formAdd formKind = iota
	formEdit
	formSearch
)

func (k formKind) title() string {
	switch k {
	case formAdd:
		return "Add employee"
	case formEdit:
		return "Edit employee"
	default:
		return "Search"
	}
}

// form is a vertical list of labelled text inputs, one per field.
type form struct {
	kind   formKind
	id     string // record being edited
	fields []model.Field
	inputs []textinput.Model
	focus  int
}

func newForm(kind formKind, fields []model.Field) *form {
	f := &form{kind: kind, fields: fields}
	for _, field := range fields {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = strings.ToLower(field.Label())
		in.CharLimit = 128
		in.Width = 40
		f.inputs = append(f.inputs, in)
	}
	f.inputs[0].Focus()
	return f
}

// newEditForm builds a form prefilled with e's updatable fields.
func newEditForm(e model.Employee) *form {
	f := newForm(formEdit, model.UpdatableFields)
	f.id = e.ID
	for i, field := range f.fields {
		f.inputs[i].SetValue(e.Value(field))
	}
	return f
}

func (f *form) next() {
	f.setFocus((f.focus + 1) % len(f.inputs))
}

func (f *form) prev() {
	f.setFocus((f.focus - 1 + len(f.inputs)) % len(f.inputs))
}

func (f *form) setFocus(i int) {
	f.inputs[f.focus].Blur()
	f.focus = i
	f.inputs[f.focus].Focus()
}

// values returns the raw input of every field.
func (f *form) values() map[model.Field]string {
	out := make(map[model.Field]string, len(f.fields))
	for i, field := range f.fields {
		out[field] = f.inputs[i].Value()
	}
	return out
}

func (f *form) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *form) view() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(f.kind.title()))
	if f.kind == formEdit {
		b.WriteString("  " + helpStyle.Render("id "+f.id))
	}
	b.WriteString("\n\n")
	for i, field := range f.fields {
		label := labelStyle
		if i == f.focus {
			label = focusedLabel
		}
		b.WriteString(label.Render(field.Label()))
		b.WriteString(f.inputs[i].View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab/shift+tab move • enter submit • esc cancel"))
	return formStyle.Render(b.String())
}

// Package model defines the core data structures for roster.
package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownField is returned when a field name is not one of the employee fields.
var ErrUnknownField = errors.New("unknown field")

// Field names an employee attribute.
type Field string

const (
	FieldID         Field = "id"
	FieldName       Field = "name"
	FieldPosition   Field = "position"
	FieldDepartment Field = "department"
	FieldSalary     Field = "salary"
	FieldPhone      Field = "phone"
	FieldEmail      Field = "email"
)

// AllFields lists every employee field in persisted order.
var AllFields = []Field{
	FieldID,
	FieldName,
	FieldPosition,
	FieldDepartment,
	FieldSalary,
	FieldPhone,
	FieldEmail,
}

// UpdatableFields lists the fields a Patch can change, in menu order.
// The id is the primary key and is never updated in place.
var UpdatableFields = []Field{
	FieldName,
	FieldPosition,
	FieldDepartment,
	FieldSalary,
	FieldPhone,
	FieldEmail,
}

// Label returns the human-readable column title for a field.
func (f Field) Label() string {
	switch f {
	case FieldID:
		return "ID"
	case FieldName:
		return "Name"
	case FieldPosition:
		return "Position"
	case FieldDepartment:
		return "Department"
	case FieldSalary:
		return "Salary"
	case FieldPhone:
		return "Phone"
	case FieldEmail:
		return "Email"
	default:
		return string(f)
	}
}

// ParseField resolves a field name. Lookup is case-insensitive.
func ParseField(name string) (Field, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, f := range AllFields {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownField, name)
}

// Employee is one employee record, keyed by ID.
type Employee struct {
	ID         string  `json:"id" yaml:"id"`
	Name       string  `json:"name" yaml:"name"`
	Position   string  `json:"position" yaml:"position"`
	Department string  `json:"department" yaml:"department"`
	Salary     float64 `json:"salary" yaml:"salary"`
	Phone      string  `json:"phone" yaml:"phone"`
	Email      string  `json:"email" yaml:"email"`
}

// Value returns the string form of a field, as shown to users and compared by search.
func (e *Employee) Value(f Field) string {
	switch f {
	case FieldID:
		return e.ID
	case FieldName:
		return e.Name
	case FieldPosition:
		return e.Position
	case FieldDepartment:
		return e.Department
	case FieldSalary:
		return FormatSalary(e.Salary)
	case FieldPhone:
		return e.Phone
	case FieldEmail:
		return e.Email
	default:
		return ""
	}
}

// Package ops implements the shell-independent employee operations.
package ops

import (
	"fmt"
	"strings"

	"github.com/jacksmith/roster/internal/model"
)

// EmployeeInput holds raw values collected by a shell for a new employee.
type EmployeeInput struct {
	ID         string
	Name       string
	Position   string
	Department string
	Salary     string
	Phone      string
	Email      string
}

// ValidateID checks that an employee id is not empty or whitespace-only.
func ValidateID(id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("employee id must not be empty")
	}
	return nil
}

// BuildEmployee converts raw input into an Employee.
// Only the id and salary are checked.
func BuildEmployee(in EmployeeInput) (model.Employee, error) {
	if err := ValidateID(in.ID); err != nil {
		return model.Employee{}, err
	}

	salary, err := model.ParseSalary(in.Salary)
	if err != nil {
		return model.Employee{}, err
	}

	return model.Employee{
		ID:         in.ID,
		Name:       in.Name,
		Position:   in.Position,
		Department: in.Department,
		Salary:     salary,
		Phone:      in.Phone,
		Email:      in.Email,
	}, nil
}

// AddEmployee builds an employee from raw input and adds it to the store.
func AddEmployee(s Store, in EmployeeInput) (model.Employee, error) {
	e, err := BuildEmployee(in)
	if err != nil {
		return model.Employee{}, err
	}
	if err := s.Add(e); err != nil {
		return model.Employee{}, err
	}
	return e, nil
}

// BuildPatch converts raw field values into a Patch.
func BuildPatch(values map[model.Field]string) (model.Patch, error) {
	var p model.Patch
	for _, f := range model.UpdatableFields {
		raw, ok := values[f]
		if !ok {
			continue
		}
		if err := p.Set(f, raw); err != nil {
			return model.Patch{}, err
		}
	}
	for f := range values {
		if f == model.FieldID {
			return model.Patch{}, fmt.Errorf("%w: id cannot be changed", model.ErrUnknownField)
		}
		if _, err := model.ParseField(string(f)); err != nil {
			return model.Patch{}, err
		}
	}
	return p, nil
}

// UpdateEmployee applies raw field values to the employee with the given id
// and returns the updated record.
func UpdateEmployee(s Store, id string, values map[model.Field]string) (model.Employee, error) {
	p, err := BuildPatch(values)
	if err != nil {
		return model.Employee{}, err
	}
	if err := s.Update(id, p); err != nil {
		return model.Employee{}, err
	}
	return s.Get(id)
}

// BuildCriteria converts raw field values into search Criteria.
// Blank values are ignored.
func BuildCriteria(values map[model.Field]string) (model.Criteria, error) {
	var c model.Criteria
	for _, f := range model.AllFields {
		raw, ok := values[f]
		if !ok {
			continue
		}
		if err := c.Set(f, raw); err != nil {
			return model.Criteria{}, err
		}
	}
	for f := range values {
		if _, err := model.ParseField(string(f)); err != nil {
			return model.Criteria{}, err
		}
	}
	return c, nil
}

// SearchEmployees runs a search from raw field values.
func SearchEmployees(s Store, values map[model.Field]string) ([]model.Employee, error) {
	c, err := BuildCriteria(values)
	if err != nil {
		return nil, err
	}
	return s.Search(c), nil
}

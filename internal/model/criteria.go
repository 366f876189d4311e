package model

import "fmt"

// Criteria selects employees by exact field values.
// Empty strings and a nil Salary match any value.
type Criteria struct {
	ID         string
	Name       string
	Position   string
	Department string
	Salary     *float64
	Phone      string
	Email      string
}

// Set assigns a raw input value to the named criterion.
// Blank input leaves the criterion unset.
func (c *Criteria) Set(f Field, raw string) error {
	if raw == "" {
		return nil
	}
	switch f {
	case FieldID:
		c.ID = raw
	case FieldName:
		c.Name = raw
	case FieldPosition:
		c.Position = raw
	case FieldDepartment:
		c.Department = raw
	case FieldSalary:
		v, err := ParseSalary(raw)
		if err != nil {
			return err
		}
		c.Salary = &v
	case FieldPhone:
		c.Phone = raw
	case FieldEmail:
		c.Email = raw
	default:
		return fmt.Errorf("%w %q", ErrUnknownField, string(f))
	}
	return nil
}

// IsEmpty reports whether no criterion is set.
func (c Criteria) IsEmpty() bool {
	return c == Criteria{}
}

// Matches reports whether e satisfies every set criterion.
// String comparison is exact and case-sensitive.
func (c Criteria) Matches(e Employee) bool {
	if c.ID != "" && e.ID != c.ID {
		return false
	}
	if c.Name != "" && e.Name != c.Name {
		return false
	}
	if c.Position != "" && e.Position != c.Position {
		return false
	}
	if c.Department != "" && e.Department != c.Department {
		return false
	}
	if c.Salary != nil && e.Salary != *c.Salary {
		return false
	}
	if c.Phone != "" && e.Phone != c.Phone {
		return false
	}
	if c.Email != "" && e.Email != c.Email {
		return false
	}
	return true
}

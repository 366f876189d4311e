package model

import "fmt"

// Patch represents fields that can be updated on an employee.
// A nil field is left unchanged.
type Patch struct {
	Name       *string
	Position   *string
	Department *string
	Salary     *float64
	Phone      *string
	Email      *string
}

// Set assigns a raw input value to the named field.
// Salary input is parsed; the id and unknown names are rejected.
func (p *Patch) Set(f Field, raw string) error {
	switch f {
	case FieldName:
		p.Name = &raw
	case FieldPosition:
		p.Position = &raw
	case FieldDepartment:
		p.Department = &raw
	case FieldSalary:
		v, err := ParseSalary(raw)
		if err != nil {
			return err
		}
		p.Salary = &v
	case FieldPhone:
		p.Phone = &raw
	case FieldEmail:
		p.Email = &raw
	case FieldID:
		return fmt.Errorf("%w: id cannot be changed", ErrUnknownField)
	default:
		return fmt.Errorf("%w %q", ErrUnknownField, string(f))
	}
	return nil
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return len(p.Fields()) == 0
}

// Fields returns the fields the patch sets, in menu order.
func (p Patch) Fields() []Field {
	var fields []Field
	if p.Name != nil {
		fields = append(fields, FieldName)
	}
	if p.Position != nil {
		fields = append(fields, FieldPosition)
	}
	if p.Department != nil {
		fields = append(fields, FieldDepartment)
	}
	if p.Salary != nil {
		fields = append(fields, FieldSalary)
	}
	if p.Phone != nil {
		fields = append(fields, FieldPhone)
	}
	if p.Email != nil {
		fields = append(fields, FieldEmail)
	}
	return fields
}

// Apply writes the set fields onto e.
func (p Patch) Apply(e *Employee) {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Position != nil {
		e.Position = *p.Position
	}
	if p.Department != nil {
		e.Department = *p.Department
	}
	if p.Salary != nil {
		e.Salary = *p.Salary
	}
	if p.Phone != nil {
		e.Phone = *p.Phone
	}
	if p.Email != nil {
		e.Email = *p.Email
	}
}

// Diff builds the patch that turns before into after.
// The id is ignored.
func Diff(before, after Employee) Patch {
	var p Patch
	if before.Name != after.Name {
		p.Name = &after.Name
	}
	if before.Position != after.Position {
		p.Position = &after.Position
	}
	if before.Department != after.Department {
		p.Department = &after.Department
	}
	if before.Salary != after.Salary {
		p.Salary = &after.Salary
	}
	if before.Phone != after.Phone {
		p.Phone = &after.Phone
	}
	if before.Email != after.Email {
		p.Email = &after.Email
	}
	return p
}

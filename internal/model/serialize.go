package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// jsonIndent is the indentation used for the employee file.
const jsonIndent = "    "

// LoadEmployees loads the employee file at path.
// Records with missing or unknown keys and repeated ids are rejected.
// A "null" document loads as an empty roster.
func LoadEmployees(path string) ([]Employee, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read employee file %s: %w", path, err)
	}

	employees, err := DecodeEmployees(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse employee file %s: %w", path, err)
	}
	return employees, nil
}

// employeeKeys are the keys every record in the file carries, in file order.
var employeeKeys = []string{"id", "name", "position", "department", "salary", "phone", "email"}

// DecodeEmployees parses the JSON employee layout.
// Each record must have exactly the employee keys, and ids must be unique.
func DecodeEmployees(data []byte) ([]Employee, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	var records []map[string]json.RawMessage
	if err := dec.Decode(&records); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("unexpected data after employee list")
	}

	employees := make([]Employee, 0, len(records))
	seen := make(map[string]int, len(records))
	for i, rec := range records {
		e, err := decodeRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		if first, ok := seen[e.ID]; ok {
			return nil, fmt.Errorf("duplicate employee id %q in records %d and %d", e.ID, first, i+1)
		}
		seen[e.ID] = i + 1
		employees = append(employees, e)
	}
	return employees, nil
}

func decodeRecord(rec map[string]json.RawMessage) (Employee, error) {
	for _, key := range employeeKeys {
		if _, ok := rec[key]; !ok {
			return Employee{}, fmt.Errorf("missing key %q", key)
		}
	}
	keys := make([]string, 0, len(rec))
	for key := range rec {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	for _, key := range keys {
		if !slices.Contains(employeeKeys, key) {
			return Employee{}, fmt.Errorf("unknown key %q", key)
		}
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return Employee{}, err
	}
	var e Employee
	if err := json.Unmarshal(data, &e); err != nil {
		return Employee{}, err
	}
	return e, nil
}

// SaveEmployees writes the full roster to path, replacing the file.
func SaveEmployees(path string, employees []Employee) error {
	data, err := EncodeEmployees(employees)
	if err != nil {
		return fmt.Errorf("failed to encode employees: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write employee file %s: %w", path, err)
	}
	return nil
}

// EncodeEmployees renders the roster as an indented JSON array.
// An empty roster is written as "[]", never "null".
func EncodeEmployees(employees []Employee) ([]byte, error) {
	if employees == nil {
		employees = []Employee{}
	}
	data, err := json.MarshalIndent(employees, "", jsonIndent)
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// EncodeYAML renders employees as a YAML sequence with fields in file order.
func EncodeYAML(employees []Employee) ([]byte, error) {
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for i := range employees {
		seq.Content = append(seq.Content, buildEmployeeNode(&employees[i]))
	}
	doc := &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{seq}}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode employees: %w", err)
	}
	return data, nil
}

// EncodeEmployeeYAML renders a single employee as a YAML mapping.
func EncodeEmployeeYAML(e Employee) ([]byte, error) {
	data, err := yaml.Marshal(buildEmployeeNode(&e))
	if err != nil {
		return nil, fmt.Errorf("failed to encode employee %s: %w", e.ID, err)
	}
	return data, nil
}

// DecodeEmployeeYAML parses a single employee mapping.
func DecodeEmployeeYAML(data []byte) (Employee, error) {
	var e Employee
	if err := yaml.Unmarshal(data, &e); err != nil {
		return Employee{}, fmt.Errorf("failed to parse employee: %w", err)
	}
	return e, nil
}

// buildEmployeeNode creates a yaml.Node for an Employee.
func buildEmployeeNode(e *Employee) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode}

	addStringField(node, "id", e.ID)
	addStringField(node, "name", e.Name)
	addStringField(node, "position", e.Position)
	addStringField(node, "department", e.Department)
	addFloatField(node, "salary", e.Salary)
	addStringField(node, "phone", e.Phone)
	addStringField(node, "email", e.Email)

	return node
}

// Helper functions for building yaml.Node

func addStringField(node *yaml.Node, key, value string) {
	node.Content = append(node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		// Tagging keeps values like "007" or "yes" from reading back as numbers or bools.
		&yaml.Node{Kind: yaml.ScalarNode, Value: value, Tag: "!!str"},
	)
}

func addFloatField(node *yaml.Node, key string, value float64) {
	node.Content = append(node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Value: FormatSalary(value), Tag: "!!float"},
	)
}

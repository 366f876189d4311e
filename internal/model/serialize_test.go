package model

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEmployees() []Employee {
	return []Employee{
		{
			ID:         "1",
			Name:       "Ada",
			Position:   "Engineer",
			Department: "R&D",
			Salary:     1000,
			Phone:      "000",
			Email:      "ada@example.com",
		},
		{
			ID:         "2",
			Name:       "Grace",
			Position:   "Manager",
			Department: "Ops",
			Salary:     2500.75,
			Phone:      "+1 555 0100",
			Email:      "grace@example.com",
		},
	}
}

func TestLoadEmployees(t *testing.T) {
	content := `[
    {
        "id": "7",
        "name": "Linus",
        "position": "Maintainer",
        "department": "Kernel",
        "salary": 4200.5,
        "phone": "123",
        "email": "linus@example.com"
    }
]
`
	path := filepath.Join(t.TempDir(), "employees.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	employees, err := LoadEmployees(path)
	require.NoError(t, err)
	require.Len(t, employees, 1)

	e := employees[0]
	assert.Equal(t, "7", e.ID)
	assert.Equal(t, "Linus", e.Name)
	assert.Equal(t, "Maintainer", e.Position)
	assert.Equal(t, "Kernel", e.Department)
	assert.Equal(t, 4200.5, e.Salary)
	assert.Equal(t, "123", e.Phone)
	assert.Equal(t, "linus@example.com", e.Email)
}

func TestLoadEmployeesErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadEmployees(filepath.Join(t.TempDir(), "nope.json"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed json names the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte(`[{"id": "1",`), 0644))

		_, err := LoadEmployees(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bad.json")
	})

	t.Run("unknown key is rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "extra.json")
		require.NoError(t, os.WriteFile(path, []byte(`[{"id": "1", "age": 40}]`), 0644))

		_, err := LoadEmployees(path)
		require.Error(t, err)
	})

	t.Run("salary as string is rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "salary.json")
		require.NoError(t, os.WriteFile(path, []byte(`[{"id": "1", "salary": "lots"}]`), 0644))

		_, err := LoadEmployees(path)
		require.Error(t, err)
	})

	t.Run("missing key is rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "partial.json")
		require.NoError(t, os.WriteFile(path, []byte(`[{"id": "1"}]`), 0644))

		_, err := LoadEmployees(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `record 1: missing key "name"`)
	})

	t.Run("unknown key is named", func(t *testing.T) {
		data := `[{"id": "1", "name": "", "position": "", "department": "", "salary": 0, "phone": "", "email": "", "age": 40}]`
		_, err := DecodeEmployees([]byte(data))
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown key "age"`)
	})

	t.Run("duplicate ids are rejected", func(t *testing.T) {
		data, err := EncodeEmployees([]Employee{{ID: "1", Name: "A"}, {ID: "2"}, {ID: "1", Name: "B"}})
		require.NoError(t, err)

		_, err = DecodeEmployees(data)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `duplicate employee id "1" in records 1 and 3`)
	})

	t.Run("trailing data is rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "trailing.json")
		require.NoError(t, os.WriteFile(path, []byte(`[] []`), 0644))

		_, err := LoadEmployees(path)
		require.Error(t, err)
	})
}

func TestDecodeEmployeesNull(t *testing.T) {
	employees, err := DecodeEmployees([]byte("null"))
	require.NoError(t, err)
	assert.NotNil(t, employees)
	assert.Empty(t, employees)
}

func TestSaveEmployees(t *testing.T) {
	t.Run("round trip preserves order and fields", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "employees.json")
		want := sampleEmployees()

		require.NoError(t, SaveEmployees(path, want))

		got, err := LoadEmployees(path)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("file is indented with exact keys", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "employees.json")
		require.NoError(t, SaveEmployees(path, sampleEmployees()[:1]))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		content := string(data)

		assert.True(t, strings.HasPrefix(content, "[\n    {\n        \"id\": \"1\","))
		assert.Contains(t, content, `"salary": 1000,`)
		for _, key := range []string{"id", "name", "position", "department", "salary", "phone", "email"} {
			assert.Contains(t, content, `"`+key+`":`)
		}
		assert.True(t, strings.HasSuffix(content, "]\n"))
	})

	t.Run("empty roster is written as an empty array", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "employees.json")
		require.NoError(t, SaveEmployees(path, nil))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "[]\n", string(data))
	})

	t.Run("unwritable path returns error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing-dir", "employees.json")
		err := SaveEmployees(path, sampleEmployees())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to write employee file")
	})
}

func TestEncodeYAML(t *testing.T) {
	data, err := EncodeYAML(sampleEmployees())
	require.NoError(t, err)
	out := string(data)

	assert.True(t, strings.HasPrefix(out, "- id:"))
	assert.Contains(t, out, "name: Ada")
	assert.Contains(t, out, "salary: 1000.0")
	assert.Contains(t, out, "salary: 2500.75")
	assert.Less(t, strings.Index(out, "Ada"), strings.Index(out, "Grace"))

	// Field order follows the file layout
	assert.Less(t, strings.Index(out, "position:"), strings.Index(out, "department:"))
	assert.Less(t, strings.Index(out, "department:"), strings.Index(out, "salary:"))
}

func TestEmployeeYAMLRoundTrip(t *testing.T) {
	e := Employee{ID: "007", Name: "yes", Position: "Agent", Salary: 12.5, Phone: "0123"}

	data, err := EncodeEmployeeYAML(e)
	require.NoError(t, err)

	got, err := DecodeEmployeeYAML(data)
	require.NoError(t, err)
	assert.Equal(t, e, got)
}

func TestDecodeEmployeeYAMLInvalid(t *testing.T) {
	_, err := DecodeEmployeeYAML([]byte("salary: [not a number"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse employee")
}

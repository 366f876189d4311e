package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/jacksmith/roster/internal/model"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func employee(id, name, department string) model.Employee {
	return model.Employee{
		ID:         id,
		Name:       name,
		Position:   "Eng",
		Department: department,
		Salary:     1000,
		Phone:      "000",
		Email:      name + "@x",
	}
}

// setupStore returns a store backed by a file in a fresh temp directory.
func setupStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "employees.json")
	return Open(path), path
}

// breakBackingFile replaces the backing file with a directory so writes fail.
func breakBackingFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.RemoveAll(path))
	require.NoError(t, os.Mkdir(path, 0755))
}

func TestOpen(t *testing.T) {
	t.Run("missing file starts empty without creating it", func(t *testing.T) {
		s, path := setupStore(t)

		assert.Equal(t, 0, s.Len())
		assert.Equal(t, path, s.Path())
		_, err := os.Stat(path)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("existing file is loaded", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "employees.json")
		want := []model.Employee{employee("1", "A", "R&D"), employee("2", "B", "Ops")}
		require.NoError(t, model.SaveEmployees(path, want))

		s := Open(path)
		assert.Equal(t, want, s.List())
	})

	t.Run("corrupt file is logged and store starts empty", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "employees.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

		var buf bytes.Buffer
		s := Open(path, WithLogger(zerolog.New(&buf)))

		assert.Equal(t, 0, s.Len())
		assert.Contains(t, buf.String(), "starting with an empty roster")
		assert.Contains(t, buf.String(), `"level":"warn"`)
	})
}

func TestLoad(t *testing.T) {
	t.Run("parse failure resets to empty and returns error", func(t *testing.T) {
		s, path := setupStore(t)
		require.NoError(t, s.Add(employee("1", "A", "R&D")))

		require.NoError(t, os.WriteFile(path, []byte(`[{"id": 1}]`), 0644))

		err := s.Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), path)
		assert.Empty(t, s.List())
	})

	t.Run("duplicate ids are rejected", func(t *testing.T) {
		s, path := setupStore(t)
		require.NoError(t, s.Add(employee("5", "E", "Ops")))

		dup := []model.Employee{employee("1", "A", "R&D"), employee("1", "B", "Ops")}
		require.NoError(t, model.SaveEmployees(path, dup))

		err := s.Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate employee id")
		assert.Equal(t, 0, s.Len())
		assert.False(t, s.Exists("1"))
	})

	t.Run("directory in place of file is an error", func(t *testing.T) {
		s, path := setupStore(t)
		breakBackingFile(t, path)

		require.Error(t, s.Load())
		assert.Equal(t, 0, s.Len())
	})

	t.Run("reload picks up external edits", func(t *testing.T) {
		s, path := setupStore(t)
		require.NoError(t, s.Add(employee("1", "A", "R&D")))

		require.NoError(t, model.SaveEmployees(path, []model.Employee{employee("9", "Z", "Ops")}))
		require.NoError(t, s.Load())

		list := s.List()
		require.Len(t, list, 1)
		assert.Equal(t, "9", list[0].ID)
	})
}

func TestAdd(t *testing.T) {
	t.Run("add then get returns equal record", func(t *testing.T) {
		s, _ := setupStore(t)
		e := employee("1", "A", "R&D")

		require.NoError(t, s.Add(e))

		got, err := s.Get("1")
		require.NoError(t, err)
		assert.Equal(t, e, got)
	})

	t.Run("duplicate id is rejected and store unchanged", func(t *testing.T) {
		s, path := setupStore(t)
		require.NoError(t, s.Add(employee("1", "A", "R&D")))
		before, err := os.ReadFile(path)
		require.NoError(t, err)

		err = s.Add(employee("1", "Other", "Ops"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDuplicateID)

		list := s.List()
		require.Len(t, list, 1)
		assert.Equal(t, "A", list[0].Name)

		after, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("add persists to file", func(t *testing.T) {
		s, path := setupStore(t)
		require.NoError(t, s.Add(employee("1", "A", "R&D")))
		require.NoError(t, s.Add(employee("2", "B", "Ops")))

		reloaded := Open(path)
		assert.Equal(t, s.List(), reloaded.List())
	})

	t.Run("save failure rolls back", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "employees.json")
		s := New(path)

		err := s.Add(employee("1", "A", "R&D"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrPersist)
		assert.Equal(t, 0, s.Len())
		assert.False(t, s.Exists("1"))
	})
}

func TestGet(t *testing.T) {
	s, _ := setupStore(t)
	require.NoError(t, s.Add(employee("1", "A", "R&D")))

	_, err := s.Get("2")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), `"2"`)
}

func TestUpdate(t *testing.T) {
	t.Run("changes only the patched field and persists", func(t *testing.T) {
		s, path := setupStore(t)
		original := employee("1", "A", "R&D")
		require.NoError(t, s.Add(original))

		salary := 2000.0
		require.NoError(t, s.Update("1", model.Patch{Salary: &salary}))

		want := original
		want.Salary = 2000
		got, err := s.Get("1")
		require.NoError(t, err)
		assert.Equal(t, want, got)

		reloaded := Open(path)
		got, err = reloaded.Get("1")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("missing id fails", func(t *testing.T) {
		s, _ := setupStore(t)
		name := "X"
		err := s.Update("nope", model.Patch{Name: &name})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("save failure restores previous record", func(t *testing.T) {
		s, path := setupStore(t)
		original := employee("1", "A", "R&D")
		require.NoError(t, s.Add(original))
		breakBackingFile(t, path)

		name := "Changed"
		err := s.Update("1", model.Patch{Name: &name})
		assert.ErrorIs(t, err, ErrPersist)

		got, err := s.Get("1")
		require.NoError(t, err)
		assert.Equal(t, original, got)
	})
}

func TestDelete(t *testing.T) {
	t.Run("removes record and persists", func(t *testing.T) {
		s, path := setupStore(t)
		require.NoError(t, s.Add(employee("1", "A", "R&D")))
		require.NoError(t, s.Add(employee("2", "B", "Ops")))

		require.NoError(t, s.Delete("1"))
		assert.False(t, s.Exists("1"))

		reloaded := Open(path)
		list := reloaded.List()
		require.Len(t, list, 1)
		assert.Equal(t, "2", list[0].ID)
	})

	t.Run("absent id fails and leaves collection alone", func(t *testing.T) {
		s, _ := setupStore(t)
		require.NoError(t, s.Add(employee("1", "A", "R&D")))
		before := s.List()

		err := s.Delete("2")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Equal(t, before, s.List())
	})

	t.Run("save failure reinserts at original position", func(t *testing.T) {
		s, path := setupStore(t)
		for _, id := range []string{"1", "2", "3"} {
			require.NoError(t, s.Add(employee(id, "N"+id, "R&D")))
		}
		before := s.List()
		breakBackingFile(t, path)

		err := s.Delete("2")
		assert.ErrorIs(t, err, ErrPersist)
		assert.Equal(t, before, s.List())
	})
}

func TestList(t *testing.T) {
	s, _ := setupStore(t)
	require.NoError(t, s.Add(employee("1", "A", "R&D")))

	list := s.List()
	list[0].Name = "mutated"

	got, err := s.Get("1")
	require.NoError(t, err)
	assert.Equal(t, "A", got.Name)
	assert.Equal(t, 1, s.Len())
}

func TestSearch(t *testing.T) {
	s, _ := setupStore(t)
	require.NoError(t, s.Add(employee("1", "A", "R&D")))
	require.NoError(t, s.Add(employee("2", "B", "Ops")))
	require.NoError(t, s.Add(employee("3", "C", "R&D")))

	t.Run("empty criteria returns every record", func(t *testing.T) {
		assert.Equal(t, s.List(), s.Search(model.Criteria{}))
	})

	t.Run("department subset in store order", func(t *testing.T) {
		results := s.Search(model.Criteria{Department: "R&D"})
		require.Len(t, results, 2)
		assert.Equal(t, "1", results[0].ID)
		assert.Equal(t, "3", results[1].ID)
	})

	t.Run("no match returns empty slice", func(t *testing.T) {
		results := s.Search(model.Criteria{Department: "HR"})
		assert.NotNil(t, results)
		assert.Empty(t, results)
	})
}

func TestScenario(t *testing.T) {
	s, _ := setupStore(t)
	e := model.Employee{
		ID:         "1",
		Name:       "A",
		Position:   "Eng",
		Department: "R&D",
		Salary:     1000.0,
		Phone:      "000",
		Email:      "a@x",
	}

	require.NoError(t, s.Add(e))
	assert.Len(t, s.List(), 1)

	assert.ErrorIs(t, s.Add(e), ErrDuplicateID)
	assert.Len(t, s.List(), 1)

	salary := 2000.0
	require.NoError(t, s.Update("1", model.Patch{Salary: &salary}))
	got, err := s.Get("1")
	require.NoError(t, err)
	assert.Equal(t, 2000.0, got.Salary)

	require.NoError(t, s.Delete("1"))
	assert.Empty(t, s.List())
}

// Package storage provides the file-backed employee record store.
package storage

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/jacksmith/roster/internal/model"
	"github.com/rs/zerolog"
)

var (
	// ErrNotFound is returned when no employee has the requested id.
	ErrNotFound = errors.New("employee not found")
	// ErrDuplicateID is returned when adding an employee whose id is taken.
	ErrDuplicateID = errors.New("employee id already exists")
	// ErrPersist wraps save failures after a mutation was rolled back.
	ErrPersist = errors.New("failed to persist change")
)

// Store holds every employee record in memory, in insertion order,
// and rewrites its backing JSON file after each successful mutation.
// A Store is not safe for concurrent use.
type Store struct {
	path      string
	employees []model.Employee
	log       zerolog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for load and save events.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) {
		s.log = l
	}
}

// New returns an empty Store backed by path. It does not touch the file system.
func New(path string, opts ...Option) *Store {
	s := &Store{
		path:      path,
		employees: []model.Employee{},
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open returns a Store backed by path and loads it.
// A load failure is logged and the store starts empty, so the caller
// always gets a usable Store.
func Open(path string, opts ...Option) *Store {
	s := New(path, opts...)
	if err := s.Load(); err != nil {
		s.log.Warn().Err(err).Str("path", path).Msg("starting with an empty roster")
	}
	return s
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.employees)
}

// Load replaces the in-memory roster with the contents of the backing file.
// A missing file yields an empty roster and no error. On any other failure
// the roster is reset to empty and the error is returned.
func (s *Store) Load() error {
	if _, err := os.Stat(s.path); err != nil {
		if os.IsNotExist(err) {
			s.employees = []model.Employee{}
			return nil
		}
		s.employees = []model.Employee{}
		return fmt.Errorf("failed to access employee file: %w", err)
	}

	employees, err := model.LoadEmployees(s.path)
	if err != nil {
		s.employees = []model.Employee{}
		return err
	}

	s.employees = employees
	s.log.Debug().Str("path", s.path).Int("count", len(employees)).Msg("roster loaded")
	return nil
}

// Save writes the whole roster to the backing file.
// In-memory state is never changed by Save.
func (s *Store) Save() error {
	if err := model.SaveEmployees(s.path, s.employees); err != nil {
		s.log.Error().Err(err).Str("path", s.path).Msg("save failed")
		return err
	}
	s.log.Debug().Str("path", s.path).Int("count", len(s.employees)).Msg("roster saved")
	return nil
}

// Add appends e and persists the roster.
// Returns ErrDuplicateID if the id is already present; nothing is written then.
func (s *Store) Add(e model.Employee) error {
	if s.indexOf(e.ID) >= 0 {
		return fmt.Errorf("%w: %q", ErrDuplicateID, e.ID)
	}

	s.employees = append(s.employees, e)
	if err := s.Save(); err != nil {
		s.employees = s.employees[:len(s.employees)-1]
		return fmt.Errorf("%w: add %q: %w", ErrPersist, e.ID, err)
	}
	return nil
}

// Get returns the first employee whose id matches.
func (s *Store) Get(id string) (model.Employee, error) {
	i := s.indexOf(id)
	if i < 0 {
		return model.Employee{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return s.employees[i], nil
}

// Update applies p to the employee with the given id and persists the roster.
func (s *Store) Update(id string, p model.Patch) error {
	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, id)
	}

	before := s.employees[i]
	p.Apply(&s.employees[i])
	if err := s.Save(); err != nil {
		s.employees[i] = before
		return fmt.Errorf("%w: update %q: %w", ErrPersist, id, err)
	}
	return nil
}

// Delete removes the employee with the given id and persists the roster.
func (s *Store) Delete(id string) error {
	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, id)
	}

	removed := s.employees[i]
	s.employees = slices.Delete(s.employees, i, i+1)
	if err := s.Save(); err != nil {
		s.employees = slices.Insert(s.employees, i, removed)
		return fmt.Errorf("%w: delete %q: %w", ErrPersist, id, err)
	}
	return nil
}

// List returns a copy of every employee in store order.
func (s *Store) List() []model.Employee {
	return slices.Clone(s.employees)
}

// Search returns the employees matching every set criterion, in store order.
// Empty criteria match every record.
func (s *Store) Search(c model.Criteria) []model.Employee {
	results := []model.Employee{}
	for _, e := range s.employees {
		if c.Matches(e) {
			results = append(results, e)
		}
	}
	return results
}

// Exists reports whether an employee with the given id is present.
func (s *Store) Exists(id string) bool {
	return s.indexOf(id) >= 0
}

func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.employees, func(e model.Employee) bool {
		return e.ID == id
	})
}

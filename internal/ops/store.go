package ops

import (
	"github.com/jacksmith/roster/internal/model"
	"github.com/jacksmith/roster/internal/storage"
)

// Store defines the record operations every presentation shell relies on.
// The concrete implementation is storage.Store; the console menu, the
// table UI and the one-shot commands all depend only on this interface.
type Store interface {
	Add(e model.Employee) error
	Get(id string) (model.Employee, error)
	Update(id string, p model.Patch) error
	Delete(id string) error
	List() []model.Employee
	Search(c model.Criteria) []model.Employee
	Exists(id string) bool
	Load() error
	Path() string
}

var _ Store = (*storage.Store)(nil)

package domain

import (
	ledgerErrors "github.com/mwielgosz/BudgetBook/internal/ledger/errors"
	"github.com/mwielgosz/BudgetBook/internal/ledger/query"
)

// Store is a merchant a transaction can be tied to. Names are unique, the
// constraint lives in the database.
type Store struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	UserDefined bool   `json:"user_defined"`
}

type StoreUpdate struct {
	Name        *string `json:"name"`
	UserDefined *bool   `json:"user_defined"`
}

type StoreRepository interface {
	Save(store *Store) error
	FindByID(storeID int) (*Store, error)
	FindAll(skip, limit int) ([]Store, error)
	Update(storeID int, update StoreUpdate) (*Store, error)
	Delete(storeID int) (*Store, error)
	Query(params query.Params) ([]Store, int, error)
}

func (s *Store) Validate() error {
	if s.Name == "" {
		return ledgerErrors.NewValidationError("Store name must not be empty")
	}
	return nil
}

package interfaces

import (
	"errors"

	"github.com/mwielgosz/BudgetBook/internal/ledger/domain"
	ledgerErrors "github.com/mwielgosz/BudgetBook/internal/ledger/errors"
	"github.com/mwielgosz/BudgetBook/internal/ledger/query"
)

type MockStoreService struct {
	stores     []domain.Store
	shouldFail bool
}

func (m *MockStoreService) CreateStore(store *domain.Store) error {
	if m.shouldFail {
		return errors.New("service error")
	}
	if err := store.Validate(); err != nil {
		return err
	}
	for _, existing := range m.stores {
		if existing.Name == store.Name {
			return ledgerErrors.NewConflictError("Store name already exists")
		}
	}
	store.ID = len(m.stores) + 1
	m.stores = append(m.stores, *store)
	return nil
}

func (m *MockStoreService) GetStore(storeID int) (*domain.Store, error) {
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	for i := range m.stores {
		if m.stores[i].ID == storeID {
			return &m.stores[i], nil
		}
	}
	return nil, ledgerErrors.NewNotFoundError("Store", storeID)
}

func (m *MockStoreService) ListStores(skip, limit int) ([]domain.Store, error) {
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	if skip >= len(m.stores) {
		return nil, nil
	}
	end := skip + limit
	if end > len(m.stores) {
		end = len(m.stores)
	}
	return m.stores[skip:end], nil
}

func (m *MockStoreService) UpdateStore(storeID int, update domain.StoreUpdate) (*domain.Store, error) {
	store, err := m.GetStore(storeID)
	if err != nil {
		return nil, err
	}
	if update.Name != nil {
		store.Name = *update.Name
	}
	if update.UserDefined != nil {
		store.UserDefined = *update.UserDefined
	}
	return store, nil
}

func (m *MockStoreService) DeleteStore(storeID int) (*domain.Store, error) {
	for i := range m.stores {
		if m.stores[i].ID == storeID {
			deleted := m.stores[i]
			m.stores = append(m.stores[:i], m.stores[i+1:]...)
			return &deleted, nil
		}
	}
	return nil, ledgerErrors.NewNotFoundError("Store", storeID)
}

func (m *MockStoreService) QueryStores(params query.Params) (query.PaginatedResponse[domain.Store], error) {
	if m.shouldFail {
		return query.PaginatedResponse[domain.Store]{}, errors.New("service error")
	}
	if err := params.Normalize(); err != nil {
		return query.PaginatedResponse[domain.Store]{}, err
	}
	items, err := m.ListStores(params.Skip, params.Limit)
	if err != nil {
		return query.PaginatedResponse[domain.Store]{}, err
	}
	return query.NewPaginatedResponse(items, len(m.stores), params.Skip, params.Limit), nil
}

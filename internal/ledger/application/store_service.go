package application

import (
	"github.com/mwielgosz/BudgetBook/internal/ledger/domain"
	ledgerErrors "github.com/mwielgosz/BudgetBook/internal/ledger/errors"
	"github.com/mwielgosz/BudgetBook/internal/ledger/query"
)

type StoreService struct {
	repo domain.StoreRepository
}

func NewStoreService(repo domain.StoreRepository) *StoreService {
	return &StoreService{repo: repo}
}

func (s *StoreService) CreateStore(store *domain.Store) error {
	if err := store.Validate(); err != nil {
		return err
	}
	return s.repo.Save(store)
}

func (s *StoreService) GetStore(storeID int) (*domain.Store, error) {
	store, err := s.repo.FindByID(storeID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, ledgerErrors.NewNotFoundError("Store", storeID)
	}
	return store, nil
}

func (s *StoreService) ListStores(skip, limit int) ([]domain.Store, error) {
	return s.repo.FindAll(normalizeListRange(skip, limit))
}

func (s *StoreService) UpdateStore(storeID int, update domain.StoreUpdate) (*domain.Store, error) {
	store, err := s.repo.Update(storeID, update)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, ledgerErrors.NewNotFoundError("Store", storeID)
	}
	return store, nil
}

func (s *StoreService) DeleteStore(storeID int) (*domain.Store, error) {
	store, err := s.repo.Delete(storeID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, ledgerErrors.NewNotFoundError("Store", storeID)
	}
	return store, nil
}

func (s *StoreService) QueryStores(params query.Params) (query.PaginatedResponse[domain.Store], error) {
	if err := params.Normalize(); err != nil {
		return query.PaginatedResponse[domain.Store]{}, err
	}
	items, total, err := s.repo.Query(params)
	if err != nil {
		return query.PaginatedResponse[domain.Store]{}, err
	}
	return query.NewPaginatedResponse(items, total, params.Skip, params.Limit), nil
}

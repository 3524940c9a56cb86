package application

import (
	"github.com/mwielgosz/BudgetBook/internal/ledger/domain"
	ledgerErrors "github.com/mwielgosz/BudgetBook/internal/ledger/errors"
	"github.com/mwielgosz/BudgetBook/internal/ledger/query"
)

type BudgetAllocationService struct {
	repo domain.BudgetAllocationRepository
}

func NewBudgetAllocationService(repo domain.BudgetAllocationRepository) *BudgetAllocationService {
	return &BudgetAllocationService{repo: repo}
}

func (s *BudgetAllocationService) CreateBudgetAllocation(allocation *domain.BudgetAllocation) error {
	if err := allocation.Validate(); err != nil {
		return err
	}
	return s.repo.Save(allocation)
}

func (s *BudgetAllocationService) GetBudgetAllocation(allocationID int) (*domain.BudgetAllocation, error) {
	allocation, err := s.repo.FindByID(allocationID)
	if err != nil {
		return nil, err
	}
	if allocation == nil {
		return nil, ledgerErrors.NewNotFoundError("Budget allocation", allocationID)
	}
	return allocation, nil
}

func (s *BudgetAllocationService) ListBudgetAllocations(skip, limit int) ([]domain.BudgetAllocation, error) {
	return s.repo.FindAll(normalizeListRange(skip, limit))
}

func (s *BudgetAllocationService) UpdateBudgetAllocation(allocationID int, update domain.BudgetAllocationUpdate) (*domain.BudgetAllocation, error) {
	if err := update.Validate(); err != nil {
		return nil, err
	}
	allocation, err := s.repo.Update(allocationID, update)
	if err != nil {
		return nil, err
	}
	if allocation == nil {
		return nil, ledgerErrors.NewNotFoundError("Budget allocation", allocationID)
	}
	return allocation, nil
}

func (s *BudgetAllocationService) DeleteBudgetAllocation(allocationID int) (*domain.BudgetAllocation, error) {
	allocation, err := s.repo.Delete(allocationID)
	if err != nil {
		return nil, err
	}
	if allocation == nil {
		return nil, ledgerErrors.NewNotFoundError("Budget allocation", allocationID)
	}
	return allocation, nil
}

func (s *BudgetAllocationService) QueryBudgetAllocations(params query.Params) (query.PaginatedResponse[domain.BudgetAllocation], error) {
	if err := params.Normalize(); err != nil {
		return query.PaginatedResponse[domain.BudgetAllocation]{}, err
	}
	items, total, err := s.repo.Query(params)
	if err != nil {
		return query.PaginatedResponse[domain.BudgetAllocation]{}, err
	}
	return query.NewPaginatedResponse(items, total, params.Skip, params.Limit), nil
}

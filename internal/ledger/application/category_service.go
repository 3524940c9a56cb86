package application

import (
	"github.com/mwielgosz/BudgetBook/internal/ledger/domain"
	ledgerErrors "github.com/mwielgosz/BudgetBook/internal/ledger/errors"
	"github.com/mwielgosz/BudgetBook/internal/ledger/query"
)

type CategoryService struct {
	repo domain.CategoryRepository
}

func NewCategoryService(repo domain.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) CreateCategory(category *domain.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	return s.repo.Save(category)
}

func (s *CategoryService) GetCategory(categoryID int) (*domain.Category, error) {
	category, err := s.repo.FindByID(categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ledgerErrors.NewNotFoundError("Category", categoryID)
	}
	return category, nil
}

func (s *CategoryService) ListCategories(skip, limit int) ([]domain.Category, error) {
	return s.repo.FindAll(normalizeListRange(skip, limit))
}

func (s *CategoryService) UpdateCategory(categoryID int, update domain.CategoryUpdate) (*domain.Category, error) {
	if err := update.Validate(); err != nil {
		return nil, err
	}
	category, err := s.repo.Update(categoryID, update)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ledgerErrors.NewNotFoundError("Category", categoryID)
	}
	return category, nil
}

func (s *CategoryService) DeleteCategory(categoryID int) (*domain.Category, error) {
	category, err := s.repo.Delete(categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ledgerErrors.NewNotFoundError("Category", categoryID)
	}
	return category, nil
}

func (s *CategoryService) QueryCategories(params query.Params) (query.PaginatedResponse[domain.Category], error) {
	if err := params.Normalize(); err != nil {
		return query.PaginatedResponse[domain.Category]{}, err
	}
	items, total, err := s.repo.Query(params)
	if err != nil {
		return query.PaginatedResponse[domain.Category]{}, err
	}
	return query.NewPaginatedResponse(items, total, params.Skip, params.Limit), nil
}

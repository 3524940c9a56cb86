package interfaces

import (
	"errors"

	"github.com/mwielgosz/BudgetBook/internal/ledger/domain"
	ledgerErrors "github.com/mwielgosz/BudgetBook/internal/ledger/errors"
	"github.com/mwielgosz/BudgetBook/internal/ledger/query"
)

type MockCategoryService struct {
	categories []domain.Category
	shouldFail bool
}

func (m *MockCategoryService) CreateCategory(category *domain.Category) error {
	if m.shouldFail {
		return errors.New("service error")
	}
	if err := category.Validate(); err != nil {
		return err
	}
	category.ID = len(m.categories) + 1
	m.categories = append(m.categories, *category)
	return nil
}

func (m *MockCategoryService) GetCategory(categoryID int) (*domain.Category, error) {
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	for i := range m.categories {
		if m.categories[i].ID == categoryID {
			return &m.categories[i], nil
		}
	}
	return nil, ledgerErrors.NewNotFoundError("Category", categoryID)
}

func (m *MockCategoryService) ListCategories(skip, limit int) ([]domain.Category, error) {
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	if skip >= len(m.categories) {
		return nil, nil
	}
	end := skip + limit
	if end > len(m.categories) {
		end = len(m.categories)
	}
	return m.categories[skip:end], nil
}

func (m *MockCategoryService) UpdateCategory(categoryID int, update domain.CategoryUpdate) (*domain.Category, error) {
	if err := update.Validate(); err != nil {
		return nil, err
	}
	category, err := m.GetCategory(categoryID)
	if err != nil {
		return nil, err
	}
	if update.Name != nil {
		category.Name = *update.Name
	}
	if update.Type != nil {
		category.Type = *update.Type
	}
	if update.MonthlyBudget != nil {
		category.MonthlyBudget = *update.MonthlyBudget
	}
	if update.GoalAmount != nil {
		category.GoalAmount = update.GoalAmount
	}
	return category, nil
}

func (m *MockCategoryService) DeleteCategory(categoryID int) (*domain.Category, error) {
	for i := range m.categories {
		if m.categories[i].ID == categoryID {
			deleted := m.categories[i]
			m.categories = append(m.categories[:i], m.categories[i+1:]...)
			return &deleted, nil
		}
	}
	return nil, ledgerErrors.NewNotFoundError("Category", categoryID)
}

func (m *MockCategoryService) QueryCategories(params query.Params) (query.PaginatedResponse[domain.Category], error) {
	if m.shouldFail {
		return query.PaginatedResponse[domain.Category]{}, errors.New("service error")
	}
	if err := params.Normalize(); err != nil {
		return query.PaginatedResponse[domain.Category]{}, err
	}
	items, err := m.ListCategories(params.Skip, params.Limit)
	if err != nil {
		return query.PaginatedResponse[domain.Category]{}, err
	}
	return query.NewPaginatedResponse(items, len(m.categories), params.Skip, params.Limit), nil
}

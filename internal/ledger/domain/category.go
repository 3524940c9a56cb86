package domain

import (
	"github.com/shopspring/decimal"

	ledgerErrors "github.com/mwielgosz/BudgetBook/internal/ledger/errors"
	"github.com/mwielgosz/BudgetBook/internal/ledger/query"
)

const (
	CategoryTypeExpense = "expense"
	CategoryTypeIncome  = "income"
)

type Category struct {
	ID            int              `json:"id"`
	Name          string           `json:"name"`
	Type          string           `json:"type"` // "income" or "expense"
	MonthlyBudget decimal.Decimal  `json:"monthly_budget"`
	IsDefault     bool             `json:"is_default"`
	GoalAmount    *decimal.Decimal `json:"goal_amount,omitempty"`
}

type CategoryUpdate struct {
	Name          *string          `json:"name"`
	Type          *string          `json:"type"`
	MonthlyBudget *decimal.Decimal `json:"monthly_budget"`
	GoalAmount    *decimal.Decimal `json:"goal_amount"`
}

type CategoryRepository interface {
	Save(category *Category) error
	FindByID(categoryID int) (*Category, error)
	FindAll(skip, limit int) ([]Category, error)
	Update(categoryID int, update CategoryUpdate) (*Category, error)
	Delete(categoryID int) (*Category, error)
	Query(params query.Params) ([]Category, int, error)
}

func IsValidCategoryType(categoryType string) bool {
	return categoryType == CategoryTypeExpense || categoryType == CategoryTypeIncome
}

func (c *Category) Validate() error {
	if c.Name == "" {
		return ledgerErrors.NewValidationError("Category name must not be empty")
	}
	if !IsValidCategoryType(c.Type) {
		return ledgerErrors.NewValidationError("Category type must be 'income' or 'expense'")
	}
	return nil
}

func (u *CategoryUpdate) Validate() error {
	if u.Type != nil && !IsValidCategoryType(*u.Type) {
		return ledgerErrors.NewValidationError("Category type must be 'income' or 'expense'")
	}
	return nil
}

package domain

import (
	"github.com/shopspring/decimal"

	ledgerErrors "github.com/mwielgosz/BudgetBook/internal/ledger/errors"
	"github.com/mwielgosz/BudgetBook/internal/ledger/query"
)

// BudgetAllocation is the planned spend for one category in one year/month.
// Nothing stops two allocations existing for the same (year, month, category).
type BudgetAllocation struct {
	ID         int             `json:"id"`
	Year       int             `json:"year"`
	Month      int             `json:"month"`
	Amount     decimal.Decimal `json:"amount"`
	CategoryID int             `json:"category_id"`
}

type BudgetAllocationUpdate struct {
	Year       *int             `json:"year"`
	Month      *int             `json:"month"`
	Amount     *decimal.Decimal `json:"amount"`
	CategoryID *int             `json:"category_id"`
}

type BudgetAllocationRepository interface {
	Save(allocation *BudgetAllocation) error
	FindByID(allocationID int) (*BudgetAllocation, error)
	FindAll(skip, limit int) ([]BudgetAllocation, error)
	Update(allocationID int, update BudgetAllocationUpdate) (*BudgetAllocation, error)
	Delete(allocationID int) (*BudgetAllocation, error)
	Query(params query.Params) ([]BudgetAllocation, int, error)
}

func (b *BudgetAllocation) Validate() error {
	if b.Month < 1 || b.Month > 12 {
		return ledgerErrors.NewValidationError("Budget allocation month must be between 1 and 12")
	}
	if b.Year < 1 {
		return ledgerErrors.NewValidationError("Budget allocation year must be positive")
	}
	if b.CategoryID == 0 {
		return ledgerErrors.NewValidationError("Budget allocation must reference a category")
	}
	return nil
}

func (u *BudgetAllocationUpdate) Validate() error {
	if u.Month != nil && (*u.Month < 1 || *u.Month > 12) {
		return ledgerErrors.NewValidationError("Budget allocation month must be between 1 and 12")
	}
	return nil
}

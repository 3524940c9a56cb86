package domain

import (
	"time"

	"github.com/shopspring/decimal"

	ledgerErrors "github.com/mwielgosz/BudgetBook/internal/ledger/errors"
	"github.com/mwielgosz/BudgetBook/internal/ledger/query"
)

type Account struct {
	ID             int             `json:"id"`
	Name           string          `json:"name"`
	Type           string          `json:"type"` // "checking", "savings", "credit_card", etc.
	Balance        decimal.Decimal `json:"balance"`
	LastReconciled *time.Time      `json:"last_reconciled,omitempty"`
}

type AccountUpdate struct {
	Name    *string          `json:"name"`
	Type    *string          `json:"type"`
	Balance *decimal.Decimal `json:"balance"`
}

type AccountRepository interface {
	Save(account *Account) error
	FindByID(accountID int) (*Account, error)
	FindAll(skip, limit int) ([]Account, error)
	Update(accountID int, update AccountUpdate) (*Account, error)
	Delete(accountID int) (*Account, error)
	Query(params query.Params) ([]Account, int, error)
}

func (a *Account) Validate() error {
	if a.Name == "" {
		return ledgerErrors.NewValidationError("Account name must not be empty")
	}
	if a.Type == "" {
		return ledgerErrors.NewValidationError("Account type must not be empty")
	}
	return nil
}

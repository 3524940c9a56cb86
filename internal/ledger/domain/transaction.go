package domain

import (
	"github.com/shopspring/decimal"

	ledgerErrors "github.com/mwielgosz/BudgetBook/internal/ledger/errors"
	"github.com/mwielgosz/BudgetBook/internal/ledger/query"
)

type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "PENDING"
	TransactionStatusCompleted TransactionStatus = "COMPLETED"
)

type Transaction struct {
	ID          int               `json:"id"`
	Date        Date              `json:"date"`
	Amount      decimal.Decimal   `json:"amount"`
	Description string            `json:"description"`
	Memo        *string           `json:"memo,omitempty"`
	AccountID   int               `json:"account_id"`
	CategoryID  int               `json:"category_id"`
	StoreID     *int              `json:"store_id,omitempty"`
	Status      TransactionStatus `json:"status"`
}

type TransactionUpdate struct {
	Date        *Date            `json:"date"`
	Amount      *decimal.Decimal `json:"amount"`
	Description *string          `json:"description"`
	Memo        *string          `json:"memo"`
	AccountID   *int             `json:"account_id"`
	CategoryID  *int             `json:"category_id"`
	StoreID     *int             `json:"store_id"`
}

type TransactionRepository interface {
	Save(transaction *Transaction) error
	FindByID(transactionID int) (*Transaction, error)
	FindAll(skip, limit int) ([]Transaction, error)
	Update(transactionID int, update TransactionUpdate) (*Transaction, error)
	Delete(transactionID int) (*Transaction, error)
	Complete(transactionID int) (*Transaction, error)
	Query(params query.Params) ([]Transaction, int, error)
}

func (t *Transaction) Validate() error {
	if t.Date.IsZero() {
		return ledgerErrors.NewValidationError("Transaction date must be set")
	}
	if t.Description == "" {
		return ledgerErrors.NewValidationError("Transaction description must not be empty")
	}
	if t.AccountID == 0 {
		return ledgerErrors.NewValidationError("Transaction must reference an account")
	}
	if t.CategoryID == 0 {
		return ledgerErrors.NewValidationError("Transaction must reference a category")
	}
	if t.Status != "" && t.Status != TransactionStatusPending {
		return ledgerErrors.NewValidationError("Transaction status cannot be set at creation")
	}
	return nil
}

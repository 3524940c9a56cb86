package domain

import (
	ledgerErrors "github.com/mwielgosz/BudgetBook/internal/ledger/errors"
	"github.com/mwielgosz/BudgetBook/internal/ledger/query"
)

// Reconciliation asserts an account's balance was verified as of a date.
// Creating one also stamps the account's last_reconciled date.
type Reconciliation struct {
	ID        int  `json:"id"`
	Date      Date `json:"date"`
	AccountID int  `json:"account_id"`
}

type ReconciliationRepository interface {
	// Save inserts the reconciliation and updates the owning account's
	// last_reconciled date in the same database transaction.
	Save(reconciliation *Reconciliation) error
	FindByID(reconciliationID int) (*Reconciliation, error)
	FindLastByAccount(accountID int) (*Reconciliation, error)
	Delete(reconciliationID int) (*Reconciliation, error)
	Query(params query.Params) ([]Reconciliation, int, error)
}

func (r *Reconciliation) Validate() error {
	if r.Date.IsZero() {
		return ledgerErrors.NewValidationError("Reconciliation date must be set")
	}
	if r.AccountID == 0 {
		return ledgerErrors.NewValidationError("Reconciliation must reference an account")
	}
	return nil
}

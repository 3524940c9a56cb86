package application

import (
	"github.com/mwielgosz/BudgetBook/internal/ledger/domain"
	ledgerErrors "github.com/mwielgosz/BudgetBook/internal/ledger/errors"
	"github.com/mwielgosz/BudgetBook/internal/ledger/query"
)

type ReconciliationService struct {
	repo domain.ReconciliationRepository
}

func NewReconciliationService(repo domain.ReconciliationRepository) *ReconciliationService {
	return &ReconciliationService{repo: repo}
}

// CreateReconciliation records the checkpoint and, as a side effect, moves the
// owning account's last_reconciled date to the reconciliation's date.
func (s *ReconciliationService) CreateReconciliation(reconciliation *domain.Reconciliation) error {
	if err := reconciliation.Validate(); err != nil {
		return err
	}
	return s.repo.Save(reconciliation)
}

func (s *ReconciliationService) GetReconciliation(reconciliationID int) (*domain.Reconciliation, error) {
	reconciliation, err := s.repo.FindByID(reconciliationID)
	if err != nil {
		return nil, err
	}
	if reconciliation == nil {
		return nil, ledgerErrors.NewNotFoundError("Reconciliation", reconciliationID)
	}
	return reconciliation, nil
}

// GetLastReconciliation returns the account's most recent reconciliation by
// date. Not-found means the account has never been reconciled (or does not
// exist).
func (s *ReconciliationService) GetLastReconciliation(accountID int) (*domain.Reconciliation, error) {
	reconciliation, err := s.repo.FindLastByAccount(accountID)
	if err != nil {
		return nil, err
	}
	if reconciliation == nil {
		return nil, ledgerErrors.NewNotFoundError("Reconciliation for account", accountID)
	}
	return reconciliation, nil
}

func (s *ReconciliationService) DeleteReconciliation(reconciliationID int) (*domain.Reconciliation, error) {
	reconciliation, err := s.repo.Delete(reconciliationID)
	if err != nil {
		return nil, err
	}
	if reconciliation == nil {
		return nil, ledgerErrors.NewNotFoundError("Reconciliation", reconciliationID)
	}
	return reconciliation, nil
}

func (s *ReconciliationService) QueryReconciliations(params query.Params) (query.PaginatedResponse[domain.Reconciliation], error) {
	if err := params.Normalize(); err != nil {
		return query.PaginatedResponse[domain.Reconciliation]{}, err
	}
	items, total, err := s.repo.Query(params)
	if err != nil {
		return query.PaginatedResponse[domain.Reconciliation]{}, err
	}
	return query.NewPaginatedResponse(items, total, params.Skip, params.Limit), nil
}

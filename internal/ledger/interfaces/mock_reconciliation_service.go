package interfaces

import (
	"errors"

	"github.com/mwielgosz/BudgetBook/internal/ledger/domain"
	ledgerErrors "github.com/mwielgosz/BudgetBook/internal/ledger/errors"
	"github.com/mwielgosz/BudgetBook/internal/ledger/query"
)

type MockReconciliationService struct {
	reconciliations []domain.Reconciliation
	shouldFail      bool
}

func (m *MockReconciliationService) CreateReconciliation(reconciliation *domain.Reconciliation) error {
	if m.shouldFail {
		return errors.New("service error")
	}
	if err := reconciliation.Validate(); err != nil {
		return err
	}
	reconciliation.ID = len(m.reconciliations) + 1
	m.reconciliations = append(m.reconciliations, *reconciliation)
	return nil
}

func (m *MockReconciliationService) GetReconciliation(reconciliationID int) (*domain.Reconciliation, error) {
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	for i := range m.reconciliations {
		if m.reconciliations[i].ID == reconciliationID {
			return &m.reconciliations[i], nil
		}
	}
	return nil, ledgerErrors.NewNotFoundError("Reconciliation", reconciliationID)
}

func (m *MockReconciliationService) GetLastReconciliation(accountID int) (*domain.Reconciliation, error) {
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	var last *domain.Reconciliation
	for i := range m.reconciliations {
		if m.reconciliations[i].AccountID != accountID {
			continue
		}
		if last == nil || m.reconciliations[i].Date.After(last.Date.Time) {
			last = &m.reconciliations[i]
		}
	}
	if last == nil {
		return nil, ledgerErrors.NewNotFoundError("Reconciliation for account", accountID)
	}
	return last, nil
}

func (m *MockReconciliationService) DeleteReconciliation(reconciliationID int) (*domain.Reconciliation, error) {
	for i := range m.reconciliations {
		if m.reconciliations[i].ID == reconciliationID {
			deleted := m.reconciliations[i]
			m.reconciliations = append(m.reconciliations[:i], m.reconciliations[i+1:]...)
			return &deleted, nil
		}
	}
	return nil, ledgerErrors.NewNotFoundError("Reconciliation", reconciliationID)
}

func (m *MockReconciliationService) QueryReconciliations(params query.Params) (query.PaginatedResponse[domain.Reconciliation], error) {
	if m.shouldFail {
		return query.PaginatedResponse[domain.Reconciliation]{}, errors.New("service error")
	}
	if err := params.Normalize(); err != nil {
		return query.PaginatedResponse[domain.Reconciliation]{}, err
	}
	items := m.reconciliations
	if params.Skip >= len(items) {
		items = nil
	} else {
		end := params.Skip + params.Limit
		if end > len(items) {
			end = len(items)
		}
		items = items[params.Skip:end]
	}
	return query.NewPaginatedResponse(items, len(m.reconciliations), params.Skip, params.Limit), nil
}

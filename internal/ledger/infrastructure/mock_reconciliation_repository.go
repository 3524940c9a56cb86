package infrastructure

import (
	"github.com/mwielgosz/BudgetBook/internal/ledger/domain"
	"github.com/mwielgosz/BudgetBook/internal/ledger/query"
)

// MockReconciliationRepository is an in-memory ReconciliationRepository used
// by the application-layer tests. LastReconciled records the per-account
// stamping a real Save performs.
type MockReconciliationRepository struct {
	Reconciliations []domain.Reconciliation
	LastReconciled  map[int]domain.Date
	Err             error
}

func (m *MockReconciliationRepository) Save(reconciliation *domain.Reconciliation) error {
	if m.Err != nil {
		return m.Err
	}
	reconciliation.ID = len(m.Reconciliations) + 1
	m.Reconciliations = append(m.Reconciliations, *reconciliation)
	if m.LastReconciled == nil {
		m.LastReconciled = make(map[int]domain.Date)
	}
	m.LastReconciled[reconciliation.AccountID] = reconciliation.Date
	return nil
}

func (m *MockReconciliationRepository) FindByID(reconciliationID int) (*domain.Reconciliation, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.Reconciliations {
		if m.Reconciliations[i].ID == reconciliationID {
			reconciliation := m.Reconciliations[i]
			return &reconciliation, nil
		}
	}
	return nil, nil
}

func (m *MockReconciliationRepository) FindLastByAccount(accountID int) (*domain.Reconciliation, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var last *domain.Reconciliation
	for i := range m.Reconciliations {
		if m.Reconciliations[i].AccountID != accountID {
			continue
		}
		if last == nil || m.Reconciliations[i].Date.After(last.Date.Time) {
			reconciliation := m.Reconciliations[i]
			last = &reconciliation
		}
	}
	return last, nil
}

func (m *MockReconciliationRepository) Delete(reconciliationID int) (*domain.Reconciliation, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.Reconciliations {
		if m.Reconciliations[i].ID == reconciliationID {
			deleted := m.Reconciliations[i]
			m.Reconciliations = append(m.Reconciliations[:i], m.Reconciliations[i+1:]...)
			return &deleted, nil
		}
	}
	return nil, nil
}

func (m *MockReconciliationRepository) Query(params query.Params) ([]domain.Reconciliation, int, error) {
	if m.Err != nil {
		return nil, 0, m.Err
	}
	items := m.Reconciliations
	if params.Skip >= len(items) {
		items = nil
	} else {
		end := params.Skip + params.Limit
		if end > len(items) {
			end = len(items)
		}
		items = items[params.Skip:end]
	}
	return items, len(m.Reconciliations), nil
}

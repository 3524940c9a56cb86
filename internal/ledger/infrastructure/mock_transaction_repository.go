package infrastructure

import (
	"github.com/mwielgosz/BudgetBook/internal/ledger/domain"
	"github.com/mwielgosz/BudgetBook/internal/ledger/query"
)

// MockTransactionRepository is an in-memory TransactionRepository used by the
// application-layer tests.
type MockTransactionRepository struct {
	Transactions []domain.Transaction
	Err          error
}

func (m *MockTransactionRepository) Save(transaction *domain.Transaction) error {
	if m.Err != nil {
		return m.Err
	}
	transaction.ID = len(m.Transactions) + 1
	transaction.Status = domain.TransactionStatusPending
	m.Transactions = append(m.Transactions, *transaction)
	return nil
}

func (m *MockTransactionRepository) FindByID(transactionID int) (*domain.Transaction, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.Transactions {
		if m.Transactions[i].ID == transactionID {
			transaction := m.Transactions[i]
			return &transaction, nil
		}
	}
	return nil, nil
}

func (m *MockTransactionRepository) FindAll(skip, limit int) ([]domain.Transaction, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if skip >= len(m.Transactions) {
		return nil, nil
	}
	end := skip + limit
	if end > len(m.Transactions) {
		end = len(m.Transactions)
	}
	return m.Transactions[skip:end], nil
}

func (m *MockTransactionRepository) Update(transactionID int, update domain.TransactionUpdate) (*domain.Transaction, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.Transactions {
		if m.Transactions[i].ID != transactionID {
			continue
		}
		if update.Date != nil {
			m.Transactions[i].Date = *update.Date
		}
		if update.Amount != nil {
			m.Transactions[i].Amount = *update.Amount
		}
		if update.Description != nil {
			m.Transactions[i].Description = *update.Description
		}
		if update.Memo != nil {
			m.Transactions[i].Memo = update.Memo
		}
		if update.AccountID != nil {
			m.Transactions[i].AccountID = *update.AccountID
		}
		if update.CategoryID != nil {
			m.Transactions[i].CategoryID = *update.CategoryID
		}
		if update.StoreID != nil {
			m.Transactions[i].StoreID = update.StoreID
		}
		transaction := m.Transactions[i]
		return &transaction, nil
	}
	return nil, nil
}

func (m *MockTransactionRepository) Delete(transactionID int) (*domain.Transaction, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.Transactions {
		if m.Transactions[i].ID == transactionID {
			deleted := m.Transactions[i]
			m.Transactions = append(m.Transactions[:i], m.Transactions[i+1:]...)
			return &deleted, nil
		}
	}
	return nil, nil
}

func (m *MockTransactionRepository) Complete(transactionID int) (*domain.Transaction, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.Transactions {
		if m.Transactions[i].ID == transactionID {
			m.Transactions[i].Status = domain.TransactionStatusCompleted
			transaction := m.Transactions[i]
			return &transaction, nil
		}
	}
	return nil, nil
}

func (m *MockTransactionRepository) Query(params query.Params) ([]domain.Transaction, int, error) {
	if m.Err != nil {
		return nil, 0, m.Err
	}
	items, err := m.FindAll(params.Skip, params.Limit)
	if err != nil {
		return nil, 0, err
	}
	return items, len(m.Transactions), nil
}

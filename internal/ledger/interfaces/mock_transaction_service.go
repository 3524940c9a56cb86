package interfaces

import (
	"errors"

	"github.com/mwielgosz/BudgetBook/internal/ledger/domain"
	ledgerErrors "github.com/mwielgosz/BudgetBook/internal/ledger/errors"
	"github.com/mwielgosz/BudgetBook/internal/ledger/query"
)

type MockTransactionService struct {
	transactions []domain.Transaction
	shouldFail   bool
}

func (m *MockTransactionService) CreateTransaction(transaction *domain.Transaction) error {
	if m.shouldFail {
		return errors.New("service error")
	}
	if err := transaction.Validate(); err != nil {
		return err
	}
	transaction.ID = len(m.transactions) + 1
	transaction.Status = domain.TransactionStatusPending
	m.transactions = append(m.transactions, *transaction)
	return nil
}

func (m *MockTransactionService) GetTransaction(transactionID int) (*domain.Transaction, error) {
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	for i := range m.transactions {
		if m.transactions[i].ID == transactionID {
			return &m.transactions[i], nil
		}
	}
	return nil, ledgerErrors.NewNotFoundError("Transaction", transactionID)
}

func (m *MockTransactionService) ListTransactions(skip, limit int) ([]domain.Transaction, error) {
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	if skip >= len(m.transactions) {
		return nil, nil
	}
	end := skip + limit
	if end > len(m.transactions) {
		end = len(m.transactions)
	}
	return m.transactions[skip:end], nil
}

func (m *MockTransactionService) UpdateTransaction(transactionID int, update domain.TransactionUpdate) (*domain.Transaction, error) {
	transaction, err := m.GetTransaction(transactionID)
	if err != nil {
		return nil, err
	}
	if update.Amount != nil {
		transaction.Amount = *update.Amount
	}
	if update.Description != nil {
		transaction.Description = *update.Description
	}
	if update.Memo != nil {
		transaction.Memo = update.Memo
	}
	return transaction, nil
}

func (m *MockTransactionService) DeleteTransaction(transactionID int) (*domain.Transaction, error) {
	for i := range m.transactions {
		if m.transactions[i].ID == transactionID {
			deleted := m.transactions[i]
			m.transactions = append(m.transactions[:i], m.transactions[i+1:]...)
			return &deleted, nil
		}
	}
	return nil, ledgerErrors.NewNotFoundError("Transaction", transactionID)
}

func (m *MockTransactionService) CompleteTransaction(transactionID int) (*domain.Transaction, error) {
	transaction, err := m.GetTransaction(transactionID)
	if err != nil {
		return nil, err
	}
	transaction.Status = domain.TransactionStatusCompleted
	return transaction, nil
}

func (m *MockTransactionService) QueryTransactions(params query.Params) (query.PaginatedResponse[domain.Transaction], error) {
	if m.shouldFail {
		return query.PaginatedResponse[domain.Transaction]{}, errors.New("service error")
	}
	if err := params.Normalize(); err != nil {
		return query.PaginatedResponse[domain.Transaction]{}, err
	}
	items, err := m.ListTransactions(params.Skip, params.Limit)
	if err != nil {
		return query.PaginatedResponse[domain.Transaction]{}, err
	}
	return query.NewPaginatedResponse(items, len(m.transactions), params.Skip, params.Limit), nil
}

package application

import (
	"github.com/mwielgosz/BudgetBook/internal/ledger/domain"
	ledgerErrors "github.com/mwielgosz/BudgetBook/internal/ledger/errors"
	"github.com/mwielgosz/BudgetBook/internal/ledger/query"
)

type TransactionService struct {
	repo domain.TransactionRepository
}

func NewTransactionService(repo domain.TransactionRepository) *TransactionService {
	return &TransactionService{repo: repo}
}

// CreateTransaction inserts a new transaction. The status always starts
// PENDING; referential integrity against accounts, categories and stores is
// enforced by the storage layer.
func (s *TransactionService) CreateTransaction(transaction *domain.Transaction) error {
	if err := transaction.Validate(); err != nil {
		return err
	}
	return s.repo.Save(transaction)
}

func (s *TransactionService) GetTransaction(transactionID int) (*domain.Transaction, error) {
	transaction, err := s.repo.FindByID(transactionID)
	if err != nil {
		return nil, err
	}
	if transaction == nil {
		return nil, ledgerErrors.NewNotFoundError("Transaction", transactionID)
	}
	return transaction, nil
}

func (s *TransactionService) ListTransactions(skip, limit int) ([]domain.Transaction, error) {
	return s.repo.FindAll(normalizeListRange(skip, limit))
}

func (s *TransactionService) UpdateTransaction(transactionID int, update domain.TransactionUpdate) (*domain.Transaction, error) {
	transaction, err := s.repo.Update(transactionID, update)
	if err != nil {
		return nil, err
	}
	if transaction == nil {
		return nil, ledgerErrors.NewNotFoundError("Transaction", transactionID)
	}
	return transaction, nil
}

func (s *TransactionService) DeleteTransaction(transactionID int) (*domain.Transaction, error) {
	transaction, err := s.repo.Delete(transactionID)
	if err != nil {
		return nil, err
	}
	if transaction == nil {
		return nil, ledgerErrors.NewNotFoundError("Transaction", transactionID)
	}
	return transaction, nil
}

// CompleteTransaction performs the PENDING -> COMPLETED transition.
func (s *TransactionService) CompleteTransaction(transactionID int) (*domain.Transaction, error) {
	transaction, err := s.repo.Complete(transactionID)
	if err != nil {
		return nil, err
	}
	if transaction == nil {
		return nil, ledgerErrors.NewNotFoundError("Transaction", transactionID)
	}
	return transaction, nil
}

func (s *TransactionService) QueryTransactions(params query.Params) (query.PaginatedResponse[domain.Transaction], error) {
	if err := params.Normalize(); err != nil {
		return query.PaginatedResponse[domain.Transaction]{}, err
	}
	items, total, err := s.repo.Query(params)
	if err != nil {
		return query.PaginatedResponse[domain.Transaction]{}, err
	}
	return query.NewPaginatedResponse(items, total, params.Skip, params.Limit), nil
}

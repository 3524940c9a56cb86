package interfaces

import (
	"errors"

	"github.com/mwielgosz/BudgetBook/internal/ledger/domain"
	ledgerErrors "github.com/mwielgosz/BudgetBook/internal/ledger/errors"
	"github.com/mwielgosz/BudgetBook/internal/ledger/query"
)

type MockAccountService struct {
	accounts   []domain.Account
	shouldFail bool
}

func (m *MockAccountService) CreateAccount(account *domain.Account) error {
	if m.shouldFail {
		return errors.New("service error")
	}
	if err := account.Validate(); err != nil {
		return err
	}
	account.ID = len(m.accounts) + 1
	m.accounts = append(m.accounts, *account)
	return nil
}

func (m *MockAccountService) GetAccount(accountID int) (*domain.Account, error) {
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	for i := range m.accounts {
		if m.accounts[i].ID == accountID {
			return &m.accounts[i], nil
		}
	}
	return nil, ledgerErrors.NewNotFoundError("Account", accountID)
}

func (m *MockAccountService) ListAccounts(skip, limit int) ([]domain.Account, error) {
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	if skip >= len(m.accounts) {
		return nil, nil
	}
	end := skip + limit
	if end > len(m.accounts) {
		end = len(m.accounts)
	}
	return m.accounts[skip:end], nil
}

func (m *MockAccountService) UpdateAccount(accountID int, update domain.AccountUpdate) (*domain.Account, error) {
	account, err := m.GetAccount(accountID)
	if err != nil {
		return nil, err
	}
	if update.Name != nil {
		account.Name = *update.Name
	}
	if update.Type != nil {
		account.Type = *update.Type
	}
	if update.Balance != nil {
		account.Balance = *update.Balance
	}
	return account, nil
}

func (m *MockAccountService) DeleteAccount(accountID int) (*domain.Account, error) {
	for i := range m.accounts {
		if m.accounts[i].ID == accountID {
			deleted := m.accounts[i]
			m.accounts = append(m.accounts[:i], m.accounts[i+1:]...)
			return &deleted, nil
		}
	}
	return nil, ledgerErrors.NewNotFoundError("Account", accountID)
}

func (m *MockAccountService) QueryAccounts(params query.Params) (query.PaginatedResponse[domain.Account], error) {
	if m.shouldFail {
		return query.PaginatedResponse[domain.Account]{}, errors.New("service error")
	}
	if err := params.Normalize(); err != nil {
		return query.PaginatedResponse[domain.Account]{}, err
	}
	items, err := m.ListAccounts(params.Skip, params.Limit)
	if err != nil {
		return query.PaginatedResponse[domain.Account]{}, err
	}
	return query.NewPaginatedResponse(items, len(m.accounts), params.Skip, params.Limit), nil
}

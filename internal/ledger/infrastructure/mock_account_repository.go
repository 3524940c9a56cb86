package infrastructure

import (
	"github.com/mwielgosz/BudgetBook/internal/ledger/domain"
	"github.com/mwielgosz/BudgetBook/internal/ledger/query"
)

// MockAccountRepository is an in-memory AccountRepository used by the
// application-layer tests.
type MockAccountRepository struct {
	Accounts []domain.Account
	Err      error
}

func (m *MockAccountRepository) Save(account *domain.Account) error {
	if m.Err != nil {
		return m.Err
	}
	account.ID = len(m.Accounts) + 1
	m.Accounts = append(m.Accounts, *account)
	return nil
}

func (m *MockAccountRepository) FindByID(accountID int) (*domain.Account, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.Accounts {
		if m.Accounts[i].ID == accountID {
			account := m.Accounts[i]
			return &account, nil
		}
	}
	return nil, nil
}

func (m *MockAccountRepository) FindAll(skip, limit int) ([]domain.Account, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if skip >= len(m.Accounts) {
		return nil, nil
	}
	end := skip + limit
	if end > len(m.Accounts) {
		end = len(m.Accounts)
	}
	return m.Accounts[skip:end], nil
}

func (m *MockAccountRepository) Update(accountID int, update domain.AccountUpdate) (*domain.Account, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.Accounts {
		if m.Accounts[i].ID != accountID {
			continue
		}
		if update.Name != nil {
			m.Accounts[i].Name = *update.Name
		}
		if update.Type != nil {
			m.Accounts[i].Type = *update.Type
		}
		if update.Balance != nil {
			m.Accounts[i].Balance = *update.Balance
		}
		account := m.Accounts[i]
		return &account, nil
	}
	return nil, nil
}

func (m *MockAccountRepository) Delete(accountID int) (*domain.Account, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.Accounts {
		if m.Accounts[i].ID == accountID {
			deleted := m.Accounts[i]
			m.Accounts = append(m.Accounts[:i], m.Accounts[i+1:]...)
			return &deleted, nil
		}
	}
	return nil, nil
}

func (m *MockAccountRepository) Query(params query.Params) ([]domain.Account, int, error) {
	if m.Err != nil {
		return nil, 0, m.Err
	}
	items, err := m.FindAll(params.Skip, params.Limit)
	if err != nil {
		return nil, 0, err
	}
	return items, len(m.Accounts), nil
}

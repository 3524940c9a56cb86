package application

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/mwielgosz/BudgetBook/internal/ledger/domain"
	ledgerErrors "github.com/mwielgosz/BudgetBook/internal/ledger/errors"
	"github.com/mwielgosz/BudgetBook/internal/ledger/infrastructure"
	"github.com/mwielgosz/BudgetBook/internal/ledger/query"
)

func TestCreateAccount_AssignsID(t *testing.T) {
	repo := &infrastructure.MockAccountRepository{}
	service := NewAccountService(repo)

	account := &domain.Account{Name: "Checking", Type: "checking", Balance: decimal.New(100, 0)}
	err := service.CreateAccount(account)

	assert.NoError(t, err)
	assert.Equal(t, 1, account.ID)
	assert.Equal(t, 1, len(repo.Accounts))
}

func TestCreateAccount_ValidationFailsBeforeRepo(t *testing.T) {
	repo := &infrastructure.MockAccountRepository{Err: errors.New("repo must not be reached")}
	service := NewAccountService(repo)

	err := service.CreateAccount(&domain.Account{Type: "checking"})

	assert.Error(t, err)
	assert.True(t, ledgerErrors.IsValidationError(err))
}

func TestGetAccount_MapsMissingToNotFound(t *testing.T) {
	service := NewAccountService(&infrastructure.MockAccountRepository{})

	account, err := service.GetAccount(42)

	assert.Nil(t, account)
	assert.True(t, ledgerErrors.IsNotFoundError(err))
	assert.Equal(t, "Account with id 42 not found", err.Error())
}

func TestUpdateAccount_MapsMissingToNotFound(t *testing.T) {
	service := NewAccountService(&infrastructure.MockAccountRepository{})

	name := "Renamed"
	account, err := service.UpdateAccount(7, domain.AccountUpdate{Name: &name})

	assert.Nil(t, account)
	assert.True(t, ledgerErrors.IsNotFoundError(err))
}

func TestUpdateAccount_PartialUpdate(t *testing.T) {
	repo := &infrastructure.MockAccountRepository{
		Accounts: []domain.Account{
			{ID: 1, Name: "Checking", Type: "checking", Balance: decimal.New(100, 0)},
		},
	}
	service := NewAccountService(repo)

	balance := decimal.RequireFromString("250.75")
	account, err := service.UpdateAccount(1, domain.AccountUpdate{Balance: &balance})

	assert.NoError(t, err)
	assert.Equal(t, "Checking", account.Name)
	assert.True(t, account.Balance.Equal(balance))
}

func TestDeleteAccount_RemovesAndReturns(t *testing.T) {
	repo := &infrastructure.MockAccountRepository{
		Accounts: []domain.Account{{ID: 1, Name: "Checking", Type: "checking"}},
	}
	service := NewAccountService(repo)

	deleted, err := service.DeleteAccount(1)

	assert.NoError(t, err)
	assert.Equal(t, "Checking", deleted.Name)
	assert.Equal(t, 0, len(repo.Accounts))
}

func TestQueryAccounts_BuildsPaginatedResponse(t *testing.T) {
	repo := &infrastructure.MockAccountRepository{
		Accounts: []domain.Account{
			{ID: 1, Name: "Checking", Type: "checking"},
			{ID: 2, Name: "Savings", Type: "savings"},
			{ID: 3, Name: "Credit", Type: "credit"},
		},
	}
	service := NewAccountService(repo)

	response, err := service.QueryAccounts(query.Params{Skip: 2, Limit: 2})

	assert.NoError(t, err)
	assert.Equal(t, 3, response.Total)
	assert.Equal(t, 2, response.Page)
	assert.Equal(t, 2, response.Size)
	assert.Equal(t, 1, len(response.Items))
}

func TestQueryAccounts_RejectsNegativeSkip(t *testing.T) {
	service := NewAccountService(&infrastructure.MockAccountRepository{})

	_, err := service.QueryAccounts(query.Params{Skip: -1})

	assert.True(t, ledgerErrors.IsValidationError(err))
}

func TestQueryAccounts_EmptyPageKeepsItemsNonNil(t *testing.T) {
	repo := &infrastructure.MockAccountRepository{
		Accounts: []domain.Account{{ID: 1, Name: "Checking", Type: "checking"}},
	}
	service := NewAccountService(repo)

	response, err := service.QueryAccounts(query.Params{Skip: 10, Limit: 5})

	assert.NoError(t, err)
	assert.NotNil(t, response.Items)
	assert.Equal(t, 0, len(response.Items))
	assert.Equal(t, 1, response.Total)
}

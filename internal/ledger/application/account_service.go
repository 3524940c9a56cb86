package application

import (
	"github.com/mwielgosz/BudgetBook/internal/ledger/domain"
	ledgerErrors "github.com/mwielgosz/BudgetBook/internal/ledger/errors"
	"github.com/mwielgosz/BudgetBook/internal/ledger/query"
)

type AccountService struct {
	repo domain.AccountRepository
}

func NewAccountService(repo domain.AccountRepository) *AccountService {
	return &AccountService{repo: repo}
}

func (s *AccountService) CreateAccount(account *domain.Account) error {
	if err := account.Validate(); err != nil {
		return err
	}
	return s.repo.Save(account)
}

func (s *AccountService) GetAccount(accountID int) (*domain.Account, error) {
	account, err := s.repo.FindByID(accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ledgerErrors.NewNotFoundError("Account", accountID)
	}
	return account, nil
}

func (s *AccountService) ListAccounts(skip, limit int) ([]domain.Account, error) {
	return s.repo.FindAll(normalizeListRange(skip, limit))
}

func (s *AccountService) UpdateAccount(accountID int, update domain.AccountUpdate) (*domain.Account, error) {
	account, err := s.repo.Update(accountID, update)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ledgerErrors.NewNotFoundError("Account", accountID)
	}
	return account, nil
}

func (s *AccountService) DeleteAccount(accountID int) (*domain.Account, error) {
	account, err := s.repo.Delete(accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ledgerErrors.NewNotFoundError("Account", accountID)
	}
	return account, nil
}

func (s *AccountService) QueryAccounts(params query.Params) (query.PaginatedResponse[domain.Account], error) {
	if err := params.Normalize(); err != nil {
		return query.PaginatedResponse[domain.Account]{}, err
	}
	items, total, err := s.repo.Query(params)
	if err != nil {
		return query.PaginatedResponse[domain.Account]{}, err
	}
	return query.NewPaginatedResponse(items, total, params.Skip, params.Limit), nil
}

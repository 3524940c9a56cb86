package infrastructure

import (
	"database/sql"

	"github.com/mwielgosz/BudgetBook/internal/ledger/domain"
	"github.com/mwielgosz/BudgetBook/internal/ledger/query"
)

const accountColumns = "id, name, type, balance, last_reconciled"

// AccountSchema is the allow-list of queryable account fields.
var AccountSchema = query.Schema{
	"id":              {Column: "id", Type: query.DataTypeNumber},
	"name":            {Column: "name", Type: query.DataTypeString},
	"type":            {Column: "type", Type: query.DataTypeString},
	"balance":         {Column: "balance", Type: query.DataTypeNumber},
	"last_reconciled": {Column: "last_reconciled", Type: query.DataTypeDate},
}

type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func scanAccount(rows *sql.Rows) (domain.Account, error) {
	var account domain.Account
	var lastReconciled sql.NullTime
	if err := rows.Scan(&account.ID, &account.Name, &account.Type, &account.Balance, &lastReconciled); err != nil {
		return account, err
	}
	if lastReconciled.Valid {
		t := lastReconciled.Time
		account.LastReconciled = &t
	}
	return account, nil
}

func (r *AccountRepository) Save(account *domain.Account) error {
	err := r.db.QueryRow(
		`INSERT INTO accounts (name, type, balance) VALUES ($1, $2, $3) RETURNING id`,
		account.Name, account.Type, account.Balance,
	).Scan(&account.ID)
	return mapConstraintError(err)
}

func (r *AccountRepository) FindByID(accountID int) (*domain.Account, error) {
	return findOne(r.db, `SELECT `+accountColumns+` FROM accounts WHERE id = $1`, accountID, scanAccount)
}

func (r *AccountRepository) FindAll(skip, limit int) ([]domain.Account, error) {
	return findAll(r.db, "accounts", accountColumns, skip, limit, scanAccount)
}

func (r *AccountRepository) Update(accountID int, update domain.AccountUpdate) (*domain.Account, error) {
	var builder updateBuilder
	if update.Name != nil {
		builder.set("name", *update.Name)
	}
	if update.Type != nil {
		builder.set("type", *update.Type)
	}
	if update.Balance != nil {
		builder.set("balance", *update.Balance)
	}
	if builder.empty() {
		return r.FindByID(accountID)
	}
	stmt, args := builder.stmt("accounts", accountColumns, accountID)
	return execReturning(r.db, stmt, args, scanAccount)
}

func (r *AccountRepository) Delete(accountID int) (*domain.Account, error) {
	return execReturning(r.db, `DELETE FROM accounts WHERE id = $1 RETURNING `+accountColumns,
		[]interface{}{accountID}, scanAccount)
}

func (r *AccountRepository) Query(params query.Params) ([]domain.Account, int, error) {
	return queryPage(r.db, "accounts", accountColumns, AccountSchema, params, scanAccount)
}

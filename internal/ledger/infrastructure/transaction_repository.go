package infrastructure

import (
	"database/sql"

	"github.com/mwielgosz/BudgetBook/internal/ledger/domain"
	"github.com/mwielgosz/BudgetBook/internal/ledger/query"
)

const transactionColumns = "id, date, amount, description, memo, account_id, category_id, store_id, status"

// TransactionSchema is the allow-list of queryable transaction fields.
var TransactionSchema = query.Schema{
	"id":          {Column: "id", Type: query.DataTypeNumber},
	"date":        {Column: "date", Type: query.DataTypeDate},
	"amount":      {Column: "amount", Type: query.DataTypeNumber},
	"description": {Column: "description", Type: query.DataTypeString},
	"memo":        {Column: "memo", Type: query.DataTypeString},
	"account_id":  {Column: "account_id", Type: query.DataTypeNumber},
	"category_id": {Column: "category_id", Type: query.DataTypeNumber},
	"store_id":    {Column: "store_id", Type: query.DataTypeNumber},
	"status":      {Column: "status", Type: query.DataTypeEnum},
}

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func scanTransaction(rows *sql.Rows) (domain.Transaction, error) {
	var transaction domain.Transaction
	var memo sql.NullString
	var storeID sql.NullInt64
	if err := rows.Scan(&transaction.ID, &transaction.Date, &transaction.Amount, &transaction.Description,
		&memo, &transaction.AccountID, &transaction.CategoryID, &storeID, &transaction.Status); err != nil {
		return transaction, err
	}
	if memo.Valid {
		m := memo.String
		transaction.Memo = &m
	}
	if storeID.Valid {
		id := int(storeID.Int64)
		transaction.StoreID = &id
	}
	return transaction, nil
}

func (r *TransactionRepository) Save(transaction *domain.Transaction) error {
	transaction.Status = domain.TransactionStatusPending
	err := r.db.QueryRow(
		`INSERT INTO transactions (date, amount, description, memo, account_id, category_id, store_id)
         VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
		transaction.Date, transaction.Amount, transaction.Description, transaction.Memo,
		transaction.AccountID, transaction.CategoryID, intPtr(transaction.StoreID),
	).Scan(&transaction.ID)
	return mapConstraintError(err)
}

func (r *TransactionRepository) FindByID(transactionID int) (*domain.Transaction, error) {
	return findOne(r.db, `SELECT `+transactionColumns+` FROM transactions WHERE id = $1`, transactionID, scanTransaction)
}

func (r *TransactionRepository) FindAll(skip, limit int) ([]domain.Transaction, error) {
	return findAll(r.db, "transactions", transactionColumns, skip, limit, scanTransaction)
}

func (r *TransactionRepository) Update(transactionID int, update domain.TransactionUpdate) (*domain.Transaction, error) {
	var builder updateBuilder
	if update.Date != nil {
		builder.set("date", *update.Date)
	}
	if update.Amount != nil {
		builder.set("amount", *update.Amount)
	}
	if update.Description != nil {
		builder.set("description", *update.Description)
	}
	if update.Memo != nil {
		builder.set("memo", *update.Memo)
	}
	if update.AccountID != nil {
		builder.set("account_id", *update.AccountID)
	}
	if update.CategoryID != nil {
		builder.set("category_id", *update.CategoryID)
	}
	if update.StoreID != nil {
		builder.set("store_id", *update.StoreID)
	}
	if builder.empty() {
		return r.FindByID(transactionID)
	}
	stmt, args := builder.stmt("transactions", transactionColumns, transactionID)
	return execReturning(r.db, stmt, args, scanTransaction)
}

func (r *TransactionRepository) Delete(transactionID int) (*domain.Transaction, error) {
	return execReturning(r.db, `DELETE FROM transactions WHERE id = $1 RETURNING `+transactionColumns,
		[]interface{}{transactionID}, scanTransaction)
}

// Complete moves the transaction to COMPLETED. The transition is one-way:
// there is no path back to PENDING.
func (r *TransactionRepository) Complete(transactionID int) (*domain.Transaction, error) {
	return execReturning(r.db,
		`UPDATE transactions SET status = $1 WHERE id = $2 RETURNING `+transactionColumns,
		[]interface{}{domain.TransactionStatusCompleted, transactionID}, scanTransaction)
}

func (r *TransactionRepository) Query(params query.Params) ([]domain.Transaction, int, error) {
	return queryPage(r.db, "transactions", transactionColumns, TransactionSchema, params, scanTransaction)
}

func intPtr(v *int) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

package infrastructure

import (
	"database/sql"

	"github.com/mwielgosz/BudgetBook/internal/ledger/domain"
	"github.com/mwielgosz/BudgetBook/internal/ledger/query"
)

const reconciliationColumns = "id, date, account_id"

// ReconciliationSchema is the allow-list of queryable reconciliation fields.
var ReconciliationSchema = query.Schema{
	"id":         {Column: "id", Type: query.DataTypeNumber},
	"date":       {Column: "date", Type: query.DataTypeDate},
	"account_id": {Column: "account_id", Type: query.DataTypeNumber},
}

type ReconciliationRepository struct {
	db *sql.DB
}

func NewReconciliationRepository(db *sql.DB) *ReconciliationRepository {
	return &ReconciliationRepository{db: db}
}

func scanReconciliation(rows *sql.Rows) (domain.Reconciliation, error) {
	var reconciliation domain.Reconciliation
	err := rows.Scan(&reconciliation.ID, &reconciliation.Date, &reconciliation.AccountID)
	return reconciliation, err
}

// Save inserts the reconciliation and stamps the owning account's
// last_reconciled date. Both writes commit atomically; last-write-wins when
// reconciliations arrive out of date order.
func (r *ReconciliationRepository) Save(reconciliation *domain.Reconciliation) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRow(
		`INSERT INTO reconciliations (date, account_id) VALUES ($1, $2) RETURNING id`,
		reconciliation.Date, reconciliation.AccountID,
	).Scan(&reconciliation.ID)
	if err != nil {
		return mapConstraintError(err)
	}

	_, err = tx.Exec(
		`UPDATE accounts SET last_reconciled = $1 WHERE id = $2`,
		reconciliation.Date, reconciliation.AccountID,
	)
	if err != nil {
		return mapConstraintError(err)
	}

	return tx.Commit()
}

func (r *ReconciliationRepository) FindByID(reconciliationID int) (*domain.Reconciliation, error) {
	return findOne(r.db, `SELECT `+reconciliationColumns+` FROM reconciliations WHERE id = $1`,
		reconciliationID, scanReconciliation)
}

// FindLastByAccount returns the account's latest reconciliation by date,
// newest insert winning among same-day records.
func (r *ReconciliationRepository) FindLastByAccount(accountID int) (*domain.Reconciliation, error) {
	return findOne(r.db,
		`SELECT `+reconciliationColumns+` FROM reconciliations WHERE account_id = $1 ORDER BY date DESC, id DESC LIMIT 1`,
		accountID, scanReconciliation)
}

func (r *ReconciliationRepository) Delete(reconciliationID int) (*domain.Reconciliation, error) {
	return execReturning(r.db, `DELETE FROM reconciliations WHERE id = $1 RETURNING `+reconciliationColumns,
		[]interface{}{reconciliationID}, scanReconciliation)
}

func (r *ReconciliationRepository) Query(params query.Params) ([]domain.Reconciliation, int, error) {
	return queryPage(r.db, "reconciliations", reconciliationColumns, ReconciliationSchema, params, scanReconciliation)
}

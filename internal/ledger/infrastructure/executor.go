package infrastructure

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	ledgerErrors "github.com/mwielgosz/BudgetBook/internal/ledger/errors"
	"github.com/mwielgosz/BudgetBook/internal/ledger/query"
)

// queryPage executes a dynamic query against one table: it counts the rows
// matching the filters, then fetches the sorted page. Both statements run in
// the same database transaction and share the same WHERE clause and
// arguments, so total always reflects the filtered-but-unpaged set the page
// was cut from.
func queryPage[T any](db *sql.DB, table, columns string, schema query.Schema, params query.Params, scan func(*sql.Rows) (T, error)) ([]T, int, error) {
	if err := params.Normalize(); err != nil {
		return nil, 0, err
	}
	where, args, err := query.BuildWhere(schema, params.Filters)
	if err != nil {
		return nil, 0, err
	}
	orderBy, err := query.BuildOrderBy(schema, params.Sort)
	if err != nil {
		return nil, 0, err
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, 0, err
	}
	defer tx.Rollback()

	var total int
	countStmt := fmt.Sprintf("SELECT COUNT(*) FROM %s %s", table, where)
	if err := tx.QueryRow(countStmt, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	pageStmt := fmt.Sprintf("SELECT %s FROM %s %s %s OFFSET $%d LIMIT $%d",
		columns, table, where, orderBy, len(args)+1, len(args)+2)
	pageArgs := append(append([]interface{}{}, args...), params.Skip, params.Limit)

	rows, err := tx.Query(pageStmt, pageArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	if err := tx.Commit(); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// findOne fetches a single row by id. Absence is reported as (nil, nil), the
// caller decides whether that is an error.
func findOne[T any](db *sql.DB, stmt string, id int, scan func(*sql.Rows) (T, error)) (*T, error) {
	rows, err := db.Query(stmt, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	item, err := scan(rows)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func findAll[T any](db *sql.DB, table, columns string, skip, limit int, scan func(*sql.Rows) (T, error)) ([]T, error) {
	stmt := fmt.Sprintf("SELECT %s FROM %s ORDER BY id ASC OFFSET $1 LIMIT $2", columns, table)
	rows, err := db.Query(stmt, skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// execReturning runs a mutating statement with a RETURNING clause and scans
// the returned row. No row means the target id does not exist.
func execReturning[T any](db *sql.DB, stmt string, args []interface{}, scan func(*sql.Rows) (T, error)) (*T, error) {
	rows, err := db.Query(stmt, args...)
	if err != nil {
		return nil, mapConstraintError(err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, mapConstraintError(rows.Err())
	}
	item, err := scan(rows)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// updateBuilder collects SET clauses for a partial update.
type updateBuilder struct {
	sets []string
	args []interface{}
}

func (u *updateBuilder) set(column string, value interface{}) {
	u.args = append(u.args, value)
	u.sets = append(u.sets, fmt.Sprintf("%s = $%d", column, len(u.args)))
}

func (u *updateBuilder) empty() bool {
	return len(u.sets) == 0
}

// stmt renders "UPDATE <table> SET ... WHERE id = $n RETURNING <columns>" and
// returns it with the id appended to the argument list.
func (u *updateBuilder) stmt(table, columns string, id int) (string, []interface{}) {
	args := append(u.args, id)
	set := ""
	for i, clause := range u.sets {
		if i > 0 {
			set += ", "
		}
		set += clause
	}
	return fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s", table, set, len(args), columns), args
}

// mapConstraintError converts Postgres constraint violations into the
// conflict error the service layer reports, leaving other failures untouched.
func mapConstraintError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23503":
			return ledgerErrors.NewConflictError(fmt.Sprintf("operation violates reference constraint %q", pgErr.ConstraintName))
		case "23505":
			return ledgerErrors.NewConflictError(fmt.Sprintf("duplicate value violates unique constraint %q", pgErr.ConstraintName))
		}
	}
	return err
}

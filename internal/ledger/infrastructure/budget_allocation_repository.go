package infrastructure

import (
	"database/sql"

	"github.com/mwielgosz/BudgetBook/internal/ledger/domain"
	"github.com/mwielgosz/BudgetBook/internal/ledger/query"
)

const budgetAllocationColumns = "id, year, month, amount, category_id"

// BudgetAllocationSchema is the allow-list of queryable allocation fields.
var BudgetAllocationSchema = query.Schema{
	"id":          {Column: "id", Type: query.DataTypeNumber},
	"year":        {Column: "year", Type: query.DataTypeNumber},
	"month":       {Column: "month", Type: query.DataTypeNumber},
	"amount":      {Column: "amount", Type: query.DataTypeNumber},
	"category_id": {Column: "category_id", Type: query.DataTypeNumber},
}

type BudgetAllocationRepository struct {
	db *sql.DB
}

func NewBudgetAllocationRepository(db *sql.DB) *BudgetAllocationRepository {
	return &BudgetAllocationRepository{db: db}
}

func scanBudgetAllocation(rows *sql.Rows) (domain.BudgetAllocation, error) {
	var allocation domain.BudgetAllocation
	err := rows.Scan(&allocation.ID, &allocation.Year, &allocation.Month, &allocation.Amount, &allocation.CategoryID)
	return allocation, err
}

func (r *BudgetAllocationRepository) Save(allocation *domain.BudgetAllocation) error {
	err := r.db.QueryRow(
		`INSERT INTO budget_allocations (year, month, amount, category_id) VALUES ($1, $2, $3, $4) RETURNING id`,
		allocation.Year, allocation.Month, allocation.Amount, allocation.CategoryID,
	).Scan(&allocation.ID)
	return mapConstraintError(err)
}

func (r *BudgetAllocationRepository) FindByID(allocationID int) (*domain.BudgetAllocation, error) {
	return findOne(r.db, `SELECT `+budgetAllocationColumns+` FROM budget_allocations WHERE id = $1`,
		allocationID, scanBudgetAllocation)
}

func (r *BudgetAllocationRepository) FindAll(skip, limit int) ([]domain.BudgetAllocation, error) {
	return findAll(r.db, "budget_allocations", budgetAllocationColumns, skip, limit, scanBudgetAllocation)
}

func (r *BudgetAllocationRepository) Update(allocationID int, update domain.BudgetAllocationUpdate) (*domain.BudgetAllocation, error) {
	var builder updateBuilder
	if update.Year != nil {
		builder.set("year", *update.Year)
	}
	if update.Month != nil {
		builder.set("month", *update.Month)
	}
	if update.Amount != nil {
		builder.set("amount", *update.Amount)
	}
	if update.CategoryID != nil {
		builder.set("category_id", *update.CategoryID)
	}
	if builder.empty() {
		return r.FindByID(allocationID)
	}
	stmt, args := builder.stmt("budget_allocations", budgetAllocationColumns, allocationID)
	return execReturning(r.db, stmt, args, scanBudgetAllocation)
}

func (r *BudgetAllocationRepository) Delete(allocationID int) (*domain.BudgetAllocation, error) {
	return execReturning(r.db, `DELETE FROM budget_allocations WHERE id = $1 RETURNING `+budgetAllocationColumns,
		[]interface{}{allocationID}, scanBudgetAllocation)
}

func (r *BudgetAllocationRepository) Query(params query.Params) ([]domain.BudgetAllocation, int, error) {
	return queryPage(r.db, "budget_allocations", budgetAllocationColumns, BudgetAllocationSchema, params, scanBudgetAllocation)
}

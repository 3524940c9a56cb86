package infrastructure

import (
	"database/sql"

	"github.com/shopspring/decimal"

	"github.com/mwielgosz/BudgetBook/internal/ledger/domain"
	"github.com/mwielgosz/BudgetBook/internal/ledger/query"
)

const categoryColumns = "id, name, type, monthly_budget, is_default, goal_amount"

// CategorySchema is the allow-list of queryable category fields.
var CategorySchema = query.Schema{
	"id":             {Column: "id", Type: query.DataTypeNumber},
	"name":           {Column: "name", Type: query.DataTypeString},
	"type":           {Column: "type", Type: query.DataTypeEnum},
	"monthly_budget": {Column: "monthly_budget", Type: query.DataTypeNumber},
	"is_default":     {Column: "is_default", Type: query.DataTypeBoolean},
	"goal_amount":    {Column: "goal_amount", Type: query.DataTypeNumber},
}

type CategoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func scanCategory(rows *sql.Rows) (domain.Category, error) {
	var category domain.Category
	var goalAmount decimal.NullDecimal
	if err := rows.Scan(&category.ID, &category.Name, &category.Type, &category.MonthlyBudget,
		&category.IsDefault, &goalAmount); err != nil {
		return category, err
	}
	if goalAmount.Valid {
		category.GoalAmount = &goalAmount.Decimal
	}
	return category, nil
}

// Save inserts the category. is_default is system-assigned and always starts
// false, whatever the caller set.
func (r *CategoryRepository) Save(category *domain.Category) error {
	category.IsDefault = false
	err := r.db.QueryRow(
		`INSERT INTO categories (name, type, monthly_budget, goal_amount) VALUES ($1, $2, $3, $4) RETURNING id`,
		category.Name, category.Type, category.MonthlyBudget, decimalPtr(category.GoalAmount),
	).Scan(&category.ID)
	return mapConstraintError(err)
}

func (r *CategoryRepository) FindByID(categoryID int) (*domain.Category, error) {
	return findOne(r.db, `SELECT `+categoryColumns+` FROM categories WHERE id = $1`, categoryID, scanCategory)
}

func (r *CategoryRepository) FindAll(skip, limit int) ([]domain.Category, error) {
	return findAll(r.db, "categories", categoryColumns, skip, limit, scanCategory)
}

func (r *CategoryRepository) Update(categoryID int, update domain.CategoryUpdate) (*domain.Category, error) {
	var builder updateBuilder
	if update.Name != nil {
		builder.set("name", *update.Name)
	}
	if update.Type != nil {
		builder.set("type", *update.Type)
	}
	if update.MonthlyBudget != nil {
		builder.set("monthly_budget", *update.MonthlyBudget)
	}
	if update.GoalAmount != nil {
		builder.set("goal_amount", *update.GoalAmount)
	}
	if builder.empty() {
		return r.FindByID(categoryID)
	}
	stmt, args := builder.stmt("categories", categoryColumns, categoryID)
	return execReturning(r.db, stmt, args, scanCategory)
}

func (r *CategoryRepository) Delete(categoryID int) (*domain.Category, error) {
	return execReturning(r.db, `DELETE FROM categories WHERE id = $1 RETURNING `+categoryColumns,
		[]interface{}{categoryID}, scanCategory)
}

func (r *CategoryRepository) Query(params query.Params) ([]domain.Category, int, error) {
	return queryPage(r.db, "categories", categoryColumns, CategorySchema, params, scanCategory)
}

func decimalPtr(d *decimal.Decimal) interface{} {
	if d == nil {
		return nil
	}
	return *d
}

package infrastructure

import (
	"database/sql"

	"github.com/mwielgosz/BudgetBook/internal/ledger/domain"
	"github.com/mwielgosz/BudgetBook/internal/ledger/query"
)

const storeColumns = "id, name, user_defined"

// StoreSchema is the allow-list of queryable store fields.
var StoreSchema = query.Schema{
	"id":           {Column: "id", Type: query.DataTypeNumber},
	"name":         {Column: "name", Type: query.DataTypeString},
	"user_defined": {Column: "user_defined", Type: query.DataTypeBoolean},
}

type StoreRepository struct {
	db *sql.DB
}

func NewStoreRepository(db *sql.DB) *StoreRepository {
	return &StoreRepository{db: db}
}

func scanStore(rows *sql.Rows) (domain.Store, error) {
	var store domain.Store
	err := rows.Scan(&store.ID, &store.Name, &store.UserDefined)
	return store, err
}

func (r *StoreRepository) Save(store *domain.Store) error {
	err := r.db.QueryRow(
		`INSERT INTO stores (name, user_defined) VALUES ($1, $2) RETURNING id`,
		store.Name, store.UserDefined,
	).Scan(&store.ID)
	return mapConstraintError(err)
}

func (r *StoreRepository) FindByID(storeID int) (*domain.Store, error) {
	return findOne(r.db, `SELECT `+storeColumns+` FROM stores WHERE id = $1`, storeID, scanStore)
}

func (r *StoreRepository) FindAll(skip, limit int) ([]domain.Store, error) {
	return findAll(r.db, "stores", storeColumns, skip, limit, scanStore)
}

func (r *StoreRepository) Update(storeID int, update domain.StoreUpdate) (*domain.Store, error) {
	var builder updateBuilder
	if update.Name != nil {
		builder.set("name", *update.Name)
	}
	if update.UserDefined != nil {
		builder.set("user_defined", *update.UserDefined)
	}
	if builder.empty() {
		return r.FindByID(storeID)
	}
	stmt, args := builder.stmt("stores", storeColumns, storeID)
	return execReturning(r.db, stmt, args, scanStore)
}

func (r *StoreRepository) Delete(storeID int) (*domain.Store, error) {
	return execReturning(r.db, `DELETE FROM stores WHERE id = $1 RETURNING `+storeColumns,
		[]interface{}{storeID}, scanStore)
}

func (r *StoreRepository) Query(params query.Params) ([]domain.Store, int, error) {
	return queryPage(r.db, "stores", storeColumns, StoreSchema, params, scanStore)
}

package infrastructure

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	database "github.com/mwielgosz/BudgetBook/db"
	"github.com/mwielgosz/BudgetBook/internal/ledger/domain"
	"github.com/mwielgosz/BudgetBook/internal/ledger/query"
)

// setupTestDB starts a throwaway Postgres container and applies the schema.
// Skipped in -short runs.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}

	ctx := context.Background()
	container, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("budgetbook_test"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = container.Terminate(ctx)
	})

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	service, err := database.NewDBService(connStr)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = service.Close()
	})

	require.NoError(t, database.EnsureSchema(service.DB))
	return service.DB
}

func seedAccount(t *testing.T, repo *AccountRepository, name, accountType, balance string) *domain.Account {
	t.Helper()
	account := &domain.Account{
		Name:    name,
		Type:    accountType,
		Balance: decimal.RequireFromString(balance),
	}
	require.NoError(t, repo.Save(account))
	return account
}

func TestAccountRepository_QueryNumberRange(t *testing.T) {
	dbConn := setupTestDB(t)
	repo := NewAccountRepository(dbConn)

	seedAccount(t, repo, "Checking", "checking", "1000.00")
	seedAccount(t, repo, "Savings", "savings", "5000.00")
	seedAccount(t, repo, "Credit", "credit", "2000.00")

	params := query.Params{
		Filters: []query.FilterCondition{
			{Field: "balance", Operator: "gt", Value: 1500.0, DataType: query.DataTypeNumber},
			{Field: "balance", Operator: "lt", Value: 5500.0, DataType: query.DataTypeNumber},
		},
	}
	items, total, err := repo.Query(params)

	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Equal(t, 2, len(items))

	// Repeated evaluation over unchanged data returns the same rows.
	again, againTotal, err := repo.Query(params)
	require.NoError(t, err)
	assert.Equal(t, total, againTotal)
	assert.Equal(t, items, again)
}

func TestAccountRepository_QueryCaseInsensitiveEq(t *testing.T) {
	dbConn := setupTestDB(t)
	repo := NewAccountRepository(dbConn)

	seedAccount(t, repo, "Checking", "checking", "10.00")
	seedAccount(t, repo, "Savings", "savings", "20.00")

	items, total, err := repo.Query(query.Params{
		Filters: []query.FilterCondition{
			{Field: "name", Operator: "eq", Value: "cHeCkInG", DataType: query.DataTypeString},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Equal(t, 1, len(items))
	assert.Equal(t, "Checking", items[0].Name)
}

func TestAccountRepository_QuerySortAndPagination(t *testing.T) {
	dbConn := setupTestDB(t)
	repo := NewAccountRepository(dbConn)

	seedAccount(t, repo, "A", "checking", "300.00")
	seedAccount(t, repo, "B", "checking", "100.00")
	seedAccount(t, repo, "C", "checking", "200.00")

	items, total, err := repo.Query(query.Params{
		Sort:  []query.SortOrder{{Field: "balance", Direction: "desc"}},
		Skip:  1,
		Limit: 1,
	})

	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Equal(t, 1, len(items))
	assert.Equal(t, "C", items[0].Name)
}

func TestAccountRepository_QueryRejectsUnknownField(t *testing.T) {
	dbConn := setupTestDB(t)
	repo := NewAccountRepository(dbConn)

	_, _, err := repo.Query(query.Params{
		Filters: []query.FilterCondition{
			{Field: "owner", Operator: "eq", Value: "me", DataType: query.DataTypeString},
		},
	})

	assert.Error(t, err)
}

func TestTransactionRepository_CompletePersists(t *testing.T) {
	dbConn := setupTestDB(t)
	accounts := NewAccountRepository(dbConn)
	categories := NewCategoryRepository(dbConn)
	transactions := NewTransactionRepository(dbConn)

	account := seedAccount(t, accounts, "Checking", "checking", "100.00")
	category := &domain.Category{Name: "Groceries", Type: "expense", MonthlyBudget: decimal.New(500, 0)}
	require.NoError(t, categories.Save(category))

	transaction := &domain.Transaction{
		Date:        domain.NewDate(2023, time.May, 1),
		Amount:      decimal.RequireFromString("42.50"),
		Description: "Weekly shop",
		AccountID:   account.ID,
		CategoryID:  category.ID,
	}
	require.NoError(t, transactions.Save(transaction))
	assert.Equal(t, domain.TransactionStatusPending, transaction.Status)

	completed, err := transactions.Complete(transaction.ID)
	require.NoError(t, err)
	require.NotNil(t, completed)
	assert.Equal(t, domain.TransactionStatusCompleted, completed.Status)

	fetched, err := transactions.FindByID(transaction.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, domain.TransactionStatusCompleted, fetched.Status)
}

func TestTransactionRepository_DateFilterIgnoresOrdering(t *testing.T) {
	dbConn := setupTestDB(t)
	accounts := NewAccountRepository(dbConn)
	categories := NewCategoryRepository(dbConn)
	transactions := NewTransactionRepository(dbConn)

	account := seedAccount(t, accounts, "Checking", "checking", "100.00")
	category := &domain.Category{Name: "Groceries", Type: "expense", MonthlyBudget: decimal.New(500, 0)}
	require.NoError(t, categories.Save(category))

	for _, day := range []int{1, 2, 3} {
		transaction := &domain.Transaction{
			Date:        domain.NewDate(2023, time.May, day),
			Amount:      decimal.New(10, 0),
			Description: "Entry",
			AccountID:   account.ID,
			CategoryID:  category.ID,
		}
		require.NoError(t, transactions.Save(transaction))
	}

	items, total, err := transactions.Query(query.Params{
		Filters: []query.FilterCondition{
			{Field: "date", Operator: "eq", Value: "2023-05-02", DataType: query.DataTypeDate},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Equal(t, 1, len(items))
	assert.Equal(t, "2023-05-02", items[0].Date.String())
}

func TestReconciliationRepository_SaveStampsAccount(t *testing.T) {
	dbConn := setupTestDB(t)
	accounts := NewAccountRepository(dbConn)
	reconciliations := NewReconciliationRepository(dbConn)

	account := seedAccount(t, accounts, "Checking", "checking", "100.00")

	first := &domain.Reconciliation{Date: domain.NewDate(2023, time.January, 1), AccountID: account.ID}
	require.NoError(t, reconciliations.Save(first))
	second := &domain.Reconciliation{Date: domain.NewDate(2023, time.February, 1), AccountID: account.ID}
	require.NoError(t, reconciliations.Save(second))

	last, err := reconciliations.FindLastByAccount(account.ID)
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, second.ID, last.ID)
	assert.Equal(t, "2023-02-01", last.Date.String())

	fetched, err := accounts.FindByID(account.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	require.NotNil(t, fetched.LastReconciled)
	assert.Equal(t, "2023-02-01", fetched.LastReconciled.Format("2006-01-02"))
}

func TestStoreRepository_DuplicateNameConflicts(t *testing.T) {
	dbConn := setupTestDB(t)
	stores := NewStoreRepository(dbConn)

	require.NoError(t, stores.Save(&domain.Store{Name: "Grocery Mart", UserDefined: true}))
	err := stores.Save(&domain.Store{Name: "Grocery Mart", UserDefined: true})

	assert.Error(t, err)
}

func TestAccountRepository_DeleteReferencedFails(t *testing.T) {
	dbConn := setupTestDB(t)
	accounts := NewAccountRepository(dbConn)
	categories := NewCategoryRepository(dbConn)
	transactions := NewTransactionRepository(dbConn)

	account := seedAccount(t, accounts, "Checking", "checking", "100.00")
	category := &domain.Category{Name: "Groceries", Type: "expense", MonthlyBudget: decimal.New(500, 0)}
	require.NoError(t, categories.Save(category))
	require.NoError(t, transactions.Save(&domain.Transaction{
		Date:        domain.NewDate(2023, time.May, 1),
		Amount:      decimal.New(10, 0),
		Description: "Entry",
		AccountID:   account.ID,
		CategoryID:  category.ID,
	}))

	_, err := accounts.Delete(account.ID)

	assert.Error(t, err)
}

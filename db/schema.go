package database

import "database/sql"

// Schema is the full DDL for the ledger tables. Foreign keys are RESTRICT:
// deleting an account, category or store that transactions or allocations
// still reference is rejected by the database.
const Schema = `
CREATE TABLE IF NOT EXISTS accounts (
    id              BIGSERIAL PRIMARY KEY,
    name            TEXT NOT NULL,
    type            TEXT NOT NULL,
    balance         NUMERIC(14,2) NOT NULL DEFAULT 0,
    last_reconciled DATE
);

CREATE TABLE IF NOT EXISTS categories (
    id             BIGSERIAL PRIMARY KEY,
    name           TEXT NOT NULL,
    type           TEXT NOT NULL,
    monthly_budget NUMERIC(14,2) NOT NULL DEFAULT 0,
    is_default     BOOLEAN NOT NULL DEFAULT FALSE,
    goal_amount    NUMERIC(14,2)
);

CREATE TABLE IF NOT EXISTS stores (
    id           BIGSERIAL PRIMARY KEY,
    name         TEXT NOT NULL UNIQUE,
    user_defined BOOLEAN NOT NULL DEFAULT TRUE
);

CREATE TABLE IF NOT EXISTS transactions (
    id          BIGSERIAL PRIMARY KEY,
    date        DATE NOT NULL,
    amount      NUMERIC(14,2) NOT NULL,
    description TEXT NOT NULL,
    memo        TEXT,
    account_id  BIGINT NOT NULL REFERENCES accounts (id) ON DELETE RESTRICT,
    category_id BIGINT NOT NULL REFERENCES categories (id) ON DELETE RESTRICT,
    store_id    BIGINT REFERENCES stores (id) ON DELETE RESTRICT,
    status      TEXT NOT NULL DEFAULT 'PENDING'
);

CREATE TABLE IF NOT EXISTS budget_allocations (
    id          BIGSERIAL PRIMARY KEY,
    year        INTEGER NOT NULL,
    month       INTEGER NOT NULL,
    amount      NUMERIC(14,2) NOT NULL,
    category_id BIGINT NOT NULL REFERENCES categories (id) ON DELETE RESTRICT
);

CREATE TABLE IF NOT EXISTS reconciliations (
    id         BIGSERIAL PRIMARY KEY,
    date       DATE NOT NULL,
    account_id BIGINT NOT NULL REFERENCES accounts (id) ON DELETE RESTRICT
);

CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions (date);
CREATE INDEX IF NOT EXISTS idx_transactions_account ON transactions (account_id);
CREATE INDEX IF NOT EXISTS idx_transactions_category ON transactions (category_id);
CREATE INDEX IF NOT EXISTS idx_budget_allocations_category ON budget_allocations (category_id);
CREATE INDEX IF NOT EXISTS idx_reconciliations_account ON reconciliations (account_id);
`

// EnsureSchema applies the DDL. Safe to run repeatedly.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(Schema)
	return err
}

package application

import "github.com/mwielgosz/BudgetBook/internal/ledger/query"

// normalizeListRange applies the plain list endpoints' defaults: skip 0,
// limit 100.
func normalizeListRange(skip, limit int) (int, int) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = query.DefaultLimit
	}
	return skip, limit
}

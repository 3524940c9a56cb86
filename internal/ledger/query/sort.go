package query

import (
	"fmt"
	"strings"

	ledgerErrors "github.com/mwielgosz/BudgetBook/internal/ledger/errors"
)

// tieBreak keeps ordering deterministic when every requested sort key ties,
// so pagination across repeated calls sees the same row order.
const tieBreak = "id ASC"

// BuildOrderBy composes a lexicographic multi-key ORDER BY clause. Direction
// defaults to ascending. Date fields are truncated to calendar-date precision,
// consistent with filter semantics. The entity's id is always appended as the
// final key.
func BuildOrderBy(schema Schema, sort []SortOrder) (string, error) {
	terms := make([]string, 0, len(sort)+1)
	for _, s := range sort {
		spec, ok := schema[s.Field]
		if !ok {
			return "", ledgerErrors.NewFieldValidationError(s.Field, "field does not exist")
		}
		direction := "ASC"
		switch strings.ToLower(s.Direction) {
		case "", "asc":
		case "desc":
			direction = "DESC"
		default:
			return "", ledgerErrors.NewFieldValidationError(s.Field,
				fmt.Sprintf("sort direction must be 'asc' or 'desc', got %q", s.Direction))
		}
		column := spec.Column
		if spec.Type == DataTypeDate {
			column = fmt.Sprintf("CAST(%s AS date)", column)
		}
		terms = append(terms, column+" "+direction)
	}
	terms = append(terms, tieBreak)
	return "ORDER BY " + strings.Join(terms, ", "), nil
}

package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ledgerErrors "github.com/mwielgosz/BudgetBook/internal/ledger/errors"
)

func TestBuildOrderBy_EmptySortStillDeterministic(t *testing.T) {
	clause, err := BuildOrderBy(testSchema, nil)
	require.NoError(t, err)
	assert.Equal(t, "ORDER BY id ASC", clause)
}

func TestBuildOrderBy_MultiKeyWithTieBreak(t *testing.T) {
	clause, err := BuildOrderBy(testSchema, []SortOrder{
		{Field: "balance", Direction: "desc"},
		{Field: "name"},
	})
	require.NoError(t, err)
	assert.Equal(t, "ORDER BY balance DESC, name ASC, id ASC", clause)
}

func TestBuildOrderBy_DateFieldTruncated(t *testing.T) {
	clause, err := BuildOrderBy(testSchema, []SortOrder{{Field: "date", Direction: "asc"}})
	require.NoError(t, err)
	assert.Equal(t, "ORDER BY CAST(date AS date) ASC, id ASC", clause)
}

func TestBuildOrderBy_UnknownFieldRejected(t *testing.T) {
	_, err := BuildOrderBy(testSchema, []SortOrder{{Field: "secret"}})
	require.Error(t, err)
	assert.True(t, ledgerErrors.IsValidationError(err))
}

func TestBuildOrderBy_BadDirectionRejected(t *testing.T) {
	_, err := BuildOrderBy(testSchema, []SortOrder{{Field: "name", Direction: "sideways"}})
	require.Error(t, err)
	assert.True(t, ledgerErrors.IsValidationError(err))
}

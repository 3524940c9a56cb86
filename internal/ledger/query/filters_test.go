package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ledgerErrors "github.com/mwielgosz/BudgetBook/internal/ledger/errors"
)

var testSchema = Schema{
	"id":         {Column: "id", Type: DataTypeNumber},
	"name":       {Column: "name", Type: DataTypeString},
	"balance":    {Column: "balance", Type: DataTypeNumber},
	"date":       {Column: "date", Type: DataTypeDate},
	"is_default": {Column: "is_default", Type: DataTypeBoolean},
	"status":     {Column: "status", Type: DataTypeEnum},
}

func TestBuildWhere_NoFilters(t *testing.T) {
	clause, args, err := BuildWhere(testSchema, nil)
	require.NoError(t, err)
	assert.Empty(t, clause)
	assert.Empty(t, args)
}

func TestBuildWhere_StringEqIsCaseInsensitive(t *testing.T) {
	clause, args, err := BuildWhere(testSchema, []FilterCondition{
		{Field: "name", Operator: "eq", Value: "CHECKING", DataType: DataTypeString},
	})
	require.NoError(t, err)
	assert.Equal(t, "WHERE LOWER(name) = LOWER($1)", clause)
	assert.Equal(t, []interface{}{"CHECKING"}, args)
}

func TestBuildWhere_StringLikeAndIlikeAreContainment(t *testing.T) {
	for _, operator := range []string{"like", "ilike"} {
		clause, args, err := BuildWhere(testSchema, []FilterCondition{
			{Field: "name", Operator: operator, Value: "groc", DataType: DataTypeString},
		})
		require.NoError(t, err)
		assert.Equal(t, "WHERE name ILIKE $1", clause)
		assert.Equal(t, []interface{}{"%groc%"}, args)
	}
}

func TestBuildWhere_MultipleConditionsJoinedByAnd(t *testing.T) {
	clause, args, err := BuildWhere(testSchema, []FilterCondition{
		{Field: "balance", Operator: "gt", Value: 1500.0, DataType: DataTypeNumber},
		{Field: "balance", Operator: "lt", Value: 5500.0, DataType: DataTypeNumber},
	})
	require.NoError(t, err)
	assert.Equal(t, "WHERE balance > $1 AND balance < $2", clause)
	assert.Equal(t, []interface{}{1500.0, 5500.0}, args)
}

func TestBuildWhere_NumberBetweenIsInclusive(t *testing.T) {
	clause, args, err := BuildWhere(testSchema, []FilterCondition{
		{Field: "balance", Operator: "between", Value: []interface{}{100.0, 200.0}, DataType: DataTypeNumber},
	})
	require.NoError(t, err)
	// SQL BETWEEN includes both bounds.
	assert.Equal(t, "WHERE balance BETWEEN $1 AND $2", clause)
	assert.Equal(t, []interface{}{100.0, 200.0}, args)
}

func TestBuildWhere_NumberIn(t *testing.T) {
	clause, args, err := BuildWhere(testSchema, []FilterCondition{
		{Field: "id", Operator: "in", Value: []interface{}{1.0, 2.0, 3.0}, DataType: DataTypeNumber},
	})
	require.NoError(t, err)
	assert.Equal(t, "WHERE id IN ($1, $2, $3)", clause)
	assert.Len(t, args, 3)
}

func TestBuildWhere_DateEqTruncatesToCalendarDate(t *testing.T) {
	clause, args, err := BuildWhere(testSchema, []FilterCondition{
		{Field: "date", Operator: "eq", Value: "2023-02-01T15:04:05Z", DataType: DataTypeDate},
	})
	require.NoError(t, err)
	assert.Equal(t, "WHERE CAST(date AS date) = $1", clause)
	require.Len(t, args, 1)
	assert.Equal(t, time.Date(2023, time.February, 1, 0, 0, 0, 0, time.UTC), args[0])
}

func TestBuildWhere_DateBetweenKeepsEndpointValues(t *testing.T) {
	clause, args, err := BuildWhere(testSchema, []FilterCondition{
		{Field: "date", Operator: "between", Value: []interface{}{"2023-01-01", "2023-12-31"}, DataType: DataTypeDate},
	})
	require.NoError(t, err)
	assert.Equal(t, "WHERE date BETWEEN $1 AND $2", clause)
	assert.Len(t, args, 2)
}

func TestBuildWhere_BooleanStates(t *testing.T) {
	cases := []struct {
		value    interface{}
		expected string
	}{
		{true, "WHERE is_default IS TRUE"},
		{false, "WHERE is_default IS FALSE"},
		{nil, "WHERE is_default IS NULL"},
	}
	for _, c := range cases {
		clause, args, err := BuildWhere(testSchema, []FilterCondition{
			{Field: "is_default", Operator: "eq", Value: c.value, DataType: DataTypeBoolean},
		})
		require.NoError(t, err)
		assert.Equal(t, c.expected, clause)
		assert.Empty(t, args)
	}
}

func TestBuildWhere_BooleanOperatorIsImplicit(t *testing.T) {
	clause, _, err := BuildWhere(testSchema, []FilterCondition{
		{Field: "is_default", Value: true, DataType: DataTypeBoolean},
	})
	require.NoError(t, err)
	assert.Equal(t, "WHERE is_default IS TRUE", clause)
}

func TestBuildWhere_EnumIn(t *testing.T) {
	clause, args, err := BuildWhere(testSchema, []FilterCondition{
		{Field: "status", Operator: "in", Value: []interface{}{"PENDING", "COMPLETED"}, DataType: DataTypeEnum},
	})
	require.NoError(t, err)
	assert.Equal(t, "WHERE status IN ($1, $2)", clause)
	assert.Equal(t, []interface{}{"PENDING", "COMPLETED"}, args)
}

func TestBuildWhere_UnknownFieldRejected(t *testing.T) {
	_, _, err := BuildWhere(testSchema, []FilterCondition{
		{Field: "password", Operator: "eq", Value: "x", DataType: DataTypeString},
	})
	require.Error(t, err)
	assert.True(t, ledgerErrors.IsValidationError(err))
	assert.Contains(t, err.Error(), "password")
}

func TestBuildWhere_DataTypeMismatchRejected(t *testing.T) {
	_, _, err := BuildWhere(testSchema, []FilterCondition{
		{Field: "balance", Operator: "eq", Value: "1000", DataType: DataTypeString},
	})
	require.Error(t, err)
	assert.True(t, ledgerErrors.IsValidationError(err))
}

func TestBuildWhere_OperatorInvalidForType(t *testing.T) {
	cases := []FilterCondition{
		{Field: "name", Operator: "gt", Value: "a", DataType: DataTypeString},
		{Field: "balance", Operator: "like", Value: 1.0, DataType: DataTypeNumber},
		{Field: "date", Operator: "ge", Value: "2023-01-01", DataType: DataTypeDate},
		{Field: "status", Operator: "like", Value: "PEN", DataType: DataTypeEnum},
		{Field: "is_default", Operator: "ne", Value: true, DataType: DataTypeBoolean},
	}
	for _, c := range cases {
		_, _, err := BuildWhere(testSchema, []FilterCondition{c})
		require.Error(t, err, "operator %s on %s", c.Operator, c.DataType)
		assert.True(t, ledgerErrors.IsValidationError(err))
	}
}

func TestBuildWhere_MalformedRangeRejected(t *testing.T) {
	_, _, err := BuildWhere(testSchema, []FilterCondition{
		{Field: "balance", Operator: "between", Value: []interface{}{1.0}, DataType: DataTypeNumber},
	})
	require.Error(t, err)
	assert.True(t, ledgerErrors.IsValidationError(err))

	_, _, err = BuildWhere(testSchema, []FilterCondition{
		{Field: "balance", Operator: "in", Value: []interface{}{}, DataType: DataTypeNumber},
	})
	require.Error(t, err)
	assert.True(t, ledgerErrors.IsValidationError(err))
}

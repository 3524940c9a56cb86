package query

import (
	"fmt"
	"strings"
	"time"

	ledgerErrors "github.com/mwielgosz/BudgetBook/internal/ledger/errors"
)

var validOperators = map[DataType]map[string]bool{
	DataTypeString:  {"eq": true, "ne": true, "like": true, "ilike": true, "in": true},
	DataTypeNumber:  {"eq": true, "ne": true, "gt": true, "lt": true, "ge": true, "le": true, "between": true, "in": true},
	DataTypeDate:    {"eq": true, "ne": true, "gt": true, "lt": true, "between": true},
	DataTypeBoolean: {"eq": true},
	DataTypeEnum:    {"eq": true, "ne": true, "in": true},
}

// BuildWhere translates the filter conditions into a single WHERE clause with
// positional placeholders, all conditions joined by AND. An empty filter list
// yields an empty clause (match all). Every condition is validated against the
// schema before any SQL is assembled.
func BuildWhere(schema Schema, filters []FilterCondition) (string, []interface{}, error) {
	if len(filters) == 0 {
		return "", nil, nil
	}

	var conditions []string
	var args []interface{}

	next := func(value interface{}) string {
		args = append(args, value)
		return fmt.Sprintf("$%d", len(args))
	}

	for _, f := range filters {
		spec, ok := schema[f.Field]
		if !ok {
			return "", nil, ledgerErrors.NewFieldValidationError(f.Field, "field does not exist")
		}
		if f.DataType != spec.Type {
			return "", nil, ledgerErrors.NewFieldValidationError(f.Field,
				fmt.Sprintf("declared data type %q does not match field type %q", f.DataType, spec.Type))
		}
		operator := f.Operator
		if spec.Type == DataTypeBoolean && operator == "" {
			operator = "eq"
		}
		if !validOperators[spec.Type][operator] {
			return "", nil, ledgerErrors.NewFieldValidationError(f.Field,
				fmt.Sprintf("operator %q is not valid for %s fields", f.Operator, spec.Type))
		}

		condition, err := buildCondition(spec, f, operator, next)
		if err != nil {
			return "", nil, err
		}
		conditions = append(conditions, condition)
	}

	return "WHERE " + strings.Join(conditions, " AND "), args, nil
}

func buildCondition(spec FieldSpec, f FilterCondition, operator string, next func(interface{}) string) (string, error) {
	column := spec.Column
	switch spec.Type {
	case DataTypeString:
		return buildStringCondition(column, f, operator, next)
	case DataTypeNumber:
		return buildNumberCondition(column, f, operator, next)
	case DataTypeDate:
		return buildDateCondition(column, f, operator, next)
	case DataTypeBoolean:
		return buildBooleanCondition(column, f)
	case DataTypeEnum:
		return buildEnumCondition(column, f, operator, next)
	}
	return "", ledgerErrors.NewFieldValidationError(f.Field, fmt.Sprintf("unknown data type %q", spec.Type))
}

func buildStringCondition(column string, f FilterCondition, operator string, next func(interface{}) string) (string, error) {
	switch operator {
	case "eq", "ne":
		value, err := stringValue(f)
		if err != nil {
			return "", err
		}
		comparator := "="
		if operator == "ne" {
			comparator = "<>"
		}
		return fmt.Sprintf("LOWER(%s) %s LOWER(%s)", column, comparator, next(value)), nil
	case "like", "ilike":
		// Both operators are case-insensitive substring containment. Kept as
		// two spellings because clients send both.
		value, err := stringValue(f)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s ILIKE %s", column, next("%"+value+"%")), nil
	case "in":
		return buildInCondition(column, f, next, func(element interface{}) (interface{}, error) {
			s, ok := element.(string)
			if !ok {
				return nil, ledgerErrors.NewFieldValidationError(f.Field, "list elements must be strings")
			}
			return s, nil
		})
	}
	return "", ledgerErrors.NewFieldValidationError(f.Field, fmt.Sprintf("operator %q is not valid for string fields", operator))
}

func buildNumberCondition(column string, f FilterCondition, operator string, next func(interface{}) string) (string, error) {
	comparators := map[string]string{"eq": "=", "ne": "<>", "gt": ">", "lt": "<", "ge": ">=", "le": "<="}
	if comparator, ok := comparators[operator]; ok {
		value, err := numberValue(f.Field, f.Value)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s %s %s", column, comparator, next(value)), nil
	}
	switch operator {
	case "between":
		bounds, err := rangeValues(f)
		if err != nil {
			return "", err
		}
		lo, err := numberValue(f.Field, bounds[0])
		if err != nil {
			return "", err
		}
		hi, err := numberValue(f.Field, bounds[1])
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s BETWEEN %s AND %s", column, next(lo), next(hi)), nil
	case "in":
		return buildInCondition(column, f, next, func(element interface{}) (interface{}, error) {
			return numberValue(f.Field, element)
		})
	}
	return "", ledgerErrors.NewFieldValidationError(f.Field, fmt.Sprintf("operator %q is not valid for number fields", operator))
}

func buildDateCondition(column string, f FilterCondition, operator string, next func(interface{}) string) (string, error) {
	switch operator {
	case "eq", "ne":
		// Calendar-date equality: time of day is truncated on both sides.
		value, err := dateValue(f.Field, f.Value)
		if err != nil {
			return "", err
		}
		comparator := "="
		if operator == "ne" {
			comparator = "<>"
		}
		truncated := time.Date(value.Year(), value.Month(), value.Day(), 0, 0, 0, 0, time.UTC)
		return fmt.Sprintf("CAST(%s AS date) %s %s", column, comparator, next(truncated)), nil
	case "gt", "lt":
		value, err := dateValue(f.Field, f.Value)
		if err != nil {
			return "", err
		}
		comparator := ">"
		if operator == "lt" {
			comparator = "<"
		}
		return fmt.Sprintf("%s %s %s", column, comparator, next(value)), nil
	case "between":
		bounds, err := rangeValues(f)
		if err != nil {
			return "", err
		}
		start, err := dateValue(f.Field, bounds[0])
		if err != nil {
			return "", err
		}
		end, err := dateValue(f.Field, bounds[1])
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s BETWEEN %s AND %s", column, next(start), next(end)), nil
	}
	return "", ledgerErrors.NewFieldValidationError(f.Field, fmt.Sprintf("operator %q is not valid for date fields", operator))
}

func buildBooleanCondition(column string, f FilterCondition) (string, error) {
	// Absence is its own queryable state, distinct from false.
	if f.Value == nil {
		return fmt.Sprintf("%s IS NULL", column), nil
	}
	value, ok := f.Value.(bool)
	if !ok {
		return "", ledgerErrors.NewFieldValidationError(f.Field, "value must be true, false or null")
	}
	if value {
		return fmt.Sprintf("%s IS TRUE", column), nil
	}
	return fmt.Sprintf("%s IS FALSE", column), nil
}

func buildEnumCondition(column string, f FilterCondition, operator string, next func(interface{}) string) (string, error) {
	switch operator {
	case "eq", "ne":
		value, err := stringValue(f)
		if err != nil {
			return "", err
		}
		comparator := "="
		if operator == "ne" {
			comparator = "<>"
		}
		return fmt.Sprintf("%s %s %s", column, comparator, next(value)), nil
	case "in":
		return buildInCondition(column, f, next, func(element interface{}) (interface{}, error) {
			s, ok := element.(string)
			if !ok {
				return nil, ledgerErrors.NewFieldValidationError(f.Field, "list elements must be strings")
			}
			return s, nil
		})
	}
	return "", ledgerErrors.NewFieldValidationError(f.Field, fmt.Sprintf("operator %q is not valid for enum fields", operator))
}

func buildInCondition(column string, f FilterCondition, next func(interface{}) string, coerce func(interface{}) (interface{}, error)) (string, error) {
	elements, err := listValue(f)
	if err != nil {
		return "", err
	}
	placeholders := make([]string, 0, len(elements))
	for _, element := range elements {
		value, err := coerce(element)
		if err != nil {
			return "", err
		}
		placeholders = append(placeholders, next(value))
	}
	return fmt.Sprintf("%s IN (%s)", column, strings.Join(placeholders, ", ")), nil
}

func stringValue(f FilterCondition) (string, error) {
	s, ok := f.Value.(string)
	if !ok {
		return "", ledgerErrors.NewFieldValidationError(f.Field, "value must be a string")
	}
	return s, nil
}

func numberValue(field string, value interface{}) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	}
	return 0, ledgerErrors.NewFieldValidationError(field, "value must be a number")
}

func dateValue(field string, value interface{}) (time.Time, error) {
	switch v := value.(type) {
	case time.Time:
		return v, nil
	case string:
		if t, err := time.Parse("2006-01-02", v); err == nil {
			return t, nil
		}
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ledgerErrors.NewFieldValidationError(field, "value must be a date (YYYY-MM-DD or RFC 3339)")
}

func listValue(f FilterCondition) ([]interface{}, error) {
	elements, ok := f.Value.([]interface{})
	if !ok || len(elements) == 0 {
		return nil, ledgerErrors.NewFieldValidationError(f.Field, "value must be a non-empty list")
	}
	return elements, nil
}

func rangeValues(f FilterCondition) ([]interface{}, error) {
	bounds, ok := f.Value.([]interface{})
	if !ok || len(bounds) != 2 {
		return nil, ledgerErrors.NewFieldValidationError(f.Field, "between requires a two-element [low, high] list")
	}
	return bounds, nil
}

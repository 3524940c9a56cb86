// Package query turns a data-driven description of filters, sort orders and
// pagination into parameterized SQL. Field names never reach the database
// unchecked: every entity registers a Schema mapping the request-facing field
// names to columns, and anything outside it is rejected before storage is
// touched.
package query

import (
	ledgerErrors "github.com/mwielgosz/BudgetBook/internal/ledger/errors"
)

const DefaultLimit = 100

type DataType string

const (
	DataTypeString  DataType = "string"
	DataTypeNumber  DataType = "number"
	DataTypeDate    DataType = "date"
	DataTypeBoolean DataType = "boolean"
	DataTypeEnum    DataType = "enum"
)

// FilterCondition is one (field, operator, value, data type) tuple. Value
// arrives as whatever encoding/json produced: string, float64, bool, nil, or
// a []interface{} for list and range operators.
type FilterCondition struct {
	Field    string      `json:"field"`
	Operator string      `json:"operator"`
	Value    interface{} `json:"value"`
	DataType DataType    `json:"data_type"`
}

type SortOrder struct {
	Field     string `json:"field"`
	Direction string `json:"direction"`
}

type Params struct {
	Filters []FilterCondition `json:"filters"`
	Sort    []SortOrder       `json:"sort"`
	Skip    int               `json:"skip"`
	Limit   int               `json:"limit"`
}

// Normalize applies the documented defaults (skip 0, limit 100) and rejects
// negative pagination values.
func (p *Params) Normalize() error {
	if p.Skip < 0 {
		return ledgerErrors.NewValidationError("skip must not be negative")
	}
	if p.Limit < 0 {
		return ledgerErrors.NewValidationError("limit must not be negative")
	}
	if p.Limit == 0 {
		p.Limit = DefaultLimit
	}
	return nil
}

type PaginatedResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Size  int `json:"size"`
}

// NewPaginatedResponse wraps one page of results. Page numbering assumes
// limit > 0 and reads naturally when skip is a multiple of limit; any other
// skip still yields floor(skip/limit)+1.
func NewPaginatedResponse[T any](items []T, total, skip, limit int) PaginatedResponse[T] {
	if items == nil {
		items = []T{}
	}
	return PaginatedResponse[T]{
		Items: items,
		Total: total,
		Page:  skip/limit + 1,
		Size:  limit,
	}
}

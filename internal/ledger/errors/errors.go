package errors

import (
	"errors"
	"fmt"
)

type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

func NewFieldValidationError(field, msg string) error {
	return &ValidationError{Msg: fmt.Sprintf("Invalid filter on field %q: %s", field, msg)}
}

func IsValidationError(err error) bool {
	var validationError *ValidationError
	ok := errors.As(err, &validationError)
	return ok
}

type NotFoundError struct {
	Entity string
	ID     int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Entity, e.ID)
}

func NewNotFoundError(entity string, id int) error {
	return &NotFoundError{Entity: entity, ID: id}
}

func IsNotFoundError(err error) bool {
	var notFoundError *NotFoundError
	ok := errors.As(err, &notFoundError)
	return ok
}

// ConflictError covers storage constraint rejections: foreign keys pointing at
// rows that do not exist, deletes of still-referenced rows, duplicate store names.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string {
	return e.Msg
}

func NewConflictError(msg string) error {
	return &ConflictError{Msg: msg}
}

func IsConflictError(err error) bool {
	var conflictError *ConflictError
	ok := errors.As(err, &conflictError)
	return ok
}

package domain

import (
	"errors"
)

// Category sentinels for errors.Is() checking. Every catalog Error unwraps to
// exactly one of them, which decides the HTTP status class.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
	ErrInternal   = errors.New("internal error")
)

// Error is an immutable catalog entry: a stable machine-readable code, a human
// message and optional detail describing the violated constraint.
//
// Use errors.Is(err, domain.ErrListNotFound) to match a catalog kind (codes are
// compared, detail is ignored) and errors.As(err, &domain.Error{}) to read the
// detail.
type Error struct {
	Code           string
	Message        string
	AdditionalInfo string

	category error
}

// Catalog of API errors.
var (
	ErrIDNotAcceptable = Error{
		Code:     "IdNotAcceptable",
		Message:  "Object id is not acceptable for the request",
		category: ErrValidation,
	}
	ErrInvalidListName = Error{
		Code:     "InvalidListName",
		Message:  "Invalid list name",
		category: ErrValidation,
	}
	ErrListNotFound = Error{
		Code:     "ListNotFound",
		Message:  "No list found with the provided id",
		category: ErrNotFound,
	}
	ErrInvalidTodoEntry = Error{
		Code:     "InvalidTodoEntry",
		Message:  "Provided Todo entry is not valid",
		category: ErrValidation,
	}
	ErrTodoNotFound = Error{
		Code:     "TodoNotFound",
		Message:  "No ToDo found with the provided id on the list",
		category: ErrNotFound,
	}
	ErrInvalidPaginationParams = Error{
		Code:     "InvalidPaginationParams",
		Message:  "Provided pagination parameters are not valid",
		category: ErrValidation,
	}
	ErrInternalError = Error{
		Code:     "InternalError",
		Message:  "Internal server error",
		category: ErrInternal,
	}
)

// WithDetail returns a copy of e carrying the given additional info.
// The receiver is left untouched.
func (e Error) WithDetail(info string) Error {
	e.AdditionalInfo = info
	return e
}

func (e Error) Error() string {
	if e.AdditionalInfo == "" {
		return e.Code + ": " + e.Message
	}
	return e.Code + ": " + e.Message + " (" + e.AdditionalInfo + ")"
}

// Is reports whether target is a catalog Error with the same code.
func (e Error) Is(target error) bool {
	other, ok := target.(Error)
	return ok && other.Code == e.Code
}

// Unwrap exposes the category sentinel (ErrValidation, ErrNotFound or
// ErrInternal).
func (e Error) Unwrap() error {
	return e.category
}

package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
	ErrInvalidQuery  = errors.New("invalid query parameter")
)

// FieldErrorCode classifies a single field-level validation failure.
type FieldErrorCode string

const (
	CodeMissingRequiredField       FieldErrorCode = "MissingRequiredField"
	CodeForbiddenFieldForVariant   FieldErrorCode = "ForbiddenFieldForVariant"
	CodeInvalidDateOrder           FieldErrorCode = "InvalidDateOrder"
	CodeInvalidDateFormat          FieldErrorCode = "InvalidDateFormat"
	CodeEmptyStringField           FieldErrorCode = "EmptyStringField"
	CodeUnknownDepartmentReference FieldErrorCode = "UnknownDepartmentReference"
	CodeInvalidTopicType           FieldErrorCode = "InvalidTopicType"
	CodeImmutableField             FieldErrorCode = "ImmutableField"
)

func (c FieldErrorCode) String() string { return string(c) }

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Code    FieldErrorCode
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// ByField returns the first error code reported for each field.
func (e *ValidationError) ByField() map[string]FieldErrorCode {
	out := make(map[string]FieldErrorCode, len(e.Errors))
	for _, fe := range e.Errors {
		if _, seen := out[fe.Field]; !seen {
			out[fe.Field] = fe.Code
		}
	}
	return out
}

// Has reports whether the given field failed with the given code.
func (e *ValidationError) Has(field string, code FieldErrorCode) bool {
	for _, fe := range e.Errors {
		if fe.Field == field && fe.Code == code {
			return true
		}
	}
	return false
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field string, code FieldErrorCode, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Code: code, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// QueryParamError reports a malformed pagination or filter parameter.
type QueryParamError struct {
	Param   string
	Message string
}

func (e *QueryParamError) Error() string {
	return fmt.Sprintf("invalid query parameter %s: %s", e.Param, e.Message)
}

func (e *QueryParamError) Unwrap() error { return ErrInvalidQuery }

// NewQueryParamError creates a QueryParamError.
func NewQueryParamError(param, message string) *QueryParamError {
	return &QueryParamError{Param: param, Message: message}
}
